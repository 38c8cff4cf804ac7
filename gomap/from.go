package gomap

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/pylit-format/go-pylit/ir"
)

// FromIR decodes node into the Go value pointed to by v.
//
// Strings, bools, numeric kinds, complex kinds, slices, arrays, maps,
// structs, pointers, and interfaces are supported. Struct fields are
// matched against string dict keys by the `pylit` tag, then by field
// name. For interface targets the value is materialized with
// Materialize.
func FromIR(node *ir.Node, v interface{}) error {
	if v == nil {
		return &UnmarshalError{Message: "destination value cannot be nil"}
	}
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr {
		return &UnmarshalError{Message: "destination value must be a pointer"}
	}
	if val.IsNil() {
		return &UnmarshalError{Message: "destination pointer cannot be nil"}
	}
	return fromIRReflect(node, val.Elem(), "")
}

func fromIRReflect(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node == nil {
		return &UnmarshalError{FieldPath: fieldPath, Message: "IR node is nil"}
	}

	if val.Kind() == reflect.Ptr {
		if node.Type == ir.NullType {
			if val.CanSet() {
				val.Set(reflect.Zero(val.Type()))
			}
			return nil
		}
		if val.IsNil() {
			val.Set(reflect.New(val.Type().Elem()))
		}
		return fromIRReflect(node, val.Elem(), fieldPath)
	}

	if node.Type == ir.NullType {
		if val.CanSet() {
			val.Set(reflect.Zero(val.Type()))
		}
		return nil
	}

	switch val.Kind() {
	case reflect.String:
		return fromIRToString(node, val, fieldPath)
	case reflect.Bool:
		return fromIRToBool(node, val, fieldPath)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fromIRToInt(node, val, fieldPath)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fromIRToUint(node, val, fieldPath)
	case reflect.Float32, reflect.Float64:
		return fromIRToFloat(node, val, fieldPath)
	case reflect.Complex64, reflect.Complex128:
		return fromIRToComplex(node, val, fieldPath)
	case reflect.Slice, reflect.Array:
		return fromIRToSlice(node, val, fieldPath)
	case reflect.Map:
		return fromIRToMap(node, val, fieldPath)
	case reflect.Struct:
		return fromIRToStruct(node, val, fieldPath)
	case reflect.Interface:
		return fromIRToInterface(node, val, fieldPath)
	}
	return &UnmarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("unsupported type: %s", val.Type()),
	}
}

func fromIRToString(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.StringType {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("expected string, got %s", node.Type),
		}
	}
	val.SetString(node.String)
	return nil
}

func fromIRToBool(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.BoolType {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("expected bool, got %s", node.Type),
		}
	}
	val.SetBool(node.Bool)
	return nil
}

func nodeInt64(node *ir.Node, fieldPath string) (int64, error) {
	if node.Type != ir.NumberType {
		return 0, &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("expected number, got %s", node.Type),
		}
	}
	switch {
	case node.Int32 != nil:
		return int64(*node.Int32), nil
	case node.Int64 != nil:
		return *node.Int64, nil
	case node.Float64 != nil:
		return 0, &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("cannot convert float %v to integer", *node.Float64),
		}
	}
	v, err := strconv.ParseInt(node.Number, 10, 64)
	if err != nil {
		return 0, &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("number %q does not fit in int64", node.Number),
			Err:       err,
		}
	}
	return v, nil
}

func fromIRToInt(node *ir.Node, val reflect.Value, fieldPath string) error {
	v, err := nodeInt64(node, fieldPath)
	if err != nil {
		return err
	}
	if val.OverflowInt(v) {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("value %d overflows %s", v, val.Type()),
		}
	}
	val.SetInt(v)
	return nil
}

func fromIRToUint(node *ir.Node, val reflect.Value, fieldPath string) error {
	v, err := nodeInt64(node, fieldPath)
	if err != nil {
		return err
	}
	if v < 0 {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("negative value %d cannot be converted to %s", v, val.Type()),
		}
	}
	if val.OverflowUint(uint64(v)) {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("value %d overflows %s", v, val.Type()),
		}
	}
	val.SetUint(uint64(v))
	return nil
}

func fromIRToFloat(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.NumberType {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("expected number, got %s", node.Type),
		}
	}
	var v float64
	switch {
	case node.Float64 != nil:
		v = *node.Float64
	case node.Int32 != nil:
		v = float64(*node.Int32)
	case node.Int64 != nil:
		v = float64(*node.Int64)
	default:
		parsed, err := strconv.ParseFloat(node.Number, 64)
		if err != nil {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("invalid float: %q", node.Number),
				Err:       err,
			}
		}
		v = parsed
	}
	if val.Kind() == reflect.Float32 && !math.IsInf(v, 0) && math.IsInf(float64(float32(v)), 0) {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("value %v overflows float32", v),
		}
	}
	val.SetFloat(v)
	return nil
}

func fromIRToComplex(node *ir.Node, val reflect.Value, fieldPath string) error {
	switch node.Type {
	case ir.ComplexType:
		val.SetComplex(complex(node.Real, node.Imag))
		return nil
	case ir.NumberType:
		// a plain number decodes as a real complex value
		var tmp float64
		fv := reflect.ValueOf(&tmp).Elem()
		if err := fromIRToFloat(node, fv, fieldPath); err != nil {
			return err
		}
		val.SetComplex(complex(tmp, 0))
		return nil
	}
	return &UnmarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("expected complex, got %s", node.Type),
	}
}

func elemPath(fieldPath string, i int) string {
	return fmt.Sprintf("%s[%d]", fieldPath, i)
}

func fromIRToSlice(node *ir.Node, val reflect.Value, fieldPath string) error {
	switch node.Type {
	case ir.TupleType, ir.ListType, ir.SetType:
	default:
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("expected sequence, got %s", node.Type),
		}
	}
	length := len(node.Values)
	if val.Kind() == reflect.Array {
		if val.Len() != length {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("array length mismatch: expected %d, got %d", val.Len(), length),
			}
		}
	} else {
		val.Set(reflect.MakeSlice(val.Type(), length, length))
	}
	for i := 0; i < length; i++ {
		if err := fromIRReflect(node.Values[i], val.Index(i), elemPath(fieldPath, i)); err != nil {
			return err
		}
	}
	return nil
}

func fromIRToMap(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.DictType {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("expected dict, got %s", node.Type),
		}
	}
	typ := val.Type()
	val.Set(reflect.MakeMap(typ))
	for i := range node.Fields {
		key := reflect.New(typ.Key()).Elem()
		if err := fromIRReflect(node.Fields[i], key, elemPath(fieldPath, i)); err != nil {
			return err
		}
		elem := reflect.New(typ.Elem()).Elem()
		valuePath := fieldPath
		if node.Fields[i].Type == ir.StringType {
			valuePath = joinPath(fieldPath, node.Fields[i].String)
		} else {
			valuePath = elemPath(fieldPath, i)
		}
		if err := fromIRReflect(node.Values[i], elem, valuePath); err != nil {
			return err
		}
		val.SetMapIndex(key, elem)
	}
	return nil
}

func fromIRToStruct(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.DictType {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("expected dict, got %s", node.Type),
		}
	}
	typ := val.Type()
	fields := map[string]int{}
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Name
		if tag, ok := field.Tag.Lookup("pylit"); ok {
			if tag == "-" {
				continue
			}
			name = tag
		}
		fields[name] = i
	}
	for i := range node.Fields {
		key := node.Fields[i]
		if key.Type != ir.StringType {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("struct fields require string keys, got %s", key.Type),
			}
		}
		fi, ok := fields[key.String]
		if !ok {
			// unknown keys are skipped
			continue
		}
		next := joinPath(fieldPath, key.String)
		if err := fromIRReflect(node.Values[i], val.Field(fi), next); err != nil {
			return err
		}
	}
	return nil
}

func fromIRToInterface(node *ir.Node, val reflect.Value, fieldPath string) error {
	if val.NumMethod() != 0 {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("cannot decode into non-empty interface %s", val.Type()),
		}
	}
	v, err := Materialize(node)
	if err != nil {
		if uerr, ok := err.(*UnmarshalError); ok && uerr.FieldPath == "" {
			uerr.FieldPath = fieldPath
		}
		return err
	}
	if v == nil {
		val.Set(reflect.Zero(val.Type()))
		return nil
	}
	val.Set(reflect.ValueOf(v))
	return nil
}

func joinPath(fieldPath, name string) string {
	if fieldPath == "" {
		return name
	}
	return fieldPath + "." + name
}
