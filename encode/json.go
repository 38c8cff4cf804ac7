package encode

import (
	"encoding/json"
	"fmt"

	"github.com/pylit-format/go-pylit/ir"
)

// ToJSONAny maps node to a value that encoding/json can marshal.
// Complex numbers become their literal string, big integers become
// json.Number, and dict keys are rendered to strings because JSON
// objects only admit string keys.
func ToJSONAny(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NumberType:
		switch {
		case node.Int32 != nil:
			return *node.Int32, nil
		case node.Int64 != nil:
			return *node.Int64, nil
		case node.Float64 != nil:
			return *node.Float64, nil
		default:
			return json.Number(node.Number), nil
		}
	case ir.StringType:
		return node.String, nil
	case ir.ComplexType:
		return complexLiteral(node), nil
	case ir.TupleType, ir.ListType, ir.SetType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			v, err := ToJSONAny(elt)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ir.DictType:
		res := make(map[string]any, len(node.Fields))
		for i := range node.Fields {
			key := jsonKey(node.Fields[i])
			v, err := ToJSONAny(node.Values[i])
			if err != nil {
				return nil, err
			}
			res[key] = v
		}
		return res, nil
	}
	return nil, fmt.Errorf("to json: unknown node type %s", node.Type)
}

func jsonKey(key *ir.Node) string {
	if key.Type == ir.StringType {
		return key.String
	}
	return MustString(key)
}

// MarshalJSON renders node as JSON text.
func MarshalJSON(node *ir.Node) ([]byte, error) {
	v, err := ToJSONAny(node)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}
