package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	LiteralFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"l":       LiteralFormat,
		"lit":     LiteralFormat,
		"literal": LiteralFormat,
		"j":       JSONFormat,
		"json":    JSONFormat,
		"y":       YAMLFormat,
		"yaml":    YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case LiteralFormat:
		return []byte("literal"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsLiteral() bool { return f == LiteralFormat }
func (f Format) IsJSON() bool    { return f == JSONFormat }
func (f Format) IsYAML() bool    { return f == YAMLFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case LiteralFormat:
		return ".pylit"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{LiteralFormat, JSONFormat, YAMLFormat}
}
