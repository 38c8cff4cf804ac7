package encode

import (
	"github.com/goccy/go-yaml"

	"github.com/pylit-format/go-pylit/ir"
)

// MarshalYAML renders node as YAML text using the JSON-compatible
// value mapping.
func MarshalYAML(node *ir.Node) ([]byte, error) {
	v, err := ToJSONAny(node)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(v)
}
