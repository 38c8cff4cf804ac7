package gomap

import "fmt"

// UnmarshalError represents an error converting an IR tree to a Go
// value.
type UnmarshalError struct {
	FieldPath string // field path, e.g. "config.hosts[2]"
	Message   string
	Err       error
}

func (e *UnmarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("unmarshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("unmarshal error: %s", e.Message)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}
