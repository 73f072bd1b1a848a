package tensor

import "encoding/json"

// MarshalJSON encodes the array as a nested JSON list (see Nested).
func (a *Array) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Nested())
}

// MarshalYAML encodes the array as a nested YAML sequence (see Nested).
// It satisfies both goccy/go-yaml's InterfaceMarshaler and yaml.v3's Marshaler.
func (a *Array) MarshalYAML() (any, error) {
	return a.Nested(), nil
}
