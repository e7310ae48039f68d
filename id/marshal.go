package id

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the identifier as its raw scalar.
func (v VertexID[T]) MarshalJSON() ([]byte, error) { return json.Marshal(v.raw) }

// UnmarshalJSON decodes a raw scalar.
func (v *VertexID[T]) UnmarshalJSON(b []byte) error { return json.Unmarshal(b, &v.raw) }

// MarshalText encodes the raw value in base 10; used for JSON map keys.
func (v VertexID[T]) MarshalText() ([]byte, error) { return []byte(formatRaw(v.raw)), nil }

// UnmarshalText accepts "12" or "v12".
func (v *VertexID[T]) UnmarshalText(b []byte) error {
	p, err := ParseVertex[T](string(b))
	if err != nil {
		return err
	}
	*v = p

	return nil
}

// MarshalYAML encodes the identifier as its raw scalar.
func (v VertexID[T]) MarshalYAML() (interface{}, error) { return v.raw, nil }

// UnmarshalYAML decodes a raw scalar.
func (v *VertexID[T]) UnmarshalYAML(node *yaml.Node) error { return node.Decode(&v.raw) }

// MarshalJSON encodes the identifier as its raw scalar.
func (e EdgeID[T]) MarshalJSON() ([]byte, error) { return json.Marshal(e.raw) }

// UnmarshalJSON decodes a raw scalar.
func (e *EdgeID[T]) UnmarshalJSON(b []byte) error { return json.Unmarshal(b, &e.raw) }

// MarshalText encodes the raw value in base 10; used for JSON map keys.
func (e EdgeID[T]) MarshalText() ([]byte, error) { return []byte(formatRaw(e.raw)), nil }

// UnmarshalText accepts "12" or "e12".
func (e *EdgeID[T]) UnmarshalText(b []byte) error {
	p, err := ParseEdge[T](string(b))
	if err != nil {
		return err
	}
	*e = p

	return nil
}

// MarshalYAML encodes the identifier as its raw scalar.
func (e EdgeID[T]) MarshalYAML() (interface{}, error) { return e.raw, nil }

// UnmarshalYAML decodes a raw scalar.
func (e *EdgeID[T]) UnmarshalYAML(node *yaml.Node) error { return node.Decode(&e.raw) }
