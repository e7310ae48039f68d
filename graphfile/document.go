// SPDX-License-Identifier: MIT

package graphfile

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format names a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts "yaml", "yml" and "json", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}

	return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
}

// FormatFromPath picks the format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Document is the declarative form of a hypergraph.
//
//	directed: true
//	nodes:
//	  - label: a
//	  - label: b
//	    weight: warehouse
//	edges:
//	  - members: [a, b]
//	    weight: 2.5
//
// Node weights default to the label. Edges without weight are unweighted.
type Document struct {
	Directed bool       `json:"directed,omitempty" yaml:"directed,omitempty"`
	Nodes    []NodeSpec `json:"nodes" yaml:"nodes"`
	Edges    []EdgeSpec `json:"edges" yaml:"edges"`
}

// NodeSpec declares one vertex.
type NodeSpec struct {
	Label  string `json:"label" yaml:"label"`
	Weight string `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// EdgeSpec declares one hyperedge over node labels. On directed documents
// the first member is the source.
type EdgeSpec struct {
	Members []string `json:"members" yaml:"members,flow"`
	Weight  *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// Decode reads a Document in format f. Unknown fields are rejected.
func Decode(r io.Reader, f Format) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "graphfile: read")
	}

	var doc Document
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&doc); err != nil && err != io.EOF {
			return nil, errors.Wrapf(ErrInvalidDocument, "yaml: %v", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err = dec.Decode(&doc); err != nil {
			return nil, errors.Wrapf(ErrInvalidDocument, "json: %v", err)
		}
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", f)
	}

	return &doc, nil
}

// Encode writes v in format f: a Document, or any report value carrying
// json/yaml tags. JSON is indented by two spaces.
func Encode(w io.Writer, v any, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "graphfile: encode yaml")
		}

		return errors.Wrap(enc.Close(), "graphfile: encode yaml")
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return errors.Wrap(enc.Encode(v), "graphfile: encode json")
	}

	return errors.Wrapf(ErrUnknownFormat, "%q", f)
}
