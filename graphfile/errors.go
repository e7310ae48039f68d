// SPDX-License-Identifier: MIT

package graphfile

import "github.com/pkg/errors"

var (
	// ErrUnknownFormat is returned for a format name or file extension that
	// is neither YAML nor JSON.
	ErrUnknownFormat = errors.New("graphfile: unknown format")

	// ErrInvalidDocument wraps decoding failures (syntax, unknown fields).
	ErrInvalidDocument = errors.New("graphfile: invalid document")

	// ErrEmptyLabel is returned for a node declared without a label.
	ErrEmptyLabel = errors.New("graphfile: empty node label")

	// ErrDuplicateLabel is returned when two nodes share a label.
	ErrDuplicateLabel = errors.New("graphfile: duplicate node label")

	// ErrUnknownLabel is returned when an edge names a label that no node
	// declares anywhere in the document.
	ErrUnknownLabel = errors.New("graphfile: unknown node label")

	// ErrAliasedVertex is returned by Export when two labels name the same
	// vertex.
	ErrAliasedVertex = errors.New("graphfile: vertex has more than one label")

	// ErrNilGraph is returned by Export for a nil graph.
	ErrNilGraph = errors.New("graphfile: graph is nil")
)
