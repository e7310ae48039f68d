// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// id_fn.go: vertex label schemes. Labels become the vertex weights of the
// built graph and the keys of the map returned by Apply.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to its label.
type IDFn func(idx int) string

// DefaultIDFn renders decimal labels ("0","1",…).
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn renders spreadsheet-style labels ("A"…"Z","AA",…).
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixIDFn renders prefix+decimal labels ("v0","v1",… for prefix "v").
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefixed(prefix, idx)
	}
}

// WithExcelColumnIDs is WithIDScheme(ExcelColumnIDFn).
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithPrefixIDs is WithIDScheme(PrefixIDFn(prefix)).
func WithPrefixIDs(prefix string) BuilderOption {
	return WithIDScheme(PrefixIDFn(prefix))
}
