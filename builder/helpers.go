// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// helpers.go: small emission helpers shared by constructors.

package builder

import (
	"strconv"

	"github.com/pkg/errors"
)

// addVertices adds n vertices labelled cfg.idFn(0..n-1) and returns the labels.
func addVertices(s Sink, cfg builderConfig, method string, n int) ([]string, error) {
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		labels[i] = cfg.idFn(i)
		if err := s.AddVertex(labels[i]); err != nil {
			return nil, errors.Wrap(err, method)
		}
	}

	return labels, nil
}

// emit adds one hyperedge with a weight drawn from cfg.
func emit(s Sink, cfg builderConfig, method string, labels ...string) error {
	w, ok := cfg.weight()
	if err := s.AddHyperedge(w, ok, labels...); err != nil {
		return errors.Wrap(err, method)
	}

	return nil
}

// prefixed renders prefix+i, used for bipartite sides.
func prefixed(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}

// gridLabel renders the fixed "r,c" coordinate label.
func gridLabel(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
