// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// validators.go: shared parameter checks for constructors.

package builder

import (
	"github.com/pkg/errors"
)

// validateMin reports ErrTooFewVertices when value < min.
func validateMin(method, name string, value, min int) error {
	if value < min {
		return errors.Wrapf(ErrTooFewVertices, "%s: %s=%d < min=%d", method, name, value, min)
	}

	return nil
}

// validateRand reports ErrNeedRandSource when cfg carries no RNG.
func validateRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return errors.Wrapf(ErrNeedRandSource, "%s", method)
	}

	return nil
}
