// SPDX-License-Identifier: MIT

// Package matrix - Floyd–Warshall all-pairs shortest paths (in place).
//
// Contract:
//   - Input is a square distance matrix: 0 on the diagonal, +Inf where no
//     direct step exists, step cost elsewhere.
//   - Relaxation is strict (cand < d[i,j]), so equal-cost alternatives never
//     overwrite an existing entry.
//   - Loop order is fixed k→i→j.
//
// Complexity: O(n³) time, O(1) extra space.

package matrix

import (
	"math"

	"github.com/pkg/errors"
)

const opFloydWarshall = "FloydWarshall"

// initDistancesInPlace turns a zero-means-absent weight matrix into a
// distance matrix: diagonal 0, every other zero replaced by +Inf.
func initDistancesInPlace(mat *Dense) error {
	if mat.r != mat.c {
		return errors.Wrapf(ErrNonSquare, "initDistancesInPlace: %dx%d", mat.r, mat.c)
	}
	n := mat.r
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				mat.data[i*n+j] = 0
			case mat.data[i*n+j] == 0:
				mat.data[i*n+j] = math.Inf(1)
			}
		}
	}

	return nil
}

func floydWarshallInPlace(d *Dense) {
	n := d.r
	data := d.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshall computes all-pairs shortest distances in place on m.
// *Dense takes a flat-buffer fast path; other Matrix implementations go
// through At/Set.
//
// Errors: ErrNilMatrix, ErrNonSquare, or any At/Set error of m.
func FloydWarshall(m Matrix) error {
	if m == nil {
		return errors.Wrap(ErrNilMatrix, opFloydWarshall)
	}
	if m.Rows() != m.Cols() {
		return errors.Wrapf(ErrNonSquare, "%s: %dx%d", opFloydWarshall, m.Rows(), m.Cols())
	}
	if d, ok := m.(*Dense); ok {
		floydWarshallInPlace(d)

		return nil
	}

	n := m.Rows()
	var dik, dkj, dij float64
	var err error
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if dik, err = m.At(i, k); err != nil {
				return matrixErrorf(opFloydWarshall, err)
			}
			if math.IsInf(dik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				if dkj, err = m.At(k, j); err != nil {
					return matrixErrorf(opFloydWarshall, err)
				}
				if math.IsInf(dkj, 1) {
					continue
				}
				if dij, err = m.At(i, j); err != nil {
					return matrixErrorf(opFloydWarshall, err)
				}
				if dik+dkj < dij {
					if err = m.Set(i, j, dik+dkj); err != nil {
						return matrixErrorf(opFloydWarshall, err)
					}
				}
			}
		}
	}

	return nil
}
