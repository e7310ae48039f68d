// SPDX-License-Identifier: MIT

package matrix

import "github.com/pkg/errors"

const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opRowSums   = "RowSums"
)

func matrixErrorf(op string, err error) error {
	return errors.Wrapf(err, "matrix.%s", op)
}

// toDense copies any Matrix into a Dense, reusing the buffer layout when m
// is already dense.
func toDense(m Matrix) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := newDenseWithPolicy(m.Rows(), m.Cols(), false)
	if err != nil {
		return nil, err
	}
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

func addSub(a, b Matrix, sign float64, op string) (*Dense, error) {
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	if da.r != db.r || da.c != db.c {
		return nil, errors.Wrapf(ErrDimensionMismatch, "matrix.%s: %dx%d vs %dx%d", op, da.r, da.c, db.r, db.c)
	}
	out, _ := newDenseWithPolicy(da.r, da.c, da.validateNaNInf && db.validateNaNInf)
	for k := range out.data {
		out.data[k] = da.data[k] + sign*db.data[k]
	}

	return out, nil
}

// Add returns a + b. Returns ErrDimensionMismatch on shape mismatch.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a - b. Returns ErrDimensionMismatch on shape mismatch.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul returns the product a·b.
// Returns ErrDimensionMismatch when a.Cols() != b.Rows().
// Complexity: O(n·m·p) with the i-k-j loop order for row-major locality.
func Mul(a, b Matrix) (*Dense, error) {
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if da.c != db.r {
		return nil, errors.Wrapf(ErrDimensionMismatch, "matrix.%s: %dx%d · %dx%d", opMul, da.r, da.c, db.r, db.c)
	}
	out, _ := newDenseWithPolicy(da.r, db.c, da.validateNaNInf && db.validateNaNInf)
	var i, k, j int
	var aik float64
	for i = 0; i < da.r; i++ {
		for k = 0; k < da.c; k++ {
			aik = da.data[i*da.c+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < db.c; j++ {
				out.data[i*out.c+j] += aik * db.data[k*db.c+j]
			}
		}
	}

	return out, nil
}

// Transpose returns mᵀ.
func Transpose(m Matrix) (*Dense, error) {
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, _ := newDenseWithPolicy(d.c, d.r, d.validateNaNInf)
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			out.data[j*out.c+i] = d.data[i*d.c+j]
		}
	}

	return out, nil
}

// Scale returns alpha·m.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out, _ := newDenseWithPolicy(d.r, d.c, d.validateNaNInf)
	for k, v := range d.data {
		out.data[k] = alpha * v
	}

	return out, nil
}

// RowSums returns the sum of every row. On an unweighted undirected
// incidence matrix this is the vertex degree.
func RowSums(m Matrix) ([]float64, error) {
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	out := make([]float64, d.r)
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			out[i] += d.data[i*d.c+j]
		}
	}

	return out, nil
}
