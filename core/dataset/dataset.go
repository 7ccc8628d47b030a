// Package dataset provides the row-major case table consumed by trainers and
// resampling estimators.
//
// A Dataset holds n cases of p predictors followed by one outcome value, so
// every row has p+1 columns and column p is the outcome. Storage is a
// gonum mat.Dense, which keeps the rows contiguous and lets trainers hand the
// predictor block straight to gonum's linear algebra.
package dataset

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/errest/pkg/errors"
)

// Dataset is an n×(p+1) table of cases.
type Dataset struct {
	m *mat.Dense
}

// New allocates a zeroed dataset of n cases with p predictors. It panics
// if n or p+1 is not positive, as mat.NewDense does.
func New(n, p int) *Dataset {
	return &Dataset{m: mat.NewDense(n, p+1, nil)}
}

// FromRows builds a dataset from rows of equal length (predictors followed by
// the outcome). The rows are copied.
func FromRows(rows [][]float64) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, errors.NewModelError("dataset.FromRows", "empty data", errors.ErrEmptyData)
	}
	cols := len(rows[0])
	if cols < 2 {
		return nil, errors.NewValidationError("rows", "each row needs at least one predictor and an outcome", cols)
	}
	data := make([]float64, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, errors.Wrapf(errors.NewDimensionError("dataset.FromRows", cols, len(r), 1), "row %d", i)
		}
		data = append(data, r...)
	}
	return &Dataset{m: mat.NewDense(len(rows), cols, data)}, nil
}

// FromDense wraps m without copying. m must have at least two columns.
func FromDense(m *mat.Dense) (*Dataset, error) {
	r, c := m.Dims()
	if r == 0 {
		return nil, errors.NewModelError("dataset.FromDense", "empty data", errors.ErrEmptyData)
	}
	if c < 2 {
		return nil, errors.NewValidationError("columns", "need at least one predictor and an outcome", c)
	}
	return &Dataset{m: m}, nil
}

// Rows returns n, the number of cases.
func (d *Dataset) Rows() int {
	r, _ := d.m.Dims()
	return r
}

// Predictors returns p, the number of predictor columns.
func (d *Dataset) Predictors() int {
	_, c := d.m.Dims()
	return c - 1
}

// Row returns case i as a view into the backing storage: predictors followed
// by the outcome. Writes through the slice modify the dataset.
func (d *Dataset) Row(i int) []float64 {
	return d.m.RawRowView(i)
}

// Inputs returns the predictor part of case i as a view.
func (d *Dataset) Inputs(i int) []float64 {
	row := d.m.RawRowView(i)
	return row[:len(row)-1]
}

// Outcome returns the outcome of case i.
func (d *Dataset) Outcome(i int) float64 {
	_, c := d.m.Dims()
	return d.m.At(i, c-1)
}

// SetRow copies src into case i. src must have p+1 values.
func (d *Dataset) SetRow(i int, src []float64) {
	d.m.SetRow(i, src)
}

// CopyRow copies case k of src into case i of d. Both datasets must have
// the same number of columns.
func (d *Dataset) CopyRow(i int, src *Dataset, k int) {
	copy(d.m.RawRowView(i), src.m.RawRowView(k))
}

// Clone returns a deep copy.
func (d *Dataset) Clone() *Dataset {
	return &Dataset{m: mat.DenseCopyOf(d.m)}
}

// Equal reports whether both datasets have the same shape and bit-identical
// contents, NaN payloads included.
func (d *Dataset) Equal(other *Dataset) bool {
	r1, c1 := d.m.Dims()
	r2, c2 := other.m.Dims()
	if r1 != r2 || c1 != c2 {
		return false
	}
	for i := 0; i < r1; i++ {
		a, b := d.m.RawRowView(i), other.m.RawRowView(i)
		for j := range a {
			if math.Float64bits(a[j]) != math.Float64bits(b[j]) {
				return false
			}
		}
	}
	return true
}

// Dense exposes the backing matrix.
func (d *Dataset) Dense() *mat.Dense {
	return d.m
}

// PredictorMatrix returns an n×p view of the predictor columns.
func (d *Dataset) PredictorMatrix() mat.Matrix {
	r, c := d.m.Dims()
	return d.m.Slice(0, r, 0, c-1)
}

// OutcomeVector returns a view of the outcome column.
func (d *Dataset) OutcomeVector() mat.Vector {
	_, c := d.m.Dims()
	return d.m.ColView(c - 1)
}
