package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromRows creates a dense matrix from a slice of equal-length rows.
//
// The rows are copied; later changes to rows do not affect the matrix.
//
// Example:
//
//	q, err := tensor.FromRows([][]float64{
//	    {1.2, 0.3, -0.5, 0.8},
//	    {0.4, 1.1, 0.2, -0.3},
//	})
//	// q has shape [2 4]
func FromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 {
		return nil, NewShapeError("FromRows", "row count", Shape{0}, Shape{1})
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, NewShapeError("FromRows", "row 0 length", Shape{0}, Shape{1})
	}

	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, NewShapeError("FromRows", rowLabel(i), Shape{len(row)}, Shape{cols})
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}

// MustFromRows is FromRows for static fixtures; it panics on ragged input.
func MustFromRows(rows [][]float64) *mat.Dense {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// Rows copies a matrix into a slice of rows.
func Rows(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = m.At(i, j)
		}
	}
	return rows
}

// Row copies row i of m.
func Row(m mat.Matrix, i int) []float64 {
	_, c := m.Dims()
	row := make([]float64, c)
	for j := range row {
		row[j] = m.At(i, j)
	}
	return row
}

// CheckCols returns a ShapeError unless m has exactly want columns.
func CheckCols(op, what string, m mat.Matrix, want int) error {
	r, c := m.Dims()
	if c != want {
		return NewShapeError(op, what, Shape{r, c}, Shape{r, want})
	}
	return nil
}

// CheckSameShape returns a ShapeError unless a and b have identical dimensions.
func CheckSameShape(op string, a, b mat.Matrix) error {
	sa, sb := ShapeOf(a), ShapeOf(b)
	if !sa.Equal(sb) {
		return NewShapeError(op, "operand shapes", sb, sa)
	}
	return nil
}

func rowLabel(i int) string {
	return fmt.Sprintf("row %d length", i)
}
