// Copyright 2025 NeuroViz Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the matrix helpers and error types shared by the
// numeric kernels.
//
// Matrices are gonum *mat.Dense values. This package adds construction from
// nested slices, shape checks and the sentinel errors kernels wrap.
//
// Example:
//
//	m, err := tensor.FromRows([][]float64{{1, 2}, {3, 4}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(tensor.ShapeOf(m)) // [2 2]
package tensor

import (
	"github.com/neuroviz/neuroviz/internal/tensor"
	"gonum.org/v1/gonum/mat"
)

// Shape represents the dimensions of a matrix, e.g. [rows, cols].
type Shape = tensor.Shape

// ShapeError reports a dimension disagreement between operands.
type ShapeError = tensor.ShapeError

// Errors wrapped by kernel failures.
var (
	// ErrShapeMismatch is wrapped when operand shapes disagree.
	ErrShapeMismatch = tensor.ErrShapeMismatch
	// ErrDomain is wrapped when an argument is outside a function's domain.
	ErrDomain = tensor.ErrDomain
)

// ShapeOf returns the [rows, cols] shape of m.
func ShapeOf(m mat.Matrix) Shape {
	return tensor.ShapeOf(m)
}

// FromRows builds a matrix from row slices. Rows are copied and must be
// non-empty and equally long.
func FromRows(rows [][]float64) (*mat.Dense, error) {
	return tensor.FromRows(rows)
}

// MustFromRows is like FromRows but panics on error.
func MustFromRows(rows [][]float64) *mat.Dense {
	return tensor.MustFromRows(rows)
}

// Rows copies m into row slices.
func Rows(m mat.Matrix) [][]float64 {
	return tensor.Rows(m)
}

// Row copies row i of m.
func Row(m mat.Matrix, i int) []float64 {
	return tensor.Row(m, i)
}
