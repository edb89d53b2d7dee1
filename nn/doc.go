// Copyright 2025 NeuroViz Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the numeric kernels behind the visualizations.
//
// # Overview
//
// This package contains:
//   - Perceptron: weighted sum plus strict step activation
//   - Attention: scaled dot-product scores, row softmax, weighted values, causal mask
//   - Positional encoding: fixed sinusoidal table ("Attention is All You Need")
//   - Feed-forward: the scalar FFN + residual + normalization walkthrough
//   - LayerNorm: zero-mean, unit-variance normalization of a vector
//
// Matrices are gonum *mat.Dense values; rows are tokens.
//
// # Basic Usage
//
//	import (
//	    "github.com/neuroviz/neuroviz/nn"
//	    "github.com/neuroviz/neuroviz/tensor"
//	)
//
//	func main() {
//	    q := tensor.MustFromRows([][]float64{{1, 0}, {0, 1}})
//	    res, err := nn.ScaledDotProductAttention(q, q, q, nil)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(tensor.Rows(res.Weights))
//	}
//
// # Errors
//
// Shape problems wrap tensor.ErrShapeMismatch; arguments outside a
// function's domain (non-positive head dimension, fully masked softmax row)
// wrap tensor.ErrDomain.
package nn
