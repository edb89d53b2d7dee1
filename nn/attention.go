// Copyright 2025 NeuroViz Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/neuroviz/neuroviz/internal/nn"
	"gonum.org/v1/gonum/mat"
)

// AttentionResult holds the raw scores, softmax weights and output of one
// attention pass.
type AttentionResult = nn.AttentionResult

// ComputeScores returns Q·Kᵀ / sqrt(headDim).
//
// Q and K must both have headDim columns.
func ComputeScores(q, k mat.Matrix, headDim int) (*mat.Dense, error) {
	return nn.ComputeScores(q, k, headDim)
}

// ComputeOutput returns weights·V.
func ComputeOutput(weights, v mat.Matrix) (*mat.Dense, error) {
	return nn.ComputeOutput(weights, v)
}

// ScaledDotProductAttention computes softmax(Q·Kᵀ / sqrt(d) + mask)·V.
//
// mask may be nil. Use CausalMask to stop tokens attending to later positions.
//
// Example:
//
//	res, err := nn.ScaledDotProductAttention(q, k, v, nn.CausalMask(q.RawMatrix().Rows))
func ScaledDotProductAttention(q, k, v, mask mat.Matrix) (AttentionResult, error) {
	return nn.ScaledDotProductAttention(q, k, v, mask)
}

// CausalMask returns an n×n additive mask with -Inf above the diagonal.
func CausalMask(n int) *mat.Dense {
	return nn.CausalMask(n)
}
