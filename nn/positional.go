// Copyright 2025 NeuroViz Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/neuroviz/neuroviz/internal/nn"
	"gonum.org/v1/gonum/mat"
)

// SinusoidalPositionalEncoding implements fixed sinusoidal positional encodings.
//
// This is the original positional encoding from "Attention is All You Need" (Vaswani et al., 2017).
// The table is computed once for MaxLen positions.
type SinusoidalPositionalEncoding = nn.SinusoidalPositionalEncoding

// NewSinusoidalPositionalEncoding precomputes encodings for maxLen positions of width dim.
//
// Example:
//
//	pe := nn.NewSinusoidalPositionalEncoding(512, 8)
//	enc, err := pe.Forward(3) // 3×8
func NewSinusoidalPositionalEncoding(maxLen, dim int) *SinusoidalPositionalEncoding {
	return nn.NewSinusoidalPositionalEncoding(maxLen, dim)
}

// Encode returns PE(position, dim) for a model width of modelDim.
//
//	PE(pos, 2i)   = sin(pos / 10000^(2i/d))
//	PE(pos, 2i+1) = cos(pos / 10000^(2i/d))
func Encode(position, dim, modelDim int) float64 {
	return nn.Encode(position, dim, modelDim)
}

// EncodingMatrix returns the seqLen×modelDim encoding table.
func EncodingMatrix(seqLen, modelDim int) *mat.Dense {
	return nn.EncodingMatrix(seqLen, modelDim)
}

// AddPositional returns embeddings + encodings.
func AddPositional(embeddings, encodings mat.Matrix) (*mat.Dense, error) {
	return nn.AddPositional(embeddings, encodings)
}
