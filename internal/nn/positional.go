package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/neuroviz/neuroviz/internal/parallel"
	"github.com/neuroviz/neuroviz/internal/tensor"
)

// Encode returns one entry of the sinusoidal positional encoding from
// "Attention is All You Need" (Vaswani et al., 2017).
//
// Mathematical formulation:
//
//	PE(pos, dim) = sin(pos / 10000^(dim/d))       for even dim
//	PE(pos, dim) = cos(pos / 10000^((dim-1)/d))   for odd dim
//
// Where d is modelDim. Sine and cosine share a frequency in each (even, odd)
// pair of dimensions. An odd modelDim leaves the last sine without its cosine
// partner; the value is still computed by the formula above.
//
// Panics if modelDim <= 0.
func Encode(position, dim, modelDim int) float64 {
	if modelDim <= 0 {
		panic(fmt.Sprintf("Encode: modelDim must be positive, got %d", modelDim))
	}

	pair := dim - dim%2
	angle := float64(position) / math.Pow(10000.0, float64(pair)/float64(modelDim))
	if dim%2 == 0 {
		return math.Sin(angle)
	}
	return math.Cos(angle)
}

// EncodingMatrix computes the [seqLen, modelDim] positional encoding matrix.
//
// Long tables are filled row by row on several goroutines.
//
// Panics if seqLen <= 0 or modelDim <= 0.
func EncodingMatrix(seqLen, modelDim int) *mat.Dense {
	if seqLen <= 0 {
		panic(fmt.Sprintf("EncodingMatrix: seqLen must be positive, got %d", seqLen))
	}
	pe := mat.NewDense(seqLen, modelDim, nil)
	parallel.Rows(seqLen, func(pos int) {
		row := pe.RawRowView(pos)
		for i := range row {
			row[i] = Encode(pos, i, modelDim)
		}
	}, parallel.DefaultConfig())
	return pe
}

// SinusoidalPositionalEncoding holds a pre-computed encoding table.
//
// The table is computed once up to MaxLen positions; Forward slices it.
//
// Example:
//
//	pe := nn.NewSinusoidalPositionalEncoding(16, 8)
//	enc, err := pe.Forward(3) // [3, 8]
type SinusoidalPositionalEncoding struct {
	Encoding *mat.Dense // [MaxLen, Dim] - pre-computed encodings
	MaxLen   int        // Maximum sequence length
	Dim      int        // Model dimension
}

// NewSinusoidalPositionalEncoding pre-computes encodings for maxLen positions.
//
// Panics if maxLen or dim is not positive.
func NewSinusoidalPositionalEncoding(maxLen, dim int) *SinusoidalPositionalEncoding {
	if maxLen <= 0 {
		panic(fmt.Sprintf("SinusoidalPositionalEncoding: maxLen must be positive, got %d", maxLen))
	}
	if dim <= 0 {
		panic(fmt.Sprintf("SinusoidalPositionalEncoding: dim must be positive, got %d", dim))
	}

	return &SinusoidalPositionalEncoding{
		Encoding: EncodingMatrix(maxLen, dim),
		MaxLen:   maxLen,
		Dim:      dim,
	}
}

// Forward returns a copy of the encodings for the first seqLen positions.
//
// Returns tensor.ErrDomain if seqLen is not in [1, MaxLen].
func (s *SinusoidalPositionalEncoding) Forward(seqLen int) (*mat.Dense, error) {
	if seqLen <= 0 || seqLen > s.MaxLen {
		return nil, tensor.DomainError("SinusoidalPositionalEncoding.Forward",
			"seqLen %d outside [1, %d]", seqLen, s.MaxLen)
	}

	out := mat.NewDense(seqLen, s.Dim, nil)
	out.Copy(s.Encoding.Slice(0, seqLen, 0, s.Dim))
	return out, nil
}

// AddPositional returns embeddings + positional encodings, elementwise.
//
// Both matrices must have the same [seqLen, dim] shape.
func AddPositional(embeddings, encodings mat.Matrix) (*mat.Dense, error) {
	if err := tensor.CheckSameShape("AddPositional", embeddings, encodings); err != nil {
		return nil, err
	}
	r, c := embeddings.Dims()
	out := mat.NewDense(r, c, nil)
	out.Add(embeddings, encodings)
	return out, nil
}
