package nn

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/neuroviz/neuroviz/internal/tensor"
)

// ComputeScores computes the scaled attention scores QK^T / sqrt(headDim).
//
//	scores[i][j] = dot(Q[i], K[j]) / sqrt(headDim)
//
// Parameters:
//   - q: Query matrix [n, headDim]
//   - k: Key matrix [m, headDim]
//   - headDim: Width of each query/key row
//
// Q and K need not have the same number of rows: n queries against m keys
// give an n×m matrix, as in cross-attention. Self-attention callers pass equal
// counts; the attention widget enforces one Q, K and V row per token.
//
// Returns the score matrix [n, m]. Fails with tensor.ErrDomain when
// headDim <= 0 and with tensor.ErrShapeMismatch when a row of Q or K is not
// headDim wide.
func ComputeScores(q, k mat.Matrix, headDim int) (*mat.Dense, error) {
	if headDim <= 0 {
		return nil, tensor.DomainError("ComputeScores", "headDim must be positive, got %d", headDim)
	}
	if err := tensor.CheckCols("ComputeScores", "query", q, headDim); err != nil {
		return nil, err
	}
	if err := tensor.CheckCols("ComputeScores", "key", k, headDim); err != nil {
		return nil, err
	}

	n, _ := q.Dims()
	m, _ := k.Dims()
	scores := mat.NewDense(n, m, nil)
	scores.Mul(q, k.T())
	scores.Scale(1/math.Sqrt(float64(headDim)), scores)
	return scores, nil
}

// ComputeOutput computes the attention output weights @ V.
//
//	out[i] = Σ_j weights[i][j] * V[j]
//
// Requires the weights column count to equal the number of value rows.
func ComputeOutput(weights, v mat.Matrix) (*mat.Dense, error) {
	n, m := weights.Dims()
	vr, vc := v.Dims()
	if m != vr {
		return nil, tensor.NewShapeError("ComputeOutput", "value rows",
			tensor.Shape{vr, vc}, tensor.Shape{m, vc})
	}

	out := mat.NewDense(n, vc, nil)
	out.Mul(weights, v)
	return out, nil
}

// AttentionResult holds every intermediate matrix of one attention pass.
type AttentionResult struct {
	Scores  *mat.Dense // [n, m] scaled scores (mask applied)
	Weights *mat.Dense // [n, m] row-wise softmax of Scores
	Output  *mat.Dense // [n, headDim_v] weighted value sums
}

// ScaledDotProductAttention runs the full attention formula:
//
//	Attention(Q, K, V) = softmax(QK^T / sqrt(d_k) + mask) V
//
// Parameters:
//   - q: Query matrix [n, d_k]
//   - k: Key matrix [m, d_k]
//   - v: Value matrix [m, d_v]
//   - mask: Optional additive mask [n, m] (-Inf for blocked positions) or nil
//
// The head dimension is taken from the query width.
//
// Example:
//
//	res, err := nn.ScaledDotProductAttention(q, k, v, nil)
//	// res.Weights rows sum to 1
//	// res.Output = res.Weights @ v
func ScaledDotProductAttention(q, k, v, mask mat.Matrix) (AttentionResult, error) {
	_, headDim := q.Dims()
	scores, err := ComputeScores(q, k, headDim)
	if err != nil {
		return AttentionResult{}, err
	}

	if mask != nil {
		if err := tensor.CheckSameShape("ScaledDotProductAttention", scores, mask); err != nil {
			return AttentionResult{}, err
		}
		scores.Add(scores, mask)
	}

	weights, err := RowSoftmax(scores)
	if err != nil {
		return AttentionResult{}, err
	}

	output, err := ComputeOutput(weights, v)
	if err != nil {
		return AttentionResult{}, err
	}

	return AttentionResult{Scores: scores, Weights: weights, Output: output}, nil
}

// CausalMask creates an additive causal (autoregressive) mask [n, n].
//
// Position i may attend to positions j <= i. The upper triangle is -Inf and
// the diagonal and lower triangle are 0, so after softmax each token only
// weighs itself and earlier tokens. This is the mask of the decoder's masked
// self-attention.
func CausalMask(n int) *mat.Dense {
	mask := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			mask.Set(i, j, math.Inf(-1))
		}
	}
	return mask
}
