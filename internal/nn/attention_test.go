package nn

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/neuroviz/neuroviz/internal/tensor"
)

var (
	testQ = [][]float64{
		{1.2, 0.3, -0.5, 0.8},
		{0.4, 1.1, 0.2, -0.3},
		{-0.2, 0.7, 1.0, 0.5},
	}
	testK = [][]float64{
		{0.8, -0.2, 0.6, 0.1},
		{0.3, 0.9, -0.4, 0.7},
		{0.5, 0.4, 0.8, -0.6},
	}
	testV = [][]float64{
		{0.1, 0.9, -0.3, 0.5},
		{0.6, -0.2, 0.7, 0.3},
		{-0.4, 0.5, 0.1, 0.8},
	}
)

// naiveAttention is a loop-by-loop reference for the scaled dot-product formula.
func naiveAttention(q, k, v [][]float64) (scores, weights, out [][]float64) {
	d := float64(len(q[0]))
	scores = make([][]float64, len(q))
	weights = make([][]float64, len(q))
	out = make([][]float64, len(q))
	for i := range q {
		scores[i] = make([]float64, len(k))
		for j := range k {
			var s float64
			for x := range q[i] {
				s += q[i][x] * k[j][x]
			}
			scores[i][j] = s / math.Sqrt(d)
		}

		maxVal := math.Inf(-1)
		for _, s := range scores[i] {
			maxVal = math.Max(maxVal, s)
		}
		var sum float64
		weights[i] = make([]float64, len(k))
		for j, s := range scores[i] {
			weights[i][j] = math.Exp(s - maxVal)
			sum += weights[i][j]
		}
		for j := range weights[i] {
			weights[i][j] /= sum
		}

		out[i] = make([]float64, len(v[0]))
		for j := range v {
			for x := range v[j] {
				out[i][x] += weights[i][j] * v[j][x]
			}
		}
	}
	return scores, weights, out
}

func assertClose(t *testing.T, name string, got mat.Matrix, want [][]float64) {
	t.Helper()
	r, c := got.Dims()
	if r != len(want) || c != len(want[0]) {
		t.Fatalf("%s shape = [%d %d], want [%d %d]", name, r, c, len(want), len(want[0]))
	}
	for i := range want {
		for j := range want[i] {
			g := got.At(i, j)
			if math.Abs(g-want[i][j]) > 1e-6*math.Max(1, math.Abs(want[i][j])) {
				t.Errorf("%s[%d][%d] = %.9f, want %.9f", name, i, j, g, want[i][j])
			}
		}
	}
}

// TestScaledDotProductAttention_MatchesReference checks every stage against the loop formula.
func TestScaledDotProductAttention_MatchesReference(t *testing.T) {
	q, k, v := tensor.MustFromRows(testQ), tensor.MustFromRows(testK), tensor.MustFromRows(testV)

	res, err := ScaledDotProductAttention(q, k, v, nil)
	if err != nil {
		t.Fatalf("ScaledDotProductAttention error: %v", err)
	}

	wantScores, wantWeights, wantOut := naiveAttention(testQ, testK, testV)
	assertClose(t, "scores", res.Scores, wantScores)
	assertClose(t, "weights", res.Weights, wantWeights)
	assertClose(t, "output", res.Output, wantOut)

	// scores[0][0] = (0.96 - 0.06 - 0.3 + 0.08) / 2
	if math.Abs(res.Scores.At(0, 0)-0.34) > 1e-12 {
		t.Errorf("scores[0][0] = %f, want 0.34", res.Scores.At(0, 0))
	}
}

// TestScaledDotProductAttention_WeightsAreDistributions checks row sums and ranges.
func TestScaledDotProductAttention_WeightsAreDistributions(t *testing.T) {
	q, k, v := tensor.MustFromRows(testQ), tensor.MustFromRows(testK), tensor.MustFromRows(testV)

	res, err := ScaledDotProductAttention(q, k, v, nil)
	if err != nil {
		t.Fatalf("ScaledDotProductAttention error: %v", err)
	}

	r, c := res.Weights.Dims()
	for i := 0; i < r; i++ {
		sum := 0.0
		for j := 0; j < c; j++ {
			w := res.Weights.At(i, j)
			if w <= 0 || w > 1 {
				t.Errorf("weights[%d][%d] = %f, want in (0, 1]", i, j, w)
			}
			sum += w
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("row %d sum = %f, want 1", i, sum)
		}
	}
}

// TestScaledDotProductAttention_IdenticalQueries checks identical queries give identical rows.
func TestScaledDotProductAttention_IdenticalQueries(t *testing.T) {
	same := [][]float64{testQ[1], testQ[1], testQ[1]}
	q, k, v := tensor.MustFromRows(same), tensor.MustFromRows(testK), tensor.MustFromRows(testV)

	res, err := ScaledDotProductAttention(q, k, v, nil)
	if err != nil {
		t.Fatalf("ScaledDotProductAttention error: %v", err)
	}

	for i := 1; i < 3; i++ {
		if !mat.EqualApprox(res.Scores.RowView(0), res.Scores.RowView(i), 1e-12) {
			t.Errorf("scores row %d differs from row 0", i)
		}
		if !mat.EqualApprox(res.Output.RowView(0), res.Output.RowView(i), 1e-12) {
			t.Errorf("output row %d differs from row 0", i)
		}
	}
}

// TestScaledDotProductAttention_CausalMask checks that no token attends to the future.
func TestScaledDotProductAttention_CausalMask(t *testing.T) {
	q, k, v := tensor.MustFromRows(testQ), tensor.MustFromRows(testK), tensor.MustFromRows(testV)

	res, err := ScaledDotProductAttention(q, k, v, CausalMask(3))
	if err != nil {
		t.Fatalf("ScaledDotProductAttention error: %v", err)
	}

	for i := 0; i < 3; i++ {
		sum := 0.0
		for j := 0; j < 3; j++ {
			w := res.Weights.At(i, j)
			if j > i && w != 0 {
				t.Errorf("weights[%d][%d] = %f, want 0 (future position)", i, j, w)
			}
			sum += w
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("row %d sum = %f, want 1", i, sum)
		}
	}

	// The first token can only see itself.
	if res.Weights.At(0, 0) != 1 {
		t.Errorf("weights[0][0] = %f, want 1", res.Weights.At(0, 0))
	}
	for x := 0; x < 4; x++ {
		if math.Abs(res.Output.At(0, x)-testV[0][x]) > 1e-12 {
			t.Errorf("output[0][%d] = %f, want %f", x, res.Output.At(0, x), testV[0][x])
		}
	}
}

func TestCausalMask(t *testing.T) {
	mask := CausalMask(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			got := mask.At(i, j)
			if j > i && !math.IsInf(got, -1) {
				t.Errorf("mask[%d][%d] = %f, want -Inf", i, j, got)
			}
			if j <= i && got != 0 {
				t.Errorf("mask[%d][%d] = %f, want 0", i, j, got)
			}
		}
	}
}

func TestComputeScores_Errors(t *testing.T) {
	q := tensor.MustFromRows(testQ)
	k := tensor.MustFromRows(testK)
	narrow := tensor.MustFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})

	tests := []struct {
		name    string
		q, k    mat.Matrix
		headDim int
		wantErr error
	}{
		{name: "zero headDim", q: q, k: k, headDim: 0, wantErr: tensor.ErrDomain},
		{name: "negative headDim", q: q, k: k, headDim: -4, wantErr: tensor.ErrDomain},
		{name: "headDim disagrees with rows", q: q, k: k, headDim: 3, wantErr: tensor.ErrShapeMismatch},
		{name: "key width mismatch", q: q, k: narrow, headDim: 4, wantErr: tensor.ErrShapeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeScores(tt.q, tt.k, tt.headDim)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ComputeScores error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestComputeScores_Rectangular(t *testing.T) {
	q := tensor.MustFromRows(testQ[:2])
	k := tensor.MustFromRows(testK)

	scores, err := ComputeScores(q, k, 4)
	if err != nil {
		t.Fatalf("ComputeScores error: %v", err)
	}
	if r, c := scores.Dims(); r != 2 || c != 3 {
		t.Errorf("scores shape = [%d %d], want [2 3]", r, c)
	}
}

func TestComputeOutput_ShapeMismatch(t *testing.T) {
	weights := tensor.MustFromRows([][]float64{{0.5, 0.5}})
	v := tensor.MustFromRows(testV)

	_, err := ComputeOutput(weights, v)
	if !errors.Is(err, tensor.ErrShapeMismatch) {
		t.Errorf("ComputeOutput error = %v, want ErrShapeMismatch", err)
	}
}

func TestComputeOutput_OneHotSelectsValueRow(t *testing.T) {
	weights := tensor.MustFromRows([][]float64{{0, 1, 0}})
	v := tensor.MustFromRows(testV)

	out, err := ComputeOutput(weights, v)
	if err != nil {
		t.Fatalf("ComputeOutput error: %v", err)
	}
	assertClose(t, "output", out, [][]float64{testV[1]})
}

func TestScaledDotProductAttention_MaskShapeMismatch(t *testing.T) {
	q, k, v := tensor.MustFromRows(testQ), tensor.MustFromRows(testK), tensor.MustFromRows(testV)

	_, err := ScaledDotProductAttention(q, k, v, CausalMask(2))
	if !errors.Is(err, tensor.ErrShapeMismatch) {
		t.Errorf("error = %v, want ErrShapeMismatch", err)
	}
}
