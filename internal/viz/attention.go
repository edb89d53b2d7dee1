package viz

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/neuroviz/neuroviz/internal/config"
	"github.com/neuroviz/neuroviz/internal/nn"
	"github.com/neuroviz/neuroviz/internal/tensor"
)

// AttentionConfig configures the self-attention widget.
type AttentionConfig struct {
	Tokens  []string    // One label per token
	Query   [][]float64 // [tokens, HeadDim]
	Key     [][]float64 // [tokens, HeadDim]
	Value   [][]float64 // [tokens, value width]
	HeadDim int

	// Causal blocks attention to later tokens, as in decoder self-attention.
	Causal bool
}

// AttentionConfigFromFixtures builds an AttentionConfig from fixtures.
func AttentionConfigFromFixtures(f *config.Fixtures) AttentionConfig {
	return AttentionConfig{
		Tokens:  f.Tokens,
		Query:   f.Attention.Query,
		Key:     f.Attention.Key,
		Value:   f.Attention.Value,
		HeadDim: f.Attention.HeadDim,
	}
}

// AttentionView is everything the self-attention widget renders.
type AttentionView struct {
	Tokens   []string
	Selected int
	Token    string

	// Row of the selected token.
	Weights   []float64 // Attention weights over all tokens, sum to 1
	MaxWeight float64
	Heat      []float64 // Weights/MaxWeight mapped to [0.1, 0.9] for shading
	Output    []float64 // Σ_j Weights[j] * V[j]
	Formula   string    // "0.300 × V("I") + ..."

	// Full matrices for the heat map.
	Scores      [][]float64
	WeightTable [][]float64
	OutputTable [][]float64
}

// Attention is the controller of the self-attention widget.
//
// Q, K and V are fixed for the widget's lifetime, so every matrix is computed
// once at construction; SelectToken only moves the highlighted row.
type Attention struct {
	tokens   []string
	q, k, v  *mat.Dense
	result   nn.AttentionResult
	selected *Selector
}

// NewAttention validates cfg and computes the attention matrices.
func NewAttention(cfg AttentionConfig) (*Attention, error) {
	n := len(cfg.Tokens)
	if n == 0 {
		return nil, tensor.NewShapeError("NewAttention", "token count", tensor.Shape{0}, tensor.Shape{1})
	}

	q, err := tensor.FromRows(cfg.Query)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	k, err := tensor.FromRows(cfg.Key)
	if err != nil {
		return nil, fmt.Errorf("key: %w", err)
	}
	v, err := tensor.FromRows(cfg.Value)
	if err != nil {
		return nil, fmt.Errorf("value: %w", err)
	}
	for _, operand := range []struct {
		name string
		m    *mat.Dense
	}{{"query", q}, {"key", k}, {"value", v}} {
		if r, c := operand.m.Dims(); r != n {
			return nil, tensor.NewShapeError("NewAttention", operand.name+" rows",
				tensor.Shape{r, c}, tensor.Shape{n, c})
		}
	}

	scores, err := nn.ComputeScores(q, k, cfg.HeadDim)
	if err != nil {
		return nil, err
	}
	if cfg.Causal {
		scores.Add(scores, nn.CausalMask(n))
	}
	weights, err := nn.RowSoftmax(scores)
	if err != nil {
		return nil, err
	}
	output, err := nn.ComputeOutput(weights, v)
	if err != nil {
		return nil, err
	}

	return &Attention{
		tokens:   append([]string(nil), cfg.Tokens...),
		q:        q,
		k:        k,
		v:        v,
		result:   nn.AttentionResult{Scores: scores, Weights: weights, Output: output},
		selected: NewSelector(n),
	}, nil
}

// NewAttentionFromFixtures creates the widget over the fixture matrices.
func NewAttentionFromFixtures(f *config.Fixtures) (*Attention, error) {
	return NewAttention(AttentionConfigFromFixtures(f))
}

// SelectToken highlights token i.
func (a *Attention) SelectToken(i int) (AttentionView, error) {
	if err := a.selected.Set(i); err != nil {
		return a.View(), fmt.Errorf("Attention.SelectToken: %w", err)
	}
	return a.View(), nil
}

// Selected returns the highlighted token index.
func (a *Attention) Selected() int {
	return a.selected.Index()
}

// Result returns the attention matrices.
func (a *Attention) Result() nn.AttentionResult {
	return nn.AttentionResult{
		Scores:  mat.DenseCopyOf(a.result.Scores),
		Weights: mat.DenseCopyOf(a.result.Weights),
		Output:  mat.DenseCopyOf(a.result.Output),
	}
}

// Matrices returns the Q, K and V fixtures as rows.
func (a *Attention) Matrices() (q, k, v [][]float64) {
	return tensor.Rows(a.q), tensor.Rows(a.k), tensor.Rows(a.v)
}

// View returns the derived state for the selected token.
func (a *Attention) View() AttentionView {
	i := a.selected.Index()
	weights := tensor.Row(a.result.Weights, i)
	maxW := floats.Max(weights)

	heat := make([]float64, len(weights))
	for j, w := range weights {
		heat[j] = HeatIntensity(w, maxW)
	}

	terms := make([]string, len(weights))
	for j, w := range weights {
		terms[j] = fmt.Sprintf("%.3f × V(%q)", w, a.tokens[j])
	}

	return AttentionView{
		Tokens:      append([]string(nil), a.tokens...),
		Selected:    i,
		Token:       a.tokens[i],
		Weights:     weights,
		MaxWeight:   maxW,
		Heat:        heat,
		Output:      tensor.Row(a.result.Output, i),
		Formula:     strings.Join(terms, " + "),
		Scores:      tensor.Rows(a.result.Scores),
		WeightTable: tensor.Rows(a.result.Weights),
		OutputTable: tensor.Rows(a.result.Output),
	}
}

// Reset selects the first token again.
func (a *Attention) Reset() AttentionView {
	a.selected.Reset()
	return a.View()
}

// HeatIntensity maps a weight to a shading intensity in [0.1, 0.9] relative
// to the row maximum. A zero maximum is treated as 1.
func HeatIntensity(w, maxW float64) float64 {
	if maxW == 0 {
		maxW = 1
	}
	return w/maxW*0.8 + 0.1
}
