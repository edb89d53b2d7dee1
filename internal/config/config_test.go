package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	f := Default()

	assert.Equal(t, []string{"I", "love", "AI"}, f.Tokens)
	assert.Equal(t, []float64{0.5, 0.3, 0.8}, f.Perceptron.Inputs)
	assert.Equal(t, []float64{0.4, -0.6, 0.9}, f.Perceptron.Weights)
	assert.Equal(t, -0.2, f.Perceptron.Bias)

	assert.Equal(t, 8, f.Embedding.Dim)
	assert.Len(t, f.Embedding.Vectors, 3)

	assert.Equal(t, 4, f.Attention.HeadDim)
	assert.Equal(t, []float64{1.2, 0.3, -0.5, 0.8}, f.Attention.Query[0])
	assert.Equal(t, []float64{0.5, 0.4, 0.8, -0.6}, f.Attention.Key[2])
	assert.Equal(t, []float64{-0.4, 0.5, 0.1, 0.8}, f.Attention.Value[2])

	require.Len(t, f.Heads, 4)
	assert.Equal(t, "Head 1", f.Heads[0].Name)
	assert.Equal(t, []float64{0.1, 0.7, 0.2}, f.Heads[0].Weights)

	assert.Equal(t, 0.5, f.FeedForward.Input)
	assert.Len(t, f.ForwardPass, 9)
	assert.Equal(t, "Input Tokens", f.ForwardPass[0].Title)
	assert.Len(t, f.Architecture, 15)
	assert.Equal(t, "Input\nEmbedding", f.Architecture[0].Label)
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.Tokens[0] = "changed"
	assert.Equal(t, "I", Default().Tokens[0])
}

const minimalYAML = `
perceptron:
  inputs: [1, 0]
  weights: [0.5, 0.5]
  bias: -0.5
tokens: [a, b]
embedding:
  dim: 2
  vectors: [[0, 1], [1, 0]]
attention:
  head_dim: 2
  query: [[1, 0], [0, 1]]
  key: [[1, 0], [0, 1]]
  value: [[2, 0, 1], [0, 2, 1]]
heads:
  - name: only
    weights: [0.5, 0.5]
feed_forward:
  input: 0.1
forward_pass:
  - title: one
`

func TestParse_Minimal(t *testing.T) {
	f, err := Parse([]byte(minimalYAML))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, f.Tokens)
	assert.Equal(t, 3, len(f.Attention.Value[0]))
	assert.Empty(t, f.Architecture)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		wantMsg string
	}{
		{
			name:    "unknown key",
			mutate:  func(s string) string { return s + "colour: blue\n" },
			wantMsg: "colour",
		},
		{
			name:    "perceptron length mismatch",
			mutate:  func(s string) string { return strings.Replace(s, "weights: [0.5, 0.5]\n  bias", "weights: [0.5]\n  bias", 1) },
			wantMsg: "2 inputs but 1 weights",
		},
		{
			name:    "ragged query",
			mutate:  func(s string) string { return strings.Replace(s, "query: [[1, 0], [0, 1]]", "query: [[1, 0], [0]]", 1) },
			wantMsg: "attention.query[1]",
		},
		{
			name:    "zero head_dim",
			mutate:  func(s string) string { return strings.Replace(s, "head_dim: 2", "head_dim: 0", 1) },
			wantMsg: "head_dim must be positive",
		},
		{
			name:    "embedding row count",
			mutate:  func(s string) string { return strings.Replace(s, "vectors: [[0, 1], [1, 0]]", "vectors: [[0, 1]]", 1) },
			wantMsg: "embedding.vectors",
		},
		{
			name:    "head weights per token",
			mutate:  func(s string) string { return strings.Replace(s, "weights: [0.5, 0.5]\nfeed", "weights: [1]\nfeed", 1) },
			wantMsg: "heads[0]",
		},
		{
			name:    "negative head weight",
			mutate:  func(s string) string { return strings.Replace(s, "weights: [0.5, 0.5]\nfeed", "weights: [-0.1, 0.5]\nfeed", 1) },
			wantMsg: "heads[0] (only): weight 0 is -0.1",
		},
		{
			name:    "head weight above one",
			mutate:  func(s string) string { return strings.Replace(s, "weights: [0.5, 0.5]\nfeed", "weights: [0.5, 1.5]\nfeed", 1) },
			wantMsg: "weight 1 is 1.5",
		},
		{
			name:    "no tokens",
			mutate:  func(s string) string { return strings.Replace(s, "tokens: [a, b]", "tokens: []", 1) },
			wantMsg: "tokens",
		},
		{
			name:    "no steps",
			mutate:  func(s string) string { return strings.Replace(s, "forward_pass:\n  - title: one\n", "", 1) },
			wantMsg: "forward_pass",
		},
		{
			name: "duplicate block id",
			mutate: func(s string) string {
				return s + "architecture:\n  - id: x\n  - id: x\n"
			},
			wantMsg: "duplicate id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.mutate(minimalYAML)))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParse_ValidationErrorsWrapSentinel(t *testing.T) {
	_, err := Parse([]byte(strings.Replace(minimalYAML, "head_dim: 2", "head_dim: -1", 1)))
	assert.ErrorIs(t, err, ErrInvalidFixture)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalYAML), 0o600))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, f.Tokens)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWithTokens(t *testing.T) {
	f := Default()

	g, err := f.WithTokens([]string{"We", "like", "Go"})
	require.NoError(t, err)
	assert.Equal(t, []string{"We", "like", "Go"}, g.Tokens)
	assert.Equal(t, []string{"I", "love", "AI"}, f.Tokens)
	assert.Equal(t, f.Attention, g.Attention)
	require.NoError(t, g.Validate())

	// The copy shares no tables with the original.
	g.Attention.Query[0][0] = 99
	g.Heads[0].Weights[0] = 0.9
	g.Perceptron.Inputs[0] = 0.7
	g.Embedding.Vectors[1][2] = -5
	assert.Equal(t, 1.2, f.Attention.Query[0][0])
	assert.Equal(t, 0.1, f.Heads[0].Weights[0])
	assert.Equal(t, 0.5, f.Perceptron.Inputs[0])
	assert.NotEqual(t, -5.0, f.Embedding.Vectors[1][2])

	_, err = f.WithTokens([]string{"too", "few"})
	assert.ErrorIs(t, err, ErrInvalidFixture)
}
