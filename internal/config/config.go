// Package config loads the example data the widgets run on.
//
// The fixtures (token labels, embeddings, query/key/value matrices, head
// tables and narration steps) live in YAML so the numeric kernels never embed
// example literals. Default returns the built-in set; Load and Parse accept
// alternatives with the same layout.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// ErrInvalidFixture is returned when fixture data is inconsistent.
var ErrInvalidFixture = errors.New("invalid fixture")

//go:embed defaults.yaml
var defaultsYAML []byte

// Fixtures is the complete set of widget example data.
type Fixtures struct {
	Perceptron   Perceptron  `yaml:"perceptron"`
	Tokens       []string    `yaml:"tokens"`
	Embedding    Embedding   `yaml:"embedding"`
	Attention    Attention   `yaml:"attention"`
	Heads        []Head      `yaml:"heads"`
	FeedForward  FeedForward `yaml:"feed_forward"`
	ForwardPass  []Step      `yaml:"forward_pass"`
	Architecture []Block     `yaml:"architecture"`
}

// Perceptron holds the perceptron's initial state.
type Perceptron struct {
	Inputs  []float64 `yaml:"inputs"`
	Weights []float64 `yaml:"weights"`
	Bias    float64   `yaml:"bias"`
}

// Embedding holds one embedding vector per token.
type Embedding struct {
	Dim     int         `yaml:"dim"`
	Vectors [][]float64 `yaml:"vectors"`
}

// Attention holds the query, key and value rows, one per token.
type Attention struct {
	HeadDim int         `yaml:"head_dim"`
	Query   [][]float64 `yaml:"query"`
	Key     [][]float64 `yaml:"key"`
	Value   [][]float64 `yaml:"value"`
}

// Head describes one illustrative attention head.
type Head struct {
	Name    string    `yaml:"name"`
	Focus   string    `yaml:"focus"`
	Example string    `yaml:"example"`
	Weights []float64 `yaml:"weights"` // One weight per token
}

// FeedForward holds the FFN slider's initial value.
type FeedForward struct {
	Input float64 `yaml:"input"`
}

// Step is one stage of the forward-pass walkthrough.
type Step struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Visual      string `yaml:"visual"`
}

// Block is one box of the architecture diagram.
type Block struct {
	ID          string `yaml:"id"`
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
}

// Default returns the built-in fixtures.
//
// Panics if the embedded file is invalid, which is a build defect.
func Default() *Fixtures {
	f, err := Parse(defaultsYAML)
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return f
}

// Load reads and validates fixtures from a YAML file.
func Load(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: Path is provided by the caller on purpose.
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures %q: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fixtures %q: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates fixtures from YAML.
//
// Unknown keys are rejected so that typos do not silently fall back to zero
// values.
func Parse(data []byte) (*Fixtures, error) {
	var f Fixtures
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks that every table agrees with the token count and that
// matrices are rectangular.
func (f *Fixtures) Validate() error {
	n := len(f.Tokens)
	if n == 0 {
		return invalid("tokens: at least one token is required")
	}

	p := f.Perceptron
	if len(p.Inputs) == 0 {
		return invalid("perceptron: at least one input is required")
	}
	if len(p.Inputs) != len(p.Weights) {
		return invalid("perceptron: %d inputs but %d weights", len(p.Inputs), len(p.Weights))
	}

	if f.Embedding.Dim <= 0 {
		return invalid("embedding.dim must be positive, got %d", f.Embedding.Dim)
	}
	if err := checkMatrix("embedding.vectors", f.Embedding.Vectors, n, f.Embedding.Dim); err != nil {
		return err
	}

	a := f.Attention
	if a.HeadDim <= 0 {
		return invalid("attention.head_dim must be positive, got %d", a.HeadDim)
	}
	if err := checkMatrix("attention.query", a.Query, n, a.HeadDim); err != nil {
		return err
	}
	if err := checkMatrix("attention.key", a.Key, n, a.HeadDim); err != nil {
		return err
	}
	if len(a.Value) != n || len(a.Value[0]) == 0 {
		return invalid("attention.value: want %d non-empty rows, got %d", n, len(a.Value))
	}
	if err := checkMatrix("attention.value", a.Value, n, len(a.Value[0])); err != nil {
		return err
	}

	if len(f.Heads) == 0 {
		return invalid("heads: at least one head is required")
	}
	for i, h := range f.Heads {
		if len(h.Weights) != n {
			return invalid("heads[%d] (%s): %d weights for %d tokens", i, h.Name, len(h.Weights), n)
		}
		for j, w := range h.Weights {
			if !(w >= 0 && w <= 1) {
				return invalid("heads[%d] (%s): weight %d is %g, want [0, 1]", i, h.Name, j, w)
			}
		}
	}

	if len(f.ForwardPass) == 0 {
		return invalid("forward_pass: at least one step is required")
	}

	seen := make(map[string]bool, len(f.Architecture))
	for i, b := range f.Architecture {
		if b.ID == "" {
			return invalid("architecture[%d]: empty id", i)
		}
		if seen[b.ID] {
			return invalid("architecture: duplicate id %q", b.ID)
		}
		seen[b.ID] = true
	}

	return nil
}

// WithTokens returns a deep copy of f with the token labels replaced.
//
// The per-token tables stay as they are, so labels must match the current
// token count.
func (f *Fixtures) WithTokens(labels []string) (*Fixtures, error) {
	if len(labels) != len(f.Tokens) {
		return nil, invalid("tokens: got %d labels, want %d", len(labels), len(f.Tokens))
	}
	out := f.Clone()
	out.Tokens = append([]string(nil), labels...)
	return out, nil
}

// Clone returns a deep copy of f that shares no slices with it.
func (f *Fixtures) Clone() *Fixtures {
	out := *f
	out.Perceptron.Inputs = slices.Clone(f.Perceptron.Inputs)
	out.Perceptron.Weights = slices.Clone(f.Perceptron.Weights)
	out.Tokens = slices.Clone(f.Tokens)
	out.Embedding.Vectors = cloneMatrix(f.Embedding.Vectors)
	out.Attention.Query = cloneMatrix(f.Attention.Query)
	out.Attention.Key = cloneMatrix(f.Attention.Key)
	out.Attention.Value = cloneMatrix(f.Attention.Value)
	out.Heads = slices.Clone(f.Heads)
	for i := range out.Heads {
		out.Heads[i].Weights = slices.Clone(f.Heads[i].Weights)
	}
	out.ForwardPass = slices.Clone(f.ForwardPass)
	out.Architecture = slices.Clone(f.Architecture)
	return &out
}

func cloneMatrix(rows [][]float64) [][]float64 {
	if rows == nil {
		return nil
	}
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = slices.Clone(row)
	}
	return out
}

func checkMatrix(name string, rows [][]float64, wantRows, wantCols int) error {
	if len(rows) != wantRows {
		return invalid("%s: %d rows, want %d (one per token)", name, len(rows), wantRows)
	}
	for i, row := range rows {
		if len(row) != wantCols {
			return invalid("%s[%d]: %d columns, want %d", name, i, len(row), wantCols)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidFixture, fmt.Sprintf(format, args...))
}
