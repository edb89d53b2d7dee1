package viz

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/neuroviz/neuroviz/internal/config"
	"github.com/neuroviz/neuroviz/internal/nn"
	"github.com/neuroviz/neuroviz/internal/tensor"
)

// EmbeddingView is the token embedding + positional encoding breakdown.
type EmbeddingView struct {
	Tokens     []string
	Dim        int
	Embeddings [][]float64 // [tokens, Dim]
	Positional [][]float64 // [tokens, Dim]
	Final      [][]float64 // Embeddings + Positional
}

// Embedding is the controller of the embedding widget.
//
// The widget is read-only: its state is fixed by the token sequence and the
// embedding fixture.
type Embedding struct {
	tokens     []string
	embeddings *mat.Dense
	positional *mat.Dense
	final      *mat.Dense
}

// NewEmbedding computes positional encodings for the tokens and adds them to
// the embeddings. vectors must have one row of width dim per token.
func NewEmbedding(tokens []string, vectors [][]float64, dim int) (*Embedding, error) {
	if dim <= 0 {
		return nil, tensor.DomainError("NewEmbedding", "dim must be positive, got %d", dim)
	}
	emb, err := tensor.FromRows(vectors)
	if err != nil {
		return nil, fmt.Errorf("embeddings: %w", err)
	}
	if r, c := emb.Dims(); r != len(tokens) || c != dim {
		return nil, tensor.NewShapeError("NewEmbedding", "embeddings",
			tensor.Shape{r, c}, tensor.Shape{len(tokens), dim})
	}

	pe := nn.NewSinusoidalPositionalEncoding(len(tokens), dim)
	positional, err := pe.Forward(len(tokens))
	if err != nil {
		return nil, err
	}
	final, err := nn.AddPositional(emb, positional)
	if err != nil {
		return nil, err
	}

	return &Embedding{
		tokens:     append([]string(nil), tokens...),
		embeddings: emb,
		positional: positional,
		final:      final,
	}, nil
}

// NewEmbeddingFromFixtures creates the widget over the embedding fixture.
func NewEmbeddingFromFixtures(f *config.Fixtures) (*Embedding, error) {
	return NewEmbedding(f.Tokens, f.Embedding.Vectors, f.Embedding.Dim)
}

// View returns the three matrices.
func (e *Embedding) View() EmbeddingView {
	_, dim := e.embeddings.Dims()
	return EmbeddingView{
		Tokens:     append([]string(nil), e.tokens...),
		Dim:        dim,
		Embeddings: tensor.Rows(e.embeddings),
		Positional: tensor.Rows(e.positional),
		Final:      tensor.Rows(e.final),
	}
}
