package tokenizer

import (
	"fmt"
	"strings"
)

// Tokenizer is the core interface for text tokenization.
//
// All tokenizer implementations (word, tiktoken) must implement this interface.
type Tokenizer interface {
	// Encode converts text to token IDs.
	Encode(text string) ([]int32, error)

	// Decode converts token IDs back to text.
	Decode(tokens []int32) (string, error)

	// VocabSize returns the total vocabulary size.
	VocabSize() int

	// Name returns the tokenizer name (e.g., "word", "cl100k_base").
	Name() string
}

// Token is one entry of a token sequence.
type Token struct {
	ID    int32
	Label string // Display text, without the leading space BPE tokens carry
}

// Sequence splits text into labelled tokens.
//
// Each ID is decoded on its own to get its label. Labels are trimmed of
// surrounding whitespace, so " love" from a BPE vocabulary is shown as "love".
//
// Example:
//
//	tok := tokenizer.NewWordTokenizer([]string{"I", "love", "AI"})
//	seq, _ := tokenizer.Sequence(tok, "I love AI")
//	// seq: [{0 I} {1 love} {2 AI}]
func Sequence(tok Tokenizer, text string) ([]Token, error) {
	ids, err := tok.Encode(text)
	if err != nil {
		return nil, fmt.Errorf("%s: encode: %w", tok.Name(), err)
	}

	seq := make([]Token, len(ids))
	for i, id := range ids {
		piece, err := tok.Decode([]int32{id})
		if err != nil {
			return nil, fmt.Errorf("%s: decode token %d: %w", tok.Name(), id, err)
		}
		seq[i] = Token{ID: id, Label: strings.TrimSpace(piece)}
	}
	return seq, nil
}

// Labels returns only the labels of Sequence(tok, text).
func Labels(tok Tokenizer, text string) ([]string, error) {
	seq, err := Sequence(tok, text)
	if err != nil {
		return nil, err
	}
	labels := make([]string, len(seq))
	for i, t := range seq {
		labels[i] = t.Label
	}
	return labels, nil
}
