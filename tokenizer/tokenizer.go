// Package tokenizer splits text into the token labels shown by the widgets.
//
// This package wraps the internal tokenizer implementations and provides
// a clean public API for tokenization tasks.
//
// Supported tokenizers:
//   - WordTokenizer: whitespace split over a fixed vocabulary
//   - TikToken: OpenAI BPE tokenizers (cl100k_base, p50k_base, r50k_base)
//
// Example usage:
//
//	import "github.com/neuroviz/neuroviz/tokenizer"
//
//	tok, err := tokenizer.NewTikToken("cl100k_base")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	labels, err := tokenizer.Labels(tok, "I love AI")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// labels: [I love AI]
package tokenizer

import "github.com/neuroviz/neuroviz/internal/tokenizer"

// Tokenizer is the interface implemented by every tokenizer.
type Tokenizer = tokenizer.Tokenizer

// Token is one entry of a token sequence.
type Token = tokenizer.Token

// WordTokenizer splits on whitespace and maps words to a fixed vocabulary.
type WordTokenizer = tokenizer.WordTokenizer

// TikToken wraps an OpenAI BPE encoding.
type TikToken = tokenizer.TikToken

// DefaultEncoding is the BPE encoding used when none is named.
const DefaultEncoding = tokenizer.DefaultEncoding

// UnknownWord is the label of the word tokenizer's unknown token.
const UnknownWord = tokenizer.UnknownWord

// NewWordTokenizer creates a word tokenizer over vocab.
func NewWordTokenizer(vocab []string) *WordTokenizer {
	return tokenizer.NewWordTokenizer(vocab)
}

// NewWordTokenizerFromText creates a word tokenizer over the words of text.
func NewWordTokenizerFromText(text string) *WordTokenizer {
	return tokenizer.NewWordTokenizerFromText(text)
}

// NewTikToken loads the named tiktoken encoding.
func NewTikToken(encodingName string) (*TikToken, error) {
	return tokenizer.NewTikToken(encodingName)
}

// Sequence splits text into labelled tokens.
func Sequence(tok Tokenizer, text string) ([]Token, error) {
	return tokenizer.Sequence(tok, text)
}

// Labels returns the token labels of text.
func Labels(tok Tokenizer, text string) ([]string, error) {
	return tokenizer.Labels(tok, text)
}
