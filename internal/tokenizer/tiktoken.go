package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding is the BPE encoding used when none is named.
const DefaultEncoding = "cl100k_base"

// vocabSizes holds the regular (non-special) vocabulary size per encoding.
var vocabSizes = map[string]int{
	"cl100k_base": 100256,
	"p50k_base":   50257,
	"r50k_base":   50257,
}

// TikToken splits text with an OpenAI BPE encoding from pkoukk/tiktoken-go.
//
// It shows how a real model would cut a sentence, including sub-word pieces
// such as "token" + "ization".
type TikToken struct {
	encoding *tiktoken.Tiktoken
	name     string
}

// NewTikToken loads the named encoding ("cl100k_base", "p50k_base", "r50k_base").
//
// The first call for an encoding may fetch its rank file; tiktoken-go caches it
// under TIKTOKEN_CACHE_DIR.
func NewTikToken(encodingName string) (*TikToken, error) {
	if encodingName == "" {
		encodingName = DefaultEncoding
	}
	encoding, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("load tiktoken encoding %q: %w", encodingName, err)
	}
	return &TikToken{encoding: encoding, name: encodingName}, nil
}

// Encode converts text to token IDs. Special tokens are treated as plain text.
func (t *TikToken) Encode(text string) ([]int32, error) {
	ids := t.encoding.Encode(text, nil, nil)
	out := make([]int32, len(ids))
	for i, id := range ids {
		out[i] = int32(id) //nolint:gosec // G115: Token ID fits in int32 - vocab size < 2^31.
	}
	return out, nil
}

// Decode converts token IDs back to text.
func (t *TikToken) Decode(tokens []int32) (string, error) {
	ids := make([]int, len(tokens))
	for i, id := range tokens {
		if id < 0 {
			return "", fmt.Errorf("negative token id %d", id)
		}
		ids[i] = int(id)
	}
	return t.encoding.Decode(ids), nil
}

// VocabSize returns the regular vocabulary size, or 0 for an encoding
// without a known size.
func (t *TikToken) VocabSize() int {
	return vocabSizes[t.name]
}

// Name returns the encoding name.
func (t *TikToken) Name() string {
	return t.name
}
