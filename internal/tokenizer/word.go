package tokenizer

import (
	"fmt"
	"strings"
)

// UnknownWord is the label of the word tokenizer's unknown token.
const UnknownWord = "<unk>"

// WordTokenizer splits text on whitespace and maps each word to a fixed vocabulary.
//
// ID 0 .. len(vocab)-1 are the vocabulary words in order; the next ID is the
// unknown token.
type WordTokenizer struct {
	vocab   map[string]int32
	reverse []string
}

// NewWordTokenizer creates a word tokenizer over vocab. Duplicate words keep
// their first ID.
func NewWordTokenizer(vocab []string) *WordTokenizer {
	w := &WordTokenizer{
		vocab:   make(map[string]int32, len(vocab)),
		reverse: make([]string, 0, len(vocab)+1),
	}
	for _, word := range vocab {
		if _, ok := w.vocab[word]; ok {
			continue
		}
		w.vocab[word] = int32(len(w.reverse)) //nolint:gosec // G115: Vocabulary sizes are tiny.
		w.reverse = append(w.reverse, word)
	}
	w.reverse = append(w.reverse, UnknownWord)
	return w
}

// NewWordTokenizerFromText creates a word tokenizer whose vocabulary is the
// distinct words of text, in order of first appearance.
func NewWordTokenizerFromText(text string) *WordTokenizer {
	return NewWordTokenizer(strings.Fields(text))
}

// Encode converts text to token IDs.
func (w *WordTokenizer) Encode(text string) ([]int32, error) {
	words := strings.Fields(text)
	ids := make([]int32, len(words))
	for i, word := range words {
		id, ok := w.vocab[word]
		if !ok {
			id = w.UnkToken()
		}
		ids[i] = id
	}
	return ids, nil
}

// Decode converts token IDs back to space-separated text.
func (w *WordTokenizer) Decode(tokens []int32) (string, error) {
	words := make([]string, len(tokens))
	for i, id := range tokens {
		if id < 0 || int(id) >= len(w.reverse) {
			return "", fmt.Errorf("token id %d out of range [0, %d)", id, len(w.reverse))
		}
		words[i] = w.reverse[id]
	}
	return strings.Join(words, " "), nil
}

// VocabSize returns the number of words plus the unknown token.
func (w *WordTokenizer) VocabSize() int {
	return len(w.reverse)
}

// UnkToken returns the unknown-word token ID.
func (w *WordTokenizer) UnkToken() int32 {
	return int32(len(w.reverse) - 1) //nolint:gosec // G115: Vocabulary sizes are tiny.
}

// Name returns "word".
func (w *WordTokenizer) Name() string {
	return "word"
}
