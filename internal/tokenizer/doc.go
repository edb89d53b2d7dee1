// Package tokenizer turns a sentence into the token labels the widgets display.
//
// Two tokenizers are provided:
//   - WordTokenizer: whitespace split over a fixed vocabulary ("I love AI" → I, love, AI)
//   - TikToken: OpenAI BPE encodings via pkoukk/tiktoken-go (cl100k_base, p50k_base)
//
// Example usage:
//
//	tok := tokenizer.NewWordTokenizerFromText("I love AI")
//	labels, err := tokenizer.Labels(tok, "I love AI")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// labels: [I love AI]
package tokenizer
