package tokenizer

import (
	"iter"
	"unicode"
	"unicode/utf8"

	"markov-go/internal/model/chain"
)

// WhitespaceTokenizerName is the registry name of WhitespaceTokenizer
const WhitespaceTokenizerName = "whitespace"

// WhitespaceTokenizer splits text on runs of Unicode whitespace. Token
// content is kept verbatim: no case folding, no punctuation stripping.
type WhitespaceTokenizer struct{}

// NewWhitespaceTokenizer creates a new whitespace tokenizer
func NewWhitespaceTokenizer() *WhitespaceTokenizer {
	return &WhitespaceTokenizer{}
}

func (t *WhitespaceTokenizer) Name() string {
	return WhitespaceTokenizerName
}

func (t *WhitespaceTokenizer) Tokens(corpus *Corpus) iter.Seq[chain.Token] {
	return func(yield func(chain.Token) bool) {
		text := corpus.Text()
		start := -1
		for i := 0; i < len(text); {
			r, size := utf8.DecodeRuneInString(text[i:])
			if unicode.IsSpace(r) {
				if start >= 0 {
					if !yield(text[start:i]) {
						return
					}
					start = -1
				}
			} else if start < 0 {
				start = i
			}
			i += size
		}
		if start >= 0 {
			yield(text[start:])
		}
	}
}
