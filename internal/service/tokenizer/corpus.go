package tokenizer

import (
	"errors"
	"fmt"
	"io"
)

// ErrInputRead is returned when the corpus stream cannot be fully read
var ErrInputRead = errors.New("error reading corpus input")

// Corpus owns the full input text. It is read once and never modified;
// every token produced from it is a substring sharing its memory.
type Corpus struct {
	text string
}

// NewCorpus wraps text that is already in memory
func NewCorpus(text string) *Corpus {
	return &Corpus{text: text}
}

// ReadCorpus reads r to EOF and returns the corpus
func ReadCorpus(r io.Reader) (*Corpus, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputRead, err)
	}
	return &Corpus{text: string(data)}, nil
}

// Text returns the corpus text
func (c *Corpus) Text() string {
	return c.text
}

// Len returns the corpus size in bytes
func (c *Corpus) Len() int {
	return len(c.text)
}
