package tokenizer

import (
	"iter"
	"sort"

	"markov-go/internal/model/chain"
)

// Tokenizer splits a corpus into a lazy sequence of tokens
type Tokenizer interface {
	// Tokens returns the tokens of the corpus in order. The sequence can be
	// iterated more than once; each iteration starts from the beginning.
	Tokens(corpus *Corpus) iter.Seq[chain.Token]

	// Name returns the name the tokenizer is registered under
	Name() string
}

// TokenizerRegistry manages tokenizers by name
type TokenizerRegistry struct {
	tokenizers map[string]Tokenizer
}

// NewTokenizerRegistry creates a registry with the built-in tokenizers registered
func NewTokenizerRegistry() *TokenizerRegistry {
	tr := &TokenizerRegistry{
		tokenizers: make(map[string]Tokenizer),
	}
	tr.Register(NewWhitespaceTokenizer())
	return tr
}

// Register adds a tokenizer, replacing any tokenizer with the same name
func (tr *TokenizerRegistry) Register(tokenizer Tokenizer) {
	tr.tokenizers[tokenizer.Name()] = tokenizer
}

// GetTokenizer returns the tokenizer registered under name
func (tr *TokenizerRegistry) GetTokenizer(name string) (Tokenizer, bool) {
	tokenizer, ok := tr.tokenizers[name]
	return tokenizer, ok
}

// SupportedTokenizers returns the sorted names of all registered tokenizers
func (tr *TokenizerRegistry) SupportedTokenizers() []string {
	names := make([]string, 0, len(tr.tokenizers))
	for name := range tr.tokenizers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
