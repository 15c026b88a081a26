package chain

// Token is a single whitespace-delimited word of the corpus. Tokens are
// substrings of the corpus text and share its backing memory.
type Token = string

// TokenSequence is a slice of tokens
type TokenSequence []Token

// PrefixLen is the number of words in a Prefix. The chain order is fixed.
const PrefixLen = 2

// Prefix is the pair of words immediately preceding the next word. Equality
// and map hashing are structural over both words, in order.
type Prefix struct {
	A Token
	B Token
}

// NewPrefix creates a prefix from two tokens
func NewPrefix(a, b Token) Prefix {
	return Prefix{A: a, B: b}
}

// Shift returns the prefix that follows p once w has been emitted
func (p Prefix) Shift(w Token) Prefix {
	return Prefix{A: p.B, B: w}
}

// String returns the prefix as a space-separated string
func (p Prefix) String() string {
	return p.A + " " + p.B
}
