package markov

import (
	"errors"
	"fmt"
	"iter"

	"markov-go/internal/model/chain"

	"go.uber.org/zap"
)

const (
	// DefaultCapacityHint is roughly the number of distinct prefixes in the
	// Book of Psalms
	DefaultCapacityHint = 20000
)

var (
	// ErrDocumentTooShort is returned when the corpus has fewer than two tokens
	ErrDocumentTooShort = errors.New("expected longer document")

	// ErrMaxTokensOutOfRange is returned for a negative output cap or one
	// above MaxOutputTokensLimit
	ErrMaxTokensOutOfRange = errors.New("max output tokens out of range")
)

// Chain is a built order-2 Markov chain. It is read-only once Build returns.
type Chain struct {
	Initial    chain.Prefix
	Table      *ContinuationTable
	tokenCount int
}

// TokenCount returns the number of corpus tokens the chain was built from
func (c *Chain) TokenCount() int {
	return c.tokenCount
}

// Builder constructs a Chain from a token stream
type Builder struct {
	capacityHint int
	logger       *zap.Logger
}

// NewBuilder creates a new chain builder
func NewBuilder(capacityHint int, logger *zap.Logger) *Builder {
	if capacityHint <= 0 {
		capacityHint = DefaultCapacityHint
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		capacityHint: capacityHint,
		logger:       logger,
	}
}

// Build consumes tokens once, left to right. The first two tokens form the
// initial prefix; every later token is appended to the continuations of the
// two tokens before it.
func (b *Builder) Build(tokens iter.Seq[chain.Token]) (*Chain, error) {
	table := newContinuationTable(b.capacityHint)

	var initial, prefix chain.Prefix
	count := 0
	for word := range tokens {
		switch count {
		case 0:
			initial.A = word
		case 1:
			initial.B = word
			prefix = initial
		default:
			table.add(prefix, word)
			prefix = prefix.Shift(word)
		}
		count++
	}

	if count < chain.PrefixLen {
		return nil, fmt.Errorf("%w: got %d tokens, need at least %d", ErrDocumentTooShort, count, chain.PrefixLen)
	}

	c := &Chain{
		Initial:    initial,
		Table:      table,
		tokenCount: count,
	}

	b.logger.Debug("Built continuation table",
		zap.Int("tokens", count),
		zap.Int("prefixes", table.Len()),
		zap.Int("continuations", table.Total()),
		zap.String("initial_prefix", initial.String()),
	)

	return c, nil
}
