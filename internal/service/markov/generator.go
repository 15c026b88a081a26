package markov

import (
	"context"
	"io"
	"math/rand/v2"
	"strings"

	"markov-go/internal/model/chain"

	"go.uber.org/zap"
)

const (
	// DefaultMaxOutputTokens caps the generated text, seed prefix included
	DefaultMaxOutputTokens = 10000

	// MaxOutputTokensLimit is the largest cap a caller may request
	MaxOutputTokensLimit = 1000000

	// approxOutputTokens bounds the up-front allocation for the output slice
	approxOutputTokens = 10000

	// ctxCheckInterval is how many steps run between context checks
	ctxCheckInterval = 1024
)

// Rand picks an index uniformly in [0, n)
type Rand interface {
	IntN(n int) int
}

type runtimeRand struct{}

func (runtimeRand) IntN(n int) int {
	return rand.IntN(n)
}

// NewRand returns a random source. A zero seed uses the runtime's randomly
// seeded generator, so output varies between runs; any other seed gives a
// reproducible sequence.
func NewRand(seed uint64) Rand {
	if seed == 0 {
		return runtimeRand{}
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// GenerationResult holds the output of a chain walk
type GenerationResult struct {
	Tokens chain.TokenSequence
	// Exhausted is set when the walk stopped on a prefix with no recorded
	// continuation rather than on the output cap
	Exhausted bool
}

// Generator walks a Chain to produce text
type Generator struct {
	maxTokens int
	rng       Rand
	logger    *zap.Logger
}

// NewGenerator creates a new generator. maxTokens counts the two seed
// tokens; a nil rng uses the runtime random source.
func NewGenerator(maxTokens int, rng Rand, logger *zap.Logger) *Generator {
	if rng == nil {
		rng = runtimeRand{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		maxTokens: maxTokens,
		rng:       rng,
		logger:    logger,
	}
}

// Generate walks the chain and returns the emitted tokens
func (g *Generator) Generate(ctx context.Context, c *Chain) (chain.TokenSequence, error) {
	result, err := g.Walk(ctx, c)
	if err != nil {
		return nil, err
	}
	return result.Tokens, nil
}

// Walk emits the initial prefix, then up to maxTokens-2 words chosen
// uniformly among the continuations of the current prefix. It stops early
// when the current prefix has no continuation.
func (g *Generator) Walk(ctx context.Context, c *Chain) (*GenerationResult, error) {
	steps := g.maxTokens - chain.PrefixLen
	out := make(chain.TokenSequence, 0, min(max(g.maxTokens, chain.PrefixLen), approxOutputTokens))

	prefix := c.Initial
	out = append(out, prefix.A, prefix.B)

	exhausted := false
	for i := 0; i < steps; i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		suffixes, ok := c.Table.Lookup(prefix)
		if !ok {
			exhausted = true
			break
		}

		word := suffixes[g.rng.IntN(len(suffixes))]
		out = append(out, word)
		prefix = prefix.Shift(word)
	}

	g.logger.Debug("Generated text",
		zap.Int("tokens", len(out)),
		zap.Int("max_tokens", g.maxTokens),
		zap.Bool("exhausted", exhausted),
	)

	return &GenerationResult{
		Tokens:    out,
		Exhausted: exhausted,
	}, nil
}

// FormatTokens renders tokens one per line, each newline-terminated
func FormatTokens(tokens chain.TokenSequence) string {
	size := 0
	for _, token := range tokens {
		size += len(token) + 1
	}

	var sb strings.Builder
	sb.Grow(size)
	for _, token := range tokens {
		sb.WriteString(token)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTokens writes the whole output to w in a single call
func WriteTokens(w io.Writer, tokens chain.TokenSequence) error {
	_, err := io.WriteString(w, FormatTokens(tokens))
	return err
}
