package service

import (
	"context"
	"fmt"
	"io"

	"markov-go/internal/config"
	"markov-go/internal/service/markov"
	"markov-go/internal/service/tokenizer"

	"go.uber.org/zap"
)

// MarkovService runs the tokenize -> build -> generate pipeline for a corpus
type MarkovService struct {
	cfg       config.MarkovConfig
	registry  *tokenizer.TokenizerRegistry
	tokenizer tokenizer.Tokenizer
	builder   *markov.Builder
	logger    *zap.Logger
}

// NewMarkovService creates a new Markov service from configuration
func NewMarkovService(cfg config.MarkovConfig, logger *zap.Logger) (*MarkovService, error) {
	registry := tokenizer.NewTokenizerRegistry()

	name := cfg.Tokenizer
	if name == "" {
		name = tokenizer.WhitespaceTokenizerName
	}
	tok, ok := registry.GetTokenizer(name)
	if !ok {
		return nil, fmt.Errorf("no tokenizer found with name: %s", name)
	}

	return &MarkovService{
		cfg:       cfg,
		registry:  registry,
		tokenizer: tok,
		builder:   markov.NewBuilder(cfg.CapacityHint, logger),
		logger:    logger,
	}, nil
}

// BuildChain tokenizes the corpus and builds its continuation table
func (s *MarkovService) BuildChain(ctx context.Context, corpus *tokenizer.Corpus) (*markov.Chain, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c, err := s.builder.Build(s.tokenizer.Tokens(corpus))
	if err != nil {
		return nil, fmt.Errorf("failed to build chain: %w", err)
	}
	return c, nil
}

// NewGenerator returns a generator using the configured cap and seed. A
// positive maxTokens overrides the configured cap; values outside
// [0, markov.MaxOutputTokensLimit] are rejected.
//
// With a non-zero seed each generator starts a fresh source from that seed,
// so the same corpus always yields the same text.
func (s *MarkovService) NewGenerator(maxTokens int) (*markov.Generator, error) {
	if maxTokens < 0 || maxTokens > markov.MaxOutputTokensLimit {
		return nil, fmt.Errorf("%w: got %d, limit is %d", markov.ErrMaxTokensOutOfRange, maxTokens, markov.MaxOutputTokensLimit)
	}
	if maxTokens == 0 {
		maxTokens = s.cfg.MaxOutputTokens
	}
	return markov.NewGenerator(maxTokens, markov.NewRand(s.cfg.Seed), s.logger), nil
}

// Generate builds a chain from the corpus and walks it
func (s *MarkovService) Generate(ctx context.Context, corpus *tokenizer.Corpus, maxTokens int) (*markov.GenerationResult, *markov.Chain, error) {
	generator, err := s.NewGenerator(maxTokens)
	if err != nil {
		return nil, nil, err
	}

	c, err := s.BuildChain(ctx, corpus)
	if err != nil {
		return nil, nil, err
	}

	result, err := generator.Walk(ctx, c)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate text: %w", err)
	}

	s.logger.Info("Generated text from corpus",
		zap.Int("corpus_bytes", corpus.Len()),
		zap.Int("corpus_tokens", c.TokenCount()),
		zap.Int("prefixes", c.Table.Len()),
		zap.Int("output_tokens", len(result.Tokens)),
		zap.Bool("exhausted", result.Exhausted),
	)

	return result, c, nil
}

// GenerateFromReader reads the whole corpus from r, generates text and
// writes it to w, one token per line
func (s *MarkovService) GenerateFromReader(ctx context.Context, r io.Reader, w io.Writer) (*markov.GenerationResult, error) {
	corpus, err := tokenizer.ReadCorpus(r)
	if err != nil {
		return nil, err
	}

	result, _, err := s.Generate(ctx, corpus, 0)
	if err != nil {
		return nil, err
	}

	if err := markov.WriteTokens(w, result.Tokens); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}
	return result, nil
}

// SupportedTokenizers returns the names of the available tokenizers
func (s *MarkovService) SupportedTokenizers() []string {
	return s.registry.SupportedTokenizers()
}
