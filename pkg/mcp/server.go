package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"markov-go/internal/config"
	"markov-go/internal/service"
	"markov-go/internal/service/markov"
	"markov-go/internal/service/tokenizer"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type MarkovServer struct {
	server        *mcp.Server
	markovService *service.MarkovService
	config        *config.Config
	logger        *zap.Logger
	handler       *mcp.StreamableHTTPHandler
}

type GenerateTextParams struct {
	Corpus    string `json:"corpus" jsonschema:"the source text the chain is built from"`
	MaxTokens int    `json:"max_tokens,omitempty" jsonschema:"maximum number of words to emit, the two seed words included"`
}

func NewMarkovServer(markovService *service.MarkovService, cfg *config.Config, logger *zap.Logger) *MarkovServer {
	server := &MarkovServer{
		markovService: markovService,
		config:        cfg,
		logger:        logger,
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "MarkovText",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "generateText",
		Description: "Build an order-2 word Markov chain from the given corpus and return a randomly generated derivative text, one word per line",
	}, server.handleGenerateText)

	server.handler = mcp.NewStreamableHTTPHandler(func(req *http.Request) *mcp.Server {
		return mcpServer
	}, nil)

	server.server = mcpServer
	return server
}

func (s *MarkovServer) handleGenerateText(ctx context.Context, req *mcp.CallToolRequest, args GenerateTextParams) (*mcp.CallToolResult, any, error) {
	requestID := uuid.NewString()
	s.logger.Info("Handling generateText request",
		zap.String("request_id", requestID),
		zap.Int("corpus_bytes", len(args.Corpus)),
		zap.Int("max_tokens", args.MaxTokens))

	result, _, err := s.markovService.Generate(ctx, tokenizer.NewCorpus(args.Corpus), args.MaxTokens)
	if err != nil {
		s.logger.Error("Failed to generate text", zap.String("request_id", requestID), zap.Error(err))
		text := fmt.Sprintf("Failed to generate text: %v", err)
		switch {
		case errors.Is(err, markov.ErrDocumentTooShort):
			text = "Corpus must contain at least two words"
		case errors.Is(err, markov.ErrMaxTokensOutOfRange):
			text = fmt.Sprintf("max_tokens must be between 0 and %d, got %d", markov.MaxOutputTokensLimit, args.MaxTokens)
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
			IsError: true,
		}, nil, nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: markov.FormatTokens(result.Tokens)}},
	}, nil, nil
}

// ListenAndServe serves MCP on the configured address until ctx is done
func (s *MarkovServer) ListenAndServe(ctx context.Context) error {
	address := s.config.Mcp.GetAddress()
	httpServer := &http.Server{Addr: address, Handler: s.handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("MCP server shutdown failed", zap.Error(err))
		}
	}()

	s.logger.Info("MCP Server going to listen", zap.String("address", address))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}
