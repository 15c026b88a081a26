package controller

import (
	"errors"
	"net/http"

	"markov-go/internal/service"
	"markov-go/internal/service/markov"
	"markov-go/internal/service/tokenizer"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestIDKey is the gin context key holding the request id
const RequestIDKey = "request_id"

type MarkovController struct {
	markovService *service.MarkovService
	logger        *zap.Logger
}

func NewMarkovController(markovService *service.MarkovService, logger *zap.Logger) *MarkovController {
	return &MarkovController{
		markovService: markovService,
		logger:        logger,
	}
}

type GenerateRequest struct {
	Corpus    string `json:"corpus"`
	MaxTokens int    `json:"max_tokens"`
}

type GenerateResponse struct {
	RequestID string            `json:"request_id"`
	Tokens    []string          `json:"tokens"`
	Exhausted bool              `json:"exhausted"`
	Stats     markov.ChainStats `json:"stats"`
}

type ChainStatsRequest struct {
	Corpus string `json:"corpus"`
}

type ChainStatsResponse struct {
	RequestID string            `json:"request_id"`
	Stats     markov.ChainStats `json:"stats"`
}

func (mc *MarkovController) Generate(c *gin.Context) {
	var request GenerateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		mc.logger.Error("Invalid request payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	requestID := c.GetString(RequestIDKey)
	mc.logger.Info("Generating text",
		zap.String("request_id", requestID),
		zap.Int("corpus_bytes", len(request.Corpus)),
		zap.Int("max_tokens", request.MaxTokens))

	result, chain, err := mc.markovService.Generate(c.Request.Context(), tokenizer.NewCorpus(request.Corpus), request.MaxTokens)
	if err != nil {
		mc.respondError(c, "Failed to generate text", err)
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{
		RequestID: requestID,
		Tokens:    result.Tokens,
		Exhausted: result.Exhausted,
		Stats:     chain.Stats(),
	})
}

func (mc *MarkovController) ChainStats(c *gin.Context) {
	var request ChainStatsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		mc.logger.Error("Invalid request payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	requestID := c.GetString(RequestIDKey)
	chain, err := mc.markovService.BuildChain(c.Request.Context(), tokenizer.NewCorpus(request.Corpus))
	if err != nil {
		mc.respondError(c, "Failed to build chain", err)
		return
	}

	stats := chain.Stats()
	mc.logger.Info("Built chain",
		zap.String("request_id", requestID),
		zap.Int("prefixes", stats.PrefixCount),
		zap.Int("continuations", stats.ContinuationCount))

	c.JSON(http.StatusOK, ChainStatsResponse{
		RequestID: requestID,
		Stats:     stats,
	})
}

func (mc *MarkovController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"tokenizers": mc.markovService.SupportedTokenizers(),
	})
}

func (mc *MarkovController) respondError(c *gin.Context, message string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, markov.ErrMaxTokensOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, markov.ErrDocumentTooShort):
		status = http.StatusUnprocessableEntity
	}

	mc.logger.Error(message,
		zap.String("request_id", c.GetString(RequestIDKey)),
		zap.Int("status", status),
		zap.Error(err))
	c.JSON(status, gin.H{
		"error":   message,
		"details": err.Error(),
	})
}
