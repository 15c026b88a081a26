package main

import (
	"context"
	"errors"
	"log"
	"os"

	"markov-go/internal/config"
	"markov-go/internal/service"
	"markov-go/internal/service/markov"
	"markov-go/internal/service/tokenizer"
	"markov-go/internal/util"

	"go.uber.org/zap"
)

// Reads a corpus from stdin and writes a generated text to stdout, one word
// per line.
func main() {
	cfg := config.Default()

	logger, err := util.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	markovService, err := service.NewMarkovService(cfg.Markov, logger)
	if err != nil {
		logger.Fatal("Failed to initialize Markov service", zap.Error(err))
	}

	if _, err := markovService.GenerateFromReader(context.Background(), os.Stdin, os.Stdout); err != nil {
		switch {
		case errors.Is(err, tokenizer.ErrInputRead):
			logger.Fatal("Error reading from stdin", zap.Error(err))
		case errors.Is(err, markov.ErrDocumentTooShort):
			logger.Fatal("Expected longer document", zap.Error(err))
		default:
			logger.Fatal("Failed to generate text", zap.Error(err))
		}
	}
}
