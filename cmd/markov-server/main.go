package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"markov-go/internal/config"
	"markov-go/internal/controller"
	"markov-go/internal/handler"
	"markov-go/internal/service"
	"markov-go/internal/util"
	"markov-go/pkg/mcp"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var appConfigPath = flag.String("app", "", "Path to app configuration file")
	flag.Parse()

	cfg := config.Default()
	if *appConfigPath != "" {
		loaded, err := config.LoadConfig(*appConfigPath)
		if err != nil {
			log.Fatal("Failed to load configuration:", err)
		}
		cfg = loaded
	}

	logger, err := util.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	logger.Info("Configuration loaded successfully", zap.Any("config", cfg))

	markovService, err := service.NewMarkovService(cfg.Markov, logger)
	if err != nil {
		logger.Fatal("Failed to initialize Markov service", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mcpServer := mcp.NewMarkovServer(markovService, cfg, logger)
	go func() {
		if err := mcpServer.ListenAndServe(ctx); err != nil {
			logger.Error("MCP server stopped", zap.Error(err))
		}
	}()

	markovController := controller.NewMarkovController(markovService, logger)
	router := handler.SetupRouter(markovController, logger)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("Starting server", zap.Int("port", cfg.App.Port))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
	<-shutdownDone
}
