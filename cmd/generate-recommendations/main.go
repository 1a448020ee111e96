package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/BotGJ16/ContentVault/internal/app"
	"github.com/BotGJ16/ContentVault/internal/command"
	"github.com/BotGJ16/ContentVault/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Setup logger
	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	if err := run(ctx); err != nil {
		logger.ErrorContext(ctx, "recommendation generation failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "recommendation generation completed successfully")
}

func run(ctx context.Context) error {
	runCmd, err := app.SetupRecommendationGeneration(ctx)
	if err != nil {
		return fmt.Errorf("setting up recommendation generation: %w", err)
	}

	resp, err := runCmd.Execute(ctx, command.RunRecommendationGenerationRequest{})
	if err != nil {
		return err
	}

	if resp.SuccessCount == 0 && resp.FailCount > 0 {
		return fmt.Errorf("recommendations failed for all %d active users", resp.FailCount)
	}
	return nil
}
