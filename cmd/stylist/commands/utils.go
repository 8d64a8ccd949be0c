// ABOUTME: Shared helpers for CLI commands
// ABOUTME: Wires config, OpenAI client, store, and recommender together
package commands

import (
	"context"
	"fmt"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/harper/stylist/internal/catalog"
	"github.com/harper/stylist/internal/config"
	"github.com/harper/stylist/internal/core"
	"github.com/harper/stylist/internal/imaging"
	"github.com/harper/stylist/internal/llm"
	"github.com/harper/stylist/internal/storage"
	openai "github.com/sashabaranov/go-openai"
)

// loadConfig loads .env and the environment-driven configuration
func loadConfig() (*config.Config, error) {
	// Load .env for API keys; absence is fine in production
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return cfg, nil
}

// newClient builds the OpenAI client from configuration
func newClient(cfg *config.Config) (*llm.OpenAIClient, error) {
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	return llm.NewOpenAIClientWithConfig(&llm.ClientConfig{
		APIKey:         cfg.OpenAIKey,
		ChatModel:      cfg.ChatModel,
		EmbeddingModel: openai.EmbeddingModel(cfg.EmbeddingModel),
		Timeout:        cfg.Timeout,
		MaxRetries:     cfg.MaxRetries,
		RetryDelay:     cfg.RetryDelay,
	})
}

// openStore opens the index lazily, building it from the configured
// catalog when absent
func openStore(ctx context.Context, cfg *config.Config, client *llm.OpenAIClient) (*storage.Store, error) {
	indexer := catalog.NewIndexer(client)
	indexer.SetVerbose(verbose)

	return storage.OpenOrBuild(cfg.IndexDir, client, func() error {
		if !quiet {
			fmt.Printf("No index at %s, building from %s...\n", cfg.IndexDir, cfg.CatalogPath)
		}
		_, err := indexer.IngestFile(ctx, cfg.CatalogPath, cfg.IndexDir)
		return err
	})
}

// newRecommender assembles the full recommendation stack
func newRecommender(cfg *config.Config, client *llm.OpenAIClient, store *storage.Store) *core.Recommender {
	fetcher := imaging.NewFetcher(&http.Client{Timeout: cfg.ImageFetchTimeout})
	formatter := core.NewFormatter(fetcher, cfg.MaxImagesPerRow)
	return core.NewRecommender(store, formatter, client)
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// validatePositiveInt returns error if n is not positive
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}
