// ABOUTME: OpenAI client for embeddings and generative outfit suggestions
// ABOUTME: Uses text-embedding-3-small for vectors, a chat model for styling
package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/harper/stylist/internal/util"
	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultChatModel is the default model for outfit generation
	DefaultChatModel = "gpt-4o-mini"
	// DefaultEmbeddingModel is the default model for embeddings
	DefaultEmbeddingModel = openai.SmallEmbedding3
)

// Generation sampling parameters. The stylist model was tuned against
// nucleus sampling with these values and a bounded output length.
const (
	generateTemperature = 0.9
	generateTopP        = 0.9
	generateMaxTokens   = 800
)

// stylistPromptTemplate is the instruction prompt the stylist model was
// tuned against. The exact wording is a contract with the model; do not
// edit it casually.
const stylistPromptTemplate = `You are a personal stylist recommending fashion advice and clothing combinations. Use the self body and style description below, combined with the event described in the context to generate 5 self-contained and complete outfit combinations.
        ### Input:
        %s

        ### Context:
        I'm going to a %s.

        ### Response:
    `

// ClientConfig holds configuration for the OpenAI client
type ClientConfig struct {
	APIKey         string
	ChatModel      string
	EmbeddingModel openai.EmbeddingModel
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
}

// DefaultConfig returns the default client configuration
func DefaultConfig(apiKey string) *ClientConfig {
	return &ClientConfig{
		APIKey:         apiKey,
		ChatModel:      DefaultChatModel,
		EmbeddingModel: DefaultEmbeddingModel,
		Timeout:        30 * time.Second,
		MaxRetries:     3,
		RetryDelay:     time.Second * 2,
	}
}

// OpenAIClient wraps the OpenAI API for embeddings and outfit generation
type OpenAIClient struct {
	client         *openai.Client
	chatModel      string
	embeddingModel openai.EmbeddingModel
	timeout        time.Duration
	maxRetries     int
	retryDelay     time.Duration
}

// NewOpenAIClient creates a client with the given API key using defaults
func NewOpenAIClient(apiKey string) (*OpenAIClient, error) {
	return NewOpenAIClientWithConfig(DefaultConfig(apiKey))
}

// NewOpenAIClientWithConfig creates a client with custom configuration
func NewOpenAIClientWithConfig(config *ClientConfig) (*OpenAIClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	return &OpenAIClient{
		client:         openai.NewClient(config.APIKey),
		chatModel:      config.ChatModel,
		embeddingModel: config.EmbeddingModel,
		timeout:        config.Timeout,
		maxRetries:     config.MaxRetries,
		retryDelay:     config.RetryDelay,
	}, nil
}

// Embed generates an embedding vector for text. Embedding calls are
// retried with backoff since they gate both ingestion and every query.
func (c *OpenAIClient) Embed(ctx context.Context, text string) ([]float64, error) {
	var vector []float64

	err := util.Retry(ctx, c.maxRetries, c.retryDelay, func() error {
		reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		resp, err := c.client.CreateEmbeddings(reqCtx, openai.EmbeddingRequestStrings{
			Input: []string{text},
			Model: c.embeddingModel,
		})
		if err != nil {
			return err
		}
		if len(resp.Data) == 0 {
			return fmt.Errorf("no embeddings returned")
		}

		embedding32 := resp.Data[0].Embedding
		vector = make([]float64, len(embedding32))
		for i, v := range embedding32 {
			vector[i] = float64(v)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("generating embedding: %w", err)
	}

	return vector, nil
}

// FormatStylistPrompt renders the tuned instruction prompt for a profile
// description and event
func FormatStylistPrompt(details, event string) string {
	return fmt.Sprintf(stylistPromptTemplate, details, event)
}

// GenerateOutfits runs a single sampled inference against the stylist
// model and returns its raw free-text output. A single sample is accepted
// as-is; callers handle unparseable output as a soft failure.
func (c *OpenAIClient) GenerateOutfits(ctx context.Context, details, event string) (string, error) {
	prompt := FormatStylistPrompt(details, event)

	reqCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(reqCtx, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: generateTemperature,
		TopP:        generateTopP,
		MaxTokens:   generateMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("outfit generation: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("outfit generation: no completion choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}
