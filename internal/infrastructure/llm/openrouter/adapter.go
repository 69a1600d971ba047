package openrouter

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"alfred/internal/application/port/output"
	"alfred/internal/domain/entity"
	"alfred/internal/infrastructure/llm/httplog"
)

var _ output.LLMPort = (*OpenRouterAdapter)(nil)

// go-openai drops a zero temperature from the request (omitempty), so a
// requested 0 is sent as this value to keep decoding greedy.
const minTemperature float32 = 1e-6

type OpenRouterAdapter struct {
	client *openai.Client
	model  string
	logger output.LoggerPort
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Logger  output.LoggerPort
}

func DefaultConfig(apiKey, model string) Config {
	return Config{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: "https://openrouter.ai/api/v1",
	}
}

// NewOpenRouterAdapter talks to any OpenAI compatible chat endpoint, OpenRouter by default.
func NewOpenRouterAdapter(cfg Config) *OpenRouterAdapter {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	if client := httplog.Client(cfg.Logger); client != nil {
		config.HTTPClient = client
	}

	return &OpenRouterAdapter{
		client: openai.NewClientWithConfig(config),
		model:  cfg.Model,
		logger: cfg.Logger,
	}
}

func (a *OpenRouterAdapter) Chat(ctx context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	temperature := req.Temperature
	if temperature == 0 {
		temperature = minTemperature
	}
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    convertMessages(req.Messages),
		Temperature: temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	return &output.ChatResponse{
		Message: entity.Message{
			Role:    entity.RoleAssistant,
			Content: resp.Choices[0].Message.Content,
		},
	}, nil
}

func convertMessages(messages []entity.Message) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		result = append(result, openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}
	return result
}
