package ollama

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"

	"alfred/internal/application/port/output"
	"alfred/internal/domain/entity"
	"alfred/internal/infrastructure/llm/httplog"
)

var _ output.LLMPort = (*OllamaAdapter)(nil)

// OllamaAdapter runs the command parser against a local model server.
type OllamaAdapter struct {
	llm *ollama.LLM
}

type Config struct {
	Model     string
	ServerURL string
	Logger    output.LoggerPort
}

func DefaultConfig() Config {
	return Config{
		Model:     "llama3.2",
		ServerURL: "http://localhost:11434",
	}
}

func NewOllamaAdapter(cfg Config) (*OllamaAdapter, error) {
	opts := []ollama.Option{
		ollama.WithModel(cfg.Model),
		ollama.WithServerURL(cfg.ServerURL),
	}
	if client := httplog.Client(cfg.Logger); client != nil {
		opts = append(opts, ollama.WithHTTPClient(client))
	}

	llm, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create ollama client: %w", err)
	}
	return &OllamaAdapter{llm: llm}, nil
}

func (a *OllamaAdapter) Chat(ctx context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	resp, err := a.llm.GenerateContent(ctx, convertMessages(req.Messages),
		llms.WithTemperature(float64(req.Temperature)),
	)
	if err != nil {
		return nil, fmt.Errorf("generate content failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	return &output.ChatResponse{
		Message: entity.Message{Role: entity.RoleAssistant, Content: resp.Choices[0].Content},
	}, nil
}

func convertMessages(messages []entity.Message) []llms.MessageContent {
	result := make([]llms.MessageContent, 0, len(messages))
	for _, msg := range messages {
		role := llms.ChatMessageTypeHuman
		switch msg.Role {
		case entity.RoleSystem:
			role = llms.ChatMessageTypeSystem
		case entity.RoleAssistant:
			role = llms.ChatMessageTypeAI
		}
		result = append(result, llms.TextParts(role, msg.Content))
	}
	return result
}
