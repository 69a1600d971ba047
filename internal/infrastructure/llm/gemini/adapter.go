package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"alfred/internal/application/port/output"
	"alfred/internal/domain/entity"
	"alfred/internal/infrastructure/llm/httplog"
)

var _ output.LLMPort = (*GeminiAdapter)(nil)

var ErrEmptyResponse = errors.New("empty response from model")

type GeminiAdapter struct {
	client *genai.Client
	model  string
}

type Config struct {
	APIKey string
	Model  string
	// BaseURL overrides the Gemini API endpoint.
	BaseURL string
	Logger  output.LoggerPort
}

func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey: apiKey,
		Model:  "gemini-2.0-flash",
	}
}

func NewGeminiAdapter(ctx context.Context, cfg Config) (*GeminiAdapter, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httplog.Client(cfg.Logger),
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiAdapter{
		client: client,
		model:  cfg.Model,
	}, nil
}

func (a *GeminiAdapter) Chat(ctx context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	system, contents := convertMessages(req.Messages)

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("generate content failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, ErrEmptyResponse
	}

	return &output.ChatResponse{
		Message: entity.Message{Role: entity.RoleAssistant, Content: text},
	}, nil
}

// convertMessages folds system messages into one instruction and maps the rest onto user/model turns.
func convertMessages(messages []entity.Message) (string, []*genai.Content) {
	var system []string
	contents := make([]*genai.Content, 0, len(messages))

	for _, msg := range messages {
		switch msg.Role {
		case entity.RoleSystem:
			system = append(system, msg.Content)
		case entity.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		}
	}
	return strings.Join(system, "\n\n"), contents
}
