package di

import (
	"context"
	"fmt"

	"alfred/internal/application/port/input"
	"alfred/internal/application/port/output"
	"alfred/internal/infrastructure/llm/gemini"
	"alfred/internal/infrastructure/llm/ollama"
	"alfred/internal/infrastructure/llm/openrouter"
	"alfred/internal/infrastructure/rules"
	"alfred/internal/usecase/normalizer"
)

// NewLLM builds the chat model for the configured provider.
func NewLLM(ctx context.Context, cfg Config, log output.LoggerPort) (output.LLMPort, error) {
	switch cfg.LLMProvider {
	case ProviderGemini:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("API_KEY is required for the %s provider", cfg.LLMProvider)
		}
		gc := gemini.DefaultConfig(cfg.APIKey)
		if cfg.LLMModel != "" {
			gc.Model = cfg.LLMModel
		}
		gc.BaseURL = cfg.LLMBaseURL
		gc.Logger = log
		llm, err := gemini.NewGeminiAdapter(ctx, gc)
		if err != nil {
			return nil, err
		}
		return llm, nil

	case ProviderOpenRouter:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("API_KEY is required for the %s provider", cfg.LLMProvider)
		}
		if cfg.LLMModel == "" {
			return nil, fmt.Errorf("LLM_MODEL is required for the %s provider", cfg.LLMProvider)
		}
		oc := openrouter.DefaultConfig(cfg.APIKey, cfg.LLMModel)
		if cfg.LLMBaseURL != "" {
			oc.BaseURL = cfg.LLMBaseURL
		}
		oc.Logger = log
		return openrouter.NewOpenRouterAdapter(oc), nil

	case ProviderOllama:
		oc := ollama.DefaultConfig()
		if cfg.LLMModel != "" {
			oc.Model = cfg.LLMModel
		}
		if cfg.LLMBaseURL != "" {
			oc.ServerURL = cfg.LLMBaseURL
		}
		oc.Logger = log
		llm, err := ollama.NewOllamaAdapter(oc)
		if err != nil {
			return nil, err
		}
		return llm, nil
	}
	return nil, fmt.Errorf("provider %q has no model", cfg.LLMProvider)
}

// NewParser returns the command parser for cfg: the keyword parser for the
// rules provider, the model-backed normalizer otherwise.
func NewParser(ctx context.Context, cfg Config, log output.LoggerPort) (input.CommandParser, error) {
	corrections, err := rules.Load(cfg.RulesFile)
	if err != nil {
		return nil, err
	}

	if cfg.LLMProvider == ProviderRules {
		return normalizer.NewKeywordParser(corrections, log), nil
	}

	llm, err := NewLLM(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create llm: %w", err)
	}
	parser, err := normalizer.NewLLMParser(llm, corrections, log)
	if err != nil {
		return nil, err
	}
	return parser, nil
}
