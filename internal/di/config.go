package di

import (
	"fmt"
	"strings"
	"time"

	"alfred/internal/application/port/output"
)

const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderOllama     = "ollama"
	// ProviderRules parses with keyword rules only and needs no model.
	ProviderRules = "rules"

	InputConsole = "console"
	InputWhisper = "whisper"
)

type Config struct {
	LLMProvider string
	APIKey      string
	LLMModel    string
	LLMBaseURL  string
	RulesFile   string

	BrowserPath     string
	// DriverPath is a legacy WebDriver binary setting; it is reported and never launched.
	DriverPath      string
	BrowserHeadless bool
	ScrollAmount    int
	PollInterval    time.Duration
	Screenshots     bool

	InputMode     string
	OpenAIAPIKey  string
	RecordCommand string
	TTSCommand    string

	LogLevel string
	LogFile  string
}

// LoadConfig reads the assistant settings from the environment.
func LoadConfig(env output.ConfigPort) (Config, error) {
	cfg := Config{
		LLMProvider: strings.ToLower(env.GetWithDefault("LLM_PROVIDER", ProviderGemini)),
		APIKey:      env.Get("API_KEY"),
		LLMModel:    env.Get("LLM_MODEL"),
		LLMBaseURL:  env.Get("LLM_BASE_URL"),
		RulesFile:   env.Get("RULES_FILE"),

		BrowserPath:     env.Get("BROWSER_PATH"),
		DriverPath:      env.Get("EDGE_WEBDRIVER_PATH"),
		BrowserHeadless: env.GetBool("BROWSER_HEADLESS", false),
		ScrollAmount:    env.GetInt("SCROLL_AMOUNT", 300),
		PollInterval:    env.GetDuration("POLL_INTERVAL", 100*time.Millisecond),
		Screenshots:     env.GetBool("DIAGNOSTIC_SCREENSHOTS", false),

		InputMode:     strings.ToLower(env.GetWithDefault("INPUT_MODE", InputConsole)),
		OpenAIAPIKey:  env.Get("OPENAI_API_KEY"),
		RecordCommand: env.GetWithDefault("RECORD_COMMAND", "arecord -q -f S16_LE -r 16000 -c 1 -d 5 {file}"),
		TTSCommand:    env.Get("TTS_COMMAND"),

		LogLevel: env.GetWithDefault("LOG_LEVEL", "info"),
		LogFile:  env.GetWithDefault("LOG_FILE", "log/alfred.log"),
	}

	switch cfg.LLMProvider {
	case ProviderGemini, ProviderOpenRouter, ProviderOllama, ProviderRules:
	default:
		return Config{}, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}
	switch cfg.InputMode {
	case InputConsole, InputWhisper:
	default:
		return Config{}, fmt.Errorf("unknown INPUT_MODE %q", cfg.InputMode)
	}
	if cfg.ScrollAmount <= 0 {
		return Config{}, fmt.Errorf("SCROLL_AMOUNT must be positive, got %d", cfg.ScrollAmount)
	}
	if cfg.PollInterval <= 0 {
		return Config{}, fmt.Errorf("POLL_INTERVAL must be positive")
	}
	return cfg, nil
}
