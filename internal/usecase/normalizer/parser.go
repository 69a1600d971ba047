package normalizer

import (
	"context"
	"fmt"
	"text/template"
	"time"

	"alfred/internal/application/port/input"
	"alfred/internal/application/port/output"
	"alfred/internal/domain/entity"
	"alfred/internal/infrastructure/prompts"
)

var _ input.CommandParser = (*LLMParser)(nil)

// LLMParser asks a language model for the command triple and repairs its answer.
type LLMParser struct {
	llm    output.LLMPort
	prompt *template.Template
	rules  entity.CorrectionRules
	logger output.LoggerPort
}

func NewLLMParser(llm output.LLMPort, rules entity.CorrectionRules, logger output.LoggerPort) (*LLMParser, error) {
	tmpl, err := prompts.Compile("intent", prompts.IntentPrompt)
	if err != nil {
		return nil, fmt.Errorf("compile intent prompt: %w", err)
	}
	return &LLMParser{
		llm:    llm,
		prompt: tmpl,
		rules:  rules.WithDefaults(),
		logger: logger.WithField("component", "normalizer"),
	}, nil
}

func (p *LLMParser) Parse(ctx context.Context, utterance string) entity.ParsedCommand {
	prompt, err := prompts.Render(p.prompt, prompts.NewIntentPromptData(utterance))
	if err != nil {
		p.logger.Error("Render prompt failed", "error", err)
		return entity.UnknownCommand()
	}

	start := time.Now()
	resp, err := p.llm.Chat(ctx, output.ChatRequest{
		Messages:    []entity.Message{{Role: entity.RoleUser, Content: prompt}},
		Temperature: 0,
	})
	if err != nil {
		p.logger.Warn("Model call failed", "utterance", utterance, "error", err)
		return entity.UnknownCommand()
	}

	cmd, err := decodeReply(resp.Message.Content)
	if err != nil {
		p.logger.Warn("Model reply rejected", "utterance", utterance, "reply", resp.Message.Content, "error", err)
		return entity.UnknownCommand()
	}

	corrected := Correct(cmd, utterance, p.rules)
	p.logger.Info("Parsed command",
		"utterance", utterance,
		"intent", corrected.Intent,
		"target", corrected.Target,
		"model_intent", cmd.Intent,
		"model_target", cmd.Target,
		"duration", time.Since(start),
	)
	return corrected
}
