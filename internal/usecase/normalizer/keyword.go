package normalizer

import (
	"context"
	"regexp"
	"strings"

	"alfred/internal/application/port/input"
	"alfred/internal/application/port/output"
	"alfred/internal/domain/entity"
)

var _ input.CommandParser = (*KeywordParser)(nil)

type keywordRule struct {
	pattern *regexp.Regexp
	intent  entity.Intent
	// target is a fixed target; empty means the first capture group.
	target string
}

// Ordered: the first matching pattern wins.
var keywordRules = []keywordRule{
	{regexp.MustCompile(`^(?:exit|quit|goodbye|stop listening|close (?:the )?browser)$`), entity.IntentExit, ""},
	{regexp.MustCompile(`^(?:list|show)(?: all)?(?: the)? (links|clickable elements)$`), entity.IntentList, "links"},
	{regexp.MustCompile(`^(?:go )?back$`), entity.IntentNavigate, entity.NavigateBack},
	{regexp.MustCompile(`^(?:go )?forward$`), entity.IntentNavigate, entity.NavigateForward},
	{regexp.MustCompile(`^(?:refresh|reload)(?: the)?(?: page)?$`), entity.IntentNavigate, entity.NavigateRefresh},
	{regexp.MustCompile(`^scroll (?:to )?(?:the )?(down|up|top|bottom)$`), entity.IntentScroll, ""},
	{regexp.MustCompile(`^(?:stop scrolling|scroll stop)$`), entity.IntentScroll, entity.ScrollStop},
	{regexp.MustCompile(`^(?:search(?: for)?|look up|google) (.+)$`), entity.IntentSearch, ""},
	{regexp.MustCompile(`^(?:open|go to|visit|navigate to) ([^\s]+)$`), entity.IntentOpenWebsite, ""},
}

// KeywordParser recognises a fixed command grammar without a model.
// Its output goes through the same corrections as the model's.
type KeywordParser struct {
	rules  entity.CorrectionRules
	logger output.LoggerPort
}

func NewKeywordParser(rules entity.CorrectionRules, logger output.LoggerPort) *KeywordParser {
	return &KeywordParser{
		rules:  rules.WithDefaults(),
		logger: logger.WithField("component", "normalizer"),
	}
}

func (p *KeywordParser) Parse(ctx context.Context, utterance string) entity.ParsedCommand {
	u := strings.Join(strings.Fields(strings.ToLower(utterance)), " ")

	cmd := entity.UnknownCommand()
	for _, r := range keywordRules {
		m := r.pattern.FindStringSubmatch(u)
		if m == nil {
			continue
		}
		cmd.Intent = r.intent
		cmd.Target = r.target
		if cmd.Target == "" && len(m) > 1 {
			cmd.Target = m[1]
		}
		break
	}

	corrected := Correct(cmd, u, p.rules)
	p.logger.Info("Parsed command", "utterance", u, "intent", corrected.Intent, "target", corrected.Target)
	return corrected
}
