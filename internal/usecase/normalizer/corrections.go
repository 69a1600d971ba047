package normalizer

import (
	"slices"
	"strings"

	"alfred/internal/domain/entity"
)

// Correct repairs known model mistakes. Every step is idempotent.
func Correct(cmd entity.ParsedCommand, utterance string, rules entity.CorrectionRules) entity.ParsedCommand {
	if cmd.Parameters == nil {
		cmd.Parameters = map[string]any{}
	}

	switch cmd.Intent {
	case entity.IntentOpenWebsite:
		cmd.Target = mapNickname(cmd.Target, rules.Nicknames)
	case entity.IntentScroll:
		cmd.Target = canonicalScroll(cmd.Target, rules.ScrollPlaceholders)
	}

	return rederiveClick(cmd, strings.ToLower(utterance), rules)
}

func mapNickname(target string, nicknames []entity.Nickname) string {
	lower := strings.ToLower(target)
	for _, n := range nicknames {
		if strings.Contains(lower, n.Name) {
			return n.Domain
		}
	}
	return target
}

func canonicalScroll(target string, placeholders []string) string {
	t := strings.ToLower(strings.TrimSpace(target))
	if !slices.Contains(placeholders, t) {
		return t
	}

	switch {
	case strings.Contains(t, "start"), strings.Contains(t, "down"):
		return entity.ScrollDown
	case strings.Contains(t, "stop"):
		return entity.ScrollStop
	case strings.Contains(t, "top"):
		return entity.ScrollTop
	case strings.Contains(t, "bottom"):
		return entity.ScrollBottom
	case strings.Contains(t, "up"):
		return entity.ScrollUp
	}
	return t
}

// rederiveClick turns "click/open/select/choose X" utterances the model
// misfiled into click commands on X.
func rederiveClick(cmd entity.ParsedCommand, utterance string, rules entity.CorrectionRules) entity.ParsedCommand {
	if cmd.Intent == entity.IntentClick || cmd.Intent == entity.IntentOpenWebsite {
		return cmd
	}

	triggered := false
	for _, t := range rules.ClickTriggers {
		if strings.Contains(utterance, t) {
			triggered = true
			break
		}
	}
	if !triggered {
		return cmd
	}

	for _, prefix := range rules.ClickPrefixes {
		if idx := strings.Index(utterance, prefix); idx >= 0 {
			cmd.Intent = entity.IntentClick
			cmd.Target = strings.TrimSpace(utterance[idx+len(prefix):])
			return cmd
		}
	}
	return cmd
}
