package normalizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"alfred/internal/domain/entity"
)

var (
	ErrEmptyReply   = errors.New("empty model reply")
	ErrInvalidReply = errors.New("model reply is not a JSON object")
)

var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// decodeReply разбирает JSON-ответ модели; если есть блок ```, берём его содержимое.
func decodeReply(reply string) (entity.ParsedCommand, error) {
	text := strings.TrimSpace(reply)
	if m := fencedBlock.FindStringSubmatch(text); m != nil {
		text = m[1]
	}
	if text == "" {
		return entity.ParsedCommand{}, ErrEmptyReply
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return entity.ParsedCommand{}, fmt.Errorf("%w: %v", ErrInvalidReply, err)
	}

	intent, ok := raw["intent"].(string)
	if raw == nil || !ok {
		return entity.ParsedCommand{}, fmt.Errorf("%w: missing intent", ErrInvalidReply)
	}
	params, _ := raw["parameters"].(map[string]any)
	if params == nil {
		params = map[string]any{}
	}

	return entity.ParsedCommand{
		Intent:     entity.ParseIntent(intent),
		Target:     targetString(raw["target"]),
		Parameters: params,
	}, nil
}

func targetString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
