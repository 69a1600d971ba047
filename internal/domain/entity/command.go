package entity

import "encoding/json"

// ParsedCommand is the contract between the normalizer and the dispatcher.
// An empty Target is encoded as JSON null.
type ParsedCommand struct {
	Intent     Intent         `json:"intent"`
	Target     string         `json:"target"`
	Parameters map[string]any `json:"parameters"`
}

func UnknownCommand() ParsedCommand {
	return ParsedCommand{
		Intent:     IntentUnknown,
		Parameters: map[string]any{},
	}
}

func (c ParsedCommand) MarshalJSON() ([]byte, error) {
	var target *string
	if c.Target != "" {
		t := c.Target
		target = &t
	}
	params := c.Parameters
	if params == nil {
		params = map[string]any{}
	}
	return json.Marshal(struct {
		Intent     Intent         `json:"intent"`
		Target     *string        `json:"target"`
		Parameters map[string]any `json:"parameters"`
	}{
		Intent:     c.Intent,
		Target:     target,
		Parameters: params,
	})
}
