package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfred/internal/domain/entity"
)

func TestDecodeReply(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  entity.ParsedCommand
	}{
		{
			name:  "plain",
			reply: `{"intent": "open_website", "target": "youtube.com", "parameters": {}}`,
			want:  entity.ParsedCommand{Intent: entity.IntentOpenWebsite, Target: "youtube.com", Parameters: map[string]any{}},
		},
		{
			name:  "json fence",
			reply: "Here you go:\n```json\n{\"intent\": \"scroll\", \"target\": \"down\"}\n```",
			want:  entity.ParsedCommand{Intent: entity.IntentScroll, Target: "down", Parameters: map[string]any{}},
		},
		{
			name:  "bare fence",
			reply: "```\n{\"intent\": \"navigate\", \"target\": \"back\", \"parameters\": {\"times\": 2}}\n```",
			want:  entity.ParsedCommand{Intent: entity.IntentNavigate, Target: "back", Parameters: map[string]any{"times": float64(2)}},
		},
		{
			name:  "quit alias and null target",
			reply: `{"intent": "QUIT", "target": null}`,
			want:  entity.ParsedCommand{Intent: entity.IntentExit, Parameters: map[string]any{}},
		},
		{
			name:  "numeric target",
			reply: `{"intent": "click", "target": 3}`,
			want:  entity.ParsedCommand{Intent: entity.IntentClick, Target: "3", Parameters: map[string]any{}},
		},
		{
			name:  "unknown label",
			reply: `{"intent": "dance", "target": "salsa"}`,
			want:  entity.ParsedCommand{Intent: entity.IntentUnknown, Target: "salsa", Parameters: map[string]any{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeReply(tt.reply)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeReply_Errors(t *testing.T) {
	_, err := decodeReply("   ")
	assert.ErrorIs(t, err, ErrEmptyReply)

	_, err = decodeReply("I think you want to scroll down.")
	assert.ErrorIs(t, err, ErrInvalidReply)

	_, err = decodeReply(`["scroll", "down"]`)
	assert.ErrorIs(t, err, ErrInvalidReply)

	for _, reply := range []string{"null", "{}", `{"target": "youtube"}`, `{"intent": 3}`} {
		_, err = decodeReply(reply)
		assert.ErrorIs(t, err, ErrInvalidReply, reply)
	}
}
