package input

import (
	"context"

	"alfred/internal/domain/entity"
)

// CommandParser turns one utterance into a ParsedCommand. It never fails:
// anything it cannot interpret comes back as the unknown intent.
type CommandParser interface {
	Parse(ctx context.Context, utterance string) entity.ParsedCommand
}
