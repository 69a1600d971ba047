package input

import (
	"context"

	"alfred/internal/domain/entity"
)

type Dispatcher interface {
	// Dispatch performs cmd and reports whether the session should end.
	Dispatch(ctx context.Context, cmd entity.ParsedCommand) bool
}
