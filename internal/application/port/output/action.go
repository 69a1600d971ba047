package output

import (
	"context"

	"alfred/internal/domain/entity"
)

// Outcome is what an action wants spoken back, and whether the session ends.
type Outcome struct {
	Say  string
	Exit bool
}

type ActionPort interface {
	Intent() entity.Intent
	Execute(ctx context.Context, cmd entity.ParsedCommand) (Outcome, error)
}

type ActionRegistry interface {
	Register(action ActionPort)
	Get(intent entity.Intent) (ActionPort, bool)
	All() []ActionPort
}
