package dispatcher

import (
	"context"
	"fmt"

	"alfred/internal/application/port/input"
	"alfred/internal/application/port/output"
	"alfred/internal/domain/entity"
)

// MsgFailed is spoken when an action fails without a message of its own.
const MsgFailed = "Sorry, something went wrong with that command."

var _ input.Dispatcher = (*UseCase)(nil)

type UseCase struct {
	actions output.ActionRegistry
	speaker output.SpeakerPort
	logger  output.LoggerPort
}

func New(actions output.ActionRegistry, speaker output.SpeakerPort, logger output.LoggerPort) *UseCase {
	return &UseCase{
		actions: actions,
		speaker: speaker,
		logger:  logger.WithField("component", "dispatcher"),
	}
}

func (uc *UseCase) Dispatch(ctx context.Context, cmd entity.ParsedCommand) (exit bool) {
	log := uc.logger.WithFields(map[string]any{"intent": cmd.Intent.String(), "target": cmd.Target})

	defer func() {
		if r := recover(); r != nil {
			log.Error("Action panicked", "panic", fmt.Sprint(r))
			uc.say(ctx, MsgFailed)
			exit = false
		}
	}()

	action, ok := uc.actions.Get(cmd.Intent)
	if !ok {
		action, ok = uc.actions.Get(entity.IntentUnknown)
	}
	if !ok {
		log.Warn("No action registered")
		return false
	}

	out, err := action.Execute(ctx, cmd)
	if err != nil {
		log.Error("Action failed", "error", err)
		if out.Say == "" {
			out.Say = MsgFailed
		}
	} else {
		log.Info("Action done", "say", out.Say, "exit", out.Exit)
	}

	uc.say(ctx, out.Say)
	return out.Exit
}

func (uc *UseCase) say(ctx context.Context, text string) {
	if text == "" {
		return
	}
	if err := uc.speaker.Speak(ctx, text); err != nil {
		uc.logger.Warn("Speech output failed", "error", err)
	}
}
