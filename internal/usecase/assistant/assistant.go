package assistant

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"alfred/internal/application/port/input"
	"alfred/internal/application/port/output"
	"alfred/internal/application/service"
)

const (
	MsgGreeting      = "Enhanced voice-controlled browser is ready. What would you like to do?"
	MsgNotUnderstood = "Sorry, I did not understand that."
	MsgUnavailable   = "Could not reach the speech recognition service."
)

type Config struct {
	Greeting     string
	PollInterval time.Duration
	// RetryDelay is the pause after the recognition service could not be reached.
	RetryDelay time.Duration
}

func DefaultConfig() Config {
	return Config{
		Greeting:     MsgGreeting,
		PollInterval: 100 * time.Millisecond,
		RetryDelay:   time.Second,
	}
}

// Handler acts on one utterance and reports whether the session should end.
type Handler interface {
	Handle(ctx context.Context, utterance string) (exit bool)
}

// Pipeline is the browser handler: parse, then dispatch.
type Pipeline struct {
	Parser     input.CommandParser
	Dispatcher input.Dispatcher
	Logger     output.LoggerPort
}

func (p Pipeline) Handle(ctx context.Context, utterance string) bool {
	cmd := p.Parser.Parse(ctx, utterance)
	p.Logger.Info("Command", "utterance", utterance, "intent", cmd.Intent.String(), "target", cmd.Target)
	return p.Dispatcher.Dispatch(ctx, cmd)
}

// Assistant couples a capture goroutine to a control loop through a mailbox.
// All page work happens on the goroutine that called Run.
type Assistant struct {
	listener output.ListenerPort
	speaker  output.SpeakerPort
	handler  Handler
	mailbox  *service.Mailbox
	cfg      Config
	logger   output.LoggerPort
}

func New(
	listener output.ListenerPort,
	speaker output.SpeakerPort,
	handler Handler,
	mailbox *service.Mailbox,
	cfg Config,
	logger output.LoggerPort,
) *Assistant {
	return &Assistant{
		listener: listener,
		speaker:  speaker,
		handler:  handler,
		mailbox:  mailbox,
		cfg:      cfg,
		logger:   logger.WithField("component", "assistant"),
	}
}

// Run greets the user and handles utterances until an exit command, the end
// of input or cancellation of ctx. Listener failures are logged and retried. The capture goroutine is joined before Run returns.
func (a *Assistant) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
	}()

	if a.cfg.Greeting != "" {
		a.say(ctx, a.cfg.Greeting)
	}

	captured := make(chan error, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		captured <- a.capture(ctx)
	}()

	ticker := time.NewTicker(a.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("Assistant stopped")
			return nil

		case err := <-captured:
			if u, ok := a.mailbox.Take(); ok {
				a.handle(ctx, u)
			}
			if err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("listen: %w", err)
			}
			a.logger.Info("Input closed")
			return nil

		case <-ticker.C:
			u, ok := a.mailbox.Take()
			if !ok {
				continue
			}
			if a.handle(ctx, u) {
				a.logger.Info("Exit requested")
				return nil
			}
		}
	}
}

func (a *Assistant) capture(ctx context.Context) error {
	for {
		u, err := a.listener.Listen(ctx)
		switch {
		case err == nil:
			if u == "" {
				continue
			}
			a.logger.Info("Heard", "utterance", u)
			a.mailbox.Publish(u)
		case ctx.Err() != nil:
			return nil
		case errors.Is(err, output.ErrSpeechUnrecognized):
			a.logger.Debug("Utterance not recognized", "error", err)
			a.say(ctx, MsgNotUnderstood)
		case errors.Is(err, output.ErrRecognitionUnavailable):
			a.logger.Warn("Recognition unavailable", "error", err)
			a.say(ctx, MsgUnavailable)
			if !sleep(ctx, a.cfg.RetryDelay) {
				return nil
			}
		case errors.Is(err, io.EOF):
			return err
		default:
			a.logger.Error("Listener failed", "error", err)
			if !sleep(ctx, a.cfg.RetryDelay) {
				return nil
			}
		}
	}
}

func (a *Assistant) handle(ctx context.Context, utterance string) (exit bool) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("Utterance handling panicked", "utterance", utterance, "panic", fmt.Sprint(r))
			exit = false
		}
	}()

	return a.handler.Handle(ctx, utterance)
}

func (a *Assistant) say(ctx context.Context, text string) {
	if err := a.speaker.Speak(ctx, text); err != nil {
		a.logger.Warn("Speech output failed", "error", err)
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
