package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"

	"alfred/internal/application/port/output"
)

var (
	_ output.SpeakerPort = (*ConsoleSpeaker)(nil)
	_ output.SpeakerPort = (*ExecSpeaker)(nil)
	_ output.SpeakerPort = (Speakers)(nil)
	_ output.SpeakerPort = (*Serialized)(nil)
)

// ConsoleSpeaker печатает реплики ассистента в консоль.
type ConsoleSpeaker struct {
	out    io.Writer
	prefix *color.Color
}

func NewConsoleSpeaker(out io.Writer) *ConsoleSpeaker {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleSpeaker{
		out:    out,
		prefix: color.New(color.FgCyan, color.Bold),
	}
}

func (s *ConsoleSpeaker) Speak(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}
	if _, err := s.prefix.Fprint(s.out, "Assistant: "); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.out, text)
	return err
}

// ExecSpeaker speaks through an external text-to-speech program such as
// "espeak-ng {text}" or "say".
type ExecSpeaker struct {
	template string
}

func NewExecSpeaker(template string) *ExecSpeaker {
	return &ExecSpeaker{template: template}
}

func (s *ExecSpeaker) Speak(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}
	args, err := splitCommand(s.template, "{text}", text)
	if err != nil {
		return err
	}
	if err := run(ctx, args); err != nil {
		return fmt.Errorf("tts: %w", err)
	}
	return nil
}

// Speakers fans one utterance out to every speaker.
type Speakers []output.SpeakerPort

func (s Speakers) Speak(ctx context.Context, text string) error {
	var errs []error
	for _, sp := range s {
		if err := sp.Speak(ctx, text); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Serialized lets one utterance finish before the next starts.
type Serialized struct {
	mu    sync.Mutex
	inner output.SpeakerPort
}

func NewSerialized(inner output.SpeakerPort) *Serialized {
	return &Serialized{inner: inner}
}

func (s *Serialized) Speak(ctx context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Speak(ctx, text)
}
