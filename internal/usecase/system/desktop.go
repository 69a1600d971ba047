package system

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"alfred/internal/application/port/output"
)

const (
	MsgGreeting      = "Desktop assistant is ready."
	MsgNotRecognized = "Command not recognized."
	DefaultFolder    = "New Folder"
)

var exitWords = []string{"exit", "quit", "goodbye", "stop listening"}

// Desktop handles the keyword commands of the desktop assistant.
type Desktop struct {
	system  output.SystemPort
	speaker output.SpeakerPort
	logger  output.LoggerPort
}

func NewDesktop(system output.SystemPort, speaker output.SpeakerPort, logger output.LoggerPort) *Desktop {
	return &Desktop{
		system:  system,
		speaker: speaker,
		logger:  logger.WithField("component", "desktop"),
	}
}

func (d *Desktop) Handle(ctx context.Context, utterance string) bool {
	say, exit := d.Reply(ctx, utterance)
	if say != "" {
		if err := d.speaker.Speak(ctx, say); err != nil {
			d.logger.Warn("Speech output failed", "error", err)
		}
	}
	return exit
}

// Reply performs the command and returns what to say about it.
func (d *Desktop) Reply(ctx context.Context, utterance string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(utterance))
	for _, w := range exitWords {
		if q == w {
			return "Goodbye.", true
		}
	}

	switch {
	case strings.Contains(q, "create new folder"):
		return d.createFolder(ctx, strings.TrimSpace(strings.Replace(q, "create new folder", "", 1))), false
	case strings.Contains(q, "sleep pc"):
		return d.power(ctx, "Sleep", "Going to sleep.", d.system.Sleep), false
	case strings.Contains(q, "lock pc"):
		return d.power(ctx, "Lock", "Locking the PC.", d.system.Lock), false
	case strings.Contains(q, "open"):
		return d.open(ctx, strings.TrimSpace(strings.Replace(q, "open", "", 1))), false
	case strings.Contains(q, "close tabs"):
		_, rest, _ := strings.Cut(q, "close tabs")
		return d.closeTabs(ctx, strings.TrimSpace(rest)), false
	}
	d.logger.Info("Command not recognized", "utterance", q)
	return MsgNotRecognized, false
}

func (d *Desktop) createFolder(ctx context.Context, name string) string {
	if name == "" {
		name = DefaultFolder
	}
	desktop, err := d.system.DesktopDir()
	if err != nil {
		d.logger.Error("Desktop lookup failed", "error", err)
		return "An error occurred while creating the folder."
	}

	err = d.system.CreateFolder(ctx, filepath.Join(desktop, name))
	switch {
	case errors.Is(err, output.ErrAlreadyExists):
		return "Folder already exists."
	case err != nil:
		d.logger.Error("Create folder failed", "name", name, "error", err)
		return "An error occurred while creating the folder."
	}
	return "New folder created."
}

func (d *Desktop) power(ctx context.Context, what, done string, fn func(context.Context) error) string {
	err := fn(ctx)
	switch {
	case errors.Is(err, output.ErrUnsupportedPlatform):
		return fmt.Sprintf("%s command not supported on this operating system.", what)
	case err != nil:
		d.logger.Error("Power command failed", "command", what, "error", err)
		return fmt.Sprintf("An error occurred: %v", err)
	}
	return done
}

func (d *Desktop) open(ctx context.Context, name string) string {
	err := d.system.OpenApplication(ctx, name)
	switch {
	case errors.Is(err, output.ErrUnknownApplication):
		return fmt.Sprintf("Application '%s' not recognized.", name)
	case errors.Is(err, output.ErrUnsupportedPlatform):
		return fmt.Sprintf("Opening %s is not supported on this operating system.", name)
	case err != nil:
		d.logger.Error("Open application failed", "name", name, "error", err)
		return fmt.Sprintf("Application '%s' not found.", name)
	}
	return fmt.Sprintf("Opening %s.", name)
}

func (d *Desktop) closeTabs(ctx context.Context, count string) string {
	if count == "" {
		return "How many tabs do you want to close?"
	}
	n, err := strconv.Atoi(count)
	if err != nil || n <= 0 {
		return "Invalid number of tabs."
	}
	if err := d.system.CloseTabs(ctx, n); err != nil {
		d.logger.Error("Close tabs failed", "count", n, "error", err)
		return "An error occurred while closing tabs."
	}
	return fmt.Sprintf("%d tabs closed.", n)
}
