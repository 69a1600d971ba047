package output

import (
	"context"
	"errors"
)

var (
	// ErrSpeechUnrecognized means audio was captured but nothing could be made of it.
	ErrSpeechUnrecognized = errors.New("speech not recognized")
	// ErrRecognitionUnavailable means the recognition backend could not be reached.
	ErrRecognitionUnavailable = errors.New("speech recognition unavailable")
)

type SpeakerPort interface {
	Speak(ctx context.Context, text string) error
}

// ListenerPort blocks until one utterance is captured.
// Utterances are returned lowercased.
type ListenerPort interface {
	Listen(ctx context.Context) (string, error)
}
