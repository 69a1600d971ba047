package speech

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/wav"
	"github.com/sashabaranov/go-openai"

	"alfred/internal/application/port/output"
)

var _ output.ListenerPort = (*WhisperListener)(nil)

// Recorder captures one utterance of microphone audio into a WAV file.
type Recorder interface {
	Record(ctx context.Context, path string) error
}

// CommandRecorder records with an external program, e.g.
// "arecord -q -d 5 -f S16_LE -r 16000 -c 1 {file}".
type CommandRecorder struct {
	template string
}

func NewCommandRecorder(template string) *CommandRecorder {
	return &CommandRecorder{template: template}
}

func (r *CommandRecorder) Record(ctx context.Context, path string) error {
	args, err := splitCommand(r.template, "{file}", path)
	if err != nil {
		return err
	}
	return run(ctx, args)
}

type WhisperConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Language    string
	MinDuration time.Duration
	TempDir     string
}

func DefaultWhisperConfig(apiKey string) WhisperConfig {
	return WhisperConfig{
		APIKey:      apiKey,
		Model:       openai.Whisper1,
		Language:    "en",
		MinDuration: 300 * time.Millisecond,
	}
}

// WhisperListener records a clip and transcribes it with an OpenAI compatible
// transcription endpoint.
type WhisperListener struct {
	recorder Recorder
	client   *openai.Client
	cfg      WhisperConfig
	logger   output.LoggerPort
}

func NewWhisperListener(recorder Recorder, cfg WhisperConfig, logger output.LoggerPort) *WhisperListener {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &WhisperListener{
		recorder: recorder,
		client:   openai.NewClientWithConfig(clientCfg),
		cfg:      cfg,
		logger:   logger,
	}
}

func (l *WhisperListener) Listen(ctx context.Context) (string, error) {
	dir, err := os.MkdirTemp(l.cfg.TempDir, "alfred-listen-")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "utterance.wav")

	l.logger.Debug("Listening", "file", path)
	if err := l.recorder.Record(ctx, path); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: record: %v", output.ErrRecognitionUnavailable, err)
	}

	dur, err := clipDuration(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", output.ErrSpeechUnrecognized, err)
	}
	if dur < l.cfg.MinDuration {
		return "", fmt.Errorf("%w: clip too short (%s)", output.ErrSpeechUnrecognized, dur)
	}

	resp, err := l.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    l.cfg.Model,
		FilePath: path,
		Language: l.cfg.Language,
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %v", output.ErrRecognitionUnavailable, err)
	}

	text := strings.ToLower(strings.TrimSpace(resp.Text))
	text = strings.TrimRight(text, ".!?")
	if text == "" {
		return "", output.ErrSpeechUnrecognized
	}

	l.logger.Info("Heard", "utterance", text, "duration", dur)
	return text, nil
}

func clipDuration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return 0, errors.New("invalid wav")
	}
	if err := dec.FwdToPCM(); err != nil {
		return 0, err
	}
	// riff's Duration counts header bytes; only the data chunk is audio.
	bytesPerSec := int64(dec.SampleRate) * int64(dec.NumChans) * int64(dec.BitDepth) / 8
	if bytesPerSec == 0 {
		return 0, errors.New("invalid wav format")
	}
	return time.Duration(dec.PCMLen() * int64(time.Second) / bytesPerSec), nil
}
