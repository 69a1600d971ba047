package speech

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"alfred/internal/application/port/output"
)

var _ output.ListenerPort = (*StdinListener)(nil)

// StdinListener treats each input line as one utterance. The reader is
// drained by a background goroutine so Listen can honour cancellation.
type StdinListener struct {
	lines chan string
	errc  chan error
}

func NewStdinListener(r io.Reader) *StdinListener {
	if r == nil {
		r = os.Stdin
	}
	l := &StdinListener{
		lines: make(chan string),
		errc:  make(chan error, 1),
	}
	go l.read(r)
	return l
}

func (l *StdinListener) read(r io.Reader) {
	defer close(l.lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l.lines <- scanner.Text()
	}
	if err := scanner.Err(); err != nil {
		l.errc <- err
	}
}

func (l *StdinListener) Listen(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-l.lines:
		if !ok {
			select {
			case err := <-l.errc:
				return "", err
			default:
				return "", io.EOF
			}
		}
		utterance := strings.ToLower(strings.TrimSpace(line))
		if utterance == "" {
			return "", output.ErrSpeechUnrecognized
		}
		return utterance, nil
	}
}
