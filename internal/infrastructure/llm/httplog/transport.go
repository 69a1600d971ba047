package httplog

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"alfred/internal/application/port/output"
)

// Transport logs every model request and response at debug level.
type Transport struct {
	base   http.RoundTripper
	logger output.LoggerPort
}

func NewTransport(base http.RoundTripper, logger output.LoggerPort) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{base: base, logger: logger}
}

// Client wraps the default transport, or returns nil when logger is nil so
// callers fall back to their library default.
func Client(logger output.LoggerPort) *http.Client {
	if logger == nil {
		return nil
	}
	return &http.Client{Transport: NewTransport(nil, logger)}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	var bodyBytes []byte
	if req.Body != nil {
		bodyBytes, _ = io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	}

	var requestData map[string]any
	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &requestData)
	}

	t.logger.Debug("HTTP Request",
		"method", req.Method,
		"url", req.URL.Redacted(),
		"body", requestData,
	)

	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.logger.Warn("HTTP Request failed", "url", req.URL.Redacted(), "error", err)
		return nil, err
	}

	t.logger.Debug("HTTP Response",
		"status", resp.Status,
		"statusCode", resp.StatusCode,
		"duration", time.Since(start),
	)
	return resp, nil
}
