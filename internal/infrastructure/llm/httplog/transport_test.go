package httplog

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"alfred/internal/infrastructure/logger"
)

func TestTransport_LogsRequestAndResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer server.Close()

	core, logs := observer.New(zapcore.DebugLevel)
	client := Client(logger.NewFromCore(core))

	resp, err := client.Post(server.URL, "application/json", strings.NewReader(`{"model":"m"}`))
	require.NoError(t, err)
	resp.Body.Close()

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "HTTP Request", entries[0].Message)
	assert.Equal(t, map[string]any{"model": "m"}, entries[0].ContextMap()["body"])
	assert.Equal(t, "HTTP Response", entries[1].Message)
	assert.EqualValues(t, http.StatusTeapot, entries[1].ContextMap()["statusCode"])
}

func TestClient_NilLogger(t *testing.T) {
	assert.Nil(t, Client(nil))
}
