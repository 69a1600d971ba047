package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvService_Typed(t *testing.T) {
	e := NewFromMap(map[string]string{
		"SCROLL_AMOUNT":    "450",
		"BROWSER_HEADLESS": "true",
		"POLL_INTERVAL":    "250ms",
		"SETTLE":           "75",
		"BROKEN":           "abc",
	})

	assert.Equal(t, 450, e.GetInt("SCROLL_AMOUNT", 300))
	assert.Equal(t, 300, e.GetInt("BROKEN", 300))
	assert.Equal(t, 300, e.GetInt("MISSING", 300))

	assert.True(t, e.GetBool("BROWSER_HEADLESS", false))
	assert.False(t, e.GetBool("BROKEN", false))

	assert.Equal(t, 250*time.Millisecond, e.GetDuration("POLL_INTERVAL", time.Second))
	assert.Equal(t, 75*time.Millisecond, e.GetDuration("SETTLE", time.Second))
	assert.Equal(t, time.Second, e.GetDuration("BROKEN", time.Second))
}

func TestEnvService_GetWithDefault(t *testing.T) {
	e := NewFromMap(map[string]string{"LLM_PROVIDER": "ollama", "EMPTY": ""})

	assert.Equal(t, "ollama", e.GetWithDefault("LLM_PROVIDER", "gemini"))
	assert.Equal(t, "gemini", e.GetWithDefault("EMPTY", "gemini"))
	assert.Equal(t, "", e.Get("MISSING"))
}

func TestNewEnvService_ReadsProcessEnv(t *testing.T) {
	t.Setenv("ALFRED_TEST_KEY", "value")
	t.Chdir(t.TempDir())

	e := NewEnvService()
	assert.Equal(t, "value", e.Get("ALFRED_TEST_KEY"))
}
