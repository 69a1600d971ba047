package inspector

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"alfred/internal/infrastructure/browser/pagescan"
	"alfred/internal/infrastructure/logger"
	"alfred/internal/testing/fakebrowser"
)

const page = `<html><body>
<a href="/docs">Docs</a>
<button aria-label="Close dialog"></button>
<a href="/empty"></a>
<div onclick="go()" title="Settings"></div>
</body></html>`

func TestList_LogsIdentifiableElements(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	b := fakebrowser.New("https://example.com")
	b.SetHTML(page)

	cfg := pagescan.DefaultConfig
	in := New(b, pagescan.NewScanner(&cfg), DefaultConfig(), logger.NewFromCore(core))

	listed, err := in.List(context.Background())
	require.NoError(t, err)

	require.Len(t, listed, 3)
	assert.Equal(t, "Docs", listed[0].Text)
	assert.Equal(t, "Close dialog", listed[1].AriaLabel)
	assert.Equal(t, "Settings", listed[2].Title)

	assert.Equal(t, 3, logs.FilterMessage("Clickable element").Len())
	summary := logs.FilterMessage("Listed clickable elements").All()
	require.Len(t, summary, 1)
	assert.EqualValues(t, 4, summary[0].ContextMap()["scanned"])
}

func TestList_SavesScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	b := fakebrowser.New("https://example.com")
	b.SetHTML(page)

	cfg := pagescan.DefaultConfig
	in := New(b, pagescan.NewScanner(&cfg), Config{Screenshots: true, Dir: dir}, logger.NewNop())
	in.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	_, err := in.List(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "page-20260102-030405.jpeg"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xd8}, data)
}
