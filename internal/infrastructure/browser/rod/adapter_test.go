package rod

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfred/internal/application/port/output"
	"alfred/internal/domain/entity"
)

func newTestAdapter(t *testing.T) *BrowserAdapter {
	t.Helper()
	if testing.Short() {
		t.Skip("browser tests are skipped in short mode")
	}

	cfg := DefaultConfig()
	cfg.Headless = true
	cfg.NoSandbox = true
	cfg.Timeout = 2 * time.Second

	adapter, err := NewBrowserAdapter(context.Background(), cfg)
	if err != nil {
		t.Skipf("browser not available: %v", err)
	}
	t.Cleanup(func() { _ = adapter.Close() })
	return adapter
}

func newPageServer(t *testing.T, pages map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.Headless)
	assert.False(t, cfg.NoSandbox)
	assert.Equal(t, defaultTimeout, cfg.Timeout)
	assert.Equal(t, defaultNavigationTimeout, cfg.NavigationTimeout)
	assert.Equal(t, "about:blank", cfg.StartURL)
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"https", "https://www.youtube.com", false},
		{"http", "http://127.0.0.1:8080/x", false},
		{"blank", "about:blank", false},
		{"empty", "", true},
		{"ftp", "ftp://example.com", true},
		{"javascript", "javascript:alert(1)", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateURL(tt.url)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidURL)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBrowserAdapter_NavigateAndHistory(t *testing.T) {
	adapter := newTestAdapter(t)
	server := newPageServer(t, map[string]string{"/a": basicHTML, "/b": interactiveHTML})
	ctx := context.Background()

	require.NoError(t, adapter.Navigate(ctx, server.URL+"/a"))
	require.NoError(t, adapter.Navigate(ctx, server.URL+"/b"))
	assert.Equal(t, server.URL+"/b", adapter.CurrentURL(ctx))

	require.NoError(t, adapter.Back(ctx))
	assert.Eventually(t, func() bool { return adapter.CurrentURL(ctx) == server.URL+"/a" }, 3*time.Second, 50*time.Millisecond)

	require.NoError(t, adapter.Forward(ctx))
	assert.Eventually(t, func() bool { return adapter.CurrentURL(ctx) == server.URL+"/b" }, 3*time.Second, 50*time.Millisecond)

	assert.NoError(t, adapter.Refresh(ctx))
}

func TestBrowserAdapter_Navigate_InvalidURL(t *testing.T) {
	adapter := newTestAdapter(t)

	err := adapter.Navigate(context.Background(), "javascript:alert(1)")
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestBrowserAdapter_Scroll(t *testing.T) {
	adapter := newTestAdapter(t)
	server := newPageServer(t, map[string]string{"/": scrollableHTML})
	ctx := context.Background()

	require.NoError(t, adapter.Navigate(ctx, server.URL))

	require.NoError(t, adapter.Scroll(ctx, "down", 300))
	y, err := adapter.ScrollY(ctx)
	require.NoError(t, err)
	assert.Equal(t, 300, y)

	require.NoError(t, adapter.Scroll(ctx, " UP ", 100))
	y, err = adapter.ScrollY(ctx)
	require.NoError(t, err)
	assert.Equal(t, 200, y)

	require.NoError(t, adapter.Scroll(ctx, "bottom", 0))
	y, err = adapter.ScrollY(ctx)
	require.NoError(t, err)
	assert.Greater(t, y, 3000)

	require.NoError(t, adapter.Scroll(ctx, "top", 0))
	y, err = adapter.ScrollY(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, y)

	assert.ErrorIs(t, adapter.Scroll(ctx, "sideways", 10), ErrInvalidScrollDirection)
}

func TestBrowserAdapter_FindElements(t *testing.T) {
	adapter := newTestAdapter(t)
	server := newPageServer(t, map[string]string{"/": interactiveHTML})
	ctx := context.Background()
	require.NoError(t, adapter.Navigate(ctx, server.URL))

	buttons, err := adapter.FindElements(ctx, entity.XPath("//button"))
	require.NoError(t, err)
	require.Len(t, buttons, 2)

	text, err := buttons[0].Text(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Click Me", text)

	links, err := adapter.FindElements(ctx, entity.CSS("a#hidden"))
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.False(t, links[0].Visible(ctx))

	href, err := links[0].Attribute(ctx, "href")
	require.NoError(t, err)
	assert.Equal(t, "/x", href)

	none, err := adapter.FindElements(ctx, entity.XPath("//table"))
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = adapter.FindElements(ctx, entity.XPath(""))
	assert.ErrorIs(t, err, ErrInvalidSelector)
}

func TestBrowserAdapter_WaitClickableAndClick(t *testing.T) {
	adapter := newTestAdapter(t)
	server := newPageServer(t, map[string]string{"/": interactiveHTML})
	ctx := context.Background()
	require.NoError(t, adapter.Navigate(ctx, server.URL))

	el, err := adapter.WaitClickable(ctx, entity.XPath("//button[@id='btn']"), time.Second)
	require.NoError(t, err)
	require.NoError(t, el.ScrollIntoView(ctx))
	require.NoError(t, el.Click(ctx))

	results, err := adapter.FindElements(ctx, entity.CSS("#result"))
	require.NoError(t, err)
	require.Len(t, results, 1)
	text, err := results[0].Text(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Clicked!", text)

	start := time.Now()
	_, err = adapter.WaitClickable(ctx, entity.XPath("//button[@id='missing']"), 300*time.Millisecond)
	assert.ErrorIs(t, err, output.ErrElementNotFound)
	assert.Less(t, time.Since(start), 2*time.Second)

	_, err = adapter.WaitClickable(ctx, entity.XPath("//button[@id='off']"), 300*time.Millisecond)
	assert.ErrorIs(t, err, output.ErrElementNotFound)
}

func TestBrowserAdapter_FillAndSubmit(t *testing.T) {
	adapter := newTestAdapter(t)
	server := newPageServer(t, map[string]string{"/": searchFormHTML, "/results": basicHTML})
	ctx := context.Background()
	require.NoError(t, adapter.Navigate(ctx, server.URL))

	box, err := adapter.WaitClickable(ctx, entity.XPath("//*[@name='q']"), time.Second)
	require.NoError(t, err)
	require.NoError(t, box.Fill(ctx, "golang rod"))

	value, err := adapter.page.MustElement("#q").Property("value")
	require.NoError(t, err)
	assert.Equal(t, "golang rod", value.String())

	require.NoError(t, box.Submit(ctx))
	assert.Eventually(t, func() bool {
		return adapter.CurrentURL(ctx) == server.URL+"/results?q=golang+rod"
	}, 3*time.Second, 50*time.Millisecond)
}

func TestBrowserAdapter_PageHTMLAndScreenshot(t *testing.T) {
	adapter := newTestAdapter(t)
	server := newPageServer(t, map[string]string{"/": basicHTML})
	ctx := context.Background()
	require.NoError(t, adapter.Navigate(ctx, server.URL))

	html, err := adapter.PageHTML(ctx)
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>Hello World</h1>")

	adapter.screenshotWidth = 320
	shot, err := adapter.Screenshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", shot.Format)
	assert.LessOrEqual(t, shot.Width, 320)
	assert.NotEmpty(t, shot.Data)
}

func TestBrowserAdapter_CloseIsIdempotent(t *testing.T) {
	adapter := newTestAdapter(t)
	assert.True(t, adapter.IsReady())

	assert.NoError(t, adapter.Close())
	assert.NoError(t, adapter.Close())
	assert.False(t, adapter.IsReady())

	err := adapter.Navigate(context.Background(), "about:blank")
	assert.ErrorIs(t, err, output.ErrBrowserClosed)
	assert.Equal(t, "", adapter.CurrentURL(context.Background()))
}
