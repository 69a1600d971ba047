package rod

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfred/internal/domain/site"
	"alfred/internal/infrastructure/browser/pagescan"
	"alfred/internal/infrastructure/logger"
	"alfred/internal/usecase/inspector"
	"alfred/internal/usecase/ordinal"
	"alfred/internal/usecase/resolver"
	"alfred/internal/usecase/search"
)

const portalHTML = `<!DOCTYPE html>
<html>
<head><title>Portal</title></head>
<body>
	<input class="site-search" type="search" placeholder="Search the portal" />
	<div style="height: 1500px"></div>
	<a href="/docs" title="Documentation">Read The Docs</a>
	<button aria-label="Open settings"><span>&#9881;</span></button>
	<div id="status"></div>
	<script>
		document.querySelector('[aria-label="Open settings"]').addEventListener('click', function() {
			document.getElementById('status').textContent = 'settings open';
		});
	</script>
</body>
</html>`

const docsHTML = `<!DOCTYPE html>
<html><body>
	<a href="/a">Alpha</a>
	<a href="/b">Beta</a>
	<a href="/c">Gamma</a>
</body></html>`

func TestScenario_ResolveSearchAndOrdinal(t *testing.T) {
	adapter := newTestAdapter(t)
	server := newPageServer(t, map[string]string{
		"/":     portalHTML,
		"/docs": docsHTML,
		"/b":    basicHTML,
	})
	ctx := context.Background()
	log := logger.NewNop()
	catalog := site.DefaultCatalog()
	cfg := pagescan.DefaultConfig
	lister := inspector.New(adapter, pagescan.NewScanner(&cfg), inspector.DefaultConfig(), log)

	require.NoError(t, adapter.Navigate(ctx, server.URL))

	clicker := resolver.New(adapter, catalog, lister, resolver.Config{SiteTimeout: time.Second, Settle: 50 * time.Millisecond}, log)
	res := clicker.Resolve(ctx, "open SETTINGS")
	require.True(t, res.Found, res.Reason)
	assert.Equal(t, "aria-label", res.Strategy)
	assert.Eventually(t, func() bool {
		html, err := adapter.PageHTML(ctx)
		return err == nil && strings.Contains(html, "settings open")
	}, 2*time.Second, 50*time.Millisecond)

	listed, err := lister.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	res = clicker.Resolve(ctx, "read the docs")
	require.True(t, res.Found, res.Reason)
	assert.Eventually(t, func() bool {
		return adapter.CurrentURL(ctx) == server.URL+"/docs"
	}, 3*time.Second, 50*time.Millisecond)

	picked := ordinal.New(adapter, catalog, ordinal.Config{Timeout: time.Second}, log).Resolve(ctx, "the second link")
	require.True(t, picked.Found, picked.Reason)
	assert.Equal(t, "link number 2", picked.Matched)
	assert.Eventually(t, func() bool {
		return adapter.CurrentURL(ctx) == server.URL+"/b"
	}, 3*time.Second, 50*time.Millisecond)

	missing := clicker.Resolve(ctx, "unicorn")
	assert.False(t, missing.Found)
}

func TestScenario_SearchGenericBox(t *testing.T) {
	adapter := newTestAdapter(t)
	server := newPageServer(t, map[string]string{"/": portalHTML})
	ctx := context.Background()
	require.NoError(t, adapter.Navigate(ctx, server.URL))

	exec := search.NewExecutor(adapter, site.DefaultCatalog(), search.Config{NativeTimeout: time.Second, GenericTimeout: time.Second}, logger.NewNop())
	res, err := exec.Search(ctx, "pricing")
	require.NoError(t, err)
	assert.False(t, res.Fallback)

	value, err := adapter.page.MustElement("input.site-search").Property("value")
	require.NoError(t, err)
	assert.Equal(t, "pricing", value.String())
}
