package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfred/internal/domain/entity"
	"alfred/internal/domain/site"
	"alfred/internal/infrastructure/logger"
	"alfred/internal/testing/fakebrowser"
)

func newExecutor(b *fakebrowser.Browser) *Executor {
	return NewExecutor(b, site.DefaultCatalog(), DefaultConfig(), logger.NewNop())
}

func TestSearch_NativeYouTubeBox(t *testing.T) {
	b := fakebrowser.New("https://www.youtube.com/")
	box := fakebrowser.Link("")
	b.Add(site.YouTube.SearchBox, box)

	res, err := newExecutor(b).Search(context.Background(), "lofi beats")

	require.NoError(t, err)
	assert.Equal(t, &entity.SearchResult{Query: "lofi beats", Engine: "YouTube", Native: true}, res)
	assert.Equal(t, "lofi beats", box.Filled)
	assert.True(t, box.Submitted)
	assert.Equal(t, 5*time.Second, b.Waits[0].Timeout)
	assert.Equal(t, "Searching for lofi beats on YouTube", Announcement(res))
}

func TestSearch_GenericBoxOnUnknownSite(t *testing.T) {
	b := fakebrowser.New("https://docs.example.com")
	box := fakebrowser.Link("")
	b.Add(entity.CSS("input.search"), box)

	res, err := newExecutor(b).Search(context.Background(), "install")

	require.NoError(t, err)
	assert.False(t, res.Native)
	assert.False(t, res.Fallback)
	assert.Equal(t, "install", box.Filled)
	assert.Len(t, b.Waits, 8)
	for _, w := range b.Waits {
		assert.Equal(t, 3*time.Second, w.Timeout)
	}
	assert.Equal(t, "Searching for install", Announcement(res))
}

func TestSearch_NativeMissFallsThroughToGeneric(t *testing.T) {
	b := fakebrowser.New("https://www.google.com/")
	box := fakebrowser.Link("")
	b.Add(entity.XPath("//input[@type='search']"), box)

	res, err := newExecutor(b).Search(context.Background(), "weather")

	require.NoError(t, err)
	assert.False(t, res.Native)
	assert.True(t, box.Submitted)
}

func TestSearch_FallbackToBing(t *testing.T) {
	b := fakebrowser.New("about:blank")

	res, err := newExecutor(b).Search(context.Background(), "cute cats")

	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Equal(t, []string{"https://www.bing.com/search?q=cute+cats"}, b.Visited)
	assert.Equal(t, "Searching for cute cats on Bing", Announcement(res))
}

func TestSearch_FallbackError(t *testing.T) {
	b := fakebrowser.New("about:blank")
	b.NavigateErr = errors.New("browser gone")

	_, err := newExecutor(b).Search(context.Background(), "cats")

	assert.ErrorIs(t, err, b.NavigateErr)
}

func TestSearch_EmptyQuery(t *testing.T) {
	_, err := newExecutor(fakebrowser.New("about:blank")).Search(context.Background(), " ")
	assert.Error(t, err)
}

func TestGenericBoxes_Order(t *testing.T) {
	require.Len(t, genericBoxes, 9)
	assert.Equal(t, "//input[@type='search']", genericBoxes[0].Expr)
	assert.Equal(t, entity.CSS("input#search"), genericBoxes[8])
}
