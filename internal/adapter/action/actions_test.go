package action

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfred/internal/domain/entity"
	"alfred/internal/domain/site"
	"alfred/internal/infrastructure/logger"
	"alfred/internal/testing/fakebrowser"
	"alfred/internal/usecase/resolver"
	"alfred/internal/usecase/search"
	"alfred/internal/usecase/website"
)

func cmd(intent entity.Intent, target string) entity.ParsedCommand {
	return entity.ParsedCommand{Intent: intent, Target: target, Parameters: map[string]any{}}
}

type stubResolver struct {
	res   entity.MatchResult
	calls []string
}

func (s *stubResolver) Resolve(ctx context.Context, text string) entity.MatchResult {
	s.calls = append(s.calls, text)
	return s.res
}

type stubLister struct{ err error }

func (s stubLister) List(ctx context.Context) ([]entity.ClickableElement, error) {
	return nil, s.err
}

func TestOpenWebsiteAction(t *testing.T) {
	b := fakebrowser.New("about:blank")
	a := NewOpenWebsiteAction(website.NewOpener(b, site.DefaultCatalog(), logger.NewNop()))

	out, err := a.Execute(context.Background(), cmd(entity.IntentOpenWebsite, "youtube.com"))
	require.NoError(t, err)
	assert.Equal(t, "Opening youtube.com", out.Say)
	assert.Equal(t, []string{"https://youtube.com"}, b.Visited)

	b.NavigateErr = errors.New("boom")
	out, err = a.Execute(context.Background(), cmd(entity.IntentOpenWebsite, "youtube.com"))
	assert.Error(t, err)
	assert.Equal(t, "Error opening youtube.com", out.Say)
}

func TestSearchAction(t *testing.T) {
	b := fakebrowser.New("about:blank")
	a := NewSearchAction(search.NewExecutor(b, site.DefaultCatalog(), search.DefaultConfig(), logger.NewNop()))

	out, err := a.Execute(context.Background(), cmd(entity.IntentSearch, "golang"))
	require.NoError(t, err)
	assert.Equal(t, "Searching for golang on Bing", out.Say)

	b.NavigateErr = errors.New("boom")
	out, err = a.Execute(context.Background(), cmd(entity.IntentSearch, "golang"))
	assert.Error(t, err)
	assert.Equal(t, "Error performing search", out.Say)
}

func TestScrollAction(t *testing.T) {
	tests := []struct {
		target string
		say    string
		scroll *fakebrowser.Scroll
	}{
		{"down", "Scrolling down.", &fakebrowser.Scroll{Direction: "down", Amount: 300}},
		{"up", "Scrolling up.", &fakebrowser.Scroll{Direction: "up", Amount: 300}},
		{"top", "Scrolled to top.", &fakebrowser.Scroll{Direction: "top"}},
		{"bottom", "Scrolled to bottom.", &fakebrowser.Scroll{Direction: "bottom"}},
		{"stop", "", nil},
		{"sideways", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			b := fakebrowser.New("https://example.com")
			out, err := NewScrollAction(b, 300).Execute(context.Background(), cmd(entity.IntentScroll, tt.target))
			require.NoError(t, err)
			assert.Equal(t, tt.say, out.Say)
			if tt.scroll == nil {
				assert.Empty(t, b.Scrolls)
				return
			}
			assert.Equal(t, []fakebrowser.Scroll{*tt.scroll}, b.Scrolls)
		})
	}
}

func TestScrollAction_Error(t *testing.T) {
	b := fakebrowser.New("https://example.com")
	b.ScrollErr = errors.New("detached")

	out, err := NewScrollAction(b, 300).Execute(context.Background(), cmd(entity.IntentScroll, "down"))
	assert.Error(t, err)
	assert.Equal(t, "Error during scrolling.", out.Say)
}

func TestNavigateAction(t *testing.T) {
	b := fakebrowser.New("https://example.com")
	a := NewNavigateAction(b)

	for target, say := range map[string]string{
		"back":    "Going back.",
		"forward": "Going forward.",
		"refresh": "Refreshing page.",
		"home":    "",
	} {
		out, err := a.Execute(context.Background(), cmd(entity.IntentNavigate, target))
		require.NoError(t, err)
		assert.Equal(t, say, out.Say, target)
	}
	assert.ElementsMatch(t, []string{"back", "forward", "refresh"}, b.History)

	b.HistoryErr = errors.New("no history")
	_, err := a.Execute(context.Background(), cmd(entity.IntentNavigate, "back"))
	assert.ErrorIs(t, err, b.HistoryErr)
}

func TestClickAction_RoutesOrdinals(t *testing.T) {
	elements := &stubResolver{}
	ordinals := &stubResolver{res: entity.MatchResult{Found: true, Matched: "result number 2"}}
	a := NewClickAction(elements, ordinals)

	out, err := a.Execute(context.Background(), cmd(entity.IntentClick, "the second result"))
	require.NoError(t, err)
	assert.Equal(t, "Clicked on result number 2", out.Say)
	assert.Empty(t, elements.calls)
	assert.Equal(t, []string{"the second result"}, ordinals.calls)
}

func TestClickAction_ElementMessages(t *testing.T) {
	tests := []struct {
		name string
		res  entity.MatchResult
		say  string
	}{
		{"direct", entity.MatchResult{Found: true, Tier: resolver.TierGeneric, Matched: "sign in"}, "Clicked on Sign In"},
		{"partial", entity.MatchResult{Found: true, Tier: resolver.TierPartial, Matched: "sign"}, "Clicked on element containing sign"},
		{"missing", entity.NotFound("Could not find clickable element containing sign in"), "Could not find clickable element containing sign in"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ordinals := &stubResolver{}
			a := NewClickAction(&stubResolver{res: tt.res}, ordinals)

			out, err := a.Execute(context.Background(), cmd(entity.IntentClick, "Sign In"))
			require.NoError(t, err)
			assert.Equal(t, tt.say, out.Say)
			assert.Empty(t, ordinals.calls)
		})
	}
}

func TestClickAction_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := NewClickAction(&stubResolver{res: entity.NotFound("context canceled")}, &stubResolver{})
	out, err := a.Execute(ctx, cmd(entity.IntentClick, "login"))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "Error clicking element", out.Say)
}

func TestListAction(t *testing.T) {
	out, err := NewListAction(stubLister{}).Execute(context.Background(), cmd(entity.IntentList, "all links"))
	require.NoError(t, err)
	assert.Equal(t, MsgListed, out.Say)

	out, err = NewListAction(stubLister{}).Execute(context.Background(), cmd(entity.IntentList, "tabs"))
	require.NoError(t, err)
	assert.Empty(t, out.Say)

	_, err = NewListAction(stubLister{err: errors.New("no page")}).Execute(context.Background(), cmd(entity.IntentList, "links"))
	assert.Error(t, err)
}

func TestExitAction(t *testing.T) {
	b := fakebrowser.New("https://example.com")

	out, err := NewExitAction(b).Execute(context.Background(), cmd(entity.IntentExit, ""))

	require.NoError(t, err)
	assert.True(t, out.Exit)
	assert.Equal(t, MsgExit, out.Say)
	assert.True(t, b.Closed())
}

func TestUnknownAction(t *testing.T) {
	out, err := UnknownAction{}.Execute(context.Background(), entity.UnknownCommand())
	require.NoError(t, err)
	assert.Equal(t, MsgUnknown, out.Say)
	assert.False(t, out.Exit)
}

func TestBrowserActions_CoverEveryIntent(t *testing.T) {
	seen := map[entity.Intent]bool{}
	for _, a := range BrowserActions(Deps{}) {
		seen[a.Intent()] = true
	}
	for _, intent := range []entity.Intent{
		entity.IntentOpenWebsite, entity.IntentSearch, entity.IntentScroll, entity.IntentNavigate,
		entity.IntentClick, entity.IntentList, entity.IntentExit, entity.IntentUnknown,
	} {
		assert.True(t, seen[intent], intent)
	}
}
