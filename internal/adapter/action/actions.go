package action

import (
	"context"
	"fmt"
	"strings"

	"alfred/internal/application/port/output"
	"alfred/internal/domain/entity"
	"alfred/internal/usecase/ordinal"
	"alfred/internal/usecase/resolver"
	"alfred/internal/usecase/search"
)

const (
	MsgUnknown = "I'm not sure how to handle that command. Please try again."
	MsgListed  = "Listed all clickable elements in the console."
	MsgExit    = "Exiting the browser."
)

type WebsiteOpener interface {
	Open(ctx context.Context, target string) (string, error)
}

type Searcher interface {
	Search(ctx context.Context, query string) (*entity.SearchResult, error)
}

type ElementResolver interface {
	Resolve(ctx context.Context, text string) entity.MatchResult
}

type ElementLister interface {
	List(ctx context.Context) ([]entity.ClickableElement, error)
}

type OpenWebsiteAction struct {
	opener WebsiteOpener
}

func NewOpenWebsiteAction(opener WebsiteOpener) *OpenWebsiteAction {
	return &OpenWebsiteAction{opener: opener}
}

func (a *OpenWebsiteAction) Intent() entity.Intent { return entity.IntentOpenWebsite }

func (a *OpenWebsiteAction) Execute(ctx context.Context, cmd entity.ParsedCommand) (output.Outcome, error) {
	if _, err := a.opener.Open(ctx, cmd.Target); err != nil {
		return output.Outcome{Say: fmt.Sprintf("Error opening %s", cmd.Target)}, err
	}
	return output.Outcome{Say: fmt.Sprintf("Opening %s", cmd.Target)}, nil
}

type SearchAction struct {
	searcher Searcher
}

func NewSearchAction(searcher Searcher) *SearchAction {
	return &SearchAction{searcher: searcher}
}

func (a *SearchAction) Intent() entity.Intent { return entity.IntentSearch }

func (a *SearchAction) Execute(ctx context.Context, cmd entity.ParsedCommand) (output.Outcome, error) {
	res, err := a.searcher.Search(ctx, cmd.Target)
	if err != nil {
		return output.Outcome{Say: "Error performing search"}, err
	}
	return output.Outcome{Say: search.Announcement(res)}, nil
}

type ScrollAction struct {
	browser output.BrowserPort
	amount  int
}

func NewScrollAction(browser output.BrowserPort, amount int) *ScrollAction {
	return &ScrollAction{browser: browser, amount: amount}
}

func (a *ScrollAction) Intent() entity.Intent { return entity.IntentScroll }

func (a *ScrollAction) Execute(ctx context.Context, cmd entity.ParsedCommand) (output.Outcome, error) {
	var say string
	amount := 0
	switch cmd.Target {
	case entity.ScrollDown:
		say, amount = "Scrolling down.", a.amount
	case entity.ScrollUp:
		say, amount = "Scrolling up.", a.amount
	case entity.ScrollTop:
		say = "Scrolled to top."
	case entity.ScrollBottom:
		say = "Scrolled to bottom."
	default:
		// "stop" and anything unrecognised
		return output.Outcome{}, nil
	}

	if err := a.browser.Scroll(ctx, cmd.Target, amount); err != nil {
		return output.Outcome{Say: "Error during scrolling."}, err
	}
	return output.Outcome{Say: say}, nil
}

type NavigateAction struct {
	browser output.BrowserPort
}

func NewNavigateAction(browser output.BrowserPort) *NavigateAction {
	return &NavigateAction{browser: browser}
}

func (a *NavigateAction) Intent() entity.Intent { return entity.IntentNavigate }

func (a *NavigateAction) Execute(ctx context.Context, cmd entity.ParsedCommand) (output.Outcome, error) {
	var (
		say string
		err error
	)
	switch cmd.Target {
	case entity.NavigateBack:
		say, err = "Going back.", a.browser.Back(ctx)
	case entity.NavigateForward:
		say, err = "Going forward.", a.browser.Forward(ctx)
	case entity.NavigateRefresh:
		say, err = "Refreshing page.", a.browser.Refresh(ctx)
	default:
		return output.Outcome{}, nil
	}
	if err != nil {
		return output.Outcome{}, fmt.Errorf("navigate %s: %w", cmd.Target, err)
	}
	return output.Outcome{Say: say}, nil
}

// ClickAction routes numbered phrases to the ordinal resolver and
// everything else to the element resolver.
type ClickAction struct {
	elements ElementResolver
	ordinals ElementResolver
}

func NewClickAction(elements, ordinals ElementResolver) *ClickAction {
	return &ClickAction{elements: elements, ordinals: ordinals}
}

func (a *ClickAction) Intent() entity.Intent { return entity.IntentClick }

func (a *ClickAction) Execute(ctx context.Context, cmd entity.ParsedCommand) (output.Outcome, error) {
	if ordinal.Mentions(cmd.Target) {
		res := a.ordinals.Resolve(ctx, cmd.Target)
		if err := ctx.Err(); err != nil && !res.Found {
			return output.Outcome{Say: "Error clicking numbered result"}, err
		}
		if !res.Found {
			return output.Outcome{Say: res.Reason}, nil
		}
		return output.Outcome{Say: "Clicked on " + res.Matched}, nil
	}

	res := a.elements.Resolve(ctx, cmd.Target)
	if err := ctx.Err(); err != nil && !res.Found {
		return output.Outcome{Say: "Error clicking element"}, err
	}
	switch {
	case !res.Found:
		return output.Outcome{Say: res.Reason}, nil
	case res.Tier == resolver.TierPartial:
		return output.Outcome{Say: fmt.Sprintf("Clicked on element containing %s", res.Matched)}, nil
	default:
		return output.Outcome{Say: fmt.Sprintf("Clicked on %s", cmd.Target)}, nil
	}
}

type ListAction struct {
	lister ElementLister
}

func NewListAction(lister ElementLister) *ListAction {
	return &ListAction{lister: lister}
}

func (a *ListAction) Intent() entity.Intent { return entity.IntentList }

func (a *ListAction) Execute(ctx context.Context, cmd entity.ParsedCommand) (output.Outcome, error) {
	if !strings.Contains(strings.ToLower(cmd.Target), "links") {
		return output.Outcome{}, nil
	}
	if _, err := a.lister.List(ctx); err != nil {
		return output.Outcome{}, fmt.Errorf("list clickable elements: %w", err)
	}
	return output.Outcome{Say: MsgListed}, nil
}

type ExitAction struct {
	browser output.BrowserPort
}

func NewExitAction(browser output.BrowserPort) *ExitAction {
	return &ExitAction{browser: browser}
}

func (a *ExitAction) Intent() entity.Intent { return entity.IntentExit }

func (a *ExitAction) Execute(ctx context.Context, cmd entity.ParsedCommand) (output.Outcome, error) {
	out := output.Outcome{Say: MsgExit, Exit: true}
	if err := a.browser.Close(); err != nil {
		return out, fmt.Errorf("close browser: %w", err)
	}
	return out, nil
}

type UnknownAction struct{}

func (UnknownAction) Intent() entity.Intent { return entity.IntentUnknown }

func (UnknownAction) Execute(ctx context.Context, cmd entity.ParsedCommand) (output.Outcome, error) {
	return output.Outcome{Say: MsgUnknown}, nil
}
