package resolver

import (
	"context"
	"time"

	"alfred/internal/application/port/output"
	"alfred/internal/domain/entity"
)

// Strategy is one attempt at locating and clicking an element.
// A false result means "try the next strategy", never a hard failure.
type Strategy interface {
	Name() string
	TryMatch(ctx context.Context, page output.BrowserPort) (entity.MatchResult, bool)
}

type Tier struct {
	Name       string
	Strategies []Strategy
}

// Cascade runs tiers in order and stops at the first strategy that clicks something.
type Cascade []Tier

func (c Cascade) Run(ctx context.Context, page output.BrowserPort, logger output.LoggerPort) (entity.MatchResult, bool) {
	for _, tier := range c {
		for _, s := range tier.Strategies {
			if ctx.Err() != nil {
				return entity.NotFound(ctx.Err().Error()), false
			}
			res, ok := s.TryMatch(ctx, page)
			if ok {
				res.Found = true
				res.Tier = tier.Name
				res.Strategy = s.Name()
				logger.Info("Element clicked", "tier", tier.Name, "strategy", s.Name(), "locator", res.Locator.String())
				return res, true
			}
			logger.Debug("Strategy missed", "tier", tier.Name, "strategy", s.Name(), "reason", res.Reason)
		}
	}
	return entity.MatchResult{}, false
}

// WaitClick waits for the locator to become clickable, then clicks it.
type WaitClick struct {
	Label   string
	Locator entity.Locator
	Timeout time.Duration
	Settle  time.Duration
	Matched string
}

func (s WaitClick) Name() string { return s.Label }

func (s WaitClick) TryMatch(ctx context.Context, page output.BrowserPort) (entity.MatchResult, bool) {
	el, err := page.WaitClickable(ctx, s.Locator, s.Timeout)
	if err != nil {
		return entity.NotFound(err.Error()), false
	}
	if err := ClickSettled(ctx, el, s.Settle); err != nil {
		return entity.NotFound(err.Error()), false
	}
	return entity.MatchResult{Locator: s.Locator, Matched: s.Matched}, true
}

// FirstVisible clicks the first currently visible element matching the locator.
type FirstVisible struct {
	Label   string
	Locator entity.Locator
	Settle  time.Duration
	Matched string
}

func (s FirstVisible) Name() string { return s.Label }

func (s FirstVisible) TryMatch(ctx context.Context, page output.BrowserPort) (entity.MatchResult, bool) {
	els, err := page.FindElements(ctx, s.Locator)
	if err != nil {
		return entity.NotFound(err.Error()), false
	}

	reason := "no visible candidate"
	for _, el := range els {
		if !el.Visible(ctx) {
			continue
		}
		if err := ClickSettled(ctx, el, s.Settle); err != nil {
			// stale or covered, next candidate
			reason = err.Error()
			continue
		}
		return entity.MatchResult{Locator: s.Locator, Matched: s.Matched}, true
	}
	return entity.NotFound(reason), false
}

// ClickSettled centers el in the viewport, lets the page settle, then clicks.
func ClickSettled(ctx context.Context, el output.ElementPort, settle time.Duration) error {
	if err := el.ScrollIntoView(ctx); err != nil {
		return err
	}
	if settle > 0 {
		t := time.NewTimer(settle)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
	return el.Click(ctx)
}
