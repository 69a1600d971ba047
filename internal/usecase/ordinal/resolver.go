package ordinal

import (
	"context"
	"fmt"
	"time"

	"alfred/internal/application/port/output"
	"alfred/internal/domain/entity"
	"alfred/internal/domain/site"
	"alfred/internal/usecase/resolver"
)

const (
	MsgNoNumber = "I couldn't determine which result number to click."
	nounLink    = "link"
)

type Config struct {
	Timeout time.Duration
	Settle  time.Duration
}

func DefaultConfig() Config {
	return Config{
		Timeout: 3 * time.Second,
		Settle:  200 * time.Millisecond,
	}
}

// Resolver clicks the N-th result of the current page.
type Resolver struct {
	browser output.BrowserPort
	catalog *site.Catalog
	cfg     Config
	logger  output.LoggerPort
}

func New(browser output.BrowserPort, catalog *site.Catalog, cfg Config, logger output.LoggerPort) *Resolver {
	return &Resolver{
		browser: browser,
		catalog: catalog,
		cfg:     cfg,
		logger:  logger.WithField("component", "ordinal"),
	}
}

// Resolve clicks the result the phrase numbers. On success Matched reads
// like "video number 3", otherwise Reason is the sentence to speak.
func (r *Resolver) Resolve(ctx context.Context, text string) entity.MatchResult {
	n, ok := Extract(text)
	if !ok {
		return entity.NotFound(MsgNoNumber)
	}

	url := r.browser.CurrentURL(ctx)
	noun, c := r.cascade(url, n)
	log := r.logger.WithFields(map[string]any{"n": n, "url": url})

	res, ok := c.Run(ctx, r.browser, log)
	if !ok {
		log.Warn("Ordinal result not found")
		return entity.NotFound(fmt.Sprintf("Could not find result number %d", n))
	}
	res.Matched = fmt.Sprintf("%s number %d", noun, n)
	return res
}

func (r *Resolver) cascade(url string, n int) (string, resolver.Cascade) {
	strategy := func(label string, loc entity.Locator) resolver.Strategy {
		return resolver.WaitClick{
			Label:   label,
			Locator: loc,
			Timeout: r.cfg.Timeout,
			Settle:  r.cfg.Settle,
		}
	}

	p, known := r.catalog.Lookup(url)
	if !known {
		generic := entity.XPath(fmt.Sprintf(site.GenericOrdinalXPath, n))
		return nounLink, resolver.Cascade{{Name: "generic", Strategies: []resolver.Strategy{strategy("any-link", generic)}}}
	}

	tier := resolver.Tier{Name: p.Host, Strategies: []resolver.Strategy{strategy("primary", p.Ordinal(n))}}
	if backup, ok := p.OrdinalFallback(n); ok {
		tier.Strategies = append(tier.Strategies, strategy("backup", backup))
	}
	return p.OrdinalNoun, resolver.Cascade{tier}
}
