package resolver

import (
	"context"
	"fmt"
	"time"

	"alfred/internal/application/port/output"
	"alfred/internal/domain/entity"
	"alfred/internal/domain/site"
)

const (
	TierSite    = "site"
	TierGeneric = "generic"
	TierPartial = "partial-word"
)

// Lister prints the clickable elements of the current page for diagnosis.
type Lister interface {
	List(ctx context.Context) ([]entity.ClickableElement, error)
}

type Config struct {
	SiteTimeout time.Duration
	Settle      time.Duration
}

func DefaultConfig() Config {
	return Config{
		SiteTimeout: 2 * time.Second,
		Settle:      200 * time.Millisecond,
	}
}

// Resolver finds and clicks the element a fuzzy description refers to.
type Resolver struct {
	browser output.BrowserPort
	catalog *site.Catalog
	lister  Lister
	cfg     Config
	logger  output.LoggerPort
}

func New(browser output.BrowserPort, catalog *site.Catalog, lister Lister, cfg Config, logger output.LoggerPort) *Resolver {
	return &Resolver{
		browser: browser,
		catalog: catalog,
		lister:  lister,
		cfg:     cfg,
		logger:  logger.WithField("component", "resolver"),
	}
}

func (r *Resolver) Resolve(ctx context.Context, text string) entity.MatchResult {
	q := normalize(text)
	if q == "" {
		return entity.NotFound("No element description given")
	}

	url := r.browser.CurrentURL(ctx)
	log := r.logger.WithFields(map[string]any{"query": q, "url": url})
	log.Info("Looking for element")

	if res, ok := r.cascade(url, q).Run(ctx, r.browser, log); ok {
		return res
	}

	if r.lister != nil {
		if _, err := r.lister.List(ctx); err != nil {
			log.Warn("Listing clickable elements failed", "error", err)
		}
	}
	return entity.NotFound(fmt.Sprintf("Could not find clickable element containing %s", q))
}

func (r *Resolver) cascade(url, q string) Cascade {
	var c Cascade

	if p, ok := r.catalog.Lookup(url); ok && p.IsSearchEngine() && len(p.ResultLinks) > 0 {
		tier := Tier{Name: TierSite}
		for i, build := range p.ResultLinks {
			tier.Strategies = append(tier.Strategies, WaitClick{
				Label:   fmt.Sprintf("%s-result-%d", p.Host, i+1),
				Locator: entity.XPath(build(q)),
				Timeout: r.cfg.SiteTimeout,
				Settle:  r.cfg.Settle,
				Matched: q,
			})
		}
		c = append(c, tier)
	}

	generic := Tier{Name: TierGeneric}
	for _, s := range genericSelectors(q) {
		generic.Strategies = append(generic.Strategies, FirstVisible{
			Label:   s.name,
			Locator: entity.XPath(s.xpath),
			Settle:  r.cfg.Settle,
			Matched: q,
		})
	}
	c = append(c, generic)

	if words := PartialWords(q); len(words) > 0 {
		partial := Tier{Name: TierPartial}
		for _, w := range words {
			partial.Strategies = append(partial.Strategies, FirstVisible{
				Label:   "word:" + w,
				Locator: PartialWordLocator(w),
				Settle:  r.cfg.Settle,
				Matched: w,
			})
		}
		c = append(c, partial)
	}
	return c
}
