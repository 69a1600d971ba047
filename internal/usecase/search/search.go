package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"alfred/internal/application/port/output"
	"alfred/internal/domain/entity"
	"alfred/internal/domain/site"
)

var genericBoxes = []entity.Locator{
	entity.XPath("//input[@type='search']"),
	entity.XPath("//input[@name='q']"),
	entity.XPath("//input[@name='search']"),
	entity.XPath("//input[contains(@placeholder, 'search') or contains(@placeholder, 'Search')]"),
	entity.XPath("//input[contains(@aria-label, 'search') or contains(@aria-label, 'Search')]"),
	entity.XPath("//input[contains(@class, 'search') or contains(@id, 'search')]"),
	entity.CSS("input[type='search']"),
	entity.CSS("input.search"),
	entity.CSS("input#search"),
}

type Config struct {
	NativeTimeout  time.Duration
	GenericTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		NativeTimeout:  5 * time.Second,
		GenericTimeout: 3 * time.Second,
	}
}

type Executor struct {
	browser output.BrowserPort
	catalog *site.Catalog
	cfg     Config
	logger  output.LoggerPort
}

func NewExecutor(browser output.BrowserPort, catalog *site.Catalog, cfg Config, logger output.LoggerPort) *Executor {
	return &Executor{
		browser: browser,
		catalog: catalog,
		cfg:     cfg,
		logger:  logger.WithField("component", "search"),
	}
}

// Search types query into the page's own search box when one can be found,
// otherwise it loads the default engine's result page.
func (e *Executor) Search(ctx context.Context, query string) (*entity.SearchResult, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, fmt.Errorf("empty search query")
	}

	url := e.browser.CurrentURL(ctx)
	log := e.logger.WithFields(map[string]any{"query": q, "url": url})

	if p, ok := e.catalog.Lookup(url); ok {
		err := e.submit(ctx, p.SearchBox, e.cfg.NativeTimeout, q)
		if err == nil {
			log.Info("Searched with site search box", "site", p.Name)
			return &entity.SearchResult{Query: q, Engine: p.Name, Native: true}, nil
		}
		log.Debug("Site search box unusable", "site", p.Name, "error", err)
	}

	for _, loc := range genericBoxes {
		if err := e.submit(ctx, loc, e.cfg.GenericTimeout, q); err != nil {
			log.Debug("Search box candidate failed", "locator", loc.String(), "error", err)
			continue
		}
		log.Info("Searched with page search box", "locator", loc.String())
		return &entity.SearchResult{Query: q}, nil
	}

	engine := e.catalog.DefaultEngine()
	log.Info("No search box found, using search engine", "engine", engine.Name)
	if err := e.browser.Navigate(ctx, engine.SearchURL(q)); err != nil {
		return nil, fmt.Errorf("failed to search on %s: %w", engine.Name, err)
	}
	return &entity.SearchResult{Query: q, Engine: engine.Name, Fallback: true}, nil
}

func (e *Executor) submit(ctx context.Context, loc entity.Locator, timeout time.Duration, q string) error {
	box, err := e.browser.WaitClickable(ctx, loc, timeout)
	if err != nil {
		return err
	}
	if err := box.Fill(ctx, q); err != nil {
		return fmt.Errorf("failed to type query: %w", err)
	}
	if err := box.Submit(ctx); err != nil {
		return fmt.Errorf("failed to submit query: %w", err)
	}
	return nil
}

// Announcement is the sentence spoken once a search has been started.
func Announcement(res *entity.SearchResult) string {
	if res.Engine == "" {
		return fmt.Sprintf("Searching for %s", res.Query)
	}
	return fmt.Sprintf("Searching for %s on %s", res.Query, res.Engine)
}
