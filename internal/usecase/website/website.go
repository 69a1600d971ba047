package website

import (
	"context"
	"fmt"
	"strings"

	"alfred/internal/application/port/output"
	"alfred/internal/domain/site"
)

// NormalizeURL turns a spoken site name into something the browser can load.
func NormalizeURL(target string, engine site.Profile) string {
	t := strings.TrimSpace(target)
	lower := strings.ToLower(t)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return t
	case strings.ContainsAny(t, " \t"):
		return engine.SearchURL(t)
	case strings.Contains(t, "."):
		return "https://" + t
	default:
		return "https://" + t + ".com"
	}
}

type Opener struct {
	browser output.BrowserPort
	catalog *site.Catalog
	logger  output.LoggerPort
}

func NewOpener(browser output.BrowserPort, catalog *site.Catalog, logger output.LoggerPort) *Opener {
	return &Opener{browser: browser, catalog: catalog, logger: logger}
}

// Open navigates to target and returns the URL it loaded.
func (o *Opener) Open(ctx context.Context, target string) (string, error) {
	if strings.TrimSpace(target) == "" {
		return "", fmt.Errorf("no website given")
	}
	url := NormalizeURL(target, o.catalog.DefaultEngine())
	o.logger.Info("Opening website", "target", target, "url", url)
	if err := o.browser.Navigate(ctx, url); err != nil {
		return url, fmt.Errorf("failed to open %s: %w", url, err)
	}
	return url, nil
}
