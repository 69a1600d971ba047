package inspector

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"alfred/internal/application/port/output"
	"alfred/internal/domain/entity"
)

type Config struct {
	// Screenshots enables saving a downscaled page capture next to each listing.
	Screenshots bool
	Dir         string
}

func DefaultConfig() Config {
	return Config{Dir: "log"}
}

// Inspector logs what can be clicked on the current page.
type Inspector struct {
	browser output.BrowserPort
	scanner output.ElementScanner
	cfg     Config
	logger  output.LoggerPort
	now     func() time.Time
}

func New(browser output.BrowserPort, scanner output.ElementScanner, cfg Config, logger output.LoggerPort) *Inspector {
	return &Inspector{
		browser: browser,
		scanner: scanner,
		cfg:     cfg,
		logger:  logger.WithField("component", "inspector"),
		now:     time.Now,
	}
}

// List logs every identifiable clickable element and returns them.
func (i *Inspector) List(ctx context.Context) ([]entity.ClickableElement, error) {
	page, err := i.browser.PageHTML(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read page: %w", err)
	}
	all, err := i.scanner.Clickables(page)
	if err != nil {
		return nil, fmt.Errorf("failed to scan page: %w", err)
	}

	url := i.browser.CurrentURL(ctx)
	var listed []entity.ClickableElement
	for _, el := range all {
		if !el.Identifiable() {
			continue
		}
		listed = append(listed, el)
		i.logger.Info("Clickable element",
			"index", len(listed),
			"tag", el.Tag,
			"text", el.Text,
			"title", el.Title,
			"aria_label", el.AriaLabel,
			"href", el.Href,
		)
	}
	i.logger.Info("Listed clickable elements", "url", url, "count", len(listed), "scanned", len(all))

	if i.cfg.Screenshots {
		if path, err := i.Snapshot(ctx); err != nil {
			i.logger.Warn("Screenshot failed", "error", err)
		} else {
			i.logger.Info("Saved screenshot", "path", path)
		}
	}
	return listed, nil
}

// Snapshot writes a capture of the current page into the configured directory.
func (i *Inspector) Snapshot(ctx context.Context) (string, error) {
	shot, err := i.browser.Screenshot(ctx)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(i.cfg.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", i.cfg.Dir, err)
	}
	name := fmt.Sprintf("page-%s.%s", i.now().Format("20060102-150405"), shot.Format)
	path := filepath.Join(i.cfg.Dir, name)
	if err := os.WriteFile(path, shot.Data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write screenshot: %w", err)
	}
	return path, nil
}
