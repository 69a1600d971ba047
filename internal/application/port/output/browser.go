package output

import (
	"context"
	"errors"
	"time"

	"alfred/internal/domain/entity"
)

var (
	ErrElementNotFound = errors.New("element not found")
	ErrBrowserClosed   = errors.New("browser session is closed")
)

// BrowserPort owns the single page of the browser session.
type BrowserPort interface {
	Navigate(ctx context.Context, url string) error
	CurrentURL(ctx context.Context) string
	Back(ctx context.Context) error
	Forward(ctx context.Context) error
	Refresh(ctx context.Context) error
	Scroll(ctx context.Context, direction string, amount int) error

	// FindElements returns the elements currently matching loc without waiting.
	FindElements(ctx context.Context, loc entity.Locator) ([]ElementPort, error)
	// WaitClickable waits up to timeout for loc to exist, be visible and enabled.
	WaitClickable(ctx context.Context, loc entity.Locator, timeout time.Duration) (ElementPort, error)

	PageHTML(ctx context.Context) (string, error)
	Screenshot(ctx context.Context) (*entity.Screenshot, error)

	Close() error
}

type ElementPort interface {
	Visible(ctx context.Context) bool
	Text(ctx context.Context) (string, error)
	Attribute(ctx context.Context, name string) (string, error)

	ScrollIntoView(ctx context.Context) error
	Click(ctx context.Context) error
	// Fill clears the element and types text into it.
	Fill(ctx context.Context, text string) error
	// Submit presses Enter on the element.
	Submit(ctx context.Context) error
}

// ElementScanner lists the clickable elements found in a page's markup.
type ElementScanner interface {
	Clickables(html string) ([]entity.ClickableElement, error)
}
