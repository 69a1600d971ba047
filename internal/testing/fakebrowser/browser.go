// Package fakebrowser is an in-memory BrowserPort for use case tests.
// Elements are registered under the exact locator expression that should find them.
package fakebrowser

import (
	"context"
	"fmt"
	"sync"
	"time"

	"alfred/internal/application/port/output"
	"alfred/internal/domain/entity"
)

var _ output.BrowserPort = (*Browser)(nil)

type Scroll struct {
	Direction string
	Amount    int
}

type Wait struct {
	Locator entity.Locator
	Timeout time.Duration
}

type Browser struct {
	mu sync.Mutex

	url      string
	elements map[string][]*Element
	html     string

	Visited []string
	Scrolls []Scroll
	History []string
	Waits   []Wait
	Clicked []*Element

	NavigateErr error
	ScrollErr   error
	HistoryErr  error
	closed      bool
}

func New(url string) *Browser {
	return &Browser{
		url:      url,
		elements: make(map[string][]*Element),
	}
}

// Add registers elements that loc resolves to, in document order.
func (b *Browser) Add(loc entity.Locator, els ...*Element) *Browser {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, el := range els {
		el.browser = b
	}
	b.elements[loc.Expr] = append(b.elements[loc.Expr], els...)
	return b
}

func (b *Browser) SetHTML(html string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.html = html
}

func (b *Browser) SetURL(url string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.url = url
}

func (b *Browser) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

func (b *Browser) Navigate(ctx context.Context, url string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.NavigateErr != nil {
		return b.NavigateErr
	}
	b.url = url
	b.Visited = append(b.Visited, url)
	return nil
}

func (b *Browser) CurrentURL(ctx context.Context) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.url
}

func (b *Browser) Back(ctx context.Context) error    { return b.history(entity.NavigateBack) }
func (b *Browser) Forward(ctx context.Context) error { return b.history(entity.NavigateForward) }
func (b *Browser) Refresh(ctx context.Context) error { return b.history(entity.NavigateRefresh) }

func (b *Browser) history(op string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.HistoryErr != nil {
		return b.HistoryErr
	}
	b.History = append(b.History, op)
	return nil
}

func (b *Browser) Scroll(ctx context.Context, direction string, amount int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ScrollErr != nil {
		return b.ScrollErr
	}
	b.Scrolls = append(b.Scrolls, Scroll{Direction: direction, Amount: amount})
	return nil
}

func (b *Browser) FindElements(ctx context.Context, loc entity.Locator) ([]output.ElementPort, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	els := b.elements[loc.Expr]
	result := make([]output.ElementPort, 0, len(els))
	for _, el := range els {
		result = append(result, el)
	}
	return result, nil
}

// WaitClickable answers immediately: the first registered element must be visible and enabled.
func (b *Browser) WaitClickable(ctx context.Context, loc entity.Locator, timeout time.Duration) (output.ElementPort, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.Waits = append(b.Waits, Wait{Locator: loc, Timeout: timeout})
	els := b.elements[loc.Expr]
	if len(els) == 0 || els[0].Hidden || els[0].Disabled {
		return nil, fmt.Errorf("%w: %s", output.ErrElementNotFound, loc)
	}
	return els[0], nil
}

func (b *Browser) PageHTML(ctx context.Context) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.html, nil
}

func (b *Browser) Screenshot(ctx context.Context) (*entity.Screenshot, error) {
	return &entity.Screenshot{Data: []byte{0xff, 0xd8}, Format: "jpeg", Width: 1, Height: 1}, nil
}

func (b *Browser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

func (b *Browser) recordClick(el *Element) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Clicked = append(b.Clicked, el)
}
