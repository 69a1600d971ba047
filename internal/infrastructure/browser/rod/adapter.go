package rod

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"

	"alfred/internal/application/port/output"
	"alfred/internal/domain/entity"
)

var _ output.BrowserPort = (*BrowserAdapter)(nil)

var (
	ErrInvalidURL             = errors.New("invalid url")
	ErrInvalidScrollDirection = errors.New("invalid scroll direction")
	ErrInvalidSelector        = errors.New("invalid selector")
)

const (
	defaultTimeout           = 5 * time.Second
	defaultNavigationTimeout = 30 * time.Second
	defaultScreenshotWidth   = 1024
)

type BrowserAdapter struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page

	timeout           time.Duration
	navigationTimeout time.Duration
	screenshotWidth   int

	mu     sync.Mutex
	closed bool
}

type BrowserConfig struct {
	// Bin is the browser executable; empty looks up an installed Chrome or Edge, then downloads one.
	Bin       string
	Headless  bool
	NoSandbox bool
	// Timeout bounds every single element action.
	Timeout           time.Duration
	NavigationTimeout time.Duration
	ScreenshotWidth   int
	StartURL          string
}

func DefaultConfig() BrowserConfig {
	return BrowserConfig{
		Headless:          false,
		NoSandbox:         false,
		Timeout:           defaultTimeout,
		NavigationTimeout: defaultNavigationTimeout,
		ScreenshotWidth:   defaultScreenshotWidth,
		StartURL:          "about:blank",
	}
}

func NewBrowserAdapter(ctx context.Context, cfg BrowserConfig) (*BrowserAdapter, error) {
	if ctx != nil && ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.NavigationTimeout <= 0 {
		cfg.NavigationTimeout = defaultNavigationTimeout
	}
	if cfg.ScreenshotWidth <= 0 {
		cfg.ScreenshotWidth = defaultScreenshotWidth
	}
	if cfg.StartURL == "" {
		cfg.StartURL = "about:blank"
	}

	l := launcher.New().
		Headless(cfg.Headless).
		NoSandbox(cfg.NoSandbox).
		Delete("enable-automation").
		Set("disable-blink-features", "AutomationControlled").
		Set("disable-notifications").
		Set("start-maximized")
	if cfg.Bin == "" {
		cfg.Bin, _ = launcher.LookPath()
	}
	if cfg.Bin != "" {
		l = l.Bin(cfg.Bin)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: cfg.StartURL})
	if err != nil {
		_ = browser.Close()
		l.Kill()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	return &BrowserAdapter{
		browser:           browser,
		launcher:          l,
		page:              page,
		timeout:           cfg.Timeout,
		navigationTimeout: cfg.NavigationTimeout,
		screenshotWidth:   cfg.ScreenshotWidth,
	}, nil
}

func (b *BrowserAdapter) IsReady() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.closed && b.page != nil
}

func (b *BrowserAdapter) checkReady() error {
	if !b.IsReady() {
		return output.ErrBrowserClosed
	}
	return nil
}

func (b *BrowserAdapter) Navigate(ctx context.Context, rawURL string) error {
	if err := validateURL(rawURL); err != nil {
		return err
	}
	if err := b.checkReady(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, b.navigationTimeout)
	defer cancel()
	p := b.page.Context(ctx)

	if err := p.Navigate(rawURL); err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}
	if err := p.WaitLoad(); err != nil {
		return fmt.Errorf("wait load: %w", err)
	}
	return nil
}

func (b *BrowserAdapter) CurrentURL(ctx context.Context) string {
	if b.checkReady() != nil {
		return ""
	}
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	info, err := b.page.Context(ctx).Info()
	if err != nil {
		return ""
	}
	return info.URL
}

func (b *BrowserAdapter) Back(ctx context.Context) error {
	return b.history(ctx, "back", func(p *rod.Page) error { return p.NavigateBack() })
}

func (b *BrowserAdapter) Forward(ctx context.Context) error {
	return b.history(ctx, "forward", func(p *rod.Page) error { return p.NavigateForward() })
}

func (b *BrowserAdapter) Refresh(ctx context.Context) error {
	return b.history(ctx, "refresh", func(p *rod.Page) error { return p.Reload() })
}

func (b *BrowserAdapter) history(ctx context.Context, op string, fn func(*rod.Page) error) error {
	if err := b.checkReady(); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, b.navigationTimeout)
	defer cancel()

	if err := fn(b.page.Context(ctx)); err != nil {
		return fmt.Errorf("%s failed: %w", op, err)
	}
	return nil
}

func (b *BrowserAdapter) Scroll(ctx context.Context, direction string, amount int) error {
	var js string
	switch strings.ToLower(strings.TrimSpace(direction)) {
	case entity.ScrollDown:
		js = `(y) => window.scrollBy(0, y)`
	case entity.ScrollUp:
		js = `(y) => window.scrollBy(0, -y)`
	case entity.ScrollTop:
		js = `() => window.scrollTo(0, 0)`
	case entity.ScrollBottom:
		js = `() => window.scrollTo(0, document.body.scrollHeight)`
	default:
		return fmt.Errorf("%w: %q", ErrInvalidScrollDirection, direction)
	}
	if err := b.checkReady(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	if _, err := b.page.Context(ctx).Eval(js, amount); err != nil {
		return fmt.Errorf("scroll %s: %w", direction, err)
	}
	return nil
}

// ScrollY reports the vertical scroll offset of the page.
func (b *BrowserAdapter) ScrollY(ctx context.Context) (int, error) {
	if err := b.checkReady(); err != nil {
		return 0, err
	}
	res, err := b.page.Context(ctx).Eval(`() => Math.round(window.scrollY)`)
	if err != nil {
		return 0, fmt.Errorf("read scroll offset: %w", err)
	}
	return res.Value.Int(), nil
}

func (b *BrowserAdapter) FindElements(ctx context.Context, loc entity.Locator) ([]output.ElementPort, error) {
	if loc.Expr == "" {
		return nil, ErrInvalidSelector
	}
	if err := b.checkReady(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()
	p := b.page.Context(ctx)

	var (
		els rod.Elements
		err error
	)
	switch loc.Kind {
	case entity.LocatorXPath:
		els, err = p.ElementsX(loc.Expr)
	case entity.LocatorCSS:
		els, err = p.Elements(loc.Expr)
	default:
		return nil, fmt.Errorf("%w: kind %q", ErrInvalidSelector, loc.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", loc, err)
	}

	result := make([]output.ElementPort, 0, len(els))
	for _, el := range els {
		result = append(result, b.wrap(el))
	}
	return result, nil
}

func (b *BrowserAdapter) WaitClickable(ctx context.Context, loc entity.Locator, timeout time.Duration) (output.ElementPort, error) {
	if loc.Expr == "" {
		return nil, ErrInvalidSelector
	}
	if err := b.checkReady(); err != nil {
		return nil, err
	}

	wctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	p := b.page.Context(wctx)

	var (
		el  *rod.Element
		err error
	)
	switch loc.Kind {
	case entity.LocatorXPath:
		el, err = p.ElementX(loc.Expr)
	case entity.LocatorCSS:
		el, err = p.Element(loc.Expr)
	default:
		return nil, fmt.Errorf("%w: kind %q", ErrInvalidSelector, loc.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", output.ErrElementNotFound, loc, err)
	}
	if err := el.WaitVisible(); err != nil {
		return nil, fmt.Errorf("%w: %s not visible: %v", output.ErrElementNotFound, loc, err)
	}
	if err := el.WaitEnabled(); err != nil {
		return nil, fmt.Errorf("%w: %s not enabled: %v", output.ErrElementNotFound, loc, err)
	}
	return b.wrap(el), nil
}

func (b *BrowserAdapter) PageHTML(ctx context.Context) (string, error) {
	if err := b.checkReady(); err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	html, err := b.page.Context(ctx).HTML()
	if err != nil {
		return "", fmt.Errorf("failed to get HTML: %w", err)
	}
	return html, nil
}

// Screenshot captures the viewport and downscales it to the configured width.
func (b *BrowserAdapter) Screenshot(ctx context.Context) (*entity.Screenshot, error) {
	if err := b.checkReady(); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	raw, err := b.page.Context(ctx).Screenshot(false, &proto.PageCaptureScreenshot{
		Format:  proto.PageCaptureScreenshotFormatJpeg,
		Quality: gson.Int(80),
	})
	if err != nil {
		return nil, fmt.Errorf("screenshot failed: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}
	if img.Bounds().Dx() > b.screenshotWidth {
		img = imaging.Resize(img, b.screenshotWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 75}); err != nil {
		return nil, fmt.Errorf("jpeg encode failed: %w", err)
	}

	return &entity.Screenshot{
		Data:   buf.Bytes(),
		Format: "jpeg",
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	}, nil
}

// Close releases the session. Calling it more than once is harmless.
func (b *BrowserAdapter) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true

	var err error
	if b.browser != nil {
		err = b.browser.Close()
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher.Cleanup()
	}
	return err
}

func (b *BrowserAdapter) wrap(el *rod.Element) *element {
	return &element{el: el, timeout: b.timeout}
}

func validateURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("%w: empty", ErrInvalidURL)
	}
	if rawURL == "about:blank" {
		return nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	return nil
}
