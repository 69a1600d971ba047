package fakebrowser

import (
	"context"

	"alfred/internal/application/port/output"
)

var _ output.ElementPort = (*Element)(nil)

type Element struct {
	Name     string
	Label    string
	Attrs    map[string]string
	Hidden   bool
	Disabled bool
	ClickErr error

	Clicks           int
	ScrolledIntoView bool
	Filled           string
	Submitted        bool

	browser *Browser
}

// Link returns a visible element with the given text.
func Link(text string) *Element {
	return &Element{Name: text, Label: text}
}

func (e *Element) Visible(ctx context.Context) bool {
	return !e.Hidden
}

func (e *Element) Text(ctx context.Context) (string, error) {
	return e.Label, nil
}

func (e *Element) Attribute(ctx context.Context, name string) (string, error) {
	return e.Attrs[name], nil
}

func (e *Element) ScrollIntoView(ctx context.Context) error {
	e.ScrolledIntoView = true
	return nil
}

func (e *Element) Click(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if e.ClickErr != nil {
		return e.ClickErr
	}
	e.Clicks++
	if e.browser != nil {
		e.browser.recordClick(e)
	}
	return nil
}

func (e *Element) Fill(ctx context.Context, text string) error {
	e.Filled = text
	return nil
}

func (e *Element) Submit(ctx context.Context) error {
	e.Submitted = true
	return nil
}
