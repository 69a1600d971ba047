package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/proto"

	"alfred/internal/application/port/output"
)

var _ output.ElementPort = (*element)(nil)

type element struct {
	el      *rod.Element
	timeout time.Duration
}

// do runs fn on a copy of the element bound to a bounded context.
func (e *element) do(ctx context.Context, fn func(*rod.Element) error) error {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	return fn(e.el.Context(ctx))
}

func (e *element) Visible(ctx context.Context) bool {
	var visible bool
	err := e.do(ctx, func(el *rod.Element) error {
		v, err := el.Visible()
		visible = v
		return err
	})
	return err == nil && visible
}

func (e *element) Text(ctx context.Context) (string, error) {
	var text string
	err := e.do(ctx, func(el *rod.Element) error {
		t, err := el.Text()
		text = t
		return err
	})
	return text, err
}

func (e *element) Attribute(ctx context.Context, name string) (string, error) {
	var value string
	err := e.do(ctx, func(el *rod.Element) error {
		v, err := el.Attribute(name)
		if v != nil {
			value = *v
		}
		return err
	})
	return value, err
}

func (e *element) ScrollIntoView(ctx context.Context) error {
	return e.do(ctx, func(el *rod.Element) error {
		_, err := el.Eval(`() => this.scrollIntoView({block: 'center', inline: 'center'})`)
		return err
	})
}

func (e *element) Click(ctx context.Context) error {
	err := e.do(ctx, func(el *rod.Element) error {
		return el.Click(proto.InputMouseButtonLeft, 1)
	})
	if err != nil {
		return fmt.Errorf("click failed: %w", err)
	}
	return nil
}

func (e *element) Fill(ctx context.Context, text string) error {
	err := e.do(ctx, func(el *rod.Element) error {
		if err := el.SelectAllText(); err == nil {
			_ = el.Input("")
		}
		return el.Input(text)
	})
	if err != nil {
		return fmt.Errorf("input failed: %w", err)
	}
	return nil
}

func (e *element) Submit(ctx context.Context) error {
	err := e.do(ctx, func(el *rod.Element) error {
		return el.Type(input.Enter)
	})
	if err != nil {
		return fmt.Errorf("failed to press Enter: %w", err)
	}
	return nil
}
