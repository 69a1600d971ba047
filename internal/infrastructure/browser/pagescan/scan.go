package pagescan

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"alfred/internal/application/port/output"
	"alfred/internal/domain/entity"
)

var _ output.ElementScanner = (*Scanner)(nil)

type Config struct {
	// SkipTags: в эти теги не заходим.
	SkipTags []string
	// Limit ограничивает число элементов, 0 означает без ограничения.
	Limit   int
	MaxText int
}

var DefaultConfig = Config{
	SkipTags: []string{"script", "style", "noscript", "svg", "template", "head"},
	Limit:    500,
	MaxText:  80,
}

type Scanner struct {
	cfg *Config
}

func NewScanner(cfg *Config) *Scanner {
	return &Scanner{cfg: cfg}
}

func (s *Scanner) Clickables(html string) ([]entity.ClickableElement, error) {
	return Clickables(html, s.cfg)
}

// Clickables возвращает кликабельные элементы страницы в порядке документа:
// ссылки, кнопки, input-кнопки и всё с role=button или onclick.
func Clickables(rawHTML string, cfg *Config) ([]entity.ClickableElement, error) {
	if cfg == nil {
		cfg = &DefaultConfig
	}

	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	root := findBodyNode(doc)
	if root == nil {
		root = doc
	}

	var result []entity.ClickableElement
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if cfg.Limit > 0 && len(result) >= cfg.Limit {
			return
		}
		if n.Type == html.ElementNode {
			if isOneOf(n.Data, cfg.SkipTags...) {
				return
			}
			if isClickable(n) {
				result = append(result, entity.ClickableElement{
					Tag:       n.Data,
					Text:      truncate(textOf(n), cfg.MaxText),
					Title:     attr(n, "title"),
					AriaLabel: attr(n, "aria-label"),
					Href:      attr(n, "href"),
				})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return result, nil
}

func isClickable(n *html.Node) bool {
	switch n.Data {
	case "a", "button":
		return true
	case "input":
		return isOneOf(strings.ToLower(attr(n, "type")), "button", "submit", "reset", "image")
	}
	if strings.EqualFold(attr(n, "role"), "button") || strings.EqualFold(attr(n, "role"), "link") {
		return true
	}
	_, ok := lookupAttr(n, "onclick")
	return ok
}

func findBodyNode(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBodyNode(c); b != nil {
			return b
		}
	}
	return nil
}

// textOf собирает видимый текст узла, схлопывая пробелы.
func textOf(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		case html.ElementNode:
			if isOneOf(n.Data, "script", "style") {
				return
			}
			if n.Data == "input" {
				sb.WriteString(attr(n, "value"))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func attr(n *html.Node, key string) string {
	v, _ := lookupAttr(n, key)
	return strings.TrimSpace(v)
}

func lookupAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

func isOneOf(s string, candidates ...string) bool {
	for _, c := range candidates {
		if s == c {
			return true
		}
	}
	return false
}
