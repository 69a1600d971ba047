package entity

import "fmt"

type LocatorKind string

const (
	LocatorXPath LocatorKind = "xpath"
	LocatorCSS   LocatorKind = "css"
)

type Locator struct {
	Kind LocatorKind
	Expr string
}

func XPath(expr string) Locator {
	return Locator{Kind: LocatorXPath, Expr: expr}
}

func CSS(expr string) Locator {
	return Locator{Kind: LocatorCSS, Expr: expr}
}

func (l Locator) String() string {
	return fmt.Sprintf("%s=%s", l.Kind, l.Expr)
}

// ClickableElement is one entry of the diagnostic element listing.
type ClickableElement struct {
	Tag       string `json:"tag"`
	Text      string `json:"text"`
	Title     string `json:"title,omitempty"`
	AriaLabel string `json:"aria_label,omitempty"`
	Href      string `json:"href,omitempty"`
}

func (e ClickableElement) Identifiable() bool {
	return e.Text != "" || e.Title != "" || e.AriaLabel != ""
}

type Screenshot struct {
	Data   []byte
	Format string
	Width  int
	Height int
}

// MatchResult is the outcome of an element or ordinal resolution.
// Found=false is a normal terminal outcome, Reason then says why.
type MatchResult struct {
	Found    bool
	Tier     string
	Strategy string
	Locator  Locator
	Matched  string
	Reason   string
}

func NotFound(reason string) MatchResult {
	return MatchResult{Reason: reason}
}

type SearchResult struct {
	Query    string
	Engine   string
	Native   bool
	Fallback bool
}
