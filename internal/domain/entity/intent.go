package entity

import "strings"

type Intent string

const (
	IntentOpenWebsite Intent = "open_website"
	IntentSearch      Intent = "search"
	IntentScroll      Intent = "scroll"
	IntentNavigate    Intent = "navigate"
	IntentClick       Intent = "click"
	IntentList        Intent = "list"
	IntentExit        Intent = "exit"
	IntentUnknown     Intent = "unknown"
)

var intents = map[Intent]struct{}{
	IntentOpenWebsite: {},
	IntentSearch:      {},
	IntentScroll:      {},
	IntentNavigate:    {},
	IntentClick:       {},
	IntentList:        {},
	IntentExit:        {},
	IntentUnknown:     {},
}

// ParseIntent maps a raw model label onto the fixed vocabulary.
// "quit" is an alias of exit; anything else outside the vocabulary is unknown.
func ParseIntent(raw string) Intent {
	s := Intent(strings.ToLower(strings.TrimSpace(raw)))
	if s == "quit" {
		return IntentExit
	}
	if _, ok := intents[s]; ok {
		return s
	}
	return IntentUnknown
}

func (i Intent) String() string {
	return string(i)
}

const (
	ScrollDown   = "down"
	ScrollUp     = "up"
	ScrollTop    = "top"
	ScrollBottom = "bottom"
	ScrollStop   = "stop"
)

const (
	NavigateBack    = "back"
	NavigateForward = "forward"
	NavigateRefresh = "refresh"
)
