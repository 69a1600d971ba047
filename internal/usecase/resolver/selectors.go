package resolver

import (
	"fmt"
	"strings"

	"alfred/internal/domain/entity"
	"alfred/internal/domain/site"
)

type selector struct {
	name  string
	xpath string
}

// genericSelectors are tried in this order on every page.
func genericSelectors(q string) []selector {
	return []selector{
		{"element-text", fmt.Sprintf("//*[%s]", site.LowerContains("text()", q))},
		{"anchor-text", fmt.Sprintf("//a[%s]", site.LowerContains("text()", q))},
		{"button-text", fmt.Sprintf("//button[%s]", site.LowerContains("text()", q))},
		{"title", fmt.Sprintf("//*[%s]", site.LowerContains("@title", q))},
		{"aria-label", fmt.Sprintf("//*[%s]", site.LowerContains("@aria-label", q))},
		{"anchor-href", fmt.Sprintf("//a[%s]", site.LowerContains("@href", q))},
		{"alt", fmt.Sprintf("//*[%s]", site.LowerContains("@alt", q))},
		{"ancestor-anchor", fmt.Sprintf("//*[%s]/ancestor::a", site.LowerContains(".", q))},
		{"ancestor-button", fmt.Sprintf("//*[%s]/ancestor::button", site.LowerContains(".", q))},
	}
}

// PartialWords returns the words of a multi-word query long enough to search on their own.
func PartialWords(query string) []string {
	words := strings.Fields(normalize(query))
	if len(words) < 2 {
		return nil
	}
	var result []string
	for _, w := range words {
		if len([]rune(w)) > 3 {
			result = append(result, w)
		}
	}
	return result
}

func PartialWordLocator(word string) entity.Locator {
	return entity.XPath(fmt.Sprintf("//*[%s]", site.LowerContains("text()", word)))
}

func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
