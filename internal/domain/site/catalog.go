package site

import (
	"fmt"
	"net/url"
	"strings"

	"alfred/internal/domain/entity"
)

type Kind string

const (
	KindSearchEngine Kind = "search_engine"
	KindVideo        Kind = "video"
)

// Profile describes the markup of a site the assistant knows about.
type Profile struct {
	Name string
	// Host is matched as a substring of the current URL host.
	Host      string
	Kind      Kind
	SearchBox entity.Locator
	QueryURL  string

	// ResultLinks are XPath builders for the element resolver site tier,
	// they receive the lowercased query.
	ResultLinks []func(query string) string

	OrdinalXPath  string
	OrdinalBackup string
	OrdinalNoun   string
}

func (p Profile) IsSearchEngine() bool {
	return p.Kind == KindSearchEngine
}

func (p Profile) SearchURL(query string) string {
	return fmt.Sprintf(p.QueryURL, url.QueryEscape(query))
}

func (p Profile) Ordinal(n int) entity.Locator {
	return entity.XPath(fmt.Sprintf(p.OrdinalXPath, n))
}

func (p Profile) OrdinalFallback(n int) (entity.Locator, bool) {
	if p.OrdinalBackup == "" {
		return entity.Locator{}, false
	}
	return entity.XPath(fmt.Sprintf(p.OrdinalBackup, n)), true
}

type Catalog struct {
	profiles      []Profile
	defaultEngine string
}

var (
	Google = Profile{
		Name:      "Google",
		Host:      "google.com",
		Kind:      KindSearchEngine,
		SearchBox: entity.XPath("//*[@name='q']"),
		QueryURL:  "https://www.google.com/search?q=%s",
		ResultLinks: []func(string) string{
			matching("//h3[%s]/ancestor::a", "text()"),
			matching("//div[contains(@class, 'g')]//a[%s]", "."),
			matching("//div[contains(@class, 'yuRUbf')]/a[%s]", "."),
		},
		OrdinalXPath:  "(//div[@class='g']//a)[%d]",
		OrdinalBackup: "(//h3/parent::a)[%d]",
		OrdinalNoun:   "result",
	}

	Bing = Profile{
		Name:      "Bing",
		Host:      "bing.com",
		Kind:      KindSearchEngine,
		SearchBox: entity.XPath("//*[@name='q']"),
		QueryURL:  "https://www.bing.com/search?q=%s",
		ResultLinks: []func(string) string{
			matching("//h2[%s]/ancestor::a", "text()"),
			matching("//li[contains(@class, 'b_algo')]//a[%s]", "."),
		},
		OrdinalXPath:  "(//li[@class='b_algo']//h2/a)[%d]",
		OrdinalBackup: "(//li[contains(@class, 'b_algo')]//h2//a)[%d]",
		OrdinalNoun:   "result",
	}

	DuckDuckGo = Profile{
		Name:      "DuckDuckGo",
		Host:      "duckduckgo.com",
		Kind:      KindSearchEngine,
		SearchBox: entity.XPath("//*[@name='q']"),
		QueryURL:  "https://duckduckgo.com/?q=%s",
		ResultLinks: []func(string) string{
			matching("//a[@data-testid='result-title-a'][%s]", "."),
			matching("//article//h2//a[%s]", "."),
		},
		OrdinalXPath:  "(//a[@data-testid='result-title-a'])[%d]",
		OrdinalBackup: "(//article//h2/a)[%d]",
		OrdinalNoun:   "result",
	}

	YouTube = Profile{
		Name:         "YouTube",
		Host:         "youtube.com",
		Kind:         KindVideo,
		SearchBox:    entity.XPath("//*[@name='search_query']"),
		QueryURL:     "https://www.youtube.com/results?search_query=%s",
		OrdinalXPath: "(//ytd-video-renderer//a[@id='thumbnail'])[%d]",
		OrdinalNoun:  "video",
	}
)

// matching builds a result-link XPath whose %s is a case-insensitive contains over scope.
func matching(format, scope string) func(string) string {
	return func(q string) string {
		return fmt.Sprintf(format, LowerContains(scope, q))
	}
}

// GenericOrdinalXPath is used on pages of unknown sites.
const GenericOrdinalXPath = "(//a)[%d]"

func DefaultCatalog() *Catalog {
	return NewCatalog(Bing.Name, Google, Bing, DuckDuckGo, YouTube)
}

func NewCatalog(defaultEngine string, profiles ...Profile) *Catalog {
	return &Catalog{
		profiles:      profiles,
		defaultEngine: defaultEngine,
	}
}

// Lookup returns the first profile whose host marker occurs in the host of rawURL.
func (c *Catalog) Lookup(rawURL string) (Profile, bool) {
	host := strings.ToLower(rawURL)
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		host = strings.ToLower(u.Host)
	}
	for _, p := range c.profiles {
		if strings.Contains(host, p.Host) {
			return p, true
		}
	}
	return Profile{}, false
}

// DefaultEngine is the engine used for free-text fallbacks.
func (c *Catalog) DefaultEngine() Profile {
	for _, p := range c.profiles {
		if p.Name == c.defaultEngine {
			return p
		}
	}
	return Bing
}
