package entity

// Nickname maps a spoken site name onto its domain.
type Nickname struct {
	Name   string `mapstructure:"name" json:"name"`
	Domain string `mapstructure:"domain" json:"domain"`
}

// CorrectionRules are the tables the normalizer uses to repair model output.
// Order matters in every list: the first match wins.
type CorrectionRules struct {
	Nicknames          []Nickname `mapstructure:"nicknames" json:"nicknames"`
	ScrollPlaceholders []string   `mapstructure:"scroll_placeholders" json:"scroll_placeholders"`
	ClickTriggers      []string   `mapstructure:"click_triggers" json:"click_triggers"`
	ClickPrefixes      []string   `mapstructure:"click_prefixes" json:"click_prefixes"`
}

func DefaultCorrectionRules() CorrectionRules {
	return CorrectionRules{
		Nicknames: []Nickname{
			{Name: "youtube", Domain: "youtube.com"},
			{Name: "google", Domain: "google.com"},
			{Name: "facebook", Domain: "facebook.com"},
			{Name: "twitter", Domain: "twitter.com"},
			{Name: "instagram", Domain: "instagram.com"},
			{Name: "linkedin", Domain: "linkedin.com"},
			{Name: "reddit", Domain: "reddit.com"},
			{Name: "amazon", Domain: "amazon.com"},
			{Name: "netflix", Domain: "netflix.com"},
		},
		ScrollPlaceholders: []string{
			"scroll_start", "scroll_stop", "scroll_top", "scroll_bottom",
			"start_scrolling", "stop_scrolling", "scroll_up", "scroll_down",
			"scrolling_start", "scrolling_stop",
		},
		ClickTriggers: []string{"click", "open", "select", "choose"},
		ClickPrefixes: []string{"click on ", "click ", "open ", "select ", "choose "},
	}
}

// WithDefaults fills every empty table from DefaultCorrectionRules.
func (r CorrectionRules) WithDefaults() CorrectionRules {
	d := DefaultCorrectionRules()
	if len(r.Nicknames) == 0 {
		r.Nicknames = d.Nicknames
	}
	if len(r.ScrollPlaceholders) == 0 {
		r.ScrollPlaceholders = d.ScrollPlaceholders
	}
	if len(r.ClickTriggers) == 0 {
		r.ClickTriggers = d.ClickTriggers
	}
	if len(r.ClickPrefixes) == 0 {
		r.ClickPrefixes = d.ClickPrefixes
	}
	return r
}
