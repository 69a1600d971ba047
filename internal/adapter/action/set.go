package action

import "alfred/internal/application/port/output"

type Deps struct {
	Browser      output.BrowserPort
	Opener       WebsiteOpener
	Searcher     Searcher
	Elements     ElementResolver
	Ordinals     ElementResolver
	Lister       ElementLister
	ScrollAmount int
}

// BrowserActions returns one action per intent of the browser assistant.
func BrowserActions(d Deps) []output.ActionPort {
	return []output.ActionPort{
		NewOpenWebsiteAction(d.Opener),
		NewSearchAction(d.Searcher),
		NewScrollAction(d.Browser, d.ScrollAmount),
		NewNavigateAction(d.Browser),
		NewClickAction(d.Elements, d.Ordinals),
		NewListAction(d.Lister),
		NewExitAction(d.Browser),
		UnknownAction{},
	}
}
