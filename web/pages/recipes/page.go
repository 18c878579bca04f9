// Package recipes renders the recipe search page: header with example chips
// and search form, then the results region driven by a widget.View.
package recipes

import (
	"recipesearch/web/pages/comps"
	"recipesearch/web/pages/shared"
	"recipesearch/widget"

	"github.com/rohanthewiz/element"
)

// pollSeconds is how often a loading page checks for settled results
const pollSeconds = 1

// Page is the full recipe search document
type Page struct {
	shared.Page
	View     widget.View
	Examples []string
}

// NewPage builds the page for the given widget state
func NewPage(view widget.View, examples []string) Page {
	p := Page{
		Page:     shared.Page{Title: "Recipe Search"},
		View:     view,
		Examples: examples,
	}
	if view.Loading {
		p.RefreshSeconds = pollSeconds
	}
	return p
}

// Render generates the complete HTML document
func (p Page) Render() string {
	b := element.NewBuilder()

	b.Html("lang", "en").R(
		p.Head(b),
		b.Body().R(
			b.DivClass("page").R(
				b.DivClass("search-box").R(
					b.Header("class", "search-header").R(
						element.RenderComponents(b,
							comps.Heading{
								Title:    "Recipe Search",
								Subtitle: "Find delicious recipes by ingredients you have at home.",
							},
							ExampleChips{Examples: p.Examples},
							SearchForm{Query: p.View.Query},
						),
					),
					element.RenderComponents(b, Results{View: p.View}),
				),
				element.RenderComponents(b, p.Footer()),
			),
		),
	)

	return b.String()
}
