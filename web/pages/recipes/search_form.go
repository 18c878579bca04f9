package recipes

import (
	"recipesearch/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// ExampleChips lists the suggested queries. Each chip posts to /example,
// which only fills the query field.
type ExampleChips struct {
	Examples []string
}

func (e ExampleChips) Render(b *element.Builder) any {
	b.DivClass("examples").R(
		b.PClass("examples-label").T("Try searching for:"),
		b.DivClass("chip-row").R(
			element.ForEach(e.Examples, func(example string) {
				b.Form("method", "post", "action", "/example", "class", "chip-form").R(
					b.Button("type", "submit", "class", "chip", "name", "example",
						"value", shared.Escape(example)).T(shared.Escape(example)),
				)
			}),
		),
	)
	return nil
}

// SearchForm is the query input with its submit button.
// Typing is mirrored to the session through htmx so an example chip click
// or a reload never loses what the user saw last.
type SearchForm struct {
	Query string
}

func (s SearchForm) Render(b *element.Builder) any {
	b.Form("method", "post", "action", "/search", "class", "search-form", "id", "search-form").R(
		b.Input("type", "search",
			"name", "q",
			"id", "search-query",
			"class", "search-input",
			"placeholder", "Search by ingredient...",
			"value", shared.Escape(s.Query),
			"autocomplete", "off",
			"hx-post", "/query",
			"hx-trigger", "input changed delay:300ms",
			"hx-swap", "none"),
		b.Button("type", "submit", "class", "search-button", "aria-label", "Search").T("&#128269;"),
	)
	return nil
}
