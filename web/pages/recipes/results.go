package recipes

import (
	"recipesearch/models"
	"recipesearch/web/pages/shared"
	"recipesearch/widget"

	"github.com/rohanthewiz/element"
)

// Results is the region under the form. Exactly one of loading, empty, grid
// or nothing is rendered, chosen by the view's state.
type Results struct {
	View widget.View
}

func (r Results) Render(b *element.Builder) any {
	switch r.View.State() {
	case widget.StateLoading:
		// Replaces itself with a fresh copy until the search settles
		b.Div("id", "results", "class", "loading",
			"hx-get", "/partials/results",
			"hx-trigger", "every 1s",
			"hx-swap", "outerHTML").R(
			b.DivClass("spinner").R(),
			b.PClass("loading-text").T(widget.LoadingMessage),
		)

	case widget.StateEmpty:
		b.Div("id", "results", "class", "recipe-grid").R(
			b.PClass("empty-state").T(widget.EmptyMessage),
		)

	case widget.StateResults:
		b.Div("id", "results", "class", "recipe-grid").R(
			element.ForEach(r.View.Recipes, func(recipe models.Recipe) {
				element.RenderComponents(b, Card{Recipe: recipe})
			}),
		)

	default:
		b.Div("id", "results", "class", "recipe-grid").R()
	}
	return nil
}

// RenderResults renders only the results region, for the htmx poll
func RenderResults(view widget.View) string {
	b := element.NewBuilder()
	element.RenderComponents(b, Results{View: view})
	return b.String()
}

// Card is one recipe in the grid. The overlay link covers the whole card.
type Card struct {
	Recipe models.Recipe
}

func (c Card) Render(b *element.Builder) any {
	rec := c.Recipe

	b.Div("class", "card", "data-key", shared.Escape(rec.URI)).R(
		b.Img("src", shared.Escape(rec.Image),
			"alt", shared.Escape(rec.Label),
			"width", "400", "height", "300",
			"class", "card-image",
			"loading", "lazy"),
		b.DivClass("card-content").R(
			b.H2("class", "card-title").T(shared.Escape(rec.Label)),
			b.PClass("card-ingredients").T(shared.Escape(rec.IngredientPreview())),
		),
		b.A("href", shared.Escape(rec.URL), "class", "card-link").R(
			b.SpanClass("sr-only").T("View recipe"),
		),
	)
	return nil
}
