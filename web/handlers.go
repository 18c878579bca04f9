package web

import (
	"errors"
	"net/http"

	"recipesearch/models"
	"recipesearch/web/pages/recipes"
	"recipesearch/widget"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// HomePage renders the search page for the caller's session
func (a *App) HomePage(c rweb.Context) error {
	view := a.widgetFor(c).Snapshot()
	c.Response().SetHeader("Cache-Control", "no-store")
	return c.WriteHTML(recipes.NewPage(view, models.ExampleQueries).Render())
}

// SetQuery replaces the query text without searching
func (a *App) SetQuery(c rweb.Context) error {
	a.widgetFor(c).SetQuery(c.Request().FormValue("q"))
	return respondAfterForm(c)
}

// SelectExample fills the query with an example chip
func (a *App) SelectExample(c rweb.Context) error {
	example := c.Request().FormValue("example")

	if err := a.widgetFor(c).SelectExample(example); err != nil {
		if errors.Is(err, widget.ErrUnknownExample) {
			c.SetStatus(http.StatusBadRequest)
			return c.WriteHTML("<p>Unknown example query</p>")
		}
		return err
	}
	return respondAfterForm(c)
}

// SubmitSearch takes the submitted query, marks the search in flight and
// redirects back to the page, which shows the loader until results settle
func (a *App) SubmitSearch(c rweb.Context) error {
	w := a.widgetFor(c)
	query := c.Request().FormValue("q")
	w.SetQuery(query)

	logger.Debug("Recipe search submitted", "query", query, "session_id", sessionID(c))
	w.SubmitAsync(a.ctx, a.config.Credentials)

	return c.Redirect(http.StatusSeeOther, "/")
}

// ResultsPartial returns only the results region
func (a *App) ResultsPartial(c rweb.Context) error {
	view := a.widgetFor(c).Snapshot()
	c.Response().SetHeader("Cache-Control", "no-store")
	return c.WriteHTML(recipes.RenderResults(view))
}

func (a *App) widgetFor(c rweb.Context) *widget.Widget {
	return a.store.Get(sessionID(c))
}

// respondAfterForm ends a state-only form post: htmx gets an empty 204,
// plain browsers are sent back to the page
func respondAfterForm(c rweb.Context) error {
	if c.Request().Header("HX-Request") == "true" {
		c.SetStatus(http.StatusNoContent)
		return nil
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func sessionID(c rweb.Context) string {
	id, _ := c.Get("session_id").(string)
	return id
}
