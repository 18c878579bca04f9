package api

import (
	"context"
	"net/http"
	"strings"

	"recipesearch/models"
	"recipesearch/widget"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// SearchResults is the JSON payload of GET /api/v1/search
type SearchResults struct {
	Query   string          `json:"query"`
	Count   int             `json:"count"`
	Recipes []models.Recipe `json:"recipes"`
}

// StateOutput is the JSON payload of GET /api/v1/state
type StateOutput struct {
	widget.View
	State string `json:"state"`
}

// SearchAPI serves the stateless search endpoint and session state
type SearchAPI struct {
	ctx      context.Context // bounds every upstream call, cancelled at shutdown
	searcher widget.Searcher
	creds    models.Credentials
	store    *widget.Store
}

// NewSearchAPI creates the API handlers. creds are passed into every search call
// and ctx is the parent of every upstream request.
func NewSearchAPI(ctx context.Context, searcher widget.Searcher, creds models.Credentials, store *widget.Store) *SearchAPI {
	return &SearchAPI{ctx: ctx, searcher: searcher, creds: creds, store: store}
}

// Search handles GET /api/v1/search?q=
// Unlike the page, an upstream failure is reported as 502 rather than an empty list.
// Clients sending "Accept: application/msgpack" get a msgpack body.
func (sa *SearchAPI) Search(ctx rweb.Context) error {
	query := ctx.Request().QueryParam("q")

	recipes, err := sa.searcher.Search(sa.ctx, sa.creds, query)
	if err != nil {
		logger.LogErr(err, "api recipe search failed", "query", query)
		return writeError(ctx, http.StatusBadGateway, "recipe search failed")
	}

	if strings.Contains(ctx.Request().Header("Accept"), models.MsgPackContentType) {
		data, err := models.EncodeRecipesMsgPack(query, recipes)
		if err != nil {
			logger.LogErr(err, "failed to encode msgpack response", "query", query)
			return writeError(ctx, http.StatusInternalServerError, "encoding error")
		}
		ctx.Response().SetHeader("Content-Type", models.MsgPackContentType)
		return ctx.Bytes(data)
	}

	return writeSuccess(ctx, http.StatusOK, SearchResults{
		Query:   query,
		Count:   len(recipes),
		Recipes: recipes,
	})
}

// Examples handles GET /api/v1/examples
func (sa *SearchAPI) Examples(ctx rweb.Context) error {
	return writeSuccess(ctx, http.StatusOK, models.ExampleQueries)
}

// State handles GET /api/v1/state, the caller's session widget
func (sa *SearchAPI) State(ctx rweb.Context) error {
	id, _ := ctx.Get("session_id").(string)
	if id == "" {
		return writeError(ctx, http.StatusUnauthorized, "no session")
	}

	view := sa.store.Get(id).Snapshot()
	return writeSuccess(ctx, http.StatusOK, StateOutput{View: view, State: view.State().String()})
}

// Health handles GET /api/v1/health
func Health(ctx rweb.Context) error {
	return writeSuccess(ctx, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "recipesearch",
	})
}
