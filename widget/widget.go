// Package widget holds the recipe search state machine shared by the web page
// and the terminal UI: query text, the current result list, the in-flight flag
// and whether a search has been attempted.
package widget

import (
	"context"
	"errors"
	"sync"

	"recipesearch/models"

	"github.com/rohanthewiz/logger"
)

// ErrUnknownExample is returned when a selected example is not one of models.ExampleQueries
var ErrUnknownExample = errors.New("not an example query")

// Searcher runs one outbound recipe search
type Searcher interface {
	Search(ctx context.Context, creds models.Credentials, query string) ([]models.Recipe, error)
}

// State is the rendered state derived from a View
type State int

const (
	StateIdle    State = iota // no search attempted yet
	StateLoading              // a search is in flight
	StateEmpty                // settled with zero results (or a failure)
	StateResults              // settled with at least one result
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateEmpty:
		return "empty"
	case StateResults:
		return "results"
	default:
		return "idle"
	}
}

const (
	// LoadingMessage is shown with the spinner while a search is in flight
	LoadingMessage = "Loading recipes, please wait..."

	// EmptyMessage is shown when a settled search has nothing to display
	EmptyMessage = "No recipes found. Try searching with different ingredients."
)

// View is a point-in-time copy of the widget state
type View struct {
	Query    string          `json:"query"`
	Recipes  []models.Recipe `json:"recipes"`
	Loading  bool            `json:"loading"`
	Searched bool            `json:"searched"`
}

// State derives the mutually exclusive render state
func (v View) State() State {
	switch {
	case v.Loading:
		return StateLoading
	case len(v.Recipes) > 0:
		return StateResults
	case v.Searched:
		return StateEmpty
	default:
		return StateIdle
	}
}

// Widget is one search form with its results.
// Overlapping submissions are resolved with a generation counter: only the
// response to the latest submission is applied, older ones are dropped.
type Widget struct {
	searcher Searcher

	mu         sync.Mutex
	query      string
	recipes    []models.Recipe
	loading    bool
	searched   bool
	generation uint64
}

// New creates an idle widget backed by searcher
func New(searcher Searcher) *Widget {
	return &Widget{
		searcher: searcher,
		recipes:  []models.Recipe{},
	}
}

// SetQuery replaces the query text. No validation, no side effect.
func (w *Widget) SetQuery(q string) {
	w.mu.Lock()
	w.query = q
	w.mu.Unlock()
}

// SelectExample replaces the query with one of the example queries.
// It does not start a search.
func (w *Widget) SelectExample(q string) error {
	if !models.IsExampleQuery(q) {
		return ErrUnknownExample
	}
	w.SetQuery(q)
	return nil
}

// Submit runs one full search cycle for the current query and blocks until it settles.
// Failures are logged and leave the result list empty.
func (w *Widget) Submit(ctx context.Context, creds models.Credentials) {
	gen, query := w.begin()
	w.fetch(ctx, creds, gen, query)
}

// SubmitAsync marks the search in flight before returning, then fetches in the background.
// The returned channel is closed once this submission has settled.
func (w *Widget) SubmitAsync(ctx context.Context, creds models.Credentials) <-chan struct{} {
	gen, query := w.begin()
	done := make(chan struct{})

	go func() {
		defer close(done)
		w.fetch(ctx, creds, gen, query)
	}()

	return done
}

// Snapshot returns a copy of the current state
func (w *Widget) Snapshot() View {
	w.mu.Lock()
	defer w.mu.Unlock()

	recipes := make([]models.Recipe, len(w.recipes))
	copy(recipes, w.recipes)

	return View{
		Query:    w.query,
		Recipes:  recipes,
		Loading:  w.loading,
		Searched: w.searched,
	}
}

// begin enters the in-flight state and claims a new generation
func (w *Widget) begin() (uint64, string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.generation++
	w.loading = true
	w.searched = true
	w.recipes = []models.Recipe{}
	return w.generation, w.query
}

func (w *Widget) fetch(ctx context.Context, creds models.Credentials, gen uint64, query string) {
	recipes, err := w.searcher.Search(ctx, creds, query)
	if err != nil {
		logger.LogErr(err, "error fetching recipes", "query", query)
		recipes = nil
	}
	w.finish(gen, recipes)
}

// finish applies a settled response if it belongs to the latest submission.
// The in-flight flag is cleared last.
func (w *Widget) finish(gen uint64, recipes []models.Recipe) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if gen != w.generation {
		logger.Debug("Dropping stale search response", "generation", gen, "current", w.generation)
		return
	}

	if recipes == nil {
		recipes = []models.Recipe{}
	}
	w.recipes = recipes
	w.loading = false
}
