package web

import (
	"context"

	"recipesearch/models"
	"recipesearch/web/api"
	"recipesearch/widget"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// App carries what the handlers need. Async searches started from the page
// run under ctx so they stop when the server shuts down.
type App struct {
	ctx    context.Context
	config *models.Config
	client *models.SearchClient
	store  *widget.Store
	signer *models.SessionSigner
}

// NewApp wires the search client, session store and cookie signer from cfg
func NewApp(ctx context.Context, cfg *models.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, serr.Wrap(err, "invalid configuration")
	}

	// Session cookies are signed with the configured secret
	signer, err := models.NewSessionSigner(cfg.SessionSecret)
	if err != nil {
		return nil, serr.Wrap(err, "failed to create session signer")
	}

	// One client is shared by the page widgets and the API
	client := models.NewSearchClient(cfg.SearchURL, cfg.SearchTimeout)

	return &App{
		ctx:    ctx,
		config: cfg,
		client: client,
		store:  widget.NewStore(client, cfg.SessionTTL),
		signer: signer,
	}, nil
}

// NewServer creates and configures the RWeb server
func NewServer(app *App) *rweb.Server {
	return NewServerWithOptions(app, rweb.ServerOptions{
		Address: app.config.Address,
		Verbose: true,
	})
}

// NewServerWithOptions is NewServer with caller supplied options (tests use a dynamic port)
func NewServerWithOptions(app *App, opts rweb.ServerOptions) *rweb.Server {
	s := rweb.NewServer(opts)

	// Apply middleware
	s.Use(rweb.RequestInfo)              // Logs request info
	s.Use(CorsMiddleware)                // Custom CORS middleware
	s.Use(SessionMiddleware(app.signer)) // Browser session -> search widget
	s.Use(SecurityHeadersMiddleware)     // Security headers
	s.Use(LoggingMiddleware)             // Request logging

	searchAPI := api.NewSearchAPI(app.ctx, app.client, app.config.Credentials, app.store)
	setupRoutes(s, app, searchAPI)

	// Serve static files using embedded FS
	SetupStaticFiles(s)

	return s
}

// Run starts the server. It blocks until the listener fails.
func Run(s *rweb.Server) error {
	logger.Info("Recipe search server starting")
	return s.Run()
}
