package web_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"recipesearch/models"
	"recipesearch/web"
	"recipesearch/web/api"
	"recipesearch/widget"

	"github.com/rohanthewiz/rweb"
)

const biryaniHits = `{"hits":[{"recipe":{"uri":"r1","label":"Chicken Biryani",
	"image":"https://img.example/r1.jpg","ingredientLines":["rice","chicken"],
	"ingredients":[{"text":"rice"},{"text":"chicken"}],"url":"https://recipes.example/r1"}}]}`

// fakeUpstream stands in for the recipe API. It counts requests and can be switched to fail.
type fakeUpstream struct {
	server   *httptest.Server
	requests atomic.Int32
	failing  atomic.Bool
	lastQ    atomic.Value
}

func newFakeUpstream(t *testing.T) *fakeUpstream {
	t.Helper()
	fu := &fakeUpstream{}
	fu.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fu.requests.Add(1)
		q := r.URL.Query().Get("q")
		fu.lastQ.Store(q)

		if fu.failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if q == "Biryani" {
			w.Write([]byte(biryaniHits))
			return
		}
		w.Write([]byte(`{"hits":[]}`))
	}))
	t.Cleanup(fu.server.Close)
	return fu
}

// testServer is a running recipe server with a browser-like client
type testServer struct {
	baseURL  string
	client   *http.Client
	upstream *fakeUpstream
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithContext(t, context.Background())
}

// newTestServerWithContext starts a server whose app context is ctx
func newTestServerWithContext(t *testing.T, ctx context.Context) *testServer {
	t.Helper()

	upstream := newFakeUpstream(t)
	cfg := &models.Config{
		Credentials:   models.Credentials{AppID: "test-id", AppKey: "test-key"},
		SearchURL:     upstream.server.URL + "/search",
		Address:       "localhost:",
		SessionSecret: "test-secret-key-for-session-cookies-32",
		SessionTTL:    time.Hour,
	}

	app, err := web.NewApp(ctx, cfg)
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}

	readyChan := make(chan struct{}, 1)
	srv := web.NewServerWithOptions(app, rweb.ServerOptions{
		Verbose:   true,
		ReadyChan: readyChan,
		Address:   "localhost:", // Dynamic port
	})

	go func() {
		_ = web.Run(srv)
	}()
	<-readyChan

	jar, _ := cookiejar.New(nil)
	return &testServer{
		baseURL:  fmt.Sprintf("http://localhost:%s", srv.GetListenPort()),
		client:   &http.Client{Jar: jar, Timeout: 5 * time.Second},
		upstream: upstream,
	}
}

func (ts *testServer) get(t *testing.T, path string) (int, string) {
	t.Helper()
	resp, err := ts.client.Get(ts.baseURL + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func (ts *testServer) postForm(t *testing.T, path string, values url.Values) (int, string) {
	t.Helper()
	resp, err := ts.client.PostForm(ts.baseURL+path, values)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

// sessionState is the data part of GET /api/v1/state
type sessionState struct {
	Query    string `json:"query"`
	Searched bool   `json:"searched"`
	Loading  bool   `json:"loading"`
	State    string `json:"state"`
}

// state reads the widget state of this client's session
func (ts *testServer) state(t *testing.T) sessionState {
	t.Helper()
	status, body := ts.get(t, "/api/v1/state")
	if status != http.StatusOK {
		t.Fatalf("expected 200 from state endpoint, got %d", status)
	}

	var result struct {
		Success bool         `json:"success"`
		Data    sessionState `json:"data"`
	}
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		t.Fatalf("failed to decode state: %v", err)
	}
	return result.Data
}

// newBrowser returns a client with its own cookie jar, i.e. a separate session
func (ts *testServer) newBrowser() *testServer {
	jar, _ := cookiejar.New(nil)
	return &testServer{
		baseURL:  ts.baseURL,
		client:   &http.Client{Jar: jar, Timeout: 5 * time.Second},
		upstream: ts.upstream,
	}
}

// waitForResults polls the results partial until the loader is gone
func (ts *testServer) waitForResults(t *testing.T) string {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		_, body := ts.get(t, "/partials/results")
		if !strings.Contains(body, widget.LoadingMessage) {
			return body
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("search did not settle in time")
	return ""
}

func TestSearchPageFlow(t *testing.T) {
	ts := newTestServer(t)

	t.Run("InitialPageIsIdle", func(t *testing.T) {
		status, body := ts.get(t, "/")
		if status != http.StatusOK {
			t.Fatalf("expected 200, got %d", status)
		}
		if !strings.Contains(body, "Recipe Search") {
			t.Error("page title missing")
		}
		if strings.Contains(body, widget.EmptyMessage) {
			t.Error("empty message should not show before any search")
		}
	})

	t.Run("ExampleFillsQueryOnly", func(t *testing.T) {
		status, body := ts.postForm(t, "/example", url.Values{"example": {"Biryani"}})
		if status != http.StatusOK {
			t.Fatalf("expected redirect to page with 200, got %d", status)
		}
		if !strings.Contains(body, `id="search-query"`) {
			t.Error("search input missing from page")
		}
		if got := ts.state(t).Query; got != "Biryani" {
			t.Errorf("expected query to be exactly 'Biryani', got %q", got)
		}
		if n := ts.upstream.requests.Load(); n != 0 {
			t.Errorf("selecting an example should not search, upstream saw %d requests", n)
		}
	})

	t.Run("UnknownExampleRejected", func(t *testing.T) {
		status, _ := ts.postForm(t, "/example", url.Values{"example": {"Pizza"}})
		if status != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", status)
		}
	})

	t.Run("SearchRendersCards", func(t *testing.T) {
		ts.postForm(t, "/search", url.Values{"q": {"Biryani"}})
		body := ts.waitForResults(t)

		if n := strings.Count(body, `class="card"`); n != 1 {
			t.Fatalf("expected exactly one card, got %d", n)
		}
		if !strings.Contains(body, "Chicken Biryani") || !strings.Contains(body, `data-key="r1"`) {
			t.Error("expected the Chicken Biryani card keyed by r1")
		}
		if strings.Contains(body, widget.EmptyMessage) {
			t.Error("empty message should not show with results")
		}
	})

	t.Run("EmptyQueryShowsEmptyState", func(t *testing.T) {
		ts.postForm(t, "/search", url.Values{"q": {""}})
		body := ts.waitForResults(t)

		if q, _ := ts.upstream.lastQ.Load().(string); q != "" {
			t.Errorf("expected empty q to be sent, got %q", q)
		}
		if !strings.Contains(body, widget.EmptyMessage) {
			t.Error("expected empty-state message")
		}
	})

	t.Run("UpstreamFailureShowsEmptyState", func(t *testing.T) {
		ts.upstream.failing.Store(true)
		defer ts.upstream.failing.Store(false)

		ts.postForm(t, "/search", url.Values{"q": {"Biryani"}})
		body := ts.waitForResults(t)

		if !strings.Contains(body, widget.EmptyMessage) {
			t.Error("a failed search should look like zero results")
		}
		if strings.Contains(body, `class="card"`) {
			t.Error("no cards should render after a failure")
		}
	})

	t.Run("StateEndpoint", func(t *testing.T) {
		st := ts.state(t)
		if !st.Searched || st.Loading || st.State != "empty" {
			t.Errorf("unexpected state: %+v", st)
		}
	})
}

func TestSessionsAreIsolated(t *testing.T) {
	ts := newTestServer(t)
	ts.postForm(t, "/example", url.Values{"example": {"Nihari"}})

	if got := ts.state(t).Query; got != "Nihari" {
		t.Fatalf("expected own session query 'Nihari', got %q", got)
	}

	other := ts.newBrowser()
	if got := other.state(t).Query; got != "" {
		t.Errorf("a new browser session should start with an empty query, got %q", got)
	}
	if st := ts.state(t); st.Query != "Nihari" {
		t.Errorf("first session query changed to %q", st.Query)
	}
}

func TestSearchAPI(t *testing.T) {
	ts := newTestServer(t)

	t.Run("JSON", func(t *testing.T) {
		status, body := ts.get(t, "/api/v1/search?q=Biryani")
		if status != http.StatusOK {
			t.Fatalf("expected 200, got %d", status)
		}

		var result struct {
			Success bool              `json:"success"`
			Data    api.SearchResults `json:"data"`
		}
		if err := json.Unmarshal([]byte(body), &result); err != nil {
			t.Fatalf("failed to decode: %v", err)
		}
		if !result.Success || result.Data.Count != 1 || result.Data.Recipes[0].Label != "Chicken Biryani" {
			t.Errorf("unexpected response: %+v", result)
		}
	})

	t.Run("MsgPack", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, ts.baseURL+"/api/v1/search?q=Biryani", nil)
		req.Header.Set("Accept", models.MsgPackContentType)

		resp, err := ts.client.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()
		data, _ := io.ReadAll(resp.Body)

		results, err := models.DecodeRecipesMsgPack(data)
		if err != nil {
			t.Fatalf("failed to decode msgpack: %v", err)
		}
		if results.Count != 1 || results.Recipes[0].URI != "r1" {
			t.Errorf("unexpected results: %+v", results)
		}
	})

	t.Run("UpstreamFailure", func(t *testing.T) {
		ts.upstream.failing.Store(true)
		defer ts.upstream.failing.Store(false)

		status, _ := ts.get(t, "/api/v1/search?q=Biryani")
		if status != http.StatusBadGateway {
			t.Errorf("expected 502, got %d", status)
		}
	})

	t.Run("Health", func(t *testing.T) {
		status, body := ts.get(t, "/api/v1/health")
		if status != http.StatusOK || !strings.Contains(body, "healthy") {
			t.Errorf("unexpected health response %d: %s", status, body)
		}
	})
}

func TestSearchAPIUsesAppContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ts := newTestServerWithContext(t, ctx)

	status, _ := ts.get(t, "/api/v1/search?q=Biryani")
	if status != http.StatusOK {
		t.Fatalf("expected 200 while the app is running, got %d", status)
	}
	before := ts.upstream.requests.Load()

	cancel()

	status, _ = ts.get(t, "/api/v1/search?q=Biryani")
	if status != http.StatusBadGateway {
		t.Errorf("expected 502 once the app context is cancelled, got %d", status)
	}
	if n := ts.upstream.requests.Load(); n != before {
		t.Errorf("no upstream request should be sent after shutdown, got %d new", n-before)
	}
}

func TestStaticFiles(t *testing.T) {
	ts := newTestServer(t)

	t.Run("VersionedStylesheet", func(t *testing.T) {
		resp, err := ts.client.Get(ts.baseURL + "/static/css/app.css?v=1")
		if err != nil {
			t.Fatalf("GET failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
			t.Errorf("expected text/css, got %q", ct)
		}
		if cc := resp.Header.Get("Cache-Control"); !strings.Contains(cc, "31536000") {
			t.Errorf("versioned asset should be cached long term, got %q", cc)
		}
	})

	t.Run("DirectoryNotListed", func(t *testing.T) {
		status, _ := ts.get(t, "/static/css")
		if status != http.StatusNotFound {
			t.Errorf("expected 404 for a directory, got %d", status)
		}
	})

	t.Run("Favicon", func(t *testing.T) {
		status, body := ts.get(t, "/favicon.ico")
		if status != http.StatusOK || !strings.Contains(body, "<svg") {
			t.Errorf("unexpected favicon response %d", status)
		}
	})
}
