package models

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"recipesearch/metrics"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

// maxErrorBodyBytes bounds how much of a failed response is kept for the log
const maxErrorBodyBytes = 512

// SearchClient calls the external recipe search endpoint.
// One Search call issues exactly one GET; there is no retry, cache or pagination.
type SearchClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewSearchClient creates a client for the endpoint at baseURL.
// A zero timeout leaves the outbound request unbounded except by the caller's context.
func NewSearchClient(baseURL string, timeout time.Duration) *SearchClient {
	return &SearchClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Search queries the endpoint with the query text and credentials.
// An empty query is sent as-is. The returned slice is never nil on success.
func (sc *SearchClient) Search(ctx context.Context, creds Credentials, query string) (recipes []Recipe, err error) {
	// Record outcome and latency however the call ends
	start := time.Now()
	defer func() {
		outcome := metrics.OutcomeOK
		switch {
		case err != nil:
			outcome = metrics.OutcomeError
		case len(recipes) == 0:
			outcome = metrics.OutcomeEmpty
		}
		metrics.ObserveSearch(outcome, time.Since(start))
	}()

	// Build request URL with query and credentials
	reqURL, err := sc.buildURL(creds, query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, serr.Wrap(err, "failed to create search request")
	}
	req.Header.Set("Accept", "application/json")

	// Send request
	resp, err := sc.httpClient.Do(req)
	if err != nil {
		return nil, serr.Wrap(err, "recipe search request failed")
	}
	defer resp.Body.Close()

	// Non-2xx counts as a failure. Keep a bit of the body for debugging.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		logger.Debug("Recipe search rejected", "status", resp.StatusCode, "body", string(body))
		return nil, serr.New("recipe search returned status " + strconv.Itoa(resp.StatusCode))
	}

	// Parse response
	var sr SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, serr.Wrap(err, "failed to decode recipe search response")
	}
	// A body without a hits array is not a valid search response
	if sr.Hits == nil {
		return nil, serr.New("recipe search response has no hits")
	}

	return sr.Recipes(), nil
}

// buildURL adds q, app_id and app_key to the base URL, keeping any query the base already has
func (sc *SearchClient) buildURL(creds Credentials, query string) (string, error) {
	u, err := url.Parse(sc.baseURL)
	if err != nil {
		return "", serr.Wrap(err, "invalid recipe search URL")
	}

	params := u.Query()
	params.Set("q", query)
	params.Set("app_id", creds.AppID)
	params.Set("app_key", creds.AppKey)
	u.RawQuery = params.Encode()

	return u.String(), nil
}
