package diagram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const searchBaseURL = "https://www.googleapis.com/customsearch/v1"

// GoogleSearch is the search-based backend: instead of synthesizing an
// image it returns the top-K image URLs for a keyword query.
type GoogleSearch struct {
	client  *http.Client
	baseURL string
	apiKey  string
	cx      string
	topK    int
}

// NewGoogleSearch creates the search backend. cx is the custom search
// engine ID.
func NewGoogleSearch(apiKey, cx string, topK int) *GoogleSearch {
	if topK <= 0 {
		topK = 3
	}
	return &GoogleSearch{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: searchBaseURL,
		apiKey:  apiKey,
		cx:      cx,
		topK:    topK,
	}
}

func (g *GoogleSearch) Name() string { return "google-search" }

func (g *GoogleSearch) Fetch(ctx context.Context, description string) (*Result, error) {
	params := url.Values{}
	params.Set("key", g.apiKey)
	params.Set("cx", g.cx)
	params.Set("q", description)
	params.Set("searchType", "image")
	params.Set("imgType", "clipart")
	params.Set("safe", "active")
	params.Set("num", fmt.Sprint(g.topK))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call search API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned status %d", resp.StatusCode)
	}

	var parsed struct {
		Items []struct {
			Link string `json:"link"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	if len(parsed.Items) == 0 {
		return nil, &ErrNoResults{Query: description}
	}

	urls := make([]string, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		urls = append(urls, item.Link)
	}
	if len(urls) > g.topK {
		urls = urls[:g.topK]
	}

	return &Result{URLs: urls}, nil
}
