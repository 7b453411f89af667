package diagram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const pollinationsBaseURL = "https://image.pollinations.ai"

// Pollinations is the direct-fetch backend: one GET with the description
// URL-encoded into the path. A non-200 response fails immediately.
type Pollinations struct {
	client  *http.Client
	baseURL string
	width   int
	height  int
}

// NewPollinations creates the direct-fetch backend with default sizing.
func NewPollinations() *Pollinations {
	return &Pollinations{
		client:  &http.Client{Timeout: 60 * time.Second},
		baseURL: pollinationsBaseURL,
		width:   768,
		height:  512,
	}
}

func (p *Pollinations) Name() string { return "pollinations" }

func (p *Pollinations) Fetch(ctx context.Context, description string) (*Result, error) {
	u := fmt.Sprintf("%s/prompt/%s?width=%d&height=%d&nologo=true",
		p.baseURL, url.PathEscape(description), p.width, p.height)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image endpoint returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read image body: %w", err)
	}

	mime := resp.Header.Get("Content-Type")
	if mime == "" {
		mime = "image/jpeg"
	}

	return &Result{Image: &Image{Data: data, MIME: mime}}, nil
}
