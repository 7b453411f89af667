package diagram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	hfBaseURL      = "https://api-inference.huggingface.co"
	hfDefaultModel = "stabilityai/stable-diffusion-xl-base-1.0"

	// hfMaxAttempts bounds warm-up retries per Fetch.
	hfMaxAttempts = 3

	// hfMaxWait caps the provider-suggested warm-up wait.
	hfMaxWait = 30 * time.Second
)

// HuggingFace is the retrying-fetch backend. The inference API answers 503
// with an estimated_time while the model is warming up; the backend sleeps
// for the suggested duration and retries, bounded to hfMaxAttempts.
type HuggingFace struct {
	client  *http.Client
	baseURL string
	model   string
	apiKey  string
	sleep   sleepFunc
}

// NewHuggingFace creates the retrying backend.
func NewHuggingFace(apiKey string) *HuggingFace {
	return &HuggingFace{
		client:  &http.Client{Timeout: 90 * time.Second},
		baseURL: hfBaseURL,
		model:   hfDefaultModel,
		apiKey:  apiKey,
		sleep:   time.Sleep,
	}
}

func (h *HuggingFace) Name() string { return "huggingface" }

func (h *HuggingFace) Fetch(ctx context.Context, description string) (*Result, error) {
	var lastErr error

	for attempt := 0; attempt < hfMaxAttempts; attempt++ {
		result, err := h.fetchOnce(ctx, description)
		if err == nil {
			return result, nil
		}
		lastErr = err

		var transient *ErrTransient
		if !asTransient(err, &transient) {
			return nil, err
		}

		if attempt == hfMaxAttempts-1 {
			break
		}

		wait := transient.Wait
		if wait <= 0 {
			wait = 2 * time.Second
		}
		if wait > hfMaxWait {
			wait = hfMaxWait
		}
		h.sleep(wait)
	}

	return nil, fmt.Errorf("model did not become available after %d attempts: %w", hfMaxAttempts, lastErr)
}

func (h *HuggingFace) fetchOnce(ctx context.Context, description string) (*Result, error) {
	payload, err := json.Marshal(map[string]string{"inputs": description})
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	u := fmt.Sprintf("%s/models/%s", h.baseURL, h.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if h.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+h.apiKey)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call inference API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		mime := resp.Header.Get("Content-Type")
		if mime == "" {
			mime = "image/png"
		}
		return &Result{Image: &Image{Data: body, MIME: mime}}, nil

	case resp.StatusCode == http.StatusServiceUnavailable:
		var warmup struct {
			Error         string  `json:"error"`
			EstimatedTime float64 `json:"estimated_time"`
		}
		_ = json.Unmarshal(body, &warmup)
		return nil, &ErrTransient{
			Wait: time.Duration(warmup.EstimatedTime * float64(time.Second)),
			Err:  fmt.Errorf("model warming up: %s", warmup.Error),
		}

	default:
		return nil, fmt.Errorf("inference API returned status %d: %s", resp.StatusCode, truncate(body, 200))
	}
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
