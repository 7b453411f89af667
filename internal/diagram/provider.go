// Package diagram fetches illustrative images for answers. Several
// interchangeable backends satisfy the same contract: synthesis via direct
// fetch, synthesis with warm-up retry, an ordered fallback chain, and web
// image search.
package diagram

import (
	"context"
	"fmt"
	"time"
)

// Image is fetched image bytes with their content type.
type Image struct {
	Data []byte
	MIME string
}

// Result is a provider's successful output: either one synthesized image
// or a list of search result URLs.
type Result struct {
	Image *Image
	URLs  []string
}

// Provider fetches an image for a natural-language description. All
// attempts are sequential; failures are non-fatal to the conversation.
type Provider interface {
	Fetch(ctx context.Context, description string) (*Result, error)

	// Name identifies the backend for logs and fallback ordering.
	Name() string
}

// ErrTransient signals "retry shortly": the backend is warming up or
// momentarily overloaded. Wait carries the suggested pause.
type ErrTransient struct {
	Wait time.Duration
	Err  error
}

func (e *ErrTransient) Error() string {
	return fmt.Sprintf("backend temporarily unavailable (retry in %s): %v", e.Wait, e.Err)
}

func (e *ErrTransient) Unwrap() error { return e.Err }

// ErrNoResults signals an empty search result set.
type ErrNoResults struct {
	Query string
}

func (e *ErrNoResults) Error() string {
	return fmt.Sprintf("no images found for %q", e.Query)
}

// sleepFunc allows tests to observe and skip backoff sleeps.
type sleepFunc func(time.Duration)
