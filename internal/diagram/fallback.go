package diagram

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// transientRetryWait is the brief pause before retrying a backend that
// reported transient unavailability inside the fallback chain.
const transientRetryWait = 2 * time.Second

// Fallback tries an ordered list of named backends. A terminal failure
// moves on to the next backend; a transient one earns the same backend a
// single retry after a brief sleep. The chain fails only after every
// backend is exhausted.
type Fallback struct {
	providers []Provider
	sleep     sleepFunc
}

// NewFallback builds a chain over the given backends, in order.
func NewFallback(providers ...Provider) *Fallback {
	return &Fallback{providers: providers, sleep: time.Sleep}
}

func (f *Fallback) Name() string { return "fallback" }

func (f *Fallback) Fetch(ctx context.Context, description string) (*Result, error) {
	if len(f.providers) == 0 {
		return nil, fmt.Errorf("no backends configured")
	}

	var lastErr error

	for _, p := range f.providers {
		result, err := p.Fetch(ctx, description)
		if err == nil {
			return result, nil
		}

		var transient *ErrTransient
		if asTransient(err, &transient) {
			wait := transient.Wait
			if wait <= 0 || wait > transientRetryWait {
				wait = transientRetryWait
			}
			f.sleep(wait)

			result, err = p.Fetch(ctx, description)
			if err == nil {
				return result, nil
			}
		}

		fmt.Fprintf(os.Stderr, "warning: diagram backend %s failed: %v\n", p.Name(), err)
		lastErr = err
	}

	return nil, fmt.Errorf("all %d diagram backends failed: %w", len(f.providers), lastErr)
}

func asTransient(err error, target **ErrTransient) bool {
	return errors.As(err, target)
}
