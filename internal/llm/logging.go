package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/harjot/proton/internal/store"
)

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose attaches a purpose label ("answer", "diagram-prompt", ...) to
// the context for model-call logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// LoggingProvider is a decorator that records every model call in the store.
type LoggingProvider struct {
	inner Provider
	calls store.ModelCallRepo
}

// WithLogging wraps a Provider with model-call event logging.
func WithLogging(p Provider, calls store.ModelCallRepo) Provider {
	return &LoggingProvider{inner: p, calls: calls}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	call := store.ModelCall{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		call.Model = resp.Model
		call.InputTokens = resp.Usage.InputTokens
		call.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		call.ErrorMessage = err.Error()
	}

	// Logging must never fail the request.
	if logErr := l.calls.Append(ctx, call); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log model call: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
