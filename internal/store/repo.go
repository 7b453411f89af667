package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// TurnRecord is one persisted conversation turn.
type TurnRecord struct {
	SessionID string
	Seq       int
	Role      string
	Kind      string
	Content   string
	CreatedAt time.Time
}

// TranscriptRepo appends and reads conversation turns.
type TranscriptRepo interface {
	// Append records one turn of a session's transcript.
	Append(ctx context.Context, rec TurnRecord) error

	// BySession returns all turns of a session in sequence order.
	BySession(ctx context.Context, sessionID string) ([]TurnRecord, error)
}

// ModelCall captures one call to a hosted text-generation provider.
type ModelCall struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// ModelCallRepo appends model-call events.
type ModelCallRepo interface {
	Append(ctx context.Context, call ModelCall) error

	// Count returns the number of recorded calls.
	Count(ctx context.Context) (int, error)
}

type transcriptRepo struct {
	db *sql.DB
}

func (r *transcriptRepo) Append(ctx context.Context, rec TurnRecord) error {
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO turns (session_id, seq, role, kind, content, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.Seq, rec.Role, rec.Kind, rec.Content, created.Unix(),
	)
	if err != nil {
		return fmt.Errorf("append turn: %w", err)
	}
	return nil
}

func (r *transcriptRepo) BySession(ctx context.Context, sessionID string) ([]TurnRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT session_id, seq, role, kind, content, created_at
		 FROM turns WHERE session_id = ? ORDER BY seq`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query turns: %w", err)
	}
	defer rows.Close()

	var out []TurnRecord
	for rows.Next() {
		var rec TurnRecord
		var created int64
		if err := rows.Scan(&rec.SessionID, &rec.Seq, &rec.Role, &rec.Kind, &rec.Content, &created); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		rec.CreatedAt = time.Unix(created, 0)
		out = append(out, rec)
	}
	return out, rows.Err()
}

type modelCallRepo struct {
	db *sql.DB
}

func (r *modelCallRepo) Append(ctx context.Context, call ModelCall) error {
	success := 0
	if call.Success {
		success = 1
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO model_calls
		 (provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		call.Provider, call.Model, call.Purpose, call.InputTokens, call.OutputTokens,
		call.LatencyMs, success, call.ErrorMessage, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("append model call: %w", err)
	}
	return nil
}

func (r *modelCallRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM model_calls`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count model calls: %w", err)
	}
	return n, nil
}

// NopModelCalls returns a ModelCallRepo that discards everything. Used when
// the store is unavailable so provider wiring stays uniform.
func NopModelCalls() ModelCallRepo {
	return nopModelCallRepo{}
}

type nopModelCallRepo struct{}

func (nopModelCallRepo) Append(context.Context, ModelCall) error { return nil }
func (nopModelCallRepo) Count(context.Context) (int, error)      { return 0, nil }
