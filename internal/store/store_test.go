package store

import (
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestTranscript_AppendAndRead(t *testing.T) {
	s := openTestStore(t)
	repo := s.Transcripts()
	ctx := t.Context()

	turns := []TurnRecord{
		{SessionID: "s1", Seq: 0, Role: "user", Kind: "text", Content: "what is a shadow?"},
		{SessionID: "s1", Seq: 1, Role: "assistant", Kind: "text", Content: "A shadow is a dark patch."},
		{SessionID: "s2", Seq: 0, Role: "user", Kind: "text", Content: "other session"},
	}
	for _, rec := range turns {
		if err := repo.Append(ctx, rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.BySession(ctx, "s1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(got))
	}
	if got[0].Role != "user" || got[1].Role != "assistant" {
		t.Errorf("unexpected roles: %q, %q", got[0].Role, got[1].Role)
	}
	if got[0].Seq != 0 || got[1].Seq != 1 {
		t.Errorf("turns out of order: seq %d, %d", got[0].Seq, got[1].Seq)
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("expected created_at to be populated")
	}
}

func TestTranscript_EmptySession(t *testing.T) {
	s := openTestStore(t)

	got, err := s.Transcripts().BySession(t.Context(), "missing")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no turns, got %d", len(got))
	}
}

func TestModelCalls_AppendAndCount(t *testing.T) {
	s := openTestStore(t)
	repo := s.ModelCalls()
	ctx := t.Context()

	calls := []ModelCall{
		{Provider: "groq", Model: "llama-3.1-8b-instant", Purpose: "answer", LatencyMs: 120, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "answer", Success: false, ErrorMessage: "rate limited"},
	}
	for _, c := range calls {
		if err := repo.Append(ctx, c); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 calls, got %d", n)
	}
}

func TestNopModelCalls(t *testing.T) {
	repo := NopModelCalls()
	if err := repo.Append(t.Context(), ModelCall{Provider: "mock"}); err != nil {
		t.Fatalf("nop append: %v", err)
	}
	n, err := repo.Count(t.Context())
	if err != nil || n != 0 {
		t.Errorf("nop count: got (%d, %v)", n, err)
	}
}
