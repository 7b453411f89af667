package session

import (
	"testing"

	"github.com/harjot/proton/internal/tutor"
)

func answered(t *testing.T, s *Session, question string, ans *tutor.Answer) {
	t.Helper()
	if err := s.SubmitQuestion(question); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := s.AnswerResolved(ans); err != nil {
		t.Fatalf("answer: %v", err)
	}
}

func TestSession_QuestionAnswerFlow(t *testing.T) {
	s := New(6, tutor.English)

	if s.Phase() != Idle {
		t.Fatalf("fresh session should be Idle, got %s", s.Phase())
	}

	answered(t, s, "what is a shadow?", &tutor.Answer{Text: "A dark patch."})

	turns := s.Turns()
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if turns[0].Role != RoleUser || turns[1].Role != RoleAssistant {
		t.Errorf("unexpected roles %q, %q", turns[0].Role, turns[1].Role)
	}
	if s.Phase() != Idle {
		t.Errorf("answer without image prompt should end Idle, got %s", s.Phase())
	}
	if s.HasPending() {
		t.Error("no pending action expected")
	}
}

func TestSession_ImagePromptCreatesPendingAction(t *testing.T) {
	s := New(6, tutor.English)

	answered(t, s, "q", &tutor.Answer{Text: "a", ImagePrompt: "shadow diagram"})

	if s.Phase() != IdlePending {
		t.Fatalf("expected IdlePending, got %s", s.Phase())
	}
	if !s.HasPending() || s.Pending().Description != "shadow diagram" {
		t.Error("pending action should carry the image prompt")
	}
}

func TestSession_NewQuestionDiscardsStalePending(t *testing.T) {
	s := New(6, tutor.English)
	answered(t, s, "q1", &tutor.Answer{Text: "a1", ImagePrompt: "diagram one"})

	// Never triggered; a new question must still clear it.
	if err := s.SubmitQuestion("q2"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if s.HasPending() {
		t.Error("stale pending action should be discarded on new question")
	}
	if err := s.AnswerResolved(&tutor.Answer{Text: "a2"}); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if s.Phase() != Idle {
		t.Errorf("expected Idle, got %s", s.Phase())
	}
}

func TestSession_FollowUpConsumedOnSuccess(t *testing.T) {
	s := New(6, tutor.English)
	answered(t, s, "q", &tutor.Answer{Text: "a", ImagePrompt: "diagram"})

	req, err := s.TriggerFollowUp()
	if err != nil {
		t.Fatalf("trigger: %v", err)
	}
	if req.Description != "diagram" {
		t.Errorf("unexpected request %q", req.Description)
	}
	if s.Phase() != AwaitingFollowUp {
		t.Fatalf("expected AwaitingFollowUp, got %s", s.Phase())
	}

	if err := s.FollowUpResolved(Turn{Kind: KindImage, ImagePath: "/tmp/d.png"}); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if s.HasPending() {
		t.Error("consumed action should be removed")
	}
	if s.Phase() != Idle {
		t.Errorf("expected Idle, got %s", s.Phase())
	}
}

func TestSession_FollowUpRetainedOnFailure(t *testing.T) {
	s := New(6, tutor.English)
	answered(t, s, "q", &tutor.Answer{Text: "a", ImagePrompt: "diagram"})

	if _, err := s.TriggerFollowUp(); err != nil {
		t.Fatalf("trigger: %v", err)
	}
	if err := s.FollowUpFailed("could not fetch the diagram"); err != nil {
		t.Fatalf("fail: %v", err)
	}

	if s.Phase() != IdlePending {
		t.Errorf("failed follow-up should return to IdlePending, got %s", s.Phase())
	}
	if !s.HasPending() {
		t.Error("failed action should stay available for manual retry")
	}

	// And it can be triggered again.
	if _, err := s.TriggerFollowUp(); err != nil {
		t.Errorf("retry trigger: %v", err)
	}
}

func TestSession_ClearMatchesFreshSession(t *testing.T) {
	s := New(7, tutor.Punjabi)
	answered(t, s, "q", &tutor.Answer{Text: "a", ImagePrompt: "diagram"})

	s.Clear()

	if len(s.Turns()) != 0 {
		t.Error("clear should remove all turns")
	}
	if s.HasPending() {
		t.Error("clear should remove the pending action")
	}
	if s.Phase() != Idle {
		t.Errorf("clear should return to Idle, got %s", s.Phase())
	}
}

func TestSession_AnswerFailedKeepsConversationAlive(t *testing.T) {
	s := New(9, tutor.English)
	if err := s.SubmitQuestion("q"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := s.AnswerFailed("Sorry, something went wrong."); err != nil {
		t.Fatalf("fail: %v", err)
	}

	if s.Phase() != Idle {
		t.Errorf("expected Idle after failure, got %s", s.Phase())
	}
	// Next question is accepted.
	if err := s.SubmitQuestion("q2"); err != nil {
		t.Errorf("session should continue after failure: %v", err)
	}
}

func TestSession_IllegalTransitionsRejected(t *testing.T) {
	s := New(6, tutor.English)

	if err := s.AnswerResolved(&tutor.Answer{Text: "a"}); err == nil {
		t.Error("answer without question should be rejected")
	}
	if _, err := s.TriggerFollowUp(); err == nil {
		t.Error("trigger without pending action should be rejected")
	}
	if err := s.SubmitQuestion("q"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := s.SubmitQuestion("q2"); err == nil {
		t.Error("double submit should be rejected while awaiting answer")
	}
}

func TestSession_StructuredAnswerTurn(t *testing.T) {
	s := New(10, tutor.English)
	answered(t, s, "ohm's law", &tutor.Answer{
		Structured: &tutor.StructuredAnswer{
			Definition: "d", Points: []string{"p"}, Formula: "V = IR", Example: "e",
		},
	})

	turns := s.Turns()
	last := turns[len(turns)-1]
	if last.Kind != KindStructured {
		t.Fatalf("expected structured turn, got %s", last.Kind)
	}
	if len(last.Sections) != 4 {
		t.Errorf("expected 4 sections, got %d", len(last.Sections))
	}
}
