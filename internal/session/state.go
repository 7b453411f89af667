package session

import (
	"fmt"

	"github.com/harjot/proton/internal/tutor"
)

// Phase is the conversation state-machine phase.
type Phase int

const (
	// Idle: ready for a question, no follow-up available.
	Idle Phase = iota

	// AwaitingAnswer: a question was submitted, resolution in flight.
	AwaitingAnswer

	// IdlePending: answer rendered, a follow-up diagram action is
	// available.
	IdlePending

	// AwaitingFollowUp: the user triggered the diagram action, fetch in
	// flight.
	AwaitingFollowUp
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case AwaitingAnswer:
		return "awaiting-answer"
	case IdlePending:
		return "idle-with-pending"
	case AwaitingFollowUp:
		return "awaiting-follow-up"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// SubmitQuestion records the user's question and moves to AwaitingAnswer.
// Any prior pending action is discarded: stale follow-ups never stack.
func (s *Session) SubmitQuestion(question string) error {
	if s.phase != Idle && s.phase != IdlePending {
		return fmt.Errorf("cannot submit a question in phase %s", s.phase)
	}

	s.pending = nil
	s.append(Turn{Role: RoleUser, Kind: KindText, Text: question})
	s.phase = AwaitingAnswer
	return nil
}

// AnswerResolved records a successful answer. When the answer carries an
// image prompt, the diagram follow-up becomes available.
func (s *Session) AnswerResolved(ans *tutor.Answer) error {
	if s.phase != AwaitingAnswer {
		return fmt.Errorf("no answer expected in phase %s", s.phase)
	}

	turn := Turn{Role: RoleAssistant, Kind: KindText, Text: ans.Text}
	if ans.Structured != nil {
		turn.Kind = KindStructured
		turn.Sections = ans.Structured.Sections()
	}
	s.append(turn)

	if ans.ImagePrompt != "" {
		s.pending = &DiagramRequest{Description: ans.ImagePrompt}
		s.phase = IdlePending
	} else {
		s.phase = Idle
	}
	return nil
}

// AnswerFailed records a failed resolution as an apology turn. The
// conversation continues; the session returns to Idle.
func (s *Session) AnswerFailed(apology string) error {
	if s.phase != AwaitingAnswer {
		return fmt.Errorf("no answer expected in phase %s", s.phase)
	}

	s.append(Turn{Role: RoleAssistant, Kind: KindText, Text: apology})
	s.phase = Idle
	return nil
}

// TriggerFollowUp starts the pending diagram action and returns its
// request.
func (s *Session) TriggerFollowUp() (*DiagramRequest, error) {
	if s.phase != IdlePending || s.pending == nil {
		return nil, fmt.Errorf("no follow-up action available in phase %s", s.phase)
	}

	s.phase = AwaitingFollowUp
	return s.pending, nil
}

// FollowUpResolved records the fetched diagram and consumes the pending
// action. A consumed action is never auto-retried.
func (s *Session) FollowUpResolved(turn Turn) error {
	if s.phase != AwaitingFollowUp {
		return fmt.Errorf("no follow-up in flight in phase %s", s.phase)
	}

	turn.Role = RoleAssistant
	s.append(turn)
	s.pending = nil
	s.phase = Idle
	return nil
}

// FollowUpFailed records an error notice and keeps the pending action
// available for a manual retry.
func (s *Session) FollowUpFailed(notice string) error {
	if s.phase != AwaitingFollowUp {
		return fmt.Errorf("no follow-up in flight in phase %s", s.phase)
	}

	s.append(Turn{Role: RoleAssistant, Kind: KindText, Text: notice})
	s.phase = IdlePending
	return nil
}
