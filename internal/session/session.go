// Package session owns the conversation state: the append-only turn log,
// the grade/language selectors, the single pending follow-up action, and
// the state machine that drives the ask→answer→diagram flow.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/harjot/proton/internal/tutor"
)

// Role identifies who produced a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Kind classifies a turn's content.
type Kind string

const (
	KindText       Kind = "text"
	KindStructured Kind = "structured"
	KindImage      Kind = "image"
	KindImageList  Kind = "image-list"
)

// Turn is one immutable entry of the conversation log.
type Turn struct {
	Role Role
	Kind Kind

	// Text is the display content for text turns, or a caption for
	// image turns.
	Text string

	// Sections carries the structured answer containers, in display order.
	Sections []tutor.Section

	// ImagePath is the saved file for an image turn.
	ImagePath string

	// URLs carries image-search results for image-list turns.
	URLs []string

	At time.Time
}

// DiagramRequest is the deferred follow-up action attached to an answer.
type DiagramRequest struct {
	Description string
}

// Session is a single conversation. It is single-owner: the controller
// mutates it, nothing else does, so no locking is needed.
type Session struct {
	ID       string
	Grade    int
	Language tutor.Language

	turns   []Turn
	pending *DiagramRequest
	phase   Phase
}

// New creates an empty session in the Idle phase.
func New(grade int, lang tutor.Language) *Session {
	return &Session{
		ID:       uuid.NewString(),
		Grade:    grade,
		Language: lang,
		phase:    Idle,
	}
}

// Turns returns the conversation log in order.
func (s *Session) Turns() []Turn {
	return s.turns
}

// Phase returns the current state-machine phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Pending returns the follow-up action, or nil.
func (s *Session) Pending() *DiagramRequest {
	return s.pending
}

// HasPending reports whether a follow-up action is available.
func (s *Session) HasPending() bool {
	return s.pending != nil
}

// append adds a turn with the current time.
func (s *Session) append(t Turn) {
	if t.At.IsZero() {
		t.At = time.Now()
	}
	s.turns = append(s.turns, t)
}

// Clear discards all turns and any pending action from any phase. The
// resulting state is indistinguishable from a fresh session (the ID is
// kept so transcripts stay attributable).
func (s *Session) Clear() {
	s.turns = nil
	s.pending = nil
	s.phase = Idle
}
