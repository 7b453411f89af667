package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// QuestionInput wraps bubbles/textinput for the chat prompt.
type QuestionInput struct {
	Model textinput.Model
}

// NewQuestionInput creates the chat input.
func NewQuestionInput(placeholder string) QuestionInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 300
	ti.Focus()
	return QuestionInput{Model: ti}
}

// Init returns the initial command.
func (q QuestionInput) Init() tea.Cmd {
	return q.Model.Focus()
}

// Update handles messages.
func (q QuestionInput) Update(msg tea.Msg) (QuestionInput, tea.Cmd) {
	var cmd tea.Cmd
	q.Model, cmd = q.Model.Update(msg)
	return q, cmd
}

// View renders the input.
func (q QuestionInput) View() string {
	return q.Model.View()
}

// Value returns the current input text.
func (q QuestionInput) Value() string {
	return q.Model.Value()
}

// Reset clears the input.
func (q *QuestionInput) Reset() {
	q.Model.SetValue("")
}
