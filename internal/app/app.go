// Package app hosts the Bubble Tea chat surface: one screen with the turn
// log, the question input, grade/language selectors, and the conditional
// diagram action.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/harjot/proton/internal/diagram"
	"github.com/harjot/proton/internal/reveal"
	"github.com/harjot/proton/internal/session"
	"github.com/harjot/proton/internal/store"
	"github.com/harjot/proton/internal/syllabus"
	"github.com/harjot/proton/internal/tutor"
	"github.com/harjot/proton/internal/ui/components"
)

// ResolverFactory builds a resolver for the current selectors. Called
// again whenever the user changes grade or language.
type ResolverFactory func(grade int, lang tutor.Language) (tutor.Resolver, error)

// Options wires the app's collaborators.
type Options struct {
	Resolvers   ResolverFactory
	Diagrams    diagram.Provider
	Transcripts store.TranscriptRepo // optional
	Grade       int
	Language    tutor.Language
}

// activeReveal drives the typewriter effect over the sections of the most
// recent answer, one container at a time in fixed order.
type activeReveal struct {
	sections []tutor.Section
	idx      int
	current  *reveal.Reveal
	finished []tutor.Section
	partial  string
}

func newActiveReveal(sections []tutor.Section) *activeReveal {
	if len(sections) == 0 {
		return nil
	}
	return &activeReveal{
		sections: sections,
		current:  reveal.New(sections[0].Text),
	}
}

// step advances one token. Returns true when everything is revealed.
func (a *activeReveal) step() bool {
	prefix, done := a.current.Next()
	a.partial = prefix

	if !done {
		return false
	}

	a.finished = append(a.finished, tutor.Section{Label: a.sections[a.idx].Label, Text: prefix})
	a.idx++
	a.partial = ""

	if a.idx >= len(a.sections) {
		return true
	}
	a.current = reveal.New(a.sections[a.idx].Text)
	return false
}

// Model is the root Bubble Tea model.
type Model struct {
	opts     Options
	sess     *session.Session
	resolver tutor.Resolver
	input    components.QuestionInput

	revealing  *activeReveal
	spinnerPos int
	errNotice  string

	width  int
	height int
}

// NewModel creates the root model.
func NewModel(opts Options) (Model, error) {
	resolver, err := opts.Resolvers(opts.Grade, opts.Language)
	if err != nil {
		return Model{}, err
	}

	return Model{
		opts:     opts,
		sess:     session.New(opts.Grade, opts.Language),
		resolver: resolver,
		input:    components.NewQuestionInput("Ask a science question..."),
	}, nil
}

func (m Model) Init() tea.Cmd {
	return m.input.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case answerMsg:
		return m.handleAnswer(msg)

	case diagramMsg:
		return m.handleDiagram(msg)

	case revealTickMsg:
		if m.revealing == nil {
			return m, nil
		}
		if m.revealing.step() {
			m.revealing = nil
			return m, nil
		}
		return m, revealTick()

	case spinnerTickMsg:
		if m.busy() {
			m.spinnerPos++
			return m, spinnerTick()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "enter":
		return m.submitQuestion()

	case "ctrl+l":
		m.sess.Clear()
		m.revealing = nil
		m.errNotice = ""
		return m, nil

	case "ctrl+g":
		return m.cycleGrade()

	case "ctrl+t":
		return m.toggleLanguage()

	case "ctrl+d":
		return m.triggerDiagram()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitQuestion() (tea.Model, tea.Cmd) {
	question := m.input.Value()
	if question == "" || m.busy() {
		return m, nil
	}

	if err := m.sess.SubmitQuestion(question); err != nil {
		return m, nil
	}
	m.persistLastTurn()
	m.input.Reset()
	m.errNotice = ""

	return m, tea.Batch(resolveCmd(m.resolver, question), spinnerTick())
}

func (m Model) handleAnswer(msg answerMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		apology := "Sorry, I could not reach my brain just now. Please try again."
		if m.sess.Language == tutor.Punjabi {
			apology = "ਮਾਫ਼ ਕਰਨਾ, ਹੁਣੇ ਜਵਾਬ ਨਹੀਂ ਮਿਲ ਸਕਿਆ। ਕਿਰਪਾ ਕਰਕੇ ਦੁਬਾਰਾ ਕੋਸ਼ਿਸ਼ ਕਰੋ।"
		}
		m.sess.AnswerFailed(apology)
		m.persistLastTurn()
		return m, nil
	}

	m.sess.AnswerResolved(msg.Answer)
	m.persistLastTurn()

	turns := m.sess.Turns()
	last := turns[len(turns)-1]
	if last.Kind == session.KindStructured {
		m.revealing = newActiveReveal(last.Sections)
	} else {
		m.revealing = newActiveReveal([]tutor.Section{{Text: last.Text}})
	}

	return m, revealTick()
}

func (m Model) triggerDiagram() (tea.Model, tea.Cmd) {
	if m.opts.Diagrams == nil {
		return m, nil
	}

	req, err := m.sess.TriggerFollowUp()
	if err != nil {
		return m, nil
	}

	return m, tea.Batch(fetchDiagramCmd(m.opts.Diagrams, req.Description), spinnerTick())
}

func (m Model) handleDiagram(msg diagramMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.sess.FollowUpFailed("Could not fetch the diagram. Press Ctrl+D to try again.")
		m.persistLastTurn()
		m.errNotice = msg.Err.Error()
		return m, nil
	}

	turn := session.Turn{Kind: session.KindImage, Text: "Diagram saved", ImagePath: msg.Path}
	if len(msg.URLs) > 0 {
		turn = session.Turn{Kind: session.KindImageList, Text: "Diagrams found", URLs: msg.URLs}
	}

	m.sess.FollowUpResolved(turn)
	m.persistLastTurn()
	return m, nil
}

func (m Model) cycleGrade() (tea.Model, tea.Cmd) {
	if m.busy() {
		return m, nil
	}

	grade := m.sess.Grade + 1
	if grade > syllabus.MaxGrade {
		grade = syllabus.MinGrade
	}

	resolver, err := m.opts.Resolvers(grade, m.sess.Language)
	if err != nil {
		m.errNotice = err.Error()
		return m, nil
	}

	m.sess.Grade = grade
	m.resolver = resolver
	return m, nil
}

func (m Model) toggleLanguage() (tea.Model, tea.Cmd) {
	if m.busy() {
		return m, nil
	}

	lang := tutor.English
	if m.sess.Language == tutor.English {
		lang = tutor.Punjabi
	}

	resolver, err := m.opts.Resolvers(m.sess.Grade, lang)
	if err != nil {
		m.errNotice = err.Error()
		return m, nil
	}

	m.sess.Language = lang
	m.resolver = resolver
	return m, nil
}

// busy reports whether a resolution or follow-up is in flight.
func (m Model) busy() bool {
	return m.sess.Phase() == session.AwaitingAnswer || m.sess.Phase() == session.AwaitingFollowUp
}

// persistLastTurn appends the newest turn to the transcript store.
// Persistence failures never interrupt the conversation.
func (m Model) persistLastTurn() {
	if m.opts.Transcripts == nil {
		return
	}

	turns := m.sess.Turns()
	if len(turns) == 0 {
		return
	}
	last := turns[len(turns)-1]

	rec := store.TurnRecord{
		SessionID: m.sess.ID,
		Seq:       len(turns) - 1,
		Role:      string(last.Role),
		Kind:      string(last.Kind),
		Content:   last.Text,
		CreatedAt: last.At,
	}
	if err := m.opts.Transcripts.Append(context.Background(), rec); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to persist turn: %v\n", err)
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
