package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/harjot/proton/internal/session"
	"github.com/harjot/proton/internal/tutor"
	"github.com/harjot/proton/internal/ui/layout"
	"github.com/harjot/proton/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	langLabel := "English"
	if m.sess.Language == tutor.Punjabi {
		langLabel = "ਪੰਜਾਬੀ"
	}
	header := layout.RenderHeader(m.sess.Grade, langLabel, m.width)

	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Ask"},
		{Key: "Ctrl+G", Description: "Class"},
		{Key: "Ctrl+T", Description: "Language"},
		{Key: "Ctrl+L", Description: "Clear"},
	}
	if m.sess.HasPending() && m.sess.Phase() == session.IdlePending {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+D", Description: "Diagram"})
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	footer := layout.RenderFooter(hints, m.width)

	content := m.renderConversation()
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m Model) renderConversation() string {
	var b strings.Builder

	turns := m.sess.Turns()

	// While revealing, the newest assistant turn is rendered from the
	// reveal state instead of the session log.
	limit := len(turns)
	if m.revealing != nil && limit > 0 {
		limit--
	}

	for _, t := range turns[:limit] {
		b.WriteString(renderTurn(t))
		b.WriteString("\n")
	}

	if m.revealing != nil {
		b.WriteString(renderRevealing(m.revealing))
		b.WriteString("\n")
	}

	if m.busy() {
		frame := spinnerFrames[m.spinnerPos%len(spinnerFrames)]
		b.WriteString(theme.Hint.Render(frame + " Thinking..."))
		b.WriteString("\n")
	}

	if m.errNotice != "" {
		b.WriteString(theme.ErrorNotice.Render("  " + m.errNotice))
		b.WriteString("\n")
	}

	body := clipToHeight(b.String(), m.contentHeight()-3)

	inputBox := theme.Card.Width(m.width - 4).Render(m.input.View())

	return body + "\n" + inputBox
}

func renderTurn(t session.Turn) string {
	switch {
	case t.Role == session.RoleUser:
		return theme.UserTurn.Render("  You: ") + theme.Body.Render(t.Text)

	case t.Kind == session.KindStructured:
		var b strings.Builder
		b.WriteString(theme.SectionLabel.Render("  Professor Proton:"))
		for _, s := range t.Sections {
			b.WriteString("\n")
			b.WriteString(renderSection(s.Label, s.Text))
		}
		return b.String()

	case t.Kind == session.KindImage:
		return theme.SectionLabel.Render("  📷 ") + theme.Body.Render(t.Text+": "+t.ImagePath)

	case t.Kind == session.KindImageList:
		var b strings.Builder
		b.WriteString(theme.SectionLabel.Render("  📷 " + t.Text + ":"))
		for _, u := range t.URLs {
			b.WriteString("\n    " + theme.Hint.Render(u))
		}
		return b.String()

	default:
		style := theme.AssistantTurn
		if strings.HasPrefix(t.Text, "✅") {
			style = theme.SuccessTurn
		}
		return theme.SectionLabel.Render("  Professor Proton: ") + style.Render(t.Text)
	}
}

func renderRevealing(a *activeReveal) string {
	var b strings.Builder
	b.WriteString(theme.SectionLabel.Render("  Professor Proton:"))

	for _, s := range a.finished {
		b.WriteString("\n")
		b.WriteString(renderSection(s.Label, s.Text))
	}

	if a.partial != "" {
		b.WriteString("\n")
		b.WriteString(renderSection(a.sections[a.idx].Label, a.partial))
	}

	return b.String()
}

func renderSection(label, text string) string {
	if label == "" {
		return "    " + theme.AssistantTurn.Render(text)
	}
	return "    " + theme.SectionLabel.Render(label+": ") + theme.AssistantTurn.Render(text)
}

func (m Model) contentHeight() int {
	h := m.height - 8 // header, footer, input box
	if h < 0 {
		return 0
	}
	return h
}

// clipToHeight keeps the newest lines when the conversation outgrows the
// viewport.
func clipToHeight(s string, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= maxLines {
		return s
	}
	return strings.Join(lines[len(lines)-maxLines:], "\n")
}
