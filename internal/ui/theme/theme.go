package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: blackboard dark with chalk accents
var (
	Primary   = lipgloss.Color("#38BDF8") // Sky Blue
	Secondary = lipgloss.Color("#A78BFA") // Violet
	Accent    = lipgloss.Color("#FBBF24") // Amber
	Success   = lipgloss.Color("#34D399") // Emerald
	Error     = lipgloss.Color("#FB7185") // Rose
	Text      = lipgloss.Color("#F1F5F9") // Chalk White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Chat turns
var (
	UserTurn = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	AssistantTurn = lipgloss.NewStyle().
			Foreground(Text)

	SectionLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// SuccessTurn marks answers served from the offline table.
	SuccessTurn = lipgloss.NewStyle().
			Foreground(Success)

	ErrorNotice = lipgloss.NewStyle().
			Foreground(Error)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)
