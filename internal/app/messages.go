package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/harjot/proton/internal/diagram"
	"github.com/harjot/proton/internal/tutor"
)

// answerMsg is sent when the resolver returns.
type answerMsg struct {
	Answer *tutor.Answer
	Err    error
}

// diagramMsg is sent when the diagram provider returns. Path is the saved
// image file for synthesized images.
type diagramMsg struct {
	URLs []string
	Path string
	Err  error
}

// revealTickMsg advances the typewriter reveal.
type revealTickMsg time.Time

// spinnerTickMsg animates the thinking indicator.
type spinnerTickMsg time.Time

const (
	revealInterval  = 35 * time.Millisecond
	spinnerInterval = 120 * time.Millisecond
)

func resolveCmd(resolver tutor.Resolver, question string) tea.Cmd {
	return func() tea.Msg {
		ans, err := resolver.Resolve(context.Background(), question)
		return answerMsg{Answer: ans, Err: err}
	}
}

func fetchDiagramCmd(provider diagram.Provider, description string) tea.Cmd {
	return func() tea.Msg {
		result, err := provider.Fetch(context.Background(), description)
		if err != nil {
			return diagramMsg{Err: err}
		}

		if len(result.URLs) > 0 {
			return diagramMsg{URLs: result.URLs}
		}

		path, err := saveImage(result.Image)
		if err != nil {
			return diagramMsg{Err: err}
		}
		return diagramMsg{Path: path}
	}
}

// saveImage writes fetched image bytes to a temp file the user can open.
func saveImage(img *diagram.Image) (string, error) {
	ext := ".png"
	if img.MIME == "image/jpeg" {
		ext = ".jpg"
	}

	f, err := os.CreateTemp("", "proton-diagram-*"+ext)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(img.Data); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}
	return f.Name(), nil
}

func revealTick() tea.Cmd {
	return tea.Tick(revealInterval, func(t time.Time) tea.Msg {
		return revealTickMsg(t)
	})
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
