// Package tutor implements Professor Proton's answer pipeline: prompt
// composition, the structured answer format, and the resolver variants
// (hosted model vs built-in syllabus table).
package tutor

import (
	"fmt"
	"strings"
)

// Language selects the answer language.
type Language string

const (
	English Language = "english"
	Punjabi Language = "punjabi"
)

// ParseLanguage maps user input to a Language.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(s) {
	case "english", "en":
		return English, nil
	case "punjabi", "pa":
		return Punjabi, nil
	}
	return "", fmt.Errorf("unknown language %q (want english or punjabi)", s)
}

// Mode selects the answer format.
type Mode string

const (
	// ModeFreeText asks for a plain prose explanation.
	ModeFreeText Mode = "free-text"

	// ModeStructured asks for the fixed definition/points/formula/example
	// JSON format.
	ModeStructured Mode = "structured"
)

// FormulaNone is the sentinel the model uses when a topic has no formula.
const FormulaNone = "None"

// StructuredAnswer is an answer decomposed into fixed named fields.
type StructuredAnswer struct {
	Definition       string   `json:"definition"`
	Points           []string `json:"points"`
	Formula          string   `json:"formula"`
	Example          string   `json:"example"`
	ImageDescription string   `json:"image_description,omitempty"`
}

// HasFormula reports whether the formula field carries a real formula
// rather than the absence sentinel.
func (a *StructuredAnswer) HasFormula() bool {
	return a.Formula != "" && !strings.EqualFold(a.Formula, FormulaNone)
}

// Section is one independently revealed display container.
type Section struct {
	Label string
	Text  string
}

// Sections flattens the answer into display order: definition, points,
// formula (only when present), example. This order is fixed.
func (a *StructuredAnswer) Sections() []Section {
	sections := []Section{
		{Label: "Definition", Text: a.Definition},
	}

	if len(a.Points) > 0 {
		var b strings.Builder
		for i, p := range a.Points {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString("• ")
			b.WriteString(p)
		}
		sections = append(sections, Section{Label: "Key Points", Text: b.String()})
	}

	if a.HasFormula() {
		sections = append(sections, Section{Label: "Formula", Text: a.Formula})
	}

	sections = append(sections, Section{Label: "Example", Text: a.Example})
	return sections
}

// Answer is a resolved response to one question.
type Answer struct {
	// Text is the prose answer, or the refusal message when NotFound.
	Text string

	// Structured is set when the answer was requested in structured mode.
	Structured *StructuredAnswer

	// ImagePrompt, when non-empty, describes a diagram for the follow-up
	// action.
	ImagePrompt string

	// NotFound marks the static resolver's "not in syllabus" outcome.
	// It is a defined result, not an error.
	NotFound bool

	// Resolver names the variant that produced this answer.
	Resolver string
}

// ResolutionError is a failed resolution: transport failure, provider
// error, or malformed structured output. It is non-fatal to the
// conversation; the caller renders an apology turn.
type ResolutionError struct {
	Reason string
	Err    error
}

func (e *ResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("resolution failed (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("resolution failed (%s)", e.Reason)
}

func (e *ResolutionError) Unwrap() error { return e.Err }
