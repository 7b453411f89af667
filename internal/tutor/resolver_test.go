package tutor

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/harjot/proton/internal/llm"
	"github.com/harjot/proton/internal/syllabus"
)

func validStructuredJSON() json.RawMessage {
	return json.RawMessage(`{
		"definition": "Ohm's law relates current, voltage and resistance.",
		"points": ["Current is proportional to voltage", "R is constant for a given conductor"],
		"formula": "V = IR",
		"example": "A torch bulb glows brighter with more cells.",
		"image_description": "simple circuit with battery and bulb"
	}`)
}

func TestHostedResolver_FreeText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"Friction opposes motion."`)})
	r, err := NewHostedResolver(mock, 8, English, ModeFreeText)
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}

	ans, err := r.Resolve(t.Context(), "What is friction?")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ans.Text != "Friction opposes motion." {
		t.Errorf("unexpected answer text %q", ans.Text)
	}
	if ans.Structured != nil {
		t.Error("free-text answer should not be structured")
	}
}

func TestHostedResolver_Structured(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validStructuredJSON()})
	r, err := NewHostedResolver(mock, 10, English, ModeStructured)
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}

	ans, err := r.Resolve(t.Context(), "What is Ohm's law?")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ans.Structured == nil {
		t.Fatal("expected structured answer")
	}
	if ans.Structured.Formula != "V = IR" {
		t.Errorf("unexpected formula %q", ans.Structured.Formula)
	}
	if ans.ImagePrompt != "simple circuit with battery and bulb" {
		t.Errorf("image description should become the image prompt, got %q", ans.ImagePrompt)
	}
}

func TestHostedResolver_ProviderFailureIsResolutionError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	r, _ := NewHostedResolver(mock, 6, English, ModeFreeText)

	_, err := r.Resolve(t.Context(), "anything")
	var resErr *ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("expected ResolutionError, got %v", err)
	}
}

func TestHostedResolver_NoRetries(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	r, _ := NewHostedResolver(mock, 6, English, ModeFreeText)

	r.Resolve(t.Context(), "anything")
	if mock.CallCount() != 1 {
		t.Errorf("resolver must not retry, made %d calls", mock.CallCount())
	}
}

func TestHostedResolver_RejectsInvalidGrade(t *testing.T) {
	mock := llm.NewMockProvider()
	if _, err := NewHostedResolver(mock, 5, English, ModeFreeText); err == nil {
		t.Error("expected grade 5 to be rejected")
	}
	if _, err := NewHostedResolver(mock, 11, English, ModeFreeText); err == nil {
		t.Error("expected grade 11 to be rejected")
	}
}

func TestStaticResolver_ShadowEndToEnd(t *testing.T) {
	r, err := NewStaticResolver(syllabus.Default(), 6, English)
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}

	ans, err := r.Resolve(t.Context(), "What is a shadow and why is it dark?")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ans.NotFound {
		t.Fatal("expected the grade-6 shadow record to match")
	}
	if !strings.HasPrefix(ans.Text, "✅ ") {
		t.Errorf("expected success marker prefix, got %q", ans.Text)
	}
	if !strings.Contains(ans.Text, "opaque object") {
		t.Errorf("expected the fixed shadow explanation, got %q", ans.Text)
	}
}

func TestStaticResolver_NotFoundRendersRefusal(t *testing.T) {
	r, _ := NewStaticResolver(syllabus.Default(), 7, English)

	ans, err := r.Resolve(t.Context(), "What is a shadow and why is it dark?")
	if err != nil {
		t.Fatalf("NotFound must not be an error: %v", err)
	}
	if !ans.NotFound {
		t.Fatal("shadow is not in the class 7 seed; expected NotFound")
	}
	if !strings.Contains(ans.Text, "Class 7") {
		t.Errorf("refusal should name the grade, got %q", ans.Text)
	}
}

func TestStaticResolver_PunjabiAnswerAndRefusal(t *testing.T) {
	r, _ := NewStaticResolver(syllabus.Default(), 6, Punjabi)

	ans, err := r.Resolve(t.Context(), "shadow")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !strings.Contains(ans.Text, "ਪਰਛਾਵਾਂ") {
		t.Errorf("expected Gurmukhi answer, got %q", ans.Text)
	}

	miss, _ := r.Resolve(t.Context(), "quantum chromodynamics")
	if !miss.NotFound || !strings.Contains(miss.Text, "6") {
		t.Errorf("expected Punjabi refusal naming grade 6, got %q", miss.Text)
	}
}

func TestStructuredAnswer_SectionOrder(t *testing.T) {
	a := &StructuredAnswer{
		Definition: "def",
		Points:     []string{"p1", "p2"},
		Formula:    "V = IR",
		Example:    "ex",
	}

	labels := []string{}
	for _, s := range a.Sections() {
		labels = append(labels, s.Label)
	}
	want := []string{"Definition", "Key Points", "Formula", "Example"}
	if strings.Join(labels, ",") != strings.Join(want, ",") {
		t.Errorf("section order %v, want %v", labels, want)
	}
}

func TestStructuredAnswer_FormulaSentinelOmitted(t *testing.T) {
	for _, sentinel := range []string{"None", "none", "NONE", ""} {
		a := &StructuredAnswer{Definition: "d", Formula: sentinel, Example: "e"}
		for _, s := range a.Sections() {
			if s.Label == "Formula" {
				t.Errorf("formula %q should be omitted from sections", sentinel)
			}
		}
		if a.HasFormula() {
			t.Errorf("HasFormula should be false for %q", sentinel)
		}
	}
}
