package tutor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harjot/proton/internal/llm"
	"github.com/harjot/proton/internal/syllabus"
)

// Resolver turns a question into an Answer. Variants are selected at
// session construction, never by branching inside the controller.
type Resolver interface {
	Resolve(ctx context.Context, question string) (*Answer, error)

	// Name identifies the variant ("hosted" or "static").
	Name() string
}

// HostedResolver delegates to a hosted text-generation provider.
// It performs exactly one call per question; failures are surfaced as
// *ResolutionError and the conversation continues.
type HostedResolver struct {
	provider llm.Provider
	grade    int
	lang     Language
	mode     Mode
}

// NewHostedResolver creates a resolver backed by a model provider.
func NewHostedResolver(provider llm.Provider, grade int, lang Language, mode Mode) (*HostedResolver, error) {
	if !syllabus.ValidGrade(grade) {
		return nil, fmt.Errorf("grade %d out of range (%d-%d)", grade, syllabus.MinGrade, syllabus.MaxGrade)
	}
	return &HostedResolver{provider: provider, grade: grade, lang: lang, mode: mode}, nil
}

func (r *HostedResolver) Name() string { return "hosted" }

func (r *HostedResolver) Resolve(ctx context.Context, question string) (*Answer, error) {
	ctx = llm.WithPurpose(ctx, "answer")

	req := BuildPrompt(question, r.grade, r.lang, r.mode)

	resp, err := r.provider.Generate(ctx, req)
	if err != nil {
		return nil, &ResolutionError{Reason: "provider call failed", Err: err}
	}

	if r.mode != ModeStructured {
		return &Answer{Text: resp.Text(), Resolver: r.Name()}, nil
	}

	// Schema validation already ran in the provider; a decode failure here
	// is still treated as a resolution failure, never a partial result.
	var structured StructuredAnswer
	if err := json.Unmarshal(resp.Content, &structured); err != nil {
		return nil, &ResolutionError{Reason: "malformed structured answer", Err: err}
	}

	return &Answer{
		Structured:  &structured,
		ImagePrompt: structured.ImageDescription,
		Resolver:    r.Name(),
	}, nil
}

// StaticResolver answers from the built-in syllabus table. Deterministic,
// no side effects; the only non-success outcome is NotFound.
type StaticResolver struct {
	table *syllabus.Table
	grade int
	lang  Language
}

// NewStaticResolver creates a resolver over the given table.
func NewStaticResolver(table *syllabus.Table, grade int, lang Language) (*StaticResolver, error) {
	if !syllabus.ValidGrade(grade) {
		return nil, fmt.Errorf("grade %d out of range (%d-%d)", grade, syllabus.MinGrade, syllabus.MaxGrade)
	}
	return &StaticResolver{table: table, grade: grade, lang: lang}, nil
}

func (r *StaticResolver) Name() string { return "static" }

func (r *StaticResolver) Resolve(_ context.Context, question string) (*Answer, error) {
	rec, ok := r.table.Match(question, r.grade)
	if !ok {
		return &Answer{
			Text:     refusalMessage(r.grade, r.lang),
			NotFound: true,
			Resolver: r.Name(),
		}, nil
	}

	text := rec.AnswerEnglish
	if r.lang == Punjabi {
		text = rec.AnswerPunjabi
	}

	return &Answer{
		Text:        "✅ " + text,
		ImagePrompt: rec.ImagePrompt,
		Resolver:    r.Name(),
	}, nil
}

// refusalMessage renders the fixed "not in syllabus" outcome, parameterized
// by grade and language.
func refusalMessage(grade int, lang Language) string {
	if lang == Punjabi {
		return fmt.Sprintf("ਮਾਫ਼ ਕਰਨਾ, ਇਹ ਵਿਸ਼ਾ ਕਲਾਸ %d ਦੇ ਸਿਲੇਬਸ ਵਿੱਚ ਨਹੀਂ ਹੈ। ਕਿਰਪਾ ਕਰਕੇ ਆਪਣੀ ਕਲਾਸ ਦੇ ਵਿਸ਼ਿਆਂ ਬਾਰੇ ਪੁੱਛੋ।", grade)
	}
	return fmt.Sprintf("Sorry, that topic is not in the Class %d syllabus. Please ask about a topic from your class.", grade)
}
