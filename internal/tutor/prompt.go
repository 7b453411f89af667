package tutor

import (
	"fmt"
	"strings"

	"github.com/harjot/proton/internal/llm"
)

const systemPrompt = `You are Professor Proton, a strict but kind science teacher following the NCERT syllabus for Indian schools.`

// BuildPrompt composes the completion request for one question. It is a
// pure function: no side effects, no retries.
func BuildPrompt(question string, grade int, lang Language, mode Mode) llm.Request {
	var b strings.Builder

	fmt.Fprintf(&b, "A Class %d student asks: %q\n\n", grade, question)

	b.WriteString("Rules:\n")
	fmt.Fprintf(&b, "1. First decide whether the topic belongs to the Class %d NCERT science syllabus.\n", grade)
	b.WriteString("2. If it does not, refuse politely and suggest the student ask their class teacher which class covers it.\n")

	switch lang {
	case Punjabi:
		b.WriteString("3. If it does, explain simply in Punjabi using Gurmukhi script. ")
		b.WriteString("Keep technical terms transliterated rather than translated.\n")
	default:
		b.WriteString("3. If it does, explain simply in English, at a level the student can follow.\n")
	}

	if mode == ModeStructured {
		b.WriteString("4. Respond with JSON only, matching the required fields. ")
		b.WriteString(`Use the string "None" for the formula field when the topic has no formula. `)
		b.WriteString("Include an image_description only when a diagram would genuinely help.\n")
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		MaxTokens: 1024,
	}

	if mode == ModeStructured {
		req.Schema = AnswerSchema
	}

	return req
}
