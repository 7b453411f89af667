// Package llm abstracts the hosted text-generation collaborators that power
// Professor Proton's answers. A Provider takes a composed request and returns
// either raw text or JSON validated against a schema.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the contract every hosted model backend implements.
type Provider interface {
	// Generate performs a single completion call. When the request carries
	// a Schema, the returned Content is JSON validated against it; a
	// malformed response is an error, never a partial result.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request is a composed completion request.
type Request struct {
	// System sets the tutor's role and constraints.
	System string

	// Messages is the conversation sent to the model. Proton sends a
	// single user message per question.
	Messages []Message

	// Schema, when set, requests structured JSON output conforming to it.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Message is one turn sent to the model.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema describes the JSON structure required from the model.
type Schema struct {
	// Name identifies the schema to providers that need one
	// (kebab-case, e.g. "science-answer").
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is raw text (as a JSON string) or, when a Schema was
	// requested, the validated JSON object.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text returns the response content as plain text. Structured responses are
// returned verbatim; raw-text responses have their JSON string quoting
// stripped.
func (r *Response) Text() string {
	var s string
	if err := json.Unmarshal(r.Content, &s); err == nil {
		return s
	}
	return string(r.Content)
}
