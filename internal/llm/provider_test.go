package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_ServesResponsesFIFO(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`"first"`)},
		MockResponse{Content: json.RawMessage(`"second"`)},
	)

	for _, want := range []string{"first", "second"} {
		resp, err := mock.Generate(t.Context(), Request{
			Messages: []Message{{Role: RoleUser, Content: "q"}},
		})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if resp.Text() != want {
			t.Errorf("expected %q, got %q", want, resp.Text())
		}
	}

	if mock.CallCount() != 2 {
		t.Errorf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestMockProvider_EnforcesRequestSchema(t *testing.T) {
	schema := &Schema{
		Name: "mock-answer",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"definition": map[string]any{"type": "string"},
			},
			"required": []any{"definition"},
		},
	}

	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"definition":"a shadow"}`)},
		MockResponse{Content: json.RawMessage(`{"definition":42}`)},
	)

	resp, err := mock.Generate(t.Context(), Request{Schema: schema})
	if err != nil {
		t.Fatalf("conforming canned content should pass: %v", err)
	}
	if string(resp.Content) != `{"definition":"a shadow"}` {
		t.Errorf("unexpected content %s", resp.Content)
	}

	_, err = mock.Generate(t.Context(), Request{Schema: schema})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("non-conforming canned content should fail like real output, got %v", err)
	}
}

func TestMockText_EncodesLikeAdapters(t *testing.T) {
	mock := NewMockProvider(MockText("Friction opposes motion."))

	resp, err := mock.Generate(t.Context(), Request{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.Text() != "Friction opposes motion." {
		t.Errorf("round-trip text = %q", resp.Text())
	}
	if string(resp.Content) != `"Friction opposes motion."` {
		t.Errorf("content should be a JSON string, got %s", resp.Content)
	}
}

func TestMockProvider_EmptyQueueFails(t *testing.T) {
	mock := NewMockProvider()

	_, err := mock.Generate(t.Context(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestResponse_TextUnwrapsJSONString(t *testing.T) {
	r := &Response{Content: json.RawMessage(`"hello world"`)}
	if r.Text() != "hello world" {
		t.Errorf("expected unquoted text, got %q", r.Text())
	}

	obj := &Response{Content: json.RawMessage(`{"definition":"x"}`)}
	if obj.Text() != `{"definition":"x"}` {
		t.Errorf("structured content should pass through, got %q", obj.Text())
	}
}

func TestValidateResponse_AcceptsConforming(t *testing.T) {
	schema := &Schema{
		Name: "test-answer",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"definition": map[string]any{"type": "string"},
			},
			"required": []any{"definition"},
		},
	}

	if err := validateResponse(schema, json.RawMessage(`{"definition":"a shadow"}`)); err != nil {
		t.Errorf("expected valid response to pass, got %v", err)
	}
}

func TestValidateResponse_RejectsMalformed(t *testing.T) {
	schema := &Schema{
		Name: "test-answer-strict",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"definition": map[string]any{"type": "string"},
			},
			"required": []any{"definition"},
		},
	}

	cases := []json.RawMessage{
		json.RawMessage(`not json at all`),
		json.RawMessage(`{"wrong_key": 1}`),
		json.RawMessage(`{"definition": 42}`),
	}

	for _, raw := range cases {
		err := validateResponse(schema, raw)
		var invalid *ErrInvalidResponse
		if !errors.As(err, &invalid) {
			t.Errorf("content %s: expected ErrInvalidResponse, got %v", raw, err)
		}
	}
}

func TestConfig_ValidateRequiresKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "groq"
	if err := cfg.Validate(); err == nil {
		t.Error("expected missing groq key to be fatal")
	}

	cfg.Groq.APIKey = "gsk_test"
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("mock provider should need no key, got %v", err)
	}

	cfg.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Error("expected unknown provider to fail validation")
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("llama3", openaiModels); got != "llama-3.1-8b-instant" {
		t.Errorf("friendly name not resolved: %q", got)
	}
	if got := resolveModel("custom-model-id", openaiModels); got != "custom-model-id" {
		t.Errorf("unknown name should pass through: %q", got)
	}
}
