package reveal

import (
	"strings"
	"testing"
)

func TestReveal_FinalStateMatchesInput(t *testing.T) {
	inputs := []string{
		"A shadow is a dark patch",
		"one",
		"  leading and   trailing   spaces  ",
		"ਪਰਛਾਵਾਂ ਇੱਕ ਹਨੇਰਾ ਖੇਤਰ ਹੈ",
	}

	for _, input := range inputs {
		r := New(input)

		var last string
		for {
			prefix, done := r.Next()
			last = prefix
			if done {
				break
			}
		}

		want := strings.Join(strings.Fields(input), " ")
		if last != want {
			t.Errorf("input %q: final state %q, want %q", input, last, want)
		}
	}
}

func TestReveal_IntermediateStepsCarryMarker(t *testing.T) {
	r := New("light travels in straight lines")

	steps := 0
	for {
		prefix, done := r.Next()
		steps++
		if done {
			if strings.Contains(prefix, Marker) {
				t.Errorf("final step should not carry marker: %q", prefix)
			}
			break
		}
		if !strings.HasSuffix(prefix, Marker) {
			t.Errorf("step %d missing marker: %q", steps, prefix)
		}
	}

	if steps != 5 {
		t.Errorf("expected 5 steps, got %d", steps)
	}
}

func TestReveal_StepsCount(t *testing.T) {
	if got := New("a b c").Steps(); got != 3 {
		t.Errorf("expected 3 steps, got %d", got)
	}
	if got := New("").Steps(); got != 0 {
		t.Errorf("expected 0 steps for empty text, got %d", got)
	}
}

func TestReveal_EmptyTextIsImmediatelyDone(t *testing.T) {
	r := New("")
	prefix, done := r.Next()
	if !done {
		t.Error("empty reveal should be done on first call")
	}
	if prefix != "" {
		t.Errorf("expected empty prefix, got %q", prefix)
	}
}

func TestReveal_ExhaustedStaysDone(t *testing.T) {
	r := New("hello world")
	for !r.Done() {
		r.Next()
	}

	prefix, done := r.Next()
	if !done || prefix != "hello world" {
		t.Errorf("exhausted reveal returned (%q, %v)", prefix, done)
	}
}

func TestReveal_EachStepAddsOneToken(t *testing.T) {
	r := New("w1 w2 w3 w4")

	prev := 0
	for {
		prefix, done := r.Next()
		words := len(strings.Fields(strings.TrimSuffix(prefix, Marker)))
		if words != prev+1 {
			t.Errorf("expected %d words, got %d in %q", prev+1, words, prefix)
		}
		prev = words
		if done {
			break
		}
	}
}
