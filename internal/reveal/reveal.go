// Package reveal implements the word-by-word typewriter effect used when
// displaying answers. The effect is purely cosmetic: the final emission is
// always the full text, whitespace-normalized.
package reveal

import "strings"

// Marker is appended to every non-final step to indicate typing in progress.
const Marker = "▌"

// Reveal produces progressively longer prefixes of a text, one word at a
// time. It is finite and cannot be restarted.
type Reveal struct {
	tokens []string
	pos    int
	acc    strings.Builder
}

// New creates a Reveal over text, split on whitespace.
func New(text string) *Reveal {
	return &Reveal{tokens: strings.Fields(text)}
}

// Next returns the next prefix and whether this is the final step.
// The final step omits the in-progress marker. Calling Next after the final
// step keeps returning the full text with done=true.
func (r *Reveal) Next() (string, bool) {
	if r.pos >= len(r.tokens) {
		return strings.TrimRight(r.acc.String(), " "), true
	}

	r.acc.WriteString(r.tokens[r.pos])
	r.acc.WriteString(" ")
	r.pos++

	if r.pos == len(r.tokens) {
		return strings.TrimRight(r.acc.String(), " "), true
	}
	return r.acc.String() + Marker, false
}

// Steps returns the total number of emissions this reveal will produce.
func (r *Reveal) Steps() int {
	return len(r.tokens)
}

// Done reports whether the reveal has been exhausted.
func (r *Reveal) Done() bool {
	return r.pos >= len(r.tokens)
}
