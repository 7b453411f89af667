package syllabus

// Record is one entry of the built-in offline answer table.
// A record belongs to exactly one grade and matches a question when any of
// its keywords appears in the question (case-insensitive substring).
type Record struct {
	// Grade is the school class this topic belongs to (6-10).
	Grade int

	// Keywords trigger this record. Matched as lowercase substrings.
	Keywords []string

	// Topic is a short display name for the record.
	Topic string

	// AnswerEnglish is the canned explanation in English.
	AnswerEnglish string

	// AnswerPunjabi is the canned explanation in Punjabi (Gurmukhi script).
	AnswerPunjabi string

	// ImagePrompt, when non-empty, describes a diagram that illustrates
	// the topic. It becomes the pending follow-up action for the answer.
	ImagePrompt string
}

// MinGrade and MaxGrade bound the supported syllabus levels.
const (
	MinGrade = 6
	MaxGrade = 10
)

// ValidGrade reports whether g is a supported class level.
func ValidGrade(g int) bool {
	return g >= MinGrade && g <= MaxGrade
}
