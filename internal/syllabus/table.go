package syllabus

import "strings"

// Table holds an ordered list of records. Lookup is a linear scan in
// insertion order; the first matching record wins.
type Table struct {
	records []Record
}

// NewTable builds a table from the given records.
func NewTable(records []Record) *Table {
	return &Table{records: records}
}

// Default returns a table seeded with the built-in NCERT topics.
func Default() *Table {
	return NewTable(seedRecords)
}

// Records returns the underlying record list in insertion order.
func (t *Table) Records() []Record {
	return t.records
}

// ForGrade returns the records registered under grade g, in order.
func (t *Table) ForGrade(g int) []Record {
	var out []Record
	for _, r := range t.records {
		if r.Grade == g {
			out = append(out, r)
		}
	}
	return out
}

// Match finds the first record whose grade equals g and whose keywords
// contain a case-insensitive substring of question. Returns false when no
// record matches.
func (t *Table) Match(question string, g int) (*Record, bool) {
	q := strings.ToLower(question)
	for i := range t.records {
		r := &t.records[i]
		if r.Grade != g {
			continue
		}
		for _, kw := range r.Keywords {
			if strings.Contains(q, strings.ToLower(kw)) {
				return r, true
			}
		}
	}
	return nil, false
}
