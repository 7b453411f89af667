package syllabus

import (
	"fmt"
	"testing"
)

func TestMatch_KeywordUnderOwnGrade(t *testing.T) {
	table := Default()

	for _, rec := range table.Records() {
		for _, kw := range rec.Keywords {
			question := fmt.Sprintf("Can you explain %s please?", kw)

			got, ok := table.Match(question, rec.Grade)
			if !ok {
				t.Errorf("grade %d keyword %q: expected a match", rec.Grade, kw)
				continue
			}
			if got.Grade != rec.Grade {
				t.Errorf("grade %d keyword %q: matched record for grade %d", rec.Grade, kw, got.Grade)
			}
		}
	}
}

func TestMatch_WrongGradeMisses(t *testing.T) {
	table := Default()

	// "friction" is registered only under class 8.
	for g := MinGrade; g <= MaxGrade; g++ {
		_, ok := table.Match("why does friction slow things down", g)
		if g == 8 && !ok {
			t.Errorf("grade 8: expected friction to match")
		}
		if g != 8 && ok {
			t.Errorf("grade %d: friction should not match", g)
		}
	}
}

func TestMatch_CaseInsensitive(t *testing.T) {
	table := Default()

	rec, ok := table.Match("What Is A SHADOW and why is it dark?", 6)
	if !ok {
		t.Fatal("expected a match for SHADOW under grade 6")
	}
	if rec.Topic != "Shadows" {
		t.Errorf("expected Shadows record, got %q", rec.Topic)
	}
}

func TestMatch_FirstMatchWins(t *testing.T) {
	table := NewTable([]Record{
		{Grade: 6, Keywords: []string{"light"}, Topic: "first"},
		{Grade: 6, Keywords: []string{"light"}, Topic: "second"},
	})

	rec, ok := table.Match("tell me about light", 6)
	if !ok {
		t.Fatal("expected a match")
	}
	if rec.Topic != "first" {
		t.Errorf("expected insertion-order tie-break, got %q", rec.Topic)
	}
}

func TestMatch_NotFound(t *testing.T) {
	table := Default()

	if _, ok := table.Match("how do I cook rice", 7); ok {
		t.Error("expected no match for an off-syllabus question")
	}
}

func TestSeed_AllRecordsComplete(t *testing.T) {
	for i, rec := range Default().Records() {
		if !ValidGrade(rec.Grade) {
			t.Errorf("record %d: invalid grade %d", i, rec.Grade)
		}
		if len(rec.Keywords) == 0 {
			t.Errorf("record %d (%s): no keywords", i, rec.Topic)
		}
		if rec.AnswerEnglish == "" {
			t.Errorf("record %d (%s): missing English answer", i, rec.Topic)
		}
		if rec.AnswerPunjabi == "" {
			t.Errorf("record %d (%s): missing Punjabi answer", i, rec.Topic)
		}
	}
}

func TestForGrade_CoversAllGrades(t *testing.T) {
	table := Default()
	for g := MinGrade; g <= MaxGrade; g++ {
		if len(table.ForGrade(g)) == 0 {
			t.Errorf("grade %d has no seed records", g)
		}
	}
}
