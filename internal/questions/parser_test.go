package questions

import (
	"reflect"
	"testing"
)

func TestParseQuestionsNumberedList(t *testing.T) {
	input := "1. What is your greatest strength?\n2. Tell me about a time you failed\n- Random fragment"

	got := ParseQuestions(input)

	want := []string{
		"What is your greatest strength?",
		"Tell me about a time you failed?",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseQuestionsSkipsHeaderLines(t *testing.T) {
	input := "Category: Technical\nSection 1\nNote: these are generated\n1. How do you keep your skills current?"

	got := ParseQuestions(input)

	if len(got) != 1 {
		t.Fatalf("expected 1 question, got %d: %v", len(got), got)
	}
	if got[0] != "How do you keep your skills current?" {
		t.Fatalf("unexpected question: %q", got[0])
	}
}

func TestParseQuestionsStripsMarkers(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"paren number", "3) Describe your ideal work environment", "Describe your ideal work environment?"},
		{"dash number", "4- Explain a recent technical decision you made", "Explain a recent technical decision you made?"},
		{"star bullet", "* Why did you choose this career path?", "Why did you choose this career path?"},
		{"letter marker", "a. When have you led a team through change?", "When have you led a team through change?"},
		{"q label", "Q: Can you walk me through your resume", "Can you walk me through your resume?"},
	}

	for _, tc := range cases {
		got := ParseQuestions(tc.input)
		if len(got) != 1 || got[0] != tc.want {
			t.Fatalf("%s: expected [%q], got %v", tc.name, tc.want, got)
		}
	}
}

func TestParseQuestionsDeduplicates(t *testing.T) {
	input := "1. What motivates you in your work?\n2. What motivates you in your work?\n3. How do you handle conflict with coworkers?"

	got := ParseQuestions(input)

	if len(got) != 2 {
		t.Fatalf("expected 2 unique questions, got %d: %v", len(got), got)
	}
	if got[0] != "What motivates you in your work?" {
		t.Fatalf("expected first-seen order preserved, got %v", got)
	}
}

func TestParseQuestionsKeepsDeclarativePunctuation(t *testing.T) {
	input := "1. Walk me through your typical debugging process."

	got := ParseQuestions(input)

	if len(got) != 1 || got[0] != "Walk me through your typical debugging process." {
		t.Fatalf("expected trailing period kept, got %v", got)
	}
}

func TestParseQuestionsDropsShortFragments(t *testing.T) {
	input := "1. Too short\n2. Also tiny"

	if got := ParseQuestions(input); len(got) != 0 {
		t.Fatalf("expected no questions, got %v", got)
	}
}
