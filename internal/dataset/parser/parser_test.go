package parser_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-quizgen/internal/dataset/parser"
	"github.com/goliatone/go-quizgen/pkg/dataset"
	"github.com/goliatone/go-quizgen/pkg/quiz"
)

func mustDocument(t *testing.T, body string) dataset.Document {
	t.Helper()
	doc, err := dataset.NewDocument(dataset.SourceFromFile("fixture.yaml"), []byte(body))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	return doc
}

const sampleDoc = `
form:
  title: "Sample Exam"
  description: "Answer everything."
  confirmationMessage: "Done."
  showRespondAgainLink: true
  collectIdentity: false
  requireAuth: "False"
questions:
  - title: "Pick one"
    optionA: "first"
    optionB: "second"
    optionC: "third"
    optionD: "fourth"
    category: "Other"
    difficulty: "Easy"
    isGroup: false
  - title: "True or false"
    optionA: "True"
    optionB: "False"
    optionC: "nan"
    optionD: "nan"
    isGroup: "False"
answerKey:
  "1": "a"
  "2": "B"
`

func TestParseSampleDocument(t *testing.T) {
	q, err := parser.New(dataset.NewParserOptions()).Parse(context.Background(), mustDocument(t, sampleDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := quiz.Quiz{
		Spec: quiz.FormSpec{
			Title:                "Sample Exam",
			Description:          "Answer everything.",
			ConfirmationMessage:  "Done.",
			ShowRespondAgainLink: true,
		},
		Questions: []quiz.QuestionRecord{
			{
				Title: "Pick one", OptionA: "first", OptionB: "second",
				OptionC: "third", OptionD: "fourth",
				Category: "Other", Difficulty: "Easy",
			},
			{
				Title: "True or false", OptionA: "True", OptionB: "False",
				OptionC: quiz.OptionPlaceholder, OptionD: quiz.OptionPlaceholder,
			},
		},
		Key: quiz.AnswerKey{1: "A", 2: "B"},
	}
	if diff := cmp.Diff(want, q); diff != "" {
		t.Fatalf("parsed quiz mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBooleanTokens(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want bool
	}{
		{name: "native bool", yaml: "true", want: true},
		{name: "quoted identifier", yaml: `"True"`, want: true},
		{name: "quoted false identifier", yaml: `"False"`, want: false},
		{name: "numeric token", yaml: `"1"`, want: true},
		{name: "null", yaml: "null", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body := strings.ReplaceAll(`
form:
  title: "Exam"
questions:
  - title: "Q"
    optionA: "a"
    optionB: "b"
    isGroup: TOKEN
`, "TOKEN", tc.yaml)

			q, err := parser.New(dataset.NewParserOptions()).Parse(context.Background(), mustDocument(t, body))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got := q.Questions[0].IsGroup; got != tc.want {
				t.Fatalf("isGroup = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseRejectsBadBooleanToken(t *testing.T) {
	body := `
form:
  title: "Exam"
questions:
  - title: "Q"
    optionA: "a"
    optionB: "b"
    isGroup: "maybe"
`
	_, err := parser.New(dataset.NewParserOptions()).Parse(context.Background(), mustDocument(t, body))
	if err == nil {
		t.Fatal("expected error for unrecognised boolean token")
	}
	if !strings.Contains(err.Error(), "invalid boolean token") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseAnswerKeyErrors(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr string
	}{
		{
			name:    "non-numeric position",
			key:     "  one: \"A\"\n",
			wantErr: "not a number",
		},
		{
			name:    "invalid letter",
			key:     "  \"1\": \"E\"\n",
			wantErr: "invalid letter",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body := `
form:
  title: "Exam"
questions:
  - title: "Q"
    optionA: "a"
    optionB: "b"
answerKey:
` + tc.key
			_, err := parser.New(dataset.NewParserOptions()).Parse(context.Background(), mustDocument(t, body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %v does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestParseStrictAnswerKeyBounds(t *testing.T) {
	body := `
form:
  title: "Exam"
questions:
  - title: "Q"
    optionA: "a"
    optionB: "b"
answerKey:
  "5": "A"
`

	if _, err := parser.New(dataset.NewParserOptions()).Parse(context.Background(), mustDocument(t, body)); err != nil {
		t.Fatalf("lenient mode must accept out-of-range keys: %v", err)
	}

	strictOpts := dataset.NewParserOptions(dataset.WithStrictAnswerKey())
	if _, err := parser.New(strictOpts).Parse(context.Background(), mustDocument(t, body)); err == nil {
		t.Fatal("strict mode must reject out-of-range keys")
	}
}

func TestParseRejectsEmptyDocument(t *testing.T) {
	_, err := parser.New(dataset.NewParserOptions()).Parse(context.Background(), mustDocument(t, "   \n"))
	if err == nil {
		t.Fatal("expected error for empty document")
	}
}

func TestParseRejectsMissingFormTitle(t *testing.T) {
	body := `
questions:
  - title: "Q"
    optionA: "a"
    optionB: "b"
`
	_, err := parser.New(dataset.NewParserOptions()).Parse(context.Background(), mustDocument(t, body))
	if err == nil {
		t.Fatal("expected error for missing form title")
	}
}

func TestParseRejectsIncompleteQuestion(t *testing.T) {
	body := `
form:
  title: "Exam"
questions:
  - title: "Q"
    optionA: "a"
`
	_, err := parser.New(dataset.NewParserOptions()).Parse(context.Background(), mustDocument(t, body))
	if err == nil {
		t.Fatal("expected error for question missing option B")
	}
	if !strings.Contains(err.Error(), "question 1") {
		t.Fatalf("error %v does not name the offending question", err)
	}
}
