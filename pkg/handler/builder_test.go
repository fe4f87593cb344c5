package handler_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-quizgen/pkg/handler"
	"github.com/goliatone/go-quizgen/pkg/quiz"
	"github.com/goliatone/go-quizgen/pkg/testsupport"
)

func TestBuildEmbedsAnswerKey(t *testing.T) {
	builder, err := handler.New()
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}

	text, err := builder.Build(testsupport.SampleQuiz())
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	for _, want := range []string{
		`function onFormSubmit(e)`,
		`"Sample Exam"`,
		`1: "A"`,
		`2: "A"`,
		`var total = 2;`,
		`Math.round(100 * matches / total)`,
		`appendRow([new Date(), score, matches, total])`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("handler text missing %q:\n%s", want, text)
		}
	}
}

func TestBuildSparseKeyOrdering(t *testing.T) {
	builder, err := handler.New()
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}

	q := quiz.Quiz{
		Spec: quiz.FormSpec{Title: "Exam"},
		Questions: []quiz.QuestionRecord{
			{Title: "Q1", OptionA: "a", OptionB: "b"},
			{Title: "Q2", OptionA: "a", OptionB: "b"},
			{Title: "Q3", OptionA: "a", OptionB: "b"},
			{Title: "Q4", OptionA: "a", OptionB: "b"},
		},
		Key: quiz.AnswerKey{4: "D", 1: "A", 2: "B"},
	}

	text, err := builder.Build(q)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	first := strings.Index(text, `1: "A"`)
	second := strings.Index(text, `2: "B"`)
	fourth := strings.Index(text, `4: "D"`)
	if first < 0 || second < 0 || fourth < 0 {
		t.Fatalf("key entries missing from handler text:\n%s", text)
	}
	if !(first < second && second < fourth) {
		t.Fatalf("key entries out of order: %d, %d, %d", first, second, fourth)
	}
	if strings.Contains(text, `3:`) {
		t.Fatalf("unkeyed position leaked into handler text:\n%s", text)
	}
}

func TestBuildEmptyKey(t *testing.T) {
	builder, err := handler.New()
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}

	q := quiz.Quiz{Spec: quiz.FormSpec{Title: "Exam"}}
	text, err := builder.Build(q)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if !strings.Contains(text, "var answerKey = {};") {
		t.Fatalf("empty key not rendered as empty object:\n%s", text)
	}
	if !strings.Contains(text, "var total = 0;") {
		t.Fatalf("zero total not rendered:\n%s", text)
	}
}

func TestBuildDeterministic(t *testing.T) {
	builder, err := handler.New()
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}

	q := testsupport.SampleQuiz()
	first, err := builder.Build(q)
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	second, err := builder.Build(q)
	if err != nil {
		t.Fatalf("second build: %v", err)
	}
	if first != second {
		t.Fatal("handler text differs between identical builds")
	}
}
