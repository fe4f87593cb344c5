// Package testsupport centralises fixture loading so contract tests across
// packages stay concise.
package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	internalParser "github.com/goliatone/go-quizgen/internal/dataset/parser"
	"github.com/goliatone/go-quizgen/pkg/dataset"
	"github.com/goliatone/go-quizgen/pkg/quiz"
)

// LoadDocument reads a fixture and builds a dataset.Document using a file
// source, failing the test on error.
func LoadDocument(t *testing.T, path string) dataset.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T,
// allowing callers to wire fixtures in setup functions.
func LoadDocumentFromPath(path string) (dataset.Document, error) {
	if path == "" {
		return dataset.Document{}, errors.New("testsupport: document path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return dataset.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := dataset.NewDocument(dataset.SourceFromFile(path), data)
	if err != nil {
		return dataset.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// LoadQuiz parses a fixture document into a quiz model, failing the test on
// error.
func LoadQuiz(t *testing.T, path string) quiz.Quiz {
	t.Helper()

	doc := LoadDocument(t, path)
	q, err := internalParser.New(dataset.NewParserOptions()).Parse(context.Background(), doc)
	if err != nil {
		t.Fatalf("parse quiz: %v", err)
	}
	return q
}

// SampleQuiz returns a small fixed quiz used across renderer and publisher
// tests: two categorised questions (one with placeholder slots) plus a
// sparse answer key.
func SampleQuiz() quiz.Quiz {
	return quiz.Quiz{
		Spec: quiz.FormSpec{
			Title:                "Sample Exam",
			Description:          "Two questions, answer both.",
			ConfirmationMessage:  "Thanks for taking the quiz.",
			ShowRespondAgainLink: true,
		},
		Questions: []quiz.QuestionRecord{
			{
				Title:      "Which planet is closest to the sun?",
				OptionA:    "Mercury",
				OptionB:    "Venus",
				OptionC:    "Earth",
				OptionD:    "Mars",
				Category:   "Other",
				Difficulty: "Easy",
			},
			{
				Title:      "Water boils at 100°C at sea level.",
				OptionA:    "True",
				OptionB:    "False",
				OptionC:    quiz.OptionPlaceholder,
				OptionD:    quiz.OptionPlaceholder,
				Difficulty: "Easy",
			},
		},
		Key: quiz.AnswerKey{1: "A", 2: "A"},
	}
}
