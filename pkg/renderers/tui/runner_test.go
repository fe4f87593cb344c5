package tui_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-quizgen/pkg/quiz"
	"github.com/goliatone/go-quizgen/pkg/renderers/tui"
	"github.com/goliatone/go-quizgen/pkg/testsupport"
)

// scriptedDriver replays a fixed sequence of selections and records every
// prompt it was shown.
type scriptedDriver struct {
	selections []int
	selectErr  error

	prompts  []tui.SelectConfig
	messages []string
}

func (d *scriptedDriver) Select(ctx context.Context, cfg tui.SelectConfig) (int, error) {
	d.prompts = append(d.prompts, cfg)
	if d.selectErr != nil {
		return 0, d.selectErr
	}
	if len(d.selections) == 0 {
		return -1, nil
	}
	next := d.selections[0]
	d.selections = d.selections[1:]
	return next, nil
}

func (d *scriptedDriver) Confirm(ctx context.Context, cfg tui.ConfirmConfig) (bool, error) {
	return cfg.Default, nil
}

func (d *scriptedDriver) Info(ctx context.Context, msg string) error {
	d.messages = append(d.messages, msg)
	return nil
}

func TestRunGradesSession(t *testing.T) {
	driver := &scriptedDriver{selections: []int{0, 1}}
	runner := tui.NewRunner(tui.WithDriver(driver))

	result, err := runner.Run(context.Background(), testsupport.SampleQuiz())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := tui.Result{
		Responses: []string{"A", "B"},
		Correct:   1,
		Total:     2,
		Score:     50,
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}

	if len(driver.messages) != 1 || driver.messages[0] != "Score: 50 (1/2 correct)" {
		t.Fatalf("unexpected summary messages %v", driver.messages)
	}
}

func TestRunPromptsMatchPublishedForm(t *testing.T) {
	driver := &scriptedDriver{selections: []int{0, 0}}
	runner := tui.NewRunner(tui.WithDriver(driver))

	if _, err := runner.Run(context.Background(), testsupport.SampleQuiz()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(driver.prompts) != 2 {
		t.Fatalf("expected 2 prompts, got %d", len(driver.prompts))
	}

	first := driver.prompts[0]
	if first.Message != "Question 1: Which planet is closest to the sun?" {
		t.Fatalf("first prompt message %q", first.Message)
	}
	if diff := cmp.Diff([]string{"Mercury", "Venus", "Earth", "Mars"}, first.Options); diff != "" {
		t.Fatalf("first prompt options mismatch (-want +got):\n%s", diff)
	}
	if first.Help != "Category: Other | Difficulty: Easy" {
		t.Fatalf("first prompt help %q", first.Help)
	}

	second := driver.prompts[1]
	if diff := cmp.Diff([]string{"True", "False", "nan", "nan"}, second.Options); diff != "" {
		t.Fatalf("second prompt options mismatch (-want +got):\n%s", diff)
	}
	if second.Help != "" {
		t.Fatalf("uncategorised question got help %q", second.Help)
	}
}

func TestRunEmptyQuiz(t *testing.T) {
	runner := tui.NewRunner(tui.WithDriver(&scriptedDriver{}))

	_, err := runner.Run(context.Background(), quiz.Quiz{Spec: quiz.FormSpec{Title: "Empty"}})
	if !errors.Is(err, tui.ErrNoQuestions) {
		t.Fatalf("err = %v, want ErrNoQuestions", err)
	}
}

func TestRunAbortedSelection(t *testing.T) {
	driver := &scriptedDriver{selectErr: tui.ErrAborted}
	runner := tui.NewRunner(tui.WithDriver(driver))

	_, err := runner.Run(context.Background(), testsupport.SampleQuiz())
	if !errors.Is(err, tui.ErrAborted) {
		t.Fatalf("err = %v, want ErrAborted", err)
	}
}

func TestRunUnansweredQuestionScoresZero(t *testing.T) {
	// A driver returning -1 models a selection that produced no value; the
	// response slot stays empty and never matches the key.
	driver := &scriptedDriver{}
	runner := tui.NewRunner(tui.WithDriver(driver))

	result, err := runner.Run(context.Background(), testsupport.SampleQuiz())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Correct != 0 || result.Score != 0 {
		t.Fatalf("unanswered session scored %+v", result)
	}
	if diff := cmp.Diff([]string{"", ""}, result.Responses); diff != "" {
		t.Fatalf("responses mismatch (-want +got):\n%s", diff)
	}
}
