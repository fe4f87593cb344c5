// Package tui runs a quiz interactively in the terminal: one select prompt
// per question, graded against the answer key at the end. It exists for
// operators who want to sanity-check a dataset before publishing the form.
package tui

import (
	"context"
	"fmt"

	"github.com/goliatone/go-quizgen/pkg/quiz"
)

// Option customises the runner.
type Option func(*Runner)

// WithDriver injects a custom prompt driver. Tests use this to script the
// session without a terminal.
func WithDriver(driver PromptDriver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// Result summarises a completed session.
type Result struct {
	// Responses holds the selected choice letter per question, in order. An
	// aborted selection leaves an empty string.
	Responses []string
	Correct   int
	Total     int
	Score     int
}

// Runner asks every question in order and grades the answers.
type Runner struct {
	driver PromptDriver
}

// NewRunner constructs a Runner backed by the survey prompt driver unless a
// custom driver is supplied.
func NewRunner(options ...Option) *Runner {
	r := &Runner{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Run walks the quiz in input order. Questions render exactly as the
// published form would show them: verbatim choices, annotation as help text,
// every question mandatory.
func (r *Runner) Run(ctx context.Context, q quiz.Quiz) (Result, error) {
	if ctx == nil {
		return Result{}, fmt.Errorf("tui: context is required")
	}
	if len(q.Questions) == 0 {
		return Result{}, ErrNoQuestions
	}

	responses := make([]string, len(q.Questions))
	for i, question := range q.Questions {
		cfg := SelectConfig{
			Message: question.DisplayTitle(i + 1),
			Options: question.Choices(),
		}
		if question.HasAnnotation() {
			cfg.Help = question.Annotation()
		}
		index, err := r.driver.Select(ctx, cfg)
		if err != nil {
			return Result{}, fmt.Errorf("tui: question %d: %w", i+1, err)
		}
		if index >= 0 && index < len(cfg.Options) {
			responses[i] = string(rune('A' + index))
		}
	}

	correct, total := q.Grade(responses)
	result := Result{
		Responses: responses,
		Correct:   correct,
		Total:     total,
		Score:     quiz.ComputeScore(correct, total),
	}

	summary := fmt.Sprintf("Score: %d (%d/%d correct)", result.Score, correct, total)
	if err := r.driver.Info(ctx, summary); err != nil {
		return Result{}, fmt.Errorf("tui: report summary: %w", err)
	}
	return result, nil
}
