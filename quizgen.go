// Package quizgen generates online quiz forms from declarative question
// datasets: one parameterized pipeline replacing a pile of near-identical
// generated console scripts.
package quizgen

import (
	"context"

	"github.com/goliatone/go-quizgen/pkg/dataset"
	"github.com/goliatone/go-quizgen/pkg/formhost"
	"github.com/goliatone/go-quizgen/pkg/orchestrator"
	"github.com/goliatone/go-quizgen/pkg/quiz"
	"github.com/goliatone/go-quizgen/pkg/render"
)

// RenderOptions describes per-request overrides renderers can use, re-exported
// via the root package for convenience.
type RenderOptions = render.RenderOptions

// Quiz aliases the core quiz model.
type Quiz = quiz.Quiz

// QuestionRecord aliases one dataset question row.
type QuestionRecord = quiz.QuestionRecord

// FormSpec aliases the target form metadata.
type FormSpec = quiz.FormSpec

// AnswerKey aliases the sparse position-to-letter mapping.
type AnswerKey = quiz.AnswerKey

// Result aliases the orchestrator's run output.
type Result = orchestrator.Result

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate loads the dataset source, builds the quiz, and renders it using
// the named renderer. It is the simplest entry point for callers that just
// want the generated document.
func Generate(ctx context.Context, source dataset.Source, rendererName string, options ...orchestrator.Option) (Result, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: rendererName,
	})
}

// GenerateFromQuiz renders a pre-built quiz model, bypassing the loader and
// parser stages while still delegating to the orchestrator.
func GenerateFromQuiz(ctx context.Context, q Quiz, rendererName string, options ...orchestrator.Option) (Result, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Quiz:     &q,
		Renderer: rendererName,
	})
}

// Publish loads the dataset source, publishes the form against the supplied
// host, and returns the run result including the published location.
func Publish(ctx context.Context, source dataset.Source, host formhost.Service, options ...orchestrator.Option) (Result, error) {
	options = append(options, orchestrator.WithHost(host))
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:  source,
		Publish: true,
	})
}

// WithHost re-exports the orchestrator option for callers wiring a form host
// alongside other options.
func WithHost(host formhost.Service) orchestrator.Option {
	return orchestrator.WithHost(host)
}
