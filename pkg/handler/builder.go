// Package handler builds the submit-handler text that accompanies a
// generated form: a scoring routine embedding the answer key. The text is a
// byproduct of generation, surfaced for operators to review; nothing in this
// module installs it as a live trigger.
package handler

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-quizgen/pkg/quiz"
	rendertemplate "github.com/goliatone/go-quizgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-quizgen/pkg/render/template/gotemplate"
)

// Option configures the builder.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Builder instantiates the handler text template for a quiz.
type Builder struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the builder applying any provided options.
func New(options ...Option) (*Builder, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("handler builder: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Builder{templates: renderer}, nil
}

// Build renders the scoring routine text for the quiz. Only positions the
// answer key records appear in the embedded key object; the computed score is
// round(100*matches/total), matching quiz.ComputeScore.
func (b *Builder) Build(q quiz.Quiz) (string, error) {
	if b == nil || b.templates == nil {
		return "", fmt.Errorf("handler builder: template renderer is nil")
	}

	result, err := b.templates.RenderTemplate("templates/submit_handler.tpl", map[string]any{
		"title":      q.Spec.Title,
		"total":      len(q.Questions),
		"answer_key": keyLiteral(q.Key),
	})
	if err != nil {
		return "", fmt.Errorf("handler builder: render template: %w", err)
	}
	return result, nil
}

// keyLiteral renders the sparse answer key as the object literal the handler
// text embeds, positions in ascending order.
func keyLiteral(key quiz.AnswerKey) string {
	positions := key.Positions()
	if len(positions) == 0 {
		return "{}"
	}

	var b strings.Builder
	b.WriteString("{\n")
	for i, position := range positions {
		letter, _ := key.Letter(position)
		fmt.Fprintf(&b, "    %d: %q", position, letter)
		if i < len(positions)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("  }")
	return b.String()
}
