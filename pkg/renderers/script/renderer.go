// Package script renders a quiz as the self-contained console script the
// form host's managed scripting environment accepts: one linear sequence of
// form and item calls, with the submission handler text appended as an
// uninstalled reference block.
package script

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/goliatone/go-quizgen/pkg/handler"
	"github.com/goliatone/go-quizgen/pkg/quiz"
	"github.com/goliatone/go-quizgen/pkg/render"
	rendertemplate "github.com/goliatone/go-quizgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-quizgen/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	handlerBuilder   *handler.Builder
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

// WithHandlerBuilder injects the builder used for the appended submission
// handler text.
func WithHandlerBuilder(builder *handler.Builder) Option {
	return func(cfg *config) {
		if builder != nil {
			cfg.handlerBuilder = builder
		}
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
	handlers  *handler.Builder
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the script renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
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
			return nil, fmt.Errorf("script renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	handlers := cfg.handlerBuilder
	if handlers == nil {
		built, err := handler.New()
		if err != nil {
			return nil, fmt.Errorf("script renderer: configure handler builder: %w", err)
		}
		handlers = built
	}

	return &Renderer{templates: renderer, handlers: handlers}, nil
}

func (r *Renderer) Name() string {
	return "script"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render produces the console script. Question text goes through JS string
// literal encoding so embedded line breaks and quotes survive verbatim.
func (r *Renderer) Render(ctx context.Context, q quiz.Quiz, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("script renderer: template renderer is nil")
	}

	questions := make([]map[string]any, len(q.Questions))
	for i, question := range q.Questions {
		questions[i] = map[string]any{
			"index":    i + 1,
			"title":    jsString(question.DisplayTitle(i + 1)),
			"choices":  jsStringArray(question.Choices()),
			"has_help": question.HasAnnotation(),
			"help":     jsString(question.Annotation()),
		}
	}

	handlerText := ""
	if !options.OmitHandler {
		built, err := r.handlers.Build(q)
		if err != nil {
			return nil, fmt.Errorf("script renderer: build handler text: %w", err)
		}
		handlerText = built
	}

	result, err := r.templates.RenderTemplate("templates/console_script.tpl", map[string]any{
		"title": jsString(q.Spec.Title),
		"form": map[string]any{
			"title":            jsString(q.Spec.Title),
			"description":      jsString(q.Spec.Description),
			"confirmation":     jsString(q.Spec.ConfirmationMessage),
			"respond_again":    strconv.FormatBool(q.Spec.ShowRespondAgainLink),
			"collect_identity": strconv.FormatBool(q.Spec.CollectIdentity),
			"require_auth":     strconv.FormatBool(q.Spec.RequireAuth),
		},
		"questions": questions,
		"handler":   handlerText,
	})
	if err != nil {
		return nil, fmt.Errorf("script renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// jsString encodes a Go string as a JS string literal, quotes included. JSON
// string encoding is valid JS.
func jsString(s string) string {
	data, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(data)
}

func jsStringArray(values []string) string {
	data, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(data)
}
