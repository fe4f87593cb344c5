// Package html renders a static HTML preview of the quiz form. Question text
// in the upstream datasets is OCR-derived free text, so everything user-visible
// passes through a strict sanitizer before templating.
package html

import (
	"context"
	"fmt"
	stdhtml "html"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-quizgen/pkg/quiz"
	"github.com/goliatone/go-quizgen/pkg/render"
	rendertemplate "github.com/goliatone/go-quizgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-quizgen/pkg/render/template/gotemplate"
)

// themeAssetStylesheet names the go-theme asset slot the preview consults.
const themeAssetStylesheet = "html.stylesheet"

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

type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
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
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the preview document. Choices render verbatim, placeholder
// values included, matching what the published form would show.
func (r *Renderer) Render(ctx context.Context, q quiz.Quiz, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	questions := make([]map[string]any, len(q.Questions))
	for i, question := range q.Questions {
		help := ""
		if question.HasAnnotation() {
			help = sanitize(question.Annotation())
		}
		choices := question.Choices()
		cleaned := make([]string, len(choices))
		for n, choice := range choices {
			cleaned[n] = sanitize(choice)
		}
		questions[i] = map[string]any{
			"position": i + 1,
			"title":    sanitize(question.DisplayTitle(i + 1)),
			"choices":  cleaned,
			"help":     help,
		}
	}

	themeName := ""
	stylesheet := ""
	cssVars := ""
	if options.Theme != nil {
		themeName = options.Theme.Theme
		if options.Theme.AssetURL != nil {
			stylesheet = options.Theme.AssetURL(themeAssetStylesheet)
		}
		cssVars = cssVarsStyle(options.Theme.CSSVars)
	}

	result, err := r.templates.RenderTemplate("templates/form.tmpl", map[string]any{
		"form": map[string]any{
			"title":       sanitize(q.Spec.Title),
			"description": sanitize(q.Spec.Description),
		},
		"questions":  questions,
		"theme_name": themeName,
		"stylesheet": stylesheet,
		"css_vars":   cssVars,
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// sanitize strips any markup that leaked into the OCR-derived text and
// returns plain text. Escaping for HTML output happens once, in the template
// layer, so the sanitizer's entity encoding is undone here.
func sanitize(raw string) string {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return stdhtml.UnescapeString(textPolicy.Sanitize(raw))
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
