// Package orchestrator coordinates the full pipeline from dataset document to
// generated output: load, parse, publish to the form host, build the
// submit-handler text, and render. The run is strictly sequential with no
// retries; the first failing stage terminates it.
package orchestrator

import (
	"context"
	"errors"
	"fmt"

	internalLoader "github.com/goliatone/go-quizgen/internal/dataset/loader"
	internalParser "github.com/goliatone/go-quizgen/internal/dataset/parser"
	"github.com/goliatone/go-quizgen/pkg/dataset"
	"github.com/goliatone/go-quizgen/pkg/formhost"
	"github.com/goliatone/go-quizgen/pkg/handler"
	"github.com/goliatone/go-quizgen/pkg/publish"
	"github.com/goliatone/go-quizgen/pkg/quiz"
	"github.com/goliatone/go-quizgen/pkg/render"
	"github.com/goliatone/go-quizgen/pkg/renderers/html"
	"github.com/goliatone/go-quizgen/pkg/renderers/script"
)

const defaultRendererName = "script"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom dataset loader.
func WithLoader(loader dataset.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom dataset parser.
func WithParser(parser dataset.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithHost wires the form host used for publishing requests.
func WithHost(host formhost.Service) Option {
	return func(o *Orchestrator) {
		o.host = host
	}
}

// WithHandlerBuilder injects a custom submit-handler text builder.
func WithHandlerBuilder(builder *handler.Builder) Option {
	return func(o *Orchestrator) {
		o.handlers = builder
	}
}

// Orchestrator coordinates the pipeline while remaining open to dependency
// injection for advanced callers. Missing dependencies are initialised with
// the built-in implementations.
type Orchestrator struct {
	loader          dataset.Loader
	parser          dataset.Parser
	registry        *render.Registry
	defaultRenderer string
	host            formhost.Service
	handlers        *handler.Builder
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to generate a quiz form.
type Request struct {
	// Source identifies where the dataset document lives. Optional when
	// Document or Quiz is supplied.
	Source dataset.Source

	// Document allows callers to bypass the loader when they already have a
	// raw payload.
	Document *dataset.Document

	// Quiz bypasses loading and parsing entirely.
	Quiz *quiz.Quiz

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// Publish drives the configured form host and reports the published
	// location in the result. Requires a host to be wired.
	Publish bool

	// RenderOptions carries per-request instructions such as theme
	// configuration.
	RenderOptions render.RenderOptions
}

// Result bundles everything one generation run produced.
type Result struct {
	// Output is the rendered document (console script, HTML preview, ...).
	Output []byte

	// ContentType mirrors the renderer's declared MIME type.
	ContentType string

	// PublishedURL is the host-assigned location when publishing was
	// requested, empty otherwise.
	PublishedURL string

	// HandlerScript is the submit-handler text. It is reported, never
	// installed against the created form.
	HandlerScript string
}

// Generate executes the load → parse → publish → handler-text → render
// sequence.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return Result{}, err
		}
	}

	q, err := o.resolveQuiz(ctx, req)
	if err != nil {
		return Result{}, err
	}

	var result Result

	if req.Publish {
		if o.host == nil {
			return Result{}, errors.New("orchestrator: publishing requires a form host")
		}
		url, err := publish.New(o.host).Publish(ctx, q)
		if err != nil {
			return Result{}, fmt.Errorf("orchestrator: publish form: %w", err)
		}
		result.PublishedURL = url
	}

	handlerScript, err := o.handlers.Build(q)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: build handler text: %w", err)
	}
	result.HandlerScript = handlerScript

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Result{}, err
	}

	output, err := renderer.Render(ctx, q, req.RenderOptions)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: render output: %w", err)
	}
	result.Output = output
	result.ContentType = renderer.ContentType()

	return result, nil
}

func (o *Orchestrator) resolveQuiz(ctx context.Context, req Request) (quiz.Quiz, error) {
	if req.Quiz != nil {
		return req.Quiz.Clone(), nil
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return quiz.Quiz{}, err
	}

	q, err := o.parser.Parse(ctx, doc)
	if err != nil {
		return quiz.Quiz{}, fmt.Errorf("orchestrator: parse dataset: %w", err)
	}
	return q, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (dataset.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return dataset.Document{}, errors.New("orchestrator: source, document, or quiz is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return dataset.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalLoader.New(dataset.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New(dataset.NewParserOptions())
	}
	if o.handlers == nil {
		built, err := handler.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default handler builder: %w", err)
		} else {
			o.handlers = built
		}
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registerDefaultRenderers()
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}

func (o *Orchestrator) registerDefaultRenderers() {
	scriptRenderer, err := script.New(script.WithHandlerBuilder(o.handlers))
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: default script renderer: %w", err)
		return
	}
	o.registry.MustRegister(scriptRenderer)

	htmlRenderer, err := html.New()
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: default html renderer: %w", err)
		return
	}
	o.registry.MustRegister(htmlRenderer)
}
