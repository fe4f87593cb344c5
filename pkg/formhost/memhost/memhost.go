// Package memhost provides an in-memory formhost.Service that records every
// call it receives. It backs tests, dry runs, and the determinism guarantees
// of the publisher: two runs over identical input produce identical call
// logs, with only the published location differing between hosts.
package memhost

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/goliatone/go-quizgen/pkg/formhost"
)

// Call is one recorded host operation with its stringified arguments.
type Call struct {
	Op   string
	Args []string
}

// Option configures the host before use.
type Option func(*Host)

// WithBaseURL overrides the prefix used when minting published locations.
func WithBaseURL(base string) Option {
	return func(h *Host) {
		trimmed := strings.TrimRight(strings.TrimSpace(base), "/")
		if trimmed != "" {
			h.baseURL = trimmed
		}
	}
}

// WithFailOn makes the named operation fail, so callers can exercise the
// fail-fast contract without a real host rejecting anything.
func WithFailOn(op string) Option {
	return func(h *Host) {
		h.failOn = op
	}
}

// Host records calls across every form it creates.
type Host struct {
	mu      sync.Mutex
	baseURL string
	failOn  string
	calls   []Call
	forms   int
}

var _ formhost.Service = (*Host)(nil)

// New constructs an empty recording host.
func New(options ...Option) *Host {
	h := &Host{baseURL: "https://forms.example.test"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(h)
	}
	return h
}

// CreateForm mints a new recorded form.
func (h *Host) CreateForm(ctx context.Context, title string) (formhost.Form, error) {
	if err := h.record(ctx, formhost.OpCreateForm, title); err != nil {
		return nil, err
	}
	h.mu.Lock()
	h.forms++
	id := h.forms
	h.mu.Unlock()
	return &Form{host: h, Title: title, url: fmt.Sprintf("%s/forms/%d", h.baseURL, id)}, nil
}

// Calls returns a copy of the recorded call sequence in order.
func (h *Host) Calls() []Call {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Call, len(h.calls))
	for i, call := range h.calls {
		out[i] = Call{Op: call.Op, Args: append([]string(nil), call.Args...)}
	}
	return out
}

// Ops returns just the operation names, which keeps sequence assertions terse.
func (h *Host) Ops() []string {
	calls := h.Calls()
	ops := make([]string, len(calls))
	for i, call := range calls {
		ops[i] = call.Op
	}
	return ops
}

func (h *Host) record(ctx context.Context, op string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.failOn != "" && h.failOn == op {
		return fmt.Errorf("memhost: operation %s rejected", op)
	}
	h.calls = append(h.calls, Call{Op: op, Args: args})
	return nil
}

// Form is a recorded form. Exported fields snapshot the configuration the
// host has accepted so far.
type Form struct {
	host *Host
	url  string

	Title                string
	Description          string
	ConfirmationMessage  string
	ShowRespondAgainLink bool
	CollectIdentity      bool
	RequireAuth          bool
	Items                []*Item
}

var _ formhost.Form = (*Form)(nil)

func (f *Form) SetDescription(ctx context.Context, description string) error {
	if err := f.host.record(ctx, formhost.OpSetDescription, description); err != nil {
		return err
	}
	f.Description = description
	return nil
}

func (f *Form) SetConfirmationMessage(ctx context.Context, message string) error {
	if err := f.host.record(ctx, formhost.OpSetConfirmation, message); err != nil {
		return err
	}
	f.ConfirmationMessage = message
	return nil
}

func (f *Form) SetShowRespondAgainLink(ctx context.Context, enabled bool) error {
	if err := f.host.record(ctx, formhost.OpSetRespondAgain, strconv.FormatBool(enabled)); err != nil {
		return err
	}
	f.ShowRespondAgainLink = enabled
	return nil
}

func (f *Form) SetCollectIdentity(ctx context.Context, enabled bool) error {
	if err := f.host.record(ctx, formhost.OpSetCollectID, strconv.FormatBool(enabled)); err != nil {
		return err
	}
	f.CollectIdentity = enabled
	return nil
}

func (f *Form) SetRequireAuth(ctx context.Context, enabled bool) error {
	if err := f.host.record(ctx, formhost.OpSetRequireAuth, strconv.FormatBool(enabled)); err != nil {
		return err
	}
	f.RequireAuth = enabled
	return nil
}

func (f *Form) AddChoiceItem(ctx context.Context) (formhost.Item, error) {
	if err := f.host.record(ctx, formhost.OpAddChoiceItem); err != nil {
		return nil, err
	}
	item := &Item{host: f.host}
	f.Items = append(f.Items, item)
	return item, nil
}

func (f *Form) PublishedURL(ctx context.Context) (string, error) {
	if err := f.host.record(ctx, formhost.OpGetPublishedURL); err != nil {
		return "", err
	}
	return f.url, nil
}

// Item is a recorded multiple-choice item.
type Item struct {
	host *Host

	Title    string
	Choices  []formhost.Choice
	Required bool
	HelpText string
}

var _ formhost.Item = (*Item)(nil)

func (i *Item) SetTitle(ctx context.Context, title string) error {
	if err := i.host.record(ctx, formhost.OpSetItemTitle, title); err != nil {
		return err
	}
	i.Title = title
	return nil
}

func (i *Item) SetChoices(ctx context.Context, choices []formhost.Choice) error {
	labels := make([]string, len(choices))
	for n, choice := range choices {
		labels[n] = choice.Label
	}
	if err := i.host.record(ctx, formhost.OpSetItemChoices, labels...); err != nil {
		return err
	}
	i.Choices = append([]formhost.Choice(nil), choices...)
	return nil
}

func (i *Item) SetRequired(ctx context.Context, required bool) error {
	if err := i.host.record(ctx, formhost.OpSetItemRequired, strconv.FormatBool(required)); err != nil {
		return err
	}
	i.Required = required
	return nil
}

func (i *Item) SetHelpText(ctx context.Context, text string) error {
	if err := i.host.record(ctx, formhost.OpSetItemHelpText, text); err != nil {
		return err
	}
	i.HelpText = text
	return nil
}

// Sheet records appended score rows, modelling the spreadsheet sink the
// submit handler text describes.
type Sheet struct {
	mu   sync.Mutex
	host *Host
	Rows []formhost.Row
}

var _ formhost.Sheet = (*Sheet)(nil)

// NewSheet constructs a sheet that logs appends through the given host.
func NewSheet(host *Host) *Sheet {
	return &Sheet{host: host}
}

func (s *Sheet) AppendRow(ctx context.Context, row formhost.Row) error {
	if s.host != nil {
		if err := s.host.record(ctx, formhost.OpSheetAppendRow,
			row.Timestamp.UTC().Format("2006-01-02T15:04:05Z"),
			strconv.Itoa(row.Score), strconv.Itoa(row.Correct), strconv.Itoa(row.Total),
		); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Rows = append(s.Rows, row)
	return nil
}
