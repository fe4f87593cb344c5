// Package formhost defines the contract for the external form-hosting
// platform the publisher drives. The platform itself is closed; this package
// only names the operations the generation pipeline consumes, with explicit
// context/err signatures replacing the host console's ambient failure
// propagation. There is no retry anywhere: the first rejected call aborts the
// whole run.
package formhost

import (
	"context"
	"time"
)

// Service is the entry point into a form host.
type Service interface {
	// CreateForm provisions a new, empty form with the given title.
	CreateForm(ctx context.Context, title string) (Form, error)
}

// Form exposes the configuration surface of a live form.
type Form interface {
	SetDescription(ctx context.Context, description string) error
	SetConfirmationMessage(ctx context.Context, message string) error
	SetShowRespondAgainLink(ctx context.Context, enabled bool) error
	SetCollectIdentity(ctx context.Context, enabled bool) error
	SetRequireAuth(ctx context.Context, enabled bool) error

	// AddChoiceItem appends a new multiple-choice item to the form.
	AddChoiceItem(ctx context.Context) (Item, error)

	// PublishedURL returns the form's published location identifier.
	PublishedURL(ctx context.Context) (string, error)
}

// Item configures a single multiple-choice item.
type Item interface {
	SetTitle(ctx context.Context, title string) error
	SetChoices(ctx context.Context, choices []Choice) error
	SetRequired(ctx context.Context, required bool) error
	SetHelpText(ctx context.Context, text string) error
}

// Choice is one selectable answer. The generation pipeline always encodes
// choices self-referentially: Value equals Label.
type Choice struct {
	Label string
	Value string
}

// SelfChoice builds the self-referential encoding used for every rendered
// option, placeholders included.
func SelfChoice(label string) Choice {
	return Choice{Label: label, Value: label}
}

// Operation names as the host console documents them. Recording hosts tag
// every call with one of these so tests can assert exact call sequences.
const (
	OpCreateForm      = "create-form"
	OpSetDescription  = "set-description"
	OpSetConfirmation = "set-confirmation-message"
	OpSetRespondAgain = "set-response-redisplay-flag"
	OpSetCollectID    = "set-identity-collection-flag"
	OpSetRequireAuth  = "set-authentication-requirement-flag"
	OpAddChoiceItem   = "add-choice-item"
	OpSetItemTitle    = "set-item-title"
	OpSetItemChoices  = "set-item-choices"
	OpSetItemRequired = "set-item-required"
	OpSetItemHelpText = "set-item-help-text"
	OpGetPublishedURL = "get-published-location"
	OpSheetAppendRow  = "append-row"
)

// Sheet is the spreadsheet-like sink the submit handler text references. The
// pipeline never appends rows itself; the type exists so host implementations
// and tests can model the sink the handler describes.
type Sheet interface {
	AppendRow(ctx context.Context, row Row) error
}

// Row is one scored submission.
type Row struct {
	Timestamp time.Time
	Score     int
	Correct   int
	Total     int
}
