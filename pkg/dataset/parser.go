package dataset

import (
	"context"

	"github.com/goliatone/go-quizgen/pkg/quiz"
)

// Parser decodes a Document into a quiz model, normalizing the upstream
// format quirks (boolean identifier tokens, letter casing in answer keys) and
// rejecting anything the quiz invariants forbid.
type Parser interface {
	Parse(ctx context.Context, doc Document) (quiz.Quiz, error)
}

// ParserOptions configures parsing behaviour.
type ParserOptions struct {
	// Strict rejects answer keys that point outside 1..questionCount. When
	// false, such entries are kept as-is and only surface through lint
	// tooling.
	Strict bool
}

// ParserOption mutates ParserOptions prior to construction.
type ParserOption func(*ParserOptions)

// WithStrictAnswerKey enables answer-key bounds checking at parse time.
func WithStrictAnswerKey() ParserOption {
	return func(opts *ParserOptions) {
		opts.Strict = true
	}
}

// NewParserOptions applies the provided options and returns the resulting
// configuration.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}
