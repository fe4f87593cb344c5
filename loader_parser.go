package quizgen

import (
	internalLoader "github.com/goliatone/go-quizgen/internal/dataset/loader"
	internalParser "github.com/goliatone/go-quizgen/internal/dataset/parser"
	"github.com/goliatone/go-quizgen/pkg/dataset"
)

// NewLoader constructs a dataset loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...dataset.LoaderOption) dataset.Loader {
	cfg := dataset.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs a dataset parser backed by the internal
// implementation.
func NewParser(options ...dataset.ParserOption) dataset.Parser {
	cfg := dataset.NewParserOptions(options...)
	return internalParser.New(cfg)
}
