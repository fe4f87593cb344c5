// Package parser decodes dataset documents into quiz models. Documents are
// YAML (or JSON, which the YAML decoder accepts) tables mirroring the rows
// the upstream generator consumed: one form block, an ordered question list,
// and a sparse answer key.
package parser

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-quizgen/pkg/dataset"
	"github.com/goliatone/go-quizgen/pkg/quiz"
)

// Parser implements dataset.Parser.
type Parser struct {
	strict bool
}

var _ dataset.Parser = (*Parser)(nil)

// New constructs a Parser from pre-resolved options.
func New(options dataset.ParserOptions) dataset.Parser {
	return &Parser{strict: options.Strict}
}

type documentFile struct {
	Form         formFile          `yaml:"form" json:"form"`
	Questions    []questionFile    `yaml:"questions" json:"questions"`
	RawAnswerKey map[string]string `yaml:"answerKey" json:"answerKey"`
}

type formFile struct {
	Title                string    `yaml:"title" json:"title"`
	Description          string    `yaml:"description" json:"description"`
	ConfirmationMessage  string    `yaml:"confirmationMessage" json:"confirmationMessage"`
	ShowRespondAgainLink boolToken `yaml:"showRespondAgainLink" json:"showRespondAgainLink"`
	CollectIdentity      boolToken `yaml:"collectIdentity" json:"collectIdentity"`
	RequireAuth          boolToken `yaml:"requireAuth" json:"requireAuth"`
}

type questionFile struct {
	Title      string    `yaml:"title" json:"title"`
	OptionA    string    `yaml:"optionA" json:"optionA"`
	OptionB    string    `yaml:"optionB" json:"optionB"`
	OptionC    string    `yaml:"optionC" json:"optionC"`
	OptionD    string    `yaml:"optionD" json:"optionD"`
	Category   string    `yaml:"category" json:"category"`
	Difficulty string    `yaml:"difficulty" json:"difficulty"`
	IsGroup    boolToken `yaml:"isGroup" json:"isGroup"`
}

// boolToken accepts genuine booleans as well as the bare identifier tokens
// ("False", "TRUE", ...) upstream exports leak, and rejects anything else.
type boolToken struct {
	value bool
}

func (b *boolToken) UnmarshalYAML(node *yaml.Node) error {
	switch node.Tag {
	case "!!bool":
		var v bool
		if err := node.Decode(&v); err != nil {
			return err
		}
		b.value = v
		return nil
	case "!!null":
		b.value = false
		return nil
	default:
		var raw string
		if err := node.Decode(&raw); err != nil {
			return err
		}
		v, err := quiz.ParseBoolToken(raw)
		if err != nil {
			return err
		}
		b.value = v
		return nil
	}
}

// Parse decodes the document and applies the quiz invariants.
func (p *Parser) Parse(ctx context.Context, doc dataset.Document) (quiz.Quiz, error) {
	if ctx == nil {
		return quiz.Quiz{}, errors.New("dataset parser: context is required")
	}
	if err := ctx.Err(); err != nil {
		return quiz.Quiz{}, err
	}

	raw := doc.Raw()
	if len(strings.TrimSpace(string(raw))) == 0 {
		return quiz.Quiz{}, fmt.Errorf("dataset parser: document %s is empty", doc.Location())
	}

	var file documentFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return quiz.Quiz{}, fmt.Errorf("dataset parser: decode %s: %w", doc.Location(), err)
	}

	out := quiz.Quiz{
		Spec: quiz.FormSpec{
			Title:                file.Form.Title,
			Description:          file.Form.Description,
			ConfirmationMessage:  file.Form.ConfirmationMessage,
			ShowRespondAgainLink: file.Form.ShowRespondAgainLink.value,
			CollectIdentity:      file.Form.CollectIdentity.value,
			RequireAuth:          file.Form.RequireAuth.value,
		},
	}

	for i, question := range file.Questions {
		record := quiz.QuestionRecord{
			Title:      question.Title,
			OptionA:    question.OptionA,
			OptionB:    question.OptionB,
			OptionC:    question.OptionC,
			OptionD:    question.OptionD,
			Category:   question.Category,
			Difficulty: question.Difficulty,
			IsGroup:    question.IsGroup.value,
		}
		if err := record.Validate(); err != nil {
			return quiz.Quiz{}, fmt.Errorf("dataset parser: question %d: %w", i+1, err)
		}
		out.Questions = append(out.Questions, record)
	}

	key, err := parseAnswerKey(file.RawAnswerKey)
	if err != nil {
		return quiz.Quiz{}, fmt.Errorf("dataset parser: %w", err)
	}
	out.Key = key

	if err := out.Spec.Validate(); err != nil {
		return quiz.Quiz{}, fmt.Errorf("dataset parser: %w", err)
	}
	if p.strict {
		if err := out.Key.Validate(len(out.Questions)); err != nil {
			return quiz.Quiz{}, fmt.Errorf("dataset parser: %w", err)
		}
	}

	return out, nil
}

func parseAnswerKey(raw map[string]string) (quiz.AnswerKey, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	key := make(quiz.AnswerKey, len(raw))
	for rawPosition, letter := range raw {
		position, err := strconv.Atoi(strings.TrimSpace(rawPosition))
		if err != nil {
			return nil, fmt.Errorf("answer key position %q is not a number", rawPosition)
		}
		normalized := strings.ToUpper(strings.TrimSpace(letter))
		switch normalized {
		case "A", "B", "C", "D":
		default:
			return nil, fmt.Errorf("answer key position %d has invalid letter %q", position, letter)
		}
		if _, exists := key[position]; exists {
			return nil, fmt.Errorf("answer key position %d is duplicated", position)
		}
		key[position] = normalized
	}
	return key, nil
}
