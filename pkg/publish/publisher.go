// Package publish turns a quiz model into the call sequence that builds the
// equivalent live form on a form host. The sequence is deterministic for a
// given quiz; only the published location assigned by the host varies.
package publish

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-quizgen/pkg/formhost"
	"github.com/goliatone/go-quizgen/pkg/quiz"
)

// Publisher drives a formhost.Service. It performs no retries and no partial
// recovery: the first host rejection aborts the run and surfaces the error.
type Publisher struct {
	host formhost.Service
}

// New constructs a Publisher bound to the given host.
func New(host formhost.Service) *Publisher {
	return &Publisher{host: host}
}

// Publish creates and configures the form, populates one multiple-choice item
// per question in input order, and returns the published location identifier.
// A quiz with zero questions still produces a valid empty form.
func (p *Publisher) Publish(ctx context.Context, q quiz.Quiz) (string, error) {
	if ctx == nil {
		return "", errors.New("publish: context is required")
	}
	if p == nil || p.host == nil {
		return "", errors.New("publish: host is required")
	}

	form, err := p.host.CreateForm(ctx, q.Spec.Title)
	if err != nil {
		return "", fmt.Errorf("publish: create form: %w", err)
	}

	if err := p.configure(ctx, form, q.Spec); err != nil {
		return "", err
	}

	for i, question := range q.Questions {
		if err := p.addQuestion(ctx, form, i+1, question); err != nil {
			return "", err
		}
	}

	url, err := form.PublishedURL(ctx)
	if err != nil {
		return "", fmt.Errorf("publish: published location: %w", err)
	}
	return url, nil
}

func (p *Publisher) configure(ctx context.Context, form formhost.Form, spec quiz.FormSpec) error {
	if err := form.SetDescription(ctx, spec.Description); err != nil {
		return fmt.Errorf("publish: set description: %w", err)
	}
	if err := form.SetConfirmationMessage(ctx, spec.ConfirmationMessage); err != nil {
		return fmt.Errorf("publish: set confirmation message: %w", err)
	}
	if err := form.SetShowRespondAgainLink(ctx, spec.ShowRespondAgainLink); err != nil {
		return fmt.Errorf("publish: set respond-again flag: %w", err)
	}
	if err := form.SetCollectIdentity(ctx, spec.CollectIdentity); err != nil {
		return fmt.Errorf("publish: set identity collection flag: %w", err)
	}
	if err := form.SetRequireAuth(ctx, spec.RequireAuth); err != nil {
		return fmt.Errorf("publish: set authentication flag: %w", err)
	}
	return nil
}

// addQuestion emits one item. Choices are rendered verbatim, placeholder
// slots included, with each choice's value equal to its own label.
func (p *Publisher) addQuestion(ctx context.Context, form formhost.Form, position int, question quiz.QuestionRecord) error {
	item, err := form.AddChoiceItem(ctx)
	if err != nil {
		return fmt.Errorf("publish: question %d: add item: %w", position, err)
	}
	if err := item.SetTitle(ctx, question.DisplayTitle(position)); err != nil {
		return fmt.Errorf("publish: question %d: set title: %w", position, err)
	}

	labels := question.Choices()
	choices := make([]formhost.Choice, len(labels))
	for i, label := range labels {
		choices[i] = formhost.SelfChoice(label)
	}
	if err := item.SetChoices(ctx, choices); err != nil {
		return fmt.Errorf("publish: question %d: set choices: %w", position, err)
	}
	if err := item.SetRequired(ctx, true); err != nil {
		return fmt.Errorf("publish: question %d: set required: %w", position, err)
	}
	if question.HasAnnotation() {
		if err := item.SetHelpText(ctx, question.Annotation()); err != nil {
			return fmt.Errorf("publish: question %d: set help text: %w", position, err)
		}
	}
	return nil
}
