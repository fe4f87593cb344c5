package quiz

import (
	"fmt"
	"strings"
)

// OptionPlaceholder is the literal value upstream exports use for unused
// third/fourth option slots. It is real data, not an error state: renderers
// must emit it verbatim, and tooling that wants to treat unused slots
// specially compares against this constant instead of the bare string.
const OptionPlaceholder = "nan"

// Difficulty labels observed in the source datasets. Parsers accept arbitrary
// labels; these constants cover the known vocabulary.
const (
	DifficultyEasy   = "簡單"
	DifficultyMedium = "中等"
)

// QuestionRecord is one exam question exactly as the dataset supplies it.
// Titles may contain embedded line breaks and truncated OCR fragments; they
// are carried through untouched. Records are constructed once at ingestion
// and never mutated afterwards.
type QuestionRecord struct {
	Title      string `json:"title" yaml:"title"`
	OptionA    string `json:"optionA" yaml:"optionA"`
	OptionB    string `json:"optionB" yaml:"optionB"`
	OptionC    string `json:"optionC" yaml:"optionC"`
	OptionD    string `json:"optionD" yaml:"optionD"`
	Category   string `json:"category,omitempty" yaml:"category"`
	Difficulty string `json:"difficulty,omitempty" yaml:"difficulty"`
	IsGroup    bool   `json:"isGroup" yaml:"isGroup"`
}

// Choices returns the four option strings in slot order, placeholders
// included. The slice is freshly allocated on every call.
func (q QuestionRecord) Choices() []string {
	return []string{q.OptionA, q.OptionB, q.OptionC, q.OptionD}
}

// DisplayTitle renders the item title for the given 1-based position.
func (q QuestionRecord) DisplayTitle(position int) string {
	return fmt.Sprintf("Question %d: %s", position, q.Title)
}

// HasAnnotation reports whether the record carries a category label. This is
// the only condition under which help text is attached to the rendered item.
func (q QuestionRecord) HasAnnotation() bool {
	return strings.TrimSpace(q.Category) != ""
}

// Annotation renders the help text attached to categorised items.
func (q QuestionRecord) Annotation() string {
	return fmt.Sprintf("Category: %s | Difficulty: %s", q.Category, q.Difficulty)
}

// FormSpec is the target form's metadata. It fully determines the rendered
// output and has no relationship to other specs.
type FormSpec struct {
	Title                string `json:"title" yaml:"title"`
	Description          string `json:"description,omitempty" yaml:"description"`
	ConfirmationMessage  string `json:"confirmationMessage,omitempty" yaml:"confirmationMessage"`
	ShowRespondAgainLink bool   `json:"showRespondAgainLink" yaml:"showRespondAgainLink"`
	CollectIdentity      bool   `json:"collectIdentity" yaml:"collectIdentity"`
	RequireAuth          bool   `json:"requireAuth" yaml:"requireAuth"`
}

// Quiz bundles everything one generation run needs: the form metadata, the
// ordered question list, and the sparse answer key.
type Quiz struct {
	Spec      FormSpec         `json:"form" yaml:"form"`
	Questions []QuestionRecord `json:"questions" yaml:"questions"`
	Key       AnswerKey        `json:"answerKey,omitempty" yaml:"answerKey"`
}

// Clone creates a deep copy so callers can hold on to a quiz without
// worrying about accidental mutation of the shared slices and maps.
func (z Quiz) Clone() Quiz {
	cloned := z
	if len(z.Questions) > 0 {
		cloned.Questions = append([]QuestionRecord(nil), z.Questions...)
	}
	if len(z.Key) > 0 {
		cloned.Key = make(AnswerKey, len(z.Key))
		for position, letter := range z.Key {
			cloned.Key[position] = letter
		}
	}
	return cloned
}

// Validate performs the sanity checks ingestion relies on before handing a
// quiz to the publisher. Rendering itself stays validation-free: a form
// description claiming the wrong question count is rendered as-is.
func (z Quiz) Validate() error {
	if err := z.Spec.Validate(); err != nil {
		return err
	}
	for i, question := range z.Questions {
		if err := question.Validate(); err != nil {
			return fmt.Errorf("quiz: question %d: %w", i+1, err)
		}
	}
	if err := z.Key.Validate(len(z.Questions)); err != nil {
		return err
	}
	return nil
}

// Validate checks the fields ingestion must not let through empty.
func (s FormSpec) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("quiz: form title is required")
	}
	return nil
}

// Validate checks the record invariants of the dataset format: a title and at
// least the first two option slots. Placeholder values in later slots are
// legitimate and pass untouched.
func (q QuestionRecord) Validate() error {
	if strings.TrimSpace(q.Title) == "" {
		return fmt.Errorf("quiz: question title is required")
	}
	if q.OptionA == "" || q.OptionB == "" {
		return fmt.Errorf("quiz: options A and B are required")
	}
	return nil
}
