package render

import (
	"context"

	"github.com/goliatone/go-quizgen/pkg/quiz"
)

// Renderer converts a quiz into a byte representation (console script, HTML
// preview, etc.). Rendering is pure: identical quizzes produce identical
// output.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, q quiz.Quiz, options RenderOptions) ([]byte, error)
}
