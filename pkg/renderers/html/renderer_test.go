package html_test

import (
	"context"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-quizgen/pkg/quiz"
	"github.com/goliatone/go-quizgen/pkg/render"
	"github.com/goliatone/go-quizgen/pkg/renderers/html"
	"github.com/goliatone/go-quizgen/pkg/testsupport"
)

func renderSample(t *testing.T, options render.RenderOptions) string {
	t.Helper()

	renderer, err := html.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(context.Background(), testsupport.SampleQuiz(), options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRendererIdentity(t *testing.T) {
	renderer, err := html.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if renderer.Name() != "html" {
		t.Fatalf("name = %q", renderer.Name())
	}
	if renderer.ContentType() != "text/html; charset=utf-8" {
		t.Fatalf("content type = %q", renderer.ContentType())
	}
}

func TestRenderPreviewContent(t *testing.T) {
	out := renderSample(t, render.RenderOptions{})

	for _, want := range []string{
		`<title>Sample Exam</title>`,
		`<h1>Sample Exam</h1>`,
		`<p class="quizgen-form__description">Two questions, answer both.</p>`,
		`<legend>Question 1: Which planet is closest to the sun?</legend>`,
		`<p class="quizgen-question__help">Category: Other | Difficulty: Easy</p>`,
		`name="question-1" value="Mercury" required`,
		`name="question-2" value="nan" required`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q:\n%s", want, out)
		}
	}

	if strings.Count(out, "<fieldset") != 2 {
		t.Fatalf("expected 2 question fieldsets:\n%s", out)
	}
}

func TestRenderSanitizesMarkup(t *testing.T) {
	renderer, err := html.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	q := quiz.Quiz{
		Spec: quiz.FormSpec{Title: "Exam"},
		Questions: []quiz.QuestionRecord{
			{
				Title:   `Pick <script>alert("x")</script> one`,
				OptionA: "<b>bold</b>",
				OptionB: "plain",
			},
		},
	}
	out, err := renderer.Render(context.Background(), q, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if strings.Contains(string(out), "<script>") || strings.Contains(string(out), "<b>") {
		t.Fatalf("markup survived sanitisation:\n%s", out)
	}
	if !strings.Contains(string(out), "bold") {
		t.Fatalf("text content of stripped markup lost:\n%s", out)
	}
}

func TestRenderAppliesTheme(t *testing.T) {
	cfg := &theme.RendererConfig{
		Theme: "acme",
		CSSVars: map[string]string{
			"--brand":  "#123456",
			"--accent": "#654321",
		},
		AssetURL: func(key string) string {
			return "/assets/acme/" + key
		},
	}

	out := renderSample(t, render.RenderOptions{Theme: cfg})

	for _, want := range []string{
		`data-theme="acme"`,
		`<link rel="stylesheet" href="/assets/acme/html.stylesheet">`,
		`:root {`,
		`--accent: #654321;`,
		`--brand: #123456;`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("themed preview missing %q:\n%s", want, out)
		}
	}

	accent := strings.Index(out, "--accent")
	brand := strings.Index(out, "--brand")
	if !(accent >= 0 && brand >= 0 && accent < brand) {
		t.Fatalf("css vars not emitted in sorted order:\n%s", out)
	}
}

func TestRenderWithoutTheme(t *testing.T) {
	out := renderSample(t, render.RenderOptions{})

	if strings.Contains(out, `<link rel="stylesheet"`) {
		t.Fatalf("stylesheet link present without a theme:\n%s", out)
	}
	if strings.Contains(out, ":root {") {
		t.Fatalf("css vars present without a theme:\n%s", out)
	}
}

func TestRenderZeroQuestions(t *testing.T) {
	renderer, err := html.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	q := quiz.Quiz{Spec: quiz.FormSpec{Title: "Empty Exam"}}
	out, err := renderer.Render(context.Background(), q, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if strings.Contains(string(out), "<fieldset") {
		t.Fatalf("empty quiz rendered question fieldsets:\n%s", out)
	}
	if !strings.Contains(string(out), "<h1>Empty Exam</h1>") {
		t.Fatalf("form header missing:\n%s", out)
	}
}
