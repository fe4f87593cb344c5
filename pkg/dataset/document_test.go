package dataset_test

import (
	"testing"

	"github.com/goliatone/go-quizgen/pkg/dataset"
)

func TestNewDocumentValidation(t *testing.T) {
	if _, err := dataset.NewDocument(nil, []byte("x")); err == nil {
		t.Fatal("expected error for nil source")
	}
	if _, err := dataset.NewDocument(dataset.SourceFromFile("exam.yaml"), nil); err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestDocumentRawIsDefensive(t *testing.T) {
	payload := []byte("original")
	doc, err := dataset.NewDocument(dataset.SourceFromFile("exam.yaml"), payload)
	if err != nil {
		t.Fatalf("new document: %v", err)
	}

	payload[0] = 'X'
	if string(doc.Raw()) != "original" {
		t.Fatalf("document shares the caller's buffer: %q", doc.Raw())
	}

	raw := doc.Raw()
	raw[0] = 'Y'
	if string(doc.Raw()) != "original" {
		t.Fatalf("Raw() leaks internal state: %q", doc.Raw())
	}
}

func TestSourceKinds(t *testing.T) {
	tests := []struct {
		name     string
		source   dataset.Source
		kind     dataset.SourceKind
		location string
	}{
		{
			name:     "file",
			source:   dataset.SourceFromFile("./datasets/exam.yaml"),
			kind:     dataset.SourceKindFile,
			location: "datasets/exam.yaml",
		},
		{
			name:     "fs",
			source:   dataset.SourceFromFS("datasets/exam.yaml"),
			kind:     dataset.SourceKindFS,
			location: "datasets/exam.yaml",
		},
		{
			name:     "url",
			source:   dataset.SourceFromURL("https://example.test/exam.yaml"),
			kind:     dataset.SourceKindURL,
			location: "https://example.test/exam.yaml",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.source.Kind(); got != tc.kind {
				t.Fatalf("kind = %q, want %q", got, tc.kind)
			}
			if got := tc.source.Location(); got != tc.location {
				t.Fatalf("location = %q, want %q", got, tc.location)
			}
		})
	}
}

func TestSourceFromURLPanicsOnInvalidInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty URL")
		}
	}()
	dataset.SourceFromURL("")
}
