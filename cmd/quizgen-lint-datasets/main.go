package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-quizgen"
	"github.com/goliatone/go-quizgen/pkg/dataset"
	"github.com/goliatone/go-quizgen/pkg/quiz"
)

type finding struct {
	file     string
	location string
	message  string
}

func main() {
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [paths...]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nLint quiz dataset documents for format defects.\n"); err != nil {
			panic(err)
		}
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"examples/fixtures/exam.yaml"}
	}

	ctx := context.Background()
	parser := quizgen.NewParser()

	var findings []finding
	for _, path := range paths {
		linted, err := lintFile(ctx, parser, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", path, err)
			os.Exit(1)
		}
		findings = append(findings, linted...)
	}

	if len(findings) > 0 {
		sort.Slice(findings, func(i, j int) bool {
			if findings[i].file == findings[j].file {
				if findings[i].location == findings[j].location {
					return findings[i].message < findings[j].message
				}
				return findings[i].location < findings[j].location
			}
			return findings[i].file < findings[j].file
		})
		for _, f := range findings {
			fmt.Fprintf(os.Stderr, "%s: %s -> %s\n", f.file, f.location, f.message)
		}
		os.Exit(1)
	}
}

func lintFile(ctx context.Context, parser dataset.Parser, path string) ([]finding, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	doc, err := dataset.NewDocument(dataset.SourceFromFile(path), raw)
	if err != nil {
		return nil, fmt.Errorf("construct document: %w", err)
	}

	q, err := parser.Parse(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	var result []finding
	add := func(location, message string) {
		result = append(result, finding{file: path, location: location, message: message})
	}

	if err := q.Key.Validate(len(q.Questions)); err != nil {
		add("answerKey", err.Error())
	}
	if len(q.Key) == 0 && len(q.Questions) > 0 {
		add("answerKey", "no answers recorded; generated handler will never score a match")
	}

	for i, question := range q.Questions {
		location := fmt.Sprintf("question %d", i+1)
		if question.OptionA == quiz.OptionPlaceholder || question.OptionB == quiz.OptionPlaceholder {
			add(location, "placeholder value in a required option slot")
		}
		if question.OptionC == quiz.OptionPlaceholder && question.OptionD != quiz.OptionPlaceholder {
			add(location, "option D is set but option C is a placeholder")
		}
		switch question.Difficulty {
		case "", quiz.DifficultyEasy, quiz.DifficultyMedium:
		default:
			add(location, fmt.Sprintf("unrecognised difficulty label %q", question.Difficulty))
		}
		if strings.Contains(question.Title, quiz.OptionPlaceholder) {
			add(location, "title contains a placeholder token")
		}
	}

	return result, nil
}
