package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-quizgen"
	"github.com/goliatone/go-quizgen/pkg/dataset"
	"github.com/goliatone/go-quizgen/pkg/formhost/memhost"
	"github.com/goliatone/go-quizgen/pkg/orchestrator"
	"github.com/goliatone/go-quizgen/pkg/renderers/tui"
)

func main() {
	source := flag.String("source", "examples/fixtures/exam.yaml", "dataset document path or URL")
	renderer := flag.String("renderer", "script", "renderer to use (script, html)")
	output := flag.String("output", "", "output file (stdout if empty)")
	publishFlag := flag.Bool("publish", false, "publish against the recording host and report the call plan")
	play := flag.Bool("play", false, "run the quiz interactively in the terminal instead of rendering")
	printHandler := flag.Bool("print-handler", false, "log the generated submit-handler text")
	flag.Parse()

	ctx := context.Background()

	src := parseSource(*source)
	if src == nil {
		log.Fatalf("invalid source: %q", *source)
	}

	if *play {
		runInteractive(ctx, src)
		return
	}

	var options []orchestrator.Option
	host := memhost.New()
	if *publishFlag {
		options = append(options, orchestrator.WithHost(host))
	}

	gen := quizgen.NewOrchestrator(options...)

	result, err := gen.Generate(ctx, orchestrator.Request{
		Source:   src,
		Renderer: *renderer,
		Publish:  *publishFlag,
	})
	if err != nil {
		log.Fatalf("Failed to generate form: %v", err)
	}

	if *printHandler {
		log.Printf("submit handler (not installed):\n%s", result.HandlerScript)
	}
	if *publishFlag {
		fmt.Printf("Published form: %s\n", result.PublishedURL)
		fmt.Printf("Host calls: %s\n", strings.Join(host.Ops(), ", "))
	}

	if *output != "" {
		if err := os.WriteFile(*output, result.Output, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
	} else {
		fmt.Println(string(result.Output))
	}
}

func runInteractive(ctx context.Context, src dataset.Source) {
	loader := quizgen.NewLoader(dataset.WithHTTPFallback(0))
	doc, err := loader.Load(ctx, src)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	q, err := quizgen.NewParser().Parse(ctx, doc)
	if err != nil {
		log.Fatalf("Failed to parse dataset: %v", err)
	}

	result, err := tui.NewRunner().Run(ctx, q)
	if err != nil {
		log.Fatalf("Quiz session failed: %v", err)
	}
	fmt.Printf("Final score: %d (%d/%d)\n", result.Score, result.Correct, result.Total)
}

func parseSource(raw string) dataset.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return dataset.SourceFromURL(path)
	}
	return dataset.SourceFromFile(path)
}
