package main

import (
	"fmt"

	"github.com/fwojciec/qbank"
	"github.com/fwojciec/qbank/ingest"
	"github.com/fwojciec/qbank/quality"
	"github.com/fwojciec/qbank/yaml"
)

// Run executes the parse command. It runs the import pipeline for a single
// document without a catalog and prints what would be stored.
func (c *ParseCmd) Run(deps *Dependencies) error {
	cfg := qbank.Config{
		Sources:       []qbank.Source{{Location: c.File, Category: c.Category}},
		BoundaryDepth: c.Depth,
	}
	if c.Rules != "" {
		rules, err := yaml.LoadRules(c.Rules)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", qbank.ErrorMessage(err))
			return err
		}
		cfg.Rules = rules
	}

	imp := &ingest.Importer{
		Fetcher:   deps.Fetcher,
		Extractor: deps.Extractor,
		Converter: deps.Converter,
		Scorer:    quality.NewScorer(nil),
		DryRun:    true,
		Logger:    deps.Logger,
	}
	report, err := imp.Import(deps.Ctx, cfg)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", qbank.ErrorMessage(err))
		return err
	}

	doc := report.Documents[0]
	if doc.Error != "" {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doc.Error)
		return qbank.Errorf(qbank.EUNAVAILABLE, "%s", doc.Error)
	}

	if len(doc.Questions) == 0 {
		fmt.Fprintln(deps.Stdout, "No questions found.")
	}
	for _, q := range doc.Questions {
		fmt.Fprintf(deps.Stdout, "%2d  %-6s  %3d  %s\n", q.Order, q.Difficulty, q.Quality.Score, q.Slug)
		fmt.Fprintf(deps.Stdout, "    %s\n", q.Title)
		for _, issue := range q.Quality.Issues {
			fmt.Fprintf(deps.Stdout, "    - %s\n", issue)
		}
	}
	for _, r := range doc.Rejected {
		fmt.Fprintf(deps.Stderr, "rejected: line %d: %s (%s)\n", r.Line, r.FirstLine, r.Reason)
	}

	return nil
}
