package main

import (
	"fmt"

	"github.com/fwojciec/qbank"
	"github.com/fwojciec/qbank/fs"
	"github.com/fwojciec/qbank/ingest"
	"github.com/fwojciec/qbank/rod"
	qslog "github.com/fwojciec/qbank/slog"
	"github.com/fwojciec/qbank/yaml"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	cfg, err := c.config()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", qbank.ErrorMessage(err))
		return err
	}

	fetcher := deps.Fetcher
	if c.Render {
		renderer, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
			fmt.Fprintf(deps.Stderr, "error: %s\n", qbank.ErrorMessage(err))
			return err
		}
		defer renderer.Close()
		fetcher = &ingest.Router{Remote: qslog.NewLoggingFetcher(renderer, deps.Logger), Local: deps.Fetcher}
	}

	imp := ingest.NewImporter(fetcher, deps.Questions, deps.Logger)
	imp.Extractor = deps.Extractor
	imp.Converter = deps.Converter
	imp.DryRun = c.DryRun
	if c.Concurrency > 0 {
		imp.Concurrency = c.Concurrency
	}
	if c.NoScore {
		imp.Scorer = nil
	}

	report, err := imp.Import(deps.Ctx, *cfg)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", qbank.ErrorMessage(err))
		return err
	}

	for _, doc := range report.Documents {
		if doc.Error != "" {
			fmt.Fprintf(deps.Stderr, "failed: %s: %s\n", doc.Location, doc.Error)
		}
	}
	if c.DryRun {
		fmt.Fprintln(deps.Stdout, "dry run: nothing was written")
	}
	fmt.Fprintln(deps.Stdout, report.Summary())

	if c.Report != "" {
		if err := fs.NewReportWriter(c.Report).Write(report); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", qbank.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "report written to %s\n", c.Report)
	}

	return nil
}

// config merges the configuration file, if any, with the command-line flags.
// Flags win; sources from both are combined.
func (c *ImportCmd) config() (*qbank.Config, error) {
	cfg := &qbank.Config{}
	if c.Config != "" {
		loaded, err := yaml.LoadConfig(c.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	for _, s := range c.Source {
		src, err := qbank.ParseSource(s)
		if err != nil {
			return nil, err
		}
		cfg.Sources = append(cfg.Sources, src)
	}
	if c.Mode != "" {
		cfg.Mode = qbank.Mode(c.Mode)
	}
	if c.Depth != 0 {
		cfg.BoundaryDepth = c.Depth
	}
	if c.Rules != "" {
		rules, err := yaml.LoadRules(c.Rules)
		if err != nil {
			return nil, err
		}
		cfg.Rules = rules
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
