package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/qbank"
	"github.com/fwojciec/qbank/fs"
)

// Run executes the export command. Files are written to a temporary
// directory that replaces Dir only once every question has been saved.
func (c *ExportCmd) Run(deps *Dependencies) error {
	filter := qbank.QuestionFilter{}
	if c.Category != "" {
		filter.Category = &c.Category
	}

	questions, err := deps.Questions.FindQuestions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", qbank.ErrorMessage(err))
		return err
	}

	dir := filepath.Clean(c.Dir)
	exp := fs.NewExporter(filepath.Dir(dir), filepath.Base(dir))
	for _, q := range questions {
		if err := exp.Save(deps.Ctx, q); err != nil {
			_ = exp.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s\n", qbank.ErrorMessage(err))
			return err
		}
	}
	if err := exp.Commit(); err != nil {
		_ = exp.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", qbank.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "exported %d questions to %s\n", len(questions), exp.Path())
	return nil
}
