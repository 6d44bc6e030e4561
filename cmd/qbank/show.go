package main

import (
	"fmt"

	"github.com/fwojciec/qbank"
	"github.com/fwojciec/qbank/fs"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	q, err := deps.Questions.FindQuestionBySlug(deps.Ctx, c.Slug)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", qbank.ErrorMessage(err))
		return err
	}

	out, err := fs.FormatQuestion(q)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", qbank.ErrorMessage(err))
		return err
	}
	fmt.Fprint(deps.Stdout, out)

	return nil
}
