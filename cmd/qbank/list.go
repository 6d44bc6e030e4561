package main

import (
	"fmt"

	"github.com/fwojciec/qbank"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := qbank.QuestionFilter{Offset: c.Offset, Limit: c.Limit}
	if c.Category != "" {
		filter.Category = &c.Category
	}
	if c.Difficulty != "" {
		d, ok := qbank.ParseDifficulty(c.Difficulty)
		if !ok {
			err := qbank.Errorf(qbank.EINVALID, "unknown difficulty %q", c.Difficulty)
			fmt.Fprintf(deps.Stderr, "error: %s\n", qbank.ErrorMessage(err))
			return err
		}
		filter.Difficulty = &d
	}

	questions, err := deps.Questions.FindQuestions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", qbank.ErrorMessage(err))
		return err
	}

	if len(questions) == 0 {
		fmt.Fprintln(deps.Stdout, "No questions found. Use 'qbank import' to add some.")
		return nil
	}

	for _, q := range questions {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", q.Slug, q.Difficulty, formatScore(q.QualityScore), q.Title)
	}

	return nil
}

func formatScore(score *int) string {
	if score == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *score)
}
