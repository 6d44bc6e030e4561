package quality_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/qbank"
	"github.com/fwojciec/qbank/quality"
	"github.com/stretchr/testify/assert"
)

func TestScorer_Score(t *testing.T) {
	t.Parallel()

	s := quality.NewScorer(nil)

	t.Run("one code block plus real-world context scores 22", func(t *testing.T) {
		t.Parallel()

		q := &qbank.Question{
			Content: "How would you total a shopping cart?",
			Answer: "Consider a real-world checkout flow where items are summed.\n" +
				"```js\nconst total = items.reduce((a, b) => a + b, 0);\n```\n" +
				"Reduce folds the list into one value.",
		}

		r := s.Score(q)

		assert.Equal(t, 22, r.Score)
		assert.Equal(t, 1, r.Dimensions.CodeExamples)
		assert.True(t, r.Dimensions.RealWorld)
		assert.False(t, r.Dimensions.Summary)
		assert.Contains(t, r.Issues, "missing summary")
		assert.Contains(t, r.Issues, "missing concept explanation")
		assert.Contains(t, r.Issues, "missing diagram")
		assert.Contains(t, r.Issues, "missing best practices")
		assert.NotContains(t, r.Issues, "missing real-world context")
		assert.NotContains(t, r.Issues, "missing code examples")
		assert.Len(t, r.Recommendations, len(r.Issues))
	})

	t.Run("complete answer reaches the maximum", func(t *testing.T) {
		t.Parallel()

		code := "```js\nlet x = 1;\n```\n"
		q := &qbank.Question{
			Content: "Explain closures.",
			Answer: "**TL;DR** functions remember scope.\n" +
				"## How it works\nThe engine keeps the environment alive, and this explanation goes on for a while.\n" +
				"```mermaid\ngraph TD; A-->B\n```\n" +
				code + code + code +
				"In practice this powers module patterns.\n" +
				"Best practice: avoid capturing large objects.\n" +
				"Interview tip: mention memory retention.",
		}

		r := s.Score(q)

		assert.Equal(t, quality.MaxScore, r.Score)
		assert.Equal(t, 3, r.Dimensions.CodeExamples, "mermaid fence is a diagram, not code")
		assert.True(t, r.Dimensions.Diagram)
		assert.True(t, r.Dimensions.InterviewTip)
		assert.NotContains(t, r.Issues, "missing summary")
	})

	t.Run("code tiers", func(t *testing.T) {
		t.Parallel()

		block := "```\nx\n```\n"
		for n, want := range map[int]int{0: 0, 1: 7, 2: 15, 3: 20, 5: 20} {
			q := &qbank.Question{Answer: "plain prose\n" + strings.Repeat(block, n)}
			assert.Equal(t, want, s.Score(q).Score, "%d code blocks", n)
		}
	})

	t.Run("flags too much code", func(t *testing.T) {
		t.Parallel()

		q := &qbank.Question{
			Content: "Q?",
			Answer:  "```js\n" + strings.Repeat("doSomething();\n", 20) + "```",
		}

		r := s.Score(q)

		assert.Equal(t, quality.RatioTooMuchCode, r.RatioClass)
		assert.Greater(t, r.CodeRatio, 0.7)
		assert.Contains(t, r.Issues, "too much code relative to explanation")
	})

	t.Run("flags too little code", func(t *testing.T) {
		t.Parallel()

		q := &qbank.Question{Content: "Explain it.", Answer: strings.Repeat("Prose only. ", 30)}

		r := s.Score(q)

		assert.Equal(t, quality.RatioTooLittleCode, r.RatioClass)
		assert.Zero(t, r.CodeRatio)
		assert.Contains(t, r.Issues, "too little code relative to explanation")
		assert.Contains(t, r.Issues, "missing code examples")
	})

	t.Run("balanced answer has no ratio issue", func(t *testing.T) {
		t.Parallel()

		q := &qbank.Question{
			Content: "Show a loop.",
			Answer:  "A for loop repeats work while a condition holds.\n```js\nfor (let i = 0; i < 3; i++) {}\n```",
		}

		r := s.Score(q)

		assert.Equal(t, quality.RatioBalanced, r.RatioClass)
		for _, issue := range r.Issues {
			assert.NotContains(t, issue, "relative to explanation")
		}
	})

	t.Run("uses a custom rubric", func(t *testing.T) {
		t.Parallel()

		rubric := quality.DefaultRubric()
		rubric.Summary = []string{"abstract:"}

		r := quality.NewScorer(rubric).Score(&qbank.Question{Answer: "Abstract: short version."})

		assert.True(t, r.Dimensions.Summary)
		assert.Equal(t, quality.PointsSummary, r.Score)
	})
}
