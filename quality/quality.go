// Package quality scores question answers against an editorial rubric.
package quality

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/qbank"
)

// Rubric points.
const (
	PointsSummary      = 15
	PointsConcept      = 20
	PointsDiagram      = 15
	PointsRealWorld    = 15
	PointsBestPractice = 10
	PointsInterviewTip = 5

	PointsOneCodeExample    = 7
	PointsTwoCodeExamples   = 15
	PointsThreeCodeExamples = 20

	MaxScore = 100
)

// RatioClass classifies the share of an answer taken up by code.
type RatioClass string

// Ratio classes.
const (
	RatioTooMuchCode   RatioClass = "too much code"
	RatioTooLittleCode RatioClass = "too little code"
	RatioBalanced      RatioClass = "well-balanced"
)

// Rubric holds the lower-case marker phrases that signal each dimension.
type Rubric struct {
	Summary       []string
	Concept       []string
	Diagram       []string
	RealWorld     []string
	BestPractices []string
	InterviewTip  []string

	// DiagramLanguages are fence info strings that hold diagrams rather than code.
	DiagramLanguages []string

	TooMuchCode   float64
	TooLittleCode float64
}

// DefaultRubric returns the built-in editorial rubric.
func DefaultRubric() *Rubric {
	return &Rubric{
		Summary:       []string{"tl;dr", "tldr", "**summary", "# summary", "summary:", "in short", "quick answer", "in a nutshell"},
		Concept:       []string{"concept", "how it works", "under the hood", "**explanation", "# explanation", "key idea"},
		Diagram:       []string{"```mermaid", "```plantuml", "diagram", "![", "┌", "└─"},
		RealWorld:     []string{"real-world", "real world", "in practice", "use case", "in production", "practical example"},
		BestPractices: []string{"best practice", "pitfall", "common mistake", "gotcha", "anti-pattern", "avoid"},
		InterviewTip:  []string{"interview tip", "💡", "interviewer", "in an interview"},

		DiagramLanguages: []string{"mermaid", "plantuml", "dot", "ascii"},

		TooMuchCode:   0.7,
		TooLittleCode: 0.1,
	}
}

// Dimensions records which rubric dimensions an answer satisfies.
type Dimensions struct {
	Summary       bool `json:"summary"`
	Concept       bool `json:"concept"`
	Diagram       bool `json:"diagram"`
	CodeExamples  int  `json:"codeExamples"`
	RealWorld     bool `json:"realWorld"`
	BestPractices bool `json:"bestPractices"`
	InterviewTip  bool `json:"interviewTip"`
}

// Report is the quality assessment of one question.
type Report struct {
	Dimensions      Dimensions `json:"dimensions"`
	CodeRatio       float64    `json:"codeRatio"`
	RatioClass      RatioClass `json:"ratioClass"`
	Score           int        `json:"score"`
	Issues          []string   `json:"issues"`
	Recommendations []string   `json:"recommendations"`
}

// Scorer evaluates answers against a Rubric.
type Scorer struct {
	rubric *Rubric
}

// NewScorer returns a Scorer for rubric, or the default rubric when nil.
func NewScorer(rubric *Rubric) *Scorer {
	if rubric == nil {
		rubric = DefaultRubric()
	}
	return &Scorer{rubric: rubric}
}

// Score assesses q's answer. Each dimension adds its points independently;
// the total is capped at MaxScore. Every missing dimension contributes an
// issue and a recommendation, and so does an unbalanced code ratio.
func (s *Scorer) Score(q *qbank.Question) *Report {
	answer := strings.ToLower(q.Answer)
	r := &Report{}

	check := func(markers []string, points int, flag *bool, issue, rec string) {
		if containsAny(answer, markers) {
			*flag = true
			r.Score += points
			return
		}
		r.Issues = append(r.Issues, issue)
		r.Recommendations = append(r.Recommendations, rec)
	}

	d := &r.Dimensions
	check(s.rubric.Summary, PointsSummary, &d.Summary,
		"missing summary",
		"Open the answer with a one or two sentence TL;DR.")
	check(s.rubric.Concept, PointsConcept, &d.Concept,
		"missing concept explanation",
		"Add a section explaining how the concept works under the hood.")
	check(s.rubric.Diagram, PointsDiagram, &d.Diagram,
		"missing diagram",
		"Add a mermaid or ASCII diagram illustrating the flow.")

	d.CodeExamples = s.countCode(q.Answer)
	switch {
	case d.CodeExamples >= 3:
		r.Score += PointsThreeCodeExamples
	case d.CodeExamples == 2:
		r.Score += PointsTwoCodeExamples
	case d.CodeExamples == 1:
		r.Score += PointsOneCodeExample
	default:
		r.Issues = append(r.Issues, "missing code examples")
		r.Recommendations = append(r.Recommendations, "Add at least one runnable code example.")
	}

	check(s.rubric.RealWorld, PointsRealWorld, &d.RealWorld,
		"missing real-world context",
		"Show where this comes up in real-world code.")
	check(s.rubric.BestPractices, PointsBestPractice, &d.BestPractices,
		"missing best practices",
		"List best practices and common pitfalls.")
	check(s.rubric.InterviewTip, PointsInterviewTip, &d.InterviewTip,
		"missing interview tip",
		"Add an interview tip on how to present this answer.")

	r.Score = min(r.Score, MaxScore)

	r.CodeRatio = codeRatio(q.Content, q.Answer)
	switch {
	case r.CodeRatio > s.rubric.TooMuchCode:
		r.RatioClass = RatioTooMuchCode
		r.Issues = append(r.Issues, "too much code relative to explanation")
		r.Recommendations = append(r.Recommendations, "Balance the code with prose explaining what it does.")
	case r.CodeRatio < s.rubric.TooLittleCode:
		r.RatioClass = RatioTooLittleCode
		r.Issues = append(r.Issues, "too little code relative to explanation")
		r.Recommendations = append(r.Recommendations, "Support the explanation with a code sample.")
	default:
		r.RatioClass = RatioBalanced
	}

	return r
}

// countCode counts fenced blocks in text that are not diagrams.
func (s *Scorer) countCode(text string) int {
	n := 0
	for _, b := range qbank.FencedBlocks(text) {
		if !slices.Contains(s.rubric.DiagramLanguages, qbank.FenceLanguage(b)) {
			n++
		}
	}
	return n
}

// codeRatio returns the share of characters inside fenced code across
// content and answer. Identical content and answer are counted once.
func codeRatio(content, answer string) float64 {
	text := content + "\n" + answer
	if content == answer {
		text = answer
	}
	total := utf8.RuneCountInString(text)
	if total == 0 {
		return 0
	}
	code := 0
	for _, b := range qbank.FencedBlocks(text) {
		code += utf8.RuneCountInString(b)
	}
	return float64(code) / float64(total)
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if m != "" && strings.Contains(text, m) {
			return true
		}
	}
	return false
}
