package parse

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/qbank"
)

// AnswerStrategy splits a block body into question content and answer.
type AnswerStrategy interface {
	// Name identifies the strategy in extracted questions.
	Name() string

	// Split returns ok=false when the body does not follow the strategy's convention.
	Split(body string) (content, answer string, ok bool)
}

// DefaultStrategies returns the collapsible-marker strategy followed by the
// heading-split strategy.
func DefaultStrategies() []AnswerStrategy {
	return []AnswerStrategy{
		&DetailsStrategy{},
		&HeadingStrategy{MinAnswerLength: DefaultMinAnswerLength},
	}
}

var (
	detailsRe       = regexp.MustCompile(`(?is)<details[^>]*>\s*<summary[^>]*>(.*?)</summary>(.*?)</details>`)
	answerSummaryRe = regexp.MustCompile(`(?i)\b(answer|solution)s?\b`)
)

// DetailsStrategy handles answers wrapped in a <details><summary>...</summary>
// ...</details> construct. Content is everything before the opening tag and
// the answer is the body of the construct.
type DetailsStrategy struct{}

// Name implements AnswerStrategy.
func (s *DetailsStrategy) Name() string { return qbank.AnswerStrategyDetails }

// Split implements AnswerStrategy. A construct whose summary mentions an
// answer or solution is preferred over the first construct in the body.
// Constructs inside fenced code are ignored.
func (s *DetailsStrategy) Split(body string) (string, string, bool) {
	matches := detailsRe.FindAllStringSubmatchIndex(maskFences(body), -1)
	if len(matches) == 0 {
		return "", "", false
	}
	m := matches[0]
	for _, cand := range matches {
		if answerSummaryRe.MatchString(body[cand[2]:cand[3]]) {
			m = cand
			break
		}
	}
	answer := strings.TrimSpace(body[m[4]:m[5]])
	if answer == "" {
		return "", "", false
	}
	return strings.TrimSpace(body[:m[0]]), answer, true
}

// maskFences blanks every byte of fenced code spans except newlines, so
// offsets into the result are offsets into body.
func maskFences(body string) string {
	var (
		out   = []byte(body)
		fence qbank.FenceTracker
		off   int
	)
	for _, line := range strings.SplitAfter(body, "\n") {
		if fence.Next(strings.TrimSuffix(line, "\n")) {
			for i := off; i < off+len(line); i++ {
				if out[i] != '\n' {
					out[i] = ' '
				}
			}
		}
		off += len(line)
	}
	return string(out)
}

var (
	answerHeadingRe = regexp.MustCompile(`(?i)^\s{0,3}#{1,6}\s+.*\b(answer|solution)s?\b`)
	inlineAnswerRe  = regexp.MustCompile(`(?i)^\s{0,3}#{1,6}\s+(?:the\s+)?(?:answer|solution)s?\s*[:\-]\s*(.*?)[\s#]*$`)
	answerLabelRe   = regexp.MustCompile(`(?i)^\s*(\*\*|__)[^*_]*\b(answer|solution)s?\b[^*_]*(\*\*|__)\s*:?\s*$`)
)

// HeadingStrategy splits at the first heading (or bold label line) that
// mentions "Answer" or "Solution". Text after a label such as "Answer:" on
// the heading line starts the answer. Headings inside fenced code are ignored.
type HeadingStrategy struct {
	// MinAnswerLength is the shortest answer, in characters, that counts as a split.
	MinAnswerLength int
}

// Name implements AnswerStrategy.
func (s *HeadingStrategy) Name() string { return qbank.AnswerStrategyHeading }

// Split implements AnswerStrategy.
func (s *HeadingStrategy) Split(body string) (string, string, bool) {
	lines := strings.Split(body, "\n")
	var fence qbank.FenceTracker
	for i, line := range lines {
		if fence.Next(line) {
			continue
		}
		if !answerHeadingRe.MatchString(line) && !answerLabelRe.MatchString(line) {
			continue
		}
		content := strings.TrimSpace(strings.Join(lines[:i], "\n"))
		answer := strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
		if m := inlineAnswerRe.FindStringSubmatch(line); m != nil && m[1] != "" {
			answer = strings.TrimSpace(m[1] + "\n" + answer)
		}
		if utf8.RuneCountInString(answer) < s.MinAnswerLength {
			return "", "", false
		}
		return content, answer, true
	}
	return "", "", false
}
