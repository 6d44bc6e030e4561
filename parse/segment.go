// Package parse turns study-document markdown into questions: the Segmenter
// splits a document into blocks, the Extractor derives question fields from
// each block, and the Classifier infers metadata the author left out.
package parse

import (
	"iter"
	"regexp"
	"strings"

	"github.com/fwojciec/qbank"
)

// DefaultMinBlockLines is the minimum number of non-blank lines, heading
// included, a block needs to be considered a question.
const DefaultMinBlockLines = 3

// DefaultSkipHeadings are section headings that never introduce a question.
var DefaultSkipHeadings = []string{
	"table of contents",
	"contents",
	"toc",
	"introduction",
	"intro",
	"overview",
	"glossary",
	"conclusion",
	"closing remarks",
	"final thoughts",
	"wrapping up",
	"references",
	"further reading",
	"resources",
}

// Segmenter splits a document into question blocks at headings of a fixed depth.
type Segmenter struct {
	// Depth is the heading level that starts a question (2 for "##", 3 for "###").
	Depth int

	MinLines     int
	SkipHeadings []string
}

// NewSegmenter returns a Segmenter splitting at the given heading depth.
func NewSegmenter(depth int) *Segmenter {
	return &Segmenter{
		Depth:        depth,
		MinLines:     DefaultMinBlockLines,
		SkipHeadings: DefaultSkipHeadings,
	}
}

// Segment splits text at the default settings for depth.
func Segment(text string, depth int) iter.Seq[qbank.Block] {
	return NewSegmenter(depth).Segment(text)
}

// Segment returns the question blocks of text in document order.
//
// A heading at Depth opens a block; a shallower heading closes it and starts
// a region that is ignored until the next boundary. Answer headings at or
// above Depth stay inside the open block. Headings inside fenced code never
// count. Blocks with a non-question heading or fewer than MinLines
// non-blank lines are dropped. Each iteration rescans text.
func (s *Segmenter) Segment(text string) iter.Seq[qbank.Block] {
	return func(yield func(qbank.Block) bool) {
		if strings.TrimSpace(text) == "" {
			return
		}
		lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

		var (
			current []string
			start   int
			fence   qbank.FenceTracker
		)
		flush := func() bool {
			if current == nil {
				return true
			}
			b := qbank.Block{
				Heading: current[0],
				Text:    strings.TrimRight(strings.Join(current, "\n"), " \t\n"),
				Line:    start,
			}
			current = nil
			if !s.keep(b) {
				return true
			}
			return yield(b)
		}

		for i, line := range lines {
			if fence.Next(line) {
				if current != nil {
					current = append(current, line)
				}
				continue
			}

			level, heading := parseHeading(line)
			switch {
			case level > 0 && level <= s.Depth && isAnswerHeading(heading):
				if current != nil {
					current = append(current, line)
				}
			case level == s.Depth:
				if !flush() {
					return
				}
				current = []string{heading}
				start = i + 1
			case level > 0 && level < s.Depth:
				if !flush() {
					return
				}
			case current != nil:
				current = append(current, line)
			}
		}
		flush()
	}
}

// keep reports whether a block is long enough and not a known non-question section.
func (s *Segmenter) keep(b qbank.Block) bool {
	name := normalizeHeading(b.Heading)
	for _, skip := range s.SkipHeadings {
		if name == skip {
			return false
		}
	}

	n := 0
	for _, line := range strings.Split(b.Text, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n >= s.MinLines
}

// parseHeading returns the ATX heading level of line and its text with the
// marker and any closing hashes removed. Level is 0 for non-heading lines.
func parseHeading(line string) (int, string) {
	indent := len(line) - len(strings.TrimLeft(line, " "))
	if indent > 3 {
		return 0, ""
	}
	rest := line[indent:]
	level := 0
	for level < len(rest) && rest[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0, ""
	}
	rest = rest[level:]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return 0, ""
	}
	rest = strings.TrimSpace(rest)
	if trimmed := strings.TrimRight(rest, "#"); trimmed == "" || strings.HasSuffix(trimmed, " ") {
		rest = strings.TrimSpace(trimmed)
	}
	return level, rest
}

// normalizeHeading lower-cases a heading and strips numbering, emphasis and
// trailing punctuation so it can be compared against DefaultSkipHeadings.
func normalizeHeading(heading string) string {
	h := strings.ToLower(CleanTitle(heading))
	return strings.TrimRight(h, ":.!? ")
}

var answerLabelHeadingRe = regexp.MustCompile(`^(?:the\s+)?(?:answer|solution|explanation)s?(?:$|\s*[:(\-\x{2013}\x{2014}])`)

// isAnswerHeading reports whether a heading labels an answer section, e.g.
// "Answer", "Solution:" or "Answer: hoisting moves declarations".
func isAnswerHeading(heading string) bool {
	return answerLabelHeadingRe.MatchString(normalizeHeading(heading))
}
