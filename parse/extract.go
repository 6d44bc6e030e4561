package parse

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/qbank"
)

// Extraction thresholds.
const (
	DefaultMinTitleLength   = 3
	DefaultMinContentLength = 20
	DefaultMinAnswerLength  = 10
	DefaultMaxCodeExamples  = 3

	wordsPerMinute = 200
	minReadingTime = 3
)

var (
	numberingRe = regexp.MustCompile(`(?i)^\s*(?:(?:q|question)\s*\d+[.):]?|\d+(?:\.\d+)+[.):]?|\d+[.):])\s*`)
	metadataRe  = regexp.MustCompile(`(?i)^\s*(?:[-*+]\s+)?[*_]{0,2}(difficulty|tags|category)[*_]{0,2}\s*:\s*(.*?)\s*$`)
)

// Extractor derives a question from a single block.
type Extractor struct {
	Classifier *Classifier

	// Strategies are tried in order; the first that reports ok decides the
	// content/answer split.
	Strategies []AnswerStrategy

	MinTitleLength   int
	MinContentLength int
	MaxCodeExamples  int
}

// NewExtractor returns an Extractor with the default strategies and thresholds.
func NewExtractor(classifier *Classifier) *Extractor {
	if classifier == nil {
		classifier = NewClassifier(nil)
	}
	return &Extractor{
		Classifier:       classifier,
		Strategies:       DefaultStrategies(),
		MinTitleLength:   DefaultMinTitleLength,
		MinContentLength: DefaultMinContentLength,
		MaxCodeExamples:  DefaultMaxCodeExamples,
	}
}

// Extract builds a question from block. It returns an EINVALID error when the
// block has no usable title or too little content.
func (e *Extractor) Extract(block qbank.Block, category string, order int) (*qbank.Question, error) {
	title := CleanTitle(block.Heading)
	if utf8.RuneCountInString(title) < e.MinTitleLength {
		return nil, qbank.Errorf(qbank.EINVALID, "title %q too short", title)
	}

	_, body, _ := strings.Cut(block.Text, "\n")
	meta, body := splitMetadata(body)

	content, answer, strategy := e.split(body)
	if utf8.RuneCountInString(content) < e.MinContentLength {
		return nil, qbank.Errorf(qbank.EINVALID, "content of %q too short (%d chars)", title, utf8.RuneCountInString(content))
	}

	resolved := e.Classifier.ResolveDifficulty(meta.difficulty, title, content)
	inferred := e.Classifier.Classify(title, content, []string{category})

	return &qbank.Question{
		Slug:             qbank.QuestionSlug(category, title),
		Title:            title,
		Category:         category,
		Difficulty:       resolved.Difficulty,
		DifficultySource: resolved.Provenance,
		Tags:             mergeTags(e.Classifier.MaxTags(), category, meta.tags, inferred.Tags),
		Content:          content,
		Answer:           answer,
		CodeExample:      e.codeExample(block.Text),
		ReadingTime:      ReadingTime(block.Text),
		Order:            order,
		AnswerStrategy:   strategy,
		LowConfidence:    strategy == qbank.AnswerStrategyFallback,
	}, nil
}

// split runs the strategies in order. The identity split is used when none
// of them apply.
func (e *Extractor) split(body string) (content, answer, strategy string) {
	for _, s := range e.Strategies {
		if c, a, ok := s.Split(body); ok {
			return c, a, s.Name()
		}
	}
	content = strings.TrimSpace(body)
	return content, content, qbank.AnswerStrategyFallback
}

// codeExample joins up to MaxCodeExamples fenced spans with blank lines.
func (e *Extractor) codeExample(text string) string {
	blocks := qbank.FencedBlocks(text)
	if len(blocks) > e.MaxCodeExamples {
		blocks = blocks[:e.MaxCodeExamples]
	}
	return strings.Join(blocks, "\n\n")
}

// CleanTitle strips heading decoration: emphasis markup and leading ordinal
// numbering such as "1.", "Q3:" or "Question 4)".
func CleanTitle(heading string) string {
	t := stripEmphasis(strings.TrimSpace(heading))
	t = numberingRe.ReplaceAllString(t, "")
	return stripEmphasis(t)
}

func stripEmphasis(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	if len(s) > 4 && strings.HasPrefix(s, "__") && strings.HasSuffix(s, "__") {
		s = s[2 : len(s)-2]
	}
	s = strings.Trim(s, "* ")
	if len(s) > 2 && s[0] == '_' && s[len(s)-1] == '_' {
		s = s[1 : len(s)-1]
	}
	return strings.TrimSpace(s)
}

// ReadingTime estimates minutes to read text at 200 words per minute,
// never less than three.
func ReadingTime(text string) int {
	words := len(strings.Fields(text))
	return max(minReadingTime, int(math.Ceil(float64(words)/wordsPerMinute)))
}

type metadata struct {
	difficulty string
	tags       []string
}

// splitMetadata collects Difficulty/Tags/Category annotation lines outside
// fenced code and returns body without them.
func splitMetadata(body string) (metadata, string) {
	var (
		meta  metadata
		kept  []string
		fence qbank.FenceTracker
	)
	for _, line := range strings.Split(body, "\n") {
		if fence.Next(line) {
			kept = append(kept, line)
			continue
		}
		m := metadataRe.FindStringSubmatch(line)
		if m == nil {
			kept = append(kept, line)
			continue
		}
		value := strings.Trim(m[2], "*_` ")
		switch strings.ToLower(m[1]) {
		case "difficulty":
			if meta.difficulty == "" {
				meta.difficulty = value
			}
		case "tags":
			for _, tag := range strings.Split(value, ",") {
				if t := NormalizeTag(tag); t != "" {
					meta.tags = append(meta.tags, t)
				}
			}
		}
	}
	return meta, strings.Join(kept, "\n")
}

// NormalizeTag lower-cases a tag and strips list and markup decoration.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(tag), "#`*_[] "))
}

// mergeTags returns category first, then declared and inferred tags, without
// duplicates and at most limit tags.
func mergeTags(limit int, category string, groups ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(tag string) {
		if tag == "" || seen[tag] || len(out) >= limit {
			return
		}
		seen[tag] = true
		out = append(out, tag)
	}
	add(NormalizeTag(category))
	for _, g := range groups {
		for _, tag := range g {
			add(NormalizeTag(tag))
		}
	}
	return out
}
