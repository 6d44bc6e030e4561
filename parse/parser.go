package parse

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/fwojciec/qbank"
)

// Parser runs segmentation and extraction over whole documents.
type Parser struct {
	Segmenter *Segmenter
	Extractor *Extractor
	Logger    *slog.Logger
}

// NewParser returns a Parser splitting at depth and classifying with rules
// (the defaults when nil).
func NewParser(depth int, rules *qbank.ClassifierRules, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{
		Segmenter: NewSegmenter(depth),
		Extractor: NewExtractor(NewClassifier(rules)),
		Logger:    logger,
	}
}

// Rejection records a block that did not produce a question.
type Rejection struct {
	Line      int    `json:"line"`
	FirstLine string `json:"firstLine"`
	Err       error  `json:"-"`
	Reason    string `json:"reason"`
}

// Result holds the questions parsed from one document.
type Result struct {
	Questions []*qbank.Question
	Rejected  []Rejection
}

// Parse extracts every question in doc. Order numbers start at 1 and count
// accepted blocks only. A block that fails extraction is logged and skipped.
func (p *Parser) Parse(doc qbank.RawDocument) *Result {
	log := p.Logger.With("location", doc.Location, "category", doc.Category)
	result := &Result{}

	order := 1
	for block := range p.Segmenter.Segment(doc.Text) {
		q, err := p.extract(block, doc.Category, order)
		if err != nil {
			firstLine, _, _ := strings.Cut(block.Text, "\n")
			log.Warn("skipping block", "line", block.Line, "first_line", firstLine, "err", err)
			result.Rejected = append(result.Rejected, Rejection{
				Line:      block.Line,
				FirstLine: firstLine,
				Err:       err,
				Reason:    qbank.ErrorMessage(err),
			})
			continue
		}
		result.Questions = append(result.Questions, q)
		order++
	}

	log.Debug("parsed document", "questions", len(result.Questions), "rejected", len(result.Rejected))
	return result
}

// extract calls the Extractor, converting a panic into an EINTERNAL error so
// one malformed block cannot stop its siblings.
func (p *Parser) extract(block qbank.Block, category string, order int) (q *qbank.Question, err error) {
	defer func() {
		if r := recover(); r != nil {
			q, err = nil, qbank.Errorf(qbank.EINTERNAL, "extraction panicked: %v", r)
		}
	}()
	q, err = p.Extractor.Extract(block, category, order)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	return q, nil
}
