// Package htmltomarkdown converts extracted HTML pages back into the
// markdown the parser reads.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/qbank"
)

// Ensure Converter implements qbank.Converter at compile time.
var _ qbank.Converter = (*Converter)(nil)

// AnswerHeading replaces the summary of a collapsible answer.
const AnswerHeading = "<h4>Answer</h4>"

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown. Collapsible
// <details><summary> answers become an "Answer" heading followed by their
// body so the answer split survives conversion.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", qbank.Errorf(qbank.EINVALID, "empty HTML input")
	}

	html, err := openDetails(html)
	if err != nil {
		return "", err
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}

func openDetails(html string) (string, error) {
	if !strings.Contains(html, "<details") {
		return html, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", qbank.Errorf(qbank.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("details").Each(func(_ int, s *goquery.Selection) {
		s.ChildrenFiltered("summary").First().ReplaceWithHtml(AnswerHeading)
		s.Contents().Unwrap()
	})

	return doc.Find("body").Html()
}
