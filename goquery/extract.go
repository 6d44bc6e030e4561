// Package goquery reduces HTML pages to their main content using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/qbank"
)

var _ qbank.Extractor = (*Extractor)(nil)

// siteSelectors lists the main-content selectors for each recognized site,
// most specific first.
var siteSelectors = map[Site][]string{
	SiteGitHub:     {"article.markdown-body", ".markdown-body"},
	SiteDocusaurus: {".theme-doc-markdown", "article .markdown"},
	SiteMkDocs:     {".md-content__inner", ".md-content"},
	SiteSphinx:     {"div[role='main']", ".body", ".document"},
	SiteVitePress:  {".vp-doc", ".VPDoc"},
	SiteVuePress:   {".theme-default-content"},
}

// genericSelectors are tried after the site-specific ones.
var genericSelectors = []string{"main article", "article", "main", "[role='main']", "#content", ".content", "body"}

// chrome is removed from the selected content.
const chrome = "script, style, noscript, nav, header, footer, aside, form, button, .toc, .sidebar, .anchor, .headerlink"

// Extractor selects the main content of an HTML page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page title and the HTML of its main content with
// navigation and other chrome removed. Returns EINVALID when the page has
// no text content.
func (e *Extractor) Extract(html string) (*qbank.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, qbank.Errorf(qbank.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	selectors := append(append([]string{}, siteSelectors[Detect(doc)]...), genericSelectors...)
	for _, selector := range selectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		sel.Find(chrome).Remove()
		if strings.TrimSpace(sel.Text()) == "" {
			continue
		}
		content, err := sel.Html()
		if err != nil {
			return nil, qbank.Errorf(qbank.EINVALID, "failed to render content: %v", err)
		}
		return &qbank.ExtractResult{Title: title, ContentHTML: strings.TrimSpace(content)}, nil
	}

	return nil, qbank.Errorf(qbank.EINVALID, "page has no content")
}
