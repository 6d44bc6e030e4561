package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Site identifies the generator or host that rendered a page.
type Site string

// Recognized sites.
const (
	SiteUnknown    Site = ""
	SiteGitHub     Site = "github"
	SiteDocusaurus Site = "docusaurus"
	SiteMkDocs     Site = "mkdocs"
	SiteSphinx     Site = "sphinx"
	SiteVitePress  Site = "vitepress"
	SiteVuePress   Site = "vuepress"
)

// Detect identifies the site that rendered doc from its meta generator tag
// or, failing that, from markup unique to each generator.
func Detect(doc *goquery.Document) Site {
	if site := detectFromMetaGenerator(doc); site != SiteUnknown {
		return site
	}

	switch {
	case has(doc, "article.markdown-body"), has(doc, "meta[property='og:site_name'][content='GitHub']"):
		return SiteGitHub
	case has(doc, "#__docusaurus_skipToContent_fallback"), has(doc, ".theme-doc-markdown"):
		return SiteDocusaurus
	case has(doc, "[data-md-component]"), has(doc, ".md-content"):
		return SiteMkDocs
	case has(doc, ".wy-nav-content"), has(doc, ".sphinxsidebar"), has(doc, ".toctree-wrapper"):
		return SiteSphinx
	case has(doc, "#VPContent"), has(doc, ".VPDoc"):
		return SiteVitePress
	case has(doc, ".theme-default-content"):
		return SiteVuePress
	}
	return SiteUnknown
}

func detectFromMetaGenerator(doc *goquery.Document) Site {
	generator, _ := doc.Find("meta[name='generator']").Last().Attr("content")
	generator = strings.ToLower(generator)

	switch {
	case generator == "":
		return SiteUnknown
	case strings.Contains(generator, "docusaurus"):
		return SiteDocusaurus
	case strings.Contains(generator, "mkdocs"):
		return SiteMkDocs
	case strings.Contains(generator, "sphinx"):
		return SiteSphinx
	case strings.Contains(generator, "vitepress"):
		return SiteVitePress
	case strings.Contains(generator, "vuepress"):
		return SiteVuePress
	}
	return SiteUnknown
}

func has(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
