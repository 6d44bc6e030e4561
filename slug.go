package qbank

import (
	"strings"
	"unicode"
)

// MaxTitleSlugLength bounds the title part of a question slug, in runes.
const MaxTitleSlugLength = 80

// Slugify lower-cases s and collapses every run of non-alphanumeric
// characters into a single hyphen. Leading and trailing hyphens are dropped.
func Slugify(s string) string {
	var sb strings.Builder
	pendingHyphen := false

	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
			}
			sb.WriteRune(r)
			pendingHyphen = false
		} else {
			pendingHyphen = true
		}
	}

	return sb.String()
}

// QuestionSlug derives the catalog key of a question from its category and title.
func QuestionSlug(category, title string) string {
	t := Slugify(title)
	if runes := []rune(t); len(runes) > MaxTitleSlugLength {
		t = strings.TrimRight(string(runes[:MaxTitleSlugLength]), "-")
	}
	c := Slugify(category)
	switch {
	case c == "":
		return t
	case t == "":
		return c
	}
	return c + "-" + t
}
