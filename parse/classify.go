package parse

import (
	"strings"

	"github.com/fwojciec/qbank"
)

// Classifier infers difficulty and tags from keyword tables.
type Classifier struct {
	rules *qbank.ClassifierRules
}

// NewClassifier returns a Classifier over rules, or the default rules when nil.
func NewClassifier(rules *qbank.ClassifierRules) *Classifier {
	if rules == nil {
		rules = qbank.DefaultClassifierRules()
	}
	return &Classifier{rules: rules}
}

// MaxTags returns the most tags a question may carry, category included.
func (c *Classifier) MaxTags() int { return c.rules.MaxTags }

// Classification is the result of inference over a question's text.
type Classification struct {
	Difficulty qbank.Difficulty

	// Signal is the keyword or phrase that decided Difficulty, empty for the default.
	Signal string

	// Tags starts with the normalized related phrases, followed by inferred tags.
	Tags []string
}

// Classify infers difficulty and tags. Hard signals win over easy signals;
// medium is the default. Related phrases (typically the category) are kept
// as the leading tags; inferred tags are added after them up to MaxTags.
func (c *Classifier) Classify(title, content string, related []string) Classification {
	lowerTitle := strings.ToLower(title)
	lowerText := lowerTitle + "\n" + strings.ToLower(content)

	difficulty, signal := c.inferDifficulty(lowerTitle, lowerText)
	return Classification{
		Difficulty: difficulty,
		Signal:     signal,
		Tags:       c.inferTags(lowerText, related),
	}
}

// Resolution is a difficulty together with where it came from.
type Resolution struct {
	Difficulty qbank.Difficulty
	Provenance qbank.Provenance
}

// ResolveDifficulty returns the declared difficulty when it is recognized and
// infers one from title and content otherwise.
func (c *Classifier) ResolveDifficulty(declared, title, content string) Resolution {
	if d, ok := qbank.ParseDifficulty(declared); ok {
		return Resolution{Difficulty: d, Provenance: qbank.ProvenanceDeclared}
	}
	lowerTitle := strings.ToLower(title)
	d, _ := c.inferDifficulty(lowerTitle, lowerTitle+"\n"+strings.ToLower(content))
	return Resolution{Difficulty: d, Provenance: qbank.ProvenanceInferred}
}

func (c *Classifier) inferDifficulty(lowerTitle, lowerText string) (qbank.Difficulty, string) {
	scope := func(g qbank.KeywordGroup) string {
		if g.TitleOnly {
			return lowerTitle
		}
		return lowerText
	}
	for _, g := range c.rules.Hard {
		if kw := g.Match(scope(g)); kw != "" {
			return qbank.DifficultyHard, kw
		}
	}
	for _, g := range c.rules.Easy {
		if kw := g.Match(scope(g)); kw != "" {
			return qbank.DifficultyEasy, kw
		}
	}
	if c.rules.ShortTitleMaxWords > 0 && len(strings.Fields(lowerTitle)) <= c.rules.ShortTitleMaxWords {
		for _, p := range c.rules.ShortTitlePrefixes {
			if strings.HasPrefix(lowerTitle, p) {
				return qbank.DifficultyEasy, p
			}
		}
	}
	return qbank.DifficultyMedium, ""
}

func (c *Classifier) inferTags(lowerText string, related []string) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, r := range related {
		if t := NormalizeTag(r); t != "" && !seen[t] {
			seen[t] = true
			tags = append(tags, t)
		}
	}
	for _, rule := range c.rules.Tags {
		if len(tags) >= c.rules.MaxTags {
			break
		}
		tag := NormalizeTag(rule.Tag)
		if seen[tag] {
			continue
		}
		for _, trigger := range rule.Triggers {
			if strings.Contains(lowerText, strings.ToLower(trigger)) {
				seen[tag] = true
				tags = append(tags, tag)
				break
			}
		}
	}
	return tags
}
