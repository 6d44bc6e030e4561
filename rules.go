package qbank

import "strings"

// KeywordGroup is a named list of lower-case trigger substrings.
type KeywordGroup struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`

	// TitleOnly restricts matching to the title instead of title and content.
	TitleOnly bool `yaml:"titleOnly,omitempty"`
}

// Match returns the first keyword of the group found in text, or "".
// Text is expected to be lower-cased.
func (g KeywordGroup) Match(text string) string {
	for _, kw := range g.Keywords {
		if kw != "" && strings.Contains(text, kw) {
			return kw
		}
	}
	return ""
}

// TagRule adds Tag when any trigger substring appears in a question's text.
type TagRule struct {
	Tag      string   `yaml:"tag"`
	Triggers []string `yaml:"triggers"`
}

// ClassifierRules are the keyword tables used to infer difficulty and tags
// when a question does not declare them.
type ClassifierRules struct {
	// Hard groups are checked before Easy groups; medium is the default.
	Hard []KeywordGroup `yaml:"hard"`
	Easy []KeywordGroup `yaml:"easy"`

	// ShortTitlePrefixes mark a title as easy when it starts with one of
	// them and has at most ShortTitleMaxWords words ("what is X?").
	ShortTitlePrefixes []string `yaml:"shortTitlePrefixes"`
	ShortTitleMaxWords int      `yaml:"shortTitleMaxWords"`

	Tags    []TagRule `yaml:"tags"`
	MaxTags int       `yaml:"maxTags"`
}

// Validate returns an EINVALID error if the rules are unusable.
func (r *ClassifierRules) Validate() error {
	if r.MaxTags < 1 {
		return Errorf(EINVALID, "rules: maxTags must be at least 1")
	}
	for _, groups := range [][]KeywordGroup{r.Hard, r.Easy} {
		for _, g := range groups {
			if len(g.Keywords) == 0 {
				return Errorf(EINVALID, "rules: keyword group %q has no keywords", g.Name)
			}
		}
	}
	for _, t := range r.Tags {
		if strings.TrimSpace(t.Tag) == "" {
			return Errorf(EINVALID, "rules: tag rule without a tag")
		}
		if len(t.Triggers) == 0 {
			return Errorf(EINVALID, "rules: tag %q has no triggers", t.Tag)
		}
	}
	return nil
}

// DefaultClassifierRules returns the built-in tables, tuned for JavaScript
// interview material.
func DefaultClassifierRules() *ClassifierRules {
	return &ClassifierRules{
		Hard: []KeywordGroup{
			{Name: "engine-internals", Keywords: []string{
				"event loop", "call stack", "microtask", "macrotask", "v8", "jit compil",
				"hidden class", "garbage collect", "memory leak", "performance optimization",
			}},
			{Name: "concurrency", Keywords: []string{
				"race condition", "debounc", "throttl", "concurren", "web worker",
				"deadlock", "promise.all", "promise.race", "async iterator",
			}},
			{Name: "advanced-language", Keywords: []string{
				"generator", "proxy", "reflect", "weakmap", "weakref", "symbol.",
				"prototype chain", "metaprogramming", "currying", "tail call", "memoiz",
			}},
			{Name: "security", Keywords: []string{
				"xss", "csrf", "cross-site", "injection", "sanitiz", "content security policy",
			}},
		},
		Easy: []KeywordGroup{
			{Name: "fundamentals", TitleOnly: true, Keywords: []string{
				"basic", "fundamental", "introduction", "beginner", "difference between",
			}},
			{Name: "data-types", TitleOnly: true, Keywords: []string{
				"data type", "typeof", "operator", "variable", "string", "boolean",
				"null", "undefined", "comment", "var, let", "let and const",
			}},
		},
		ShortTitlePrefixes: []string{"what is", "what are", "what does", "define"},
		ShortTitleMaxWords: 6,
		Tags: []TagRule{
			{Tag: "closures", Triggers: []string{"closure"}},
			{Tag: "scope", Triggers: []string{"scope", "hoisting", "lexical"}},
			{Tag: "async", Triggers: []string{"async", "await", "promise", "callback", "event loop"}},
			{Tag: "prototypes", Triggers: []string{"prototype", "inheritance"}},
			{Tag: "this-binding", Triggers: []string{"this keyword", "`this`", ".bind(", ".call(", ".apply("}},
			{Tag: "types", Triggers: []string{"typeof", "data type", "coercion", "instanceof"}},
			{Tag: "arrays", Triggers: []string{"array", ".map(", ".filter(", ".reduce("}},
			{Tag: "objects", Triggers: []string{"object", "destructur"}},
			{Tag: "dom", Triggers: []string{"the dom", "dom element", "dom node", "document.", "addeventlistener", "bubbling"}},
			{Tag: "es6", Triggers: []string{"arrow function", "template literal", "spread operator", "rest parameter"}},
			{Tag: "performance", Triggers: []string{"performance", "memory", "debounc", "throttl"}},
			{Tag: "security", Triggers: []string{"xss", "csrf", "sanitiz", "cors"}},
			{Tag: "error-handling", Triggers: []string{"try...catch", "try/catch", "throw", "error handling"}},
		},
		MaxTags: 5,
	}
}
