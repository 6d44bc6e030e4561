package qbank

import "strings"

// FenceTracker follows fenced code spans (``` or ~~~) line by line.
type FenceTracker struct {
	marker string
}

// Next consumes one line and reports whether it belongs to a fenced span,
// fence lines included.
func (f *FenceTracker) Next(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	if f.marker != "" {
		if strings.HasPrefix(trimmed, f.marker) && strings.Trim(trimmed, f.marker[:1]+" \t") == "" {
			f.marker = ""
		}
		return true
	}
	if m := fenceMarker(trimmed); m != "" {
		f.marker = m
		return true
	}
	return false
}

// Open reports whether the tracker is inside an unterminated span.
func (f *FenceTracker) Open() bool {
	return f.marker != ""
}

// fenceMarker returns the opening run of backticks or tildes (at least
// three) at the start of line, or "".
func fenceMarker(line string) string {
	for _, ch := range []byte{'`', '~'} {
		n := 0
		for n < len(line) && line[n] == ch {
			n++
		}
		if n >= 3 {
			return line[:n]
		}
	}
	return ""
}

// FencedBlocks returns every fenced code span in markdown, fences included,
// in document order. An unterminated span runs to the end of the text.
func FencedBlocks(markdown string) []string {
	var (
		blocks  []string
		current []string
		fence   FenceTracker
	)
	for _, line := range strings.Split(markdown, "\n") {
		if !fence.Next(line) {
			continue
		}
		current = append(current, line)
		if !fence.Open() {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
		}
	}
	if len(current) > 0 {
		blocks = append(blocks, strings.Join(current, "\n"))
	}
	return blocks
}

// FenceLanguage returns the info string of a fenced block's opening line,
// lower-cased, e.g. "js" for "```js".
func FenceLanguage(block string) string {
	first, _, _ := strings.Cut(block, "\n")
	first = strings.TrimLeft(first, " \t")
	first = strings.TrimLeft(first, "`~")
	lang, _, _ := strings.Cut(strings.TrimSpace(first), " ")
	return strings.ToLower(lang)
}
