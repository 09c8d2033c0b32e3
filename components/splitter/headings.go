package splitter

import (
	"regexp"
	"strings"
)

var (
	subHeadingRE = regexp.MustCompile(`(?m)^#{2,6}\s`)
	topHeadingRE = regexp.MustCompile(`(?m)^#\s`)
)

// Headings cuts immediately before each markdown heading marker. Level 2-6
// headings are the primary cut points; level-1 headings are used only when
// no sub-heading exists, since a document usually has a single H1 title.
// Text before the first heading becomes its own piece. A '#' at line start
// inside a fenced code block (e.g. a shell comment) is not a heading.
type Headings struct{}

var _ Splitter = Headings{}

func (Headings) Split(text string) []string {
	trimmed := strings.TrimSpace(text)
	pieces := splitBefore(trimmed, subHeadingRE)
	if len(pieces) > 1 {
		return pieces
	}
	return splitBefore(trimmed, topHeadingRE)
}

// splitBefore cuts text immediately before each match of re that falls
// outside a fenced code block, dropping whitespace-only pieces.
func splitBefore(text string, re *regexp.Regexp) []string {
	fences := fenceRE.FindAllStringIndex(text, -1)
	var pieces []string
	prev := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if loc[0] == prev || insideSpans(loc[0], fences) {
			continue
		}
		pieces = appendNonEmpty(pieces, text[prev:loc[0]])
		prev = loc[0]
	}
	return appendNonEmpty(pieces, text[prev:])
}

func insideSpans(pos int, spans [][]int) bool {
	for _, span := range spans {
		if pos >= span[0] && pos < span[1] {
			return true
		}
	}
	return false
}
