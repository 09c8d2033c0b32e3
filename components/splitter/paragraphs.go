package splitter

import (
	"regexp"
)

var blankLineRE = regexp.MustCompile(`\n[ \t]*\n+`)

// Paragraphs cuts on blank-line boundaries. Fenced code blocks are kept as
// atomic pieces even when they contain blank lines.
type Paragraphs struct{}

var _ Splitter = Paragraphs{}

func (Paragraphs) Split(text string) []string {
	return splitOutsideFences(text, func(s string) []string {
		var pieces []string
		return appendNonEmpty(pieces, blankLineRE.Split(s, -1)...)
	})
}
