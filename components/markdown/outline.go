package markdown

import (
	"regexp"
	"strings"
)

// Heading is one entry of a document's heading outline.
type Heading struct {
	// Level is the markdown heading level, 1-6.
	Level int
	// Text is the heading text without the marker.
	Text string
	// Offset is the byte offset of the heading line within the document.
	Offset int
}

var (
	headingLineRE  = regexp.MustCompile(`(?m)^(#{1,6})[ \t]+(.+?)[ \t]*$`)
	outlineFenceRE = regexp.MustCompile("(?s)```.*?```")
)

// Outline returns the document's headings in source order, skipping '#'
// lines inside fenced code blocks.
func Outline(doc string) []Heading {
	fences := outlineFenceRE.FindAllStringIndex(doc, -1)
	var outline []Heading
	for _, loc := range headingLineRE.FindAllStringSubmatchIndex(doc, -1) {
		if insideFence(loc[0], fences) {
			continue
		}
		outline = append(outline, Heading{
			Level:  loc[3] - loc[2],
			Text:   doc[loc[4]:loc[5]],
			Offset: loc[0],
		})
	}
	return outline
}

func insideFence(pos int, fences [][]int) bool {
	for _, span := range fences {
		if pos >= span[0] && pos < span[1] {
			return true
		}
	}
	return false
}

// HeaderContext locates chunk within doc and returns the ordered ancestor
// headings enclosing that position (deepest heading at or before the chunk
// start, plus its ancestors in level order) and their joined string form.
// When the chunk cannot be located, both results are empty.
func HeaderContext(doc, chunk string) ([]string, string) {
	start := locate(doc, chunk)
	if start < 0 {
		return nil, ""
	}
	var stack []Heading
	for _, h := range Outline(doc) {
		if h.Offset > start {
			break
		}
		for len(stack) > 0 && stack[len(stack)-1].Level >= h.Level {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, h)
	}
	if len(stack) == 0 {
		return nil, ""
	}
	path := make([]string, 0, len(stack))
	for _, h := range stack {
		path = append(path, h.Text)
	}
	return path, strings.Join(path, " > ")
}

// locate finds the chunk's start offset in doc: exact match first, then a
// prefix of the first 100 characters.
func locate(doc, chunk string) int {
	stripped := strings.TrimSpace(chunk)
	if stripped == "" {
		return -1
	}
	if idx := strings.Index(doc, stripped); idx >= 0 {
		return idx
	}
	prefix := stripped
	if len(prefix) > 100 {
		prefix = prefix[:100]
	}
	return strings.Index(doc, prefix)
}
