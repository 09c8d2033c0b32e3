package markdown

import (
	"regexp"
	"strings"
)

var (
	imageRE       = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]*)\)`)
	linkRE        = regexp.MustCompile(`\[([^\]]+)\]\(([^)]*)\)`)
	fenceLineRE   = regexp.MustCompile("(?m)^```.*$")
	inlineCodeRE  = regexp.MustCompile("`([^`\n]*)`")
	boldRE        = regexp.MustCompile(`\*\*([^*]+)\*\*|__([^_]+)__`)
	italicRE      = regexp.MustCompile(`\*([^*\n]+)\*`)
	headingMarkRE = regexp.MustCompile(`(?m)^#{1,6}[ \t]+`)
	blankRunRE    = regexp.MustCompile(`\n{3,}`)
)

// Clean strips markdown link syntax and decorative markup from text,
// producing the plain body used for embedding. Link anchor text and image
// alt text are kept; targets are dropped. Run link extraction on the raw
// form before calling Clean.
func Clean(text string) string {
	out := imageRE.ReplaceAllString(text, "$1")
	out = linkRE.ReplaceAllString(out, "$1")
	out = fenceLineRE.ReplaceAllString(out, "")
	out = inlineCodeRE.ReplaceAllString(out, "$1")
	out = boldRE.ReplaceAllString(out, "$1$2")
	out = italicRE.ReplaceAllString(out, "$1")
	out = headingMarkRE.ReplaceAllString(out, "")
	out = blankRunRE.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}
