package splitter

import (
	"strings"

	"github.com/clipperhouse/uax29/sentences"
)

// Sentences cuts after sentence-terminal punctuation using UAX #29 sentence
// segmentation. Fenced code blocks are preserved as atomic pieces regardless
// of the punctuation they contain.
type Sentences struct{}

var _ Splitter = Sentences{}

func (Sentences) Split(text string) []string {
	return splitOutsideFences(text, SplitSentences)
}

// SplitSentences segments plain text into trimmed, non-empty sentences.
func SplitSentences(text string) []string {
	var out []string
	segmenter := sentences.NewSegmenter([]byte(text))
	for segmenter.Next() {
		if s := strings.TrimSpace(segmenter.Text()); s != "" {
			out = append(out, s)
		}
	}
	return out
}
