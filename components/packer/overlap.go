package packer

import (
	"strings"

	"github.com/bububa/mdchunk/components/splitter"
	"github.com/bububa/mdchunk/components/tokenizer"
)

// OverlapMode selects how the trailing context pulled from the previous
// chunk is measured.
type OverlapMode int

const (
	// OverlapSentences prepends the last N sentences of the predecessor.
	OverlapSentences OverlapMode = iota
	// OverlapTokens prepends whole trailing sentences of the predecessor
	// until at least N tokens of overlap are covered.
	OverlapTokens
)

// InjectOverlap prepends trailing context from each chunk's immediate
// predecessor in one forward pass. The overlap source is always the
// predecessor's pre-overlap text, never a twice-overlapped cascade, and
// the first chunk is never modified.
func InjectOverlap(chunks []string, mode OverlapMode, n int, counter tokenizer.TokenCounter) []string {
	if n <= 0 || len(chunks) < 2 {
		return chunks
	}
	out := make([]string, len(chunks))
	out[0] = chunks[0]
	for i := 1; i < len(chunks); i++ {
		var tail string
		switch mode {
		case OverlapTokens:
			tail = tailByTokens(chunks[i-1], n, counter)
		default:
			tail = tailSentences(chunks[i-1], n)
		}
		if tail == "" {
			out[i] = chunks[i]
			continue
		}
		out[i] = tail + " " + chunks[i]
	}
	return out
}

// tailSentences returns the last n sentences of text joined by spaces.
func tailSentences(text string, n int) string {
	sents := splitter.SplitSentences(text)
	if len(sents) > n {
		sents = sents[len(sents)-n:]
	}
	return strings.Join(sents, " ")
}

// tailByTokens walks sentences backwards from the end of text until the
// desired token overlap is covered, then returns them in order.
func tailByTokens(text string, desiredOverlap int, counter tokenizer.TokenCounter) string {
	sents := splitter.SplitSentences(text)
	overlapTokens := 0
	start := len(sents)
	for i := len(sents) - 1; i >= 0 && overlapTokens < desiredOverlap; i-- {
		overlapTokens += counter.Count(sents[i])
		start = i
	}
	return strings.Join(sents[start:], " ")
}
