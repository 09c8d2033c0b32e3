package splitter

import (
	"strings"

	"github.com/bububa/mdchunk/components/tokenizer"
)

// HardCut is the terminal strategy: it greedily accumulates whole words
// until the token budget is reached, cutting only at word boundaries. It
// always terminates and always shrinks any input of more than one word;
// a single word exceeding the budget on its own is returned as-is, since
// it is irreducible at word granularity.
type HardCut struct {
	MaxTokens int
	Counter   tokenizer.TokenCounter
}

var _ Splitter = HardCut{}

func (h HardCut) Split(text string) []string {
	if trimmed := strings.TrimSpace(text); isFence(trimmed) {
		// A lone oversized code fence stays whole; cutting it mid-block
		// would produce unbalanced fences in two chunks.
		return []string{trimmed}
	}
	var pieces []string
	var cur []string
	curTokens := 0
	for _, word := range strings.Fields(text) {
		wordTokens := h.Counter.Count(word + " ")
		if curTokens+wordTokens > h.MaxTokens && len(cur) > 0 {
			pieces = append(pieces, strings.Join(cur, " "))
			cur = []string{word}
			curTokens = wordTokens
		} else {
			cur = append(cur, word)
			curTokens += wordTokens
		}
	}
	if len(cur) > 0 {
		pieces = append(pieces, strings.Join(cur, " "))
	}
	return pieces
}
