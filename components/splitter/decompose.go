package splitter

import (
	"strings"

	"github.com/bububa/mdchunk/components/tokenizer"
)

// Decomposer recursively applies a coarse-to-fine splitter chain to one
// over-budget unit of text until every resulting piece fits the token
// budget, falling back to HardCut when the chain is exhausted. Pieces
// already within budget are left untouched to avoid needless fragmentation.
type Decomposer struct {
	MaxTokens int
	Counter   tokenizer.TokenCounter
}

// Decompose returns the ordered in-budget pieces of text. Empty and
// whitespace-only fragments are discarded and never reach the output.
func (d Decomposer) Decompose(text string, chain []Splitter) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if d.Counter.Count(text) <= d.MaxTokens {
		return []string{strings.TrimSpace(text)}
	}
	return d.decompose(text, chain)
}

func (d Decomposer) decompose(text string, chain []Splitter) []string {
	if len(chain) == 0 {
		return HardCut{MaxTokens: d.MaxTokens, Counter: d.Counter}.Split(text)
	}
	parts := chain[0].Split(text)
	if len(parts) <= 1 {
		// No boundary at this granularity; fall through to the finer rule
		// on the same text instead of looping forever.
		return d.decompose(text, chain[1:])
	}
	var out []string
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		if d.Counter.Count(part) > d.MaxTokens {
			out = append(out, d.decompose(part, chain[1:])...)
		} else {
			out = append(out, part)
		}
	}
	return out
}
