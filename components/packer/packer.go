package packer

import (
	"strings"

	"github.com/bububa/mdchunk/components/tokenizer"
)

// Piece is a sized fragment awaiting packing.
type Piece struct {
	Text   string
	Tokens int
}

// Size measures each text with the counter, preserving order.
func Size(texts []string, counter tokenizer.TokenCounter) []Piece {
	pieces := make([]Piece, 0, len(texts))
	for _, txt := range texts {
		pieces = append(pieces, Piece{Text: txt, Tokens: counter.Count(txt)})
	}
	return pieces
}

// Pack merges ordered pieces into chunk texts targeting maxTokens. A
// single piece exceeding maxTokens should not exist after decomposition,
// but is defensively re-split on sight via resplit when one is provided.
//
// Policy for a below-minTokens accumulator facing an overflowing piece:
// the piece is accepted only when the merged total still fits maxTokens;
// otherwise the undersized accumulator is flushed. A chunk therefore never
// exceeds maxTokens except for a single irreducible oversized piece.
// Under this policy the floor is advisory: the merge it would sanction is
// already taken by the in-budget branch, so minTokens never changes the
// outcome and no chunk is guaranteed to reach it. The parameter is kept to
// state the floor callers configure.
// Every input piece lands in exactly one output chunk; nothing is dropped.
func Pack(pieces []Piece, maxTokens, minTokens int, resplit func(string) []Piece) []string {
	var chunks []string
	var buf []string
	bufTokens := 0

	flush := func() {
		if len(buf) == 0 {
			return
		}
		chunks = append(chunks, strings.TrimSpace(strings.Join(buf, "\n\n")))
		buf = nil
		bufTokens = 0
	}

	queue := append([]Piece(nil), pieces...)
	for i := 0; i < len(queue); i++ {
		piece := queue[i]
		if piece.Tokens > maxTokens && resplit != nil {
			if sub := resplit(piece.Text); len(sub) > 1 {
				queue = append(queue[:i], append(sub, queue[i+1:]...)...)
				i--
				continue
			}
		}
		if bufTokens+piece.Tokens <= maxTokens {
			buf = append(buf, piece.Text)
			bufTokens += piece.Tokens
			continue
		}
		flush()
		buf = append(buf, piece.Text)
		bufTokens += piece.Tokens
	}
	flush()

	return chunks
}
