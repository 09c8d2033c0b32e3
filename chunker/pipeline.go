package chunker

import (
	"errors"
	"strings"

	"github.com/bububa/mdchunk/components/assembler"
	"github.com/bububa/mdchunk/components/markdown"
	"github.com/bububa/mdchunk/components/packer"
	"github.com/bububa/mdchunk/components/splitter"
	"github.com/bububa/mdchunk/components/tokenizer"
	"github.com/bububa/mdchunk/schema"
)

// Pipeline is the chunking entry point: it decomposes a document along its
// structural boundaries, packs the pieces into token-budgeted chunks,
// injects overlap and assembles the final chunk records.
//
// A Pipeline is a pure, synchronous transformation with no shared mutable
// state: one Pipeline may chunk many documents concurrently, but the chunks
// of a single document are produced strictly in order.
type Pipeline struct {
	cfg      Config
	counter  tokenizer.TokenCounter
	chain    []splitter.Splitter
	oversize func(chunkID string, tokens int)
}

// New builds a Pipeline from the default config and the given options.
// When the configured tiktoken encoding cannot be loaded the pipeline
// falls back to the heuristic counter; the fallback is part of the
// contract and is not surfaced as a failure.
func New(opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		cfg: DefaultConfig(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.cfg.Validate(); err != nil {
		return nil, err
	}
	if p.counter == nil {
		counter, err := tokenizer.NewCounter(p.cfg.Encoding)
		if err != nil && !errors.Is(err, tokenizer.ErrTokenizerUnavailable) {
			return nil, err
		}
		p.counter = counter
	}
	p.chain = splitter.ChainFor(p.cfg.Profile)
	return p, nil
}

// Config returns the pipeline's effective configuration.
func (p *Pipeline) Config() Config {
	return p.cfg
}

// Chunk turns one document into its ordered chunk records. An empty or
// whitespace-only document yields zero chunks and no error. Problems
// confined to a single chunk (unresolvable offsets, oversized irreducible
// units) degrade locally and never abort the document; the only fatal
// condition is metadata missing for id construction.
func (p *Pipeline) Chunk(doc *schema.Document) ([]schema.Chunk, error) {
	if strings.TrimSpace(doc.RawText) == "" {
		return nil, nil
	}

	decomposer := splitter.Decomposer{
		MaxTokens: p.cfg.MaxChunkTokens,
		Counter:   p.counter,
	}
	pieces := decomposer.Decompose(doc.RawText, p.chain)
	sized := packer.Size(pieces, p.counter)
	sized = p.dropFiller(sized)

	texts := packer.Pack(sized, p.cfg.MaxChunkTokens, p.cfg.MinChunkTokens, func(text string) []packer.Piece {
		return packer.Size(decomposer.Decompose(text, p.chain), p.counter)
	})

	// Oversize is judged on the packed pre-overlap text, so the embed-text
	// context prefix and overlap never trip the warning on their own.
	var oversized []int
	for i, text := range texts {
		if p.counter.Count(text) > p.cfg.MaxChunkTokens {
			oversized = append(oversized, i)
		}
	}

	mode, n := packer.OverlapSentences, p.cfg.OverlapSentences
	if p.cfg.OverlapTokens > 0 {
		mode, n = packer.OverlapTokens, p.cfg.OverlapTokens
	}
	overlapped := packer.InjectOverlap(texts, mode, n, p.counter)

	// Offsets and header context resolve against the pre-overlap text,
	// which still matches the document verbatim.
	inputs := make([]assembler.Text, len(texts))
	for i := range texts {
		inputs[i] = assembler.Text{Display: overlapped[i], Source: texts[i]}
	}
	chunks, err := assembler.New(p.counter, p.cfg.ContentType).Assemble(doc, inputs)
	if err != nil {
		return nil, err
	}
	if p.oversize != nil {
		for _, i := range oversized {
			p.oversize(chunks[i].ID, chunks[i].TokenCount)
		}
	}
	return chunks, nil
}

// dropFiller removes pieces whose cleaned body measures under the
// configured filler threshold. This is the only place content may be
// discarded, and only at the pre-packing piece level.
func (p *Pipeline) dropFiller(pieces []packer.Piece) []packer.Piece {
	if p.cfg.DropFillerBelowTokens <= 0 {
		return pieces
	}
	kept := pieces[:0]
	for _, piece := range pieces {
		if p.counter.Count(markdown.Clean(piece.Text)) < p.cfg.DropFillerBelowTokens {
			continue
		}
		kept = append(kept, piece)
	}
	return kept
}
