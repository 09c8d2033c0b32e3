package chunker

import (
	"github.com/bububa/mdchunk/components/splitter"
	"github.com/bububa/mdchunk/components/tokenizer"
)

// Option is a function type for configuring a Pipeline.
// This follows the functional options pattern for clean and flexible
// configuration.
type Option func(*Pipeline)

// WithMaxChunkTokens sets the per-chunk token budget.
func WithMaxChunkTokens(n int) Option {
	return func(p *Pipeline) {
		p.cfg.MaxChunkTokens = n
	}
}

// WithMinChunkTokens sets the advisory chunk-size floor. The budget set by
// WithMaxChunkTokens is never exceeded to reach it.
func WithMinChunkTokens(n int) Option {
	return func(p *Pipeline) {
		p.cfg.MinChunkTokens = n
	}
}

// WithOverlapSentences selects sentence-counted overlap of n sentences.
func WithOverlapSentences(n int) Option {
	return func(p *Pipeline) {
		p.cfg.OverlapSentences = n
		p.cfg.OverlapTokens = 0
	}
}

// WithOverlapTokens selects token-measured overlap of n tokens.
func WithOverlapTokens(n int) Option {
	return func(p *Pipeline) {
		p.cfg.OverlapTokens = n
	}
}

// WithEncoding sets the tiktoken encoding name.
func WithEncoding(encoding string) Option {
	return func(p *Pipeline) {
		p.cfg.Encoding = encoding
	}
}

// WithProfile selects the structural splitter chain.
func WithProfile(profile splitter.Profile) Option {
	return func(p *Pipeline) {
		p.cfg.Profile = profile
	}
}

// WithContentType sets the id prefix of produced chunks.
func WithContentType(contentType string) Option {
	return func(p *Pipeline) {
		p.cfg.ContentType = contentType
	}
}

// WithDropFillerBelowTokens drops sub-minimum filler pieces before packing.
func WithDropFillerBelowTokens(n int) Option {
	return func(p *Pipeline) {
		p.cfg.DropFillerBelowTokens = n
	}
}

// WithTokenCounter injects a custom token counter, overriding the
// encoding-based default. The same counter drives splitting, packing and
// the reported chunk token counts.
func WithTokenCounter(counter tokenizer.TokenCounter) Option {
	return func(p *Pipeline) {
		p.counter = counter
	}
}

// WithOversizeHook registers a callback invoked for every produced chunk
// whose token count exceeds the budget (an irreducible oversized unit,
// e.g. a lone giant word or an unsplittable code fence). The condition is
// a warning, never an error.
func WithOversizeHook(hook func(chunkID string, tokens int)) Option {
	return func(p *Pipeline) {
		p.oversize = hook
	}
}
