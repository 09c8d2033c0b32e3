package chunker

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/bububa/mdchunk/components/splitter"
)

// Config holds the chunking pipeline settings. There is no package-level
// mutable configuration; a Config is built once (usually via options in
// New) and passed down.
type Config struct {
	// MaxChunkTokens is the token budget no chunk should exceed.
	MaxChunkTokens int `validate:"gt=0"`
	// MinChunkTokens is the advisory floor for chunk sizes. The packer
	// never exceeds MaxChunkTokens to reach it, so an undersized chunk may
	// still be emitted when no in-budget merge exists.
	MinChunkTokens int `validate:"gte=0,ltfield=MaxChunkTokens"`
	// OverlapSentences is the number of trailing sentences of the previous
	// chunk prepended to each subsequent chunk. Used when OverlapTokens is
	// zero.
	OverlapSentences int `validate:"gte=0"`
	// OverlapTokens, when positive, selects token-measured overlap instead
	// of sentence-counted overlap.
	OverlapTokens int `validate:"gte=0"`
	// Encoding is the tiktoken encoding used for token counting.
	Encoding string `validate:"required"`
	// Profile selects the structural splitter chain.
	Profile splitter.Profile `validate:"oneof=markdown plain code"`
	// ContentType is the id prefix of produced chunks, e.g. "post".
	ContentType string `validate:"required"`
	// DropFillerBelowTokens, when positive, drops decomposed pieces whose
	// cleaned body measures under this many tokens before packing.
	// Dropping only ever happens at the pre-packing piece level; a packed
	// final chunk is never discarded.
	DropFillerBelowTokens int `validate:"gte=0"`
}

// DefaultConfig returns the documented defaults: a 625-token budget with a
// 50-token floor, one sentence of overlap and the markdown profile.
func DefaultConfig() Config {
	return Config{
		MaxChunkTokens:   625,
		MinChunkTokens:   50,
		OverlapSentences: 1,
		Encoding:         "cl100k_base",
		Profile:          splitter.ProfileMarkdown,
		ContentType:      "post",
	}
}

var validate = validator.New()

// Validate checks the config's struct constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid chunker config: %w", err)
	}
	return nil
}
