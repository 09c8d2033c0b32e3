package tokenizer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/clipperhouse/uax29/words"
	"github.com/pkoukk/tiktoken-go"
)

// ErrTokenizerUnavailable reports that the primary BPE tokenizer could not
// be loaded. NewCounter recovers from it by returning the heuristic counter;
// callers may treat the error as advisory.
var ErrTokenizerUnavailable = errors.New("tokenizer unavailable")

// TokenCounter defines the interface for counting tokens in a string.
// This abstraction allows for different tokenization strategies (e.g., words,
// subwords). A single pipeline run must use one counter for both splitting
// and the reported chunk token counts.
type TokenCounter interface {
	// Count returns the number of tokens in the given text according to the
	// implementation's tokenization strategy.
	Count(text string) int
}

// HeuristicTokenCounter estimates token counts as ceil(len(text)/4),
// the common rough average of four characters per BPE token. Counts are
// approximate but monotonic: longer text never yields a smaller count.
type HeuristicTokenCounter struct{}

func (HeuristicTokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}
	return (len(text) + 3) / 4
}

// FieldsTokenCounter counts whitespace-delimited words. Suitable for tests
// and for callers that want deterministic counts without a BPE vocabulary.
type FieldsTokenCounter struct{}

func (FieldsTokenCounter) Count(text string) int {
	return len(strings.Fields(text))
}

// WordsTokenCounter counts UAX #29 word segments.
type WordsTokenCounter struct{}

func (WordsTokenCounter) Count(text string) int {
	return len(words.SegmentAll([]byte(text)))
}

// TikTokenCounter provides accurate token counting using the tiktoken
// library, which implements the tokenization schemes used by OpenAI models.
type TikTokenCounter struct {
	tke *tiktoken.Tiktoken
}

// NewTikTokenCounter creates a new TikTokenCounter using the specified
// encoding, e.g. "cl100k_base".
func NewTikTokenCounter(encoding string) (*TikTokenCounter, error) {
	tke, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to get encoding: %w", err)
	}
	return &TikTokenCounter{tke: tke}, nil
}

// Count returns the exact number of tokens in the text according to the
// specified tiktoken encoding.
func (ttc *TikTokenCounter) Count(text string) int {
	return len(ttc.tke.Encode(text, nil, nil))
}

// NewCounter returns a TikTokenCounter for the encoding. When the encoding
// cannot be loaded it returns a HeuristicTokenCounter together with an error
// wrapping ErrTokenizerUnavailable, so the fallback is an explicit, named
// outcome rather than a silent downgrade.
func NewCounter(encoding string) (TokenCounter, error) {
	ttc, err := NewTikTokenCounter(encoding)
	if err != nil {
		return HeuristicTokenCounter{}, fmt.Errorf("%w: %v", ErrTokenizerUnavailable, err)
	}
	return ttc, nil
}
