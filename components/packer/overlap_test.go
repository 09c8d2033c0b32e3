package packer

import (
	"testing"

	"github.com/bububa/mdchunk/components/tokenizer"
)

func TestInjectOverlapSentences(t *testing.T) {
	chunks := []string{"One. Two. Three.", "Four. Five.", "Six."}
	got := InjectOverlap(chunks, OverlapSentences, 1, tokenizer.FieldsTokenCounter{})

	if got[0] != "One. Two. Three." {
		t.Errorf("first chunk modified: %q", got[0])
	}
	if got[1] != "Three. Four. Five." {
		t.Errorf("second chunk = %q, want the predecessor's last sentence prepended", got[1])
	}
	// Overlap source is the pre-overlap predecessor: chunk three gets
	// "Five." from the original second chunk, not the cascaded "Three.".
	if got[2] != "Five. Six." {
		t.Errorf("third chunk = %q, want %q", got[2], "Five. Six.")
	}
}

func TestInjectOverlapTokens(t *testing.T) {
	counter := tokenizer.FieldsTokenCounter{}
	chunks := []string{"One. Two. Three.", "Four. Five."}
	got := InjectOverlap(chunks, OverlapTokens, 2, counter)

	if got[1] != "Two. Three. Four. Five." {
		t.Errorf("second chunk = %q, want two trailing sentences of overlap", got[1])
	}
}

func TestInjectOverlapNoop(t *testing.T) {
	chunks := []string{"Only one chunk."}
	got := InjectOverlap(chunks, OverlapSentences, 1, tokenizer.FieldsTokenCounter{})
	if len(got) != 1 || got[0] != chunks[0] {
		t.Errorf("single chunk should pass through unchanged, got %q", got)
	}
	if got := InjectOverlap([]string{"a", "b"}, OverlapSentences, 0, tokenizer.FieldsTokenCounter{}); got[1] != "b" {
		t.Errorf("zero overlap should pass through unchanged, got %q", got)
	}
}
