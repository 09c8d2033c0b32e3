package assembler

import (
	"strings"

	"github.com/bububa/mdchunk/schema"
)

// ResolveOffsets locates chunk within source and returns its character
// offsets. Exact substring search is tried first (confidence 1.0); when it
// fails, a prefix of the chunk's first 100 characters is searched and the
// end position estimated from the chunk length (confidence 0.8); when that
// also fails the no-match sentinel (-1/-1, confidence 0.0) is returned.
func ResolveOffsets(chunk, source string) schema.CharOffsets {
	if source == "" || strings.TrimSpace(chunk) == "" {
		return schema.CharOffsets{
			CharStart:    -1,
			CharEnd:      -1,
			SourceLength: len(source),
			Confidence:   0,
		}
	}

	stripped := strings.TrimSpace(chunk)
	if start := strings.Index(source, stripped); start >= 0 {
		return schema.CharOffsets{
			CharStart:    start,
			CharEnd:      start + len(stripped),
			SourceLength: len(source),
			Confidence:   1.0,
		}
	}

	prefix := stripped
	if len(prefix) > 100 {
		prefix = prefix[:100]
	}
	if start := strings.Index(source, prefix); start >= 0 {
		end := start + len(stripped)
		if end > len(source) {
			end = len(source)
		}
		return schema.CharOffsets{
			CharStart:    start,
			CharEnd:      end,
			SourceLength: len(source),
			Confidence:   0.8,
		}
	}

	return schema.CharOffsets{
		CharStart:    -1,
		CharEnd:      -1,
		SourceLength: len(source),
		Confidence:   0,
	}
}
