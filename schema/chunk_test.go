package schema

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestChunkUUIDDeterministic(t *testing.T) {
	a := Chunk{ID: "post:slug::ch0", SourceContentSHA256: "abc"}
	b := Chunk{ID: "post:slug::ch0", SourceContentSHA256: "abc"}
	c := Chunk{ID: "post:slug::ch1", SourceContentSHA256: "abc"}

	if a.UUID() != b.UUID() {
		t.Error("identical chunks must produce identical UUIDs")
	}
	if a.UUID() == c.UUID() {
		t.Error("different ids must produce different UUIDs")
	}
}

func TestChunkJSONFieldNames(t *testing.T) {
	chunk := Chunk{
		ID:       "post:slug::ch0",
		ParentID: "post:slug",
		NextID:   "post:slug::ch1",
		CharOffsets: CharOffsets{
			CharStart:    0,
			CharEnd:      10,
			SourceLength: 100,
			Confidence:   1.0,
		},
	}
	data, err := json.Marshal(chunk)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, field := range []string{
		`"id"`, `"parent_id"`, `"next_id"`, `"chunk_number"`,
		`"char_offsets"`, `"char_start"`, `"char_end"`,
		`"header_path"`, `"header_hierarchy"`, `"token_count"`,
	} {
		if !strings.Contains(out, field) {
			t.Errorf("marshaled chunk missing %s", field)
		}
	}
	if strings.Contains(out, `"prev_id"`) {
		t.Error("empty prev_id should be omitted")
	}
}
