package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/bububa/mdchunk/schema"
)

func testChunks() []schema.Chunk {
	return []schema.Chunk{
		{
			ID:          "post:my-post::ch0",
			ParentID:    "post:my-post",
			NextID:      "post:my-post::ch1",
			ContentType: "post",
			TokenCount:  120,
			Meta:        schema.ChunkMeta{Slug: "my-post", Title: "My Post"},
		},
		{
			ID:          "post:my-post::ch1",
			ParentID:    "post:my-post",
			PrevID:      "post:my-post::ch0",
			ContentType: "post",
			TokenCount:  80,
			Meta:        schema.ChunkMeta{Slug: "my-post", Title: "My Post"},
		},
	}
}

func TestFileName(t *testing.T) {
	if got := FileName("post:my-post::ch0"); got != "post_my-post__ch0.json" {
		t.Errorf("FileName = %q", got)
	}
}

func TestSaveAll(t *testing.T) {
	dir := t.TempDir()
	s, err := New(filepath.Join(dir, "chunks"))
	if err != nil {
		t.Fatal(err)
	}
	if s.RunID() == "" {
		t.Error("run id should not be empty")
	}

	if err := s.SaveAll(testChunks()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(s.Dir(), "post_my-post__ch0.json"))
	if err != nil {
		t.Fatal(err)
	}
	var got schema.Chunk
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.ID != "post:my-post::ch0" || got.NextID != "post:my-post::ch1" {
		t.Errorf("round-tripped chunk = %+v", got)
	}

	stats := s.Stats()
	if stats.Documents != 1 || stats.Chunks != 2 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.MinTokens != 80 || stats.MaxTokens != 120 {
		t.Errorf("token range = %d..%d, want 80..120", stats.MinTokens, stats.MaxTokens)
	}
	if stats.AvgTokens != 100 {
		t.Errorf("avg tokens = %v, want 100", stats.AvgTokens)
	}
}

func TestSaveAllCleansStaleChunks(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	stale := filepath.Join(s.Dir(), "post_my-post__ch5.json")
	if err := os.WriteFile(stale, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := s.SaveAll(testChunks()); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale chunk file should have been removed")
	}
	if _, err := os.Stat(filepath.Join(s.Dir(), "post_my-post__ch1.json")); err != nil {
		t.Errorf("fresh chunk missing: %v", err)
	}
}

func TestSaveAllEmpty(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SaveAll(nil); err != nil {
		t.Fatal(err)
	}
	if stats := s.Stats(); stats.Documents != 0 || stats.Chunks != 0 {
		t.Errorf("stats = %+v, want zeroes", stats)
	}
}
