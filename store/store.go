package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/xid"
	"go.uber.org/atomic"

	"github.com/bububa/mdchunk/schema"
)

// Store persists chunk records as one JSON file per chunk and keeps
// running statistics for the run. Counters are atomic so documents may be
// chunked and saved concurrently.
type Store struct {
	dir         string
	runID       string
	documents   atomic.Int64
	chunks      atomic.Int64
	totalTokens atomic.Int64
	minTokens   atomic.Int64
	maxTokens   atomic.Int64
}

// Stats summarizes one persistence run.
type Stats struct {
	Documents   int64
	Chunks      int64
	TotalTokens int64
	MinTokens   int64
	MaxTokens   int64
	AvgTokens   float64
}

// New creates the output directory if needed and returns a Store with a
// fresh run id.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create chunks dir: %w", err)
	}
	return &Store{
		dir:   dir,
		runID: xid.New().String(),
	}, nil
}

// RunID identifies this persistence run.
func (s *Store) RunID() string {
	return s.runID
}

// Dir returns the output directory.
func (s *Store) Dir() string {
	return s.dir
}

var fileNameReplacer = strings.NewReplacer("::", "__", ":", "_")

// FileName maps a chunk id to its JSON file name:
// "post:slug::ch0" becomes "post_slug__ch0.json".
func FileName(id string) string {
	return fileNameReplacer.Replace(id) + ".json"
}

// Clean removes previously saved chunk files for the given document, so a
// re-chunked document never leaves stale trailing chunks behind.
func (s *Store) Clean(contentType, slug string) error {
	pattern := filepath.Join(s.dir, fmt.Sprintf("%s_%s__ch*.json", contentType, slug))
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return err
	}
	for _, match := range matches {
		if err := os.Remove(match); err != nil {
			return fmt.Errorf("remove stale chunk %s: %w", match, err)
		}
	}
	return nil
}

// Save writes one chunk record to disk and folds it into the run stats.
func (s *Store) Save(chunk *schema.Chunk) error {
	data, err := json.MarshalIndent(chunk, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal chunk %s: %w", chunk.ID, err)
	}
	path := filepath.Join(s.dir, FileName(chunk.ID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write chunk %s: %w", chunk.ID, err)
	}
	s.observe(int64(chunk.TokenCount))
	return nil
}

// SaveAll cleans the document's stale chunk files and saves its chunks.
func (s *Store) SaveAll(chunks []schema.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}
	if err := s.Clean(chunks[0].ContentType, chunks[0].Meta.Slug); err != nil {
		return err
	}
	for i := range chunks {
		if err := s.Save(&chunks[i]); err != nil {
			return err
		}
	}
	s.documents.Inc()
	return nil
}

// Stats returns the run statistics accumulated so far.
func (s *Store) Stats() Stats {
	stats := Stats{
		Documents:   s.documents.Load(),
		Chunks:      s.chunks.Load(),
		TotalTokens: s.totalTokens.Load(),
		MinTokens:   s.minTokens.Load(),
		MaxTokens:   s.maxTokens.Load(),
	}
	if stats.Chunks > 0 {
		stats.AvgTokens = float64(stats.TotalTokens) / float64(stats.Chunks)
	}
	return stats
}

func (s *Store) observe(tokens int64) {
	s.chunks.Inc()
	s.totalTokens.Add(tokens)
	for {
		old := s.minTokens.Load()
		if old != 0 && old <= tokens {
			break
		}
		if s.minTokens.CompareAndSwap(old, tokens) {
			break
		}
	}
	for {
		old := s.maxTokens.Load()
		if old >= tokens {
			break
		}
		if s.maxTokens.CompareAndSwap(old, tokens) {
			break
		}
	}
}
