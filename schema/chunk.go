package schema

import (
	"bytes"

	"github.com/google/uuid"
)

// Link is a markdown hyperlink extracted from a chunk's raw text.
type Link struct {
	// Text is the anchor text of the link
	Text string `json:"text"`
	// URL is the link target
	URL string `json:"url"`
}

// CharOffsets locates a chunk within the original document text.
// Confidence is 1.0 for an exact substring match, 0.8 for a partial
// (prefix) match and 0.0 when the chunk could not be located, in which
// case CharStart and CharEnd are -1.
type CharOffsets struct {
	CharStart    int     `json:"char_start"`
	CharEnd      int     `json:"char_end"`
	SourceLength int     `json:"source_length"`
	Confidence   float64 `json:"confidence"`
}

// ChunkMeta carries document-level metadata copied onto every chunk so a
// chunk record is self-contained when retrieved out of context.
type ChunkMeta struct {
	Title         string   `json:"title"`
	Date          string   `json:"date"`
	Slug          string   `json:"slug"`
	Tags          []string `json:"tags"`
	SourceURL     string   `json:"source_url"`
	PostPath      string   `json:"post_path"`
	ImageAltTexts []string `json:"image_alt_texts,omitempty"`
}

// Chunk is the pipeline's output unit: a packed, overlapped slice of a
// document together with structural and provenance metadata, ready for
// embedding.
//
// Chunks of one document form a singly-linked ordered list: chunk i's
// NextID equals chunk i+1's ID, the first chunk has no PrevID and the
// last has no NextID. IDs follow the "<content_type>:<slug>::ch<N>"
// pattern with N zero-based and contiguous.
type Chunk struct {
	ID       string `json:"id"`
	ParentID string `json:"parent_id"`
	PrevID   string `json:"prev_id,omitempty"`
	NextID   string `json:"next_id,omitempty"`
	// EmbedText is the cleaned body prefixed with a title line and, when
	// available, a section line. This is the text handed to the embedder.
	EmbedText string `json:"embed_text"`
	// DisplayMarkdown preserves the original markdown form for human rendering.
	DisplayMarkdown string `json:"display_markdown"`
	ChunkNumber     int    `json:"chunk_number"`
	ContentType     string `json:"content_type"`
	// Heading is the first markdown heading appearing inside the chunk, if any.
	Heading string `json:"heading"`
	// HeaderPath is the ordered list of ancestor headings enclosing the
	// chunk's position in the source document; HeaderHierarchy is its
	// joined string form.
	HeaderPath      []string    `json:"header_path"`
	HeaderHierarchy string      `json:"header_hierarchy"`
	TokenCount      int         `json:"token_count"`
	Links           []Link      `json:"links"`
	CharOffsets     CharOffsets `json:"char_offsets"`
	// SourceContentSHA256 hashes the processed document content for change
	// detection; OriginalFileSHA256 hashes the raw file for provenance.
	SourceContentSHA256 string    `json:"source_content_sha256"`
	OriginalFileSHA256  string    `json:"original_file_sha256,omitempty"`
	Meta                ChunkMeta `json:"metadata"`
}

// UUID returns a deterministic SHA1-based UUID for the chunk, derived from
// its id and source content hash. Re-running the pipeline on unchanged
// input yields the same UUID.
func (c Chunk) UUID() string {
	sb := new(bytes.Buffer)
	sb.WriteString(c.ID)
	sb.WriteByte('\n')
	sb.WriteString(c.SourceContentSHA256)
	return uuid.NewSHA1(uuid.NameSpaceOID, sb.Bytes()).String()
}
