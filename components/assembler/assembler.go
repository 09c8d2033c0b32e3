package assembler

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/bububa/mdchunk/components/markdown"
	"github.com/bububa/mdchunk/components/tokenizer"
	"github.com/bububa/mdchunk/schema"
)

var (
	// ErrMissingSlug reports a document without the slug required to build
	// chunk ids. This is the one fatal condition of the pipeline.
	ErrMissingSlug = errors.New("document missing slug")
	// ErrMissingTitle reports a document without a title for the embed-text
	// context prefix.
	ErrMissingTitle = errors.New("document missing title")
)

// Text is one packed chunk entering assembly. Display is the final form
// (overlap already injected) that readers and the embedder see; Source is
// the pre-overlap form that still matches the document verbatim and is
// what offsets, header context, the heading and links are resolved from.
// Without overlap the two are identical.
type Text struct {
	Display string
	Source  string
}

// Texts pairs each string with itself, for callers whose chunk texts are
// already final.
func Texts(texts []string) []Text {
	out := make([]Text, len(texts))
	for i, txt := range texts {
		out[i] = Text{Display: txt, Source: txt}
	}
	return out
}

// Assembler turns packed, overlapped chunk texts into fully populated
// Chunk records: deterministic ids, prev/next linkage, header context,
// character offsets, link extraction, content hashes and the embed-text
// context prefix.
type Assembler struct {
	counter     tokenizer.TokenCounter
	contentType string
}

// New returns an Assembler reporting token counts with counter and minting
// ids under the given content type (e.g. "post").
func New(counter tokenizer.TokenCounter, contentType string) *Assembler {
	return &Assembler{
		counter:     counter,
		contentType: contentType,
	}
}

// Assemble builds one Chunk per text, in order. Provenance fields come
// from each text's Source form so injected overlap never breaks offset or
// header resolution; chunks are never mutated afterwards.
func (a *Assembler) Assemble(doc *schema.Document, texts []Text) ([]schema.Chunk, error) {
	if doc.Slug == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingSlug, doc.Path)
	}
	if doc.Title == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingTitle, doc.Path)
	}

	sum := sha256.Sum256([]byte(doc.RawText))
	sourceHash := hex.EncodeToString(sum[:])
	parentID := a.contentType + ":" + doc.Slug

	chunks := make([]schema.Chunk, 0, len(texts))
	for i, text := range texts {
		// Links come from the raw markdown, before cleaning strips their
		// syntax, and from the Source form so an overlap tail never
		// re-reports the predecessor's links.
		links := markdown.ExtractLinks(text.Source)
		cleaned := markdown.Clean(text.Display)
		headerPath, hierarchy := markdown.HeaderContext(doc.RawText, text.Source)
		heading := firstHeading(text.Source)
		embedText := buildEmbedText(doc.Title, hierarchy, heading, cleaned)

		chunk := schema.Chunk{
			ID:                  fmt.Sprintf("%s::ch%d", parentID, i),
			ParentID:            parentID,
			EmbedText:           embedText,
			DisplayMarkdown:     text.Display,
			ChunkNumber:         i,
			ContentType:         a.contentType,
			Heading:             heading,
			HeaderPath:          headerPath,
			HeaderHierarchy:     hierarchy,
			TokenCount:          a.counter.Count(embedText),
			Links:               links,
			CharOffsets:         ResolveOffsets(text.Source, doc.RawText),
			SourceContentSHA256: sourceHash,
			OriginalFileSHA256:  doc.OriginalFileSHA256,
			Meta: schema.ChunkMeta{
				Title:         doc.Title,
				Date:          doc.Date,
				Slug:          doc.Slug,
				Tags:          doc.Tags,
				SourceURL:     doc.SourceURL,
				PostPath:      doc.Path,
				ImageAltTexts: doc.AltTexts(),
			},
		}
		if i > 0 {
			chunk.PrevID = fmt.Sprintf("%s::ch%d", parentID, i-1)
		}
		if i < len(texts)-1 {
			chunk.NextID = fmt.Sprintf("%s::ch%d", parentID, i+1)
		}
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}

// firstHeading returns the first line of text that is a markdown heading.
func firstHeading(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if stripped := strings.TrimSpace(line); strings.HasPrefix(stripped, "#") {
			return stripped
		}
	}
	return ""
}

// buildEmbedText prefixes a title line and, when available, a section line
// ahead of the cleaned body, so every embedding keeps document identity
// even when a chunk is retrieved out of context.
func buildEmbedText(title, hierarchy, heading, cleaned string) string {
	titlePrefix := "Title: " + title + "\n"
	switch {
	case hierarchy != "":
		return titlePrefix + "Section: " + hierarchy + "\n\n" + cleaned
	case heading != "" && !strings.HasPrefix(heading, title):
		return titlePrefix + heading + "\n\n" + cleaned
	default:
		return titlePrefix + "\n" + cleaned
	}
}
