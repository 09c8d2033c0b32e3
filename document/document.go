package document

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"gopkg.in/yaml.v3"

	"github.com/bububa/mdchunk/schema"
)

// ErrNotMarkdown reports a file whose content is not text and therefore
// cannot be a markdown document.
var ErrNotMarkdown = errors.New("not a markdown document")

// FrontMatter is the YAML metadata block at the head of a post file.
type FrontMatter struct {
	Title     string         `yaml:"title"`
	Slug      string         `yaml:"slug"`
	Date      string         `yaml:"date"`
	Tags      []string       `yaml:"tags"`
	SourceURL string         `yaml:"source_url"`
	Images    []schema.Image `yaml:"images"`
}

// Load reads a markdown file into a Document: front matter parsed off the
// body, raw file hashed for provenance, slug and title derived from the
// content when the front matter omits them.
func Load(path string) (*schema.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, data)
}

// Parse builds a Document from raw file bytes.
func Parse(path string, data []byte) (*schema.Document, error) {
	if mtype := mimetype.Detect(data); !strings.HasPrefix(mtype.String(), "text/") {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotMarkdown, path, mtype.String())
	}
	sum := sha256.Sum256(data)

	matter, body := splitFrontMatter(string(data))
	var fm FrontMatter
	if matter != "" {
		if err := yaml.Unmarshal([]byte(matter), &fm); err != nil {
			return nil, fmt.Errorf("parse front matter of %s: %w", path, err)
		}
	}

	title := fm.Title
	if title == "" {
		title = firstTitle(body)
	}
	slug := fm.Slug
	if slug == "" {
		slug = Slugify(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	}

	return &schema.Document{
		RawText:            body,
		Title:              title,
		Slug:               slug,
		Date:               fm.Date,
		Tags:               fm.Tags,
		SourceURL:          fm.SourceURL,
		Path:               path,
		OriginalFileSHA256: hex.EncodeToString(sum[:]),
		Images:             fm.Images,
	}, nil
}

// Walk loads every markdown file under dir, in lexical walk order.
// Non-text files are skipped, not reported.
func Walk(dir string) ([]*schema.Document, error) {
	var docs []*schema.Document
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".md", ".markdown":
		default:
			return nil
		}
		doc, err := Load(path)
		if errors.Is(err, ErrNotMarkdown) {
			return nil
		}
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// splitFrontMatter returns the YAML front matter (without its delimiters)
// and the remaining body. A document without a leading "---" line has no
// front matter.
func splitFrontMatter(text string) (matter, body string) {
	rest, found := strings.CutPrefix(text, "---\n")
	if !found {
		if rest, found = strings.CutPrefix(text, "---\r\n"); !found {
			return "", text
		}
	}
	for _, delim := range []string{"\n---\n", "\n---\r\n"} {
		if idx := strings.Index(rest, delim); idx >= 0 {
			return rest[:idx], rest[idx+len(delim):]
		}
	}
	if trimmed, found := strings.CutSuffix(rest, "\n---"); found {
		return trimmed, ""
	}
	return "", text
}

var nonSlugRE = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s and collapses every non-alphanumeric run into a
// single hyphen.
func Slugify(s string) string {
	slug := nonSlugRE.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

// firstTitle returns the text of the first level-1 heading of body.
func firstTitle(body string) string {
	for _, line := range strings.Split(body, "\n") {
		if title, found := strings.CutPrefix(strings.TrimSpace(line), "# "); found {
			return strings.TrimSpace(title)
		}
	}
	return ""
}
