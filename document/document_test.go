package document

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const frontMatterPost = `---
title: Hello World
slug: hello-world
date: "2024-01-15"
tags:
  - go
  - chunking
source_url: https://example.com/hello
images:
  - src: /img/a.png
    alt: A diagram
---

# Hello World

Body text.
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadWithFrontMatter(t *testing.T) {
	path := writeTemp(t, "hello.md", frontMatterPost)
	doc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Title != "Hello World" {
		t.Errorf("title = %q", doc.Title)
	}
	if doc.Slug != "hello-world" {
		t.Errorf("slug = %q", doc.Slug)
	}
	if doc.Date != "2024-01-15" {
		t.Errorf("date = %q", doc.Date)
	}
	if len(doc.Tags) != 2 || doc.Tags[0] != "go" {
		t.Errorf("tags = %q", doc.Tags)
	}
	if doc.SourceURL != "https://example.com/hello" {
		t.Errorf("source url = %q", doc.SourceURL)
	}
	if len(doc.Images) != 1 || doc.Images[0].Alt != "A diagram" {
		t.Errorf("images = %+v", doc.Images)
	}
	if got := doc.AltTexts(); len(got) != 1 || got[0] != "A diagram" {
		t.Errorf("alt texts = %q", got)
	}
	if strings.Contains(doc.RawText, "title:") {
		t.Errorf("front matter leaked into body: %q", doc.RawText)
	}
	if !strings.Contains(doc.RawText, "# Hello World") {
		t.Errorf("body lost content: %q", doc.RawText)
	}
	if len(doc.OriginalFileSHA256) != 64 {
		t.Errorf("file hash = %q", doc.OriginalFileSHA256)
	}
	if doc.Path != path {
		t.Errorf("path = %q, want %q", doc.Path, path)
	}
}

func TestLoadWithoutFrontMatter(t *testing.T) {
	path := writeTemp(t, "My Plain Post.md", "# Doc Title\n\nJust text.\n")
	doc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Title != "Doc Title" {
		t.Errorf("title = %q, want the first level-1 heading", doc.Title)
	}
	if doc.Slug != "my-plain-post" {
		t.Errorf("slug = %q, want it derived from the file name", doc.Slug)
	}
	if doc.RawText != "# Doc Title\n\nJust text.\n" {
		t.Errorf("body = %q", doc.RawText)
	}
}

func TestParseRejectsBinary(t *testing.T) {
	_, err := Parse("blob.md", []byte{0x00, 0x01, 0x02, 0xff, 0xfe})
	if !errors.Is(err, ErrNotMarkdown) {
		t.Errorf("err = %v, want ErrNotMarkdown", err)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello, World!", "hello-world"},
		{"  spaced   out  ", "spaced-out"},
		{"already-fine", "already-fine"},
		{"MixedCase_and_underscores", "mixedcase-and-underscores"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestWalk(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.md":       "# A\n\nText a.\n",
		"b.markdown": "# B\n\nText b.\n",
		"c.txt":      "not picked up",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	docs, err := Walk(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("Walk found %d documents, want 2", len(docs))
	}
	if docs[0].Slug != "a" || docs[1].Slug != "b" {
		t.Errorf("slugs = %q, %q", docs[0].Slug, docs[1].Slug)
	}
}
