package markdown

import (
	"strings"
	"testing"
)

const outlineDoc = "# T\n\nintro\n\n## A\n\ntext a\n\n### A1\n\ndeep text\n\n## B\n\ntext b\n"

func TestOutline(t *testing.T) {
	outline := Outline(outlineDoc)
	wants := []struct {
		level int
		text  string
	}{
		{1, "T"},
		{2, "A"},
		{3, "A1"},
		{2, "B"},
	}
	if len(outline) != len(wants) {
		t.Fatalf("Outline = %+v, want %d headings", outline, len(wants))
	}
	for i, want := range wants {
		if outline[i].Level != want.level || outline[i].Text != want.text {
			t.Errorf("heading %d = %+v, want level %d text %q", i, outline[i], want.level, want.text)
		}
		if outlineDoc[outline[i].Offset] != '#' {
			t.Errorf("heading %d offset %d does not point at a marker", i, outline[i].Offset)
		}
	}
}

func TestOutlineSkipsFences(t *testing.T) {
	doc := "## Real\n\n```\n## not a heading\n```\n"
	outline := Outline(doc)
	if len(outline) != 1 || outline[0].Text != "Real" {
		t.Errorf("Outline = %+v, want only the real heading", outline)
	}
}

func TestHeaderContext(t *testing.T) {
	tests := []struct {
		name      string
		chunk     string
		wantPath  []string
		wantJoins string
	}{
		{
			name:      "deep section collects ancestors",
			chunk:     "deep text",
			wantPath:  []string{"T", "A", "A1"},
			wantJoins: "T > A > A1",
		},
		{
			name:      "sibling section pops deeper levels",
			chunk:     "text b",
			wantPath:  []string{"T", "B"},
			wantJoins: "T > B",
		},
		{
			name:      "intro under the document title",
			chunk:     "intro",
			wantPath:  []string{"T"},
			wantJoins: "T",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, hierarchy := HeaderContext(outlineDoc, tt.chunk)
			if strings.Join(path, "|") != strings.Join(tt.wantPath, "|") {
				t.Errorf("path = %q, want %q", path, tt.wantPath)
			}
			if hierarchy != tt.wantJoins {
				t.Errorf("hierarchy = %q, want %q", hierarchy, tt.wantJoins)
			}
		})
	}
}

func TestHeaderContextUnlocatable(t *testing.T) {
	path, hierarchy := HeaderContext(outlineDoc, "this text is nowhere in the document")
	if path != nil || hierarchy != "" {
		t.Errorf("HeaderContext = %q, %q, want empty", path, hierarchy)
	}
}
