package markdown

import (
	"strings"

	commonmark "gitlab.com/golang-commonmark/markdown"

	"github.com/bububa/mdchunk/schema"
)

// ExtractLinks returns the markdown hyperlinks of raw text in document
// order. It must run on the raw form, before Clean strips link syntax.
func ExtractLinks(raw string) []schema.Link {
	md := commonmark.New(commonmark.HTML(false), commonmark.Linkify(false))
	var links []schema.Link
	for _, tok := range md.Parse([]byte(raw)) {
		if inline, ok := tok.(*commonmark.Inline); ok {
			links = append(links, inlineLinks(inline.Children)...)
		}
	}
	return links
}

// inlineLinks collects link-open/close pairs from an inline token run,
// concatenating the text tokens between them as the anchor text.
func inlineLinks(tokens []commonmark.Token) []schema.Link {
	var links []schema.Link
	for i := 0; i < len(tokens); i++ {
		open, ok := tokens[i].(*commonmark.LinkOpen)
		if !ok {
			continue
		}
		var text strings.Builder
		for j := i + 1; j < len(tokens); j++ {
			if _, closed := tokens[j].(*commonmark.LinkClose); closed {
				i = j
				break
			}
			switch inner := tokens[j].(type) {
			case *commonmark.Text:
				text.WriteString(inner.Content)
			case *commonmark.CodeInline:
				text.WriteString(inner.Content)
			}
		}
		links = append(links, schema.Link{Text: text.String(), URL: open.Href})
	}
	return links
}
