package splitter

import (
	"regexp"
	"strings"
)

// Splitter cuts text at one structural granularity.
//
// Split returns an ordered sequence of non-empty pieces whose concatenation
// (allowing for separator loss) reconstructs the input's content. A result
// of exactly one piece signals that no boundary exists at this granularity;
// the caller must fall through to the next, finer splitter.
type Splitter interface {
	Split(text string) []string
}

// Profile selects the splitter chain for a corpus type.
type Profile string

const (
	ProfileMarkdown Profile = "markdown"
	ProfilePlain    Profile = "plain"
	ProfileCode     Profile = "code"
)

// ChainFor returns the coarse-to-fine splitter chain for the profile.
// Unknown profiles get the plain chain.
func ChainFor(profile Profile) []Splitter {
	switch profile {
	case ProfileMarkdown:
		return []Splitter{Headings{}, Paragraphs{}, Sentences{}}
	case ProfileCode:
		return []Splitter{CodeSymbols{}, Paragraphs{}, Sentences{}}
	default:
		return []Splitter{Paragraphs{}, Sentences{}}
	}
}

var fenceRE = regexp.MustCompile("(?s)```.*?```")

// splitOutsideFences applies split to the runs of text between fenced code
// blocks and keeps each fence as its own atomic piece, so that blank lines
// and sentence punctuation inside a fence never become cut points.
func splitOutsideFences(text string, split func(string) []string) []string {
	var pieces []string
	prev := 0
	for _, loc := range fenceRE.FindAllStringIndex(text, -1) {
		if before := strings.TrimSpace(text[prev:loc[0]]); before != "" {
			pieces = append(pieces, split(before)...)
		}
		pieces = append(pieces, text[loc[0]:loc[1]])
		prev = loc[1]
	}
	if tail := strings.TrimSpace(text[prev:]); tail != "" {
		pieces = append(pieces, split(tail)...)
	}
	return pieces
}

// isFence reports whether s is a single complete fenced code block.
func isFence(s string) bool {
	return len(s) > 6 && strings.HasPrefix(s, "```") && strings.HasSuffix(s, "```")
}

func appendNonEmpty(pieces []string, parts ...string) []string {
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			pieces = append(pieces, p)
		}
	}
	return pieces
}
