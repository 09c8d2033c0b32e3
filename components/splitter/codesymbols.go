package splitter

import (
	"regexp"
	"strings"
)

var codeSymbolRE = regexp.MustCompile(`(?m)^[ \t]*(func |def |class |function |type |export |const |let |var )`)

// CodeSymbols cuts before top-level symbol declarations. The patterns are
// Go/Python/JS-biased heuristics for the code structure profile.
type CodeSymbols struct{}

var _ Splitter = CodeSymbols{}

func (CodeSymbols) Split(text string) []string {
	return splitBefore(strings.TrimSpace(text), codeSymbolRE)
}
