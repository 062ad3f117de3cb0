package compare

import "strings"

// SplitLines breaks text on '\n'. Content is kept verbatim, including any
// trailing '\r'. An empty text is a single empty line.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}
