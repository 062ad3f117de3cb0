package compare

import (
	"strings"

	"znkr.io/diff"
	"znkr.io/diff/textdiff"
)

// Patch renders a unified patch between two texts. Unlike Diff it aligns
// lines by longest common subsequence, so it is an export format only.
// An empty string means the texts are equal.
func Patch(leftName, rightName, leftText, rightText string) string {
	body := textdiff.Unified(
		withNewline(leftText),
		withNewline(rightText),
		diff.Context(3),
	)
	if body == "" {
		return ""
	}

	return "--- a/" + leftName + "\n+++ b/" + rightName + "\n" + body
}

func withNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
