package compare

import (
	"regexp"
	"strings"
)

// whitespace mirrors the separator set of an ECMAScript \s class.
var whitespace = regexp.MustCompile(`[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+`)

// Tokenize splits a line into words and the whitespace runs between them.
// A line that starts or ends with whitespace gets an empty token at that
// edge, so token indexes line up with a capturing split.
func Tokenize(line string) []string {
	seps := whitespace.FindAllStringIndex(line, -1)
	tokens := make([]string, 0, 2*len(seps)+1)

	prev := 0
	for _, s := range seps {
		tokens = append(tokens, line[prev:s[0]], line[s[0]:s[1]])
		prev = s[1]
	}
	return append(tokens, line[prev:])
}

// WordDiff reports the tokens of left missing from right (removed) and the
// tokens of right missing from left (added). Membership is by set: every
// occurrence of a word is flagged or none is.
func WordDiff(left, right string) (removed, added []WordHighlight) {
	lt, rt := Tokenize(left), Tokenize(right)
	return onlyIn(lt, rt, Removed), onlyIn(rt, lt, Added)
}

func onlyIn(tokens, other []string, kind Kind) []WordHighlight {
	set := make(map[string]struct{}, len(other))
	for _, t := range other {
		set[t] = struct{}{}
	}

	out := []WordHighlight{}
	for i, t := range tokens {
		if strings.TrimSpace(t) == "" {
			continue
		}
		if _, ok := set[t]; ok {
			continue
		}
		out = append(out, WordHighlight{Word: t, Index: i, Kind: kind})
	}
	return out
}
