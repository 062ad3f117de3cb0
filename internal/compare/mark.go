package compare

import (
	"html"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

type span struct {
	start, end int
	kind       Kind
}

// Mark returns text as HTML with every highlighted word wrapped in
// <mark class="diff-<kind>">. Words are matched as whole words; regexp
// metacharacters in a word are matched literally.
func Mark(text string, highlights []WordHighlight) string {
	if len(highlights) == 0 {
		return html.EscapeString(text)
	}

	var spans []span
	seen := make(map[string]bool, len(highlights))

	for _, h := range highlights {
		if h.Word == "" || seen[h.Word] {
			continue
		}
		seen[h.Word] = true

		re := regexp.MustCompile(regexp.QuoteMeta(h.Word))
		for _, loc := range re.FindAllStringIndex(text, -1) {
			if atBoundary(text, loc[0], loc[1]) {
				spans = append(spans, span{start: loc[0], end: loc[1], kind: h.Kind})
			}
		}
	}

	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end > spans[j].end
	})

	var b strings.Builder
	pos := 0
	for _, s := range spans {
		if s.start < pos {
			continue
		}
		b.WriteString(html.EscapeString(text[pos:s.start]))
		b.WriteString(`<mark class="diff-` + string(s.kind) + `">`)
		b.WriteString(html.EscapeString(text[s.start:s.end]))
		b.WriteString(`</mark>`)
		pos = s.end
	}
	b.WriteString(html.EscapeString(text[pos:]))

	return b.String()
}

// atBoundary reports whether text[start:end] is not glued to a neighbouring
// word character. An edge of the match that is itself not a word character
// needs no boundary.
func atBoundary(text string, start, end int) bool {
	first, _ := utf8.DecodeRuneInString(text[start:end])
	if isWordRune(first) && start > 0 {
		prev, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(prev) {
			return false
		}
	}

	last, _ := utf8.DecodeLastRuneInString(text[start:end])
	if isWordRune(last) && end < len(text) {
		next, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(next) {
			return false
		}
	}

	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)
}
