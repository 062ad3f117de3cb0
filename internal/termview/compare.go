package termview

import (
	"fmt"
	"strings"

	"kbportal/internal/compare"

	"github.com/charmbracelet/lipgloss"
)

var (
	addStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	removeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	modifyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	unchangedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	numberStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(5).Align(lipgloss.Right)
	headerStyle    = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6")).
			Border(lipgloss.NormalBorder(), false, false, true, false)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	addWordStyle    = addStyle.Bold(true).Underline(true)
	removeWordStyle = removeStyle.Bold(true).Underline(true)
)

func kindStyle(k compare.Kind) lipgloss.Style {
	switch k {
	case compare.Added:
		return addStyle
	case compare.Removed:
		return removeStyle
	case compare.Modified:
		return modifyStyle
	}
	return unchangedStyle
}

// Comparison renders a comparison for a terminal of the given width. Long
// lines wrap inside their column.
func Comparison(leftName, rightName string, res compare.Result, mode compare.Mode, width int) string {
	view := compare.Render(res.Records, mode)

	byNumber := make(map[int]compare.LineRecord, len(res.Records))
	for _, r := range res.Records {
		byNumber[r.Number] = r
	}

	var sb strings.Builder
	if mode == compare.Unified {
		line := lipgloss.NewStyle().Width(max(width, 20))

		sb.WriteString(headerStyle.Render(fmt.Sprintf("%s → %s", leftName, rightName)))
		sb.WriteString("\n")
		for _, r := range view.Rows {
			rec := byNumber[r.Number]
			hl := rec.RightHighlights
			if r.Marker == "-" {
				hl = rec.LeftHighlights
			}

			prefix := numberStyle.Render(fmt.Sprint(r.Number)) + " " + kindStyle(r.Kind).Render(r.Marker) + " "
			sb.WriteString(line.Render(prefix + styleWords(r.Text, hl, kindStyle(r.Kind))))
			sb.WriteString("\n")
		}
	} else {
		col := (width - 1) / 2
		if col < 20 {
			col = 20
		}
		cell := lipgloss.NewStyle().Width(col)

		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			headerStyle.Width(col).Render(leftName),
			" ",
			headerStyle.Width(col).Render(rightName),
		))
		sb.WriteString("\n")

		for i := range view.Left {
			l, r := view.Left[i], view.Right[i]
			rec := byNumber[l.Number]

			sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
				cell.Render(numberStyle.Render(fmt.Sprint(l.Number))+" "+styleWords(l.Text, rec.LeftHighlights, kindStyle(l.Kind))),
				" ",
				cell.Render(numberStyle.Render(fmt.Sprint(r.Number))+" "+styleWords(r.Text, rec.RightHighlights, kindStyle(r.Kind))),
			))
			sb.WriteString("\n")
		}
	}

	sb.WriteString(footerStyle.Render(Summary(res.Stats)))
	sb.WriteString("\n")
	return sb.String()
}

type segment struct {
	text string
	kind compare.Kind // Added or Removed for highlighted words, else Unchanged
}

// segments splits text into runs, isolating every token listed in hl.
func segments(text string, hl []compare.WordHighlight) []segment {
	kinds := make(map[string]compare.Kind, len(hl))
	for _, h := range hl {
		kinds[h.Word] = h.Kind
	}

	var out []segment
	for _, tok := range compare.Tokenize(text) {
		if tok == "" {
			continue
		}
		k, ok := kinds[tok]
		if !ok {
			k = compare.Unchanged
		}
		if n := len(out); n > 0 && k == compare.Unchanged && out[n-1].kind == compare.Unchanged {
			out[n-1].text += tok
			continue
		}
		out = append(out, segment{text: tok, kind: k})
	}
	return out
}

func styleWords(text string, hl []compare.WordHighlight, base lipgloss.Style) string {
	var sb strings.Builder
	for _, seg := range segments(text, hl) {
		switch seg.kind {
		case compare.Added:
			sb.WriteString(addWordStyle.Render(seg.text))
		case compare.Removed:
			sb.WriteString(removeWordStyle.Render(seg.text))
		default:
			sb.WriteString(base.Render(seg.text))
		}
	}
	return sb.String()
}

func Summary(s compare.Stats) string {
	return fmt.Sprintf("+%d -%d ~%d =%d  similarity %.0f%%",
		s.Added, s.Removed, s.Modified, s.Unchanged, s.Similarity*100)
}
