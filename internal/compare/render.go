package compare

import (
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
)

type Mode string

const (
	SideBySide Mode = "side-by-side"
	Unified    Mode = "unified"
)

// ErrInvalidMode is wrapped by ParseMode for unknown view modes.
var ErrInvalidMode = fmt.Errorf("invalid view mode")

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", SideBySide:
		return SideBySide, nil
	case Unified:
		return Unified, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Row is one rendered line. HTML carries the marked-up text.
type Row struct {
	Marker string `json:"marker,omitempty"`
	Number int    `json:"lineNumber"`
	Kind   Kind   `json:"type"`
	Text   string `json:"text"`
	HTML   string `json:"html"`
	Empty  bool   `json:"empty,omitempty"`
}

// View is the presentation model for one mode. Side-by-side fills Left and
// Right; unified fills Rows.
type View struct {
	Mode  Mode  `json:"mode"`
	Left  []Row `json:"left,omitempty"`
	Right []Row `json:"right,omitempty"`
	Rows  []Row `json:"rows,omitempty"`
	Stats Stats `json:"stats"`
}

func Render(records []LineRecord, mode Mode) View {
	v := View{
		Mode:  mode,
		Stats: Summarize(records),
	}

	if mode == Unified {
		v.Rows = unifiedRows(records)
		return v
	}

	v.Left = make([]Row, 0, len(records))
	v.Right = make([]Row, 0, len(records))
	for _, r := range records {
		v.Left = append(v.Left, Row{
			Number: r.Number,
			Kind:   r.Kind,
			Text:   r.Left,
			HTML:   Mark(r.Left, r.LeftHighlights),
			Empty:  r.Left == "",
		})
		v.Right = append(v.Right, Row{
			Number: r.Number,
			Kind:   r.Kind,
			Text:   r.Right,
			HTML:   Mark(r.Right, r.RightHighlights),
			Empty:  r.Right == "",
		})
	}
	return v
}

func unifiedRows(records []LineRecord) []Row {
	rows := make([]Row, 0, len(records))

	for _, r := range records {
		if r.Kind == Unchanged {
			rows = append(rows, Row{
				Marker: " ",
				Number: r.Number,
				Kind:   Unchanged,
				Text:   r.Left,
				HTML:   Mark(r.Left, nil),
			})
			continue
		}

		if r.Left != "" {
			rows = append(rows, Row{
				Marker: "-",
				Number: r.Number,
				Kind:   Removed,
				Text:   r.Left,
				HTML:   Mark(r.Left, r.LeftHighlights),
			})
		}
		if r.Right != "" {
			rows = append(rows, Row{
				Marker: "+",
				Number: r.Number,
				Kind:   Added,
				Text:   r.Right,
				HTML:   Mark(r.Right, r.RightHighlights),
			})
		}
	}

	return rows
}

// Summarize counts records per kind. Similarity is left at zero.
func Summarize(records []LineRecord) Stats {
	var s Stats
	for _, r := range records {
		switch r.Kind {
		case Added:
			s.Added++
		case Removed:
			s.Removed++
		case Modified:
			s.Modified++
		default:
			s.Unchanged++
		}
	}
	return s
}

// Similarity is 1 minus the character Levenshtein distance over the longer
// text's length. Two empty texts are identical.
func Similarity(left, right string) float64 {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(left, right, false)
	dist := dmp.DiffLevenshtein(diffs)

	longest := max(len([]rune(left)), len([]rune(right)))
	if longest == 0 {
		return 1
	}
	return 1 - float64(dist)/float64(longest)
}
