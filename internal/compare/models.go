package compare

// Kind classifies a line pair or a highlighted word.
type Kind string

const (
	Unchanged Kind = "unchanged"
	Added     Kind = "added"
	Removed   Kind = "removed"
	Modified  Kind = "modified"
)

// WordHighlight is a token present on one side of a modified line only.
type WordHighlight struct {
	Word  string `json:"word"`
	Index int    `json:"index"`
	Kind  Kind   `json:"type"`
}

// LineRecord is one index-aligned pair of lines.
type LineRecord struct {
	Number          int             `json:"lineNumber"`
	Left            string          `json:"leftLine"`
	Right           string          `json:"rightLine"`
	Kind            Kind            `json:"type"`
	LeftHighlights  []WordHighlight `json:"leftHighlights"`
	RightHighlights []WordHighlight `json:"rightHighlights"`
}

type Stats struct {
	Added      int     `json:"added"`
	Removed    int     `json:"removed"`
	Modified   int     `json:"modified"`
	Unchanged  int     `json:"unchanged"`
	Similarity float64 `json:"similarity"`
}

// Result is the outcome of comparing two texts. It is built fresh for every
// comparison and never modified afterwards.
type Result struct {
	Records []LineRecord `json:"lines"`
	Stats   Stats        `json:"stats"`
}
