package compare

// Diff pairs left and right by index and classifies each pair. Lines are
// never realigned: an insertion in the middle shifts every later pair.
func Diff(left, right []string) []LineRecord {
	n := max(len(left), len(right))
	records := make([]LineRecord, 0, n)

	for i := 0; i < n; i++ {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}

		rec := LineRecord{
			Number:          i + 1,
			Left:            l,
			Right:           r,
			Kind:            classify(l, r),
			LeftHighlights:  []WordHighlight{},
			RightHighlights: []WordHighlight{},
		}

		if rec.Kind == Modified {
			rec.LeftHighlights, rec.RightHighlights = WordDiff(l, r)
		}

		records = append(records, rec)
	}

	return records
}

func classify(left, right string) Kind {
	switch {
	case left == right:
		return Unchanged
	case left == "":
		return Added
	case right == "":
		return Removed
	default:
		return Modified
	}
}

// Compare splits both texts and diffs them.
func Compare(leftText, rightText string) Result {
	records := Diff(SplitLines(leftText), SplitLines(rightText))

	stats := Summarize(records)
	stats.Similarity = Similarity(leftText, rightText)

	return Result{
		Records: records,
		Stats:   stats,
	}
}
