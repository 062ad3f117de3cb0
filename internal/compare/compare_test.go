package compare

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCompare_ModifiedMiddleLine(t *testing.T) {
	res := Compare("A\nB\nC", "A\nX\nC")

	want := []LineRecord{
		{Number: 1, Left: "A", Right: "A", Kind: Unchanged, LeftHighlights: []WordHighlight{}, RightHighlights: []WordHighlight{}},
		{
			Number: 2, Left: "B", Right: "X", Kind: Modified,
			LeftHighlights:  []WordHighlight{{Word: "B", Index: 0, Kind: Removed}},
			RightHighlights: []WordHighlight{{Word: "X", Index: 0, Kind: Added}},
		},
		{Number: 3, Left: "C", Right: "C", Kind: Unchanged, LeftHighlights: []WordHighlight{}, RightHighlights: []WordHighlight{}},
	}

	if diff := cmp.Diff(want, res.Records); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 1, res.Stats.Modified)
	require.Equal(t, 2, res.Stats.Unchanged)
}

func TestCompare_TrailingLineAdded(t *testing.T) {
	res := Compare("A\nB", "A\nB\nC")

	require.Len(t, res.Records, 3)
	last := res.Records[2]
	require.Equal(t, "", last.Left)
	require.Equal(t, "C", last.Right)
	require.Equal(t, Added, last.Kind)
	require.Empty(t, last.LeftHighlights)
	require.Empty(t, last.RightHighlights)
}

func TestCompare_EmptyInputs(t *testing.T) {
	res := Compare("", "")

	require.Len(t, res.Records, 1)
	require.Equal(t, Unchanged, res.Records[0].Kind)
	require.Equal(t, "", res.Records[0].Left)
	require.Equal(t, "", res.Records[0].Right)
	require.Equal(t, 1.0, res.Stats.Similarity)
}

func TestDiff_IdenticalInputsAreUnchanged(t *testing.T) {
	lines := []string{"# title", "", "  indented line", "last\r"}

	for _, r := range Diff(lines, lines) {
		require.Equal(t, Unchanged, r.Kind)
		require.Empty(t, r.LeftHighlights)
		require.Empty(t, r.RightHighlights)
	}
}

func TestDiff_ShorterRightIsRemoved(t *testing.T) {
	records := Diff([]string{"a", "b", "c", "d"}, []string{"a", "b"})

	require.Len(t, records, 4)
	require.Equal(t, Removed, records[2].Kind)
	require.Equal(t, Removed, records[3].Kind)
	require.Equal(t, "", records[3].Right)
}

func TestDiff_InsertionShiftsLaterLines(t *testing.T) {
	records := Diff(
		[]string{"one", "two", "three"},
		[]string{"one", "inserted", "two", "three"},
	)

	require.Len(t, records, 4)
	require.Equal(t, Unchanged, records[0].Kind)
	require.Equal(t, Modified, records[1].Kind)
	require.Equal(t, Modified, records[2].Kind)
	require.Equal(t, Added, records[3].Kind)
}

func TestDiff_Idempotent(t *testing.T) {
	left := SplitLines(leaveV1)
	right := SplitLines(leaveV2)

	if diff := cmp.Diff(Diff(left, right), Diff(left, right)); diff != "" {
		t.Fatalf("second run differs:\n%s", diff)
	}
}

func TestSplitLines(t *testing.T) {
	require.Equal(t, []string{""}, SplitLines(""))
	require.Equal(t, []string{"a", ""}, SplitLines("a\n"))
	require.Equal(t, []string{" a\r", "b "}, SplitLines(" a\r\nb "))
}

func TestTokenize_KeepsWhitespaceRuns(t *testing.T) {
	require.Equal(t, []string{"", " ", "a", "  ", "b", "\t", ""}, Tokenize(" a  b\t"))
	require.Equal(t, []string{""}, Tokenize(""))
	require.Equal(t, []string{"ลา", "　", "6"}, Tokenize("ลา　6"))
}

func TestWordDiff_SetMembership(t *testing.T) {
	removed, added := WordDiff("a a b", "a c")

	require.Equal(t, []WordHighlight{{Word: "b", Index: 4, Kind: Removed}}, removed)
	require.Equal(t, []WordHighlight{{Word: "c", Index: 2, Kind: Added}}, added)
}

func TestWordDiff_OneSidedWordsStayOnTheirSide(t *testing.T) {
	removed, added := WordDiff("keep gone keep", "keep new keep")

	for _, h := range removed {
		require.Equal(t, Removed, h.Kind)
		require.NotEqual(t, "new", h.Word)
	}
	for _, h := range added {
		require.Equal(t, Added, h.Kind)
		require.NotEqual(t, "gone", h.Word)
	}
	require.Len(t, removed, 1)
	require.Len(t, added, 1)
}

func TestMark(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		highlights []WordHighlight
		want       string
	}{
		{
			name: "no highlights escapes",
			text: "a<b & c",
			want: "a&lt;b &amp; c",
		},
		{
			name:       "whole words only",
			text:       "cat concat cat",
			highlights: []WordHighlight{{Word: "cat", Kind: Removed}},
			want:       `<mark class="diff-removed">cat</mark> concat <mark class="diff-removed">cat</mark>`,
		},
		{
			name:       "metacharacters are literal",
			text:       "cost (USD) is 1.5",
			highlights: []WordHighlight{{Word: "(USD)", Kind: Added}, {Word: "1.5", Kind: Added}},
			want:       `cost <mark class="diff-added">(USD)</mark> is <mark class="diff-added">1.5</mark>`,
		},
		{
			name:       "dot does not match any char",
			text:       "1x5 1.5",
			highlights: []WordHighlight{{Word: "1.5", Kind: Removed}},
			want:       `1x5 <mark class="diff-removed">1.5</mark>`,
		},
		{
			name:       "thai text",
			text:       "- พนักงานที่ทำงานครบ 1 ปี: 8 วัน",
			highlights: []WordHighlight{{Word: "8", Kind: Added}},
			want:       `- พนักงานที่ทำงานครบ 1 ปี: <mark class="diff-added">8</mark> วัน`,
		},
		{
			name:       "duplicate highlights collapse",
			text:       "x y",
			highlights: []WordHighlight{{Word: "x", Kind: Added}, {Word: "x", Kind: Added}},
			want:       `<mark class="diff-added">x</mark> y`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Mark(tt.text, tt.highlights))
		})
	}
}

func TestRender_Unified(t *testing.T) {
	res := Compare("A\nB\n", "A\nX\nnew")
	v := Render(res.Records, Unified)

	var got []string
	for _, r := range v.Rows {
		got = append(got, r.Marker+r.Text)
	}

	require.Equal(t, []string{" A", "-B", "+X", "+new"}, got)
	require.Equal(t, Stats{Added: 1, Modified: 1, Unchanged: 1}, v.Stats)
	require.Empty(t, v.Left)
}

func TestRender_SideBySide(t *testing.T) {
	res := Compare("A\nB", "A")
	v := Render(res.Records, SideBySide)

	require.Len(t, v.Left, 2)
	require.Len(t, v.Right, 2)
	require.True(t, v.Right[1].Empty)
	require.False(t, v.Left[1].Empty)
	require.Equal(t, Removed, v.Left[1].Kind)
	require.Equal(t, 1, v.Stats.Removed)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	require.Equal(t, SideBySide, m)

	m, err = ParseMode("unified")
	require.NoError(t, err)
	require.Equal(t, Unified, m)

	_, err = ParseMode("split")
	require.ErrorIs(t, err, ErrInvalidMode)
}

func TestSimilarity(t *testing.T) {
	require.Equal(t, 1.0, Similarity("same", "same"))
	require.InDelta(t, 2.0/3.0, Similarity("abc", "abd"), 1e-9)
	require.Equal(t, 0.0, Similarity("", "abc"))
}

func TestPatch(t *testing.T) {
	p := Patch("v1.md", "v2.md", "A\nB\nC", "A\nX\nC")

	require.True(t, strings.HasPrefix(p, "--- a/v1.md\n+++ b/v2.md\n@@"))
	require.Contains(t, p, "\n-B\n")
	require.Contains(t, p, "\n+X\n")

	require.Equal(t, "", Patch("a", "b", "same\n", "same"))
}

const leaveV1 = `# นโยบายการลาพักร้อนประจำปี 2568

## 2. สิทธิการลาพักร้อน
- พนักงานที่ทำงานครบ 1 ปี: 6 วัน
- พนักงานที่ทำงานครบ 3 ปี: 10 วัน  `

const leaveV2 = `# นโยบายการลาพักร้อนประจำปี 2569

## 2. สิทธิการลาพักร้อน
- พนักงานที่ทำงานครบ 1 ปี: 8 วัน
- พนักงานที่ทำงานครบ 3 ปี: 12 วัน  
- พนักงานที่ทำงานครบ 10 ปี: 25 วัน`
