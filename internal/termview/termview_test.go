package termview

import (
	"strings"
	"testing"

	"kbportal/internal/compare"
	"kbportal/internal/content"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestComparisonUnified(t *testing.T) {
	res := compare.Compare("a\nb", "a\nc\nd")

	out := Comparison("v1", "v2", res, compare.Unified, 80)

	require.Contains(t, out, "v1 → v2")
	require.Contains(t, out, "- b")
	require.Contains(t, out, "+ c")
	require.Contains(t, out, "+ d")
	require.Contains(t, out, "+1 -0 ~1 =1")
}

func TestComparisonSideBySide(t *testing.T) {
	res := compare.Compare("alpha\nbeta", "alpha\ngamma")

	out := Comparison("left", "right", res, compare.SideBySide, 80)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Contains(t, out, "left")
	require.Contains(t, out, "beta")
	require.Contains(t, out, "gamma")
	// header, underline, two records, summary
	require.Len(t, lines, 5)
}

func TestSegmentsIsolateHighlightedWords(t *testing.T) {
	_, added := compare.WordDiff("ลาได้ 10 วัน", "ลาได้ 12 วัน ต่อปี")

	got := segments("ลาได้ 12 วัน ต่อปี", added)
	require.Equal(t, []segment{
		{text: "ลาได้ ", kind: compare.Unchanged},
		{text: "12", kind: compare.Added},
		{text: " วัน ", kind: compare.Unchanged},
		{text: "ต่อปี", kind: compare.Added},
	}, got)

	require.Nil(t, segments("", nil))
	require.Equal(t, []segment{{text: " a ", kind: compare.Unchanged}}, segments(" a ", nil))
}

func TestComparisonWrapsLongLines(t *testing.T) {
	long := strings.Repeat("word ", 30) + "tail"
	res := compare.Compare("short", long)

	out := Comparison("left", "right", res, compare.SideBySide, 60)

	require.Contains(t, out, "tail")
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		require.LessOrEqual(t, lipgloss.Width(line), 60)
	}
}

func TestSummary(t *testing.T) {
	s := Summary(compare.Stats{Added: 1, Removed: 2, Modified: 3, Unchanged: 4, Similarity: 0.5})
	require.Equal(t, "+1 -2 ~3 =4  similarity 50%", s)
}

func TestDocument(t *testing.T) {
	docs := content.SeedDocuments()
	body := content.SeedContent()["1"]

	out, err := Document(docs[0], body, "notty", 100)
	require.NoError(t, err)
	require.Contains(t, out, docs[0].Title)
	require.Contains(t, out, "Related")
}

func TestMarkdownOmitsEmptySections(t *testing.T) {
	md := markdown(content.Document{ID: "x", Title: "T"}, "body")
	require.NotContains(t, md, "Tags:")
	require.NotContains(t, md, "## Related")
	require.True(t, strings.HasPrefix(md, "# T\n\n"))
}
