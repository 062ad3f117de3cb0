package termview

import (
	"fmt"
	"strings"

	"kbportal/internal/content"

	"github.com/charmbracelet/glamour"
)

// Document renders catalog metadata and the body as markdown. style is a
// glamour standard style name such as "dark", "light" or "notty"; empty
// picks one from the terminal.
func Document(doc content.Document, body, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}

	out, err := r.Render(markdown(doc, body))
	if err != nil {
		return "", fmt.Errorf("render document %s: %w", doc.ID, err)
	}
	return out, nil
}

func markdown(doc content.Document, body string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", doc.Title)
	fmt.Fprintf(&sb, "*%s · v%s · %s · %s*\n\n",
		doc.Category, doc.Version, doc.Author, doc.LastUpdated.Format("2006-01-02"))
	if len(doc.Tags) > 0 {
		fmt.Fprintf(&sb, "Tags: %s\n\n", strings.Join(doc.Tags, ", "))
	}
	sb.WriteString(body)
	sb.WriteString("\n")

	if len(doc.Related) > 0 {
		sb.WriteString("\n## Related\n\n")
		for _, r := range doc.Related {
			fmt.Fprintf(&sb, "- %s (%s)\n", r.Title, r.ID)
		}
	}
	return sb.String()
}
