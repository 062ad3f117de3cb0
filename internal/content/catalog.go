package content

import (
	"sort"
	"strings"
	"time"
)

type Related struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Document is catalog metadata; bodies come from a Source.
type Document struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Version     string    `json:"version"`
	LastUpdated time.Time `json:"lastUpdated"`
	Author      string    `json:"author"`
	FileType    string    `json:"fileType"`
	Size        string    `json:"size"`
	Tags        []string  `json:"tags,omitempty"`
	Related     []Related `json:"relatedDocuments,omitempty"`
}

type Catalog struct {
	docs []Document
}

func NewCatalog(docs []Document) *Catalog {
	cp := append([]Document(nil), docs...)
	sort.SliceStable(cp, func(i, j int) bool { return cp[i].ID < cp[j].ID })
	return &Catalog{docs: cp}
}

func (c *Catalog) Get(id string) (Document, bool) {
	for _, d := range c.docs {
		if d.ID == id {
			return d, true
		}
	}
	return Document{}, false
}

// Filter matches query against title or author, case-insensitively.
// An empty query or category "all" does not filter.
func (c *Catalog) Filter(query, category string) []Document {
	q := strings.ToLower(strings.TrimSpace(query))

	out := []Document{}
	for _, d := range c.docs {
		if q != "" &&
			!strings.Contains(strings.ToLower(d.Title), q) &&
			!strings.Contains(strings.ToLower(d.Author), q) {
			continue
		}
		if category != "" && category != "all" && d.Category != category {
			continue
		}
		out = append(out, d)
	}
	return out
}
