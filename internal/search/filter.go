package search

import (
	"fmt"
	"sort"
	"time"
)

type Filters struct {
	Category  string `json:"category"`
	FileType  string `json:"fileType"`
	DateRange string `json:"dateRange"` // 7days | 30days | 3months | 1year
	SortBy    string `json:"sortBy"`    // relevance | date | title | category
}

// Documents filters the indexed hits and sorts them. "all" and "" disable a
// filter.
func (s *Service) Documents(f Filters) ([]Hit, error) {
	since, err := rangeStart(f.DateRange, s.now())
	if err != nil {
		return nil, err
	}

	out := []Hit{}
	for _, h := range s.index {
		if set(f.Category) && h.Category != f.Category {
			continue
		}
		if set(f.FileType) && h.FileType != f.FileType {
			continue
		}
		if !since.IsZero() && h.LastUpdated.Before(since) {
			continue
		}
		out = append(out, h)
	}

	less, err := sorter(f.SortBy, out)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, less)

	return out, nil
}

func set(v string) bool {
	return v != "" && v != "all"
}

func rangeStart(r string, now time.Time) (time.Time, error) {
	switch r {
	case "", "all":
		return time.Time{}, nil
	case "7days":
		return now.AddDate(0, 0, -7), nil
	case "30days":
		return now.AddDate(0, 0, -30), nil
	case "3months":
		return now.AddDate(0, -3, 0), nil
	case "1year":
		return now.AddDate(-1, 0, 0), nil
	}
	return time.Time{}, fmt.Errorf("unknown date range %q", r)
}

func sorter(by string, hits []Hit) (func(i, j int) bool, error) {
	switch by {
	case "", "relevance":
		return func(i, j int) bool { return hits[i].RelevanceScore > hits[j].RelevanceScore }, nil
	case "date":
		return func(i, j int) bool { return hits[i].LastUpdated.After(hits[j].LastUpdated) }, nil
	case "title":
		return func(i, j int) bool { return hits[i].Title < hits[j].Title }, nil
	case "category":
		return func(i, j int) bool { return hits[i].Category < hits[j].Category }, nil
	}
	return nil, fmt.Errorf("unknown sort %q", by)
}
