package response

import (
	"github.com/nivekneved/travellounge-sub002/internal/usecase/queries"
)

type SearchResponse struct {
	Entries      []*EntryResponse `json:"entries"`
	Total        int              `json:"total"`
	DateFiltered bool             `json:"dateFiltered"`
	Nights       int              `json:"nights,omitempty"`
}

func FromSearchResult(result *queries.SearchResult) *SearchResponse {
	entries := FromEntryViews(result.Entries)
	return &SearchResponse{
		Entries:      entries,
		Total:        len(entries),
		DateFiltered: result.DateFiltered,
		Nights:       result.Nights,
	}
}
