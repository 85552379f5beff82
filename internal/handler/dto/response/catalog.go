package response

import (
	"time"

	"github.com/nivekneved/travellounge-sub002/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type EntryResponse struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Category       string      `json:"category"`
	Images         []string    `json:"images"`
	BasePriceCents int64       `json:"basePriceCents"`
	Currency       string      `json:"currency"`
	Location       string      `json:"location"`
	ResourceIDs    []uuid.UUID `json:"resourceIds"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

func FromEntryView(view *queries.EntryView) *EntryResponse {
	var resp EntryResponse
	// field names line up one to one
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromEntryViews(views []*queries.EntryView) []*EntryResponse {
	out := make([]*EntryResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromEntryView(v))
	}
	return out
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
