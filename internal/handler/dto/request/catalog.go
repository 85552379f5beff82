package request

import (
	"github.com/nivekneved/travellounge-sub002/internal/usecase/commands"

	"github.com/google/uuid"
)

type UpsertEntryRequest struct {
	Name           string   `json:"name" binding:"required,max=200"`
	Description    string   `json:"description"`
	Category       string   `json:"category" binding:"required"`
	Images         []string `json:"images"`
	BasePriceCents int64    `json:"base_price_cents" binding:"gte=0"`
	Currency       string   `json:"currency"`
	Location       string   `json:"location"`
}

func (r UpsertEntryRequest) ToParams() commands.CreateEntryParams {
	return commands.CreateEntryParams{
		Name:           r.Name,
		Description:    r.Description,
		Category:       r.Category,
		Images:         r.Images,
		BasePriceCents: r.BasePriceCents,
		Currency:       r.Currency,
		Location:       r.Location,
	}
}

type AddResourceRequest struct {
	Name       string `json:"name" binding:"required,max=200"`
	TotalUnits int32  `json:"total_units" binding:"gte=1"`
}

func (r AddResourceRequest) ToParams(entryID uuid.UUID) commands.CreateResourceParams {
	return commands.CreateResourceParams{
		EntryID:    entryID,
		Name:       r.Name,
		TotalUnits: r.TotalUnits,
	}
}
