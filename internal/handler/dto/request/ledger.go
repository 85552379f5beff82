package request

import (
	"time"

	"github.com/nivekneved/travellounge-sub002/internal/usecase/commands"

	"github.com/google/uuid"
)

// UpsertLedgerRequest covers [from, to) so back-to-back submissions for
// adjacent ranges never double-write a day.
type UpsertLedgerRequest struct {
	ResourceID uuid.UUID `json:"resource_id" binding:"required"`
	From       time.Time `json:"from" binding:"required"`
	To         time.Time `json:"to" binding:"required"`
	Blocked    bool      `json:"blocked"`
	UnitsLeft  *int32    `json:"units_left,omitempty"`
	PriceCents *int64    `json:"price_cents,omitempty"`
}

func (r UpsertLedgerRequest) ToParams() commands.UpsertLedgerRangeParams {
	return commands.UpsertLedgerRangeParams{
		ResourceID: r.ResourceID,
		From:       r.From,
		To:         r.To,
		Blocked:    r.Blocked,
		UnitsLeft:  r.UnitsLeft,
		PriceCents: r.PriceCents,
	}
}
