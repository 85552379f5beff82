package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type EntryView struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Category       string      `json:"category"`
	Images         []string    `json:"images"`
	BasePriceCents int64       `json:"base_price_cents"`
	Currency       string      `json:"currency"`
	Location       string      `json:"location"`
	ResourceIDs    []uuid.UUID `json:"resource_ids"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

type LedgerRowView struct {
	ResourceID uuid.UUID `json:"resource_id"`
	Day        time.Time `json:"day"`
	Blocked    bool      `json:"blocked"`
	UnitsLeft  *int32    `json:"units_left,omitempty"`
}

type InquiryView struct {
	ID         uuid.UUID  `json:"id"`
	EntryID    uuid.UUID  `json:"entry_id"`
	EntryName  string     `json:"entry_name"`
	GuestName  string     `json:"guest_name"`
	GuestEmail string     `json:"guest_email"`
	GuestPhone string     `json:"guest_phone,omitempty"`
	CheckIn    *time.Time `json:"check_in,omitempty"`
	CheckOut   *time.Time `json:"check_out,omitempty"`
	PartySize  int32      `json:"party_size"`
	Message    string     `json:"message,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
