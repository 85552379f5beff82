package request

import (
	"strings"
	"time"

	"github.com/nivekneved/travellounge-sub002/internal/usecase/commands"

	"github.com/google/uuid"
)

type SubmitInquiryRequest struct {
	EntryID    uuid.UUID  `json:"entry_id" binding:"required"`
	GuestName  string     `json:"guest_name" binding:"required,max=200"`
	GuestEmail string     `json:"guest_email" binding:"required,email"`
	GuestPhone string     `json:"guest_phone"`
	CheckIn    *time.Time `json:"check_in,omitempty"`
	CheckOut   *time.Time `json:"check_out,omitempty"`
	PartySize  int32      `json:"party_size" binding:"required,gte=1"`
	Message    string     `json:"message" binding:"max=2000"`
}

func (r SubmitInquiryRequest) ToParams() commands.SubmitInquiryParams {
	return commands.SubmitInquiryParams{
		EntryID:    r.EntryID,
		GuestName:  strings.TrimSpace(r.GuestName),
		GuestEmail: strings.TrimSpace(r.GuestEmail),
		GuestPhone: strings.TrimSpace(r.GuestPhone),
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		PartySize:  r.PartySize,
		Message:    strings.TrimSpace(r.Message),
	}
}

type UpdateInquiryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
