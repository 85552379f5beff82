package response

import (
	"time"

	"github.com/nivekneved/travellounge-sub002/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type InquiryResponse struct {
	ID         uuid.UUID  `json:"id"`
	EntryID    uuid.UUID  `json:"entryId"`
	EntryName  string     `json:"entryName"`
	GuestName  string     `json:"guestName"`
	GuestEmail string     `json:"guestEmail"`
	GuestPhone string     `json:"guestPhone,omitempty"`
	CheckIn    *time.Time `json:"checkIn,omitempty"`
	CheckOut   *time.Time `json:"checkOut,omitempty"`
	PartySize  int32      `json:"partySize"`
	Message    string     `json:"message,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func FromInquiryView(view *queries.InquiryView) *InquiryResponse {
	var resp InquiryResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromInquiryViews(views []*queries.InquiryView) []*InquiryResponse {
	out := make([]*InquiryResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromInquiryView(v))
	}
	return out
}
