//go:build unit || e2e

package builder

import (
	"time"

	"github.com/nivekneved/travellounge-sub002/internal/domain/availability"
	dominquiry "github.com/nivekneved/travellounge-sub002/internal/domain/inquiry"
	reqdto "github.com/nivekneved/travellounge-sub002/internal/handler/dto/request"

	"github.com/google/uuid"
)

type InquiryBuilder struct {
	EntryID    uuid.UUID
	GuestName  string
	GuestEmail string
	GuestPhone string
	CheckIn    *time.Time
	CheckOut   *time.Time
	PartySize  int32
	Message    string
	CreatedAt  time.Time
}

func NewInquiryBuilder() *InquiryBuilder {
	checkIn := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 4)
	return &InquiryBuilder{
		EntryID:    uuid.New(),
		GuestName:  "Anita Ramgoolam",
		GuestEmail: "anita@example.com",
		GuestPhone: "+230 5123 4567",
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
		PartySize:  2,
		Message:    "Looking for a sea-view room for our anniversary.",
		CreatedAt:  time.Now(),
	}
}

func (b *InquiryBuilder) With(mutate func(*InquiryBuilder)) *InquiryBuilder {
	mutate(b)
	return b
}

func (b *InquiryBuilder) BuildDomain() (*dominquiry.Inquiry, error) {
	var stay *availability.Stay
	if b.CheckIn != nil && b.CheckOut != nil {
		if s, err := availability.NewStay(*b.CheckIn, *b.CheckOut); err == nil {
			stay = &s
		}
	}
	return dominquiry.NewInquiry(
		b.EntryID,
		b.GuestName, b.GuestEmail, b.GuestPhone,
		stay,
		b.PartySize,
		b.Message,
		b.CreatedAt,
	)
}

func (b *InquiryBuilder) BuildSubmitRequestDTO() reqdto.SubmitInquiryRequest {
	return reqdto.SubmitInquiryRequest{
		EntryID:    b.EntryID,
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		GuestPhone: b.GuestPhone,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		PartySize:  b.PartySize,
		Message:    b.Message,
	}
}
