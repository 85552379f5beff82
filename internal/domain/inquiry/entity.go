package inquiry

import (
	"errors"
	"strings"
	"time"

	"github.com/nivekneved/travellounge-sub002/internal/domain/availability"

	"github.com/google/uuid"
)

var (
	ErrEmptyGuestName = errors.New("guest name cannot be empty")
	ErrInvalidEmail   = errors.New("invalid guest email")
	ErrInvalidParty   = errors.New("party size must be positive")
	ErrMessageTooLong = errors.New("message too long")
)

const MaxMessageLength = 2000

// Inquiry is a booking request submitted from the storefront. It carries the
// guest's contact details and the stay they asked about; an administrator
// follows up out of band and moves the status.
type Inquiry struct {
	id         uuid.UUID
	entryID    uuid.UUID
	guestName  string
	guestEmail string
	guestPhone string
	stay       *availability.Stay
	partySize  int32
	message    string
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewInquiry(
	entryID uuid.UUID,
	guestName, guestEmail, guestPhone string,
	stay *availability.Stay,
	partySize int32,
	message string,
	now time.Time,
) (*Inquiry, error) {
	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		return nil, ErrEmptyGuestName
	}
	guestEmail = strings.TrimSpace(guestEmail)
	if !strings.Contains(guestEmail, "@") {
		return nil, ErrInvalidEmail
	}
	if partySize < 1 {
		return nil, ErrInvalidParty
	}
	message = strings.TrimSpace(message)
	if len(message) > MaxMessageLength {
		return nil, ErrMessageTooLong
	}

	return &Inquiry{
		id:         uuid.New(),
		entryID:    entryID,
		guestName:  guestName,
		guestEmail: guestEmail,
		guestPhone: strings.TrimSpace(guestPhone),
		stay:       stay,
		partySize:  partySize,
		message:    message,
		status:     StatusPending,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructInquiry(
	id, entryID uuid.UUID,
	guestName, guestEmail, guestPhone string,
	stay *availability.Stay,
	partySize int32,
	message string,
	status Status,
	createdAt, updatedAt time.Time,
) *Inquiry {
	return &Inquiry{
		id:         id,
		entryID:    entryID,
		guestName:  guestName,
		guestEmail: guestEmail,
		guestPhone: guestPhone,
		stay:       stay,
		partySize:  partySize,
		message:    message,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// SetStatus applies an admin triage decision.
func (i *Inquiry) SetStatus(status Status, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	i.status = status
	i.updatedAt = now
	return nil
}

func (i *Inquiry) ID() uuid.UUID { return i.id }
func (i *Inquiry) EntryID() uuid.UUID { return i.entryID }
func (i *Inquiry) GuestName() string { return i.guestName }
func (i *Inquiry) GuestEmail() string { return i.guestEmail }
func (i *Inquiry) GuestPhone() string { return i.guestPhone }
func (i *Inquiry) Stay() *availability.Stay { return i.stay }
func (i *Inquiry) PartySize() int32 { return i.partySize }
func (i *Inquiry) Message() string { return i.message }
func (i *Inquiry) Status() Status { return i.status }
func (i *Inquiry) CreatedAt() time.Time { return i.createdAt }
func (i *Inquiry) UpdatedAt() time.Time { return i.updatedAt }
