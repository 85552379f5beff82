package commands

import (
	"context"
	"time"

	"github.com/nivekneved/travellounge-sub002/internal/domain/availability"
	"github.com/nivekneved/travellounge-sub002/internal/domain/inquiry"
	"github.com/nivekneved/travellounge-sub002/internal/pkg/clock"
	"github.com/nivekneved/travellounge-sub002/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInquiryNotFound = errs.New("inquiry not found")
	ErrInvalidInquiry  = errs.New("invalid inquiry")
	ErrInvalidStatus   = errs.New("invalid inquiry status")
)

type SubmitInquiryParams struct {
	EntryID    uuid.UUID
	GuestName  string
	GuestEmail string
	GuestPhone string
	CheckIn    *time.Time
	CheckOut   *time.Time
	PartySize  int32
	Message    string
}

type InquiryCommands interface {
	Submit(ctx context.Context, params SubmitInquiryParams) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

type inquiryCommandsImpl struct {
	inquiryRepo InquiryRepository
	catalogRepo CatalogRepository
	queries     InquiryFinder
	clock       clock.Clock
}

// InquiryFinder is the slice of the read side the status update needs to
// confirm existence.
type InquiryFinder interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

func NewInquiryCommands(inquiryRepo InquiryRepository, catalogRepo CatalogRepository, finder InquiryFinder, clock clock.Clock) InquiryCommands {
	return &inquiryCommandsImpl{
		inquiryRepo: inquiryRepo,
		catalogRepo: catalogRepo,
		queries:     finder,
		clock:       clock,
	}
}

func (c *inquiryCommandsImpl) Submit(ctx context.Context, params SubmitInquiryParams) (uuid.UUID, error) {
	entry, err := c.catalogRepo.FindSnapshot(ctx, params.EntryID)
	if err != nil {
		return uuid.Nil, err
	}
	if entry == nil {
		return uuid.Nil, ErrEntryNotFound
	}

	// Stay dates on an inquiry follow search semantics: both or neither,
	// invalid input recorded as undated rather than rejected.
	var stay *availability.Stay
	if params.CheckIn != nil && params.CheckOut != nil {
		if s, stayErr := availability.NewStay(*params.CheckIn, *params.CheckOut); stayErr == nil {
			stay = &s
		}
	}

	inq, err := inquiry.NewInquiry(
		params.EntryID,
		params.GuestName, params.GuestEmail, params.GuestPhone,
		stay,
		params.PartySize,
		params.Message,
		c.clock.Now(),
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidInquiry)
	}

	if err := c.inquiryRepo.Create(ctx, inq); err != nil {
		return uuid.Nil, err
	}
	return inq.ID(), nil
}

func (c *inquiryCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, statusStr string) error {
	status, err := inquiry.NewStatus(statusStr)
	if err != nil {
		return ErrInvalidStatus
	}

	exists, err := c.queries.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrInquiryNotFound
	}

	return c.inquiryRepo.UpdateStatus(ctx, id, status, c.clock.Now())
}
