package commands

import (
	"context"
	"time"

	"github.com/nivekneved/travellounge-sub002/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidLedgerRange = errs.New("invalid ledger date range")
	ErrLedgerRangeTooWide = errs.New("ledger date range too wide")
)

// Admin bulk writes are capped so a fat-fingered year doesn't flood the table.
const maxLedgerRangeDays = 366

type UpsertLedgerRangeParams struct {
	ResourceID uuid.UUID
	From       time.Time
	To         time.Time // exclusive
	Blocked    bool
	UnitsLeft  *int32
	PriceCents *int64
}

type LedgerCommands interface {
	UpsertRange(ctx context.Context, params UpsertLedgerRangeParams) (int, error)
}

type ledgerCommandsImpl struct {
	catalogRepo CatalogRepository
	ledgerRepo  LedgerRepository
}

func NewLedgerCommands(catalogRepo CatalogRepository, ledgerRepo LedgerRepository) LedgerCommands {
	return &ledgerCommandsImpl{catalogRepo: catalogRepo, ledgerRepo: ledgerRepo}
}

// UpsertRange writes one ledger row per day in [From, To) for the resource.
// Returns the number of days written.
func (c *ledgerCommandsImpl) UpsertRange(ctx context.Context, params UpsertLedgerRangeParams) (int, error) {
	from := truncateToDay(params.From)
	to := truncateToDay(params.To)
	if !to.After(from) {
		return 0, ErrInvalidLedgerRange
	}
	days := int(to.Sub(from).Hours() / 24)
	if days > maxLedgerRangeDays {
		return 0, ErrLedgerRangeTooWide
	}

	res, err := c.catalogRepo.FindResourceSnapshot(ctx, params.ResourceID)
	if err != nil {
		return 0, err
	}
	if res == nil {
		return 0, ErrResourceNotFound
	}

	upserts := make([]LedgerUpsert, 0, days)
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		upserts = append(upserts, LedgerUpsert{
			ResourceID: params.ResourceID,
			Day:        day,
			Blocked:    params.Blocked,
			UnitsLeft:  params.UnitsLeft,
			PriceCents: params.PriceCents,
		})
	}

	if err := c.ledgerRepo.UpsertRange(ctx, upserts); err != nil {
		return 0, err
	}
	return days, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
