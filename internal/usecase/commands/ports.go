package commands

import (
	"context"
	"time"

	"github.com/nivekneved/travellounge-sub002/internal/domain/catalog"
	"github.com/nivekneved/travellounge-sub002/internal/domain/inquiry"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types
type EntrySnapshot struct {
	ID       uuid.UUID
	Name     string
	Category string
}

type ResourceSnapshot struct {
	ID         uuid.UUID
	EntryID    uuid.UUID
	Name       string
	TotalUnits int32
}

// LedgerUpsert is one day's availability/price write for a resource.
type LedgerUpsert struct {
	ResourceID uuid.UUID
	Day        time.Time
	Blocked    bool
	UnitsLeft  *int32
	PriceCents *int64
}

type CatalogRepository interface {
	Create(ctx context.Context, entry *catalog.Entry) error
	Update(ctx context.Context, entry *catalog.Entry) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindSnapshot(ctx context.Context, id uuid.UUID) (*EntrySnapshot, error)
	AddResource(ctx context.Context, res *catalog.BookableResource) error
	DeleteResource(ctx context.Context, id uuid.UUID) error
	FindResourceSnapshot(ctx context.Context, id uuid.UUID) (*ResourceSnapshot, error)
}

type LedgerRepository interface {
	// UpsertRange writes one row per (resource, day) over [from, to),
	// replacing existing rows, and notifies the ledger change feed.
	UpsertRange(ctx context.Context, upserts []LedgerUpsert) error
}

type InquiryRepository interface {
	Create(ctx context.Context, inq *inquiry.Inquiry) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status inquiry.Status, updatedAt time.Time) error
}
