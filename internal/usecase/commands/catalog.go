package commands

import (
	"context"

	"github.com/nivekneved/travellounge-sub002/internal/domain/catalog"
	"github.com/nivekneved/travellounge-sub002/internal/pkg/clock"
	"github.com/nivekneved/travellounge-sub002/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEntryNotFound    = errs.New("catalog entry not found")
	ErrResourceNotFound = errs.New("bookable resource not found")
	ErrInvalidEntry     = errs.New("invalid catalog entry")
)

type CreateEntryParams struct {
	Name           string
	Description    string
	Category       string
	Images         []string
	BasePriceCents int64
	Currency       string
	Location       string
}

type CreateResourceParams struct {
	EntryID    uuid.UUID
	Name       string
	TotalUnits int32
}

type CatalogCommands interface {
	CreateEntry(ctx context.Context, params CreateEntryParams) (uuid.UUID, error)
	UpdateEntry(ctx context.Context, id uuid.UUID, params CreateEntryParams) error
	DeleteEntry(ctx context.Context, id uuid.UUID) error
	AddResource(ctx context.Context, params CreateResourceParams) (uuid.UUID, error)
	DeleteResource(ctx context.Context, id uuid.UUID) error
}

type catalogCommandsImpl struct {
	repo  CatalogRepository
	clock clock.Clock
}

func NewCatalogCommands(repo CatalogRepository, clock clock.Clock) CatalogCommands {
	return &catalogCommandsImpl{repo: repo, clock: clock}
}

func (c *catalogCommandsImpl) CreateEntry(ctx context.Context, params CreateEntryParams) (uuid.UUID, error) {
	entry, err := buildEntry(params, c.clock)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidEntry)
	}

	if err := c.repo.Create(ctx, entry); err != nil {
		return uuid.Nil, err
	}
	return entry.ID(), nil
}

func (c *catalogCommandsImpl) UpdateEntry(ctx context.Context, id uuid.UUID, params CreateEntryParams) error {
	snapshot, err := c.repo.FindSnapshot(ctx, id)
	if err != nil {
		return err
	}
	if snapshot == nil {
		return ErrEntryNotFound
	}

	entry, err := buildEntry(params, c.clock)
	if err != nil {
		return errs.Mark(err, ErrInvalidEntry)
	}

	// Identity is immutable: rebuild the aggregate under the existing ID.
	updated := catalog.ReconstructEntry(
		snapshot.ID,
		entry.Name(), entry.Description(), entry.Category(),
		entry.Images(), entry.BasePrice(), entry.Location(),
		nil,
		c.clock.Now(), c.clock.Now(),
	)
	return c.repo.Update(ctx, updated)
}

func (c *catalogCommandsImpl) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	snapshot, err := c.repo.FindSnapshot(ctx, id)
	if err != nil {
		return err
	}
	if snapshot == nil {
		return ErrEntryNotFound
	}
	return c.repo.Delete(ctx, id)
}

func (c *catalogCommandsImpl) AddResource(ctx context.Context, params CreateResourceParams) (uuid.UUID, error) {
	snapshot, err := c.repo.FindSnapshot(ctx, params.EntryID)
	if err != nil {
		return uuid.Nil, err
	}
	if snapshot == nil {
		return uuid.Nil, ErrEntryNotFound
	}

	res, err := catalog.NewBookableResource(params.EntryID, params.Name, params.TotalUnits)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidEntry)
	}

	if err := c.repo.AddResource(ctx, res); err != nil {
		return uuid.Nil, err
	}
	return res.ID(), nil
}

func (c *catalogCommandsImpl) DeleteResource(ctx context.Context, id uuid.UUID) error {
	snapshot, err := c.repo.FindResourceSnapshot(ctx, id)
	if err != nil {
		return err
	}
	if snapshot == nil {
		return ErrResourceNotFound
	}
	return c.repo.DeleteResource(ctx, id)
}

func buildEntry(params CreateEntryParams, clk clock.Clock) (*catalog.Entry, error) {
	category, err := catalog.NewCategory(params.Category)
	if err != nil {
		return nil, err
	}
	images, err := catalog.NewImages(params.Images)
	if err != nil {
		return nil, err
	}
	price, err := catalog.NewMoney(params.BasePriceCents, params.Currency)
	if err != nil {
		return nil, err
	}

	return catalog.NewEntry(
		params.Name,
		params.Description,
		category,
		images,
		price,
		catalog.NewLocation(params.Location),
		clk.Now(),
	)
}
