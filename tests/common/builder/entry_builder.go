//go:build unit || e2e

package builder

import (
	"time"

	domcatalog "github.com/nivekneved/travellounge-sub002/internal/domain/catalog"
	reqdto "github.com/nivekneved/travellounge-sub002/internal/handler/dto/request"
	"github.com/nivekneved/travellounge-sub002/internal/usecase/queries"

	"github.com/google/uuid"
)

type EntryBuilder struct {
	Name           string
	Description    string
	Category       string
	Images         []string
	BasePriceCents int64
	Currency       string
	Location       string
	ResourceIDs    []uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewEntryBuilder() *EntryBuilder {
	now := time.Now()
	return &EntryBuilder{
		Name:           "Paradise Cove Resort",
		Description:    "Beachfront resort on the north coast",
		Category:       "Luxury Resort",
		Images:         []string{"https://img.example.com/cove-1.jpg"},
		BasePriceCents: 4_500_00,
		Currency:       "MUR",
		Location:       "Grand Baie",
		ResourceIDs:    []uuid.UUID{uuid.New()},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *EntryBuilder) With(mutate func(*EntryBuilder)) *EntryBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *EntryBuilder) BuildDomain() (*domcatalog.Entry, error) {
	category, err := domcatalog.NewCategory(b.Category)
	if err != nil {
		return nil, err
	}
	images, err := domcatalog.NewImages(b.Images)
	if err != nil {
		return nil, err
	}
	price, err := domcatalog.NewMoney(b.BasePriceCents, b.Currency)
	if err != nil {
		return nil, err
	}
	return domcatalog.NewEntry(
		b.Name,
		b.Description,
		category,
		images,
		price,
		domcatalog.NewLocation(b.Location),
		b.CreatedAt,
	)
}

func (b *EntryBuilder) BuildView() *queries.EntryView {
	return &queries.EntryView{
		ID:             uuid.New(),
		Name:           b.Name,
		Description:    b.Description,
		Category:       b.Category,
		Images:         b.Images,
		BasePriceCents: b.BasePriceCents,
		Currency:       b.Currency,
		Location:       b.Location,
		ResourceIDs:    b.ResourceIDs,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *EntryBuilder) BuildUpsertRequestDTO() reqdto.UpsertEntryRequest {
	return reqdto.UpsertEntryRequest{
		Name:           b.Name,
		Description:    b.Description,
		Category:       b.Category,
		Images:         b.Images,
		BasePriceCents: b.BasePriceCents,
		Currency:       b.Currency,
		Location:       b.Location,
	}
}
