package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BookableResource is an inventoried sub-unit of an entry (a room type, a
// cabin class). It is owned exclusively by its entry and is deleted with it.
type BookableResource struct {
	id         uuid.UUID
	entryID    uuid.UUID
	name       string
	totalUnits int32
}

func NewBookableResource(entryID uuid.UUID, name string, totalUnits int32) (*BookableResource, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &BookableResource{
		id:         uuid.New(),
		entryID:    entryID,
		name:       name,
		totalUnits: totalUnits,
	}, nil
}

func ReconstructBookableResource(id, entryID uuid.UUID, name string, totalUnits int32) *BookableResource {
	return &BookableResource{id: id, entryID: entryID, name: name, totalUnits: totalUnits}
}

func (r *BookableResource) ID() uuid.UUID { return r.id }
func (r *BookableResource) EntryID() uuid.UUID { return r.entryID }
func (r *BookableResource) Name() string { return r.name }
func (r *BookableResource) TotalUnits() int32 { return r.totalUnits }

// Entry is a sellable travel product: a hotel, cruise, tour, activity, or
// day-package. Identity is immutable after creation; edits go through the
// admin back office.
type Entry struct {
	id          uuid.UUID
	name        string
	description string
	category    Category
	images      Images
	basePrice   Money
	location    Location
	resources   []*BookableResource
	createdAt   time.Time
	updatedAt   time.Time
}

func NewEntry(
	name, description string,
	category Category,
	images Images,
	basePrice Money,
	location Location,
	now time.Time,
) (*Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}

	return &Entry{
		id:          uuid.New(),
		name:        name,
		description: strings.TrimSpace(description),
		category:    category,
		images:      images,
		basePrice:   basePrice,
		location:    location,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructEntry(
	id uuid.UUID,
	name, description string,
	category Category,
	images Images,
	basePrice Money,
	location Location,
	resources []*BookableResource,
	createdAt, updatedAt time.Time,
) *Entry {
	return &Entry{
		id:          id,
		name:        name,
		description: description,
		category:    category,
		images:      images,
		basePrice:   basePrice,
		location:    location,
		resources:   resources,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// AddResource attaches a new bookable resource to the entry.
func (e *Entry) AddResource(name string, totalUnits int32) (*BookableResource, error) {
	res, err := NewBookableResource(e.id, name, totalUnits)
	if err != nil {
		return nil, err
	}
	e.resources = append(e.resources, res)
	return res, nil
}

func (e *Entry) ID() uuid.UUID { return e.id }
func (e *Entry) Name() string { return e.name }
func (e *Entry) Description() string { return e.description }
func (e *Entry) Category() Category { return e.category }
func (e *Entry) Images() Images { return e.images }
func (e *Entry) BasePrice() Money { return e.basePrice }
func (e *Entry) Location() Location { return e.location }
func (e *Entry) Resources() []*BookableResource { return e.resources }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }
func (e *Entry) UpdatedAt() time.Time { return e.updatedAt }
