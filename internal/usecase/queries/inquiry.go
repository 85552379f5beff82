package queries

import (
	"context"

	"github.com/nivekneved/travellounge-sub002/internal/pkg/errs"

	"github.com/google/uuid"
)

type InquiryReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*InquiryView, error)
	List(ctx context.Context, status string, limit int32) ([]*InquiryView, error)
}

type InquiryQueries interface {
	GetInquiry(ctx context.Context, id uuid.UUID) (*InquiryView, error)
	ListInquiries(ctx context.Context, status string, limit int) ([]*InquiryView, error)
}

type inquiryQueriesImpl struct {
	store InquiryReadStore
}

func NewInquiryQueries(store InquiryReadStore) InquiryQueries {
	return &inquiryQueriesImpl{store: store}
}

func (q *inquiryQueriesImpl) GetInquiry(ctx context.Context, id uuid.UUID) (*InquiryView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, errs.ErrInquiryNotFound
	}
	return view, nil
}

func (q *inquiryQueriesImpl) ListInquiries(ctx context.Context, status string, limit int) ([]*InquiryView, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return q.store.List(ctx, status, int32(limit))
}
