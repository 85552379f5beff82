package repository

import (
	"context"
	"time"

	"github.com/nivekneved/travellounge-sub002/internal/domain/inquiry"
	"github.com/nivekneved/travellounge-sub002/internal/infra"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InquiryRepository struct {
	pool *pgxpool.Pool
}

func NewInquiryRepository(pool *pgxpool.Pool) *InquiryRepository {
	return &InquiryRepository{pool: pool}
}

func (r *InquiryRepository) Create(ctx context.Context, inq *inquiry.Inquiry) error {
	var checkIn, checkOut *time.Time
	if stay := inq.Stay(); stay != nil {
		ci := stay.CheckIn()
		co := stay.CheckOut()
		checkIn = &ci
		checkOut = &co
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Insert("inquiries").
		Columns("id", "entry_id", "guest_name", "guest_email", "guest_phone", "check_in", "check_out", "party_size", "message", "status", "created_at", "updated_at").
		Values(
			inq.ID(),
			inq.EntryID(),
			inq.GuestName(),
			inq.GuestEmail(),
			inq.GuestPhone(),
			checkIn,
			checkOut,
			inq.PartySize(),
			inq.Message(),
			inq.Status().String(),
			inq.CreatedAt(),
			inq.UpdatedAt(),
		).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build inquiry insert", err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return infra.WrapRepoErr("failed to create inquiry", err)
	}
	return nil
}

func (r *InquiryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status inquiry.Status, updatedAt time.Time) error {
	const sql = `UPDATE inquiries SET status = $1, updated_at = $2 WHERE id = $3`

	ct, err := r.pool.Exec(ctx, sql, status.String(), updatedAt, id)
	if err != nil {
		return infra.WrapRepoErr("failed to update inquiry status", err)
	}
	if ct.RowsAffected() == 0 {
		return infra.WrapRepoErr("inquiry not found", nil, infra.KindNotFound)
	}
	return nil
}
