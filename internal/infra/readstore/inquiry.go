package readstore

import (
	"context"

	"github.com/nivekneved/travellounge-sub002/internal/infra"
	"github.com/nivekneved/travellounge-sub002/internal/pkg/pgconv"
	"github.com/nivekneved/travellounge-sub002/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InquiryReadStore struct {
	pool *pgxpool.Pool
}

func NewInquiryReadStore(pool *pgxpool.Pool) *InquiryReadStore {
	return &InquiryReadStore{pool: pool}
}

var inquiryColumns = []string{
	"i.id::text",
	"i.entry_id::text",
	"e.name",
	"i.guest_name",
	"i.guest_email",
	"i.guest_phone",
	"i.check_in",
	"i.check_out",
	"i.party_size",
	"i.message",
	"i.status",
	"i.created_at",
	"i.updated_at",
}

func (s *InquiryReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.InquiryView, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select(inquiryColumns...).
		From("inquiries i").
		Join("catalog_entries e ON i.entry_id = e.id").
		Where(squirrel.Eq{"i.id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build inquiry lookup query", err)
	}

	view, err := scanInquiryView(s.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find inquiry", err)
	}
	return view, nil
}

func (s *InquiryReadStore) List(ctx context.Context, status string, limit int32) ([]*queries.InquiryView, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(inquiryColumns...).
		From("inquiries i").
		Join("catalog_entries e ON i.entry_id = e.id").
		OrderBy("i.created_at DESC", "i.id DESC").
		Limit(uint64(limit))

	if status != "" {
		query = query.Where(squirrel.Eq{"i.status": status})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build inquiry list query", err)
	}

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inquiries", err)
	}
	defer rows.Close()

	var result []*queries.InquiryView
	for rows.Next() {
		view, scanErr := scanInquiryView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan inquiry", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read inquiry rows", err)
	}

	return result, nil
}

func (s *InquiryReadStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	const sql = `SELECT EXISTS(SELECT 1 FROM inquiries WHERE id = $1)`
	var exists bool
	if err := s.pool.QueryRow(ctx, sql, id).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check inquiry existence", err)
	}
	return exists, nil
}

func scanInquiryView(row pgx.Row) (*queries.InquiryView, error) {
	var (
		view        queries.InquiryView
		idText      string
		entryIDText string
		guestPhone  pgtype.Text
		checkIn     pgtype.Timestamptz
		checkOut    pgtype.Timestamptz
		message     pgtype.Text
	)
	if err := row.Scan(
		&idText,
		&entryIDText,
		&view.EntryName,
		&view.GuestName,
		&view.GuestEmail,
		&guestPhone,
		&checkIn,
		&checkOut,
		&view.PartySize,
		&message,
		&view.Status,
		&view.CreatedAt,
		&view.UpdatedAt,
	); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(idText)
	if err != nil {
		return nil, err
	}
	entryID, err := uuid.Parse(entryIDText)
	if err != nil {
		return nil, err
	}

	view.ID = id
	view.EntryID = entryID
	if guestPhone.Valid {
		view.GuestPhone = guestPhone.String
	}
	if message.Valid {
		view.Message = message.String
	}
	if checkIn.Valid {
		view.CheckIn = &checkIn.Time
	}
	if checkOut.Valid {
		view.CheckOut = &checkOut.Time
	}
	return &view, nil
}
