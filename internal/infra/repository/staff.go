package repository

import (
	"context"

	"github.com/nivekneved/travellounge-sub002/internal/domain/staff"
	"github.com/nivekneved/travellounge-sub002/internal/infra"
	"github.com/nivekneved/travellounge-sub002/internal/pkg/pgconv"
	"github.com/nivekneved/travellounge-sub002/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StaffRepository struct {
	pool *pgxpool.Pool
}

func NewStaffRepository(pool *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{pool: pool}
}

func (r *StaffRepository) FindByEmail(ctx context.Context, email staff.Email) (*readmodel.AuthorizedStaffRM, string, error) {
	const sql = `
		SELECT id::text, email, role, is_active, password_hash
		FROM staff_accounts
		WHERE email = $1
	`

	var (
		rm           readmodel.AuthorizedStaffRM
		idText       string
		passwordHash string
	)
	err := r.pool.QueryRow(ctx, sql, email.String()).Scan(&idText, &rm.Email, &rm.Role, &rm.IsActive, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("staff account not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find staff by email", err)
	}

	id, err := uuid.Parse(idText)
	if err != nil {
		return nil, "", infra.WrapRepoErr("malformed staff id", err)
	}
	rm.ID = id
	return &rm, passwordHash, nil
}

func (r *StaffRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedStaffRM, error) {
	const sql = `
		SELECT id::text, email, role, is_active
		FROM staff_accounts
		WHERE id = $1
	`

	var (
		rm     readmodel.AuthorizedStaffRM
		idText string
	)
	err := r.pool.QueryRow(ctx, sql, id).Scan(&idText, &rm.Email, &rm.Role, &rm.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staff account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find staff by id", err)
	}

	parsed, err := uuid.Parse(idText)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed staff id", err)
	}
	rm.ID = parsed
	return &rm, nil
}

func (r *StaffRepository) UpdateLastLogin(ctx context.Context, staffID uuid.UUID) error {
	const sql = `UPDATE staff_accounts SET last_login_at = now() WHERE id = $1`

	if _, err := r.pool.Exec(ctx, sql, staffID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
