package usecase

import (
	"context"
	"errors"

	"github.com/nivekneved/travellounge-sub002/internal/domain/staff"
	"github.com/nivekneved/travellounge-sub002/internal/pkg/jwt"
	"github.com/nivekneved/travellounge-sub002/internal/pkg/password"
	"github.com/nivekneved/travellounge-sub002/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrStaffNotFound        = errors.New("staff account not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrStaffInactive        = errors.New("staff account is inactive")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrTokenValidation      = errors.New("token validation failed")
)

type StaffRepository interface {
	FindByEmail(ctx context.Context, email staff.Email) (*readmodel.AuthorizedStaffRM, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedStaffRM, error)
	UpdateLastLogin(ctx context.Context, staffID uuid.UUID) error
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials staff.Credentials) (string, *readmodel.AuthorizedStaffRM, error)
	GetCurrentStaff(ctx context.Context, staffID uuid.UUID) (*readmodel.AuthorizedStaffRM, error)
	ValidateToken(tokenString string) (uuid.UUID, staff.Role, error)
}

type authUseCaseImpl struct {
	staffRepo  StaffRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(staffRepo StaffRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		staffRepo:  staffRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials staff.Credentials) (string, *readmodel.AuthorizedStaffRM, error) {
	account, err := a.validateStaff(ctx, credentials)
	if err != nil {
		return "", nil, err
	}

	role, err := staff.NewRole(account.Role)
	if err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := a.jwtService.GenerateToken(account.ID, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	if err := a.staffRepo.UpdateLastLogin(ctx, account.ID); err != nil {
		return "", nil, err
	}

	return token, account, nil
}

func (a *authUseCaseImpl) validateStaff(ctx context.Context, credentials staff.Credentials) (*readmodel.AuthorizedStaffRM, error) {
	account, hashedPassword, err := a.staffRepo.FindByEmail(ctx, credentials.Email())
	if err != nil {
		return nil, ErrStaffNotFound
	}

	if account == nil {
		return nil, ErrStaffNotFound
	}

	if !account.IsActive {
		return nil, ErrStaffInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}

func (a *authUseCaseImpl) GetCurrentStaff(ctx context.Context, staffID uuid.UUID) (*readmodel.AuthorizedStaffRM, error) {
	account, err := a.staffRepo.FindByID(ctx, staffID)
	if err != nil || account == nil {
		return nil, ErrStaffNotFound
	}

	if !account.IsActive {
		return nil, ErrStaffInactive
	}

	return account, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, staff.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := staff.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	return claims.UserID, role, nil
}
