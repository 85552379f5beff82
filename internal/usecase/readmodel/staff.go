package readmodel

import "github.com/google/uuid"

// AuthorizedStaffRM is the authenticated back-office account as the usecase
// layer sees it.
type AuthorizedStaffRM struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
