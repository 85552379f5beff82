package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Catalog errors
	ErrEntryNotFound    = errors.New("catalog entry not found")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrResourceNotFound = errors.New("bookable resource not found")

	// Inquiry errors
	ErrInquiryNotFound      = errors.New("inquiry not found")
	ErrInvalidInquiryStatus = errors.New("invalid inquiry status")

	// Ledger errors
	ErrInvalidDateRange = errors.New("invalid date range")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
