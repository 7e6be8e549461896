package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers map these to HTTP statuses; specific errors below
// wrap one of them so services can use errors.Is against either level.
var (
	ErrInvalidAuthentication = errors.New("invalid authentication")
	ErrNotFoundResource      = errors.New("resource not found")
	ErrAccessDenied          = errors.New("access denied")
	ErrExistResource         = errors.New("resource conflict")
)

// Auth errors
var (
	ErrRefreshTokenMismatch = fmt.Errorf("refresh token does not match stored token: %w", ErrInvalidAuthentication)
	ErrNoActiveSession      = fmt.Errorf("no active session for user: %w", ErrInvalidAuthentication)
	ErrDuplicateUsername    = fmt.Errorf("username already taken: %w", ErrExistResource)
	ErrMemberNotFound       = fmt.Errorf("member not found: %w", ErrNotFoundResource)
)

// Voucher errors. AlreadyUsed deliberately shares the not-found kind, and
// InsufficientBalance/Expired share the conflict kind; existing clients key
// off the coarse codes.
var (
	ErrVoucherNotFound            = fmt.Errorf("voucher not found: %w", ErrNotFoundResource)
	ErrVoucherAlreadyUsed         = fmt.Errorf("voucher already fully redeemed: %w", ErrNotFoundResource)
	ErrVoucherInsufficientBalance = fmt.Errorf("insufficient voucher balance: %w", ErrExistResource)
	ErrVoucherExpired             = fmt.Errorf("voucher has expired: %w", ErrExistResource)
	ErrVoucherAccessDenied        = fmt.Errorf("not the voucher owner: %w", ErrAccessDenied)
)

// Catalog errors
var (
	ErrBrandNotFound   = fmt.Errorf("brand not found: %w", ErrNotFoundResource)
	ErrProductNotFound = fmt.Errorf("product not found: %w", ErrNotFoundResource)
)
