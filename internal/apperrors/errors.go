// Package apperrors defines the sentinel errors shared by the storage layer,
// the hire coordinator, and the HTTP handlers. Handlers map them to status
// codes in exactly one place.
package apperrors

import "errors"

// Resource errors
var (
	ErrGigNotFound = errors.New("gig not found")
	ErrBidNotFound = errors.New("bid not found")
	ErrBadID       = errors.New("malformed id")
)

// Authorization errors
var (
	ErrNotOwner     = errors.New("not the gig owner")
	ErrOwnBidDenied = errors.New("cannot bid on your own gig")
)

// State-conflict errors
var (
	ErrGigAssigned  = errors.New("gig is already assigned")
	ErrDuplicateBid = errors.New("bid already placed on this gig")
	ErrEmailTaken   = errors.New("email already registered")
)

// Credential errors
var (
	ErrTokenMissing = errors.New("no token, authorization denied")
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("invalid token")
	ErrBadLogin     = errors.New("invalid email or password")
)
