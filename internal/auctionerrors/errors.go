package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrItemNotFound = errors.New("item not found")
	ErrCatalogFull  = errors.New("catalog is at capacity")
	ErrUserExists   = errors.New("username already taken")
	ErrStoreFull    = errors.New("user store is at capacity")
)

// business logic errors
var (
	ErrInvalidBid       = errors.New("invalid bid")
	ErrBidTooLow        = errors.New("bid amount too low")
	ErrBidTooLarge      = errors.New("bid amount too large")
	ErrAuctionClosed    = errors.New("auction is closed")
	ErrBadCredentials   = errors.New("invalid username or password")
	ErrWeakCredentials  = errors.New("username or password too short")
	ErrPasswordMismatch = errors.New("passwords do not match")
)
