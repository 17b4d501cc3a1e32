package ui

import (
	"errors"

	"public-auction/internal/auctionerrors"
)

// Screen prompts.
const (
	msgSignInPrompt    = "Enter your credentials."
	msgSignUpPrompt    = "Choose a username and password."
	msgPlaceBidPrompt  = "Enter your bid and name."
	msgLoggedOut       = "Logged out successfully."
	msgRegistered      = "Registration successful! Please sign in."
	msgBidNameMissing  = "Please enter your name to bid."
	msgBidTooLarge     = "Bid amount too large!"
	msgBidClosed       = "Bidding is closed for this item."
	msgBidFailed       = "Bid failed. Try again."
	msgRegisterFailed  = "Registration failed. Try again."
	msgLoginFailed     = "Login failed. Check username/password."
	msgWeakCredentials = "Username (min 3 chars) / Password (min 5 chars) too short."
	msgMismatch        = "Passwords do not match!"
	msgUsernameTaken   = "Username already taken."
	msgStoreFull       = "Cannot register: maximum user limit reached."
)

// registerMessageFor maps a registration error to the text shown in the
// notice banner.
func registerMessageFor(err error) string {
	switch {
	case errors.Is(err, auctionerrors.ErrWeakCredentials):
		return msgWeakCredentials
	case errors.Is(err, auctionerrors.ErrPasswordMismatch):
		return msgMismatch
	case errors.Is(err, auctionerrors.ErrUserExists):
		return msgUsernameTaken
	case errors.Is(err, auctionerrors.ErrStoreFull):
		return msgStoreFull
	default:
		return msgRegisterFailed
	}
}
