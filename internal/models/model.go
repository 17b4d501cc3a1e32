package models

import "time"

// User represents a registered account. Accounts are immutable once
// created; there is no password-change flow.
type User struct {
	Username     string
	PasswordHash uint32
}

// Item represents a single item up for auction
type Item struct {
	Name          string
	Description   string
	CurrentBid    float64
	HighestBidder string
	Closed        bool
}

// Bid represents an accepted bid on an item
type Bid struct {
	BidID     string
	ItemIndex int
	Bidder    string
	Amount    float64
	CreatedAt time.Time
}

// Session identifies the currently signed-in user. The zero value means
// nobody is signed in.
type Session struct {
	SessionID string
	Username  string
}

// Active reports whether a user is signed in.
func (s Session) Active() bool { return s.Username != "" }
