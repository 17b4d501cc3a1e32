package repository

import (
	"fmt"
	"sync"

	"public-auction/internal/auctionerrors"
	model "public-auction/internal/models"
)

// MaxItems caps the catalog size.
const MaxItems = 5

// AuctionDB defines item and bid storage for the auction system
type AuctionDB interface {
	ItemCount() int
	Item(index int) (model.Item, error)
	Items() []model.Item
	RecordBid(bid model.Bid) error
	BidsForItem(index int) []model.Bid
}

// MemoryCatalog is an in-memory implementation of AuctionDB holding a small
// ordered list of items plus the history of accepted bids per item. Items
// are seeded once at startup and never deleted.
type MemoryCatalog struct {
	mu    sync.RWMutex
	items []model.Item
	bids  map[int][]model.Bid // key: item index -> value: accepted bids, oldest first
}

// NewMemoryCatalog creates an empty catalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		bids: make(map[int][]model.Bid),
	}
}

// AddItem appends an item to the catalog. Intended for startup seeding.
func (c *MemoryCatalog) AddItem(item model.Item) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) >= MaxItems {
		return fmt.Errorf("add item %s: %w", item.Name, auctionerrors.ErrCatalogFull)
	}
	c.items = append(c.items, item)
	return nil
}

// ItemCount returns the number of items in the catalog.
func (c *MemoryCatalog) ItemCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Item returns the item at index.
func (c *MemoryCatalog) Item(index int) (model.Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if index < 0 || index >= len(c.items) {
		return model.Item{}, fmt.Errorf("get item %d: %w", index, auctionerrors.ErrItemNotFound)
	}
	return c.items[index], nil
}

// Items returns a copy of the catalog in display order.
func (c *MemoryCatalog) Items() []model.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]model.Item(nil), c.items...)
}

// RecordBid updates the bid item in place and appends the bid to the item's
// history. Business validation (bidder name, amount, open/closed state) is
// the bidding service's job; this layer only rejects unknown items.
func (c *MemoryCatalog) RecordBid(bid model.Bid) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if bid.ItemIndex < 0 || bid.ItemIndex >= len(c.items) {
		return fmt.Errorf("record bid for item %d: %w", bid.ItemIndex, auctionerrors.ErrItemNotFound)
	}

	c.items[bid.ItemIndex].CurrentBid = bid.Amount
	c.items[bid.ItemIndex].HighestBidder = bid.Bidder
	c.bids[bid.ItemIndex] = append(c.bids[bid.ItemIndex], bid)
	return nil
}

// BidsForItem returns all accepted bids for the item at index, oldest first.
func (c *MemoryCatalog) BidsForItem(index int) []model.Bid {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]model.Bid(nil), c.bids[index]...)
}
