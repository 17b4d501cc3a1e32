package bidding

import (
	"fmt"
	"time"

	"public-auction/internal/auctionerrors"
	"public-auction/internal/models"
	"public-auction/internal/repository"
	"public-auction/utils"
)

// MaxBidAmount is the sanity ceiling for a single bid.
const MaxBidAmount = 999999999.0

// BiddingService defines the business logic for auction bidding
type BiddingService struct {
	catalog repository.AuctionDB
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(catalog repository.AuctionDB) *BiddingService {
	return &BiddingService{
		catalog: catalog,
	}
}

// PlaceBid validates and records a bid on the item at itemIndex
func (s *BiddingService) PlaceBid(itemIndex int, bidder string, amount float64) (models.Bid, error) {
	item, err := s.catalog.Item(itemIndex)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to look up item %d: %w", itemIndex, err)
	}

	if err := validateBid(item, bidder, amount); err != nil {
		return models.Bid{}, err
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		ItemIndex: itemIndex,
		Bidder:    bidder,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.catalog.RecordBid(bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for item %d by %s: %w", itemIndex, bidder, err)
	}

	utils.Info("bid placed", map[string]any{
		"bid_id": bid.BidID,
		"item":   item.Name,
		"bidder": bidder,
		"amount": amount,
	})
	return bid, nil
}

// validateBid checks input validity and business rules for bidding. Closed
// items are rejected here as well, even though the UI never offers the
// action for them.
func validateBid(item models.Item, bidder string, amount float64) error {
	if bidder == "" {
		return fmt.Errorf("service: %w - missing bidder name", auctionerrors.ErrInvalidBid)
	}
	if item.Closed {
		return fmt.Errorf("service: %w - %s", auctionerrors.ErrAuctionClosed, item.Name)
	}
	if amount <= item.CurrentBid {
		return fmt.Errorf("service: %w - %.2f is not higher than %.2f", auctionerrors.ErrBidTooLow, amount, item.CurrentBid)
	}
	if amount > MaxBidAmount {
		return fmt.Errorf("service: %w - %.2f exceeds the bid ceiling", auctionerrors.ErrBidTooLarge, amount)
	}
	return nil
}

// Item returns the item at itemIndex
func (s *BiddingService) Item(itemIndex int) (models.Item, error) {
	item, err := s.catalog.Item(itemIndex)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to get item %d: %w", itemIndex, err)
	}
	return item, nil
}

// Items returns all catalog items in display order
func (s *BiddingService) Items() []models.Item {
	return s.catalog.Items()
}

// BidsForItem returns all accepted bids for the item at itemIndex
func (s *BiddingService) BidsForItem(itemIndex int) ([]models.Bid, error) {
	if _, err := s.catalog.Item(itemIndex); err != nil {
		return nil, fmt.Errorf("service: failed to get bids for item %d: %w", itemIndex, err)
	}
	return s.catalog.BidsForItem(itemIndex), nil
}
