package main

import (
	auth "public-auction/internal/authService"
	bidding "public-auction/internal/biddingService"
	"public-auction/internal/config"
	model "public-auction/internal/models"
	"public-auction/internal/platform"
	"public-auction/internal/repository"
	"public-auction/internal/ui"
	"public-auction/utils"
)

func main() {
	cfg := config.Load()

	users := repository.NewFileUserStore(cfg.UsersFile)
	catalog := repository.NewMemoryCatalog()
	prepopulateItems(catalog)

	authSvc := auth.NewAuthService(users)
	biddingSvc := bidding.NewBiddingService(catalog)

	app := ui.New(cfg.WindowWidth, cfg.WindowHeight, authSvc, biddingSvc)

	utils.Info("starting public auction app", map[string]any{
		"users": users.Count(),
		"items": catalog.ItemCount(),
	})

	platform.Run(cfg, app)
}

// prepopulateItems seeds the catalog with the demo auction lots. The
// "Vintage Guitar" lot starts closed to exercise the closed-auction path.
func prepopulateItems(catalog *repository.MemoryCatalog) {
	items := []model.Item{
		{Name: "Antique Vase", Description: "A beautiful ceramic vase from the Ming Dynasty.", CurrentBid: 1500.00, HighestBidder: "No Bids Yet"},
		{Name: "Rare Comic Book", Description: "First edition of 'The Amazing Spider-Man #1'.", CurrentBid: 5000.00, HighestBidder: "Peter P."},
		{Name: "Vintage Guitar", Description: "1960s electric guitar, well-preserved.", CurrentBid: 2500.00, HighestBidder: "Mary J.", Closed: true},
	}

	for _, item := range items {
		if err := catalog.AddItem(item); err != nil {
			utils.Fatal("failed to seed catalog", map[string]any{"item": item.Name, "error": err.Error()})
		}
	}
}
