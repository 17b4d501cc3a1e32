package integrationtests

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	auth "public-auction/internal/authService"
	bidding "public-auction/internal/biddingService"
	model "public-auction/internal/models"
	"public-auction/internal/repository"
	"public-auction/internal/ui"
)

const (
	windowWidth  = 800
	windowHeight = 600
)

// harness bundles a fully wired application with its backing stores so
// tests can drive scripted frames and inspect the results underneath.
type harness struct {
	app     *ui.App
	users   *repository.FileUserStore
	catalog *repository.MemoryCatalog
	bidding *bidding.BiddingService
}

// newHarness wires the application exactly the way main does, over a users
// file in usersDir.
func newHarness(t *testing.T, usersDir string) *harness {
	t.Helper()

	users := repository.NewFileUserStore(filepath.Join(usersDir, "users.txt"))
	catalog := repository.NewMemoryCatalog()
	seedItems(t, catalog)

	biddingSvc := bidding.NewBiddingService(catalog)
	app := ui.New(windowWidth, windowHeight, auth.NewAuthService(users), biddingSvc)

	return &harness{app: app, users: users, catalog: catalog, bidding: biddingSvc}
}

func seedItems(t *testing.T, catalog *repository.MemoryCatalog) {
	t.Helper()

	seed := []model.Item{
		{Name: "Antique Vase", Description: "A beautiful ceramic vase from the Ming Dynasty.", CurrentBid: 1500.00, HighestBidder: "No Bids Yet"},
		{Name: "Rare Comic Book", Description: "First edition of 'The Amazing Spider-Man #1'.", CurrentBid: 5000.00, HighestBidder: "Peter P."},
		{Name: "Vintage Guitar", Description: "1960s electric guitar, well-preserved.", CurrentBid: 2500.00, HighestBidder: "Mary J.", Closed: true},
	}
	for _, item := range seed {
		require.NoError(t, catalog.AddItem(item))
	}
}

// click sends one frame with a left-button press at p.
func (h *harness) click(p ui.Point) {
	h.app.Update(ui.Frame{DT: 1.0 / 60, Click: true, Mouse: p})
}

// typeInto clicks the field centered at p and types s.
func (h *harness) typeInto(p ui.Point, s string) {
	h.click(p)
	h.app.Update(ui.Frame{DT: 1.0 / 60, Chars: []rune(s)})
}
