package ui

import (
	"fmt"

	model "public-auction/internal/models"
)

// drawButton paints a filled, bordered button with a centered label.
func drawButton(p Painter, r Rect, fill Color, label string, size int32, text Color) {
	p.FillRect(r, fill)
	p.StrokeRect(r, 2, colorDarkGray)
	labelX := r.X + r.Width/2 - p.MeasureText(label, size)/2
	labelY := r.Y + (r.Height-float32(size))/2
	p.Text(label, labelX, labelY, size, text)
}

// drawTitle paints a heading centered horizontally at y.
func (a *App) drawTitle(p Painter, title string, y float32, size int32, c Color) {
	p.Text(title, a.width/2-p.MeasureText(title, size)/2, y, size, c)
}

func (a *App) drawAuthMenu(p Painter) {
	a.drawTitle(p, "Welcome to the Auction!", 100, 40, colorDarkGray)

	signIn, signUp := a.authMenuButtons()
	drawButton(p, signIn, colorHighlight, "Sign In", 30, colorWhite)
	drawButton(p, signUp, colorAccept, "Sign Up", 30, colorWhite)
}

func (a *App) drawSignIn(p Painter) {
	a.drawTitle(p, "Sign In", 100, 40, colorDarkGray)
	a.signInUsername.Draw(p, "Username:", a.now)
	a.signInPassword.Draw(p, "Password:", a.now)

	login, back := a.signInButtons()
	drawButton(p, login, colorAccept, "Login", 25, colorWhite)
	drawButton(p, back, colorLightGray, "Back", 25, colorDarkGray)
}

func (a *App) drawSignUp(p Painter) {
	a.drawTitle(p, "Sign Up", 100, 40, colorDarkGray)
	a.signUpUsername.Draw(p, "Username:", a.now)
	a.signUpPassword.Draw(p, "Password:", a.now)
	a.signUpConfirm.Draw(p, "Confirm Password:", a.now)

	register, back := a.signUpButtons()
	drawButton(p, register, colorAccept, "Register", 25, colorWhite)
	drawButton(p, back, colorLightGray, "Back", 25, colorDarkGray)
}

func (a *App) drawItemList(p Painter) {
	a.drawTitle(p, "Auction Items", 30, 40, colorDarkGray)
	p.Text(fmt.Sprintf("Logged in as: %s", a.session.Username), 20, 20, 20, colorDarkGray)

	for i, item := range a.bidding.Items() {
		a.drawItemRow(p, i, item)
	}

	drawButton(p, a.logoutButton(), colorDecline, "Logout", 20, colorWhite)
}

// drawItemRow paints one list entry: name, current bid, open/closed status,
// with alternating row colors and a hover highlight.
func (a *App) drawItemRow(p Painter, index int, item model.Item) {
	row := a.itemRowRect(index)

	bg := colorBackground
	if index%2 == 0 {
		bg = colorLightGray
	}
	text := colorBlack
	if row.Contains(a.mouse) {
		bg = colorDarkGray
		text = colorWhite
	}

	p.FillRect(row, bg)
	p.StrokeRect(row, 2, colorDarkGray)

	p.Text(item.Name, row.X+10, row.Y+10, 20, text)

	bidText := fmt.Sprintf("Current Bid: $%.2f", item.CurrentBid)
	p.Text(bidText, row.X+row.Width-p.MeasureText(bidText, 20)-10, row.Y+10, 20, text)

	status, statusColor := "OPEN", colorAccept
	if item.Closed {
		status, statusColor = "CLOSED", colorDecline
	}
	p.Text(status, row.X+10, row.Y+35, 15, statusColor)
}

func (a *App) drawItemDetails(p Painter) {
	item, err := a.bidding.Item(a.selected)
	if err != nil {
		p.Text("No item selected. This shouldn't happen!", 50, 100, 20, colorRed)
		return
	}

	a.drawTitle(p, item.Name, 30, 40, colorDarkBlue)
	p.Text(fmt.Sprintf("Description: %s", item.Description), 50, 100, 20, colorBlack)
	p.Text(fmt.Sprintf("Current Bid: $%.2f", item.CurrentBid), 50, 140, 25, colorGreen)
	p.Text(fmt.Sprintf("Highest Bidder: %s", item.HighestBidder), 50, 170, 25, colorBlue)

	status, statusColor := "OPEN", colorGreen
	if item.Closed {
		status, statusColor = "CLOSED", colorRed
	}
	p.Text(fmt.Sprintf("Status: %s", status), 50, 210, 25, statusColor)

	if bids, err := a.bidding.BidsForItem(a.selected); err == nil {
		p.Text(fmt.Sprintf("Bids this session: %d", len(bids)), 50, 245, 20, colorGray)
	}

	back, placeBid := a.detailsButtons()
	drawButton(p, back, colorLightGray, "Back", 20, colorDarkGray)
	if !item.Closed {
		drawButton(p, placeBid, colorAccept, "Place Bid", 20, colorWhite)
	}
}

func (a *App) drawPlaceBid(p Painter) {
	a.drawTitle(p, "Place Your Bid", 30, 40, colorDarkGray)

	if item, err := a.bidding.Item(a.selected); err == nil {
		a.drawTitle(p, fmt.Sprintf("Item: %s", item.Name), 100, 25, colorBlack)
		a.drawTitle(p, fmt.Sprintf("Current Bid: $%.2f", item.CurrentBid), 140, 25, colorGreen)
	}

	a.bidAmount.Draw(p, "Bid Amount:", a.now)
	a.bidderName.Draw(p, "Your Name:", a.now)

	bid, cancel := a.bidButtons()
	drawButton(p, bid, colorAccept, "BID!", 20, colorWhite)
	drawButton(p, cancel, colorDecline, "Cancel", 20, colorWhite)
}
