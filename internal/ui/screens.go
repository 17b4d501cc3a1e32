package ui

import (
	"errors"
	"fmt"
	"strconv"

	"public-auction/internal/auctionerrors"
)

// Button geometry, computed from the window size.

func (a *App) authMenuButtons() (signIn, signUp Rect) {
	signIn = Rect{a.width/2 - 100, a.height/2 - 50, 200, 50}
	signUp = Rect{a.width/2 - 100, a.height/2 + 20, 200, 50}
	return
}

func (a *App) signInButtons() (login, back Rect) {
	login = Rect{a.width/2 - 80, 400, 160, 50}
	back = Rect{a.width/2 - 80, 470, 160, 50}
	return
}

func (a *App) signUpButtons() (register, back Rect) {
	register = Rect{a.width/2 - 80, 410, 160, 50}
	back = Rect{a.width/2 - 80, 480, 160, 50}
	return
}

func (a *App) itemRowRect(index int) Rect {
	return Rect{50, 100 + float32(index)*60, a.width - 100, 50}
}

func (a *App) logoutButton() Rect {
	return Rect{a.width - 150, 20, 120, 40}
}

func (a *App) detailsButtons() (back, placeBid Rect) {
	back = Rect{50, a.height - 60, 120, 40}
	placeBid = Rect{a.width - 170, a.height - 60, 120, 40}
	return
}

func (a *App) bidButtons() (bid, cancel Rect) {
	bid = Rect{a.width/2 - 120, 480, 100, 40}
	cancel = Rect{a.width/2 + 20, 480, 100, 40}
	return
}

// clicked reports whether this frame's click landed inside r.
func clicked(frame Frame, r Rect) bool {
	return frame.Click && r.Contains(frame.Mouse)
}

// Per-screen update steps. Buttons are evaluated in fixed order after the
// screen's fields have consumed the frame's input.

func (a *App) updateAuthMenu(frame Frame) {
	signIn, signUp := a.authMenuButtons()

	if clicked(frame, signIn) {
		a.resetForms()
		a.notice.Set(msgSignInPrompt)
		a.screen = ScreenSignIn
	}
	if clicked(frame, signUp) {
		a.resetForms()
		a.notice.Set(msgSignUpPrompt)
		a.screen = ScreenSignUp
	}
}

func (a *App) updateSignIn(frame Frame) {
	a.signInForm.Update(frame)
	login, back := a.signInButtons()

	if clicked(frame, login) {
		session, err := a.auth.Authenticate(a.signInUsername.Text(), a.signInPassword.Text())
		if err != nil {
			a.notice.Set(msgLoginFailed)
			return
		}
		a.session = session
		a.screen = ScreenItemList
		a.notice.Set(fmt.Sprintf("Welcome, %s!", session.Username))
		a.resetForms()
		return
	}
	if clicked(frame, back) {
		a.screen = ScreenAuthMenu
		a.resetForms()
		a.notice.Clear()
	}
}

func (a *App) updateSignUp(frame Frame) {
	a.signUpForm.Update(frame)
	register, back := a.signUpButtons()

	if clicked(frame, register) {
		err := a.auth.Register(a.signUpUsername.Text(), a.signUpPassword.Text(), a.signUpConfirm.Text())
		if err != nil {
			a.notice.Set(registerMessageFor(err))
			return
		}
		a.notice.Set(msgRegistered)
		a.screen = ScreenSignIn
		a.resetForms()
		return
	}
	if clicked(frame, back) {
		a.screen = ScreenAuthMenu
		a.resetForms()
		a.notice.Clear()
	}
}

func (a *App) updateItemList(frame Frame) {
	if frame.Click {
		for i := range a.bidding.Items() {
			if a.itemRowRect(i).Contains(frame.Mouse) {
				a.selected = i
				a.screen = ScreenItemDetails
				a.notice.Clear()
				return
			}
		}
	}
	if clicked(frame, a.logoutButton()) {
		a.signOut()
	}
}

func (a *App) updateItemDetails(frame Frame) {
	back, placeBid := a.detailsButtons()

	if clicked(frame, back) {
		a.selected = noSelection
		a.screen = ScreenItemList
		a.notice.Clear()
		return
	}

	// Place Bid is only offered while the selected auction is open.
	item, err := a.bidding.Item(a.selected)
	if err != nil || item.Closed {
		return
	}
	if clicked(frame, placeBid) {
		a.resetForms()
		a.notice.Set(msgPlaceBidPrompt)
		a.screen = ScreenPlaceBid
	}
}

func (a *App) updatePlaceBid(frame Frame) {
	a.bidForm.Update(frame)
	bidButton, cancel := a.bidButtons()

	if clicked(frame, bidButton) {
		// Unparseable text counts as a zero bid and falls into the
		// too-low rejection below.
		amount, _ := strconv.ParseFloat(a.bidAmount.Text(), 64)

		bid, err := a.bidding.PlaceBid(a.selected, a.bidderName.Text(), amount)
		switch {
		case err == nil:
			a.screen = ScreenItemDetails
			a.notice.Set(fmt.Sprintf("Bid of $%.2f placed successfully by %s!", bid.Amount, bid.Bidder))
		case errors.Is(err, auctionerrors.ErrInvalidBid):
			a.notice.Set(msgBidNameMissing)
		case errors.Is(err, auctionerrors.ErrBidTooLow):
			a.notice.Set(a.bidTooLowMessage(amount))
		case errors.Is(err, auctionerrors.ErrBidTooLarge):
			a.notice.Set(msgBidTooLarge)
		case errors.Is(err, auctionerrors.ErrAuctionClosed):
			a.notice.Set(msgBidClosed)
		default:
			a.notice.Set(msgBidFailed)
		}
		return
	}
	if clicked(frame, cancel) {
		a.screen = ScreenItemDetails
		a.notice.Clear()
	}
}

func (a *App) bidTooLowMessage(amount float64) string {
	item, err := a.bidding.Item(a.selected)
	if err != nil {
		return msgBidFailed
	}
	return fmt.Sprintf("Bid failed: $%.2f is not higher than current bid $%.2f", amount, item.CurrentBid)
}
