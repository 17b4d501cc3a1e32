package ui

import (
	"public-auction/internal/models"
	"public-auction/utils"
)

// Screen enumerates the mutually-exclusive UI modes.
type Screen int

const (
	ScreenAuthMenu Screen = iota
	ScreenSignIn
	ScreenSignUp
	ScreenItemList
	ScreenItemDetails
	ScreenPlaceBid
)

// noSelection marks that no catalog item is selected.
const noSelection = -1

// AuthRunner is the slice of the auth service the UI consumes.
type AuthRunner interface {
	Register(username, password, confirm string) error
	Authenticate(username, password string) (models.Session, error)
}

// BiddingRunner is the slice of the bidding service the UI consumes.
type BiddingRunner interface {
	PlaceBid(itemIndex int, bidder string, amount float64) (models.Bid, error)
	Item(itemIndex int) (models.Item, error)
	Items() []models.Item
	BidsForItem(itemIndex int) ([]models.Bid, error)
}

// App is the screen state machine plus all mutable UI state. Everything
// hangs off this struct; there are no package-level globals. Each frame the
// platform layer calls Update once with the input snapshot and Draw once.
type App struct {
	width, height float32

	auth    AuthRunner
	bidding BiddingRunner

	screen   Screen
	selected int
	session  models.Session
	notice   Notice

	now   float64
	mouse Point

	signInUsername *InputField
	signInPassword *InputField
	signInForm     *form

	signUpUsername *InputField
	signUpPassword *InputField
	signUpConfirm  *InputField
	signUpForm     *form

	bidAmount  *InputField
	bidderName *InputField
	bidForm    *form
}

// New builds the application in its initial state: auth menu, no session,
// no selection, all fields empty.
func New(width, height int, auth AuthRunner, bidding BiddingRunner) *App {
	w := float32(width)
	h := float32(height)

	a := &App{
		width:    w,
		height:   h,
		auth:     auth,
		bidding:  bidding,
		screen:   ScreenAuthMenu,
		selected: noSelection,

		signInUsername: NewInputField(Rect{w/2 - 120, 250, 240, 40}, false),
		signInPassword: NewInputField(Rect{w/2 - 120, 320, 240, 40}, true),

		signUpUsername: NewInputField(Rect{w/2 - 120, 200, 240, 40}, false),
		signUpPassword: NewInputField(Rect{w/2 - 120, 270, 240, 40}, true),
		signUpConfirm:  NewInputField(Rect{w/2 - 120, 340, 240, 40}, true),

		bidAmount:  NewInputField(Rect{w/2 - 100, 300, 200, 40}, false),
		bidderName: NewInputField(Rect{w/2 - 100, 380, 200, 40}, false),
	}

	a.signInForm = newForm(a.signInUsername, a.signInPassword)
	a.signUpForm = newForm(a.signUpUsername, a.signUpPassword, a.signUpConfirm)
	a.bidForm = newForm(a.bidAmount, a.bidderName)
	return a
}

// Screen returns the currently active screen.
func (a *App) Screen() Screen { return a.screen }

// Session returns the current sign-in state.
func (a *App) Session() models.Session { return a.session }

// Notice returns the currently displayed transient message.
func (a *App) Notice() string { return a.notice.Message() }

// SelectedItem returns the selected catalog index, or -1.
func (a *App) SelectedItem() int { return a.selected }

// Update advances the application by one frame of input: tick the notice
// timer, route input to the active screen's fields, then evaluate that
// screen's buttons.
func (a *App) Update(frame Frame) {
	a.now = frame.Time
	a.mouse = frame.Mouse
	a.notice.Tick(frame.DT)

	switch a.screen {
	case ScreenAuthMenu:
		a.updateAuthMenu(frame)
	case ScreenSignIn:
		a.updateSignIn(frame)
	case ScreenSignUp:
		a.updateSignUp(frame)
	case ScreenItemList:
		a.updateItemList(frame)
	case ScreenItemDetails:
		a.updateItemDetails(frame)
	case ScreenPlaceBid:
		a.updatePlaceBid(frame)
	}
}

// Draw renders the active screen and the notice banner on top.
func (a *App) Draw(p Painter) {
	p.Clear(colorBackground)

	switch a.screen {
	case ScreenAuthMenu:
		a.drawAuthMenu(p)
	case ScreenSignIn:
		a.drawSignIn(p)
	case ScreenSignUp:
		a.drawSignUp(p)
	case ScreenItemList:
		a.drawItemList(p)
	case ScreenItemDetails:
		a.drawItemDetails(p)
	case ScreenPlaceBid:
		a.drawPlaceBid(p)
	}

	a.notice.Draw(p, a.width, a.height)
}

// resetForms clears and defocuses every input field in the application.
func (a *App) resetForms() {
	a.signInForm.Reset()
	a.signUpForm.Reset()
	a.bidForm.Reset()
}

// signOut drops the session and returns to the auth menu.
func (a *App) signOut() {
	utils.Info("user signed out", map[string]any{
		"session_id": a.session.SessionID,
		"username":   a.session.Username,
	})
	a.session = models.Session{}
	a.selected = noSelection
	a.screen = ScreenAuthMenu
	a.notice.Set(msgLoggedOut)
}
