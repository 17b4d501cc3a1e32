package ui

// Palette for the whole application.
var (
	colorBackground = Color{245, 245, 245, 255}
	colorLightGray  = Color{200, 200, 200, 255}
	colorDarkGray   = Color{50, 50, 50, 255}
	colorGray       = Color{80, 80, 80, 255}
	colorAccept     = Color{0, 150, 0, 255}
	colorDecline    = Color{150, 0, 0, 255}
	colorHighlight  = Color{0, 120, 200, 255}
	colorWarning    = Color{255, 200, 0, 255}

	colorBlack    = Color{0, 0, 0, 255}
	colorWhite    = Color{245, 245, 245, 255}
	colorGreen    = Color{0, 228, 48, 255}
	colorRed      = Color{230, 41, 55, 255}
	colorBlue     = Color{0, 121, 241, 255}
	colorDarkBlue = Color{0, 82, 172, 255}
)
