// Package platform is the one concrete rendering/input collaborator: a
// raylib window that snapshots input into ui.Frame values and implements
// ui.Painter with raylib drawing primitives.
package platform

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"public-auction/internal/config"
	"public-auction/internal/ui"
	"public-auction/utils"
)

const windowTitle = "Public Auction"

// painter implements ui.Painter on top of raylib.
type painter struct{}

func (painter) Clear(c ui.Color) {
	rl.ClearBackground(toColor(c))
}

func (painter) FillRect(r ui.Rect, c ui.Color) {
	rl.DrawRectangleRec(toRect(r), toColor(c))
}

func (painter) StrokeRect(r ui.Rect, thickness float32, c ui.Color) {
	rl.DrawRectangleLinesEx(toRect(r), thickness, toColor(c))
}

func (painter) Text(s string, x, y float32, size int32, c ui.Color) {
	rl.DrawText(s, int32(x), int32(y), size, toColor(c))
}

func (painter) MeasureText(s string, size int32) float32 {
	return float32(rl.MeasureText(s, size))
}

func toColor(c ui.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func toRect(r ui.Rect) rl.Rectangle {
	return rl.NewRectangle(r.X, r.Y, r.Width, r.Height)
}

// Run opens the window and drives the synchronous frame loop until the user
// closes it: one input snapshot, one update, one draw per iteration.
func Run(cfg *config.Config, app *ui.App) {
	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), windowTitle)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.TargetFPS))

	utils.Info("window opened", map[string]any{
		"width":  cfg.WindowWidth,
		"height": cfg.WindowHeight,
		"fps":    cfg.TargetFPS,
	})

	var p painter
	for !rl.WindowShouldClose() {
		app.Update(snapshot())

		rl.BeginDrawing()
		app.Draw(p)
		rl.EndDrawing()
	}

	utils.Info("window closed", nil)
}

// snapshot collects the current frame's input state.
func snapshot() ui.Frame {
	mouse := rl.GetMousePosition()
	frame := ui.Frame{
		DT:        float64(rl.GetFrameTime()),
		Time:      rl.GetTime(),
		Mouse:     ui.Point{X: mouse.X, Y: mouse.Y},
		Click:     rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		Backspace: rl.IsKeyPressed(rl.KeyBackspace),
		Enter:     rl.IsKeyPressed(rl.KeyEnter),
	}
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		frame.Chars = append(frame.Chars, ch)
	}
	return frame
}
