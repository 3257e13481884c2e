package cells

import (
	"math"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/dino"
)

// Project renders the scene onto dst, scaling the world to the screen.
// Calls without glyph art are skipped. The HUD sits on the top row.
func Project(dst *core.Screen, scene dino.Scene) {
	dst.Clear()

	sx := float64(dst.Width()) / config.Width
	sy := float64(dst.Height()) / config.Height

	for _, call := range scene.Calls {
		g, ok := call.Image.(*Glyph)
		if !ok || g == nil {
			continue
		}
		w, h := g.Size()

		left := int(math.Floor(float64(call.X) * sx))
		top := int(math.Floor(float64(call.Y) * sy))
		cols := max(1, int(math.Floor(float64(call.X+w)*sx))-left)
		rows := max(1, int(math.Floor(float64(call.Y+h)*sy))-top)

		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				if r := g.At(col, row, cols, rows); r != ' ' {
					dst.SetColored(left+col, top+row, r, g.Color)
				}
			}
		}
	}

	drawHUD(dst, scene)
}

func drawHUD(dst *core.Screen, scene dino.Scene) {
	score := " " + scene.Score + " "
	high := " " + scene.HighScore + " "
	dst.DrawTextColored(1, 0, score, core.ColorBrightWhite)
	dst.DrawTextColored(dst.Width()-len(high)-1, 0, high, core.ColorYellow)

	if scene.Banner != "" {
		drawCenteredMessage(dst, scene.Banner, scene.Score)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
