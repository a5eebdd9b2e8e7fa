package game

import (
	"fmt"

	"github.com/chuashinherh/Frogger/internal/core"
	"github.com/chuashinherh/Frogger/internal/engine"
)

// Glyphs for the board renderer.
const (
	FrogChar     = '@'
	CarCharLeft  = '<'
	CarCharRight = '>'
	PlankChar    = '='
	CrocChar     = 'W'
	LadyFrogChar = '?'
	TargetChar   = 'O'
	RiverChar    = '~'
	BankChar     = '-'
)

// Render projects the 600x600 simulation world onto the cell grid.
// Row 0 is the HUD; the playfield scales to whatever is left.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	fieldY := 1
	fieldW := dst.Width()
	fieldH := dst.Height() - fieldY
	if fieldW < 10 || fieldH < 10 {
		dst.DrawText(0, 0, "Window too small")
		return
	}

	cellX := func(wx float64) int {
		return core.Clamp(int(wx/engine.Width*float64(fieldW)), 0, fieldW-1)
	}
	cellY := func(wy float64) int {
		return fieldY + core.Clamp(int(wy/engine.Height*float64(fieldH)), 0, fieldH-1)
	}

	// Static scenery: the river strip and the two safe bank lines.
	riverTop := cellY(engine.RiverCenterY - engine.RiverHalfHeight)
	riverBottom := cellY(engine.RiverCenterY + engine.RiverHalfHeight)
	for y := riverTop; y <= riverBottom; y++ {
		for x := 0; x < fieldW; x++ {
			dst.SetWithColor(x, y, RiverChar, core.ColorBlue)
		}
	}
	medianY := cellY(engine.RiverCenterY + engine.RiverHalfHeight + engine.HopSize/2)
	dst.DrawHLine(0, medianY, fieldW, BankChar)
	dst.DrawHLine(0, cellY(engine.FrogStartY+engine.FrogRadius-1), fieldW, BankChar)

	st := g.state

	for _, tg := range st.Targets {
		dst.SetWithColor(cellX(tg.Pos.X), cellY(tg.Pos.Y), TargetChar, core.ColorBrightCyan)
	}

	for _, p := range st.Planks {
		g.drawSpan(dst, cellX, cellY, p.Pos, p.RadiusX, PlankChar, core.ColorYellow)
	}
	if c := st.Crocodile; c != nil {
		g.drawSpan(dst, cellX, cellY, c.Pos, engine.CrocRadiusX, CrocChar, core.ColorBrightGreen)
	}
	if lf := st.LadyFrog; lf != nil {
		dst.SetWithColor(cellX(lf.Pos.X), cellY(lf.Pos.Y), LadyFrogChar, core.ColorBrightMagenta)
	}

	for _, c := range st.Cars {
		glyph := CarCharLeft
		if c.Dir == engine.DirRight {
			glyph = CarCharRight
		}
		color := core.ColorRed
		if row := int((engine.CarRowY(0) - c.Pos.Y) / engine.HopSize); row%2 == 1 {
			color = core.ColorOrange
		}
		dst.SetWithColor(cellX(c.Pos.X), cellY(c.Pos.Y), glyph, color)
	}

	frogColor := core.ColorBrightGreen
	if st.PickedUpBonus {
		frogColor = core.ColorBrightMagenta
	}
	dst.SetWithColor(cellX(st.Frog.Pos.X), cellY(st.Frog.Pos.Y), FrogChar, frogColor)

	g.drawHUD(dst)

	switch {
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case st.GameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", st.Score))
	case g.banner > 0:
		g.drawCenteredMessage(dst, "LEVEL PASSED",
			fmt.Sprintf("Level %d cleared", st.Level))
	}
}

// drawSpan draws a horizontal entity by its world half-width. Wide
// entities (planks, the crocodile) need their full extent on screen so
// the player can judge landings.
func (g *Game) drawSpan(dst *core.Screen, cellX func(float64) int, cellY func(float64) int,
	pos engine.Vec, radiusX float64, glyph rune, color core.Color) {
	y := cellY(pos.Y)
	left := cellX(pos.X - radiusX)
	right := cellX(pos.X + radiusX)
	for x := left; x <= right; x++ {
		dst.SetWithColor(x, y, glyph, color)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	st := g.state
	hud := fmt.Sprintf(" Score: %d  High: %d  Level: %d  Slots: %d/%d ",
		st.Score, st.HighScore, st.Level, st.TargetsFilled, engine.TargetCount)
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
