package runner

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/moti-runner/internal/core"
)

// HUD and scenery characters
const (
	GroundChar    = '═'
	LifeChar      = "♥"
	LostLifeChar  = "♡"
	hudRow        = 0
	overlayHeight = 5
)

// Render draws the current frame. The world is scaled to fit dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.player == nil {
		return
	}

	vp := NewViewport(g.runtime.ScreenW, g.runtime.ScreenH, dst.Width(), dst.Height())

	for _, d := range g.drawables() {
		d.Draw(dst, vp)
	}

	groundRow := vp.Row(g.groundY + g.player.Rect.H)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorBrown)

	g.drawHUD(dst)

	switch {
	case g.gameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.paused && g.elapsed == 0:
		g.drawCenteredMessage(dst, strings.ToUpper(g.Title()),
			"Press P to start  |  Space to jump")
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawables returns everything in the world in back-to-front order.
func (g *Game) drawables() []Drawable {
	clouds := g.sky.Clouds()
	obs := g.obstacles.Obstacles()
	out := make([]Drawable, 0, len(clouds)+len(obs)+1)
	for _, c := range clouds {
		out = append(out, c)
	}
	for _, o := range obs {
		out = append(out, o)
	}
	return append(out, g.player)
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(2, hudRow, fmt.Sprintf(" Score: %d ", g.score))

	lives := strings.Repeat(LifeChar, g.lives) +
		strings.Repeat(LostLifeChar, max(g.cfg.Session.Lives-g.lives, 0))
	dst.DrawTextColored(16, hudRow, lives, core.ColorBrightRed)

	right := fmt.Sprintf(" Speed: %.0f ", g.gameSpeed)
	if g.difficulty.IsEnabled() {
		right = fmt.Sprintf(" Lvl %d  Speed: %.0f ", g.difficulty.Level(g.score), g.gameSpeed)
	}
	dst.DrawText(dst.Width()-utf8.RuneCountInString(right)-2, hudRow, right)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	titleLen := utf8.RuneCountInString(title)
	subLen := utf8.RuneCountInString(subtitle)

	boxW := max(titleLen, subLen) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - overlayHeight) / 2

	dst.FillRect(boxX, boxY, boxW, overlayHeight, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, overlayHeight)

	dst.DrawTextColored(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-subLen)/2, boxY+3, subtitle)
}
