package session

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/skyfighter/internal/core"
	"github.com/vovakirdan/skyfighter/internal/entity"
	"github.com/vovakirdan/skyfighter/internal/level"
)

// hudRows is the number of screen rows above the play area.
const hudRows = 2

// Sprite characters
const (
	HeartChar  = '♥'
	BarFull    = '█'
	BarEmpty   = '░'
	GroundChar = '─'
)

type sprite struct {
	text  string
	color core.Color
}

var sprites = map[entity.Kind]sprite{
	entity.KindPlayer:           {"=]>", core.ColorBrightCyan},
	entity.KindBasicEnemy:       {"<[=", core.ColorRed},
	entity.KindBoss:             {"<<##>", core.ColorMagenta},
	entity.KindBossPhase2:       {"<<@@>", core.ColorBrightRed},
	entity.KindPlayerProjectile: {"-", core.ColorBrightYellow},
	entity.KindEnemyProjectile:  {"•", core.ColorOrange},
	entity.KindPickup:           {string(HeartChar), core.ColorRed},
}

// Render draws the live scene and the HUD into dst.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	if s.current == nil {
		return
	}

	s.drawWorld(dst)
	s.drawHUD(dst)

	st := s.current.Status()
	switch s.current.State() {
	case level.StatePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case level.StateSwitching:
		drawCenteredMessage(dst, "LEVEL COMPLETE", fmt.Sprintf("Kills: %d", st.Kills))
	case level.StateWon:
		drawCenteredMessage(dst, "VICTORY", fmt.Sprintf("Kills: %d  |  Press R to restart", s.TotalKills()))
	case level.StateLost:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Kills: %d  |  Press R to restart", s.TotalKills()))
	}
}

// drawWorld maps world coordinates onto the play area below the HUD.
func (s *Session) drawWorld(dst *core.Screen) {
	rows := dst.Height() - hudRows
	if rows <= 0 || dst.Width() <= 0 {
		return
	}
	sx := float64(dst.Width()) / s.runtime.ViewportW
	sy := float64(rows) / s.runtime.ViewportH

	for _, e := range s.scene.Live() {
		if e.IsDestroyed() {
			continue
		}
		sp, ok := sprites[e.Kind]
		if !ok {
			continue
		}
		if e.Shielded() {
			sp = sprite{"(" + sp.text + ")", core.ColorBrightYellow}
		}

		cx, cy := center(e)
		x := int(math.Floor(cx*sx)) - len([]rune(sp.text))/2
		y := int(math.Floor(cy*sy)) + hudRows
		if y < hudRows || y >= dst.Height() {
			continue
		}
		dst.DrawText(x, y, sp.text, sp.color)
	}
}

// center returns the middle of the hitbox, or the position for entities
// without one.
func center(e *entity.Entity) (float64, float64) {
	if box, ok := e.Bounds(); ok {
		return box.X + box.W/2, box.Y + box.H/2
	}
	p := e.Position()
	return p.X, p.Y
}

func (s *Session) drawHUD(dst *core.Screen) {
	l := s.current
	st := l.Status()

	x := 1
	title := l.Title()
	dst.DrawText(x, 0, title, core.ColorWhite)
	x += len([]rune(title)) + 2

	dst.DrawText(x, 0, "HP ", core.ColorGray)
	x += 3
	hearts := strings.Repeat(string(HeartChar), st.Health)
	dst.DrawText(x, 0, hearts, core.ColorRed)
	x += st.Health + 2

	if boss := l.Boss(); boss != nil {
		label := boss.Brain().Title
		dst.DrawText(x, 0, label, core.ColorMagenta)
		x += len([]rune(label)) + 1
		x = drawBar(dst, x, 0, 20, boss.HealthPercent(), core.ColorBrightRed) + 1
		if boss.Shielded() {
			dst.DrawText(x, 0, "SHIELD", core.ColorBrightYellow)
		}
	} else if kills, threshold := l.Progress(); threshold > 0 {
		text := fmt.Sprintf("Kills %d/%d ", kills, threshold)
		dst.DrawText(x, 0, text, core.ColorGray)
		x += len(text)
		drawBar(dst, x, 0, 20, math.Min(float64(kills)/float64(threshold), 1), core.ColorBrightGreen)
	}

	total := fmt.Sprintf(" Total %d ", s.TotalKills())
	dst.DrawText(dst.Width()-len(total)-1, 0, total, core.ColorGray)

	dst.DrawHLine(0, hudRows-1, dst.Width(), GroundChar, core.ColorGray)
}

// drawBar draws a horizontal gauge of the given width filled to pct and
// returns the column after it.
func drawBar(dst *core.Screen, x, y, width int, pct float64, c core.Color) int {
	filled := int(math.Round(pct * float64(width)))
	dst.DrawHLine(x, y, filled, BarFull, c)
	dst.DrawHLine(x+filled, y, width-filled, BarEmpty, core.ColorGray)
	return x + width
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle, core.ColorWhite)
}
