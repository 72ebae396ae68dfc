package game

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/catchit/internal/catchit"
	"github.com/vovakirdan/catchit/internal/core"
)

const newGameText = "Press SPACE for new game"

// Render draws the current or final game state into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		w, h := MinScreen(g.cfg.Display)
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d, have %dx%d", w, h, dst.Width(), dst.Height()))
		return
	}

	s, ok := g.Snapshot()
	if !ok {
		return
	}

	g.renderForce(dst, &s)
	g.renderObstacles(dst, &s)
	g.fill(dst, s.Prey, g.glyph(g.cfg.Glyphs.Prey), g.cfg.Colors.Prey)

	hunter := g.cfg.Glyphs.Hunter
	if s.Hunter.Force > 0 {
		hunter = g.cfg.Glyphs.HunterForce
	}
	g.fill(dst, s.Hunter.Object, g.glyph(hunter), g.cfg.Colors.Hunter)

	g.renderHUD(dst, &s)

	switch {
	case g.last != nil:
		g.renderOverlay(dst, fmt.Sprintf("Game over! Score: %d", s.Score), newGameText)
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to resume")
	}
}

// renderObstacles draws obstacles faded by the invisibility effect.
func (g *Game) renderObstacles(dst *core.Screen, s *catchit.State) {
	bands := g.cfg.Glyphs.Obstacle
	band := opacityBand(s.ObstacleOpacity.Current, len(bands))
	if band < 0 {
		return
	}

	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		glyph, color := g.glyph(bands[band]), g.cfg.Colors.Deadly
		switch o.Kind {
		case catchit.InvisibilitySwitch:
			glyph, color = g.glyph(g.cfg.Glyphs.Switch), g.cfg.Colors.Invisibility
		case catchit.AttractiveForceSwitch:
			glyph, color = g.glyph(g.cfg.Glyphs.Switch), g.cfg.Colors.Attraction
		}
		g.fill(dst, o.Object, glyph, color)
	}
}

// opacityBand picks the glyph band for an opacity in [0, 1]: band 0 for fully
// opaque, -1 when too faint to draw.
func opacityBand(opacity float64, bands int) int {
	if bands == 0 {
		return -1
	}
	i := int(math.Floor((1 - opacity) * float64(bands)))
	if i >= bands {
		return -1
	}
	return max(i, 0)
}

// renderForce outlines the force radius while any force acts on obstacles.
func (g *Game) renderForce(dst *core.Screen, s *catchit.State) {
	if g.cfg.Glyphs.ForceRing == "" {
		return
	}
	if s.Hunter.Force <= 0 && s.AttractingForce.Current <= 0 {
		return
	}

	r := s.Hunter.Object.HalfSize * catchit.ForceRadiusCoeff
	color := g.cfg.Colors.ForceRing
	if s.AttractingForce.Current > s.Hunter.Force {
		color = g.cfg.Colors.Attraction
	}
	cell := core.Cell{Rune: g.glyph(g.cfg.Glyphs.ForceRing), Color: color}
	g.layout.ring(s.Hunter.Object.Pos, r, func(x, y int) {
		dst.SetCell(x, y, cell)
	})
}

func (g *Game) fill(dst *core.Screen, obj catchit.Object, r rune, color core.Color) {
	cell := core.Cell{Rune: r, Color: color}
	g.layout.covered(obj, func(x, y int) {
		dst.SetCell(x, y, cell)
	})
}

func (g *Game) glyph(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// renderHUD draws the separator and status line below the field.
func (g *Game) renderHUD(dst *core.Screen, s *catchit.State) {
	rows := g.cfg.Display.HUDRows
	if rows <= 0 {
		return
	}

	y := g.layout.Rows
	color := g.cfg.Colors.HUD
	if rows > 1 {
		dst.DrawHLine(0, y, dst.Width(), '─', color)
		y++
	}

	parts := []string{
		fmt.Sprintf("Score: %d", s.Score),
		fmt.Sprintf("x%.2f", s.ScoreCoeff),
		fmt.Sprintf("Best Score: %d", max(g.best, int(s.Score))),
		fmt.Sprintf("Tries: %d", g.tries),
		fmt.Sprintf("Obstacles: %d", len(s.Obstacles)),
	}
	if !s.ObstacleOpacity.IsPristine() {
		parts = append(parts, "[invisible]")
	}
	if !s.AttractingForce.IsPristine() {
		parts = append(parts, "[attract]")
	}
	if s.Hunter.Force > 0 {
		parts = append(parts, "[force]")
	}
	if g.pilot != nil {
		parts = append(parts, "[autopilot]")
	}
	dst.DrawText(1, y, strings.Join(parts, "  "), color)
}

// renderOverlay draws a centered two-line box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2)) + 4
	box := dst.Bounds().Centered(w, 5)
	color := g.cfg.Colors.Banner

	dst.DrawRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, color)
	drawCentered(dst, box, box.Y+1, line1, color)
	drawCentered(dst, box, box.Y+3, line2, color)
}

func drawCentered(dst *core.Screen, box core.Rect, y int, text string, color core.Color) {
	x := box.X + (box.W-utf8.RuneCountInString(text))/2
	dst.DrawText(x, y, text, color)
}
