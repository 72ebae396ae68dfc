package game

import (
	"math"

	"github.com/vovakirdan/catchit/internal/catchit"
	"github.com/vovakirdan/catchit/internal/config"
)

// Layout maps between terminal cells and field units. The field occupies the
// top rows of the screen; the HUD sits below it.
type Layout struct {
	UnitsPerColumn float64
	UnitsPerRow    float64
	Columns        int // Field width in cells
	Rows           int // Field height in cells
}

// NewLayout sizes the field for a screen of w x h cells.
func NewLayout(d config.DisplayConfig, w, h int) Layout {
	return Layout{
		UnitsPerColumn: d.UnitsPerColumn,
		UnitsPerRow:    d.UnitsPerRow,
		Columns:        max(w, 0),
		Rows:           max(h-d.HUDRows, 0),
	}
}

// Field returns the playing field extent in field units.
func (l Layout) Field() catchit.Extent {
	return catchit.V(float64(l.Columns)*l.UnitsPerColumn, float64(l.Rows)*l.UnitsPerRow)
}

// CellCenter returns the field position at the center of cell (x, y).
// Cells outside the field map to positions outside it.
func (l Layout) CellCenter(x, y int) catchit.Position {
	return catchit.V((float64(x)+0.5)*l.UnitsPerColumn, (float64(y)+0.5)*l.UnitsPerRow)
}

// CellAt returns the cell containing field position p.
func (l Layout) CellAt(p catchit.Position) (int, int) {
	return int(math.Floor(p.X / l.UnitsPerColumn)), int(math.Floor(p.Y / l.UnitsPerRow))
}

// InField reports whether cell (x, y) is part of the field.
func (l Layout) InField(x, y int) bool {
	return x >= 0 && x < l.Columns && y >= 0 && y < l.Rows
}

// MinScreen returns the smallest screen, in cells, that can host a game.
func MinScreen(d config.DisplayConfig) (int, int) {
	w := int(math.Ceil(catchit.MinFieldSize / d.UnitsPerColumn))
	h := int(math.Ceil(catchit.MinFieldSize/d.UnitsPerRow)) + d.HUDRows
	return w, h
}

// covered calls fn for every field cell whose center lies inside obj.
// Objects smaller than a cell still cover the cell holding their center.
func (l Layout) covered(obj catchit.Object, fn func(x, y int)) {
	x0, y0 := l.CellAt(catchit.V(obj.Left(), obj.Top()))
	x1, y1 := l.CellAt(catchit.V(obj.Right(), obj.Bottom()))

	hit := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !l.InField(x, y) || !contains(obj, l.CellCenter(x, y)) {
				continue
			}
			fn(x, y)
			hit = true
		}
	}

	if !hit {
		if cx, cy := l.CellAt(obj.Pos); l.InField(cx, cy) {
			fn(cx, cy)
		}
	}
}

func contains(obj catchit.Object, p catchit.Position) bool {
	if obj.Shape == catchit.Circle {
		return p.Sub(obj.Pos).Len() <= obj.HalfSize
	}
	return p.X >= obj.Left() && p.X <= obj.Right() && p.Y >= obj.Top() && p.Y <= obj.Bottom()
}

// ring calls fn for field cells lying on a circle of radius r around center.
func (l Layout) ring(center catchit.Position, r float64, fn func(x, y int)) {
	band := math.Max(l.UnitsPerColumn, l.UnitsPerRow) / 2
	x0, y0 := l.CellAt(catchit.V(center.X-r-band, center.Y-r-band))
	x1, y1 := l.CellAt(catchit.V(center.X+r+band, center.Y+r+band))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !l.InField(x, y) {
				continue
			}
			if math.Abs(l.CellCenter(x, y).Sub(center).Len()-r) <= band {
				fn(x, y)
			}
		}
	}
}
