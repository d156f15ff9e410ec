// Package term is a top-down terminal front-end for the jump game.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"hop/internal/jump"
)

// Cells per world unit. Terminal cells are roughly twice as tall as wide.
const (
	cellsPerUnitX = 4.0
	cellsPerUnitZ = 2.0
)

// hudRows is reserved at the top for the score line.
const hudRows = 1

// View maps the ground plane onto the terminal grid, centred on Focus.
type View struct {
	Width, Height int
	Focus         mgl64.Vec3
}

// Cell returns the column and row for a world point.
func (v View) Cell(p mgl64.Vec3) (col, row int) {
	cx := float64(v.Width) / 2
	cy := float64(hudRows) + float64(v.Height-hudRows)/2
	col = int(math.Floor(cx + (p.X()-v.Focus.X())*cellsPerUnitX))
	row = int(math.Floor(cy + (p.Z()-v.Focus.Z())*cellsPerUnitZ))
	return col, row
}

// World returns the world point at the centre of a cell, on the ground.
func (v View) World(col, row int) mgl64.Vec3 {
	cx := float64(v.Width) / 2
	cy := float64(hudRows) + float64(v.Height-hudRows)/2
	return mgl64.Vec3{
		v.Focus.X() + (float64(col)+0.5-cx)/cellsPerUnitX,
		0,
		v.Focus.Z() + (float64(row)+0.5-cy)/cellsPerUnitZ,
	}
}

func (v View) inside(col, row int) bool {
	return col >= 0 && col < v.Width && row >= hudRows && row < v.Height
}

// covers reports whether the ground point q lies on the platform footprint.
func covers(p jump.PlatformView, q mgl64.Vec3) bool {
	dx := q.X() - p.Center.X()
	dz := q.Z() - p.Center.Z()
	h := p.Size / 2
	if p.Shape == jump.StageCylinder {
		return dx*dx+dz*dz <= h*h
	}
	return math.Abs(dx) <= h && math.Abs(dz) <= h
}

var (
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleGold    = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleDanger  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleAgent   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite).Bold(true)
	stylePreview = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// platformStyle picks a cell rune and style by role and shape.
func platformStyle(p jump.PlatformView) (rune, tcell.Style) {
	col := tcell.NewRGBColor(236, 236, 228)
	if p.Shape == jump.StageCylinder {
		col = tcell.NewRGBColor(250, 196, 120)
	}
	switch p.Role {
	case jump.RoleCurrent:
		return '█', tcell.StyleDefault.Foreground(col)
	case jump.RoleNext:
		return '▓', tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 200, 170))
	}
	return '░', tcell.StyleDefault.Foreground(col)
}

// drawText writes s at (x, y), clipped to the screen width.
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	w, _ := s.Size()
	for _, r := range text {
		if x >= w {
			return
		}
		if x >= 0 {
			s.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

func drawCentered(s tcell.Screen, y int, style tcell.Style, text string) {
	w, _ := s.Size()
	drawText(s, (w-len([]rune(text)))/2, y, style, text)
}
