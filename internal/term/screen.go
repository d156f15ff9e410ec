package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"hop/internal/jump"
)

// focus is the midpoint of the current and next platforms.
func focus(snap jump.Snapshot) mgl64.Vec3 {
	var sum mgl64.Vec3
	n := 0
	for _, p := range snap.Platforms {
		if p.Role != jump.RoleNone {
			sum = sum.Add(p.Center)
			n++
		}
	}
	if n == 0 {
		return snap.Agent
	}
	return sum.Mul(1 / float64(n))
}

// draw renders one frame from a snapshot.
func draw(s tcell.Screen, snap jump.Snapshot, best int, charge float64) {
	s.Clear()
	w, h := s.Size()
	v := View{Width: w, Height: h, Focus: focus(snap)}

	// Platforms, oldest first so the active pair wins overlaps.
	for row := hudRows; row < h; row++ {
		for col := 0; col < w; col++ {
			q := v.World(col, row)
			for _, p := range snap.Platforms {
				if covers(p, q) {
					r, st := platformStyle(p)
					s.SetContent(col, row, r, nil, st)
				}
			}
		}
	}

	if snap.Charging {
		for _, p := range snap.Preview {
			col, row := v.Cell(p)
			if v.inside(col, row) {
				s.SetContent(col, row, '·', nil, stylePreview)
			}
		}
	}

	if len(snap.Platforms) > 0 {
		col, row := v.Cell(snap.Agent)
		if v.inside(col, row) {
			ch := '@'
			if snap.Airborne {
				ch = 'o'
			}
			s.SetContent(col, row, ch, nil, styleAgent)
		}
	}

	drawHUD(s, snap, best, charge)
	s.Show()
}

func drawHUD(s tcell.Screen, snap jump.Snapshot, best int, charge float64) {
	_, h := s.Size()
	switch snap.State {
	case jump.StateIdle:
		drawCentered(s, h/2-1, styleHUD, "H O P")
		drawCentered(s, h/2+1, styleDim, "enter: start   space: charge / jump   q: quit")
	case jump.StatePlaying:
		drawText(s, 1, 0, styleHUD, fmt.Sprintf("score %d", snap.Score))
		if snap.Multiplier > 1 {
			drawText(s, 14, 0, styleGold, fmt.Sprintf("x%d", snap.Multiplier))
		}
		if snap.Charging {
			drawText(s, 22, 0, styleDim, chargeBar(charge, 20))
		}
	case jump.StateGameOver:
		drawCentered(s, h/2-2, styleDanger, "GAME OVER")
		drawCentered(s, h/2, styleHUD, fmt.Sprintf("score %d   best %d", snap.Score, best))
		drawCentered(s, h/2+2, styleDim, "enter: retry   q: quit")
	}
}

// chargeBar renders ratio in [0, 1] as a bracketed bar of width cells.
func chargeBar(ratio float64, width int) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio*float64(width) + 0.5)
	bar := make([]rune, 0, width+2)
	bar = append(bar, '[')
	for i := 0; i < width; i++ {
		if i < filled {
			bar = append(bar, '=')
		} else {
			bar = append(bar, ' ')
		}
	}
	return string(append(bar, ']'))
}
