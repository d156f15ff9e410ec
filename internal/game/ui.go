package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"hop/internal/jump"
)

// Popup is a floating "+N" over a landing spot.
type Popup struct {
	Text string
	Col  RGB
	At   mgl64.Vec3
	Age  float64
}

// HUD owns transient overlay state; everything else is read from the
// snapshot each frame.
type HUD struct {
	Popups []Popup
	Best   int
}

func (h *HUD) AddPopup(reward int, precise bool, at mgl64.Vec3) {
	p := Popup{Text: fmt.Sprintf("+%d", reward), Col: Palette.Text, At: at}
	if precise {
		p.Col = Palette.Gold
	}
	h.Popups = append(h.Popups, p)
}

// Update ages popups and drops the expired ones.
func (h *HUD) Update(dt float64) {
	out := h.Popups[:0]
	for _, p := range h.Popups {
		p.Age += dt
		if p.Age < PopupLife {
			out = append(out, p)
		}
	}
	h.Popups = out
}

func (h *HUD) Reset() { h.Popups = h.Popups[:0] }

// RecordScore keeps the session best.
func (h *HUD) RecordScore(score int) {
	if score > h.Best {
		h.Best = score
	}
}

// RenderHUD draws all overlay elements for the current state. charge is the
// hold ratio in [0, 1] while a press is held.
func RenderHUD(r *Renderer, h *HUD, cam *Camera, snap jump.Snapshot, charge float64, fbW, fbH int) {
	switch snap.State {
	case jump.StateIdle:
		title := "HOP"
		titleScale := float32(10)
		r.DrawString(title, fbW/2-TextWidth(title, titleScale)/2, fbH/2-110, titleScale, Palette.Text)

		msg := "PRESS ENTER TO START"
		msgScale := float32(3)
		r.DrawString(msg, fbW/2-TextWidth(msg, msgScale)/2, fbH/2+10, msgScale, Palette.Text)

		hint := "HOLD SPACE OR CLICK TO CHARGE. RELEASE TO JUMP."
		hintScale := float32(2)
		r.DrawString(hint, fbW/2-TextWidth(hint, hintScale)/2, fbH/2+50, hintScale, Palette.TextDim)

	case jump.StatePlaying:
		s := float32(4)
		r.DrawString(fmt.Sprintf("%d", snap.Score), 16, 16, s, Palette.Text)
		if snap.Multiplier > 1 {
			m := fmt.Sprintf("X%d", snap.Multiplier)
			r.DrawString(m, 16, 16+int(LineAdvance*s), 3, Palette.Gold)
		}

		if snap.Charging {
			const barW, barH = 200, 10
			x, y := fbW/2-barW/2, fbH-40
			r.DrawRect(x, y, barW, barH, Palette.TextDim, 0.35)
			col := lerpRGB(Palette.Gold, Palette.Danger, charge)
			r.DrawRect(x, y, int(barW*clampF(charge, 0, 1)), barH, col, 0.9)
		}

		for _, p := range h.Popups {
			x, y, ok := cam.Project(p.At, fbW, fbH)
			if !ok {
				continue
			}
			t := p.Age / PopupLife
			y -= t * PopupRise
			alpha := float32(1 - t*t)
			r.DrawStringAlpha(p.Text, int(x)-TextWidth(p.Text, PopupScale)/2, int(y), PopupScale, p.Col, alpha)
		}

	case jump.StateGameOver:
		const panelW, panelH = 360, 220
		px, py := fbW/2-panelW/2, fbH/2-panelH/2
		r.DrawRect(px, py, panelW, panelH, Palette.Sky.Mul(200), 0.85)

		msg1 := "GAME OVER"
		r.DrawString(msg1, fbW/2-TextWidth(msg1, 6)/2, py+24, 6, Palette.Danger)

		msg2 := fmt.Sprintf("SCORE %d", snap.Score)
		r.DrawString(msg2, fbW/2-TextWidth(msg2, 4)/2, py+86, 4, Palette.Text)

		msg3 := fmt.Sprintf("BEST %d", h.Best)
		r.DrawString(msg3, fbW/2-TextWidth(msg3, 3)/2, py+128, 3, Palette.Gold)

		msg4 := "PRESS ENTER TO RETRY"
		r.DrawString(msg4, fbW/2-TextWidth(msg4, 2)/2, py+176, 2, Palette.TextDim)
	}

	r.FlushText(fbW, fbH)
}
