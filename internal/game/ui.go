//go:build !android

package game

import (
	"fmt"

	"kitchen/internal/kitchen"
)

// HUDView is what the HUD needs beyond the renderer.
type HUDView struct {
	Kitchen  *kitchen.Kitchen
	HUD      *kitchen.HUD
	Bindings *kitchen.BindingSet
	Menu     *kitchen.OptionsMenu
}

// RenderHUD draws all in-game UI elements using the font atlas.
func RenderHUD(r *Renderer, v HUDView, fbW, fbH int) {
	s := TextScale(fbH)
	small := s * 0.75
	lineH := int(float32(FontCellH) * small * 1.3)
	session := v.Kitchen.Session

	// Top-centre: round clock with a fill bar.
	if session.State == kitchen.StateGamePlaying || session.State == kitchen.StateGameOver {
		clock := FormatClock(session.PlayingRemaining())
		col := Palette.Text
		if session.PlayingRemaining() < 10 {
			col = Palette.TextWarn
		}
		r.DrawStringCentered(clock, fbW/2, 8, s, col)
		r.DrawStringCentered(ClockBar(session.PlayingTimerNormalized(), 20), fbW/2, 8+int(float32(FontCellH)*s)+4, small, Palette.TextDim)
	}

	// Centre: status line.
	if status := v.HUD.StatusText(session, v.Bindings); status != "" {
		col := Palette.Text
		switch session.State {
		case kitchen.StateGameOver:
			col = Palette.TextWarn
		case kitchen.StateCountdownToStart:
			col = Palette.TextGood
		}
		scale := s
		if session.State == kitchen.StateCountdownToStart && !session.Paused {
			scale = s * 3
		}
		r.DrawStringCentered(status, fbW/2, fbH/2-int(float32(FontCellH)*scale)/2, scale, col)
	}

	// Bottom-left: what the player is looking at and carrying.
	y := fbH - 8 - lineH
	if it := v.Kitchen.Player.HeldItem(); it != nil {
		r.DrawString("Holding: "+HeldText(it), 8, y, small, Palette.Text)
		y -= lineH
	}
	if sel := v.HUD.Selected; sel != nil {
		r.DrawString(sel.Label(), 8, y, small, Palette.Selected)
	}

	if session.Paused {
		renderOptions(r, v.Menu, fbW, fbH, small, lineH)
		return
	}

	// Top-left: controls, shown until the round starts.
	if session.State == kitchen.StateWaitingToStart {
		y := 8
		for _, line := range kitchen.TutorialLines(v.Bindings) {
			r.DrawString(fmt.Sprintf("%-22s %s", line.Label, line.Key), 8, y, small, Palette.TextDim)
			y += lineH
		}
	}
}

func renderOptions(r *Renderer, m *kitchen.OptionsMenu, fbW, fbH int, scale float32, lineH int) {
	lines := m.Lines()
	y := fbH/2 + lineH*2
	r.DrawStringCentered("CONTROLS", fbW/2, y, scale, Palette.Text)
	y += lineH * 2
	for _, line := range lines {
		col := Palette.TextDim
		marker := "  "
		if line.Selected {
			col = Palette.Selected
			marker = "> "
		}
		r.DrawStringCentered(fmt.Sprintf("%s%-22s %-14s", marker, line.Label, line.Key), fbW/2, y, scale, col)
		y += lineH
	}
	y += lineH
	if prompt := m.Prompt(); prompt != "" {
		col := Palette.Text
		if m.LastResult() == kitchen.RebindRejected && !m.Capturing() {
			col = Palette.TextWarn
		}
		r.DrawStringCentered(prompt, fbW/2, y, scale, col)
	}
}
