package game

import (
	"fmt"
	"strings"

	"kitchen/internal/kitchen"
)

// TextWidth returns the width in screen pixels of a string at given scale.
func TextWidth(text string, scale float32) int {
	lineLen := 0
	maxLineLen := 0
	for _, ch := range text {
		if ch == '\n' {
			maxLineLen = max(maxLineLen, lineLen)
			lineLen = 0
			continue
		}
		lineLen++
	}
	maxLineLen = max(maxLineLen, lineLen)
	return int(float32(maxLineLen*FontCellW) * scale)
}

// TextScale picks an integer text scale for the framebuffer height so the
// HUD stays readable on high-DPI displays.
func TextScale(fbH int) float32 {
	return float32(max(1, fbH/WindowHeight)) * 2
}

// FormatClock renders seconds as M:SS, rounding up so the clock reads 0:00
// only when the time is fully spent.
func FormatClock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	s := int(seconds)
	if float64(s) < seconds {
		s++
	}
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// ClockBar draws elapsed round time as a text gauge, full when the round
// starts and empty when it ends.
func ClockBar(elapsed float64, width int) string {
	left := int(float64(width)*(1-clampF(elapsed, 0, 1)) + 0.5)
	return "[" + repeatChar('#', left) + repeatChar('.', width-left) + "]"
}

func repeatChar(ch byte, n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ch
	}
	return string(b)
}

// HeldText describes a carried item, listing a plate's ingredients.
func HeldText(it *kitchen.Item) string {
	label := it.Kind.Type().Label
	plate, ok := it.TryGetPlate()
	if !ok {
		return label
	}
	ingredients := plate.Ingredients()
	if len(ingredients) == 0 {
		return label + " (empty)"
	}
	names := make([]string, len(ingredients))
	for i, kind := range ingredients {
		names[i] = kind.Type().Label
	}
	return label + " (" + strings.Join(names, ", ") + ")"
}
