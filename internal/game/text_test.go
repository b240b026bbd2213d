package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kitchen/internal/kitchen"
)

func TestTextWidth(t *testing.T) {
	assert.Equal(t, 0, TextWidth("", 1))
	assert.Equal(t, 3*FontCellW, TextWidth("abc", 1))
	assert.Equal(t, 4*FontCellW*2, TextWidth("ab\nwxyz\nq", 2))
}

func TestTextScale(t *testing.T) {
	assert.Equal(t, float32(2), TextScale(600))
	assert.Equal(t, float32(2), TextScale(WindowHeight))
	assert.Equal(t, float32(4), TextScale(2*WindowHeight))
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{90, "1:30"},
		{89.2, "1:30"},
		{59.01, "1:00"},
		{5, "0:05"},
		{0, "0:00"},
		{-3, "0:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatClock(tt.in), "%v", tt.in)
	}
}

func TestClockBar(t *testing.T) {
	assert.Equal(t, "[####]", ClockBar(0, 4))
	assert.Equal(t, "[##..]", ClockBar(0.5, 4))
	assert.Equal(t, "[....]", ClockBar(1, 4))
	assert.Equal(t, "[....]", ClockBar(3, 4))
}

func TestHeldText(t *testing.T) {
	k := kitchen.New(kitchen.NewEventBus(), kitchen.Options{})
	a := kitchen.NewClearCounter(1, 1)
	k.AddCounter(a)

	assert.Equal(t, "Tomato", HeldText(k.Spawn(kitchen.ItemTomato, a)))

	plate := k.Spawn(kitchen.ItemPlate, k.Player)
	assert.Equal(t, "Plate (empty)", HeldText(plate))
	k.TryAddIngredient(plate, kitchen.ItemBread)
	k.TryAddIngredient(plate, kitchen.ItemTomatoSlices)
	assert.Equal(t, "Plate (Bread, Tomato Slices)", HeldText(plate))
}
