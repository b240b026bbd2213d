package kitchen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerSelectionChangesOnlyOnChange(t *testing.T) {
	k, rec := newTestKitchen(t)
	cc := NewCuttingCounter(2, 2) // x 4..6, z 4..6
	k.AddCounter(cc)
	p := k.Player
	p.Pos = Vec2{X: 5, Z: 3}

	p.Update(k, Vec2{Z: 1}, 0.01)
	assert.Equal(t, Counter(cc), p.Selected())
	sel := rec.of(EventSelectedCounterChanged)
	require.Len(t, sel, 1)
	assert.Equal(t, Counter(cc), sel[0].Counter)

	// Standing still keeps facing the same way.
	p.Update(k, Vec2{}, 0.01)
	p.Update(k, Vec2{}, 0.01)
	assert.Len(t, rec.of(EventSelectedCounterChanged), 1)

	p.Update(k, Vec2{Z: -1}, 0.01)
	assert.Nil(t, p.Selected())
	sel = rec.of(EventSelectedCounterChanged)
	require.Len(t, sel, 2)
	assert.Nil(t, sel[1].Counter)
}

func TestPlayerIgnoresWallsWhenTargeting(t *testing.T) {
	k, rec := newTestKitchen(t)
	p := k.Player
	p.Pos = Vec2{X: 1, Z: 6}

	p.Update(k, Vec2{X: -1}, 0.01)
	assert.Nil(t, p.Selected())
	assert.Empty(t, rec.of(EventSelectedCounterChanged))
}

func TestPlayerFullyBlockedDoesNotMove(t *testing.T) {
	k, _ := newTestKitchen(t)
	p := k.Player
	start := Vec2{X: 0.75, Z: 0.75}
	p.Pos = start

	p.Update(k, Vec2{X: -1, Z: -1}, 0.1)
	assert.Equal(t, start, p.Pos)
}

func TestPlayerSlidesAlongBlockingAxis(t *testing.T) {
	k, _ := newTestKitchen(t)
	p := k.Player
	p.Pos = Vec2{X: 0.75, Z: 6}

	p.Update(k, Vec2{X: -1, Z: 1}, 0.1)
	assert.InDelta(t, 0.75, p.Pos.X, 1e-9)
	assert.InDelta(t, 6+PlayerMoveSpeed*0.1, p.Pos.Z, 1e-9)
	assert.True(t, p.Walking)
}

func TestPlayerSlidesAlongX(t *testing.T) {
	k, _ := newTestKitchen(t)
	p := k.Player
	p.Pos = Vec2{X: 9, Z: 0.75}

	p.Update(k, Vec2{X: 1, Z: -1}, 0.1)
	assert.InDelta(t, 9+PlayerMoveSpeed*0.1, p.Pos.X, 1e-9)
	assert.InDelta(t, 0.75, p.Pos.Z, 1e-9)
}

func TestPlayerMovesFreely(t *testing.T) {
	k, _ := newTestKitchen(t)
	p := k.Player
	start := p.Pos

	p.Update(k, Vec2{X: 3, Z: 4}, 0.1)
	want := start.Add(Vec2{X: 0.6, Z: 0.8}.Scale(PlayerMoveSpeed * 0.1))
	assert.True(t, p.Pos.Eq(want, 1e-9), "pos %v, want %v", p.Pos, want)

	p.Update(k, Vec2{}, 0.1)
	assert.False(t, p.Walking)
}

func TestPlayerRotatesTowardMovement(t *testing.T) {
	k, _ := newTestKitchen(t)
	p := k.Player
	require.InDelta(t, math.Pi/2, p.Heading, 1e-9)

	// A small step only turns part of the way.
	p.Update(k, Vec2{X: 1}, 0.01)
	assert.InDelta(t, math.Pi/2*0.9, p.Heading, 1e-9)

	// dt*rotateSpeed >= 1 snaps onto the direction.
	p.Update(k, Vec2{X: 1}, 0.1)
	assert.InDelta(t, 0, p.Heading, 1e-9)
	assert.True(t, p.Facing().Eq(Vec2{X: 1}, 1e-9))
}

func TestPlayerInteractGatedOnPlaying(t *testing.T) {
	k, _ := newTestKitchen(t)
	c := NewContainerCounter(4, 1, ItemTomato) // x 8..10, z 2..4
	k.AddCounter(c)
	p := k.Player
	p.Pos = Vec2{X: 9, Z: 5}
	p.Update(k, Vec2{Z: -1}, 0.01)
	require.Equal(t, Counter(c), p.Selected())

	p.Interact(k)
	assert.False(t, p.HasItem())

	startPlaying(t, k)
	k.Session.TogglePause()
	p.Interact(k)
	assert.False(t, p.HasItem())

	k.Session.TogglePause()
	p.Interact(k)
	require.True(t, p.HasItem())
	assert.Equal(t, ItemTomato, p.HeldItem().Kind)
}

func TestPlayerInteractWithoutSelection(t *testing.T) {
	k, rec := newTestKitchen(t)
	startPlaying(t, k)
	rec.reset()

	k.Player.Interact(k)
	k.Player.InteractAlternate(k)
	assert.Empty(t, rec.events)
}
