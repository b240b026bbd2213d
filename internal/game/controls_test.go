package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchen/internal/kitchen"
)

func newTestController(t *testing.T) (*Controller, *kitchen.MemorySettings) {
	t.Helper()
	bus := kitchen.NewEventBus()
	store := kitchen.NewMemorySettings()
	set := kitchen.NewBindingSet(store, bus)
	k := kitchen.NewDefault(bus, kitchen.Options{})
	return NewController(k, set, nil), store
}

func TestControllerInteractStartsRound(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	require.NoError(t, c.Handle(ctx, []kitchen.Control{KeyControl("q")}))
	assert.Equal(t, kitchen.StateWaitingToStart, c.Kitchen.Session.State)

	require.NoError(t, c.Handle(ctx, []kitchen.Control{KeyControl("e")}))
	assert.Equal(t, kitchen.StateCountdownToStart, c.Kitchen.Session.State)
}

func TestControllerGamepadInteract(t *testing.T) {
	c, _ := newTestController(t)
	require.NoError(t, c.Handle(context.Background(), []kitchen.Control{GamepadControl("buttonSouth")}))
	assert.Equal(t, kitchen.StateCountdownToStart, c.Kitchen.Session.State)
}

func TestControllerPauseMenuRebind(t *testing.T) {
	c, store := newTestController(t)
	ctx := context.Background()

	require.NoError(t, c.Handle(ctx, []kitchen.Control{KeyControl("escape")}))
	require.True(t, c.Kitchen.Session.Paused)

	// Interact is the fifth row.
	press := []kitchen.Control{KeyControl("s"), KeyControl("s"), KeyControl("s"), KeyControl("s")}
	require.NoError(t, c.Handle(ctx, press))
	assert.Equal(t, kitchen.BindingInteract, c.Menu.Current())
	require.NoError(t, c.Handle(ctx, []kitchen.Control{GamepadControl("dpad/up"), GamepadControl("dpad/down")}))
	assert.Equal(t, kitchen.BindingInteract, c.Menu.Current())

	require.NoError(t, c.Handle(ctx, []kitchen.Control{KeyControl("e")}))
	require.True(t, c.Menu.Capturing())

	// Escape cancels the capture and leaves the game paused.
	require.NoError(t, c.Handle(ctx, []kitchen.Control{KeyControl("escape")}))
	assert.False(t, c.Menu.Capturing())
	assert.True(t, c.Kitchen.Session.Paused)
	assert.Equal(t, kitchen.RebindCanceled, c.Menu.LastResult())

	require.NoError(t, c.Handle(ctx, []kitchen.Control{KeyControl("e"), KeyControl("space")}))
	assert.Equal(t, kitchen.RebindCompleted, c.Menu.LastResult())
	assert.Equal(t, "Space", c.Bindings.Text(kitchen.BindingInteract))
	assert.Equal(t, 1, store.Writes)

	require.NoError(t, c.Handle(ctx, []kitchen.Control{KeyControl("escape")}))
	assert.False(t, c.Kitchen.Session.Paused)

	require.NoError(t, c.Handle(ctx, []kitchen.Control{KeyControl("e")}))
	assert.Equal(t, kitchen.StateWaitingToStart, c.Kitchen.Session.State, "old key no longer bound")
	require.NoError(t, c.Handle(ctx, []kitchen.Control{KeyControl("space")}))
	assert.Equal(t, kitchen.StateCountdownToStart, c.Kitchen.Session.State)
}

func TestControllerUnpauseCancelsCapture(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	require.NoError(t, c.Handle(ctx, []kitchen.Control{GamepadControl("start")}))
	require.True(t, c.Kitchen.Session.Paused)
	require.NoError(t, c.Handle(ctx, []kitchen.Control{KeyControl("e")}))
	require.True(t, c.Menu.Capturing())

	// Start is the cancel control on gamepads, so it ends the capture
	// first; a second press unpauses.
	require.NoError(t, c.Handle(ctx, []kitchen.Control{GamepadControl("start")}))
	assert.False(t, c.Menu.Capturing())
	assert.True(t, c.Kitchen.Session.Paused)

	c.Menu.Select()
	c.Menu.Close()
	require.NoError(t, c.Handle(ctx, []kitchen.Control{GamepadControl("start")}))
	assert.False(t, c.Kitchen.Session.Paused)
	assert.True(t, c.Bindings.Enabled())
}

func TestMoveVector(t *testing.T) {
	set := kitchen.NewBindingSet(nil, kitchen.NewEventBus())
	held := func(paths ...string) func(string) bool {
		return func(p string) bool {
			for _, h := range paths {
				if h == p {
					return true
				}
			}
			return false
		}
	}

	assert.Equal(t, kitchen.Vec2{}, MoveVector(set, held(), 0, 0))
	assert.Equal(t, kitchen.Vec2{Z: 1}, MoveVector(set, held("<Keyboard>/w"), 0, 0))
	assert.Equal(t, kitchen.Vec2{X: -1}, MoveVector(set, held("<Keyboard>/a"), 0, 0))
	assert.Equal(t, kitchen.Vec2{}, MoveVector(set, held("<Keyboard>/a", "<Keyboard>/d"), 0, 0))

	diag := MoveVector(set, held("<Keyboard>/w", "<Keyboard>/d"), 0, 0)
	assert.InDelta(t, 1.0, diag.Len(), 1e-9)

	assert.Equal(t, kitchen.Vec2{}, MoveVector(set, held(), 0.1, 0.1), "inside deadzone")
	stick := MoveVector(set, held(), 0.5, -0.5)
	assert.InDelta(t, 0.5, stick.X, 1e-9)
	assert.InDelta(t, 0.5, stick.Z, 1e-9)

	set.Disable()
	assert.Equal(t, kitchen.Vec2{}, MoveVector(set, held("<Keyboard>/w"), 1, 0))
}

func TestControlNames(t *testing.T) {
	assert.Equal(t, kitchen.Control{Device: kitchen.DeviceKeyboard, Path: "<Keyboard>/w", Name: "W"}, KeyControl("w"))
	assert.Equal(t, "Escape", KeyControl("escape").Name)
	assert.Equal(t, "Up Arrow", KeyControl("upArrow").Name)
	assert.Equal(t, "7", KeyControl("7").Name)
	assert.Equal(t, kitchen.ControlGamepadStart, GamepadControl("start"))
	assert.Equal(t, "Button South", GamepadControl("buttonSouth").Name)
	assert.Equal(t, kitchen.DeviceMouse, MouseControl("leftButton").Device)

	// Default bindings resolve to the same controls the keymap produces.
	set := kitchen.NewBindingSet(nil, kitchen.NewEventBus())
	for _, b := range kitchen.AllBindings() {
		ctl := set.Control(b)
		id := ctl.Path[len("<Keyboard>/"):]
		if b.Device() == kitchen.DeviceGamepad {
			id = ctl.Path[len("<Gamepad>/"):]
			assert.Equal(t, ctl, GamepadControl(id), b.String())
			continue
		}
		assert.Equal(t, ctl, KeyControl(id), b.String())
	}
}
