package kitchen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindingDefaults(t *testing.T) {
	s := NewBindingSet(nil, NewEventBus())
	want := map[Binding]string{
		BindingMoveUp:                   "W",
		BindingMoveDown:                 "S",
		BindingMoveLeft:                 "A",
		BindingMoveRight:                "D",
		BindingInteract:                 "E",
		BindingInteractAlternate:        "F",
		BindingPause:                    "Escape",
		BindingGamepadInteract:          "Button South",
		BindingGamepadInteractAlternate: "Button West",
		BindingGamepadPause:             "Start",
	}
	require.Len(t, AllBindings(), len(want))
	for b, text := range want {
		assert.Equal(t, text, s.Text(b), b.String())
	}
	assert.Equal(t, DeviceGamepad, BindingGamepadPause.Device())
	assert.Equal(t, ActionInteractAlternate, BindingGamepadInteractAlternate.Action())
}

func TestParseBinding(t *testing.T) {
	for _, b := range AllBindings() {
		got, err := ParseBinding(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
	_, err := ParseBinding("jump")
	assert.ErrorIs(t, err, ErrUnknownBinding)
	assert.Equal(t, "Binding(42)", Binding(42).String())
}

func TestIsKeyAlreadyBound(t *testing.T) {
	s := NewBindingSet(nil, NewEventBus())

	assert.True(t, s.IsKeyAlreadyBound("W", BindingInteract))
	assert.True(t, s.IsKeyAlreadyBound("w", BindingInteract), "case-insensitive")
	assert.False(t, s.IsKeyAlreadyBound("W", BindingMoveUp), "own binding")
	assert.False(t, s.IsKeyAlreadyBound("Q", BindingInteract))

	// Device classes are checked separately.
	assert.False(t, s.IsKeyAlreadyBound("Button South", BindingInteract))
	assert.True(t, s.IsKeyAlreadyBound("Button South", BindingGamepadPause))
}

func TestBoundByPath(t *testing.T) {
	s := NewBindingSet(nil, NewEventBus())
	assert.Equal(t, []Binding{BindingInteract}, s.Bound(ActionInteract, "<Keyboard>/e"))
	assert.Equal(t, []Binding{BindingGamepadPause}, s.Bound(ActionPause, "<Gamepad>/start"))
	assert.Empty(t, s.Bound(ActionInteract, "<Keyboard>/w"))
}

func TestOverridesRoundTripThroughSettings(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySettings()
	s := NewBindingSet(store, NewEventBus())
	s.overrides[BindingInteract] = keyboard("q", "Q")
	s.overrides[BindingGamepadPause] = gamepad("select", "Select")
	require.NoError(t, s.Save(ctx))

	blob, ok, err := store.GetString(ctx, SettingsKeyBindings)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"bindings":[
		{"binding":"interact","device":0,"path":"<Keyboard>/q","name":"Q"},
		{"binding":"gamepad_pause","device":1,"path":"<Gamepad>/select","name":"Select"}
	]}`, blob)

	loaded := NewBindingSet(store, NewEventBus())
	require.NoError(t, loaded.Load(ctx))
	assert.Equal(t, "Q", loaded.Text(BindingInteract))
	assert.Equal(t, "Select", loaded.Text(BindingGamepadPause))
	assert.False(t, loaded.HasOverride(BindingMoveUp))
}

func TestLoadWithoutStoredOverrides(t *testing.T) {
	s := NewBindingSet(NewMemorySettings(), NewEventBus())
	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, "E", s.Text(BindingInteract))

	nostore := NewBindingSet(nil, NewEventBus())
	assert.NoError(t, nostore.Load(context.Background()))
	assert.NoError(t, nostore.Save(context.Background()))
}

func TestUnmarshalOverridesRejectsBadBlobs(t *testing.T) {
	s := NewBindingSet(nil, NewEventBus())
	s.overrides[BindingInteract] = keyboard("q", "Q")

	err := s.UnmarshalOverrides(`{"bindings":[{"binding":"fly","device":0,"path":"<Keyboard>/x","name":"X"}]}`)
	assert.ErrorIs(t, err, ErrUnknownBinding)

	err = s.UnmarshalOverrides(`{"bindings":[{"binding":"interact","device":1,"path":"<Gamepad>/buttonNorth","name":"Button North"}]}`)
	assert.Error(t, err)

	assert.Error(t, s.UnmarshalOverrides(`not json`))
	assert.Equal(t, "Q", s.Text(BindingInteract), "overrides kept on error")
}

func TestResetOverrides(t *testing.T) {
	bus := NewEventBus()
	rec := newRecorder(bus)
	store := NewMemorySettings()
	s := NewBindingSet(store, bus)
	s.overrides[BindingInteract] = keyboard("q", "Q")

	require.NoError(t, s.ResetOverrides(context.Background()))
	assert.Equal(t, "E", s.Text(BindingInteract))
	assert.Len(t, rec.of(EventBindingRebind), 1)

	blob, _, _ := store.GetString(context.Background(), SettingsKeyBindings)
	assert.JSONEq(t, `{"bindings":[]}`, blob)
}
