package kitchen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownBinding = errors.New("unknown binding")

// Action is an abstract input signal.
type Action int

const (
	ActionMove Action = iota
	ActionInteract
	ActionInteractAlternate
	ActionPause
)

// DeviceClass groups physical controls.
type DeviceClass int

const (
	DeviceKeyboard DeviceClass = iota
	DeviceGamepad
	DeviceMouse
)

func (d DeviceClass) String() string {
	switch d {
	case DeviceKeyboard:
		return "Keyboard"
	case DeviceGamepad:
		return "Gamepad"
	case DeviceMouse:
		return "Mouse"
	}
	return "Unknown"
}

// Control is a physical control. Path is the device-qualified identifier
// ("<Keyboard>/w"), Name the display text ("W").
type Control struct {
	Device DeviceClass `json:"device"`
	Path   string      `json:"path"`
	Name   string      `json:"name"`
}

// AnyKey is the display name of the catch-all keyboard control. It can
// never be bound.
const AnyKey = "Any Key"

var (
	ControlKeyboardEscape = Control{Device: DeviceKeyboard, Path: "<Keyboard>/escape", Name: "Escape"}
	ControlGamepadStart   = Control{Device: DeviceGamepad, Path: "<Gamepad>/start", Name: "Start"}
)

func keyboard(key, name string) Control {
	return Control{Device: DeviceKeyboard, Path: "<Keyboard>/" + key, Name: name}
}

func gamepad(button, name string) Control {
	return Control{Device: DeviceGamepad, Path: "<Gamepad>/" + button, Name: name}
}

// Binding is one rebindable slot of an action.
type Binding int

const (
	BindingMoveUp Binding = iota
	BindingMoveDown
	BindingMoveLeft
	BindingMoveRight
	BindingInteract
	BindingInteractAlternate
	BindingPause
	BindingGamepadInteract
	BindingGamepadInteractAlternate
	BindingGamepadPause
	bindingCount
)

var bindingInfo = [bindingCount]struct {
	id     string
	label  string
	action Action
	def    Control
}{
	BindingMoveUp:                   {"move_up", "Move Up", ActionMove, keyboard("w", "W")},
	BindingMoveDown:                 {"move_down", "Move Down", ActionMove, keyboard("s", "S")},
	BindingMoveLeft:                 {"move_left", "Move Left", ActionMove, keyboard("a", "A")},
	BindingMoveRight:                {"move_right", "Move Right", ActionMove, keyboard("d", "D")},
	BindingInteract:                 {"interact", "Interact", ActionInteract, keyboard("e", "E")},
	BindingInteractAlternate:        {"interact_alternate", "Interact Alt", ActionInteractAlternate, keyboard("f", "F")},
	BindingPause:                    {"pause", "Pause", ActionPause, ControlKeyboardEscape},
	BindingGamepadInteract:          {"gamepad_interact", "Gamepad Interact", ActionInteract, gamepad("buttonSouth", "Button South")},
	BindingGamepadInteractAlternate: {"gamepad_interact_alternate", "Gamepad Interact Alt", ActionInteractAlternate, gamepad("buttonWest", "Button West")},
	BindingGamepadPause:             {"gamepad_pause", "Gamepad Pause", ActionPause, ControlGamepadStart},
}

// AllBindings lists every binding in display order.
func AllBindings() []Binding {
	out := make([]Binding, bindingCount)
	for i := range out {
		out[i] = Binding(i)
	}
	return out
}

func (b Binding) valid() bool { return b >= 0 && b < bindingCount }

func (b Binding) String() string {
	if !b.valid() {
		return fmt.Sprintf("Binding(%d)", int(b))
	}
	return bindingInfo[b].id
}

func (b Binding) Label() string       { return bindingInfo[b].label }
func (b Binding) Action() Action      { return bindingInfo[b].action }
func (b Binding) Default() Control    { return bindingInfo[b].def }
func (b Binding) Device() DeviceClass { return bindingInfo[b].def.Device }

func ParseBinding(id string) (Binding, error) {
	for i, info := range bindingInfo {
		if info.id == id {
			return Binding(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBinding, id)
}

// BindingSet is the live binding table: authored defaults plus the user's
// overrides, and the switch that gates action processing.
type BindingSet struct {
	overrides map[Binding]Control
	disabled  bool
	store     Settings
	bus       *EventBus
}

func NewBindingSet(store Settings, bus *EventBus) *BindingSet {
	return &BindingSet{
		overrides: make(map[Binding]Control),
		store:     store,
		bus:       bus,
	}
}

// Control returns the effective control for b.
func (s *BindingSet) Control(b Binding) Control {
	if c, ok := s.overrides[b]; ok {
		return c
	}
	return b.Default()
}

// Text returns the display text of b's control.
func (s *BindingSet) Text(b Binding) string { return s.Control(b).Name }

// IsKeyAlreadyBound reports whether name is the display text of any binding
// other than except on the same device class. Comparison ignores case.
func (s *BindingSet) IsKeyAlreadyBound(name string, except Binding) bool {
	for _, b := range AllBindings() {
		if b == except || b.Device() != except.Device() {
			continue
		}
		if strings.EqualFold(name, s.Text(b)) {
			return true
		}
	}
	return false
}

// Bound returns the bindings for action whose control has the given path.
func (s *BindingSet) Bound(action Action, path string) []Binding {
	var out []Binding
	for _, b := range AllBindings() {
		if b.Action() == action && s.Control(b).Path == path {
			out = append(out, b)
		}
	}
	return out
}

func (s *BindingSet) Enable()       { s.disabled = false }
func (s *BindingSet) Disable()      { s.disabled = true }
func (s *BindingSet) Enabled() bool { return !s.disabled }

// HasOverride reports whether b has a user override.
func (s *BindingSet) HasOverride(b Binding) bool {
	_, ok := s.overrides[b]
	return ok
}

type overrideEntry struct {
	Binding string `json:"binding"`
	Control
}

type overrideBlob struct {
	Bindings []overrideEntry `json:"bindings"`
}

// MarshalOverrides serializes the overrides in binding order.
func (s *BindingSet) MarshalOverrides() (string, error) {
	blob := overrideBlob{Bindings: []overrideEntry{}}
	for _, b := range AllBindings() {
		if c, ok := s.overrides[b]; ok {
			blob.Bindings = append(blob.Bindings, overrideEntry{Binding: b.String(), Control: c})
		}
	}
	data, err := json.Marshal(blob)
	if err != nil {
		return "", fmt.Errorf("marshal overrides: %w", err)
	}
	return string(data), nil
}

// UnmarshalOverrides replaces the overrides with those in data. On error the
// current overrides are kept.
func (s *BindingSet) UnmarshalOverrides(data string) error {
	var blob overrideBlob
	if err := json.Unmarshal([]byte(data), &blob); err != nil {
		return fmt.Errorf("unmarshal overrides: %w", err)
	}
	next := make(map[Binding]Control, len(blob.Bindings))
	for _, e := range blob.Bindings {
		b, err := ParseBinding(e.Binding)
		if err != nil {
			return err
		}
		if e.Control.Device != b.Device() {
			return fmt.Errorf("override %s: device %s, want %s", b, e.Control.Device, b.Device())
		}
		next[b] = e.Control
	}
	s.overrides = next
	return nil
}

// Load applies the overrides persisted in the settings store, if any.
func (s *BindingSet) Load(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	data, ok, err := s.store.GetString(ctx, SettingsKeyBindings)
	if err != nil {
		return fmt.Errorf("load bindings: %w", err)
	}
	if !ok {
		return nil
	}
	return s.UnmarshalOverrides(data)
}

// Save persists the overrides to the settings store.
func (s *BindingSet) Save(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	data, err := s.MarshalOverrides()
	if err != nil {
		return err
	}
	if err := s.store.SetString(ctx, SettingsKeyBindings, data); err != nil {
		return fmt.Errorf("save bindings: %w", err)
	}
	return nil
}

// ResetOverrides drops every override and persists the empty set.
func (s *BindingSet) ResetOverrides(ctx context.Context) error {
	s.overrides = make(map[Binding]Control)
	if err := s.Save(ctx); err != nil {
		return err
	}
	s.bus.Emit(Event{Type: EventBindingRebind})
	return nil
}
