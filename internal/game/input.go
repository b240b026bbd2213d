//go:build !android

package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"kitchen/internal/kitchen"
)

type keyID struct {
	key glfw.Key
	id  string
}

type padID struct {
	button glfw.GamepadButton
	id     string
}

var keyTable = buildKeyTable()

func buildKeyTable() []keyID {
	t := []keyID{
		{glfw.KeySpace, "space"},
		{glfw.KeyEnter, "enter"},
		{glfw.KeyEscape, "escape"},
		{glfw.KeyTab, "tab"},
		{glfw.KeyBackspace, "backspace"},
		{glfw.KeyUp, "upArrow"},
		{glfw.KeyDown, "downArrow"},
		{glfw.KeyLeft, "leftArrow"},
		{glfw.KeyRight, "rightArrow"},
		{glfw.KeyLeftShift, "leftShift"},
		{glfw.KeyRightShift, "rightShift"},
		{glfw.KeyLeftControl, "leftCtrl"},
		{glfw.KeyRightControl, "rightCtrl"},
		{glfw.KeyLeftAlt, "leftAlt"},
		{glfw.KeyRightAlt, "rightAlt"},
		{glfw.KeyComma, "comma"},
		{glfw.KeyPeriod, "period"},
		{glfw.KeySlash, "slash"},
		{glfw.KeySemicolon, "semicolon"},
		{glfw.KeyApostrophe, "quote"},
		{glfw.KeyLeftBracket, "leftBracket"},
		{glfw.KeyRightBracket, "rightBracket"},
		{glfw.KeyMinus, "minus"},
		{glfw.KeyEqual, "equals"},
		{glfw.KeyGraveAccent, "backquote"},
		{glfw.KeyBackslash, "backslash"},
	}
	for k := glfw.KeyA; k <= glfw.KeyZ; k++ {
		t = append(t, keyID{k, string(rune('a' + int(k-glfw.KeyA)))})
	}
	for k := glfw.Key0; k <= glfw.Key9; k++ {
		t = append(t, keyID{k, string(rune('0' + int(k-glfw.Key0)))})
	}
	return t
}

var padTable = []padID{
	{glfw.ButtonA, "buttonSouth"},
	{glfw.ButtonB, "buttonEast"},
	{glfw.ButtonX, "buttonWest"},
	{glfw.ButtonY, "buttonNorth"},
	{glfw.ButtonLeftBumper, "leftShoulder"},
	{glfw.ButtonRightBumper, "rightShoulder"},
	{glfw.ButtonBack, "select"},
	{glfw.ButtonStart, "start"},
	{glfw.ButtonLeftThumb, "leftStickPress"},
	{glfw.ButtonRightThumb, "rightStickPress"},
	{glfw.ButtonDpadUp, "dpad/up"},
	{glfw.ButtonDpadDown, "dpad/down"},
	{glfw.ButtonDpadLeft, "dpad/left"},
	{glfw.ButtonDpadRight, "dpad/right"},
}

var mouseTable = []struct {
	button glfw.MouseButton
	id     string
}{
	{glfw.MouseButtonLeft, "leftButton"},
	{glfw.MouseButtonRight, "rightButton"},
	{glfw.MouseButtonMiddle, "middleButton"},
}

type Input struct {
	prevMouse map[glfw.MouseButton]bool
	prevKeys  map[glfw.Key]bool
	prevPad   map[glfw.GamepadButton]bool

	down  map[string]bool // held control paths this frame
	pad   *glfw.GamepadState
	joy   glfw.Joystick
	stick [2]float64
}

func NewInput() *Input {
	return &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
		prevPad:   make(map[glfw.GamepadButton]bool),
		down:      make(map[string]bool),
		joy:       glfw.Joystick1,
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

func (in *Input) justPressedPad(btn glfw.GamepadButton) bool {
	down := in.pad != nil && in.pad.Buttons[btn] == glfw.Press
	jp := down && !in.prevPad[btn]
	in.prevPad[btn] = down
	return jp
}

// Poll samples every known control and returns the ones pressed since the
// last call, keyboard first.
func (in *Input) Poll(window *glfw.Window) []kitchen.Control {
	var pressed []kitchen.Control
	clear(in.down)

	for _, k := range keyTable {
		if in.JustPressed(window, k.key) {
			pressed = append(pressed, KeyControl(k.id))
		}
		if in.prevKeys[k.key] {
			in.down[KeyControl(k.id).Path] = true
		}
	}
	for _, m := range mouseTable {
		if in.JustClicked(window, m.button) {
			pressed = append(pressed, MouseControl(m.id))
		}
	}

	in.pad = nil
	in.stick = [2]float64{}
	if in.joy.IsGamepad() {
		in.pad = in.joy.GetGamepadState()
	}
	if in.pad != nil {
		in.stick = [2]float64{
			float64(in.pad.Axes[glfw.AxisLeftX]),
			float64(in.pad.Axes[glfw.AxisLeftY]),
		}
	}
	for _, p := range padTable {
		if in.justPressedPad(p.button) {
			pressed = append(pressed, GamepadControl(p.id))
		}
		if in.prevPad[p.button] {
			in.down[GamepadControl(p.id).Path] = true
		}
	}
	return pressed
}

// Down reports whether the control at path was held at the last Poll.
func (in *Input) Down(path string) bool { return in.down[path] }

// Stick returns the left stick axes from the last Poll.
func (in *Input) Stick() (float64, float64) { return in.stick[0], in.stick[1] }
