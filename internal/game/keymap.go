package game

import (
	"strings"

	"kitchen/internal/kitchen"
)

// Control paths follow the "<Device>/id" form stored with binding
// overrides, so ids here must stay stable.

var keyNames = map[string]string{
	"space":        "Space",
	"enter":        "Enter",
	"escape":       "Escape",
	"tab":          "Tab",
	"backspace":    "Backspace",
	"upArrow":      "Up Arrow",
	"downArrow":    "Down Arrow",
	"leftArrow":    "Left Arrow",
	"rightArrow":   "Right Arrow",
	"leftShift":    "Left Shift",
	"rightShift":   "Right Shift",
	"leftCtrl":     "Left Control",
	"rightCtrl":    "Right Control",
	"leftAlt":      "Left Alt",
	"rightAlt":     "Right Alt",
	"comma":        "Comma",
	"period":       "Period",
	"slash":        "Slash",
	"semicolon":    "Semicolon",
	"quote":        "Quote",
	"leftBracket":  "Left Bracket",
	"rightBracket": "Right Bracket",
	"minus":        "Minus",
	"equals":       "Equals",
	"backquote":    "Backquote",
	"backslash":    "Backslash",
}

var gamepadNames = map[string]string{
	"buttonSouth":     "Button South",
	"buttonEast":      "Button East",
	"buttonWest":      "Button West",
	"buttonNorth":     "Button North",
	"leftShoulder":    "Left Shoulder",
	"rightShoulder":   "Right Shoulder",
	"select":          "Select",
	"start":           "Start",
	"leftStickPress":  "Left Stick Press",
	"rightStickPress": "Right Stick Press",
	"dpad/up":         "D-Pad Up",
	"dpad/down":       "D-Pad Down",
	"dpad/left":       "D-Pad Left",
	"dpad/right":      "D-Pad Right",
}

var mouseNames = map[string]string{
	"leftButton":   "Left Button",
	"rightButton":  "Right Button",
	"middleButton": "Middle Button",
}

// KeyControl returns the keyboard control for id. Single letters and
// digits display as themselves in upper case.
func KeyControl(id string) kitchen.Control {
	name, ok := keyNames[id]
	if !ok {
		name = strings.ToUpper(id)
	}
	return kitchen.Control{Device: kitchen.DeviceKeyboard, Path: "<Keyboard>/" + id, Name: name}
}

func GamepadControl(id string) kitchen.Control {
	name, ok := gamepadNames[id]
	if !ok {
		name = id
	}
	return kitchen.Control{Device: kitchen.DeviceGamepad, Path: "<Gamepad>/" + id, Name: name}
}

func MouseControl(id string) kitchen.Control {
	name, ok := mouseNames[id]
	if !ok {
		name = id
	}
	return kitchen.Control{Device: kitchen.DeviceMouse, Path: "<Mouse>/" + id, Name: name}
}
