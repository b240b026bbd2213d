package game

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"kitchen/internal/kitchen"
)

const (
	padUp   = "<Gamepad>/dpad/up"
	padDown = "<Gamepad>/dpad/down"
)

// Controller routes just-pressed controls to the kitchen, or to the
// options menu while the game is paused.
type Controller struct {
	Kitchen  *kitchen.Kitchen
	Bindings *kitchen.BindingSet
	Menu     *kitchen.OptionsMenu
	Logger   *zap.Logger
}

func NewController(k *kitchen.Kitchen, bindings *kitchen.BindingSet, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		Kitchen:  k,
		Bindings: bindings,
		Menu:     kitchen.NewOptionsMenu(bindings),
		Logger:   logger,
	}
}

// Handle processes one frame of presses in order. While a rebind is
// capturing, presses go to the capture instead of the action map.
func (c *Controller) Handle(ctx context.Context, pressed []kitchen.Control) error {
	for _, ctl := range pressed {
		if c.Menu.Capturing() {
			b := c.Menu.Current()
			res, err := c.Menu.Offer(ctx, ctl)
			if res != kitchen.RebindPending {
				c.Logger.Info("rebind finished",
					zap.String("binding", b.String()),
					zap.String("control", ctl.Path),
					zap.String("result", res.String()))
			}
			if err != nil {
				return fmt.Errorf("rebind %s: %w", b, err)
			}
			continue
		}
		if !c.Bindings.Enabled() {
			continue
		}
		c.dispatch(ctl)
	}
	return nil
}

func (c *Controller) dispatch(ctl kitchen.Control) {
	k := c.Kitchen
	if len(c.Bindings.Bound(kitchen.ActionPause, ctl.Path)) > 0 {
		if k.Session.Paused {
			c.Menu.Close()
		}
		k.TogglePause()
		return
	}

	if k.Session.Paused {
		c.navigate(ctl)
		return
	}

	switch {
	case len(c.Bindings.Bound(kitchen.ActionInteract, ctl.Path)) > 0:
		k.Interact()
	case len(c.Bindings.Bound(kitchen.ActionInteractAlternate, ctl.Path)) > 0:
		k.InteractAlternate()
	}
}

func (c *Controller) navigate(ctl kitchen.Control) {
	switch {
	case ctl.Path == padUp || c.isMove(kitchen.BindingMoveUp, ctl.Path):
		c.Menu.Up()
	case ctl.Path == padDown || c.isMove(kitchen.BindingMoveDown, ctl.Path):
		c.Menu.Down()
	case len(c.Bindings.Bound(kitchen.ActionInteract, ctl.Path)) > 0:
		b := c.Menu.Current()
		c.Menu.Select()
		c.Logger.Debug("rebind started", zap.String("binding", b.String()))
	}
}

func (c *Controller) isMove(b kitchen.Binding, path string) bool {
	for _, got := range c.Bindings.Bound(kitchen.ActionMove, path) {
		if got == b {
			return true
		}
	}
	return false
}

// MoveVector combines the held movement bindings with the gamepad stick.
// down reports whether the control at path is held. stickX and stickY are
// raw axes with +Y pointing down, as glfw reports them.
func MoveVector(bindings *kitchen.BindingSet, down func(path string) bool, stickX, stickY float64) kitchen.Vec2 {
	if !bindings.Enabled() {
		return kitchen.Vec2{}
	}
	var v kitchen.Vec2
	if down(bindings.Control(kitchen.BindingMoveUp).Path) {
		v.Z++
	}
	if down(bindings.Control(kitchen.BindingMoveDown).Path) {
		v.Z--
	}
	if down(bindings.Control(kitchen.BindingMoveLeft).Path) {
		v.X--
	}
	if down(bindings.Control(kitchen.BindingMoveRight).Path) {
		v.X++
	}
	if math.Hypot(stickX, stickY) >= StickDeadzone {
		v.X += stickX
		v.Z -= stickY
	}
	if v.Len() > 1 {
		v = v.Normalized()
	}
	return v
}
