package kitchen

import (
	"context"
	"strings"
)

type RebindResult int

const (
	RebindPending RebindResult = iota
	RebindCompleted
	RebindCanceled
	RebindRejected
)

func (r RebindResult) String() string {
	switch r {
	case RebindPending:
		return "pending"
	case RebindCompleted:
		return "completed"
	case RebindCanceled:
		return "canceled"
	case RebindRejected:
		return "rejected"
	}
	return "unknown"
}

// Rebind is an interactive capture of a new control for one binding. While
// it is pending, action processing on the binding set is disabled.
type Rebind struct {
	set      *BindingSet
	binding  Binding
	previous Control
	result   RebindResult
	onDone   func(RebindResult)
}

// StartRebind disables action processing and begins capturing a control for
// b. onDone, if set, runs once when the capture ends, whatever the outcome.
func (s *BindingSet) StartRebind(b Binding, onDone func(RebindResult)) *Rebind {
	s.Disable()
	return &Rebind{
		set:      s,
		binding:  b,
		previous: s.Control(b),
		onDone:   onDone,
	}
}

func (r *Rebind) Binding() Binding     { return r.binding }
func (r *Rebind) Previous() Control    { return r.previous }
func (r *Rebind) Result() RebindResult { return r.result }
func (r *Rebind) Done() bool           { return r.result != RebindPending }

func isCancelControl(c Control) bool {
	return c.Path == ControlKeyboardEscape.Path || c.Path == ControlGamepadStart.Path
}

// excluded controls are never captured: the mouse, and the two cancel
// controls.
func excluded(c Control) bool {
	return c.Device == DeviceMouse || isCancelControl(c)
}

// Offer feeds a pressed control to the capture. Controls that cannot be
// captured leave it pending. A returned error means the new binding was
// applied but could not be persisted.
func (r *Rebind) Offer(ctx context.Context, c Control) (RebindResult, error) {
	if r.Done() {
		return r.result, nil
	}
	if isCancelControl(c) {
		r.finish(RebindCanceled)
		return r.result, nil
	}
	if excluded(c) || c.Device != r.binding.Device() {
		return RebindPending, nil
	}

	s := r.set
	prev, hadOverride := s.overrides[r.binding]
	s.overrides[r.binding] = c

	if s.IsKeyAlreadyBound(c.Name, r.binding) || strings.EqualFold(c.Name, AnyKey) {
		if hadOverride {
			s.overrides[r.binding] = prev
		} else {
			delete(s.overrides, r.binding)
		}
		r.finish(RebindRejected)
		return r.result, nil
	}

	s.Enable()
	err := s.Save(ctx)
	s.bus.Emit(Event{Type: EventBindingRebind, Binding: r.binding})
	r.finish(RebindCompleted)
	return r.result, err
}

// Cancel abandons a pending capture.
func (r *Rebind) Cancel() {
	if r.Done() {
		return
	}
	r.finish(RebindCanceled)
}

func (r *Rebind) finish(res RebindResult) {
	r.result = res
	r.set.Enable()
	if r.onDone != nil {
		r.onDone(res)
	}
}
