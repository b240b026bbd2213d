package kitchen

import (
	"context"
	"fmt"
	"math"
)

// TutorialLine is one row of the controls panel.
type TutorialLine struct {
	Binding Binding
	Label   string
	Key     string
}

// TutorialLines returns the label and current key text of every binding.
func TutorialLines(s *BindingSet) []TutorialLine {
	lines := make([]TutorialLine, 0, bindingCount)
	for _, b := range AllBindings() {
		lines = append(lines, TutorialLine{Binding: b, Label: b.Label(), Key: s.Text(b)})
	}
	return lines
}

// ProgressBar is a visible cutting progress indicator.
type ProgressBar struct {
	Counter  Counter
	Progress float64
}

// HUD mirrors core events into display state. It never changes the kitchen.
type HUD struct {
	Selected Counter
	State    GameState
	Paused   bool

	// Revision increases on every binding change so views can refresh
	// cached key text.
	Revision int

	order    []Counter
	progress map[Counter]float64
}

// NewHUD returns a HUD subscribed to bus.
func NewHUD(bus *EventBus) *HUD {
	h := &HUD{progress: make(map[Counter]float64)}
	bus.Subscribe(EventProgressChanged, func(e Event) {
		if _, ok := h.progress[e.Counter]; !ok {
			h.order = append(h.order, e.Counter)
		}
		h.progress[e.Counter] = e.Progress
	})
	bus.Subscribe(EventSelectedCounterChanged, func(e Event) {
		h.Selected = e.Counter
	})
	bus.Subscribe(EventStateChanged, func(e Event) {
		h.State = e.State
		if e.State == StateWaitingToStart {
			for c := range h.progress {
				h.progress[c] = 0
			}
		}
	})
	bus.Subscribe(EventPauseChanged, func(e Event) {
		h.Paused = e.Paused
	})
	bus.Subscribe(EventBindingRebind, func(Event) {
		h.Revision++
	})
	return h
}

// Progress returns the last progress reported by c.
func (h *HUD) Progress(c Counter) float64 { return h.progress[c] }

// ProgressBars returns the bars that should be drawn: those strictly
// between empty and full, in the order their counters first reported.
func (h *HUD) ProgressBars() []ProgressBar {
	var bars []ProgressBar
	for _, c := range h.order {
		if p := h.progress[c]; p > 0 && p < 1 {
			bars = append(bars, ProgressBar{Counter: c, Progress: p})
		}
	}
	return bars
}

// StatusText is the centre-screen message for the session.
func (h *HUD) StatusText(s *GameSession, bindings *BindingSet) string {
	if h.Paused {
		return "PAUSED"
	}
	switch h.State {
	case StateWaitingToStart:
		return fmt.Sprintf("Press %s to start", bindings.Text(BindingInteract))
	case StateCountdownToStart:
		return fmt.Sprintf("%d", int(math.Ceil(s.CountdownRemaining())))
	case StateGameOver:
		return fmt.Sprintf("GAME OVER - press %s", bindings.Text(BindingInteract))
	}
	return ""
}

// OptionsMenu is the pause-screen list of bindings. Selecting a row starts a
// rebind of that binding.
type OptionsMenu struct {
	Cursor int

	bindings *BindingSet
	rebind   *Rebind
	last     RebindResult
}

func NewOptionsMenu(bindings *BindingSet) *OptionsMenu {
	return &OptionsMenu{bindings: bindings}
}

func (m *OptionsMenu) Up() {
	if m.Capturing() {
		return
	}
	m.Cursor = (m.Cursor + int(bindingCount) - 1) % int(bindingCount)
}

func (m *OptionsMenu) Down() {
	if m.Capturing() {
		return
	}
	m.Cursor = (m.Cursor + 1) % int(bindingCount)
}

// Current returns the binding under the cursor.
func (m *OptionsMenu) Current() Binding { return Binding(m.Cursor) }

// Select starts capturing a new control for the binding under the cursor.
// It returns the pending capture, or the one already running.
func (m *OptionsMenu) Select() *Rebind {
	if m.Capturing() {
		return m.rebind
	}
	m.last = RebindPending
	m.rebind = m.bindings.StartRebind(m.Current(), func(res RebindResult) {
		m.last = res
		m.rebind = nil
	})
	return m.rebind
}

// Capturing reports whether a rebind is waiting for a control.
func (m *OptionsMenu) Capturing() bool { return m.rebind != nil }

// Offer passes a pressed control to the running capture, if any.
func (m *OptionsMenu) Offer(ctx context.Context, c Control) (RebindResult, error) {
	if m.rebind == nil {
		return RebindPending, nil
	}
	return m.rebind.Offer(ctx, c)
}

// Close abandons any running capture.
func (m *OptionsMenu) Close() {
	if m.rebind != nil {
		m.rebind.Cancel()
	}
}

// LastResult is the outcome of the most recent capture.
func (m *OptionsMenu) LastResult() RebindResult { return m.last }

// Prompt is the instruction shown while capturing, or the outcome of the
// last capture.
func (m *OptionsMenu) Prompt() string {
	if m.rebind != nil {
		return fmt.Sprintf("Press a new key for %s (Escape to cancel)", m.rebind.Binding().Label())
	}
	switch m.last {
	case RebindRejected:
		return "Key already in use"
	case RebindCanceled:
		return "Rebind canceled"
	}
	return ""
}

// MenuLine is one row of the options menu.
type MenuLine struct {
	TutorialLine
	Selected bool
	Waiting  bool
}

func (m *OptionsMenu) Lines() []MenuLine {
	tl := TutorialLines(m.bindings)
	lines := make([]MenuLine, len(tl))
	for i, l := range tl {
		sel := i == m.Cursor
		lines[i] = MenuLine{TutorialLine: l, Selected: sel, Waiting: sel && m.Capturing()}
		if lines[i].Waiting {
			lines[i].Key = "..."
		}
	}
	return lines
}
