package kitchen

import (
	"testing"
)

// recorder collects every event emitted on a bus.
type recorder struct {
	events []Event
}

func newRecorder(bus *EventBus) *recorder {
	r := &recorder{}
	for t := EventProgressChanged; t <= EventBindingRebind; t++ {
		bus.Subscribe(t, func(e Event) { r.events = append(r.events, e) })
	}
	return r
}

func (r *recorder) of(t EventType) []Event {
	var out []Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func (r *recorder) reset() { r.events = nil }

// newTestKitchen returns an unfurnished kitchen and a recorder on its bus.
func newTestKitchen(t *testing.T) (*Kitchen, *recorder) {
	t.Helper()
	bus := NewEventBus()
	return New(bus, Options{}), newRecorder(bus)
}

// startPlaying runs the session through the countdown.
func startPlaying(t *testing.T, k *Kitchen) {
	t.Helper()
	k.Session.Start()
	k.Session.Update(CountdownToStartTime)
	if k.Session.State != StateGamePlaying {
		t.Fatalf("session state = %v, want playing", k.Session.State)
	}
}
