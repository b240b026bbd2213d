package kitchen

type EventType int

const (
	EventProgressChanged EventType = iota
	EventSelectedCounterChanged
	EventPickedSomething
	EventAnyPickedSomething
	EventIngredientAdded
	EventCut
	EventContainerOpened
	EventTrashed
	EventItemDropped
	EventStateChanged
	EventPauseChanged
	EventBindingRebind
)

// Event is the payload passed to handlers. Counter is the source counter,
// or for EventSelectedCounterChanged the new selection (nil when cleared).
// Progress is normalized to 0..1.
type Event struct {
	Type     EventType
	Counter  Counter
	Item     *Item
	Kind     ItemKind
	Progress float64
	Binding  Binding
	State    GameState
	Paused   bool
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// Emit calls handlers synchronously in subscription order. A nil bus drops
// the event.
func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
