package game

import (
	"math"

	"kitchen/internal/kitchen"
)

// FootstepInterval is the time between footstep sounds while walking.
const FootstepInterval = 0.1

// SoundFor maps a core event to the effect it should trigger.
func SoundFor(e kitchen.Event) (SoundKind, bool) {
	switch e.Type {
	case kitchen.EventCut:
		return SoundChop, true
	case kitchen.EventPickedSomething:
		return SoundPickup, true
	case kitchen.EventItemDropped:
		return SoundDrop, true
	case kitchen.EventTrashed:
		return SoundTrash, true
	case kitchen.EventContainerOpened:
		return SoundContainerOpen, true
	case kitchen.EventIngredientAdded:
		return SoundPlateAdd, true
	case kitchen.EventStateChanged:
		switch e.State {
		case kitchen.StateGamePlaying:
			return SoundRoundStart, true
		case kitchen.StateGameOver:
			return SoundGameOver, true
		}
	case kitchen.EventPauseChanged, kitchen.EventBindingRebind:
		return SoundMenuSelect, true
	}
	return 0, false
}

var soundEvents = []kitchen.EventType{
	kitchen.EventCut,
	kitchen.EventPickedSomething,
	kitchen.EventItemDropped,
	kitchen.EventTrashed,
	kitchen.EventContainerOpened,
	kitchen.EventIngredientAdded,
	kitchen.EventStateChanged,
	kitchen.EventPauseChanged,
	kitchen.EventBindingRebind,
}

// BindSounds subscribes play to every event that has a sound.
func BindSounds(bus *kitchen.EventBus, play func(SoundKind)) {
	for _, t := range soundEvents {
		bus.Subscribe(t, func(e kitchen.Event) {
			if kind, ok := SoundFor(e); ok {
				play(kind)
			}
		})
	}
}

// Footsteps paces footstep sounds while the player walks.
type Footsteps struct {
	timer float64
}

// Update advances the timer and reports whether a step should sound.
func (f *Footsteps) Update(dt float64, walking bool) bool {
	f.timer -= dt
	if f.timer > 0 {
		return false
	}
	f.timer = FootstepInterval
	return walking
}

// CountdownTicks reports each new whole second of the start countdown.
type CountdownTicks struct {
	last int
}

// Update returns true when the displayed countdown number changes.
func (c *CountdownTicks) Update(s *kitchen.GameSession) bool {
	if s.State != kitchen.StateCountdownToStart {
		c.last = 0
		return false
	}
	n := int(math.Ceil(s.CountdownRemaining()))
	if n == c.last || n <= 0 {
		return false
	}
	c.last = n
	return true
}
