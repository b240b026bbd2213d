package kitchen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameSessionLifecycle(t *testing.T) {
	bus := NewEventBus()
	rec := newRecorder(bus)
	s := NewGameSession(bus, 10)

	assert.Equal(t, StateWaitingToStart, s.State)
	s.Update(100)
	assert.Equal(t, StateWaitingToStart, s.State, "waiting does not time out")

	s.Start()
	assert.Equal(t, StateCountdownToStart, s.State)
	assert.Equal(t, CountdownToStartTime, s.CountdownRemaining())

	s.Update(1)
	assert.Equal(t, StateCountdownToStart, s.State)
	assert.False(t, s.IsPlaying())

	s.Update(2)
	assert.Equal(t, StateGamePlaying, s.State)
	assert.Equal(t, 10.0, s.PlayingRemaining())
	assert.True(t, s.IsPlaying())
	assert.Equal(t, 0.0, s.PlayingTimerNormalized())

	s.Update(2.5)
	assert.InDelta(t, 0.25, s.PlayingTimerNormalized(), 1e-9)

	s.Update(7.5)
	assert.Equal(t, StateGameOver, s.State)
	assert.Equal(t, 0.0, s.PlayingRemaining())
	assert.Equal(t, 1.0, s.PlayingTimerNormalized())

	s.Restart()
	assert.Equal(t, StateWaitingToStart, s.State)

	changes := rec.of(EventStateChanged)
	require.Len(t, changes, 4)
	assert.Equal(t, StateCountdownToStart, changes[0].State)
	assert.Equal(t, StateGamePlaying, changes[1].State)
	assert.Equal(t, StateGameOver, changes[2].State)
	assert.Equal(t, StateWaitingToStart, changes[3].State)
}

func TestGameSessionPauseFreezesTimers(t *testing.T) {
	bus := NewEventBus()
	rec := newRecorder(bus)
	s := NewGameSession(bus, 0)
	assert.Equal(t, DefaultPlayingTime, s.PlayingTimeMax)

	s.Start()
	s.TogglePause()
	s.Update(10)
	assert.Equal(t, StateCountdownToStart, s.State)
	assert.Equal(t, CountdownToStartTime, s.CountdownRemaining())

	s.TogglePause()
	s.Update(CountdownToStartTime)
	assert.Equal(t, StateGamePlaying, s.State)

	pauses := rec.of(EventPauseChanged)
	require.Len(t, pauses, 2)
	assert.True(t, pauses[0].Paused)
	assert.False(t, pauses[1].Paused)
}

func TestGameSessionTransitionsAreGuarded(t *testing.T) {
	s := NewGameSession(NewEventBus(), 5)
	s.Restart()
	assert.Equal(t, StateWaitingToStart, s.State)

	s.Start()
	s.Start()
	assert.Equal(t, StateCountdownToStart, s.State)
	s.Restart()
	assert.Equal(t, StateCountdownToStart, s.State)
}

func TestGameStateString(t *testing.T) {
	assert.Equal(t, "waiting", StateWaitingToStart.String())
	assert.Equal(t, "game over", StateGameOver.String())
	assert.Equal(t, "unknown", GameState(42).String())
}
