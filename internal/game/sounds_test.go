package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchen/internal/kitchen"
)

func frameSample(buf []byte, i, ch int) float32 {
	o := i*8 + ch*4
	bits := uint32(buf[o]) | uint32(buf[o+1])<<8 | uint32(buf[o+2])<<16 | uint32(buf[o+3])<<24
	return math.Float32frombits(bits)
}

func TestGenerateSoundBuffers(t *testing.T) {
	for kind := SoundKind(0); kind < soundKindCount; kind++ {
		buf := generateSound(kind)
		require.NotEmpty(t, buf, "kind %d", kind)
		require.Zero(t, len(buf)%8, "kind %d", kind)

		var peak float64
		for i := 0; i < len(buf)/8; i++ {
			l, r := frameSample(buf, i, 0), frameSample(buf, i, 1)
			assert.Equal(t, l, r)
			peak = math.Max(peak, math.Abs(float64(l)))
		}
		assert.LessOrEqual(t, peak, 1.0, "kind %d", kind)
		assert.Greater(t, peak, 0.01, "kind %d is silent", kind)
	}
	assert.Nil(t, generateSound(soundKindCount))
}

func TestMusicReaderFillsBuffer(t *testing.T) {
	m := newMusicReader(7)
	p := make([]byte, 4096*8+3)
	n, err := m.Read(p)
	require.NoError(t, err)
	assert.Equal(t, 4096*8, n)
	for i := 0; i < 4096; i++ {
		assert.LessOrEqual(t, math.Abs(float64(frameSample(p, i, 0))), 1.0)
	}

	n, err = m.Read(make([]byte, 5))
	assert.NoError(t, err)
	assert.Zero(t, n)
}

func TestSoundForEvents(t *testing.T) {
	tests := []struct {
		ev   kitchen.Event
		want SoundKind
		ok   bool
	}{
		{kitchen.Event{Type: kitchen.EventCut}, SoundChop, true},
		{kitchen.Event{Type: kitchen.EventPickedSomething}, SoundPickup, true},
		{kitchen.Event{Type: kitchen.EventItemDropped}, SoundDrop, true},
		{kitchen.Event{Type: kitchen.EventTrashed}, SoundTrash, true},
		{kitchen.Event{Type: kitchen.EventContainerOpened}, SoundContainerOpen, true},
		{kitchen.Event{Type: kitchen.EventIngredientAdded}, SoundPlateAdd, true},
		{kitchen.Event{Type: kitchen.EventStateChanged, State: kitchen.StateGamePlaying}, SoundRoundStart, true},
		{kitchen.Event{Type: kitchen.EventStateChanged, State: kitchen.StateGameOver}, SoundGameOver, true},
		{kitchen.Event{Type: kitchen.EventStateChanged, State: kitchen.StateCountdownToStart}, 0, false},
		{kitchen.Event{Type: kitchen.EventPauseChanged}, SoundMenuSelect, true},
		{kitchen.Event{Type: kitchen.EventProgressChanged}, 0, false},
		{kitchen.Event{Type: kitchen.EventSelectedCounterChanged}, 0, false},
	}
	for _, tt := range tests {
		got, ok := SoundFor(tt.ev)
		assert.Equal(t, tt.ok, ok, "%+v", tt.ev)
		assert.Equal(t, tt.want, got, "%+v", tt.ev)
	}
}

func TestBindSoundsFollowsKitchen(t *testing.T) {
	bus := kitchen.NewEventBus()
	k := kitchen.New(bus, kitchen.Options{})
	var played []SoundKind
	BindSounds(bus, func(s SoundKind) { played = append(played, s) })

	cc := kitchen.NewCuttingCounter(2, 2)
	k.AddCounter(cc)
	k.Spawn(kitchen.ItemTomato, cc)
	assert.Equal(t, []SoundKind{SoundDrop}, played)

	played = nil
	cc.InteractAlternate(k, k.Player)
	assert.Equal(t, []SoundKind{SoundChop}, played)
}

func TestFootsteps(t *testing.T) {
	var f Footsteps
	assert.True(t, f.Update(0.016, true))
	assert.False(t, f.Update(0.05, true))
	assert.True(t, f.Update(0.05, true))
	assert.False(t, f.Update(0.2, false), "standing still is silent")
}

func TestCountdownTicks(t *testing.T) {
	s := kitchen.NewGameSession(kitchen.NewEventBus(), 0)
	var c CountdownTicks
	assert.False(t, c.Update(s))

	s.Start()
	assert.True(t, c.Update(s))
	assert.False(t, c.Update(s))
	s.Update(1.5)
	assert.True(t, c.Update(s))
	s.Update(0.2)
	assert.False(t, c.Update(s))
	s.Update(2)
	assert.False(t, c.Update(s))
}
