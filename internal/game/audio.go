package game

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
)

// AudioSystem manages procedural sound effects and the music loop.
type AudioSystem struct {
	ctx         *oto.Context
	ready       chan struct{}
	musicPlayer oto.Player
}

var globalAudio *AudioSystem

// activeSounds caps overlapping effects so rapid chopping cannot clip.
var activeSounds int32

const maxActiveSounds = 6

var musicVolume = 0.10
var sfxVolume = 0.58
var muted atomic.Bool

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

func audioReady() bool {
	if globalAudio == nil {
		return false
	}
	select {
	case <-globalAudio.ready:
		return true
	default:
		return false
	}
}

// SetMuted silences effects and pauses the music loop.
func SetMuted(m bool) {
	muted.Store(m)
	if globalAudio == nil || globalAudio.musicPlayer == nil {
		return
	}
	if m {
		globalAudio.musicPlayer.Pause()
	} else {
		globalAudio.musicPlayer.Play()
	}
}

func Muted() bool { return muted.Load() }

// PlaySound plays a procedurally generated sound effect.
func PlaySound(kind SoundKind) {
	playSoundWithGain(kind, 1.0)
}

func playSoundWithGain(kind SoundKind, gain float64) {
	if gain <= 0 || Muted() || !audioReady() {
		return
	}
	if atomic.AddInt32(&activeSounds, 1) > maxActiveSounds {
		atomic.AddInt32(&activeSounds, -1)
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		atomic.AddInt32(&activeSounds, -1)
		return
	}
	go func() {
		defer atomic.AddInt32(&activeSounds, -1)
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume * clampF(gain, 0, 1))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// StartMusic (re)starts the background loop.
func StartMusic() {
	if !audioReady() {
		return
	}
	if globalAudio.musicPlayer != nil {
		globalAudio.musicPlayer.Close()
	}
	reader := newMusicReader(uint64(time.Now().UnixNano()))
	player := globalAudio.ctx.NewPlayer(reader)
	player.SetVolume(musicVolume)
	globalAudio.musicPlayer = player
	if !Muted() {
		player.Play()
	}
}

// SetMusicIntensity switches the loop between the calm and the round
// arrangement.
func SetMusicIntensity(playing bool) {
	if globalAudio == nil || globalAudio.musicPlayer == nil {
		return
	}
	v := musicVolume
	if playing {
		v *= 1.4
	}
	globalAudio.musicPlayer.SetVolume(v)
}

// StopAudio closes the music player.
func StopAudio() {
	if globalAudio == nil || globalAudio.musicPlayer == nil {
		return
	}
	globalAudio.musicPlayer.Close()
	globalAudio.musicPlayer = nil
}
