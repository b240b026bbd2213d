package game

import "math"

// musicReader streams an endless kitchen groove: a four-chord loop with
// kick, snare, hats, FM bass and a plucked arpeggio.
type musicReader struct {
	t        float64
	seed     uint64
	measure  int
	chordIdx int
	section  int
}

var musicChords = [][]float64{
	{261.6, 329.6, 392.0, 493.9}, // Cmaj7
	{220.0, 261.6, 329.6, 392.0}, // Am7
	{174.6, 220.0, 261.6, 349.2}, // Fmaj7
	{196.0, 246.9, 293.7, 392.0}, // G
}

const musicTempo = 112.0 / 60.0 // beats per second

func newMusicReader(seed uint64) *musicReader {
	if seed == 0 {
		seed = 1
	}
	return &musicReader{seed: seed}
}

func (m *musicReader) Read(p []byte) (int, error) {
	samples := len(p) / 8
	if samples == 0 {
		return 0, nil
	}
	for i := 0; i < samples; i++ {
		m.t += 1.0 / SampleRate

		beatLen := 1.0 / musicTempo
		trig := math.Mod(m.t, beatLen)
		beatPos := trig / beatLen
		beat := int(m.t * musicTempo)

		if beat/4 != m.measure {
			m.measure = beat / 4
			m.chordIdx = (m.chordIdx + 1) % len(musicChords)
		}
		m.section = (beat / 32) % 4
		chord := musicChords[m.chordIdx]

		s := m.mixGroove(chord, trig, beatPos, beat)
		energy := [4]float64{0.80, 0.92, 1.00, 0.88}[m.section]
		duck := 1.0 - 0.16*math.Exp(-trig*20.0)
		s = softSat(s * energy * duck)

		pan := 0.08 * math.Sin(2*math.Pi*0.09*m.t)
		putStereoF32LR(p, i, softSat(s*(1-pan)), softSat(s*(1+pan)))
	}
	return samples * 8, nil
}

func (m *musicReader) mixGroove(chord []float64, trig, beatPos float64, beat int) float64 {
	var s float64

	if beat%2 == 0 {
		s += kick(trig) * 0.55
	}
	if beat%4 == 1 || beat%4 == 3 {
		s += snare(trig, &m.seed) * 0.30
	}
	// Off-beat hats: trigger half a beat in.
	half := 0.5 / musicTempo
	if beatPos >= 0.5 {
		s += hihat(trig-half, beat%4 == 3, &m.seed)
	} else {
		s += hihat(trig, false, &m.seed) * 0.5
	}

	bassEnv := math.Exp(-beatPos * 3.5)
	root := chord[0] * 0.5
	if beat%2 == 1 {
		root = chord[2] * 0.5
	}
	s += fmBass(m.t, root, bassEnv) * 0.45

	s += fmPad(m.t, chord, 0.55) * 0.25

	// Eighth-note arpeggio, only in the busier sections.
	if m.section >= 1 {
		step := int(beatPos*2) + (beat%2)*2
		note := chord[step%len(chord)] * 2
		arpTrig := math.Mod(beatPos, 0.5) * 2
		s += fmArp(m.t, note, math.Exp(-arpTrig*6)) * 0.35
	}
	return s
}

// kick returns a kick drum sample given time-since-trigger (trig) in seconds.
// Uses a pitch-swept sine with a transient click and short air tail.
func kick(trig float64) float64 {
	if trig > 0.25 {
		return 0
	}
	phase := 2 * math.Pi * 185 / 12.5 * (1 - math.Exp(-trig*12.5))
	body := math.Sin(phase) * math.Exp(-trig*18.0) * 0.80
	click := math.Sin(2*math.Pi*2100*trig) * math.Exp(-trig*250.0) * 0.24
	air := math.Sin(2*math.Pi*330*trig) * math.Exp(-trig*38.0) * 0.12
	return softSat(body + click + air)
}

// snare returns a snare sample given time-since-trigger.
func snare(trig float64, seed *uint64) float64 {
	if trig > 0.2 {
		return 0
	}
	env := math.Exp(-trig * 26.0)
	body := (math.Sin(2*math.Pi*188*trig)*0.24 + math.Sin(2*math.Pi*356*trig)*0.10) * env
	n1 := lcg(seed)
	n2 := lcg(seed)
	bandNoise := (n1 - n2*0.55) * env * (0.55 + 0.25*math.Exp(-trig*8.0))
	snap := math.Sin(2*math.Pi*2800*trig) * math.Exp(-trig*120.0) * 0.10
	return softSat(body + bandNoise + snap)
}

// hihat returns a closed hi-hat sample. open=true for longer decay.
func hihat(trig float64, open bool, seed *uint64) float64 {
	decay := 42.0
	limit := 0.06
	if open {
		decay = 15.0
		limit = 0.18
	}
	if trig < 0 || trig > limit {
		return 0
	}
	n := lcg(seed)
	metal := math.Sin(2*math.Pi*7300*trig) + math.Sin(2*math.Pi*9200*trig)*0.6
	s := (n*0.8 + metal*0.2) * math.Exp(-trig*decay) * 0.07
	return softSat(s)
}

// fmBass returns a warm FM bass sample; the low modRatio keeps it smooth.
func fmBass(t, freq, env float64) float64 {
	b := fm(t, freq, 0.5, 1.25*env) * env * 0.48
	b += math.Sin(2*math.Pi*freq*t) * env * 0.26
	b += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.10
	return softSat(b)
}

// fmPad returns a pad sample from a chord, detuned FM oscillators per note.
func fmPad(t float64, chord []float64, env float64) float64 {
	s := 0.0
	detunes := [4]float64{-0.004, -0.001, 0.002, 0.005}
	for _, freq := range chord {
		for _, d := range detunes {
			f := freq * (1 + d)
			vib := 1 + 0.003*math.Sin(2*math.Pi*(0.23+f*0.0007)*t)
			s += fm(t, f*vib, 1.45, 0.75*env) * 0.048
		}
	}
	return softSat(s)
}

// fmArp returns an FM arpeggio sample for one note.
func fmArp(t, freq, env float64) float64 {
	s := fm(t, freq, 2.0, 3.2*env) * env * 0.20
	s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
	return softSat(s)
}
