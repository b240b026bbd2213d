package game

import "math"

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundChop SoundKind = iota
	SoundPickup
	SoundDrop
	SoundTrash
	SoundContainerOpen
	SoundPlateAdd
	SoundFootstep
	SoundCountdown
	SoundRoundStart
	SoundGameOver
	SoundMenuSelect
	soundKindCount
)

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	putStereoF32LR(buf, i, sample, sample)
}

// putStereoF32LR writes independent left/right samples in [-1,1].
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}

// softSat applies gentle tanh-like saturation without harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

func samplesFor(seconds float64) int { return int(seconds * SampleRate) }

// mixdown soft-clips a mono mix into a stereo buffer.
func mixdown(mix []float64) []byte {
	buf := makeBuf(len(mix))
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundChop:
		return genChop()
	case SoundPickup:
		return genPickup()
	case SoundDrop:
		return genDrop()
	case SoundTrash:
		return genTrash()
	case SoundContainerOpen:
		return genContainerOpen()
	case SoundPlateAdd:
		return genPlateAdd()
	case SoundFootstep:
		return genFootstep()
	case SoundCountdown:
		return genCountdown()
	case SoundRoundStart:
		return genRoundStart()
	case SoundGameOver:
		return genGameOver()
	case SoundMenuSelect:
		return genMenuSelect()
	}
	return nil
}

// genChop: knife on board, a wooden knock under a short noise tick.
func genChop() []byte {
	n := samplesFor(0.085)
	mix := make([]float64, n)
	seed := uint64(24680)
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		knock := fm(t, 180-60*p, 1.4, 2.2) * math.Exp(-p*14) * 0.55
		tick := lcg(&seed) * math.Exp(-p*60) * 0.35
		mix[i] = knock + tick
	}
	return mixdown(mix)
}

// genPickup: snappy FM pop with rising pitch.
func genPickup() []byte {
	n := samplesFor(0.09)
	mix := make([]float64, n)
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := 480 + 720*p
		mix[i] = fm(t, freq, 2.0, 3.5*env)*env*0.5 + math.Sin(2*math.Pi*freq*3*t)*env*0.06
	}
	return mixdown(mix)
}

// genDrop: the pickup pop mirrored downward with a soft thud.
func genDrop() []byte {
	n := samplesFor(0.11)
	mix := make([]float64, n)
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.15)
		freq := 900 - 520*p
		thud := math.Sin(2*math.Pi*90*t) * math.Exp(-p*18) * 0.35
		mix[i] = fm(t, freq, 1.5, 2.0*env)*env*0.4 + thud
	}
	return mixdown(mix)
}

// genTrash: lowpassed noise slide, like something falling into a bin.
func genTrash() []byte {
	n := samplesFor(0.28)
	mix := make([]float64, n)
	seed := uint64(13579)
	lp := 0.0
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		lp = lp*0.9 + lcg(&seed)*0.1
		clank := fm(t, 310, 2.76, 4*math.Exp(-p*8)) * math.Exp(-math.Max(0, p-0.55)*30) * 0.25
		if p < 0.55 {
			clank = 0
		}
		mix[i] = lp*(1-p)*1.2 + clank
	}
	return mixdown(mix)
}

// genContainerOpen: two quick wooden knocks.
func genContainerOpen() []byte {
	n := samplesFor(0.16)
	mix := make([]float64, n)
	for _, onset := range []float64{0, 0.06} {
		start := samplesFor(onset)
		for i := start; i < n; i++ {
			trig := float64(i-start) / SampleRate
			mix[i] += fm(trig, 240, 1.3, 1.5) * math.Exp(-trig*55) * 0.45
		}
	}
	return mixdown(mix)
}

// genPlateAdd: ceramic clink, a bright bell partial over a short tick.
func genPlateAdd() []byte {
	n := samplesFor(0.22)
	mix := make([]float64, n)
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.6, 0.05, 0.35)
		mix[i] = fm(t, 1568, 2.756, 4.5*env)*env*0.28 + math.Sin(2*math.Pi*2637*t)*env*0.08
	}
	return mixdown(mix)
}

// genFootstep: muffled soft tap.
func genFootstep() []byte {
	n := samplesFor(0.05)
	mix := make([]float64, n)
	seed := uint64(97531)
	lp := 0.0
	for i := range mix {
		p := float64(i) / float64(n)
		lp = lp*0.8 + lcg(&seed)*0.2
		mix[i] = lp * math.Exp(-p*9) * 0.35
	}
	return mixdown(mix)
}

// genCountdown: short beep for each countdown second.
func genCountdown() []byte {
	n := samplesFor(0.12)
	mix := make([]float64, n)
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.3, 0.6, 0.3)
		mix[i] = fm(t, 660, 1.0, 0.8) * env * 0.35
	}
	return mixdown(mix)
}

// genRoundStart: ascending FM bell staircase; each note rings over the next.
func genRoundStart() []byte {
	notes := []float64{523.25, 659.25, 783.99, 1046.5} // C5 E5 G5 C6
	noteStep := samplesFor(0.075)
	total := len(notes)*noteStep + samplesFor(0.2)
	mix := make([]float64, total)

	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.55, 0.05, 0.35)
			mix[start+j] += fm(t, freq, 2.756, 5.0*env)*env*0.32 + math.Sin(2*math.Pi*freq*2*t)*env*0.08
		}
	}
	return mixdown(mix)
}

// genGameOver: slow descending minor chord, staggered.
func genGameOver() []byte {
	n := samplesFor(0.75)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.14}, // C4
		{220.00, 0.28}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := samplesFor(note.onset)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			mix[i] += fm(t, freq, 2.0, 2.0*env)*env*0.32 + math.Sin(2*math.Pi*freq*0.5*t)*env*0.1
		}
	}
	return mixdown(mix)
}

// genMenuSelect: crisp click and a brief high tone.
func genMenuSelect() []byte {
	n := SampleRate * 65 / 1000
	mix := make([]float64, n)
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		mix[i] = fm(t, 1400-700*p, 1.0, 0.6) * env * 0.38
	}
	return mixdown(mix)
}
