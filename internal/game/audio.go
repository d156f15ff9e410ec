package game

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundStart SoundKind = iota
	SoundJump
	SoundLand
	SoundPerfect
	SoundGameOver
)

// AudioSystem manages procedural sound effects.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

// activeVoices caps overlapping effects.
var activeVoices int32

const maxVoices = 6

const sfxVolume = 0.58

// masterVolume scales every effect; set from the volume setting.
var masterVolume = 1.0

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

func SetSFXVolume(vol float64) {
	masterVolume = clampF(vol, 0, 1)
}

// PlaySound plays a procedurally generated sound effect.
func PlaySound(kind SoundKind) {
	play(generateSound(kind, 0), 1.0)
}

// PlayLand plays the landing thump; precise landings chime higher as the
// streak grows.
func PlayLand(precise bool, streak int) {
	if precise {
		play(generateSound(SoundPerfect, streak), 1.0)
		return
	}
	play(generateSound(SoundLand, 0), 1.0)
}

func play(samples []byte, gain float64) {
	if globalAudio == nil || gain <= 0 || len(samples) == 0 {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	if atomic.AddInt32(&activeVoices, 1) > maxVoices {
		atomic.AddInt32(&activeVoices, -1)
		return
	}
	go func() {
		defer atomic.AddInt32(&activeVoices, -1)
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume * masterVolume * clampF(gain, 0, 1))
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

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for c := 0; c < 2; c++ {
		o := i*8 + c*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// softSat applies gentle tanh-like saturation.
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

// render converts a mono mix to a saturated stereo buffer.
func render(mix []float64) []byte {
	buf := makeBuf(len(mix))
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind, streak int) []byte {
	switch kind {
	case SoundStart:
		return render(genStart())
	case SoundJump:
		return render(genJump())
	case SoundLand:
		return render(genLand())
	case SoundPerfect:
		return render(genPerfect(streak))
	case SoundGameOver:
		return render(genGameOver())
	}
	return nil
}

// genStart: crisp click + brief high tone.
func genStart() []float64 {
	n := SampleRate * 65 / 1000
	mix := make([]float64, n)
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		mix[i] = fm(t, freq, 1.0, 0.6) * env * 0.38
	}
	return mix
}

// genJump: short upward sweep.
func genJump() []float64 {
	n := SampleRate * 140 / 1000
	mix := make([]float64, n)
	phase := 0.0
	for i := range mix {
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.3, 0.4, 0.4)
		freq := 260 + 520*p*p
		phase += 2 * math.Pi * freq / SampleRate
		mix[i] = math.Sin(phase+0.8*math.Sin(phase*2)) * env * 0.3
	}
	return mix
}

// genLand: sub thump under a puff of noise.
func genLand() []float64 {
	n := SampleRate * 120 / 1000
	mix := make([]float64, n)
	seed := uint64(time.Now().UnixNano())
	lp := 0.0
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 9)
		thump := math.Sin(2*math.Pi*(90-40*p)*t) * env * 0.5
		lp += (lcg(&seed) - lp) * 0.18
		mix[i] = thump + lp*env*0.25
	}
	return mix
}

// note is one voice of a staggered chord.
type note struct {
	freq, onset float64 // Hz, seconds
}

// voice shapes one note of a chord: FM body plus a quiet partial at
// partial*freq. droop bends the pitch down over the note.
type voice struct {
	attack, decay, sustain, release float64
	modRatio, modDepth              float64
	gain, partial, partialGain      float64
	droop                           float64
}

// chord mixes staggered notes into a buffer of dur seconds.
func chord(notes []note, dur float64, v voice) []float64 {
	n := int(dur * SampleRate)
	mix := make([]float64, n)
	for _, nt := range notes {
		start := int(nt.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, v.attack, v.decay, v.sustain, v.release)
			freq := nt.freq * (1 - np*v.droop)
			mix[i] += fm(t, freq, v.modRatio, v.modDepth*env) * env * v.gain
			mix[i] += math.Sin(2*math.Pi*freq*v.partial*t) * env * v.partialGain
		}
	}
	return mix
}

// genPerfect: bright two-note chime over a soft thump, a semitone higher
// per streak step.
func genPerfect(streak int) []float64 {
	if streak < 1 {
		streak = 1
	}
	if streak > 12 {
		streak = 12
	}
	root := 660 * math.Pow(2, float64(streak-1)/12)
	mix := chord([]note{{root, 0}, {root * 1.5, 0.07}}, 0.36, voice{
		attack: 0.003, decay: 0.65, sustain: 0.04, release: 0.28,
		modRatio: 3.5, modDepth: 4.0, gain: 0.26,
		partial: 2, partialGain: 0.06,
	})
	for i := range mix {
		t := float64(i) / SampleRate
		mix[i] += math.Sin(2*math.Pi*80*t) * math.Exp(-t*40) * 0.3
	}
	return mix
}

// genGameOver: slow descending minor chord, staggered.
func genGameOver() []float64 {
	return chord([]note{
		{329.63, 0.00}, // E4
		{261.63, 0.14}, // C4
		{220.00, 0.28}, // A3
	}, 0.75, voice{
		attack: 0.008, decay: 0.25, sustain: 0.3, release: 0.45,
		modRatio: 2.0, modDepth: 2.0, gain: 0.32,
		partial: 0.5, partialGain: 0.1,
		droop: 0.025,
	})
}
