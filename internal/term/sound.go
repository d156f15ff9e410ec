package term

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sounds plays short sine blips through the speaker. The zero value is
// silent until Init succeeds.
type Sounds struct {
	mu     sync.Mutex
	ready  bool
	mixer  *beep.Mixer
	volume float64
}

// Init opens the speaker. volume in [0, 1] scales every effect.
func (s *Sounds) Init(volume float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	s.mixer = &beep.Mixer{}
	s.volume = volume
	speaker.Play(s.mixer)
	s.ready = true
	return nil
}

func (s *Sounds) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return
	}
	s.mixer.Clear()
	speaker.Close()
	s.ready = false
}

func (s *Sounds) play(st beep.Streamer) {
	if st == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return
	}
	if s.volume < 1 {
		st = newVolume(st, s.volume)
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// newVolume scales s linearly; zero mutes.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a sine of freq lasting d.
func tone(freq float64, d time.Duration, vol float64) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil
	}
	return newVolume(beep.Take(sampleRate.N(d), sine), vol)
}

func (s *Sounds) Start() { s.play(tone(880, 60*time.Millisecond, 0.3)) }
func (s *Sounds) Jump()  { s.play(beep.Seq(tone(330, 40*time.Millisecond, 0.3), tone(495, 60*time.Millisecond, 0.3))) }

// Land chimes higher for precise landings as the reward grows.
func (s *Sounds) Land(precise bool, reward int) {
	if !precise {
		s.play(tone(110, 80*time.Millisecond, 0.5))
		return
	}
	step := math.Min(math.Log2(float64(reward)), 12)
	root := 660 * math.Pow(2, step/12)
	s.play(beep.Seq(tone(root, 60*time.Millisecond, 0.3), tone(root*1.5, 90*time.Millisecond, 0.3)))
}

func (s *Sounds) GameOver() {
	s.play(beep.Seq(
		tone(330, 120*time.Millisecond, 0.35),
		tone(262, 120*time.Millisecond, 0.35),
		tone(220, 240*time.Millisecond, 0.35),
	))
}
