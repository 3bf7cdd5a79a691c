package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	// notes of the promotion arpeggio (C5 E5 G5 C6)
	baseFreq = 523.25
)

var arpeggio = []float64{1, 1.25992, 1.49831, 2}

// Chime plays a short arpeggio every time a planet forms.
// Every method is a no-op until Initialize succeeds, so a missing audio device never
// stops the simulation.
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewChime creates a chime with volume in (0, 1].
func NewChime(volume float64) *Chime {
	return &Chime{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker.
func (c *Chime) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Cleanup silences everything still playing.
func (c *Chime) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// PlayPromotion plays one arpeggio note per new planet, capped at the arpeggio length.
func (c *Chime) PlayPromotion(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || n <= 0 {
		return
	}
	s := PromotionStreamer(n, c.volume)
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// PromotionStreamer builds the finite streamer PlayPromotion mixes in.
func PromotionStreamer(n int, volume float64) beep.Streamer {
	n = max(1, min(n, len(arpeggio)))
	notes := make([]beep.Streamer, 0, n+1)
	for i := 0; i < n; i++ {
		notes = append(notes, beep.Take(sampleRate.N(time.Millisecond*180), NewBellGenerator(sampleRate, baseFreq*arpeggio[i], 12)))
	}
	// soft octave tail under the last note
	if tail, err := generators.SineTone(sampleRate, baseFreq/2); err == nil {
		notes = append(notes, beep.Take(sampleRate.N(time.Millisecond*60), &effects.Volume{Streamer: tail, Base: 2, Volume: -4}))
	}
	return withVolume(beep.Seq(notes...), volume)
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(math.Min(vol, 1)), Silent: false}
}

// BellGenerator is an exponentially decaying sine with a quieter second harmonic.
type BellGenerator struct {
	sr    beep.SampleRate
	freq  float64
	decay float64 // per second
	pos   int
}

func NewBellGenerator(sr beep.SampleRate, freq, decay float64) *BellGenerator {
	return &BellGenerator{sr: sr, freq: freq, decay: decay}
}

func (g *BellGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-g.decay * t)
		v := env * (0.6*math.Sin(2*math.Pi*g.freq*t) + 0.2*math.Sin(4*math.Pi*g.freq*t))
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *BellGenerator) Err() error {
	return nil
}
