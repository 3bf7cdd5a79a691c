package audio

import (
	"math"
	"testing"
	"time"
)

func TestBellGenerator_Range(t *testing.T) {
	g := NewBellGenerator(sampleRate, 880, 12)
	buf := make([][2]float64, 512)

	for chunk := 0; chunk < 20; chunk++ {
		n, ok := g.Stream(buf)
		if n != len(buf) || !ok {
			t.Fatalf("Stream() = %d, %v; want %d, true", n, ok, len(buf))
		}
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 1 || buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d of chunk %d = %v out of range or not mono", i, chunk, buf[i])
			}
		}
	}
	if g.Err() != nil {
		t.Errorf("Err() = %v", g.Err())
	}
}

func TestBellGenerator_Decays(t *testing.T) {
	g := NewBellGenerator(sampleRate, 440, 12)
	peak := func(n int) float64 {
		buf := make([][2]float64, n)
		g.Stream(buf)
		p := 0.0
		for _, s := range buf {
			p = math.Max(p, math.Abs(s[0]))
		}
		return p
	}
	first := peak(sampleRate.N(50 * time.Millisecond))
	_ = peak(sampleRate.N(400 * time.Millisecond))
	late := peak(sampleRate.N(50 * time.Millisecond))
	if late >= first/10 {
		t.Errorf("bell did not decay: first peak %v, late peak %v", first, late)
	}
}

func TestPromotionStreamer_Finite(t *testing.T) {
	for _, n := range []int{1, 3, 99} {
		s := PromotionStreamer(n, 0.5)
		buf := make([][2]float64, 1024)
		total := 0
		for {
			got, ok := s.Stream(buf)
			for i := 0; i < got; i++ {
				if math.Abs(buf[i][0]) > 1 || math.Abs(buf[i][1]) > 1 {
					t.Fatalf("n=%d: sample out of range: %v", n, buf[i])
				}
			}
			total += got
			if !ok {
				break
			}
			if total > sampleRate.N(5*time.Second) {
				t.Fatalf("n=%d: streamer never ends", n)
			}
		}
		notes := min(n, len(arpeggio))
		want := notes*sampleRate.N(180*time.Millisecond) + sampleRate.N(60*time.Millisecond)
		if total != want {
			t.Errorf("n=%d: streamed %d samples; want %d", n, total, want)
		}
	}
}

// TestChimeGracefulDegradation verifies a chime without a speaker never panics
func TestChimeGracefulDegradation(t *testing.T) {
	c := NewChime(0.5)
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("chime panicked without initialization: %v", r)
		}
	}()
	c.PlayPromotion(2)
	c.Cleanup()
}
