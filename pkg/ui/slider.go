package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider is a horizontal value picker. When Step is set the value snaps to multiples of it.
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	Step     float64
	X, Y     float64
	W, H     float64
}

// NewSlider creates a new slider instance
func NewSlider(x, y, width float64, label string, min, max, value float64) *Slider {
	return &Slider{
		Label: label,
		Value: value,
		Min:   min,
		Max:   max,
		X:     x,
		Y:     y,
		W:     width,
		H:     12,
	}
}

// Int returns the value rounded to the nearest integer.
func (s *Slider) Int() int {
	return int(math.Round(s.Value))
}

// Update checks for mouse interaction
func (s *Slider) Update() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if float64(mx) < s.X || float64(mx) > s.X+s.W || float64(my) < s.Y || float64(my) > s.Y+s.H {
		return
	}
	v := s.Min + (float64(mx)-s.X)/s.W*(s.Max-s.Min)
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
	}
	s.Value = math.Max(s.Min, math.Min(s.Max, v))
}

// Draw renders the slider
func (s *Slider) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), color.RGBA{R: 80, G: 80, B: 80, A: 255}, true)

	ratio := (s.Value - s.Min) / (s.Max - s.Min)
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*ratio), float32(s.H), color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
}
