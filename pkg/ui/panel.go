package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	titleHeight   = 30.0
	sectionHeight = 25.0
	labelHeight   = 15.0
)

// Widget is implemented by everything a Panel lays out.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
	Height() float64
	moveTo(y float64)
}

type sliderWidget struct{ *Slider }

func (s sliderWidget) Height() float64  { return s.H + labelHeight + 10 }
func (s sliderWidget) moveTo(y float64) { s.Y = y + labelHeight }

type checkboxWidget struct{ *Checkbox }

func (c checkboxWidget) Height() float64  { return c.Size + labelHeight + 5 }
func (c checkboxWidget) moveTo(y float64) { c.Y = y + labelHeight }

type buttonWidget struct{ *Button }

func (b buttonWidget) Height() float64  { return b.Button.Height + 8 }
func (b buttonWidget) moveTo(y float64) { b.Y = y }

// section groups the widgets [start, end) under a header.
type section struct {
	title      string
	start, end int
}

// Panel lays widgets out vertically in sections and scrolls with the mouse wheel.
type Panel struct {
	Title         string
	X, Y          float64
	Width, Height float64
	Visible       bool
	ScrollOffset  float64

	BGColor     color.RGBA
	BorderColor color.RGBA

	widgets  []Widget
	labels   []string
	sections []section
}

// NewPanel creates an empty, visible panel.
func NewPanel(title string, x, y, width, height float64) *Panel {
	return &Panel{
		Title:       title,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Visible:     true,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection opens a new section; widgets added afterwards belong to it.
func (p *Panel) AddSection(title string) {
	p.EndSection()
	p.sections = append(p.sections, section{title: title, start: len(p.widgets), end: -1})
}

// EndSection closes the current section.
func (p *Panel) EndSection() {
	if n := len(p.sections); n > 0 && p.sections[n-1].end < 0 {
		p.sections[n-1].end = len(p.widgets)
	}
}

func (p *Panel) add(label string, w Widget) {
	p.widgets = append(p.widgets, w)
	p.labels = append(p.labels, label)
	p.layout()
}

// AddSlider adds a slider; step 0 keeps it continuous.
func (p *Panel) AddSlider(label string, min, max, value, step float64) *Slider {
	s := NewSlider(p.X+10, 0, p.Width-20, label, min, max, value)
	s.Step = step
	p.add(label, sliderWidget{s})
	return s
}

// AddCheckbox adds a checkbox widget to the panel
func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+10, 0, label, value)
	p.add(label, checkboxWidget{c})
	return c
}

// AddButton adds a full width button; buttons carry their own label.
func (p *Panel) AddButton(label string, onClick func()) *Button {
	b := NewButton(p.X+10, 0, p.Width-20, 22, label, onClick)
	p.add("", buttonWidget{b})
	return b
}

// layout positions every widget for the current scroll offset.
func (p *Panel) layout() {
	y := p.Y + titleHeight - p.ScrollOffset
	for i, w := range p.widgets {
		for _, s := range p.sections {
			if s.start == i {
				y += sectionHeight
			}
		}
		w.moveTo(y)
		y += w.Height()
	}
}

func (p *Panel) contentHeight() float64 {
	h := titleHeight + float64(len(p.sections))*sectionHeight
	for _, w := range p.widgets {
		h += w.Height()
	}
	return h
}

// Contains reports whether the screen point lies on the visible panel.
func (p *Panel) Contains(x, y int) bool {
	return p.Visible && float64(x) >= p.X && float64(x) <= p.X+p.Width &&
		float64(y) >= p.Y && float64(y) <= p.Y+p.Height
}

// Update handles scrolling and widget input
func (p *Panel) Update() {
	if !p.Visible {
		return
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		maxScroll := max(p.contentHeight()-p.Height+10, 0)
		p.ScrollOffset = min(max(p.ScrollOffset-dy*20, 0), maxScroll)
		p.layout()
	}
	for _, w := range p.widgets {
		w.Update()
	}
}

// Draw renders the panel, its section headers and the widgets that fit inside it
func (p *Panel) Draw(screen *ebiten.Image) {
	if !p.Visible {
		return
	}
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), p.BGColor, true)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), 2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	visible := func(y float64) bool { return y >= p.Y+titleHeight-5 && y <= p.Y+p.Height-20 }

	y := p.Y + titleHeight - p.ScrollOffset
	for i, w := range p.widgets {
		for _, s := range p.sections {
			if s.start != i {
				continue
			}
			if visible(y) {
				vector.FillRect(screen, float32(p.X+5), float32(y), float32(p.Width-10), 20,
					color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
				ebitenutil.DebugPrintAt(screen, s.title, int(p.X+10), int(y+2))
			}
			y += sectionHeight
		}
		if visible(y) {
			if p.labels[i] != "" {
				ebitenutil.DebugPrintAt(screen, p.labels[i], int(p.X+10), int(y-2))
			}
			w.Draw(screen)
		}
		y += w.Height()
	}
}
