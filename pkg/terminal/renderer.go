package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lao-tseu-is-alive/go-accretion-simulation/pb"
	"github.com/lao-tseu-is-alive/go-accretion-simulation/pkg/accretion"
)

const (
	starRune     = '@'
	particleRune = '.'
	clumpRune    = 'o'
	planetRune   = 'O'
	helpLine     = "space pause  p/o pause/resume  r reset  i inject  +/- speed  esc quit"
)

// Renderer draws snapshots on a character grid. Terminal cells are about twice
// as tall as wide, so one row covers two columns worth of world distance.
type Renderer struct {
	screen      tcell.Screen
	worldRadius float64
	hudStyle    tcell.Style
	helpStyle   tcell.Style
}

// NewRenderer fits a disk of worldRadius around the star into the screen.
func NewRenderer(screen tcell.Screen, worldRadius float64) *Renderer {
	return &Renderer{
		screen:      screen,
		worldRadius: worldRadius,
		hudStyle:    tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
		helpStyle:   tcell.StyleDefault.Foreground(tcell.ColorGray),
	}
}

// WorldRadius is the radius a renderer needs to show every ring of cfg.
func WorldRadius(cfg *accretion.Config) float64 {
	r := 0.0
	for _, ring := range cfg.Rings {
		r = max(r, ring.MaxDistance)
	}
	return r * 1.1
}

// cell maps world coordinates to a screen cell; ok is false off screen.
func (r *Renderer) cell(x, y float64) (col, row int, ok bool) {
	w, h := r.screen.Size()
	// two rows are kept for the HUD and help lines
	usable := h - 2
	if w <= 0 || usable <= 0 {
		return 0, 0, false
	}
	scale := r.worldRadius / float64(max(min(w/2, usable), 1))
	col = w/2 + int(x/scale)
	row = 1 + usable/2 - int(y/(2*scale))
	return col, row, col >= 0 && col < w && row >= 1 && row <= usable
}

// Draw renders one frame: star, bodies farthest first, HUD, help.
func (r *Renderer) Draw(snap *pb.WorldSnapshot) {
	r.screen.Clear()

	if star := snap.GetStar(); star != nil {
		r.drawBody(star, starRune)
	}
	for _, b := range accretion.PaintOrder(snap) {
		ch := particleRune
		switch {
		case b.GetKind() == pb.BodyKind_BODY_KIND_PLANET:
			ch = planetRune
		case b.GetRadius() >= 2:
			ch = clumpRune
		}
		r.drawBody(b, ch)
	}

	r.drawText(0, 0, HUD(snap), r.hudStyle)
	_, h := r.screen.Size()
	r.drawText(0, h-1, helpLine, r.helpStyle)
	r.screen.Show()
}

func (r *Renderer) drawBody(b *pb.BodyState, ch rune) {
	col, row, ok := r.cell(b.GetPosition().GetX(), b.GetPosition().GetY())
	if !ok {
		return
	}
	c := accretion.UnpackColor(b.GetColor())
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	if ch == planetRune || ch == starRune {
		style = style.Bold(true)
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	w, _ := r.screen.Size()
	for _, ch := range s {
		if x >= w {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// HUD is the single status line shown above the disk.
func HUD(snap *pb.WorldSnapshot) string {
	s := snap.GetStats()
	state := "RUNNING"
	switch snap.GetState() {
	case pb.RunState_RUN_STATE_PAUSED:
		state = "PAUSED"
	case pb.RunState_RUN_STATE_STOPPED:
		state = "STOPPED"
	}
	return fmt.Sprintf("%s x%d | tick %d | particles %d | planets %d | mass %.1f | largest %.2f | merges %d",
		state, snap.GetTicksPerFrame(), snap.GetTick(),
		s.GetActiveCount(), s.GetPlanetCount(), s.GetTotalMass(), s.GetLargestMass(), s.GetMerges())
}
