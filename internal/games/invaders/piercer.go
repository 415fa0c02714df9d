package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

const piercerTravelTime = 150 * time.Millisecond

// Piercer is a slower projectile that keeps destroying every invader whose
// cell it enters until it reaches the top row.
type Piercer struct {
	X, Y      int
	Exploding bool
	timer     core.Timer
}

// NewPiercer creates a piercer at (x, y).
func NewPiercer(x, y int) Piercer {
	return Piercer{
		X:     x,
		Y:     y,
		timer: core.NewTimer(piercerTravelTime),
	}
}

// Update moves the piercer one row up each time its timer fires, exploding
// or not.
func (p *Piercer) Update(delta time.Duration) {
	p.timer.Update(delta)
	if p.timer.Ready() {
		if p.Y > 0 {
			p.Y--
		}
		p.timer.Reset()
	}
}

// Explode marks the piercer and swaps in the burn-out timer.
func (p *Piercer) Explode() {
	p.Exploding = true
	p.timer = core.NewTimer(explodeTime)
}

// Dead reports whether the piercer's timer is ready or it reached row 0.
func (p *Piercer) Dead() bool {
	return p.timer.Ready() || p.Y == 0
}

// Draw paints the piercer, or its explosion.
func (p *Piercer) Draw(f *core.Frame) {
	if p.Exploding {
		f.Set(p.X, p.Y, '*', core.ColorBrightRed)
		return
	}
	f.Set(p.X, p.Y, 'O', core.ColorCyan)
}
