package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

const (
	shotTravelTime = 50 * time.Millisecond
	explodeTime    = 250 * time.Millisecond
)

// Shot is a projectile that climbs one row per travel tick and stops at the
// first invader it hits.
type Shot struct {
	X, Y      int
	Exploding bool
	timer     core.Timer
}

// NewShot creates a shot at (x, y).
func NewShot(x, y int) Shot {
	return Shot{
		X:     x,
		Y:     y,
		timer: core.NewTimer(shotTravelTime),
	}
}

// Update advances the shot. An exploding shot stays in place while its burn
// timer runs out.
func (s *Shot) Update(delta time.Duration) {
	s.timer.Update(delta)
	if s.timer.Ready() && !s.Exploding {
		if s.Y > 0 {
			s.Y--
		}
		s.timer.Reset()
	}
}

// Explode marks the shot as hit and starts its burn-out timer.
func (s *Shot) Explode() {
	s.Exploding = true
	s.timer = core.NewTimer(explodeTime)
}

// Dead reports whether the shot finished exploding or left the top row.
func (s *Shot) Dead() bool {
	return (s.Exploding && s.timer.Ready()) || s.Y == 0
}

// Draw paints the shot, or its explosion.
func (s *Shot) Draw(f *core.Frame) {
	if s.Exploding {
		f.Set(s.X, s.Y, '*', core.ColorBrightRed)
		return
	}
	f.Set(s.X, s.Y, '|', core.ColorYellow)
}
