package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Projectile limits.
const (
	MaxShots    = 3
	MaxPiercers = 1
)

// Player is the ship at the bottom row. It owns its projectiles; the swarm
// is only reached through the *Invaders passed to the detection methods.
type Player struct {
	x, y     int
	shots    []Shot
	piercers []Piercer
}

// NewPlayer places the ship at the bottom center of the grid.
func NewPlayer() *Player {
	return &Player{
		x: core.NumCols / 2,
		y: core.NumRows - 1,
	}
}

// Position returns the ship's cell.
func (p *Player) Position() core.Point {
	return core.Point{X: p.x, Y: p.y}
}

// MoveLeft moves the ship one column left, stopping at the edge.
func (p *Player) MoveLeft() {
	p.x = core.Clamp(p.x-1, 0, core.NumCols-1)
}

// MoveRight moves the ship one column right, stopping at the edge.
func (p *Player) MoveRight() {
	p.x = core.Clamp(p.x+1, 0, core.NumCols-1)
}

// Shoot fires a shot from the row above the ship.
// Returns false when MaxShots are already in flight.
func (p *Player) Shoot() bool {
	if len(p.shots) >= MaxShots {
		return false
	}
	p.shots = append(p.shots, NewShot(p.x, p.y-1))
	return true
}

// Pierce fires a piercer from the row above the ship.
// Returns false while another piercer is active.
func (p *Player) Pierce() bool {
	if len(p.piercers) >= MaxPiercers {
		return false
	}
	p.piercers = append(p.piercers, NewPiercer(p.x, p.y-1))
	return true
}

// Update advances all projectiles and drops the dead ones.
func (p *Player) Update(delta time.Duration) {
	for i := range p.shots {
		p.shots[i].Update(delta)
	}
	live := p.shots[:0]
	for _, s := range p.shots {
		if !s.Dead() {
			live = append(live, s)
		}
	}
	p.shots = live

	for i := range p.piercers {
		p.piercers[i].Update(delta)
	}
	livePiercers := p.piercers[:0]
	for _, pc := range p.piercers {
		if !pc.Dead() {
			livePiercers = append(livePiercers, pc)
		}
	}
	p.piercers = livePiercers
}

// DetectHits kills the invader under each flying shot and sets that shot
// exploding. Returns true if anything was hit.
func (p *Player) DetectHits(inv *Invaders) bool {
	hit := false
	for i := range p.shots {
		s := &p.shots[i]
		if s.Exploding {
			continue
		}
		if inv.KillInvaderAt(s.X, s.Y) {
			hit = true
			s.Explode()
		}
	}
	return hit
}

// DetectPierce kills the invader under each piercer. Piercers pass through
// their targets and are not exploded here, so one piercer can clear a whole
// column. Returns true if anything was killed.
func (p *Player) DetectPierce(inv *Invaders) bool {
	pierced := false
	for _, pc := range p.piercers {
		if inv.KillInvaderAt(pc.X, pc.Y) {
			pierced = true
		}
	}
	return pierced
}

// Shots returns the number of shots in flight.
func (p *Player) Shots() int {
	return len(p.shots)
}

// Piercers returns the number of active piercers.
func (p *Player) Piercers() int {
	return len(p.piercers)
}

// Draw paints the ship, then its projectiles.
func (p *Player) Draw(f *core.Frame) {
	f.Set(p.x, p.y, 'A', core.ColorBrightGreen)
	for i := range p.shots {
		p.shots[i].Draw(f)
	}
	for i := range p.piercers {
		p.piercers[i].Draw(f)
	}
}
