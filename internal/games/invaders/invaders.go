// Package invaders implements the single-wave simulation: the player's ship,
// its projectiles and the descending swarm.
package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// MinMoveDuration is the fastest the swarm ever steps.
const MinMoveDuration = 250 * time.Millisecond

// Invader is one member of the swarm. It moves only with the swarm.
type Invader struct {
	X, Y int
}

// Invaders is the swarm. All members share one movement timer whose period
// shrinks as the swarm is thinned out.
type Invaders struct {
	army      []Invader
	initial   int
	baseMove  time.Duration
	moveTimer core.Timer
	direction int
}

// NewInvaders fills every even cell with 1 < x < gridWidth and
// 0 < y < gridHeight, and starts stepping every baseMove.
func NewInvaders(baseMove time.Duration, gridWidth, gridHeight int) *Invaders {
	var army []Invader
	for x := 0; x < core.NumCols; x++ {
		for y := 0; y < core.NumRows; y++ {
			if x > 1 && x < gridWidth && y > 0 && y < gridHeight && x%2 == 0 && y%2 == 0 {
				army = append(army, Invader{X: x, Y: y})
			}
		}
	}
	return &Invaders{
		army:      army,
		initial:   len(army),
		baseMove:  baseMove,
		moveTimer: core.NewTimer(baseMove),
		direction: 1,
	}
}

// MoveDurationFor returns the step period for a swarm of the given size:
// the base period scaled by the surviving fraction, floored at
// MinMoveDuration (or at the base period if that is shorter).
func (inv *Invaders) MoveDurationFor(remaining int) time.Duration {
	if inv.initial == 0 {
		return inv.baseMove
	}
	d := inv.baseMove * time.Duration(remaining) / time.Duration(inv.initial)
	return max(d, min(MinMoveDuration, inv.baseMove))
}

// Update advances the swarm timer and, when it fires, steps every invader:
// sideways in the current direction, or one row down with the direction
// flipped when the leading invader sits on the grid edge. Dropping a row
// also speeds the swarm up according to how many remain.
// Returns true whenever a step happened.
func (inv *Invaders) Update(delta time.Duration) bool {
	inv.moveTimer.Update(delta)
	if !inv.moveTimer.Ready() {
		return false
	}
	inv.moveTimer.Reset()

	downwards := false
	if inv.direction < 0 {
		if inv.minX() == 0 {
			inv.direction = 1
			downwards = true
		}
	} else if inv.maxX() == core.NumCols-1 {
		inv.direction = -1
		downwards = true
	}

	if downwards {
		inv.moveTimer = core.NewTimer(inv.MoveDurationFor(len(inv.army)))
		for i := range inv.army {
			inv.army[i].Y++
		}
	} else {
		for i := range inv.army {
			inv.army[i].X += inv.direction
		}
	}
	return true
}

func (inv *Invaders) minX() int {
	if len(inv.army) == 0 {
		return 0
	}
	m := inv.army[0].X
	for _, a := range inv.army[1:] {
		m = min(m, a.X)
	}
	return m
}

func (inv *Invaders) maxX() int {
	m := 0
	for _, a := range inv.army {
		m = max(m, a.X)
	}
	return m
}

// KillInvaderAt removes the invader occupying exactly (x, y).
// Returns false, changing nothing, if the cell is empty.
func (inv *Invaders) KillInvaderAt(x, y int) bool {
	for i, a := range inv.army {
		if a.X == x && a.Y == y {
			inv.army = append(inv.army[:i], inv.army[i+1:]...)
			return true
		}
	}
	return false
}

// AllKilled reports whether the swarm is empty.
func (inv *Invaders) AllKilled() bool {
	return len(inv.army) == 0
}

// ReachedBottom reports whether any invader got down to the player's row.
func (inv *Invaders) ReachedBottom() bool {
	for _, a := range inv.army {
		if a.Y >= core.NumRows-1 {
			return true
		}
	}
	return false
}

// Remaining returns the number of surviving invaders.
func (inv *Invaders) Remaining() int {
	return len(inv.army)
}

// MoveDuration returns the current step period.
func (inv *Invaders) MoveDuration() time.Duration {
	return inv.moveTimer.Duration()
}

// Direction returns +1 when the swarm moves right, -1 when it moves left.
func (inv *Invaders) Direction() int {
	return inv.direction
}

// Army returns a copy of the surviving invaders.
func (inv *Invaders) Army() []Invader {
	out := make([]Invader, len(inv.army))
	copy(out, inv.army)
	return out
}

// Draw paints every invader, alternating the glyph between the two halves
// of a step period.
func (inv *Invaders) Draw(f *core.Frame) {
	glyph := '+'
	if d := inv.moveTimer.Duration(); d > 0 && inv.moveTimer.Remaining()*2 > d {
		glyph = 'x'
	}
	for _, a := range inv.army {
		f.Set(a.X, a.Y, glyph, core.ColorMagenta)
	}
}
