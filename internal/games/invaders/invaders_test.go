package invaders

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// newSwarm builds a swarm with a hand-placed army.
func newSwarm(base time.Duration, army ...Invader) *Invaders {
	return &Invaders{
		army:      army,
		initial:   len(army),
		baseMove:  base,
		moveTimer: core.NewTimer(base),
		direction: 1,
	}
}

func TestNewInvadersLayout(t *testing.T) {
	inv := NewInvaders(2000*time.Millisecond, core.NumCols-2, 9)

	if inv.Remaining() != 72 {
		t.Fatalf("Expected 72 invaders, got %d", inv.Remaining())
	}
	for _, a := range inv.Army() {
		if a.X < 2 || a.X >= core.NumCols-2 || a.Y < 1 || a.Y >= 9 {
			t.Errorf("Invader out of formation at (%d, %d)", a.X, a.Y)
		}
		if a.X%2 != 0 || a.Y%2 != 0 {
			t.Errorf("Invader on odd cell (%d, %d)", a.X, a.Y)
		}
	}
	if inv.MoveDuration() != 2000*time.Millisecond {
		t.Errorf("MoveDuration() = %v, expected 2s", inv.MoveDuration())
	}
	if inv.Direction() != 1 {
		t.Errorf("Swarm should start moving right, got %d", inv.Direction())
	}
}

func TestInvadersUpdateMovesSideways(t *testing.T) {
	inv := newSwarm(100*time.Millisecond, Invader{X: 5, Y: 2}, Invader{X: 7, Y: 2})

	if inv.Update(99 * time.Millisecond) {
		t.Fatal("Swarm should not step before the timer fires")
	}
	if !inv.Update(1 * time.Millisecond) {
		t.Fatal("Swarm should step when the timer fires")
	}

	army := inv.Army()
	if army[0].X != 6 || army[1].X != 8 {
		t.Errorf("Expected invaders at x=6,8, got %d,%d", army[0].X, army[1].X)
	}
	if army[0].Y != 2 || army[1].Y != 2 {
		t.Error("Sideways step should not change rows")
	}

	// Timer was reset by the step
	if inv.Update(50 * time.Millisecond) {
		t.Error("Timer should have been reset after the step")
	}
}

func TestInvadersBoundaryReversal(t *testing.T) {
	right := core.NumCols - 1
	inv := newSwarm(100*time.Millisecond, Invader{X: right, Y: 3}, Invader{X: right - 2, Y: 5})

	if !inv.Update(100 * time.Millisecond) {
		t.Fatal("Expected a swarm step")
	}
	if inv.Direction() != -1 {
		t.Errorf("Direction should flip to left, got %d", inv.Direction())
	}
	army := inv.Army()
	if army[0].X != right || army[1].X != right-2 {
		t.Errorf("Reversal should not move sideways, got x=%d,%d", army[0].X, army[1].X)
	}
	if army[0].Y != 4 || army[1].Y != 6 {
		t.Errorf("Every invader should drop one row, got y=%d,%d", army[0].Y, army[1].Y)
	}

	// Next step heads left
	inv.Update(inv.MoveDuration())
	if got := inv.Army()[0].X; got != right-1 {
		t.Errorf("Expected x=%d after moving left, got %d", right-1, got)
	}
}

func TestInvadersLeftBoundaryReversal(t *testing.T) {
	inv := newSwarm(100*time.Millisecond, Invader{X: 0, Y: 2})
	inv.direction = -1

	inv.Update(100 * time.Millisecond)
	if inv.Direction() != 1 {
		t.Errorf("Direction should flip to right, got %d", inv.Direction())
	}
	if a := inv.Army()[0]; a.X != 0 || a.Y != 3 {
		t.Errorf("Expected (0, 3) after reversal, got (%d, %d)", a.X, a.Y)
	}
}

func TestInvadersDropsOncePerContact(t *testing.T) {
	inv := NewInvaders(100*time.Millisecond, core.NumCols-2, 9)

	drops := 0
	lastY := inv.Army()[0].Y
	for i := 0; i < 8; i++ {
		inv.Update(inv.MoveDuration())
		y := inv.Army()[0].Y
		if y != lastY {
			if y != lastY+1 {
				t.Fatalf("Swarm dropped %d rows in one step", y-lastY)
			}
			drops++
		}
		lastY = y
	}

	// The rightmost column starts three steps from the edge and the
	// leftmost ends up five steps from the other edge.
	if drops != 1 {
		t.Errorf("Expected exactly 1 drop in 8 steps, got %d", drops)
	}
}

func TestMoveDurationAcceleration(t *testing.T) {
	base := 2000 * time.Millisecond
	inv := NewInvaders(base, 7, 7)
	if inv.Remaining() != 9 {
		t.Fatalf("Expected a 3x3 swarm, got %d invaders", inv.Remaining())
	}

	tests := []struct {
		remaining int
		expected  time.Duration
	}{
		{9, 2000 * time.Millisecond},
		{6, base * 6 / 9},
		{3, base * 3 / 9},
		{2, base * 2 / 9},
		{1, MinMoveDuration},
		{0, MinMoveDuration},
	}

	prev := time.Duration(1<<63 - 1)
	for _, tc := range tests {
		got := inv.MoveDurationFor(tc.remaining)
		if got != tc.expected {
			t.Errorf("MoveDurationFor(%d) = %v, expected %v", tc.remaining, got, tc.expected)
		}
		if got > prev {
			t.Errorf("Duration grew from %v to %v as the swarm shrank", prev, got)
		}
		prev = got
	}
}

func TestReversalAppliesAcceleration(t *testing.T) {
	base := 2000 * time.Millisecond
	inv := NewInvaders(base, 7, 7)

	// Kill all but the bottom-right invader at (6, 6)
	for _, a := range inv.Army() {
		if a.X == 6 && a.Y == 6 {
			continue
		}
		if !inv.KillInvaderAt(a.X, a.Y) {
			t.Fatalf("Failed to kill invader at (%d, %d)", a.X, a.Y)
		}
	}

	// March right until the swarm drops
	for inv.Army()[0].Y == 6 {
		if !inv.Update(inv.MoveDuration()) {
			t.Fatal("Expected a step on every full period")
		}
	}

	if inv.MoveDuration() != MinMoveDuration {
		t.Errorf("MoveDuration() = %v, expected floor %v", inv.MoveDuration(), MinMoveDuration)
	}
}

func TestKillInvaderAt(t *testing.T) {
	inv := newSwarm(time.Second, Invader{X: 4, Y: 2}, Invader{X: 6, Y: 2})

	if inv.KillInvaderAt(5, 2) {
		t.Error("Kill on an empty cell should report false")
	}
	if inv.KillInvaderAt(4, 3) {
		t.Error("Kill should require the exact row")
	}
	if !inv.KillInvaderAt(4, 2) {
		t.Fatal("Kill on an occupied cell should report true")
	}
	if inv.Remaining() != 1 {
		t.Errorf("Expected 1 invader left, got %d", inv.Remaining())
	}
	if inv.KillInvaderAt(4, 2) {
		t.Error("Killing the same cell twice should report false")
	}
	if inv.Remaining() != 1 {
		t.Error("Repeated kill should not remove anything")
	}
}

func TestAllKilledAndReachedBottom(t *testing.T) {
	inv := newSwarm(time.Second, Invader{X: 3, Y: core.NumRows - 2})

	if inv.AllKilled() {
		t.Error("Swarm with one invader is not all killed")
	}
	if inv.ReachedBottom() {
		t.Error("Invader above the player's row has not reached bottom")
	}

	inv.army[0].Y = core.NumRows - 1
	if !inv.ReachedBottom() {
		t.Error("Invader on the player's row has reached bottom")
	}

	inv.KillInvaderAt(3, core.NumRows-1)
	if !inv.AllKilled() {
		t.Error("Empty swarm should be all killed")
	}
	if inv.ReachedBottom() {
		t.Error("Empty swarm cannot reach bottom")
	}
}

func TestInvadersDrawAnimates(t *testing.T) {
	inv := newSwarm(100*time.Millisecond, Invader{X: 2, Y: 2})

	f := core.NewFrame()
	inv.Draw(&f)
	if f.Get(2, 2).Glyph != 'x' {
		t.Errorf("Expected 'x' early in the period, got %q", f.Get(2, 2).Glyph)
	}

	inv.Update(60 * time.Millisecond)
	f = core.NewFrame()
	inv.Draw(&f)
	if f.Get(2, 2).Glyph != '+' {
		t.Errorf("Expected '+' late in the period, got %q", f.Get(2, 2).Glyph)
	}
}
