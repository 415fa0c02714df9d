// Package engine runs the game loop: a Playing / Menu / Exit state machine
// that feeds input into the simulation, draws each tick into a fresh frame
// and hands it to the renderer.
package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// Swarm layout for every round.
const (
	BaseMoveDuration = 2000 * time.Millisecond
	SwarmWidth       = core.NumCols - 2
	SwarmHeight      = 9
)

// Input supplies player actions.
type Input interface {
	// Poll returns the next pending action without waiting.
	Poll() (core.Action, bool)
	// Read blocks until an action is available.
	Read(ctx context.Context) (core.Action, error)
	// Err reports a failure of the underlying source. Poll alone cannot
	// tell a failed source from an idle one.
	Err() error
}

// FrameSink receives finished frames. Submit must not block.
type FrameSink interface {
	Submit(f core.Frame)
}

// Options tune the loop. The zero value is usable.
type Options struct {
	Sleep  time.Duration          // courtesy sleep after each tick
	Clock  func() time.Time       // time source, defaults to time.Now
	Logger *log.Logger            // defaults to discarding
	Hints  []string               // menu key hints, one per line
	Rounds func(stats RoundStats) // called when a round ends
}

var defaultHints = []string{"enter  play again", "q  quit"}

// Game is the game loop state machine.
type Game struct {
	input  Input
	sound  audio.Sink
	frames FrameSink
	opts   Options
	logger *log.Logger

	state    State
	player   *invaders.Player
	swarm    *invaders.Invaders
	last     core.Frame
	lastTick time.Time
	round    RoundStats
}

// New creates a game in the Playing state.
func New(in Input, sound audio.Sink, frames FrameSink, opts Options) *Game {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if len(opts.Hints) == 0 {
		opts.Hints = defaultHints
	}
	if sound == nil {
		sound = audio.Silent{}
	}

	g := &Game{
		input:  in,
		sound:  sound,
		frames: frames,
		opts:   opts,
		logger: opts.Logger,
	}
	g.newRound()
	return g
}

// State returns the current state.
func (g *Game) State() State { return g.state }

// Round returns the statistics of the current or last round.
func (g *Game) Round() RoundStats { return g.round }

// Run drives the state machine until the player quits, the input fails or
// ctx is cancelled. Frames are only submitted; closing the renderer is up
// to the caller.
func (g *Game) Run(ctx context.Context) error {
	g.sound.Play(audio.SoundStartup)
	g.lastTick = g.opts.Clock()

	for {
		if err := ctx.Err(); err != nil {
			g.state = StateExit
			return err
		}

		switch g.state {
		case StatePlaying:
			now := g.opts.Clock()
			delta := now.Sub(g.lastTick)
			g.lastTick = now

			outcome, err := g.Tick(delta)
			if err != nil {
				return err
			}
			if outcome != OutcomeNone {
				g.endRound(outcome)
			}
			if g.opts.Sleep > 0 {
				time.Sleep(g.opts.Sleep)
			}

		case StateMenu:
			if err := g.menu(ctx); err != nil {
				g.state = StateExit
				return err
			}

		case StateExit:
			return nil
		}
	}
}

// Tick runs one Playing step with the given elapsed time and reports
// whether the round ended. A failed input source ends the game with an
// error and moves it to StateExit.
func (g *Game) Tick(delta time.Duration) (Outcome, error) {
	g.round.Ticks++
	g.round.Elapsed += delta

	for {
		action, ok := g.input.Poll()
		if !ok {
			break
		}
		if action == core.ActionQuit {
			return OutcomeQuit, nil
		}
		g.apply(action)
	}
	if err := g.input.Err(); err != nil {
		g.state = StateExit
		return OutcomeNone, fmt.Errorf("input: %w", err)
	}

	g.player.Update(delta)
	if g.swarm.Update(delta) {
		g.sound.Play(audio.SoundMove)
	}
	if g.player.DetectHits(g.swarm) {
		g.sound.Play(audio.SoundExplode)
	}
	if g.player.DetectPierce(g.swarm) {
		g.sound.Play(audio.SoundExplode)
	}
	g.round.Kills = g.round.Total - g.swarm.Remaining()

	frame := core.NewFrame()
	for _, d := range []core.Drawable{g.player, g.swarm} {
		d.Draw(&frame)
	}
	g.last = frame
	g.frames.Submit(frame)

	switch {
	case g.swarm.AllKilled():
		return OutcomeWin, nil
	case g.swarm.ReachedBottom():
		return OutcomeLose, nil
	}
	return OutcomeNone, nil
}

func (g *Game) apply(action core.Action) {
	switch action {
	case core.ActionLeft:
		g.player.MoveLeft()
	case core.ActionRight:
		g.player.MoveRight()
	case core.ActionShoot, core.ActionConfirm:
		if g.player.Shoot() {
			g.sound.Play(audio.SoundPew)
		}
	case core.ActionPierce:
		if g.player.Pierce() {
			g.sound.Play(audio.SoundPew)
		}
	}
}

func (g *Game) endRound(outcome Outcome) {
	g.round.Outcome = outcome

	switch outcome {
	case OutcomeWin:
		g.sound.Play(audio.SoundWin)
		g.state = StateMenu
	case OutcomeLose:
		g.sound.Play(audio.SoundLose)
		g.state = StateMenu
	case OutcomeQuit:
		g.sound.Play(audio.SoundLose)
		g.state = StateExit
	}

	g.logger.Info("round over",
		"round", g.round.Round,
		"outcome", outcome,
		"kills", fmt.Sprintf("%d/%d", g.round.Kills, g.round.Total),
		"ticks", g.round.Ticks,
		"elapsed", g.round.Elapsed.Round(time.Millisecond),
	)
	if g.opts.Rounds != nil {
		g.opts.Rounds(g.round)
	}
}

// menu shows the result banner and waits for confirm or quit.
func (g *Game) menu(ctx context.Context) error {
	g.frames.Submit(g.banner())

	for {
		action, err := g.input.Read(ctx)
		if err != nil {
			return fmt.Errorf("menu input: %w", err)
		}
		switch action {
		case core.ActionConfirm, core.ActionShoot:
			g.sound.Play(audio.SoundStartup)
			g.newRound()
			g.lastTick = g.opts.Clock()
			return nil
		case core.ActionQuit:
			g.state = StateExit
			return nil
		}
	}
}

// banner draws the round result over the last playfield.
func (g *Game) banner() core.Frame {
	frame := g.last

	title, color := " GAME OVER ", core.ColorBrightRed
	if g.round.Outcome == OutcomeWin {
		title, color = " YOU WIN ", core.ColorBrightYellow
	}

	y := core.NumRows/2 - 3
	frame.DrawTextCentered(y, title, color)
	frame.DrawTextCentered(y+2, fmt.Sprintf(" kills %d/%d ", g.round.Kills, g.round.Total), core.ColorWhite)
	for i, hint := range g.opts.Hints {
		frame.DrawTextCentered(y+4+i, " "+hint+" ", core.ColorGray)
	}
	return frame
}

func (g *Game) newRound() {
	g.player = invaders.NewPlayer()
	g.swarm = invaders.NewInvaders(BaseMoveDuration, SwarmWidth, SwarmHeight)
	g.state = StatePlaying
	g.round = RoundStats{
		Round: g.round.Round + 1,
		Total: g.swarm.Remaining(),
	}
	g.logger.Debug("round started", "round", g.round.Round, "invaders", g.round.Total)
}
