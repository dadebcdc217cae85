package breakout

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Phase is the lifecycle position of a session.
type Phase int

const (
	PhaseIdle     Phase = iota // Waiting for Start
	PhasePlaying               // Ball in free flight
	PhaseSettling              // Last brick gone, ball coasting until the win is shown
	PhaseWon                   // Terminal
	PhaseLost                  // Terminal
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseSettling:
		return "settling"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// timer is a deferred presentation event. It only fires for the generation
// that scheduled it.
type timer struct {
	at    time.Time
	gen   uint64
	event Event
}

// Session is the simulation driver for one game: it owns the mounted
// elements, the brick set, the store and the deferred events, and runs the
// engine once per tick. It is not safe for concurrent use.
type Session struct {
	cfg        config.BreakoutConfig
	logger     *log.Logger
	controller PaddleController

	arena  *core.Element
	paddle *core.Element
	ball   *core.Element
	bricks *BrickSet
	store  *Store

	velocity   core.Vector2
	phase      Phase
	ticks      uint64
	generation uint64
	pending    []timer

	nextDecay time.Time
	resting   bool
}

// NewSession creates an idle session. A nil logger discards output.
func NewSession(cfg config.BreakoutConfig, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("breakout: %w", err)
	}
	if rows, cols := GridSize(cfg); rows == 0 || cols == 0 {
		return nil, fmt.Errorf("breakout: arena %vx%v has no room for a brick grid", cfg.Arena.Width, cfg.Arena.Height)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		cfg:        cfg,
		logger:     logger,
		controller: NewPaddleController(cfg.Arena.Width, cfg.Paddle.Step),
		store:      NewStore(),
	}
	s.mount()
	return s, nil
}

// mount places every element in its initial position and lays out a fresh grid.
func (s *Session) mount() {
	w, h := s.cfg.Arena.Width, s.cfg.Arena.Height
	s.arena = &core.Element{Width: w, Height: h}

	pw, ph := s.cfg.Paddle.Width, s.cfg.Paddle.Height
	s.paddle = &core.Element{
		Left:   (w - pw) / 2,
		Top:    h - s.cfg.Paddle.BottomPadding,
		Width:  pw,
		Height: ph,
	}

	d := s.cfg.Ball.Diameter
	s.ball = &core.Element{
		Left:   (w - d) / 2,
		Top:    s.paddle.Top - d,
		Width:  d,
		Height: d,
	}

	s.bricks = NewBrickSet(s.cfg, s.arena)
	s.velocity = core.Vector2{}
	s.ticks = 0
	s.resting = false
}

// cancelPending drops every deferred event of the current generation.
func (s *Session) cancelPending() {
	s.generation++
	s.pending = s.pending[:0]
}

// Start begins a new round with a fresh layout.
func (s *Session) Start() {
	s.cancelPending()
	s.mount()
	s.velocity = core.Vector2{X: s.cfg.Ball.VelocityX, Y: s.cfg.Ball.VelocityY}
	s.store.Start()
	s.phase = PhasePlaying
	s.logger.Info("round started", "bricks", s.bricks.Len())
}

// Reset abandons the round and returns to the initial idle state.
func (s *Session) Reset() {
	s.cancelPending()
	s.mount()
	s.store.Reset()
	s.phase = PhaseIdle
	s.logger.Debug("session reset")
}

// Active reports whether the round is in play. Paddle input is ignored otherwise.
func (s *Session) Active() bool {
	return s.phase == PhasePlaying
}

// Nudge moves the paddle one key step.
func (s *Session) Nudge(a core.Action) {
	if !s.Active() {
		return
	}
	s.controller.Nudge(s.paddle, a)
}

// Point centers the paddle under an arena x coordinate.
func (s *Session) Point(x float64) {
	if !s.Active() {
		return
	}
	s.controller.Point(s.paddle, x)
}

// Frame collects the engine input from the mounted elements.
func (s *Session) Frame() Frame {
	return Frame{
		Ball:     core.BallBox(s.ball),
		Velocity: s.velocity,
		Paddle:   core.PaddleBox(s.paddle),
		Arena:    core.ArenaBox(s.arena),
		Field:    s.bricks.Field(),
		Bricks:   s.bricks.Bricks(),
		Live:     s.bricks.Live(),
		Thresholds: Thresholds{
			PaddleProximity: s.cfg.Engine.PaddleProximity,
			BrickProximity:  s.cfg.Engine.BrickProximity,
		},
	}
}

// Tick advances the session to now. It returns the events that became
// observable during the tick: destroyed bricks and a lost round at once,
// hidden bricks and a won round once their delay has passed.
func (s *Session) Tick(now time.Time) []Event {
	events := s.fire(now)

	switch s.phase {
	case PhasePlaying:
		events = append(events, s.play(now)...)
	case PhaseSettling:
		s.settle(now)
	}
	return events
}

func (s *Session) play(now time.Time) []Event {
	res := Step(s.Frame())
	if res.Outcome == OutcomeSkipped {
		return nil
	}
	s.ticks++
	s.velocity = res.Velocity

	if res.Outcome == OutcomeLost {
		s.store.End(false)
		s.phase = PhaseLost
		s.logger.Info("round lost", "score", s.store.State().Score, "tick", s.ticks)
		return res.Events
	}

	Apply(res, s.bricks, s.store)
	s.moveBall(res.Ball)

	var out []Event
	for _, e := range res.Events {
		switch e.Kind {
		case EventBrickDestroyed:
			s.logger.Debug("brick destroyed", "id", e.BrickID, "points", e.Points, "live", s.bricks.Live())
			s.schedule(now.Add(s.cfg.Timing.BrickHide), Event{Kind: EventBrickHidden, BrickID: e.BrickID})
			out = append(out, e)
		case EventRoundWon:
			s.phase = PhaseSettling
			s.nextDecay = now.Add(s.cfg.Timing.SlowdownPeriod)
			s.schedule(now.Add(s.cfg.Timing.WinDelay), e)
		}
	}
	return out
}

// settle coasts the ball while it slows down.
func (s *Session) settle(now time.Time) {
	if !s.resting && !now.Before(s.nextDecay) {
		s.velocity, s.resting = Decay(s.velocity, s.cfg.Engine.SlowdownFactor, s.cfg.Engine.RestEpsilon)
		s.nextDecay = now.Add(s.cfg.Timing.SlowdownPeriod)
	}

	res := Coast(core.BallBox(s.ball), s.velocity, core.ArenaBox(s.arena))
	if res.Outcome == OutcomeSkipped {
		return
	}
	s.ticks++
	s.velocity = res.Velocity
	s.moveBall(res.Ball)
}

func (s *Session) moveBall(box core.BoundingBox) {
	s.ball.Left = box.Left
	s.ball.Top = box.Top
}

func (s *Session) schedule(at time.Time, e Event) {
	s.pending = append(s.pending, timer{at: at, gen: s.generation, event: e})
}

// fire delivers the deferred events that are due, in scheduling order.
func (s *Session) fire(now time.Time) []Event {
	if len(s.pending) == 0 {
		return nil
	}

	var out []Event
	kept := s.pending[:0]
	for _, t := range s.pending {
		switch {
		case t.gen != s.generation:
			// Scheduled by an earlier round
		case now.Before(t.at):
			kept = append(kept, t)
		default:
			if s.deliver(t.event) {
				out = append(out, t.event)
			}
		}
	}
	s.pending = kept
	return out
}

func (s *Session) deliver(e Event) bool {
	switch e.Kind {
	case EventBrickHidden:
		return s.bricks.Hide(e.BrickID)
	case EventRoundWon:
		if s.phase != PhaseSettling {
			return false
		}
		s.store.End(true)
		s.phase = PhaseWon
		s.logger.Info("round won", "score", s.store.State().Score, "tick", s.ticks)
		return true
	}
	return false
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// State returns the store's current state.
func (s *Session) State() GameState {
	return s.store.State()
}

// Store returns the session's game state store.
func (s *Session) Store() *Store {
	return s.store
}

// Bricks returns the session's brick set.
func (s *Session) Bricks() *BrickSet {
	return s.bricks
}

// Ball returns the ball box.
func (s *Session) Ball() core.BoundingBox {
	return core.BallBox(s.ball)
}

// Paddle returns the paddle box.
func (s *Session) Paddle() core.BoundingBox {
	return core.PaddleBox(s.paddle)
}

// Arena returns the arena box.
func (s *Session) Arena() core.BoundingBox {
	return core.ArenaBox(s.arena)
}

// Velocity returns the ball velocity.
func (s *Session) Velocity() core.Vector2 {
	return s.velocity
}

// Ticks returns the number of simulated ticks since the round started.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Pending returns the number of deferred events still waiting.
func (s *Session) Pending() int {
	return len(s.pending)
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.BreakoutConfig {
	return s.cfg
}
