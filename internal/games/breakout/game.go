// Package breakout implements the breakout physics engine, the session
// driver around it and a terminal rendering of the arena.
package breakout

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar  = '='
	BallChar    = '●'
	BorderVert  = '│'
	BorderHoriz = '─'
	BorderTL    = '┌'
	BorderTR    = '┐'
	BorderBL    = '└'
	BorderBR    = '┘'
)

// Brick glyphs and colors by row (cycling through)
var (
	BrickGlyphs = []rune{'█', '▓', '█', '▓'}
	BrickColors = []core.Color{core.ColorRed, core.ColorOrange, core.ColorYellow, core.ColorMagenta}
)

// Glyph for a destroyed brick during its hide delay
const CrumbleGlyph = '░'

// GameMode represents the game mode.
type GameMode int

const (
	ModeClassic GameMode = iota // Player drives the paddle
	ModeDemo                    // Autopilot drives the paddle and restarts rounds
)

// demoRestart is how long a finished demo round stays on screen.
const demoRestart = 2 * time.Second

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives session logs; nil discards them
var logger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger handed to new sessions.
func SetLogger(l *log.Logger) {
	logger = l
}

// Game adapts a Session to the terminal frontend: it owns the simulated clock,
// maps input frames to session actions and renders into a screen buffer.
type Game struct {
	mode    GameMode
	session *Session
	runtime core.RuntimeConfig
	clock   time.Time
	overAt  time.Time
	loadErr error

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Breakout game the player controls.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewDemo creates a Breakout game driven by the autopilot.
func NewDemo() *Game {
	return &Game{mode: ModeDemo}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeDemo {
		return "breakout_demo"
	}
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeDemo {
		return "Breakout (Demo)"
	}
	return "Breakout"
}

// Reset initializes or restarts the game.
// A config that cannot be loaded falls back to the defaults; the error is
// kept for LoadError and shown on the idle screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.clock = time.Time{}
	g.overAt = time.Time{}

	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}
	g.loadErr = err

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}

	session, err := NewSession(cfg, logger)
	if err != nil {
		g.loadErr = err
		session, _ = NewSession(config.DefaultBreakoutConfig(), logger)
	}
	g.session = session

	if g.loadErr != nil && logger != nil {
		logger.Warn("using default config", "error", g.loadErr)
	}

	g.minScreenW = 30
	g.minScreenH = 12
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	if g.mode == ModeDemo {
		g.session.Start()
	}
}

// Resize updates the screen size without touching the round.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// LoadError returns the error hit while loading the configuration, if any.
func (g *Game) LoadError() error {
	return g.loadErr
}

// Session returns the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.clock = g.clock.Add(g.runtime.TickInterval())
	s := g.session

	switch s.Phase() {
	case PhaseIdle:
		if in.Has(core.ActionStart) || g.mode == ModeDemo {
			s.Start()
		}
	case PhaseWon, PhaseLost:
		if g.overAt.IsZero() {
			g.overAt = g.clock
		}
		switch {
		case in.Has(core.ActionReset):
			s.Reset()
			g.overAt = time.Time{}
		case in.Has(core.ActionStart), g.mode == ModeDemo && g.clock.Sub(g.overAt) >= demoRestart:
			s.Start()
			g.overAt = time.Time{}
		}
	}

	if g.mode == ModeDemo {
		s.Point(Autopilot(s))
	} else {
		if in.Has(core.ActionLeft) {
			s.Nudge(core.ActionLeft)
		}
		if in.Has(core.ActionRight) {
			s.Nudge(core.ActionRight)
		}
		if in.HasPointer {
			s.Point(g.columnToArenaX(in.PointerX))
		}
	}

	s.Tick(g.clock)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.session.State()
	return core.GameState{
		Score:    st.Score,
		GameOver: st.Over(),
		Won:      st.Won,
	}
}

// viewport is the cell rectangle the arena is drawn into, inside the border.
type viewport struct {
	x0, y0 int
	w, h   int
	sx, sy float64 // cells per arena pixel
}

func (g *Game) viewport() viewport {
	arena := g.session.Arena()
	v := viewport{
		x0: 1,
		y0: 2,
		w:  max(g.runtime.ScreenW-2, 1),
		h:  max(g.runtime.ScreenH-3, 1),
	}
	v.sx = float64(v.w) / arena.Width()
	v.sy = float64(v.h) / arena.Height()
	return v
}

func (v viewport) col(x float64) int {
	return v.x0 + core.Clamp(int(x*v.sx), 0, v.w-1)
}

func (v viewport) row(y float64) int {
	return v.y0 + core.Clamp(int(y*v.sy), 0, v.h-1)
}

// columnToArenaX converts a screen column to the arena x under its center.
func (g *Game) columnToArenaX(col float64) float64 {
	v := g.viewport()
	return (col - float64(v.x0) + 0.5) / v.sx
}

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBorder(dst)
	g.renderBricks(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderBanner(dst)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Screen too small!"
	need := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, msg, core.ColorRed)
	dst.DrawTextCentered(y+1, need, core.ColorDefault)
}

func (g *Game) renderHUD(dst *core.Screen) {
	st := g.session.State()
	bricks := g.session.Bricks()
	dst.DrawText(1, 0, fmt.Sprintf("SCORE: %d", st.Score), core.ColorYellow)
	dst.DrawTextCentered(0, g.Title(), core.ColorWhite)

	right := fmt.Sprintf("BRICKS: %d/%d", bricks.Live(), bricks.Len())
	dst.DrawText(dst.Width()-len(right)-1, 0, right, core.ColorDefault)
}

func (g *Game) renderBorder(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	top, bottom := 1, h-1

	dst.Set(0, top, BorderTL, core.ColorGray)
	dst.Set(w-1, top, BorderTR, core.ColorGray)
	dst.Set(0, bottom, BorderBL, core.ColorGray)
	dst.Set(w-1, bottom, BorderBR, core.ColorGray)
	dst.FillSpan(1, w-1, top, BorderHoriz, core.ColorGray)
	// The floor is where the ball is lost
	dst.FillSpan(1, w-1, bottom, BorderHoriz, core.ColorRed)
	for y := top + 1; y < bottom; y++ {
		dst.Set(0, y, BorderVert, core.ColorGray)
		dst.Set(w-1, y, BorderVert, core.ColorGray)
	}
}

func (g *Game) renderBricks(dst *core.Screen) {
	v := g.viewport()
	set := g.session.Bricks()
	cols := max(set.Cols(), 1)

	for _, b := range set.Bricks() {
		if b.Hidden {
			continue
		}
		row := b.ID / cols
		glyph := BrickGlyphs[row%len(BrickGlyphs)]
		color := BrickColors[row%len(BrickColors)]
		if b.Destroyed {
			glyph, color = CrumbleGlyph, core.ColorGray
		}

		x0, x1 := v.col(b.Box.Left), v.col(b.Box.Right)
		if x1 == x0 {
			x1 = x0 + 1
		}
		y0, y1 := v.row(b.Box.Top), v.row(b.Box.Bottom)
		if y1 == y0 {
			y1 = y0 + 1
		}
		for y := y0; y < y1; y++ {
			dst.FillSpan(x0, x1, y, glyph, color)
		}
	}
}

func (g *Game) renderPaddle(dst *core.Screen) {
	v := g.viewport()
	p := g.session.Paddle()
	x0, x1 := v.col(p.Left), v.col(p.Right)
	if x1 == x0 {
		x1 = x0 + 1
	}
	dst.FillSpan(x0, x1, v.row(p.Top), PaddleChar, core.ColorBlue)
}

func (g *Game) renderBall(dst *core.Screen) {
	v := g.viewport()
	b := g.session.Ball()
	dst.Set(v.col(b.CenterX()), v.row(b.Top+b.Height()/2), BallChar, core.ColorWhite)
}

func (g *Game) renderBanner(dst *core.Screen) {
	y := dst.Height() / 2
	st := g.session.State()

	switch g.session.Phase() {
	case PhaseIdle:
		dst.DrawTextCentered(y, "PRESS SPACE TO START", core.ColorYellow)
		if g.loadErr != nil {
			dst.DrawTextCentered(y+2, "CONFIG ERROR, USING DEFAULTS", core.ColorRed)
		}
	case PhaseWon:
		dst.DrawTextCentered(y, "YOU WIN!", core.ColorYellow)
		dst.DrawTextCentered(y+1, fmt.Sprintf("Score: %d", st.Score), core.ColorDefault)
		if g.mode == ModeClassic {
			dst.DrawTextCentered(y+2, "SPACE to play again, R to reset", core.ColorGray)
		}
	case PhaseLost:
		dst.DrawTextCentered(y, "GAME OVER", core.ColorRed)
		dst.DrawTextCentered(y+1, fmt.Sprintf("Score: %d", st.Score), core.ColorDefault)
		if g.mode == ModeClassic {
			dst.DrawTextCentered(y+2, "SPACE to play again, R to reset", core.ColorGray)
		}
	}
}
