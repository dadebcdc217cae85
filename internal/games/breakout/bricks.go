package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Brick is one destructible block, addressed by its stable index.
type Brick struct {
	ID        int
	Box       core.BoundingBox // Arena-relative
	Points    int
	Destroyed bool // Logically removed, excluded from collisions
	Hidden    bool // Visually removed, set after the hide delay
}

// BrickSet is the ordered brick grid of a session plus its live count.
type BrickSet struct {
	bricks []Brick
	field  core.BoundingBox
	rows   int
	cols   int
	live   int
}

// GridSize returns the number of brick rows and columns that fit the
// brick section of an arena.
func GridSize(cfg config.BreakoutConfig) (rows, cols int) {
	section := cfg.Arena.Height / cfg.Bricks.SectionRatio
	rows = int(math.Floor(section / (cfg.Bricks.Height + cfg.Bricks.Padding)))
	cols = int(math.Floor(cfg.Arena.Width / (cfg.Bricks.Width + cfg.Bricks.Padding)))
	return max(rows, 0), max(cols, 0)
}

// FieldBox returns the brick container: the top section of the arena.
func FieldBox(cfg config.BreakoutConfig) core.BoundingBox {
	return core.NewBox(0, 0, cfg.Arena.Width, cfg.Arena.Height/cfg.Bricks.SectionRatio)
}

// LayoutBricks places the grid as the display layer would: rows from the
// top of the arena, the row block centered horizontally, half the padding
// on every side of a brick. Positions are in viewport coordinates, offset
// by the arena's own position.
func LayoutBricks(cfg config.BreakoutConfig, arena *core.Element) []*core.Element {
	rows, cols := GridSize(cfg)
	if arena == nil || rows == 0 || cols == 0 {
		return nil
	}

	cellW := cfg.Bricks.Width + cfg.Bricks.Padding
	cellH := cfg.Bricks.Height + cfg.Bricks.Padding
	offsetX := (cfg.Arena.Width - float64(cols)*cellW) / 2
	half := cfg.Bricks.Padding / 2

	out := make([]*core.Element, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			out = append(out, &core.Element{
				Left:   arena.Left + offsetX + float64(col)*cellW + half,
				Top:    arena.Top + float64(row)*cellH + half,
				Width:  cfg.Bricks.Width,
				Height: cfg.Bricks.Height,
			})
		}
	}
	return out
}

// NewBrickSet lays out a fresh grid for a session.
func NewBrickSet(cfg config.BreakoutConfig, arena *core.Element) *BrickSet {
	rows, cols := GridSize(cfg)
	elems := LayoutBricks(cfg, arena)

	s := &BrickSet{
		bricks: make([]Brick, len(elems)),
		field:  FieldBox(cfg),
		rows:   rows,
		cols:   cols,
		live:   len(elems),
	}
	for i, el := range elems {
		s.bricks[i] = Brick{
			ID:     i,
			Box:    core.BrickBox(el, arena),
			Points: cfg.Bricks.Points,
		}
	}
	return s
}

// NewBrickSetFromBoxes builds a set from explicit boxes. Every brick is worth
// points. Used by tools and tests that need a hand-made grid.
func NewBrickSetFromBoxes(field core.BoundingBox, points int, boxes ...core.BoundingBox) *BrickSet {
	s := &BrickSet{
		bricks: make([]Brick, len(boxes)),
		field:  field,
		rows:   1,
		cols:   len(boxes),
		live:   len(boxes),
	}
	for i, b := range boxes {
		s.bricks[i] = Brick{ID: i, Box: b, Points: points}
	}
	return s
}

// Len returns the total number of bricks, destroyed or not.
func (s *BrickSet) Len() int {
	return len(s.bricks)
}

// Live returns the number of bricks not yet destroyed.
func (s *BrickSet) Live() int {
	return s.live
}

// Rows returns the number of grid rows.
func (s *BrickSet) Rows() int {
	return s.rows
}

// Cols returns the number of grid columns.
func (s *BrickSet) Cols() int {
	return s.cols
}

// Field returns the brick container box.
func (s *BrickSet) Field() core.BoundingBox {
	return s.field
}

// At returns a copy of the brick with the given ID.
func (s *BrickSet) At(id int) (Brick, bool) {
	if id < 0 || id >= len(s.bricks) {
		return Brick{}, false
	}
	return s.bricks[id], true
}

// Bricks returns the bricks in ID order. The slice must not be modified.
func (s *BrickSet) Bricks() []Brick {
	return s.bricks
}

// Destroy marks a brick destroyed. It returns false if the brick does not
// exist or was destroyed already, so each brick is counted exactly once.
func (s *BrickSet) Destroy(id int) bool {
	if id < 0 || id >= len(s.bricks) || s.bricks[id].Destroyed {
		return false
	}
	s.bricks[id].Destroyed = true
	s.live--
	return true
}

// Hide marks a destroyed brick as no longer drawn.
func (s *BrickSet) Hide(id int) bool {
	if id < 0 || id >= len(s.bricks) || !s.bricks[id].Destroyed || s.bricks[id].Hidden {
		return false
	}
	s.bricks[id].Hidden = true
	return true
}
