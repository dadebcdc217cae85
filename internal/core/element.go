package core

// Element is a positioned rectangle as reported by the display layer.
// Left and Top are in the element's own coordinate space: the arena element
// reports viewport coordinates, paddle and ball report arena-relative style
// offsets, bricks report viewport coordinates like the arena.
// A nil *Element means the element is not mounted.
type Element struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Box returns the element as a box in its own coordinate space.
func (e *Element) Box() BoundingBox {
	if e == nil {
		return BoundingBox{}
	}
	return NewBox(e.Left, e.Top, e.Width, e.Height)
}

// ArenaBox returns the arena in arena-relative coordinates: the origin is its
// top-left corner, so the right and bottom edges equal its width and height.
func ArenaBox(arena *Element) BoundingBox {
	if arena == nil {
		return BoundingBox{}
	}
	return NewBox(0, 0, arena.Width, arena.Height)
}

// PaddleBox returns the paddle box. The paddle is positioned relative to the
// arena already.
func PaddleBox(paddle *Element) BoundingBox {
	return paddle.Box()
}

// BallBox returns the ball box. The ball is square; its height follows its width.
func BallBox(ball *Element) BoundingBox {
	if ball == nil {
		return BoundingBox{}
	}
	return NewBox(ball.Left, ball.Top, ball.Width, ball.Width)
}

// BrickBox converts a brick reported in viewport coordinates into
// arena-relative coordinates by subtracting the arena's viewport offset.
func BrickBox(brick, arena *Element) BoundingBox {
	if brick == nil || arena == nil {
		return BoundingBox{}
	}
	return NewBox(brick.Left-arena.Left, brick.Top-arena.Top, brick.Width, brick.Height)
}
