package interpreter

import "fmt"

// Flag is a one-shot modifier: once armed it affects exactly the next move.
type Flag uint8

const (
	Idle Flag = iota
	Armed
)

// Arm sets the flag for the next move.
func (f *Flag) Arm() {
	*f = Armed
}

// Consume reports whether the flag was armed and returns it to idle.
func (f *Flag) Consume() bool {
	armed := *f == Armed
	*f = Idle
	return armed
}

func (f Flag) String() string {
	if f == Armed {
		return "armed"
	}
	return "idle"
}

// DrawingContext stores the cursor and pen state

type DrawingContext struct {
	X, Y  int
	Color int
	Scale int
	// Angle is tracked for A and T but no drawing command reads it.
	Angle float64

	PenUp        Flag
	ReturnOrigin Flag

	width, height int
}

// NewDrawingContext returns a context centered on a width x height canvas.
func NewDrawingContext(width, height int) *DrawingContext {
	c := &DrawingContext{width: width, height: height}
	c.Reset()
	return c
}

// Reset restores the start-up state.
func (c *DrawingContext) Reset() {
	c.X = c.width / 2
	c.Y = c.height / 2
	c.Color = 1
	c.Scale = 4
	c.Angle = 0
	c.PenUp = Idle
	c.ReturnOrigin = Idle
}

func (c *DrawingContext) Position() (int, int) {
	return c.X, c.Y
}

// Unscaled returns the cursor divided by the current scale. A zero scale
// yields (0,0); every target is multiplied by the scale again anyway.
func (c *DrawingContext) Unscaled() (int, int) {
	if c.Scale == 0 {
		return 0, 0
	}
	return c.X / c.Scale, c.Y / c.Scale
}

func (c *DrawingContext) String() string {
	return fmt.Sprintf("(%d,%d) color=%d scale=%d angle=%g penUp=%s returnOrigin=%s",
		c.X, c.Y, c.Color, c.Scale, c.Angle, c.PenUp, c.ReturnOrigin)
}
