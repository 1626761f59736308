package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlag(t *testing.T) {
	var f Flag
	assert.False(t, f.Consume())

	f.Arm()
	assert.Equal(t, Armed, f)
	assert.True(t, f.Consume())
	assert.Equal(t, Idle, f)
	assert.False(t, f.Consume(), "a consumed flag stays idle")
}

func TestNewDrawingContext(t *testing.T) {
	c := NewDrawingContext(320, 200)
	x, y := c.Position()
	assert.Equal(t, 160, x)
	assert.Equal(t, 100, y)
	assert.Equal(t, 1, c.Color)
	assert.Equal(t, 4, c.Scale)
	assert.Zero(t, c.Angle)
	assert.Equal(t, Idle, c.PenUp)
	assert.Equal(t, Idle, c.ReturnOrigin)

	c.X, c.Color, c.Scale, c.Angle = 3, 2, 8, 90
	c.PenUp.Arm()
	c.Reset()
	assert.Equal(t, NewDrawingContext(320, 200), c)
}

func TestDrawingContext_Unscaled(t *testing.T) {
	c := NewDrawingContext(320, 200)
	c.Scale = 8
	ux, uy := c.Unscaled()
	assert.Equal(t, 20, ux)
	assert.Equal(t, 12, uy)

	c.Scale = 0
	ux, uy = c.Unscaled()
	assert.Zero(t, ux)
	assert.Zero(t, uy)
}

func TestDrawingContext_String(t *testing.T) {
	c := NewDrawingContext(320, 200)
	c.ReturnOrigin.Arm()
	assert.Equal(t, "(160,100) color=1 scale=4 angle=0 penUp=idle returnOrigin=armed", c.String())
}
