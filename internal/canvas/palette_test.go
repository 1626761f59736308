package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPalette_Color(t *testing.T) {
	p := Palettes[1]
	assert.Equal(t, RGB{0x55, 0xFF, 0xFF}, p.Color(1))
	assert.Equal(t, RGB{0xFF, 0xFF, 0xFF}, p.Color(3))
	assert.Equal(t, p.Color(1), p.Color(5), "indices wrap")
	assert.Equal(t, p.Color(3), p.Color(-1))
	assert.Equal(t, RGB{}, Palette(nil).Color(2))
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#FF5555")
	require.NoError(t, err)
	assert.Equal(t, RGB{0xFF, 0x55, 0x55}, c)
	assert.Equal(t, "#ff5555", c.Hex())

	c, err = ParseHex("00ff00")
	require.NoError(t, err)
	assert.Equal(t, RGB{0, 0xFF, 0}, c)

	c, err = ParseHex("#fff")
	require.NoError(t, err)
	assert.Equal(t, RGB{0xFF, 0xFF, 0xFF}, c)

	for _, bad := range []string{"", "#ff", "#gggggg", "#1234567", "blue"} {
		_, err := ParseHex(bad)
		assert.Error(t, err, bad)
	}
}
