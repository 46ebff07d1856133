package tile

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPalette(n int) color.Palette {
	p := make(color.Palette, n)
	for i := range p {
		v := uint8(i * 16)
		p[i] = color.RGBA{v, v, v, 0xff}
	}
	return p
}

func TestAtlasBounds(t *testing.T) {
	pm := image.NewPaletted(image.Rect(0, 0, 16, 8), testPalette(16))

	a, err := NewAtlas(pm)
	require.NoError(t, err)

	assert.Equal(t, 2, a.NumTiles())

	_, ok := a.Tile(a.NumTiles() - 1)
	assert.True(t, ok)

	_, ok = a.Tile(a.NumTiles())
	assert.False(t, ok)

	_, ok = a.Tile(-1)
	assert.False(t, ok)
}

func TestAtlasBadDimensions(t *testing.T) {
	pm := image.NewPaletted(image.Rect(0, 0, 10, 8), testPalette(16))

	_, err := NewAtlas(pm)
	assert.ErrorIs(t, err, errBadBounds)
}

func TestAtlasTooManyColors(t *testing.T) {
	pm := image.NewPaletted(image.Rect(0, 0, 8, 8), testPalette(17))

	_, err := NewAtlas(pm)
	assert.ErrorIs(t, err, errTooDeep)
}

func TestAtlasNibbleOrder(t *testing.T) {
	pm := image.NewPaletted(image.Rect(0, 0, 8, 8), testPalette(16))
	pm.SetColorIndex(0, 0, 0x0a) // even column, high nibble
	pm.SetColorIndex(1, 0, 0x05) // odd column, low nibble
	pm.SetColorIndex(7, 7, 0x0f)

	a, err := NewAtlas(pm)
	require.NoError(t, err)

	assert.Equal(t, byte(0xa5), a.data[0])

	tl, ok := a.Tile(0)
	require.True(t, ok)

	assert.Equal(t, uint8(0x0a), tl.At(0, 0))
	assert.Equal(t, uint8(0x05), tl.At(1, 0))
	assert.Equal(t, uint8(0x0f), tl.At(7, 7))
	assert.Equal(t, uint8(0x00), tl.At(2, 0))
}

func TestAtlasTileAddressing(t *testing.T) {
	// Two tiles wide, two tall; fill each tile with its own ID
	pm := image.NewPaletted(image.Rect(0, 0, 16, 16), testPalette(16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			pm.SetColorIndex(x, y, uint8(y/Height*2+x/Width))
		}
	}

	a, err := NewAtlas(pm)
	require.NoError(t, err)
	require.Equal(t, 4, a.NumTiles())

	for id := 0; id < 4; id++ {
		tl, ok := a.Tile(id)
		require.True(t, ok)
		for y := 0; y < Height; y++ {
			for x := 0; x < Width; x++ {
				assert.Equal(t, uint8(id), tl.At(x, y), "tile %d at (%d, %d)", id, x, y)
			}
		}
	}
}

func TestDecodeAtlas(t *testing.T) {
	pm := image.NewPaletted(image.Rect(0, 0, 8, 8), testPalette(16))
	pm.SetColorIndex(3, 4, 0x07)

	b := new(bytes.Buffer)
	require.NoError(t, png.Encode(b, pm))

	a, err := DecodeAtlas(b)
	require.NoError(t, err)

	tl, ok := a.Tile(0)
	require.True(t, ok)
	assert.Equal(t, uint8(0x07), tl.At(3, 4))
}

func TestDecodeAtlasNotIndexed(t *testing.T) {
	b := new(bytes.Buffer)
	require.NoError(t, png.Encode(b, image.NewRGBA(image.Rect(0, 0, 8, 8))))

	_, err := DecodeAtlas(b)
	assert.ErrorIs(t, err, errNotIndexed)
}
