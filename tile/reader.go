package tile

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
)

var (
	errNotIndexed = errors.New("tile: atlas is not an indexed-color image")
	errBadBounds  = errors.New("tile: atlas dimensions are not multiples of the tile size")
	errTooDeep    = errors.New("tile: atlas pixels exceed 4 bits")
)

// Atlas is a tile sheet held as a packed nibble buffer. The dimensions
// are measured in tiles, not pixels; the buffer is always exactly
// width * height * 32 bytes.
type Atlas struct {
	data       []byte
	tileWidth  int
	tileHeight int
}

// DecodeAtlas reads an indexed-color PNG from r and packs it into an
// Atlas. Anything other than an indexed image with at most 16 colors
// and dimensions that are multiples of 8 pixels is rejected.
func DecodeAtlas(r io.Reader) (*Atlas, error) {
	m, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("tile: %w", err)
	}

	pm, ok := m.(*image.Paletted)
	if !ok {
		return nil, errNotIndexed
	}

	return NewAtlas(pm)
}

// NewAtlas packs the pixels of an indexed image into an Atlas.
func NewAtlas(pm *image.Paletted) (*Atlas, error) {
	b := pm.Bounds()
	w, h := b.Dx(), b.Dy()

	if w%Width != 0 || h%Height != 0 {
		return nil, errBadBounds
	}
	if len(pm.Palette) > numIndices {
		return nil, errTooDeep
	}

	a := &Atlas{
		data:       make([]byte, w*h/pixelsPerByte),
		tileWidth:  w / Width,
		tileHeight: h / Height,
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x += pixelsPerByte {
			hi := pm.ColorIndexAt(b.Min.X+x, b.Min.Y+y)
			lo := pm.ColorIndexAt(b.Min.X+x+1, b.Min.Y+y)
			if hi >= numIndices || lo >= numIndices {
				return nil, errTooDeep
			}
			a.data[(y*w+x)/pixelsPerByte] = hi<<4 | lo
		}
	}

	return a, nil
}

// NumTiles returns how many tiles the atlas holds.
func (a *Atlas) NumTiles() int {
	return a.tileWidth * a.tileHeight
}

// Tile unpacks the pixels of the given tile, or returns false when the
// ID is outside the atlas.
func (a *Atlas) Tile(id int) (Tile, bool) {
	var t Tile

	if id < 0 || id >= a.NumTiles() {
		return t, false
	}

	tx, ty := id%a.tileWidth, id/a.tileWidth
	widthPx := a.tileWidth * Width

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			px := tx*Width + x
			py := ty*Height + y

			b := a.data[(py*widthPx+px)/pixelsPerByte]
			if px%pixelsPerByte == 0 {
				t[y*Width+x] = upperNibble(b)
			} else {
				t[y*Width+x] = lowerNibble(b)
			}
		}
	}

	return t, true
}
