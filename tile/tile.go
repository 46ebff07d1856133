/*
Package tile implements the 4-bit packed tile atlas decoder.

An atlas is an indexed-color image whose dimensions are exact multiples
of 8 pixels, split into 8 by 8 tiles addressed row-major by numeric ID.
Pixels are held packed, two per byte with the even column in the high
nibble, and are only unpacked per tile on request.
*/
package tile

const (
	// Width and Height are the pixel dimensions of a single tile.
	Width  = 8
	Height = Width

	tilePixels    = Width * Height
	pixelsPerByte = 2
	numIndices    = 16
)

// Tile is an 8 by 8 block of 4-bit palette indices.
type Tile [tilePixels]uint8

// At returns the palette index at (x, y) within the tile.
func (t *Tile) At(x, y int) uint8 {
	return t[y*Width+x]
}

func upperNibble(b byte) byte {
	return b >> 4
}

func lowerNibble(b byte) byte {
	return b & 0x0f
}
