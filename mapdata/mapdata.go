/*
Package mapdata implements the binary map grid decoder.

A map is a flat array of 16-bit cells in row-major order. The files
carry no dimensions of their own; the layout that owns the map supplies
width and height. Each map also has a border array in the same encoding
used by the game to tile beyond the playable bounds; it is decoded but
never composited into a rendered map.
*/
package mapdata

const cellBytes = 2

// Cell is one decoded map position: a 10-bit metatile ID, 2 collision
// bits and a 4-bit elevation.
type Cell struct {
	MetatileID uint16
	Collision  uint8
	Elevation  uint8
}

// ParseCell unpacks a 16-bit map cell word.
func ParseCell(v uint16) Cell {
	return Cell{
		MetatileID: v & 0x03ff,
		Collision:  uint8(v >> 10 & 0x03),
		Elevation:  uint8(v >> 12),
	}
}

// Word re-encodes the cell into its 16-bit wire form.
func (c Cell) Word() uint16 {
	return c.MetatileID&0x03ff | uint16(c.Collision&0x03)<<10 | uint16(c.Elevation&0x0f)<<12
}

// Grid is a decoded map addressable by (row, col).
type Grid struct {
	width  int
	height int
	cells  []Cell
	border []Cell
}

// Width returns the grid width in cells.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in cells.
func (g *Grid) Height() int {
	return g.height
}

// Cell returns the cell at (row, col), or false outside the declared
// bounds. The bounds test is purely against the declared dimensions;
// a position inside them that has no backing cell also reports false
// rather than panicking.
func (g *Grid) Cell(row, col int) (Cell, bool) {
	if row < 0 || col < 0 || row >= g.height || col >= g.width {
		return Cell{}, false
	}

	i := row*g.width + col
	if i >= len(g.cells) {
		return Cell{}, false
	}

	return g.cells[i], true
}

// Border returns the border cells in file order.
func (g *Grid) Border() []Cell {
	return g.border
}
