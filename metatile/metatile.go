/*
Package metatile implements the metatile table decoder.

A metatile is 8 tile references forming two stacked 2 by 2 layers
(references 0-3 are the bottom layer, 4-7 the top, each layer row-major)
plus an attribute word carrying a rendering layer classification.
*/
package metatile

import "fmt"

const (
	// TilesPerMetatile is the number of tile references in a metatile.
	TilesPerMetatile = 8

	// Layers is the number of stacked 2 by 2 layers in a metatile.
	Layers = 2

	metatileBytes  = TilesPerMetatile * 2
	attributeBytes = 4
)

// LayerType classifies which scene layers a metatile draws to. It is
// decoded for completeness; rendering a metatile by itself does not
// depend on it.
type LayerType int

const (
	LayerMiddleTop LayerType = iota
	LayerBottomMiddle
	LayerBottomTop
)

func (l LayerType) String() string {
	switch l {
	case LayerBottomMiddle:
		return "bottom/middle"
	case LayerBottomTop:
		return "bottom/top"
	default:
		return "middle/top"
	}
}

// layerTypeFromAttribute extracts bits 29-30 of the attribute word.
// Unknown values fall back to LayerMiddleTop rather than failing; the
// game tolerates them too.
func layerTypeFromAttribute(attr uint32) LayerType {
	switch attr >> 29 & 0x3 {
	case 1:
		return LayerBottomMiddle
	case 2:
		return LayerBottomTop
	default:
		return LayerMiddleTop
	}
}

// TileRef is one 16-bit packed tile reference: a 10-bit tile ID, two
// flip bits and a 4-bit palette number.
type TileRef struct {
	TileID         uint16
	FlipHorizontal bool
	FlipVertical   bool
	Palette        uint8
}

// ParseTileRef unpacks a 16-bit tile reference word.
func ParseTileRef(v uint16) TileRef {
	return TileRef{
		TileID:         v & 0x03ff,
		FlipHorizontal: v&0x0400 != 0,
		FlipVertical:   v&0x0800 != 0,
		Palette:        uint8(v >> 12),
	}
}

// Word re-encodes the reference into its 16-bit wire form.
func (t TileRef) Word() uint16 {
	v := t.TileID & 0x03ff
	if t.FlipHorizontal {
		v |= 0x0400
	}
	if t.FlipVertical {
		v |= 0x0800
	}
	return v | uint16(t.Palette&0x0f)<<12
}

func (t TileRef) String() string {
	return fmt.Sprintf("tile %d (hflip %t, vflip %t, palette %d)", t.TileID, t.FlipHorizontal, t.FlipVertical, t.Palette)
}

// Metatile is a fully decoded metatile record.
type Metatile struct {
	Tiles [TilesPerMetatile]TileRef
	Layer LayerType
}

// Tile returns the reference at (row, col) of the given layer, where
// layer 0 is the bottom and layer 1 the top.
func (m *Metatile) Tile(layer, row, col int) TileRef {
	return m.Tiles[layer*4+row*2+col]
}
