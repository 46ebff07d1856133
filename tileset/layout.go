package tileset

import (
	"image"
	"log"

	"github.com/bodgit/gbamap/tile"
)

// Layout composes a primary and secondary tileset behind one
// contiguous metatile ID space.
type Layout struct {
	primary   *Tileset
	secondary *Tileset
}

// NewLayout pairs two already loaded tilesets.
func NewLayout(primary, secondary *Tileset) *Layout {
	return &Layout{
		primary:   primary,
		secondary: secondary,
	}
}

// LoadPair loads the primary and secondary tileset directories of a
// layout.
func LoadPair(primaryDir, secondaryDir string, logger *log.Logger) (*Layout, error) {
	primary, err := Load(primaryDir, logger)
	if err != nil {
		return nil, err
	}

	secondary, err := Load(secondaryDir, logger)
	if err != nil {
		return nil, err
	}

	return NewLayout(primary, secondary), nil
}

// MetatileCount returns the total metatile count across both tilesets.
func (l *Layout) MetatileCount() int {
	return l.primary.MetatileCount() + l.secondary.MetatileCount()
}

// resolveTile routes raw tile IDs across the two atlases split at
// SecondaryTileOffset. This split is fixed by the data format and is
// independent of the metatile ID split at the primary's count.
func (l *Layout) resolveTile(id int) (tile.Tile, bool) {
	if id < SecondaryTileOffset {
		return l.primary.atlas.Tile(id)
	}
	return l.secondary.atlas.Tile(id - SecondaryTileOffset)
}

// RenderMetatile draws the metatile with the given global ID. IDs below
// the primary's count index the primary table, the rest are rebased
// into the secondary table. Returns false when the ID is beyond both.
// Palettes always come from the tileset owning the metatile, while tile
// pixels may come from either atlas.
func (l *Layout) RenderMetatile(id int) (*image.RGBA, bool) {
	switch {
	case id < 0 || id >= l.MetatileCount():
		return nil, false
	case id < l.primary.MetatileCount():
		return l.primary.render(&l.primary.metatiles[id], l.resolveTile), true
	default:
		id -= l.primary.MetatileCount()
		return l.secondary.render(&l.secondary.metatiles[id], l.resolveTile), true
	}
}
