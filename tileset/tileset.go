/*
Package tileset binds a metatile table, tile atlas and palette set
together and renders metatiles to 16 by 16 pixel blocks.

A map layout always pairs two tilesets. The pair shares one contiguous
metatile ID space split at the primary's metatile count, and one tile ID
space split at a fixed offset of 640. The tile split is a constant of
the data format, it is not carried in the files and is unrelated to the
metatile split.
*/
package tileset

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/bodgit/gbamap/metatile"
	"github.com/bodgit/gbamap/palette"
	"github.com/bodgit/gbamap/tile"
)

const (
	// MetatileDim is the pixel width and height of a rendered metatile.
	MetatileDim = 16

	// SecondaryTileOffset is the tile ID at which references inside any
	// metatile switch from the primary to the secondary atlas.
	SecondaryTileOffset = 640

	subGrid = 2
)

// Standard file layout inside a tileset directory.
const (
	metatileFile  = "metatiles.bin"
	attributeFile = "metatile_attributes.bin"
	atlasFile     = "tiles.png"
	paletteDir    = "palettes"
)

// AssetPaths returns the binary and image assets inside a tileset
// directory, excluding the palette directory.
func AssetPaths(dir string) []string {
	return []string{
		filepath.Join(dir, metatileFile),
		filepath.Join(dir, attributeFile),
		filepath.Join(dir, atlasFile),
	}
}

// tileResolver maps a raw tile ID to its pixel data. A standalone
// tileset resolves against its own atlas; a layout pair routes across
// both atlases.
type tileResolver func(id int) (tile.Tile, bool)

// Tileset owns one metatile table, one tile atlas and one palette set.
// Metatiles reference these only by numeric index.
type Tileset struct {
	metatiles []metatile.Metatile
	atlas     *tile.Atlas
	palettes  []palette.Palette
	logger    *log.Logger
}

// New binds an already decoded metatile table, atlas and palette set.
// A nil logger discards render diagnostics.
func New(metatiles []metatile.Metatile, atlas *tile.Atlas, palettes []palette.Palette, logger *log.Logger) *Tileset {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Tileset{
		metatiles: metatiles,
		atlas:     atlas,
		palettes:  palettes,
		logger:    logger,
	}
}

// Load reads the standard asset layout from dir: metatiles.bin,
// metatile_attributes.bin, tiles.png and a palettes directory.
func Load(dir string, logger *log.Logger) (*Tileset, error) {
	mf, err := os.Open(filepath.Join(dir, metatileFile))
	if err != nil {
		return nil, err
	}
	defer mf.Close()

	af, err := os.Open(filepath.Join(dir, attributeFile))
	if err != nil {
		return nil, err
	}
	defer af.Close()

	metatiles, err := metatile.Decode(mf, af)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dir, err)
	}

	tf, err := os.Open(filepath.Join(dir, atlasFile))
	if err != nil {
		return nil, err
	}
	defer tf.Close()

	atlas, err := tile.DecodeAtlas(tf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dir, err)
	}

	palettes, err := palette.LoadDir(filepath.Join(dir, paletteDir))
	if err != nil {
		return nil, err
	}

	return New(metatiles, atlas, palettes, logger), nil
}

// MetatileCount returns the number of metatiles in the table.
func (t *Tileset) MetatileCount() int {
	return len(t.metatiles)
}

// RenderMetatile draws the given metatile to a 16 by 16 image using
// only this tileset's own atlas and palettes. Returns false when the ID
// is out of range.
func (t *Tileset) RenderMetatile(id int) (*image.RGBA, bool) {
	if id < 0 || id >= len(t.metatiles) {
		return nil, false
	}
	return t.render(&t.metatiles[id], t.atlas.Tile), true
}

func (t *Tileset) render(m *metatile.Metatile, resolve tileResolver) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, MetatileDim, MetatileDim))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	for layer := 0; layer < metatile.Layers; layer++ {
		for row := 0; row < subGrid; row++ {
			for col := 0; col < subGrid; col++ {
				t.blitTile(out, m.Tile(layer, row, col), layer, row, col, resolve)
			}
		}
	}

	return out
}

// blitTile draws one 8 by 8 tile reference into its quadrant of the
// metatile. The top layer treats index 0 as transparent so the bottom
// layer shows through; the bottom layer is opaque. A reference outside
// the atlas or palette set leaves its quadrant untouched instead of
// failing the whole metatile.
func (t *Tileset) blitTile(dst *image.RGBA, ref metatile.TileRef, layer, row, col int, resolve tileResolver) {
	src, ok := resolve(int(ref.TileID))
	if !ok {
		t.logger.Printf("%s out of atlas range, leaving quadrant blank", ref)
		return
	}

	if int(ref.Palette) >= len(t.palettes) {
		t.logger.Printf("%s out of palette range, leaving quadrant blank", ref)
		return
	}
	pal := &t.palettes[ref.Palette]

	for y := 0; y < tile.Height; y++ {
		for x := 0; x < tile.Width; x++ {
			sx, sy := x, y
			if ref.FlipHorizontal {
				sx = tile.Width - 1 - x
			}
			if ref.FlipVertical {
				sy = tile.Height - 1 - y
			}

			idx := src.At(sx, sy)
			if layer > 0 && idx == 0 {
				continue
			}

			dst.SetRGBA(col*tile.Width+x, row*tile.Height+y, pal[idx])
		}
	}
}
