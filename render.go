package gbamap

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/gbamap/mapdata"
	"github.com/bodgit/gbamap/tileset"
	"github.com/ericpauley/go-quantize/quantize"
	xdraw "golang.org/x/image/draw"
)

const maxIndexedColors = 256

// RenderMap walks the grid row-major and blits each metatile block
// into the output image. A cell whose metatile ID cannot be resolved is
// logged and left black rather than failing the render; map data may
// reference metatiles from an unsupported set.
func (r *Renderer) RenderMap(grid *mapdata.Grid, ts *tileset.Layout) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, grid.Width()*tileset.MetatileDim, grid.Height()*tileset.MetatileDim))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			cell, _ := grid.Cell(row, col)

			block, ok := ts.RenderMetatile(int(cell.MetatileID))
			if !ok {
				r.logger.Printf("no metatile %d at (%d, %d)", cell.MetatileID, row, col)
				continue
			}

			rect := image.Rect(col*tileset.MetatileDim, row*tileset.MetatileDim,
				(col+1)*tileset.MetatileDim, (row+1)*tileset.MetatileDim)
			draw.Draw(out, rect, block, image.Point{}, draw.Src)
		}
	}

	return out
}

// RenderLayout loads the map grid and tileset pair named by the layout
// and composites the full map image. The result is always
// width*16 by height*16 pixels.
func (r *Renderer) RenderLayout(l Layout) (*image.RGBA, error) {
	mf, err := os.Open(filepath.Join(r.root, l.BlockdataFilepath))
	if err != nil {
		return nil, err
	}
	defer mf.Close()

	bf, err := os.Open(filepath.Join(r.root, l.BorderFilepath))
	if err != nil {
		return nil, err
	}
	defer bf.Close()

	grid, err := mapdata.Decode(mf, bf, l.Width, l.Height)
	if err != nil {
		return nil, err
	}

	primaryDir, secondaryDir := r.tilesetDirs(l)
	ts, err := tileset.LoadPair(primaryDir, secondaryDir, r.logger)
	if err != nil {
		return nil, err
	}

	return r.RenderMap(grid, ts), nil
}

// Scale returns m scaled up by an integer factor using
// nearest-neighbour resampling, or m itself for factors below 2.
func Scale(m image.Image, factor int) image.Image {
	if factor <= 1 {
		return m
	}

	b := m.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), m, b, xdraw.Src, nil)

	return dst
}

// EncodePNG writes m to w as a PNG, optionally quantized to a 256
// color paletted image first.
func EncodePNG(w io.Writer, m image.Image, indexed bool) error {
	if indexed {
		q := quantize.MedianCutQuantizer{}
		pm := image.NewPaletted(m.Bounds(), q.Quantize(make(color.Palette, 0, maxIndexedColors), m))
		draw.Draw(pm, m.Bounds(), m, m.Bounds().Min, draw.Src)
		m = pm
	}

	return png.Encode(w, m)
}
