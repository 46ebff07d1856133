/*
Package gbamap renders the tile-map assets of a decompiled Game Boy
Advance game to images.

It decodes binary metatile tables, packed 4-bit tile atlases, JASC-PAL
palettes and binary map grids from the game's data tree and composites
them into full-color map images.
*/
package gbamap

import (
	"io"
	"log"
)

// Renderer ties an asset tree root to a logger. All layout file paths
// are resolved relative to the root.
type Renderer struct {
	root   string
	logger *log.Logger
}

// New returns a Renderer for the asset tree rooted at root. A nil
// logger discards diagnostics.
func New(root string, logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Renderer{
		root:   root,
		logger: logger,
	}
}
