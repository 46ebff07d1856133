/*
Package palette implements a JASC-PAL palette parser.

Each tileset carries a directory of .pal files, one 16 color palette per
file. The numeric stem of a filename is the palette number referenced by
tile data, so the directory is always loaded in increasing numeric
order regardless of how the filesystem enumerates it.
*/
package palette

import "image/color"

const (
	// Extension is the recognised palette file extension. Files with
	// any other extension are skipped, not rejected.
	Extension = ".pal"

	// Colors is the number of entries in every palette.
	Colors = 16
)

// Palette is an ordered set of 16 opaque colors. A 4-bit tile pixel
// selects one entry; entry 0 is treated as transparent by overlay
// layers during rendering.
type Palette [Colors]color.RGBA
