package metatile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	errMisaligned     = errors.New("metatile: metatile data is not a whole number of records")
	errAttrMisaligned = errors.New("metatile: attribute data is not a whole number of records")
	errCountMismatch  = errors.New("metatile: metatile and attribute record counts differ")
)

// Decode parses the two parallel arrays that make up a metatile table:
// 16-byte records of 8 little-endian tile reference words, and 4-byte
// little-endian attribute words. The arrays must describe the same
// number of records.
func Decode(metatiles, attributes io.Reader) ([]Metatile, error) {
	mb, err := io.ReadAll(metatiles)
	if err != nil {
		return nil, err
	}

	ab, err := io.ReadAll(attributes)
	if err != nil {
		return nil, err
	}

	if len(mb)%metatileBytes != 0 {
		return nil, errMisaligned
	}
	if len(ab)%attributeBytes != 0 {
		return nil, errAttrMisaligned
	}

	count := len(mb) / metatileBytes
	if len(ab)/attributeBytes != count {
		return nil, fmt.Errorf("%w: %d metatiles, %d attributes", errCountMismatch, count, len(ab)/attributeBytes)
	}

	out := make([]Metatile, count)
	for i := range out {
		rec := mb[i*metatileBytes:]
		for j := 0; j < TilesPerMetatile; j++ {
			out[i].Tiles[j] = ParseTileRef(binary.LittleEndian.Uint16(rec[j*2:]))
		}
		out[i].Layer = layerTypeFromAttribute(binary.LittleEndian.Uint32(ab[i*attributeBytes:]))
	}

	return out, nil
}
