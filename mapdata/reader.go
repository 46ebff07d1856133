package mapdata

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var errOddLength = errors.New("mapdata: map data is not a whole number of cells")

func decodeCells(r io.Reader) ([]Cell, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if len(b)%cellBytes != 0 {
		return nil, errOddLength
	}

	cells := make([]Cell, len(b)/cellBytes)
	for i := range cells {
		cells[i] = ParseCell(binary.LittleEndian.Uint16(b[i*cellBytes:]))
	}

	return cells, nil
}

// Decode parses the map and border cell arrays against the supplied
// grid dimensions. The map must contain exactly width * height cells.
func Decode(mapData, borderData io.Reader, width, height int) (*Grid, error) {
	cells, err := decodeCells(mapData)
	if err != nil {
		return nil, err
	}

	border, err := decodeCells(borderData)
	if err != nil {
		return nil, err
	}

	if len(cells) != width*height {
		return nil, fmt.Errorf("mapdata: %d cells for a %d by %d grid", len(cells), width, height)
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
		border: border,
	}, nil
}
