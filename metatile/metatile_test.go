package metatile

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTileRef(t *testing.T) {
	tests := []struct {
		word uint16
		want TileRef
	}{
		{0x0000, TileRef{}},
		{0x03ff, TileRef{TileID: 1023}},
		{0x0401, TileRef{TileID: 1, FlipHorizontal: true}},
		{0x0802, TileRef{TileID: 2, FlipVertical: true}},
		{0xf003, TileRef{TileID: 3, Palette: 15}},
		{0xac85, TileRef{TileID: 133, FlipHorizontal: true, FlipVertical: true, Palette: 10}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseTileRef(tt.word), "word %#04x", tt.word)
	}
}

func TestTileRefRoundTrip(t *testing.T) {
	for _, word := range []uint16{0x0000, 0x03ff, 0x0400, 0x0800, 0xf000, 0xffff, 0xac85, 0x1234} {
		assert.Equal(t, word, ParseTileRef(word).Word(), "word %#04x", word)
	}
}

func record(words ...uint16) []byte {
	b := new(bytes.Buffer)
	binary.Write(b, binary.LittleEndian, words)
	return b.Bytes()
}

func attribute(words ...uint32) []byte {
	b := new(bytes.Buffer)
	binary.Write(b, binary.LittleEndian, words)
	return b.Bytes()
}

func TestDecode(t *testing.T) {
	metatiles := record(
		// Metatile 0: distinct tile IDs per slot
		0, 1, 2, 3, 4, 5, 6, 7,
		// Metatile 1: flips and palettes
		0x0400, 0x0800, 0xf000, 0, 0, 0, 0, 0,
	)
	attributes := attribute(0, 2<<29)

	got, err := Decode(bytes.NewReader(metatiles), bytes.NewReader(attributes))
	require.NoError(t, err)
	require.Len(t, got, 2)

	for i := 0; i < TilesPerMetatile; i++ {
		assert.Equal(t, uint16(i), got[0].Tiles[i].TileID)
	}
	assert.Equal(t, LayerMiddleTop, got[0].Layer)

	assert.True(t, got[1].Tiles[0].FlipHorizontal)
	assert.True(t, got[1].Tiles[1].FlipVertical)
	assert.Equal(t, uint8(15), got[1].Tiles[2].Palette)
	assert.Equal(t, LayerBottomTop, got[1].Layer)

	// Slot 5 is the top layer at (0, 1)
	assert.Equal(t, got[0].Tiles[5], got[0].Tile(1, 0, 1))
}

func TestDecodeLayerFallback(t *testing.T) {
	tests := []struct {
		attr uint32
		want LayerType
	}{
		{0, LayerMiddleTop},
		{1 << 29, LayerBottomMiddle},
		{2 << 29, LayerBottomTop},
		{3 << 29, LayerMiddleTop}, // undefined value falls back
		{1<<29 | 0x1fffffff, LayerBottomMiddle},
	}

	for _, tt := range tests {
		got, err := Decode(bytes.NewReader(record(0, 0, 0, 0, 0, 0, 0, 0)), bytes.NewReader(attribute(tt.attr)))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got[0].Layer, "attribute %#08x", tt.attr)
	}
}

func TestDecodeMisaligned(t *testing.T) {
	_, err := Decode(bytes.NewReader(make([]byte, 15)), bytes.NewReader(attribute(0)))
	assert.ErrorIs(t, err, errMisaligned)

	_, err = Decode(bytes.NewReader(record(0, 0, 0, 0, 0, 0, 0, 0)), bytes.NewReader(make([]byte, 3)))
	assert.ErrorIs(t, err, errAttrMisaligned)
}

func TestDecodeCountMismatch(t *testing.T) {
	_, err := Decode(bytes.NewReader(record(0, 0, 0, 0, 0, 0, 0, 0)), bytes.NewReader(attribute(0, 0)))
	assert.ErrorIs(t, err, errCountMismatch)
}
