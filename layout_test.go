package gbamap

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLayouts(t *testing.T) {
	root, layout := buildTestTree(t)

	layouts, err := LoadLayouts(filepath.Join(root, "data", "layouts", "layouts.json"))
	require.NoError(t, err)
	require.Len(t, layouts, 1)
	assert.Equal(t, layout, layouts[0])

	got, ok := FindLayout(layouts, "LAYOUT_TEST")
	require.True(t, ok)
	assert.Equal(t, layout, got)

	_, ok = FindLayout(layouts, "LAYOUT_MISSING")
	assert.False(t, ok)
}

func TestLoadLayoutsMissingFile(t *testing.T) {
	_, err := LoadLayouts(filepath.Join(t.TempDir(), "layouts.json"))
	assert.Error(t, err)
}

func TestTilesetDir(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"gTileset_General", "general"},
		{"gTileset_CeladonCity", "celadon_city"},
		{"gTileset_MtEmber", "mt_ember"},
		{"gTileset_SeviiIslands123", "sevii_islands123"},
		{"Underwater", "underwater"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tilesetDir(tt.label), "label %s", tt.label)
	}
}
