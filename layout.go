package gbamap

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Layout describes one map: its grid dimensions plus the asset files
// that back it. It mirrors one entry of the data tree's layouts.json
// table; all file paths are relative to the tree root.
type Layout struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Width             int    `json:"width"`
	Height            int    `json:"height"`
	PrimaryTileset    string `json:"primary_tileset"`
	SecondaryTileset  string `json:"secondary_tileset"`
	BorderFilepath    string `json:"border_filepath"`
	BlockdataFilepath string `json:"blockdata_filepath"`
}

type layoutTable struct {
	Label   string   `json:"layouts_table_label"`
	Layouts []Layout `json:"layouts"`
}

// LoadLayouts parses a layouts.json table.
func LoadLayouts(file string) ([]Layout, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var table layoutTable
	if err := json.NewDecoder(f).Decode(&table); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	return table.Layouts, nil
}

// FindLayout returns the layout with the given ID.
func FindLayout(layouts []Layout, id string) (Layout, bool) {
	for _, l := range layouts {
		if l.ID == id {
			return l, true
		}
	}
	return Layout{}, false
}

// tilesetDir maps a tileset label like "gTileset_CeladonCity" to its
// directory name, "celadon_city".
func tilesetDir(label string) string {
	s := strings.TrimPrefix(label, "gTileset_")

	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteRune('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}

	return b.String()
}

// tilesetDirs resolves the primary and secondary tileset directories
// for a layout within the asset root.
func (r *Renderer) tilesetDirs(l Layout) (string, string) {
	return filepath.Join(r.root, "data", "tilesets", "primary", tilesetDir(l.PrimaryTileset)),
		filepath.Join(r.root, "data", "tilesets", "secondary", tilesetDir(l.SecondaryTileset))
}
