package palette

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

var (
	errBadHeader = errors.New("palette: invalid JASC-PAL header")
	errBadColor  = errors.New("palette: invalid color entry")
)

const (
	headerMagic   = "JASC-PAL"
	headerVersion = "0100"
)

// Decode reads a single JASC-PAL palette from r. The format is three
// header lines (magic, version, entry count) followed by exactly 16
// lines of three 0-255 values each.
func Decode(r io.Reader) (Palette, error) {
	var p Palette

	s := bufio.NewScanner(r)
	for _, want := range []string{headerMagic, headerVersion, strconv.Itoa(Colors)} {
		if !s.Scan() || strings.TrimRight(s.Text(), "\r") != want {
			return p, errBadHeader
		}
	}

	for i := 0; i < Colors; i++ {
		if !s.Scan() {
			return p, errBadColor
		}

		fields := strings.Fields(s.Text())
		if len(fields) != 3 {
			return p, errBadColor
		}

		var rgb [3]uint8
		for j, f := range fields {
			v, err := strconv.ParseUint(f, 10, 8)
			if err != nil {
				return p, errBadColor
			}
			rgb[j] = uint8(v)
		}

		p[i] = color.RGBA{rgb[0], rgb[1], rgb[2], 0xff}
	}

	return p, s.Err()
}

// LoadDir parses every palette file in dir, ordered by the numeric
// value of each file's stem. A .pal file whose stem is not numeric is
// an error since it cannot be placed in the palette numbering.
func LoadDir(dir string) ([]Palette, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	type numbered struct {
		n    int
		path string
	}

	var files []numbered
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != Extension {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(e.Name(), Extension))
		if err != nil {
			return nil, fmt.Errorf("palette: non-numeric palette filename %q", e.Name())
		}
		files = append(files, numbered{n, filepath.Join(dir, e.Name())})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].n < files[j].n })

	palettes := make([]Palette, 0, len(files))
	for _, file := range files {
		f, err := os.Open(file.path)
		if err != nil {
			return nil, err
		}

		p, err := Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file.path, err)
		}

		palettes = append(palettes, p)
	}

	return palettes, nil
}
