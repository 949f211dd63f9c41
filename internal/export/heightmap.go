// Package export writes height grids as grayscale images and meshes as
// Wavefront OBJ files.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/Faultbox/terrarium/internal/terrain"
)

// Supported heightmap image formats.
const (
	FormatPNG = "png"
	FormatBMP = "bmp"
)

// HeightmapImage renders a grid as 8-bit grayscale, darkest at the lowest
// sample and brightest at the highest. A flat grid renders mid-grey.
// Pixel (x, z) maps to image column x, row z.
func HeightmapImage(grid *terrain.HeightGrid) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, grid.Width, grid.Depth))
	lo, hi := grid.MinMax()
	span := hi - lo

	for z := 0; z < grid.Depth; z++ {
		for x := 0; x < grid.Width; x++ {
			v := uint8(128)
			if span > 0 {
				v = uint8((grid.At(x, z)-lo)/span*255 + 0.5)
			}
			img.SetGray(x, z, color.Gray{Y: v})
		}
	}
	return img
}

// WriteHeightmap encodes the grid image to w in the given format.
func WriteHeightmap(w io.Writer, grid *terrain.HeightGrid, format string) error {
	img := HeightmapImage(grid)
	switch strings.ToLower(format) {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported heightmap format %q", format)
	}
}

// FormatFromPath guesses the image format from a file extension,
// falling back to def.
func FormatFromPath(path, def string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG
	case ".bmp":
		return FormatBMP
	}
	return def
}

// SaveFile creates path (and its parent directory) and passes it to write.
func SaveFile(path string, write func(io.Writer) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return write(f)
}
