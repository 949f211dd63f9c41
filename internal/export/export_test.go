package export

import (
	"bytes"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/Faultbox/terrarium/internal/terrain"
)

func testGrid(t *testing.T) *terrain.HeightGrid {
	t.Helper()
	grid, err := terrain.NewHeightGrid(3, 2, []float32{0, 5, 10, 10, 5, 0})
	require.NoError(t, err)
	return grid
}

func TestHeightmapImage(t *testing.T) {
	img := HeightmapImage(testGrid(t))
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	assert.Equal(t, uint8(0), img.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(128), img.GrayAt(1, 0).Y)
	assert.Equal(t, uint8(255), img.GrayAt(2, 0).Y)
	assert.Equal(t, uint8(255), img.GrayAt(0, 1).Y)
	assert.Equal(t, uint8(0), img.GrayAt(2, 1).Y)
}

func TestHeightmapImageFlat(t *testing.T) {
	grid, err := terrain.NewHeightGrid(2, 2, []float32{3, 3, 3, 3})
	require.NoError(t, err)
	img := HeightmapImage(grid)
	for _, px := range img.Pix {
		assert.Equal(t, uint8(128), px)
	}
}

func TestWriteHeightmap(t *testing.T) {
	grid := testGrid(t)

	var buf bytes.Buffer
	require.NoError(t, WriteHeightmap(&buf, grid, "png"))
	cfg, format, err := image.DecodeConfig(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 3, cfg.Width)
	assert.Equal(t, 2, cfg.Height)

	buf.Reset()
	require.NoError(t, WriteHeightmap(&buf, grid, "BMP"))
	img, err := bmp.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())

	assert.Error(t, WriteHeightmap(&buf, grid, "tiff"))
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatPNG, FormatFromPath("out/map.PNG", FormatBMP))
	assert.Equal(t, FormatBMP, FormatFromPath("map.bmp", FormatPNG))
	assert.Equal(t, FormatPNG, FormatFromPath("map", FormatPNG))
}

func TestWriteOBJ(t *testing.T) {
	mesh, err := terrain.BuildMesh(testGrid(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, mesh))

	var v, vn, f int
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		switch {
		case strings.HasPrefix(line, "v "):
			v++
		case strings.HasPrefix(line, "vn "):
			vn++
		case strings.HasPrefix(line, "f "):
			f++
		}
	}
	assert.Equal(t, 6, v)
	assert.Equal(t, 6, vn)
	assert.Equal(t, 4, f)
	assert.Contains(t, buf.String(), "f 1//1 4//4 2//2\n")
}

func TestSaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "map.png")
	err := SaveFile(path, func(w io.Writer) error {
		return WriteHeightmap(w, testGrid(t), FormatFromPath(path, FormatBMP))
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
}
