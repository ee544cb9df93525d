package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/hubastard/grove2d/engine/gfx"
	"github.com/hubastard/grove2d/engine/gfx/headless"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

// twoRows is 2x2: red on the top row, blue on the bottom row.
func twoRows() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for x := 0; x < 2; x++ {
		img.Set(x, 0, color.NRGBA{255, 0, 0, 255})
		img.Set(x, 1, color.NRGBA{0, 0, 255, 255})
	}
	return img
}

func writeFile(t *testing.T, name string, encode func(f *os.File) error) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, encode(f))
	require.NoError(t, f.Close())
	return path
}

func TestLoadImageFlipsToBottomLeft(t *testing.T) {
	for _, tc := range []struct {
		name   string
		encode func(f *os.File) error
	}{
		{"img.png", func(f *os.File) error { return png.Encode(f, twoRows()) }},
		{"img.bmp", func(f *os.File) error { return bmp.Encode(f, twoRows()) }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			img, err := LoadImage(writeFile(t, tc.name, tc.encode))
			require.NoError(t, err)
			assert.Equal(t, 2, img.Width)
			assert.Equal(t, 2, img.Height)
			require.Len(t, img.Pixels, 16)
			// first uploaded row is the bottom of the picture
			assert.Equal(t, []byte{0, 0, 255, 255}, img.Pixels[0:4])
			assert.Equal(t, []byte{255, 0, 0, 255}, img.Pixels[8:12])
		})
	}
}

func TestLoadImageMissingFile(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "nope.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadImageGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))
	_, err := LoadImage(path)
	assert.ErrorIs(t, err, image.ErrFormat)
}

func TestLoadTexture(t *testing.T) {
	api := headless.New(0)
	path := writeFile(t, "tex.png", func(f *os.File) error { return png.Encode(f, twoRows()) })

	tex, err := LoadTexture(api, path, gfx.FilterNearest)
	require.NoError(t, err)
	assert.Equal(t, 2, tex.Width())
	assert.Equal(t, []byte{0, 0, 255, 255}, tex.(*headless.Texture).Pixels()[:4])

	_, err = LoadTexture(api, filepath.Join(t.TempDir(), "missing.png"), gfx.FilterLinear)
	assert.Error(t, err)
}

func TestFlipRowsHonorsStride(t *testing.T) {
	src := []byte{1, 2, 9, 3, 4, 9}
	assert.Equal(t, []byte{3, 4, 1, 2}, FlipRows(src, 3, 2, 2))
}

func TestLoadShader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flat.glsl")
	src := "#type vertex\nvoid main() {}\n#type fragment\nvoid main() {}\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	got, err := LoadShader(path)
	require.NoError(t, err)
	assert.Equal(t, src, got)

	empty := filepath.Join(dir, "empty.glsl")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = LoadShader(empty)
	assert.ErrorContains(t, err, "empty file")

	_, err = LoadShader(filepath.Join(dir, "none.glsl"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
