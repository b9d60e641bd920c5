package export

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	for x := range 40 {
		img.Set(x, 10, color.RGBA{R: 0xff, A: 0xff})
	}
	return img
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, testImage()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Contains(t, buf.String(), "/Subtype /Image")
}

func TestPDFFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.pdf")
	require.NoError(t, PDF(path, testImage()))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestPNGRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.png")
	require.NoError(t, PNG(path, testImage()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 20), img.Bounds())
	r, _, _, _ := img.At(5, 10).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, testImage()))
	_, err := png.Decode(&buf)
	assert.NoError(t, err)
}

func TestPDFBadPath(t *testing.T) {
	err := PDF(filepath.Join(t.TempDir(), "missing", "board.pdf"), testImage())
	assert.Error(t, err)
}
