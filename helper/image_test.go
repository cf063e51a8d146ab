package helper

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeDataURL(t *testing.T, dataURL string) image.Image {
	t.Helper()
	const prefix = "data:image/jpeg;base64,"
	require.True(t, strings.HasPrefix(dataURL, prefix))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, prefix))
	require.NoError(t, err)
	img, err := jpeg.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img
}

func TestCompressPhotoDownscalesLargeImages(t *testing.T) {
	out, err := CompressPhoto(encodePNG(t, 1200, 900))
	require.NoError(t, err)

	img := decodeDataURL(t, out)
	assert.Equal(t, 600, img.Bounds().Dx())
	assert.Equal(t, 450, img.Bounds().Dy())
}

func TestCompressPhotoKeepsSmallImages(t *testing.T) {
	out, err := CompressPhoto(encodePNG(t, 300, 200))
	require.NoError(t, err)

	img := decodeDataURL(t, out)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestCompressPhotoPortraitOrientation(t *testing.T) {
	out, err := CompressPhoto(encodePNG(t, 600, 1200))
	require.NoError(t, err)

	img := decodeDataURL(t, out)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestCompressPhotoRejectsGarbage(t *testing.T) {
	_, err := CompressPhoto([]byte("definitely not an image"))
	assert.Error(t, err)
}
