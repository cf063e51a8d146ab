package helper

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	maxPhotoEdge = 600
	photoQuality = 70
)

// CompressPhoto downscales an uploaded portrait so its longest edge is at
// most 600px, re-encodes it as JPEG and returns a data URL ready to store
// inline on the record.
func CompressPhoto(data []byte) (string, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", err
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxPhotoEdge || h > maxPhotoEdge {
		if w >= h {
			h = h * maxPhotoEdge / w
			w = maxPhotoEdge
		} else {
			w = w * maxPhotoEdge / h
			h = maxPhotoEdge
		}
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: photoQuality}); err != nil {
		return "", err
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
