package stations

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

type S2DecodeImage struct{}

func NewS2DecodeImage() *S2DecodeImage { return &S2DecodeImage{} }

// Run decodes raw image bytes and rotates/flips the pixels according to the
// EXIF orientation tag so the result is upright.
func (s *S2DecodeImage) Run(raw []byte) (image.Image, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("[S2] empty image")
	}

	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("[S2] decode: %w", err)
	}
	return img, nil
}
