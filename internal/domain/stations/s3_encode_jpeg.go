package stations

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

const defaultJPEGQuality = 85

type S3EncodeJPEG struct {
	quality int
}

func NewS3EncodeJPEG(quality int) *S3EncodeJPEG {
	if quality <= 0 || quality > 100 {
		quality = defaultJPEGQuality
	}
	return &S3EncodeJPEG{quality: quality}
}

// Run re-encodes the upright image. The output carries no EXIF block, so
// browsers cannot rotate it a second time.
func (s *S3EncodeJPEG) Run(img image.Image) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(s.quality)); err != nil {
		return nil, fmt.Errorf("[S3] encode: %w", err)
	}
	return buf.Bytes(), nil
}
