package stations

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/Vovarama1992/go-utils/logger"
	"go.uber.org/zap"

	"github.com/Huspam/personal-website/internal/ports"
)

// withOrientation splices a minimal big-endian EXIF APP1 segment carrying
// only the Orientation tag right after the SOI marker.
func withOrientation(raw []byte, orientation byte) []byte {
	app1 := []byte{
		0xFF, 0xE1, 0x00, 0x22,
		'E', 'x', 'i', 'f', 0x00, 0x00,
		'M', 'M', 0x00, 0x2A, 0x00, 0x00, 0x00, 0x08,
		0x00, 0x01,
		0x01, 0x12, 0x00, 0x03, 0x00, 0x00, 0x00, 0x01, 0x00, orientation, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}

	out := make([]byte, 0, len(raw)+len(app1))
	out = append(out, raw[:2]...)
	out = append(out, app1...)
	return append(out, raw[2:]...)
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 40), G: uint8(y * 40), B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestS2DecodeAppliesOrientation(t *testing.T) {
	tests := []struct {
		name        string
		orientation byte
		wantW       int
		wantH       int
	}{
		{name: "normal", orientation: 1, wantW: 8, wantH: 4},
		{name: "upside down", orientation: 3, wantW: 8, wantH: 4},
		{name: "rotate 90 cw", orientation: 6, wantW: 4, wantH: 8},
		{name: "rotate 90 ccw", orientation: 8, wantW: 4, wantH: 8},
	}

	raw := encodeJPEG(t, 8, 4)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := NewS2DecodeImage().Run(withOrientation(raw, tt.orientation))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Fatalf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestS2DecodeRejectsGarbage(t *testing.T) {
	s2 := NewS2DecodeImage()

	if _, err := s2.Run(nil); err == nil {
		t.Fatal("expected error for empty input")
	}
	if _, err := s2.Run([]byte("definitely not pixels")); err == nil {
		t.Fatal("expected error for garbage input")
	}
}

func TestS3EncodeJPEG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 5, 7))

	out, err := NewS3EncodeJPEG(0).Run(img)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode config: %v", err)
	}
	if cfg.Width != 5 || cfg.Height != 7 {
		t.Fatalf("size = %dx%d, want 5x7", cfg.Width, cfg.Height)
	}
}

type memObjects map[string][]byte

func (m memObjects) List(ctx context.Context, prefix string) ([]string, error) { return nil, nil }

func (m memObjects) Get(ctx context.Context, key string) ([]byte, error) {
	raw, ok := m[key]
	if !ok {
		return nil, ports.ErrObjectNotFound
	}
	return raw, nil
}

func (m memObjects) Close() error { return nil }

func TestS1FetchBlob(t *testing.T) {
	s1 := NewS1FetchBlob(memObjects{"images/a.jpg": []byte("abc")}, logger.NewZapLogger(zap.NewNop().Sugar()))

	raw, err := s1.Run(context.Background(), "images/a.jpg")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if string(raw) != "abc" {
		t.Fatalf("raw = %q, want %q", raw, "abc")
	}

	if _, err := s1.Run(context.Background(), "images/b.jpg"); !errors.Is(err, ports.ErrObjectNotFound) {
		t.Fatalf("err = %v, want ErrObjectNotFound", err)
	}
}
