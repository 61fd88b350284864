package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestFromImageGray8(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.SetGray(0, 0, color.Gray{Y: 0})
	img.SetGray(1, 0, color.Gray{Y: 128})
	img.SetGray(0, 1, color.Gray{Y: 200})
	img.SetGray(1, 1, color.Gray{Y: 255})

	hm := FromImage(img)
	if hm.BytesPerPixel != 1 {
		t.Fatalf("expected 1 byte per pixel, got %d", hm.BytesPerPixel)
	}
	if hm.Width != 2 || hm.Height != 2 {
		t.Fatalf("expected 2x2, got %dx%d", hm.Width, hm.Height)
	}
	if got := hm.Texel(1, 0); got != 128 {
		t.Errorf("Texel(1,0) = %d, want 128", got)
	}
	if got := hm.Texel(1, 1); got != 255 {
		t.Errorf("Texel(1,1) = %d, want 255", got)
	}
	if hm.MaxValue() != 255 {
		t.Errorf("MaxValue() = %d, want 255", hm.MaxValue())
	}
}

func TestFromImageGray16KeepsPrecision(t *testing.T) {
	img := image.NewGray16(image.Rect(0, 0, 2, 1))
	img.SetGray16(0, 0, color.Gray16{Y: 0x1234})
	img.SetGray16(1, 0, color.Gray16{Y: 0xFFFE})

	hm := FromImage(img)
	if hm.BytesPerPixel != 2 {
		t.Fatalf("expected 2 bytes per pixel, got %d", hm.BytesPerPixel)
	}
	if got := hm.Texel(0, 0); got != 0x1234 {
		t.Errorf("Texel(0,0) = %#x, want 0x1234", got)
	}
	if got := hm.Texel(1, 0); got != 0xFFFE {
		t.Errorf("Texel(1,0) = %#x, want 0xFFFE", got)
	}
	if hm.MaxValue() != 65535 {
		t.Errorf("MaxValue() = %d, want 65535", hm.MaxValue())
	}
}

func TestDecodeHeightMapPNG(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := 0; i < 16; i++ {
		img.Pix[i] = byte(i * 16)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}

	hm, err := DecodeHeightMap(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeHeightMap failed: %v", err)
	}
	if hm.Width != 4 || hm.Height != 4 {
		t.Errorf("expected 4x4, got %dx%d", hm.Width, hm.Height)
	}
	if got := hm.Texel(3, 3); got != 15*16 {
		t.Errorf("Texel(3,3) = %d, want %d", got, 15*16)
	}
}

func TestDecodeHeightMapGarbage(t *testing.T) {
	if _, err := DecodeHeightMap([]byte("not an image")); err == nil {
		t.Error("expected error for garbage input")
	}
}
