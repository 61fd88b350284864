// Package debug holds developer utilities for the viewer.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// SaveScreenshot writes raw RGBA pixels as read back from the GL
// framebuffer to a timestamped PNG under dir. The rows arrive
// bottom-up, so they are flipped while copying.
func SaveScreenshot(dir string, pixels []byte, width, height int) (string, error) {
	if len(pixels) < width*height*4 {
		return "", fmt.Errorf("screenshot: pixel buffer too small for %dx%d", width, height)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowLen := width * 4
	for y := 0; y < height; y++ {
		src := pixels[(height-1-y)*rowLen : (height-y)*rowLen]
		copy(img.Pix[y*img.Stride:], src)
	}

	name := fmt.Sprintf("veld_%s.png", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", err
	}
	return path, nil
}
