package felt

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot requests a PNG capture of the next rendered frame. The file
// lands in ScreenshotDir as <timestamp>_<label>.png after Draw finishes.
// Safe to call from Update or Draw; multiple requests in one frame share
// a single pixel read.
func (r *Renderer) Screenshot(label string) {
	r.screenshotQueue = append(r.screenshotQueue, label)
}

// flushScreenshots runs at the end of Renderer.Draw, when the frame's draw
// list has been fully submitted and the screen holds the finished table.
func (r *Renderer) flushScreenshots(screen *ebiten.Image) {
	if len(r.screenshotQueue) == 0 {
		return
	}
	labels := r.screenshotQueue
	r.screenshotQueue = r.screenshotQueue[:0]

	img := captureFrame(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range labels {
		path := filepath.Join(r.ScreenshotDir, stamp+"_"+screenshotName(label)+".png")
		if err := saveScreenshot(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[felt] screenshot: %v\n", err)
		}
	}
}

// captureFrame reads the screen into a straight-alpha image. ReadPixels
// hands back premultiplied RGBA; PNG wants the alpha divided back out.
func captureFrame(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)
	for i := 0; i < len(img.Pix); i += 4 {
		a := img.Pix[i+3]
		if a == 0 || a == 255 {
			continue
		}
		for j := i; j < i+3; j++ {
			img.Pix[j] = uint8(min(int(img.Pix[j])*255/int(a), 255))
		}
	}
	return img
}

func saveScreenshot(path string, img *image.NRGBA) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("screenshot dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// screenshotName makes a label safe to embed in a filename. Empty labels
// become "frame".
func screenshotName(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "frame"
	}
	return strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			return c
		case c == '-', c == '.':
			return c
		}
		return '_'
	}, label)
}
