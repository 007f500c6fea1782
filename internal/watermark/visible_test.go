package watermark_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/YannKr/watermarkengine/internal/watermark"
)

func solidImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestEmbedVisiblePreservesDimensions(t *testing.T) {
	img := solidImage(200, 150, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	out := watermark.EmbedVisible(img, "copyright", "bottom-right", 0.5)
	if out.Bounds().Dx() != 200 || out.Bounds().Dy() != 150 {
		t.Fatalf("dimensions changed: got %dx%d", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestEmbedVisibleChangesPixels(t *testing.T) {
	img := solidImage(200, 150, color.NRGBA{R: 0, G: 0, B: 0, A: 255})
	out := watermark.EmbedVisible(img, "X", "top-left", 1.0)

	changed := false
	for y := 0; y < 20 && !changed; y++ {
		for x := 0; x < 20; x++ {
			if out.NRGBAAt(x, y) != (color.NRGBA{A: 255}) {
				changed = true
				break
			}
		}
	}
	if !changed {
		t.Error("expected some pixels near top-left to change")
	}
}

func TestEmbedLogoPreservesDimensions(t *testing.T) {
	img := solidImage(300, 200, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	logo := solidImage(64, 64, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	out := watermark.EmbedLogo(img, logo, "center", 0.8, 0.2)
	if out.Bounds().Dx() != 300 || out.Bounds().Dy() != 200 {
		t.Fatalf("dimensions changed: got %dx%d", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestEmbedLogoUnknownPositionFallsBackToBottomRight(t *testing.T) {
	img := solidImage(100, 100, color.NRGBA{R: 0, G: 0, B: 0, A: 255})
	logo := solidImage(20, 20, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	out := watermark.EmbedLogo(img, logo, "nowhere", 1.0, 0.2)

	// 0.2 * 100 = 20px logo with a 20px margin: it covers [60, 80) on both axes.
	px := out.NRGBAAt(70, 70)
	if px.R == 0 && px.G == 0 && px.B == 0 {
		t.Error("expected logo near bottom-right corner for an unrecognized position")
	}
}
