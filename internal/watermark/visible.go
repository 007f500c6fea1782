package watermark

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const visibleMargin = 10

// EmbedVisible overlays text onto img as a semi-transparent white label,
// anchored to one of the five named positions (top-left, top-right,
// bottom-left, bottom-right, center; anything else falls back to
// top-left). opacity is clamped to [0, 1]. This is a thin raster compositing
// operation, not part of the invisible-watermarking core.
func EmbedVisible(img image.Image, text, position string, opacity float64) *image.NRGBA {
	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)

	face := basicfont.Face7x13
	textWidth := font.MeasureString(face, text).Ceil()
	textHeight := face.Metrics().Height.Ceil()
	ascent := face.Metrics().Ascent.Ceil()

	x, y := anchorPosition(position, "top-left", bounds.Dx(), bounds.Dy(), textWidth, textHeight, visibleMargin)

	d := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: clampAlpha(opacity)}),
		Face: face,
		Dot:  fixed.P(x, y+ascent),
	}
	d.DrawString(text)
	return out
}

// anchorPosition resolves the top-left corner of a contentW x contentH box
// inside an imgW x imgH canvas for one of the five named anchors, the
// shared layout scheme of both EmbedVisible and EmbedLogo. An unrecognized
// position falls back to defaultPosition.
func anchorPosition(position, defaultPosition string, imgW, imgH, contentW, contentH, margin int) (int, int) {
	switch position {
	case "top-left":
		return margin, margin
	case "top-right":
		return imgW - contentW - margin, margin
	case "bottom-left":
		return margin, imgH - contentH - margin
	case "bottom-right":
		return imgW - contentW - margin, imgH - contentH - margin
	case "center":
		return (imgW - contentW) / 2, (imgH - contentH) / 2
	default:
		return anchorPosition(defaultPosition, defaultPosition, imgW, imgH, contentW, contentH, margin)
	}
}

func clampAlpha(opacity float64) uint8 {
	a := int(opacity * 255)
	if a < 0 {
		a = 0
	}
	if a > 255 {
		a = 255
	}
	return uint8(a)
}
