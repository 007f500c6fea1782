package watermark

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

const logoMargin = 20

// EmbedLogo resizes logo to sizeFraction of img's width (preserving aspect
// ratio), scales its alpha channel by opacity, and composites it onto img at
// one of the five named anchors (default bottom-right, matching the
// original overlay tool's behavior for an unrecognized position).
func EmbedLogo(img, logo image.Image, position string, opacity, sizeFraction float64) *image.NRGBA {
	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)

	logoBounds := logo.Bounds()
	logoWidth := int(float64(bounds.Dx()) * sizeFraction)
	if logoWidth < 1 {
		logoWidth = 1
	}
	logoHeight := int(float64(logoBounds.Dy()) * (float64(logoWidth) / float64(logoBounds.Dx())))
	if logoHeight < 1 {
		logoHeight = 1
	}

	resized := image.NewNRGBA(image.Rect(0, 0, logoWidth, logoHeight))
	xdraw.CatmullRom.Scale(resized, resized.Bounds(), logo, logoBounds, xdraw.Src, nil)

	if opacity < 1.0 {
		scaleAlpha(resized, opacity)
	}

	x, y := anchorPosition(position, "bottom-right", bounds.Dx(), bounds.Dy(), logoWidth, logoHeight, logoMargin)
	dstRect := image.Rect(x, y, x+logoWidth, y+logoHeight)
	draw.Draw(out, dstRect, resized, image.Point{}, draw.Over)
	return out
}

func scaleAlpha(img *image.NRGBA, opacity float64) {
	if opacity < 0 {
		opacity = 0
	}
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = uint8(float64(img.Pix[i]) * opacity)
	}
}
