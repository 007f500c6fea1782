package watermark

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/stat"
)

// JPEGRoundTrip re-encodes img as JPEG at the given quality and decodes it
// back, simulating the lossy re-compression a watermarked image commonly
// survives in transit.
func JPEGRoundTrip(img image.Image, quality int) (image.Image, error) {
	encoded, err := EncodeJPEG(img, quality)
	if err != nil {
		return nil, err
	}
	return jpeg.Decode(bytes.NewReader(encoded))
}

// CenterCrop crops the central fraction x fraction region of img.
func CenterCrop(img image.Image, fraction float64) *image.NRGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	cropW := maxInt(1, int(float64(w)*fraction))
	cropH := maxInt(1, int(float64(h)*fraction))
	x0 := bounds.Min.X + (w-cropW)/2
	y0 := bounds.Min.Y + (h-cropH)/2

	out := image.NewNRGBA(image.Rect(0, 0, cropW, cropH))
	draw.Draw(out, out.Bounds(), img, image.Point{X: x0, Y: y0}, draw.Src)
	return out
}

// AdjustBrightness multiplies every RGB sample by k, clamping to [0, 255].
func AdjustBrightness(img image.Image, k float64) *image.NRGBA {
	p := PlanesFromImage(img)
	adjustPlanes(p, func(v float64) float64 { return k * v })
	return p.ToImage()
}

// AdjustContrast scales every RGB sample's distance from mid-gray (128) by
// k, clamping to [0, 255].
func AdjustContrast(img image.Image, k float64) *image.NRGBA {
	p := PlanesFromImage(img)
	adjustPlanes(p, func(v float64) float64 { return 128 + k*(v-128) })
	return p.ToImage()
}

func adjustPlanes(p *Planes, f func(float64) float64) {
	for ch := 0; ch < 3; ch++ {
		plane := p.Channel(ch)
		for y := range plane {
			for x := range plane[y] {
				plane[y][x] = f(plane[y][x])
			}
		}
	}
}

// Rotate rotates img by degrees about its center onto a same-size canvas,
// filling exposed corners white and resampling with bilinear interpolation.
func Rotate(img image.Image, degrees float64) *image.NRGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	theta := degrees * math.Pi / 180
	cos, sin := math.Cos(theta), math.Sin(theta)
	cx, cy := float64(w)/2, float64(h)/2

	m := f64.Aff3{
		cos, -sin, cx - cos*cx + sin*cy,
		sin, cos, cy - sin*cx - cos*cy,
	}
	xdraw.BiLinear.Transform(dst, m, img, bounds, xdraw.Over, nil)
	return dst
}

// ScaleRoundTrip downscales img by factor, then upscales the result back to
// img's original size. golang.org/x/image/draw has no kernel literally
// named Lanczos; CatmullRom, its highest-order cubic resampler, is used as
// the idiomatic substitute (see DESIGN.md).
func ScaleRoundTrip(img image.Image, factor float64) *image.NRGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	smallW := maxInt(1, int(float64(w)*factor))
	smallH := maxInt(1, int(float64(h)*factor))

	small := image.NewNRGBA(image.Rect(0, 0, smallW, smallH))
	xdraw.CatmullRom.Scale(small, small.Bounds(), img, bounds, xdraw.Src, nil)

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(out, out.Bounds(), small, small.Bounds(), xdraw.Src, nil)
	return out
}

// TextAccuracy scores how much of extracted matches original, character by
// character up to len(original), as a percentage in [0, 100]. Either string
// empty yields 0, matching the original robustness harness.
func TextAccuracy(original, extracted string) float64 {
	if original == "" || extracted == "" {
		return 0
	}
	matches := make([]float64, len(original))
	for i := range original {
		if i < len(extracted) && extracted[i] == original[i] {
			matches[i] = 1
		}
	}
	return stat.Mean(matches, nil) * 100
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
