package watermark

import (
	"image"
	"image/draw"
	"math"
)

// Planes is a triple of equal-sized float64 matrices, one per RGB channel,
// shape (H, W). It is the engine's working representation of a decoded
// image, matching spec §3's "Pixel Plane" data model.
type Planes struct {
	H, W    int
	R, G, B [][]float64
}

// PlanesFromImage extracts full-precision RGB planes from img. Alpha is
// discarded; all embedding schemes in this engine operate on opaque RGB.
func PlanesFromImage(img image.Image) *Planes {
	bounds := img.Bounds()
	h, w := bounds.Dy(), bounds.Dx()

	nrgba := image.NewNRGBA(bounds)
	draw.Draw(nrgba, bounds, img, bounds.Min, draw.Src)

	p := &Planes{H: h, W: w, R: makeGrid(h, w), G: makeGrid(h, w), B: makeGrid(h, w)}
	minX, minY := nrgba.Rect.Min.X, nrgba.Rect.Min.Y
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := nrgba.PixOffset(minX+x, minY+y)
			p.R[y][x] = float64(nrgba.Pix[off])
			p.G[y][x] = float64(nrgba.Pix[off+1])
			p.B[y][x] = float64(nrgba.Pix[off+2])
		}
	}
	return p
}

// ToImage clamps every sample to [0, 255] and rasterizes the planes back
// into an opaque *image.NRGBA. This is the "clamp + encode" tail of the
// embed pipeline (spec §2 data flow).
func (p *Planes) ToImage() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, p.W, p.H))
	for y := 0; y < p.H; y++ {
		for x := 0; x < p.W; x++ {
			off := out.PixOffset(x, y)
			out.Pix[off] = clampU8(p.R[y][x])
			out.Pix[off+1] = clampU8(p.G[y][x])
			out.Pix[off+2] = clampU8(p.B[y][x])
			out.Pix[off+3] = 255
		}
	}
	return out
}

// TruncatedTo returns a view of p with H and W each truncated down to the
// largest multiple of n, per spec §3's DCT block-alignment rule. The
// returned planes share no backing storage with p.
func (p *Planes) TruncatedTo(n int) *Planes {
	h := (p.H / n) * n
	w := (p.W / n) * n
	return p.Cropped(h, w)
}

// Cropped returns a new Planes holding the top-left h x w region of p.
func (p *Planes) Cropped(h, w int) *Planes {
	out := &Planes{H: h, W: w, R: makeGrid(h, w), G: makeGrid(h, w), B: makeGrid(h, w)}
	for y := 0; y < h; y++ {
		copy(out.R[y], p.R[y][:w])
		copy(out.G[y], p.G[y][:w])
		copy(out.B[y], p.B[y][:w])
	}
	return out
}

// Channel returns channel index ch (0=R, 1=G, 2=B).
func (p *Planes) Channel(ch int) [][]float64 {
	switch ch {
	case 0:
		return p.R
	case 1:
		return p.G
	default:
		return p.B
	}
}

// SetChannel replaces channel index ch (0=R, 1=G, 2=B) with plane.
func (p *Planes) SetChannel(ch int, plane [][]float64) {
	switch ch {
	case 0:
		p.R = plane
	case 1:
		p.G = plane
	default:
		p.B = plane
	}
}

func makeGrid(h, w int) [][]float64 {
	g := make([][]float64, h)
	for i := range g {
		g[i] = make([]float64, w)
	}
	return g
}

func clampU8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}
