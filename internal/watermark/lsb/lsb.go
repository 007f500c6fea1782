// Package lsb implements the spatial least-significant-bit embedding
// scheme: a from-scratch replacement for the "off-the-shelf steganography
// primitive" the original engine wrapped, sharing the same length-prefixed
// frame as the DCT and DWT schemes.
package lsb

import (
	"image"
	"image/draw"

	"github.com/YannKr/watermarkengine/internal/watermark"
)

// Capacity returns the number of bits an h x w image can carry: one bit per
// color byte (R, G, B) of every pixel.
func Capacity(h, w int) int {
	return h * w * 3
}

// Embed writes text into the least-significant bit of each R, G, B byte of
// img, in row-major pixel order, as a 32-bit length header followed by the
// payload bits (watermark.FrameBits). If the frame doesn't fit, it is
// silently truncated to the image's capacity — the embedder never errors.
func Embed(img image.Image, text string) *image.NRGBA {
	bits := watermark.FrameBits(text)
	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)

	capacity := Capacity(bounds.Dy(), bounds.Dx())
	if len(bits) > capacity {
		bits = bits[:capacity]
	}

	k := 0
	for y := bounds.Min.Y; y < bounds.Max.Y && k < len(bits); y++ {
		for x := bounds.Min.X; x < bounds.Max.X && k < len(bits); x++ {
			off := out.PixOffset(x, y)
			for c := 0; c < 3 && k < len(bits); c++ {
				out.Pix[off+c] = setLSB(out.Pix[off+c], bits[k])
				k++
			}
		}
	}
	return out
}

// Extract reads back the LSB-embedded text from img. It never errors: an
// image with no watermark, or too small to hold a header, yields "".
func Extract(img image.Image) string {
	bounds := img.Bounds()
	nrgba := image.NewNRGBA(bounds)
	draw.Draw(nrgba, bounds, img, bounds.Min, draw.Src)

	want := watermark.HeaderBits + watermark.MaxPayloadBits
	avail := Capacity(bounds.Dy(), bounds.Dx())
	if avail < watermark.HeaderBits {
		return ""
	}
	if want > avail {
		want = avail
	}

	bits := make([]byte, 0, want)
	k := 0
	for y := bounds.Min.Y; y < bounds.Max.Y && k < want; y++ {
		for x := bounds.Min.X; x < bounds.Max.X && k < want; x++ {
			off := nrgba.PixOffset(x, y)
			for c := 0; c < 3 && k < want; c++ {
				bits = append(bits, nrgba.Pix[off+c]&1)
				k++
			}
		}
	}
	return watermark.DeframeBits(bits)
}

func setLSB(b byte, bit byte) byte {
	return (b &^ 1) | (bit & 1)
}
