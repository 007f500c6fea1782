package watermark

import (
	"fmt"
	"strings"

	"github.com/YannKr/watermarkengine/internal/watermark/dct"
	"github.com/YannKr/watermarkengine/internal/watermark/dwt"
	"github.com/YannKr/watermarkengine/internal/watermark/lsb"
)

// Method identifies one of the engine's four embedding schemes.
type Method int

const (
	LSB Method = iota
	DCT
	DWT
	// Robust aliases DCT on both Embed and Extract. The original engine
	// never actually combined DCT and DWT under this name; this keeps the
	// same pass-through rather than inventing a new, unverified scheme.
	Robust
)

func (m Method) String() string {
	switch m {
	case LSB:
		return "lsb"
	case DCT:
		return "dct"
	case DWT:
		return "dwt"
	case Robust:
		return "robust"
	default:
		return "unknown"
	}
}

// ParseMethod parses a method name (case-insensitive). An unrecognized name
// is a fatal input error, per spec: embedding with an unknown method must
// fail rather than silently pick a default.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lsb":
		return LSB, nil
	case "dct":
		return DCT, nil
	case "dwt":
		return DWT, nil
	case "robust":
		return Robust, nil
	default:
		return 0, fmt.Errorf("unknown watermark method %q", s)
	}
}

// Embed decodes imgBytes, embeds text using the given method, and re-encodes
// the result as PNG. For DCT, DWT and Robust, if the image is too small to
// hold the framed text, Embed returns imgBytes unchanged rather than
// erroring; LSB instead truncates the frame to the image's capacity (see
// lsb.Embed).
func Embed(imgBytes []byte, text string, m Method) ([]byte, error) {
	img, err := DecodeImage(imgBytes)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	switch m {
	case LSB:
		out := lsb.Embed(img, text)
		return EncodePNG(out)

	case DCT:
		planes := PlanesFromImage(img).TruncatedTo(dct.BlockSize)
		bits := FrameBits(text)
		if len(bits) > dct.Capacity(planes.H, planes.W) {
			return imgBytes, nil
		}
		embedded := mapChannels(func(ch int) [][]float64 {
			return dct.EmbedChannel(planes.Channel(ch), bits)
		})
		for ch := 0; ch < 3; ch++ {
			planes.SetChannel(ch, embedded[ch])
		}
		return EncodePNG(planes.ToImage())

	case DWT:
		planes := PlanesFromImage(img)
		bits := FrameBits(text)
		if len(bits) > dwt.Capacity(planes.H, planes.W) {
			return imgBytes, nil
		}
		embedded := mapChannels(func(ch int) [][]float64 {
			return dwt.EmbedChannel(planes.Channel(ch), bits)
		})
		for ch := 0; ch < 3; ch++ {
			planes.SetChannel(ch, embedded[ch])
		}
		return EncodePNG(planes.ToImage())

	case Robust:
		return Embed(imgBytes, text, DCT)

	default:
		return nil, fmt.Errorf("unknown watermark method %q", m)
	}
}

// Extract decodes imgBytes and recovers text embedded with the given
// method. It never errors on absent or malformed watermarks — it returns
// the empty string instead, matching DeframeBits' contract.
func Extract(imgBytes []byte, m Method) (string, error) {
	img, err := DecodeImage(imgBytes)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	switch m {
	case LSB:
		return lsb.Extract(img), nil

	case DCT:
		planes := PlanesFromImage(img).TruncatedTo(dct.BlockSize)
		maxBits := dct.Capacity(planes.H, planes.W)
		channelBits := mapChannels(func(ch int) []byte {
			return dct.ExtractChannel(planes.Channel(ch), maxBits)
		})
		return DeframeBits(MajorityVoteChannels(channelBits)), nil

	case DWT:
		planes := PlanesFromImage(img)
		channelBits := mapChannels(func(ch int) []byte {
			return dwt.ExtractChannel(planes.Channel(ch), dwt.MaxBits)
		})
		return DeframeBits(MajorityVoteChannels(channelBits)), nil

	case Robust:
		return Extract(imgBytes, DCT)

	default:
		return "", fmt.Errorf("unknown watermark method %q", m)
	}
}
