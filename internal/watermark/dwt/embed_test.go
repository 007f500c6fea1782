package dwt_test

import (
	"math/rand"
	"testing"

	"github.com/YannKr/watermarkengine/internal/watermark/dwt"
)

func randomPlane(h, w int, rng *rand.Rand) [][]float64 {
	p := make([][]float64, h)
	for y := range p {
		p[y] = make([]float64, w)
		for x := range p[y] {
			p[y][x] = rng.Float64() * 255
		}
	}
	return p
}

func TestEmbedExtractRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	plane := randomPlane(96, 96, rng)
	bits := []byte{1, 0, 1, 1, 0, 0, 1, 0, 1, 1}

	embedded := dwt.EmbedChannel(plane, bits)
	if len(embedded) != len(plane) || len(embedded[0]) != len(plane[0]) {
		t.Fatalf("embedded shape = %dx%d, want %dx%d", len(embedded), len(embedded[0]), len(plane), len(plane[0]))
	}

	got := dwt.ExtractChannel(embedded, len(bits))
	for i := range bits {
		if got[i] != bits[i] {
			t.Errorf("bit %d: got %d, want %d", i, got[i], bits[i])
		}
	}
}

func TestEmbedPreservesOddDimensions(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	plane := randomPlane(97, 65, rng)
	bits := []byte{1, 0, 1}

	embedded := dwt.EmbedChannel(plane, bits)
	if len(embedded) != 97 || len(embedded[0]) != 65 {
		t.Fatalf("embedded shape = %dx%d, want 97x65", len(embedded), len(embedded[0]))
	}
}

func TestCapacity(t *testing.T) {
	got := dwt.Capacity(96, 96)
	if got <= 0 {
		t.Fatalf("Capacity(96,96) = %d, want > 0", got)
	}
}

func TestExtractStopsAtMaxBits(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	plane := randomPlane(120, 120, rng)
	bits := []byte{1, 0, 1, 1}
	embedded := dwt.EmbedChannel(plane, bits)
	got := dwt.ExtractChannel(embedded, 4)
	if len(got) != 4 {
		t.Fatalf("len(got) = %d, want 4", len(got))
	}
}

func TestExtractCapsAtMaxBitsConstant(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	plane := randomPlane(200, 200, rng)
	got := dwt.ExtractChannel(plane, 10000)
	if len(got) > dwt.MaxBits {
		t.Fatalf("len(got) = %d, want <= %d", len(got), dwt.MaxBits)
	}
}
