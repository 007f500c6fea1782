package dwt

import (
	"math"
	"math/rand"
	"testing"
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

func maxAbsDiff(a, b [][]float64) float64 {
	var m float64
	for y := range a {
		for x := range a[y] {
			d := math.Abs(a[y][x] - b[y][x])
			if d > m {
				m = d
			}
		}
	}
	return m
}

func TestForwardInverseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	sizes := [][2]int{{32, 32}, {64, 48}, {96, 96}}
	for _, sz := range sizes {
		plane := randomPlane(sz[0], sz[1], rng)
		cA, cH, cV, cD := Forward2D(plane)
		rec := Inverse2D(cA, cH, cV, cD)
		if diff := maxAbsDiff(plane, rec); diff > 1e-5 {
			t.Errorf("size %v: round trip max abs diff %g exceeds 1e-5", sz, diff)
		}
	}
}

func TestForward2DSubbandShape(t *testing.T) {
	plane := randomPlane(64, 96, rand.New(rand.NewSource(1)))
	cA, cH, cV, cD := Forward2D(plane)
	for _, sub := range [][][]float64{cA, cH, cV, cD} {
		if len(sub) != 32 || len(sub[0]) != 48 {
			t.Fatalf("subband shape = %dx%d, want 32x48", len(sub), len(sub[0]))
		}
	}
}

func TestForward1DEnergyPreserved(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	x := make([]float64, 64)
	for i := range x {
		x[i] = rng.Float64()*200 - 100
	}
	out := forward1D(x)

	var inEnergy, outEnergy float64
	for _, v := range x {
		inEnergy += v * v
	}
	for _, v := range out {
		outEnergy += v * v
	}
	if math.Abs(inEnergy-outEnergy) > 1e-6*inEnergy {
		t.Errorf("energy not preserved: in=%g out=%g", inEnergy, outEnergy)
	}
}
