// Package dwt implements a single-level 2D Daubechies-4 discrete wavelet
// transform, used by the dwt embedding scheme to split a channel plane into
// an approximation subband (cA) and three detail subbands (cH, cV, cD).
package dwt

const tapLen = 8

// db4Low is the Daubechies-4 (8-tap) orthonormal scaling filter.
var db4Low = [tapLen]float64{
	-0.010597401785069032,
	0.0328830116668852,
	0.030841381835560764,
	-0.18703481171909309,
	-0.027983769416859854,
	0.6308807679298589,
	0.7148465705529157,
	0.23037781330885523,
}

// db4High is the matching wavelet (highpass) filter, derived from db4Low by
// the standard quadrature-mirror relation g[m] = (-1)^m * h[L-1-m]. Together
// the two filters form an orthonormal analysis/synthesis pair: applied as a
// circular (periodized) filter bank, their own transpose is an exact inverse
// for any even n >= 2*tapLen, which is what Forward2D/Inverse2D rely on
// instead of explicit boundary folding.
var db4High = func() [tapLen]float64 {
	var g [tapLen]float64
	for m := 0; m < tapLen; m++ {
		v := db4Low[tapLen-1-m]
		if m%2 == 1 {
			v = -v
		}
		g[m] = v
	}
	return g
}()

// forward1D runs one level of analysis on a row/column of even length n,
// returning a single slice of length n: the first half is cA, the second cD.
// Border samples are treated as circular (x[i mod n]) rather than mirrored;
// for an orthonormal filter pair this makes the transform exactly invertible,
// which is the property the embedder's round-trip depends on.
func forward1D(x []float64) []float64 {
	n := len(x)
	half := n / 2
	out := make([]float64, n)
	for k := 0; k < half; k++ {
		var a, d float64
		for m := 0; m < tapLen; m++ {
			idx := (2*k + m) % n
			a += db4Low[m] * x[idx]
			d += db4High[m] * x[idx]
		}
		out[k] = a
		out[half+k] = d
	}
	return out
}

// inverse1D is the exact inverse of forward1D: src's first half is cA, second
// half is cD, and the result has length len(src).
func inverse1D(src []float64) []float64 {
	half := len(src) / 2
	n := half * 2
	cA := src[:half]
	cD := src[half:]
	x := make([]float64, n)
	for j := 0; j < n; j++ {
		var sum float64
		for m := 0; m < tapLen; m++ {
			diff := j - m
			idx := ((diff % n) + n) % n
			if idx%2 != 0 {
				continue
			}
			k := idx / 2
			sum += db4Low[m]*cA[k] + db4High[m]*cD[k]
		}
		x[j] = sum
	}
	return x
}

// Forward2D runs one level of separable 2D analysis on plane (H x W, both
// dimensions even), returning the approximation subband cA and the three
// detail subbands cH (horizontal), cV (vertical), cD (diagonal), each
// H/2 x W/2.
func Forward2D(plane [][]float64) (cA, cH, cV, cD [][]float64) {
	h := len(plane)
	w := len(plane[0])

	rowXform := make([][]float64, h)
	for y := 0; y < h; y++ {
		rowXform[y] = forward1D(plane[y])
	}

	half := w / 2
	full := make([][]float64, h)
	for y := range full {
		full[y] = rowXform[y]
	}

	colOut := make([][]float64, h)
	for y := range colOut {
		colOut[y] = make([]float64, w)
	}
	for x := 0; x < w; x++ {
		col := make([]float64, h)
		for y := 0; y < h; y++ {
			col[y] = full[y][x]
		}
		xformed := forward1D(col)
		for y := 0; y < h; y++ {
			colOut[y][x] = xformed[y]
		}
	}

	hHalf := h / 2
	cA = makeGrid(hHalf, half)
	cH = makeGrid(hHalf, half)
	cV = makeGrid(hHalf, half)
	cD = makeGrid(hHalf, half)
	for y := 0; y < hHalf; y++ {
		for x := 0; x < half; x++ {
			cA[y][x] = colOut[y][x]
			cH[y][x] = colOut[y][half+x]
			cV[y][x] = colOut[hHalf+y][x]
			cD[y][x] = colOut[hHalf+y][half+x]
		}
	}
	return
}

// Inverse2D reconstructs a plane from the four subbands produced by
// Forward2D. All four subbands must share the same shape.
func Inverse2D(cA, cH, cV, cD [][]float64) [][]float64 {
	hHalf := len(cA)
	half := len(cA[0])
	h := hHalf * 2
	w := half * 2

	colOut := makeGrid(h, w)
	for y := 0; y < hHalf; y++ {
		for x := 0; x < half; x++ {
			colOut[y][x] = cA[y][x]
			colOut[y][half+x] = cH[y][x]
			colOut[hHalf+y][x] = cV[y][x]
			colOut[hHalf+y][half+x] = cD[y][x]
		}
	}

	rowXform := makeGrid(h, w)
	for x := 0; x < w; x++ {
		col := make([]float64, h)
		for y := 0; y < h; y++ {
			col[y] = colOut[y][x]
		}
		xformed := inverse1D(col)
		for y := 0; y < h; y++ {
			rowXform[y][x] = xformed[y]
		}
	}

	out := makeGrid(h, w)
	for y := 0; y < h; y++ {
		out[y] = inverse1D(rowXform[y])
	}
	return out
}

func makeGrid(h, w int) [][]float64 {
	g := make([][]float64, h)
	for i := range g {
		g[i] = make([]float64, w)
	}
	return g
}
