package dct

import "gonum.org/v1/gonum/floats"

// BlockSize is the fixed 8x8 DCT block used for embedding (spec §2).
const BlockSize = 8

// Strength is the fixed embedding strength α added to each mid-frequency
// coefficient's magnitude (spec §4.3).
const Strength = 80.0

// Positions are the six mid-frequency (row, col) coefficients, 0-indexed,
// that redundantly carry each embedded bit (spec §3).
var Positions = [6][2]int{{2, 3}, {3, 2}, {2, 2}, {3, 3}, {1, 2}, {2, 1}}

// Capacity returns the number of 8x8 blocks available in an h x w plane
// (both already truncated to multiples of BlockSize).
func Capacity(h, w int) int {
	return (h / BlockSize) * (w / BlockSize)
}

// EmbedChannel embeds bits (0/1 values) into plane's 8x8 blocks, one bit
// per block in row-major order, absorbing the bit into the sign of each of
// the six mid-frequency coefficients (spec §4.3 step 4). plane must already
// have dimensions that are multiples of BlockSize. Returns a new plane; the
// input is not modified.
func EmbedChannel(plane [][]float64, bits []byte) [][]float64 {
	h := len(plane)
	w := len(plane[0])
	out := make([][]float64, h)
	for y := range out {
		out[y] = append([]float64(nil), plane[y]...)
	}

	k := 0
	for i := 0; i+BlockSize <= h; i += BlockSize {
		for j := 0; j+BlockSize <= w; j += BlockSize {
			if k >= len(bits) {
				return out
			}
			block := extractBlock(out, i, j)
			d := Forward2D(block)

			bit := bits[k]
			for _, pos := range Positions {
				r, c := pos[0], pos[1]
				mag := d[r][c]
				if mag < 0 {
					mag = -mag
				}
				if bit == 1 {
					d[r][c] = mag + Strength
				} else {
					d[r][c] = -(mag + Strength)
				}
			}

			rec := Inverse2D(d)
			putBlock(out, rec, i, j)
			k++
		}
	}
	return out
}

// ExtractChannel reads back up to maxBits bits from plane's 8x8 blocks,
// one bit per block, by majority-voting the signs of the six embedding
// positions within each block (spec §4.4 steps 1-2). plane must already
// have dimensions that are multiples of BlockSize.
func ExtractChannel(plane [][]float64, maxBits int) []byte {
	h := len(plane)
	w := len(plane[0])
	bits := make([]byte, 0, maxBits)

	for i := 0; i+BlockSize <= h; i += BlockSize {
		for j := 0; j+BlockSize <= w; j += BlockSize {
			if len(bits) >= maxBits {
				return bits
			}
			block := extractBlock(plane, i, j)
			d := Forward2D(block)

			votes := make([]float64, len(Positions))
			for idx, pos := range Positions {
				if d[pos[0]][pos[1]] > 0 {
					votes[idx] = 1
				}
			}
			if floats.Sum(votes) > float64(len(votes))/2 {
				bits = append(bits, 1)
			} else {
				bits = append(bits, 0)
			}
		}
	}
	return bits
}

func extractBlock(plane [][]float64, row, col int) [][]float64 {
	block := make([][]float64, BlockSize)
	for i := 0; i < BlockSize; i++ {
		block[i] = append([]float64(nil), plane[row+i][col:col+BlockSize]...)
	}
	return block
}

func putBlock(plane [][]float64, block [][]float64, row, col int) {
	for i := 0; i < BlockSize; i++ {
		copy(plane[row+i][col:col+BlockSize], block[i])
	}
}
