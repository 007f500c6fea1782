package watermark

import "gonum.org/v1/gonum/floats"

// MajorityBit resolves a bit from a slice of sign votes (each 1.0 or 0.0):
// 1 iff strictly more than half of the votes are 1. MajorityVoteChannels
// uses it for the 3-channel cross-check of the DCT and DWT schemes;
// dct.ExtractChannel applies the same strict-majority rule to its six
// per-block position votes on its own.
func MajorityBit(votes []float64) byte {
	if floats.Sum(votes) > float64(len(votes))/2 {
		return 1
	}
	return 0
}

// MajorityVoteChannels combines three per-channel bit slices position-wise
// via majority vote (>=2 of 3 channels agreeing → 1), per spec §4.4 step 3
// / §4.7. Slices are truncated to the shortest channel's length first.
func MajorityVoteChannels(channelBits [3][]byte) []byte {
	minLen := len(channelBits[0])
	for _, cb := range channelBits[1:] {
		if len(cb) < minLen {
			minLen = len(cb)
		}
	}

	out := make([]byte, minLen)
	votes := make([]float64, 3)
	for i := 0; i < minLen; i++ {
		for ch := 0; ch < 3; ch++ {
			votes[ch] = float64(channelBits[ch][i])
		}
		out[i] = MajorityBit(votes)
	}
	return out
}
