package codec

import "github.com/cockroachdb/errors"

const (
	// Top10BlockSize is the size of the encrypted leaderboard block.
	Top10BlockSize = 2 * Top10HalfSize
	// Top10HalfSize is the size of one leaderboard list inside the block.
	Top10HalfSize = 344

	top10SeedLow  int16 = 0x15
	top10SeedHigh int16 = 0x2637
	top10Step     int16 = 0xD3D
	top10Mul      int16 = 0x1F
)

// CryptTop10 encrypts or decrypts a leaderboard block. The keystream only
// depends on the byte position, so applying it twice restores the input.
// The input is not modified.
func CryptTop10(block []byte) ([]byte, error) {
	if len(block) != Top10BlockSize {
		return nil, errors.Wrapf(ErrInvalidBlockSize, "got %d bytes, want %d", len(block), Top10BlockSize)
	}

	// 16-bit signed accumulators; overflow wraps as it does in the game.
	k1, k2 := top10SeedLow, top10SeedHigh
	out := make([]byte, len(block))
	for i, b := range block {
		out[i] = b ^ byte(k1)
		k2 += (k1 % top10Step) * top10Step
		k1 = k2*top10Mul + top10Step
	}
	return out, nil
}
