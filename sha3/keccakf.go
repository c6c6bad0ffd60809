package sha3

import "math/bits"

// keccakF1600 applies the 24-round Keccak-f[1600] permutation to the state.
// Lanes are indexed a[x+5*y] and hold their 64 bits little-endian, so the
// byte at offset i of the 200-byte sponge lives in a[i/8] at bit 8*(i%8).
//
// Round constants are produced on the fly by the degree-8 LFSR with
// polynomial x^8+x^6+x^5+x^4+1: seven taps per round, tap j flipping state
// bit 2^j-1 of lane (0,0).
func keccakF1600(a *[25]uint64) {
	lfsr := byte(0x01)
	for round := 0; round < 24; round++ {
		// theta: XOR each lane with the parities of two columns.
		var c [5]uint64
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d := c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
			for y := 0; y < 25; y += 5 {
				a[y+x] ^= d
			}
		}

		// rho and pi in one pass: walk the 24 non-origin lanes starting at
		// (1,0), rotating each by the triangular offset and dropping it at
		// (y, 2x+3y).
		x, y := 1, 0
		cur := a[x+5*y]
		for t := 0; t < 24; t++ {
			r := ((t + 1) * (t + 2) / 2) % 64
			x, y = y, (2*x+3*y)%5
			cur, a[x+5*y] = a[x+5*y], bits.RotateLeft64(cur, r)
		}

		// chi: combine each lane with the two lanes to its right in the row.
		for y := 0; y < 25; y += 5 {
			var row [5]uint64
			for x := 0; x < 5; x++ {
				row[x] = a[y+x]
			}
			for x := 0; x < 5; x++ {
				a[y+x] = row[x] ^ (^row[(x+1)%5] & row[(x+2)%5])
			}
		}

		// iota: clock the LFSR seven times, flipping bits 0, 1, 3, 7, 15,
		// 31 and 63 of a[0] as directed.
		for j := 0; j < 7; j++ {
			bit := lfsr & 0x01
			if lfsr&0x80 != 0 {
				lfsr = lfsr<<1 ^ 0x71
			} else {
				lfsr <<= 1
			}
			if bit != 0 {
				a[0] ^= 1 << ((1 << j) - 1)
			}
		}
	}
}
