package sha1

import (
	"encoding/binary"
	"math/bits"
)

const (
	_K0 = 0x5a827999
	_K1 = 0x6ed9eba1
	_K2 = 0x8f1bbcdc
	_K3 = 0xca62c1d6
)

func block(dig *digest, p []byte) {
	var w [80]uint32
	h0, h1, h2, h3, h4 := dig.h[0], dig.h[1], dig.h[2], dig.h[3], dig.h[4]
	for len(p) >= chunk {
		for i := 0; i < 16; i++ {
			w[i] = binary.BigEndian.Uint32(p[4*i:])
		}
		for i := 16; i < 80; i++ {
			w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
		}

		a, b, c, d, e := h0, h1, h2, h3, h4

		// Four 20-iteration phases differing only in the mixing function
		// and the round constant.
		i := 0
		for ; i < 20; i++ {
			f := (b & c) | (^b & d)
			t := bits.RotateLeft32(a, 5) + f + e + w[i] + _K0
			a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
		}
		for ; i < 40; i++ {
			f := b ^ c ^ d
			t := bits.RotateLeft32(a, 5) + f + e + w[i] + _K1
			a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
		}
		for ; i < 60; i++ {
			f := (b & c) | (b & d) | (c & d)
			t := bits.RotateLeft32(a, 5) + f + e + w[i] + _K2
			a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
		}
		for ; i < 80; i++ {
			f := b ^ c ^ d
			t := bits.RotateLeft32(a, 5) + f + e + w[i] + _K3
			a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
		}

		h0 += a
		h1 += b
		h2 += c
		h3 += d
		h4 += e

		p = p[chunk:]
	}

	dig.h[0], dig.h[1], dig.h[2], dig.h[3], dig.h[4] = h0, h1, h2, h3, h4
}
