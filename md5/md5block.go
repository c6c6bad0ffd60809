package md5

import (
	"encoding/binary"
	"math/bits"
)

// _T holds the sine-derived additive constants: _T[i] = floor(2^32 *
// abs(sin(i+1))).
var _T = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

// Per-round rotation amounts.
var (
	shift1 = [4]int{7, 12, 17, 22}
	shift2 = [4]int{5, 9, 14, 20}
	shift3 = [4]int{4, 11, 16, 23}
	shift4 = [4]int{6, 10, 15, 21}
)

func block(dig *digest, p []byte) {
	a0, b0, c0, d0 := dig.s[0], dig.s[1], dig.s[2], dig.s[3]
	var x [16]uint32
	for len(p) >= chunk {
		for i := 0; i < 16; i++ {
			x[i] = binary.LittleEndian.Uint32(p[4*i:])
		}

		a, b, c, d := a0, b0, c0, d0

		// Round 1: F, words in order.
		for i := 0; i < 16; i++ {
			f := (b & c) | (^b & d)
			a = b + bits.RotateLeft32(a+f+x[i]+_T[i], shift1[i&3])
			a, b, c, d = d, a, b, c
		}
		// Round 2: G, word order 1+5i mod 16.
		for i := 0; i < 16; i++ {
			g := (b & d) | (c & ^d)
			a = b + bits.RotateLeft32(a+g+x[(1+5*i)&15]+_T[16+i], shift2[i&3])
			a, b, c, d = d, a, b, c
		}
		// Round 3: H, word order 5+3i mod 16.
		for i := 0; i < 16; i++ {
			h := b ^ c ^ d
			a = b + bits.RotateLeft32(a+h+x[(5+3*i)&15]+_T[32+i], shift3[i&3])
			a, b, c, d = d, a, b, c
		}
		// Round 4: I, word order 7i mod 16.
		for i := 0; i < 16; i++ {
			j := c ^ (b | ^d)
			a = b + bits.RotateLeft32(a+j+x[(7*i)&15]+_T[48+i], shift4[i&3])
			a, b, c, d = d, a, b, c
		}

		a0 += a
		b0 += b
		c0 += c
		d0 += d

		p = p[chunk:]
	}

	dig.s[0], dig.s[1], dig.s[2], dig.s[3] = a0, b0, c0, d0
}
