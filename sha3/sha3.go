// Package sha3 implements the Keccak sponge family: the SHA-3 fixed-output
// hashes, the SHAKE extendable-output functions, and the legacy pre-NIST
// Keccak variants.
//
// All variants share one sponge over the keccak-f[1600] permutation and
// differ only in rate, output length and domain separation suffix.
package sha3

import "encoding/binary"

const (
	// stateLen is the sponge width in bytes: 1600 bits.
	stateLen = 200

	// Domain separation suffixes. The suffix carries the two NIST domain
	// bits (or none, for legacy Keccak) followed by the first 1 of the
	// pad10*1 padding.
	dsbyteSHA3   = 0x06
	dsbyteShake  = 0x1f
	dsbyteKeccak = 0x01
)

// digest is a Keccak sponge in either the absorbing or the squeezing phase.
// The zero value is not usable; constructors set the geometry.
type digest struct {
	a         [25]uint64 // sponge state, lane (x,y) at a[x+5*y]
	n         int        // bytes absorbed into (or squeezed out of) the current block
	rate      int        // block size in bytes, 200 - 2*capacity
	outputLen int        // digest size in bytes for fixed-output variants
	dsbyte    byte       // domain separation suffix
	squeezing bool       // true once padding has been applied
}

func (d *digest) Size() int { return d.outputLen }

// BlockSize returns the sponge rate in bytes.
func (d *digest) BlockSize() int { return d.rate }

// Reset returns the sponge to the empty absorbing state.
func (d *digest) Reset() {
	d.a = [25]uint64{}
	d.n = 0
	d.squeezing = false
}

// xorByte XORs b into byte position pos of the state.
func (d *digest) xorByte(b byte, pos int) {
	d.a[pos>>3] ^= uint64(b) << ((pos & 7) << 3)
}

// Write absorbs p into the sponge. It never returns an error. Write panics
// if called after squeezing has started; Reset makes the sponge writable
// again.
func (d *digest) Write(p []byte) (n int, err error) {
	if d.squeezing {
		panic("sha3: Write after Read")
	}
	n = len(p)
	for len(p) > 0 {
		if d.n == 0 && len(p) >= d.rate {
			// Absorb a full block lane-by-lane.
			for i := 0; i < d.rate; i += 8 {
				d.a[i>>3] ^= binary.LittleEndian.Uint64(p[i:])
			}
			p = p[d.rate:]
			keccakF1600(&d.a)
			continue
		}
		m := d.rate - d.n
		if m > len(p) {
			m = len(p)
		}
		for _, b := range p[:m] {
			d.xorByte(b, d.n)
			d.n++
		}
		p = p[m:]
		if d.n == d.rate {
			keccakF1600(&d.a)
			d.n = 0
		}
	}
	return n, nil
}

// padAndPermute closes the absorbing phase: the domain suffix lands on the
// first free byte, the final 1 of pad10*1 on the last byte of the block.
// When the suffix itself occupies the last byte its top padding bit only
// fits in the next block, hence the early permutation.
func (d *digest) padAndPermute() {
	d.xorByte(d.dsbyte, d.n)
	if d.dsbyte&0x80 != 0 && d.n == d.rate-1 {
		keccakF1600(&d.a)
	}
	d.xorByte(0x80, d.rate-1)
	keccakF1600(&d.a)
	d.n = 0
	d.squeezing = true
}

// Read squeezes len(out) bytes from the sponge. The first Read pads and
// ends the absorbing phase. Successive reads continue the same output
// stream, so two reads of n bytes see the same bytes as one read of 2n.
// Read never returns an error.
func (d *digest) Read(out []byte) (n int, err error) {
	if !d.squeezing {
		d.padAndPermute()
	}
	n = len(out)
	for len(out) > 0 {
		if d.n == d.rate {
			keccakF1600(&d.a)
			d.n = 0
		}
		m := d.rate - d.n
		if m > len(out) {
			m = len(out)
		}
		for i := 0; i < m; i++ {
			out[i] = byte(d.a[d.n>>3] >> ((d.n & 7) << 3))
			d.n++
		}
		out = out[m:]
	}
	return n, nil
}

// Sum appends the digest to in and returns the result. Sum squeezes a copy
// of the sponge, so the caller can keep writing and summing.
func (d *digest) Sum(in []byte) []byte {
	dup := *d
	hash := make([]byte, dup.outputLen)
	dup.Read(hash)
	return append(in, hash...)
}
