// Package sha256 implements the SHA-224 and SHA-256 hash algorithms as
// defined in FIPS 180-4. The two share one compression function; SHA-224
// starts from its own initial state and drops the last word of the result.
package sha256

import (
	"encoding/binary"
	"hash"
)

const (
	// Size is the size of a SHA-256 checksum in bytes.
	Size = 32

	// Size224 is the size of a SHA-224 checksum in bytes.
	Size224 = 28

	// BlockSize is the block size of SHA-224 and SHA-256 in bytes.
	BlockSize = 64

	chunk = BlockSize
)

const (
	init0 = 0x6a09e667
	init1 = 0xbb67ae85
	init2 = 0x3c6ef372
	init3 = 0xa54ff53a
	init4 = 0x510e527f
	init5 = 0x9b05688c
	init6 = 0x1f83d9ab
	init7 = 0x5be0cd19

	init0_224 = 0xc1059ed8
	init1_224 = 0x367cd507
	init2_224 = 0x3070dd17
	init3_224 = 0xf70e5939
	init4_224 = 0xffc00b31
	init5_224 = 0x68581511
	init6_224 = 0x64f98fa7
	init7_224 = 0xbefa4fa4
)

// digest represents the partial evaluation of a checksum.
type digest struct {
	h     [8]uint32
	x     [chunk]byte
	nx    int
	len   uint64
	is224 bool
}

func (d *digest) Reset() {
	if d.is224 {
		d.h = [8]uint32{init0_224, init1_224, init2_224, init3_224, init4_224, init5_224, init6_224, init7_224}
	} else {
		d.h = [8]uint32{init0, init1, init2, init3, init4, init5, init6, init7}
	}
	d.nx = 0
	d.len = 0
}

// New returns a new hash.Hash computing the SHA-256 checksum.
func New() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

// New224 returns a new hash.Hash computing the SHA-224 checksum.
func New224() hash.Hash {
	d := &digest{is224: true}
	d.Reset()
	return d
}

func (d *digest) Size() int {
	if d.is224 {
		return Size224
	}
	return Size
}

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (nn int, err error) {
	nn = len(p)
	d.len += uint64(nn)
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == chunk {
			block(d, d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= chunk {
		n := len(p) &^ (chunk - 1)
		block(d, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return
}

// Sum appends the digest to in and returns the result. It finalizes a copy,
// so the caller can keep writing and summing.
func (d *digest) Sum(in []byte) []byte {
	d0 := *d
	sum := d0.checkSum()
	if d0.is224 {
		return append(in, sum[:Size224]...)
	}
	return append(in, sum[:]...)
}

func (d *digest) checkSum() [Size]byte {
	len := d.len
	// Padding: add a 1 bit and 0 bits until 56 bytes mod 64.
	var tmp [chunk + 8]byte
	tmp[0] = 0x80
	var t uint64
	if len%64 < 56 {
		t = 56 - len%64
	} else {
		t = 64 + 56 - len%64
	}

	// Length in bits.
	len <<= 3
	padlen := tmp[:t+8]
	binary.BigEndian.PutUint64(padlen[t:], len)
	d.Write(padlen)

	if d.nx != 0 {
		panic("d.nx != 0")
	}

	var out [Size]byte
	for i, w := range d.h {
		binary.BigEndian.PutUint32(out[4*i:], w)
	}
	return out
}

// Sum256 returns the SHA-256 checksum of data.
func Sum256(data []byte) [Size]byte {
	var d digest
	d.Reset()
	d.Write(data)
	return d.checkSum()
}

// Sum224 returns the SHA-224 checksum of data.
func Sum224(data []byte) [Size224]byte {
	d := digest{is224: true}
	d.Reset()
	d.Write(data)
	sum := d.checkSum()
	return [Size224]byte(sum[:Size224])
}
