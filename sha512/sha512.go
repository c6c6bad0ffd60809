// Package sha512 implements the SHA-384, SHA-512, SHA-512/224, SHA-512/256
// and generic SHA-512/t hash algorithms as defined in FIPS 180-4.
//
// All variants run the same compression function and differ only in their
// initial state and in how much of the final state they emit. The SHA-512/t
// initial state is derived at construction time with the IV generation
// function from the standard.
package sha512

import (
	"encoding/binary"
	"hash"
	"strconv"

	"github.com/pkg/errors"
)

const (
	// Size is the size of a SHA-512 checksum in bytes.
	Size = 64

	// Size384 is the size of a SHA-384 checksum in bytes.
	Size384 = 48

	// Size224 is the size of a SHA-512/224 checksum in bytes.
	Size224 = 28

	// Size256 is the size of a SHA-512/256 checksum in bytes.
	Size256 = 32

	// BlockSize is the block size of all the SHA-512 variants in bytes.
	BlockSize = 128

	chunk = BlockSize
)

var iv512 = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

var iv384 = [8]uint64{
	0xcbbb9d5dc1059ed8, 0x629a292a367cd507, 0x9159015a3070dd17, 0x152fecd8f70e5939,
	0x67332667ffc00b31, 0x8eb44a8768581511, 0xdb0c2e0d64f98fa7, 0x47b5481dbefa4fa4,
}

var iv512_224 = [8]uint64{
	0x8c3d37c819544da2, 0x73e1996689dcd4d6, 0x1dfab7ae32ff9c82, 0x679dd514582f9fcf,
	0x0f6d2b697bd44da8, 0x77e36f7304c48942, 0x3f9d85a86a1d36c8, 0x1112e6ad91d692a1,
}

var iv512_256 = [8]uint64{
	0x22312194fc2bf72c, 0x9f555fa3c84c64c2, 0x2393b86b6f53b151, 0x963877195940eabd,
	0x96283ee2a88effe3, 0xbe5e1e2553863992, 0x2b0199fc2c85b8aa, 0x0eb72ddc81c52ca2,
}

// ivGenMask, XORed into the SHA-512 initial state, yields the seed state of
// the SHA-512/t IV generation function (FIPS 180-4, section 5.3.6).
const ivGenMask = 0xa5a5a5a5a5a5a5a5

// ErrInvalidT reports a SHA-512/t truncation length outside the domain
// defined by the standard: 4 <= t <= 2048, t != 384.
var ErrInvalidT = errors.New("sha512: invalid truncation length")

// digest represents the partial evaluation of a checksum.
type digest struct {
	h    [8]uint64
	x    [chunk]byte
	nx   int
	len  uint64
	iv   [8]uint64 // initial state, restored by Reset
	size int       // bytes of final state emitted by Sum
}

func newDigest(iv [8]uint64, size int) *digest {
	d := &digest{iv: iv, size: size}
	d.Reset()
	return d
}

// New returns a new hash.Hash computing the SHA-512 checksum.
func New() hash.Hash { return newDigest(iv512, Size) }

// New384 returns a new hash.Hash computing the SHA-384 checksum.
func New384() hash.Hash { return newDigest(iv384, Size384) }

// New512_224 returns a new hash.Hash computing the SHA-512/224 checksum.
func New512_224() hash.Hash { return newDigest(iv512_224, Size224) }

// New512_256 returns a new hash.Hash computing the SHA-512/256 checksum.
func New512_256() hash.Hash { return newDigest(iv512_256, Size256) }

// New512t returns a new hash.Hash computing the SHA-512/t checksum, the
// leading t bits of a SHA-512 computation run from a derived initial state.
// t must lie in [4, 2048] and differ from 384 (use New384 for that width);
// anything else returns an error wrapping ErrInvalidT.
//
// Sum emits ceil(t/8) bytes, capped at the full 64: when t is not a
// multiple of 8 the final byte carries the trailing bits of the prefix.
func New512t(t int) (hash.Hash, error) {
	switch {
	case t == 384:
		return nil, errors.Wrap(ErrInvalidT, "t=384 is reserved for SHA-384")
	case t < 4 || t > 2048:
		return nil, errors.Wrapf(ErrInvalidT, "t=%d", t)
	}
	return newDigest(ivFor(t), sizeT(t)), nil
}

func sizeT(t int) int {
	n := (t + 7) / 8
	if n > Size {
		n = Size
	}
	return n
}

// ivFor derives the SHA-512/t initial state: hash the ASCII label
// "SHA-512/t" (t in decimal) from the masked seed state and use the eight
// words of the result directly.
func ivFor(t int) [8]uint64 {
	gen := digest{size: Size}
	for i, w := range iv512 {
		gen.iv[i] = w ^ ivGenMask
	}
	gen.Reset()
	gen.Write([]byte("SHA-512/" + strconv.Itoa(t)))
	return gen.finalize()
}

func (d *digest) Reset() {
	d.h = d.iv
	d.nx = 0
	d.len = 0
}

func (d *digest) Size() int { return d.size }

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
	return append(in, sum[:d0.size]...)
}

// finalize pads the message and returns the final state words.
func (d *digest) finalize() [8]uint64 {
	len := d.len
	// Padding: add a 1 bit and 0 bits until 112 bytes mod 128.
	var tmp [chunk + 16]byte
	tmp[0] = 0x80
	var t uint64
	if len%128 < 112 {
		t = 112 - len%128
	} else {
		t = 128 + 112 - len%128
	}

	// Length in bits, as a 16-byte field. The upper half stays zero: the
	// byte count is kept in a uint64.
	len <<= 3
	padlen := tmp[:t+16]
	binary.BigEndian.PutUint64(padlen[t+8:], len)
	d.Write(padlen)

	if d.nx != 0 {
		panic("d.nx != 0")
	}
	return d.h
}

func (d *digest) checkSum() [Size]byte {
	h := d.finalize()
	var out [Size]byte
	for i, w := range h {
		binary.BigEndian.PutUint64(out[8*i:], w)
	}
	return out
}

// Sum512 returns the SHA-512 checksum of data.
func Sum512(data []byte) [Size]byte {
	d := newDigest(iv512, Size)
	d.Write(data)
	return d.checkSum()
}

// Sum384 returns the SHA-384 checksum of data.
func Sum384(data []byte) [Size384]byte {
	d := newDigest(iv384, Size384)
	d.Write(data)
	sum := d.checkSum()
	return [Size384]byte(sum[:Size384])
}

// Sum512_224 returns the SHA-512/224 checksum of data.
func Sum512_224(data []byte) [Size224]byte {
	d := newDigest(iv512_224, Size224)
	d.Write(data)
	sum := d.checkSum()
	return [Size224]byte(sum[:Size224])
}

// Sum512_256 returns the SHA-512/256 checksum of data.
func Sum512_256(data []byte) [Size256]byte {
	d := newDigest(iv512_256, Size256)
	d.Write(data)
	sum := d.checkSum()
	return [Size256]byte(sum[:Size256])
}
