package sha3

import "io"

// Shake rates in bytes: capacity is 256 bits for SHAKE128 and 512 bits for
// SHAKE256, independent of how much output the caller squeezes.
const (
	rateShake128 = 168
	rateShake256 = 136
)

// ShakeHash is an extendable-output function: absorb with Write, then
// squeeze any number of bytes with Read. Reads are one continuous stream,
// so a 32-byte output is a prefix of the 64-byte output for the same input.
// Writing after the first Read panics; Reset starts over.
type ShakeHash interface {
	io.Writer
	io.Reader

	// Clone returns a copy of the ShakeHash in its current state.
	Clone() ShakeHash

	// Reset returns the ShakeHash to its initial state.
	Reset()
}

func (d *digest) Clone() ShakeHash {
	dup := *d
	return &dup
}

// NewShake128 returns a new SHAKE128 extendable-output function with a
// 128-bit security level. Its Sum method emits 32 bytes.
func NewShake128() ShakeHash {
	return &digest{rate: rateShake128, outputLen: 32, dsbyte: dsbyteShake}
}

// NewShake256 returns a new SHAKE256 extendable-output function with a
// 256-bit security level. Its Sum method emits 64 bytes.
func NewShake256() ShakeHash {
	return &digest{rate: rateShake256, outputLen: 64, dsbyte: dsbyteShake}
}

// ShakeSum128 writes the SHAKE128 digest of data into hash, using
// len(hash) as the output length.
func ShakeSum128(hash, data []byte) {
	d := digest{rate: rateShake128, dsbyte: dsbyteShake}
	d.Write(data)
	d.Read(hash)
}

// ShakeSum256 writes the SHAKE256 digest of data into hash, using
// len(hash) as the output length.
func ShakeSum256(hash, data []byte) {
	d := digest{rate: rateShake256, dsbyte: dsbyteShake}
	d.Write(data)
	d.Read(hash)
}
