package sha3

import "hash"

// Sponge rates in bytes: (1600 - 2*capacity) / 8, with the capacity equal
// to twice the digest length for the fixed-output variants.
const (
	rate224 = 144
	rate256 = 136
	rate384 = 104
	rate512 = 72
)

// New224 returns a new hash.Hash computing the SHA3-224 digest.
func New224() hash.Hash {
	return &digest{rate: rate224, outputLen: 28, dsbyte: dsbyteSHA3}
}

// New256 returns a new hash.Hash computing the SHA3-256 digest.
func New256() hash.Hash {
	return &digest{rate: rate256, outputLen: 32, dsbyte: dsbyteSHA3}
}

// New384 returns a new hash.Hash computing the SHA3-384 digest.
func New384() hash.Hash {
	return &digest{rate: rate384, outputLen: 48, dsbyte: dsbyteSHA3}
}

// New512 returns a new hash.Hash computing the SHA3-512 digest.
func New512() hash.Hash {
	return &digest{rate: rate512, outputLen: 64, dsbyte: dsbyteSHA3}
}

// NewLegacyKeccak256 returns a new hash.Hash computing the original
// Keccak-256 digest, which pads with 0x01 instead of SHA-3's 0x06. Use it
// only for interoperability with systems that predate FIPS 202, such as
// Ethereum.
func NewLegacyKeccak256() hash.Hash {
	return &digest{rate: rate256, outputLen: 32, dsbyte: dsbyteKeccak}
}

// NewLegacyKeccak512 returns a new hash.Hash computing the original
// Keccak-512 digest. See NewLegacyKeccak256.
func NewLegacyKeccak512() hash.Hash {
	return &digest{rate: rate512, outputLen: 64, dsbyte: dsbyteKeccak}
}

// Sum224 returns the SHA3-224 digest of data.
func Sum224(data []byte) [28]byte {
	var out [28]byte
	d := digest{rate: rate224, outputLen: 28, dsbyte: dsbyteSHA3}
	d.Write(data)
	d.Read(out[:])
	return out
}

// Sum256 returns the SHA3-256 digest of data.
func Sum256(data []byte) [32]byte {
	var out [32]byte
	d := digest{rate: rate256, outputLen: 32, dsbyte: dsbyteSHA3}
	d.Write(data)
	d.Read(out[:])
	return out
}

// Sum384 returns the SHA3-384 digest of data.
func Sum384(data []byte) [48]byte {
	var out [48]byte
	d := digest{rate: rate384, outputLen: 48, dsbyte: dsbyteSHA3}
	d.Write(data)
	d.Read(out[:])
	return out
}

// Sum512 returns the SHA3-512 digest of data.
func Sum512(data []byte) [64]byte {
	var out [64]byte
	d := digest{rate: rate512, outputLen: 64, dsbyte: dsbyteSHA3}
	d.Write(data)
	d.Read(out[:])
	return out
}

// SumLegacyKeccak256 returns the legacy Keccak-256 digest of data.
func SumLegacyKeccak256(data []byte) [32]byte {
	var out [32]byte
	d := digest{rate: rate256, outputLen: 32, dsbyte: dsbyteKeccak}
	d.Write(data)
	d.Read(out[:])
	return out
}

// SumLegacyKeccak512 returns the legacy Keccak-512 digest of data.
func SumLegacyKeccak512(data []byte) [64]byte {
	var out [64]byte
	d := digest{rate: rate512, outputLen: 64, dsbyte: dsbyteKeccak}
	d.Write(data)
	d.Read(out[:])
	return out
}
