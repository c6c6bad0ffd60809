// Package minerva bundles the MD5, SHA-1, SHA-2 and Keccak hash families
// behind one-shot helpers that hash a byte slice and return the digest as a
// lowercase hex string, plus matching variants that stream files from disk
// in bounded memory.
//
// The per-algorithm packages underneath expose the usual hash.Hash
// streaming interface for callers that feed data incrementally.
package minerva

import (
	"encoding/hex"

	"github.com/pyvyx/minerva/md5"
	"github.com/pyvyx/minerva/sha1"
	"github.com/pyvyx/minerva/sha256"
	"github.com/pyvyx/minerva/sha3"
	"github.com/pyvyx/minerva/sha512"
)

// MD5 returns the hex MD5 digest of data.
func MD5(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

// SHA1 returns the hex SHA-1 digest of data.
func SHA1(data []byte) string {
	sum := sha1.Sum(data)
	return hex.EncodeToString(sum[:])
}

// SHA224 returns the hex SHA-224 digest of data.
func SHA224(data []byte) string {
	sum := sha256.Sum224(data)
	return hex.EncodeToString(sum[:])
}

// SHA256 returns the hex SHA-256 digest of data.
func SHA256(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// SHA384 returns the hex SHA-384 digest of data.
func SHA384(data []byte) string {
	sum := sha512.Sum384(data)
	return hex.EncodeToString(sum[:])
}

// SHA512 returns the hex SHA-512 digest of data.
func SHA512(data []byte) string {
	sum := sha512.Sum512(data)
	return hex.EncodeToString(sum[:])
}

// SHA512_224 returns the hex SHA-512/224 digest of data.
func SHA512_224(data []byte) string {
	sum := sha512.Sum512_224(data)
	return hex.EncodeToString(sum[:])
}

// SHA512_256 returns the hex SHA-512/256 digest of data.
func SHA512_256(data []byte) string {
	sum := sha512.Sum512_256(data)
	return hex.EncodeToString(sum[:])
}

// SHA512T returns the hex SHA-512/t digest of data: t/4 hex digits, capped
// at the full 128. t must lie in [4, 2048] and differ from 384, or an error
// wrapping sha512.ErrInvalidT is returned.
func SHA512T(t int, data []byte) (string, error) {
	h, err := sha512.New512t(t)
	if err != nil {
		return "", err
	}
	h.Write(data)
	return truncT(t, hex.EncodeToString(h.Sum(nil))), nil
}

// truncT trims a SHA-512/t hex digest to its t/4 hex digits. The byte form
// rounds up to whole bytes, so sub-byte widths carry a spare nibble here.
func truncT(t int, s string) string {
	if n := t / 4; n < len(s) {
		return s[:n]
	}
	return s
}

// SHA3_224 returns the hex SHA3-224 digest of data.
func SHA3_224(data []byte) string {
	sum := sha3.Sum224(data)
	return hex.EncodeToString(sum[:])
}

// SHA3_256 returns the hex SHA3-256 digest of data.
func SHA3_256(data []byte) string {
	sum := sha3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// SHA3_384 returns the hex SHA3-384 digest of data.
func SHA3_384(data []byte) string {
	sum := sha3.Sum384(data)
	return hex.EncodeToString(sum[:])
}

// SHA3_512 returns the hex SHA3-512 digest of data.
func SHA3_512(data []byte) string {
	sum := sha3.Sum512(data)
	return hex.EncodeToString(sum[:])
}

// Keccak256 returns the hex legacy Keccak-256 digest of data (pre-NIST
// padding, as used by Ethereum).
func Keccak256(data []byte) string {
	sum := sha3.SumLegacyKeccak256(data)
	return hex.EncodeToString(sum[:])
}

// Keccak512 returns the hex legacy Keccak-512 digest of data.
func Keccak512(data []byte) string {
	sum := sha3.SumLegacyKeccak512(data)
	return hex.EncodeToString(sum[:])
}

// Shake128 returns the hex SHAKE128 digest of data with n output bytes,
// so 2n hex digits. A non-positive n yields the empty string.
func Shake128(data []byte, n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, n)
	sha3.ShakeSum128(out, data)
	return hex.EncodeToString(out)
}

// Shake256 returns the hex SHAKE256 digest of data with n output bytes,
// so 2n hex digits. A non-positive n yields the empty string.
func Shake256(data []byte, n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, n)
	sha3.ShakeSum256(out, data)
	return hex.EncodeToString(out)
}
