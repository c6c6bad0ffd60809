package minerva

import (
	"encoding/hex"
	"hash"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/pyvyx/minerva/md5"
	"github.com/pyvyx/minerva/sha1"
	"github.com/pyvyx/minerva/sha256"
	"github.com/pyvyx/minerva/sha3"
	"github.com/pyvyx/minerva/sha512"
)

// hashFile streams the file at path through h. io.Copy keeps memory bounded
// regardless of the file size. Errors always surface; a digest string is
// never returned for a file that could not be read in full.
func hashFile(path string, h hash.Hash) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "minerva: hash file")
	}
	defer f.Close()
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.Wrapf(err, "minerva: read %q", path)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func shakeFile(path string, n int, h sha3.ShakeHash) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "minerva: hash file")
	}
	defer f.Close()
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.Wrapf(err, "minerva: read %q", path)
	}
	if n < 0 {
		n = 0
	}
	out := make([]byte, n)
	h.Read(out)
	return hex.EncodeToString(out), nil
}

// MD5File returns the hex MD5 digest of the file at path.
func MD5File(path string) (string, error) { return hashFile(path, md5.New()) }

// SHA1File returns the hex SHA-1 digest of the file at path.
func SHA1File(path string) (string, error) { return hashFile(path, sha1.New()) }

// SHA224File returns the hex SHA-224 digest of the file at path.
func SHA224File(path string) (string, error) { return hashFile(path, sha256.New224()) }

// SHA256File returns the hex SHA-256 digest of the file at path.
func SHA256File(path string) (string, error) { return hashFile(path, sha256.New()) }

// SHA384File returns the hex SHA-384 digest of the file at path.
func SHA384File(path string) (string, error) { return hashFile(path, sha512.New384()) }

// SHA512File returns the hex SHA-512 digest of the file at path.
func SHA512File(path string) (string, error) { return hashFile(path, sha512.New()) }

// SHA512_224File returns the hex SHA-512/224 digest of the file at path.
func SHA512_224File(path string) (string, error) { return hashFile(path, sha512.New512_224()) }

// SHA512_256File returns the hex SHA-512/256 digest of the file at path.
func SHA512_256File(path string) (string, error) { return hashFile(path, sha512.New512_256()) }

// SHA512TFile returns the hex SHA-512/t digest of the file at path. See
// SHA512T for the meaning and domain of t.
func SHA512TFile(t int, path string) (string, error) {
	h, err := sha512.New512t(t)
	if err != nil {
		return "", err
	}
	s, err := hashFile(path, h)
	if err != nil {
		return "", err
	}
	return truncT(t, s), nil
}

// SHA3_224File returns the hex SHA3-224 digest of the file at path.
func SHA3_224File(path string) (string, error) { return hashFile(path, sha3.New224()) }

// SHA3_256File returns the hex SHA3-256 digest of the file at path.
func SHA3_256File(path string) (string, error) { return hashFile(path, sha3.New256()) }

// SHA3_384File returns the hex SHA3-384 digest of the file at path.
func SHA3_384File(path string) (string, error) { return hashFile(path, sha3.New384()) }

// SHA3_512File returns the hex SHA3-512 digest of the file at path.
func SHA3_512File(path string) (string, error) { return hashFile(path, sha3.New512()) }

// Keccak256File returns the hex legacy Keccak-256 digest of the file at
// path.
func Keccak256File(path string) (string, error) {
	return hashFile(path, sha3.NewLegacyKeccak256())
}

// Keccak512File returns the hex legacy Keccak-512 digest of the file at
// path.
func Keccak512File(path string) (string, error) {
	return hashFile(path, sha3.NewLegacyKeccak512())
}

// Shake128File returns the hex SHAKE128 digest of the file at path with n
// output bytes. A non-positive n yields the empty string.
func Shake128File(path string, n int) (string, error) {
	return shakeFile(path, n, sha3.NewShake128())
}

// Shake256File returns the hex SHAKE256 digest of the file at path with n
// output bytes. A non-positive n yields the empty string.
func Shake256File(path string, n int) (string, error) {
	return shakeFile(path, n, sha3.NewShake256())
}
