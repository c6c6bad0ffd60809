package minerva

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pyvyx/minerva/sha512"
)

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blob.bin")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestFileMatchesMemory(t *testing.T) {
	req := require.New(t)

	// Larger than the 32 KiB io.Copy buffer and not a multiple of any block size.
	data := make([]byte, 100003)
	for i := range data {
		data[i] = byte(i % 251)
	}
	path := writeTemp(t, data)

	cases := []struct {
		name string
		file func(string) (string, error)
		want string
	}{
		{"md5", MD5File, MD5(data)},
		{"sha1", SHA1File, SHA1(data)},
		{"sha224", SHA224File, SHA224(data)},
		{"sha256", SHA256File, SHA256(data)},
		{"sha384", SHA384File, SHA384(data)},
		{"sha512", SHA512File, SHA512(data)},
		{"sha512_224", SHA512_224File, SHA512_224(data)},
		{"sha512_256", SHA512_256File, SHA512_256(data)},
		{"sha3_224", SHA3_224File, SHA3_224(data)},
		{"sha3_256", SHA3_256File, SHA3_256(data)},
		{"sha3_384", SHA3_384File, SHA3_384(data)},
		{"sha3_512", SHA3_512File, SHA3_512(data)},
		{"keccak256", Keccak256File, Keccak256(data)},
		{"keccak512", Keccak512File, Keccak512(data)},
	}
	for _, c := range cases {
		got, err := c.file(path)
		req.NoErrorf(err, "%s", c.name)
		req.Equalf(c.want, got, "%s", c.name)
	}

	gotShake, err := Shake128File(path, 64)
	req.NoError(err)
	req.Equal(Shake128(data, 64), gotShake)

	gotShake, err = Shake256File(path, 16)
	req.NoError(err)
	req.Equal(Shake256(data, 16), gotShake)

	gotT, err := SHA512TFile(280, path)
	req.NoError(err)
	wantT, err := SHA512T(280, data)
	req.NoError(err)
	req.Equal(wantT, gotT)
}

func TestFileEmpty(t *testing.T) {
	req := require.New(t)
	path := writeTemp(t, nil)

	got, err := SHA256File(path)
	req.NoError(err)
	req.Equal(SHA256(nil), got)

	gotShake, err := Shake128File(path, 16)
	req.NoError(err)
	req.Equal(Shake128(nil, 16), gotShake)
}

func TestFileMissing(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "does-not-exist")

	got, err := SHA256File(path)
	req.Error(err)
	req.Empty(got)
	req.ErrorContains(err, "does-not-exist")

	got, err = Shake256File(path, 32)
	req.Error(err)
	req.Empty(got)

	got, err = SHA512TFile(256, path)
	req.Error(err)
	req.Empty(got)
}

func TestFileIsDirectory(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	got, err := MD5File(dir)
	req.Error(err)
	req.Empty(got)
}

func TestFileShakeZeroLength(t *testing.T) {
	req := require.New(t)
	path := writeTemp(t, []byte("content"))

	got, err := Shake128File(path, 0)
	req.NoError(err)
	req.Empty(got)
}

func TestSHA512TFileInvalidT(t *testing.T) {
	req := require.New(t)
	path := writeTemp(t, []byte("content"))

	for _, bad := range []int{0, 3, 384, 2049} {
		got, err := SHA512TFile(bad, path)
		req.ErrorIsf(err, sha512.ErrInvalidT, "t=%d", bad)
		req.Empty(got)
	}

	// Validation fires before the file is touched.
	got, err := SHA512TFile(384, filepath.Join(t.TempDir(), "missing"))
	req.ErrorIs(err, sha512.ErrInvalidT)
	req.Empty(got)
}
