package minerva

import (
	"errors"
	"strings"
	"testing"

	"github.com/pyvyx/minerva/sha512"
)

func TestOneShotVectors(t *testing.T) {
	abc := []byte("abc")
	cases := []struct{ name, got, want string }{
		{"MD5 empty", MD5(nil), "d41d8cd98f00b204e9800998ecf8427e"},
		{"MD5 abc", MD5(abc), "900150983cd24fb0d6963f7d28e17f72"},
		{"SHA1 abc", SHA1(abc), "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{"SHA224 abc", SHA224(abc), "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"},
		{"SHA256 abc", SHA256(abc), "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"SHA384 abc", SHA384(abc), "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7"},
		{"SHA512 abc", SHA512(abc), "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
		{"SHA512_224 abc", SHA512_224(abc), "4634270f707b6a54daae7530460842e20e37ed265ceee9a43e8924aa"},
		{"SHA512_256 abc", SHA512_256(abc), "53048e2681941ef99b2e29b76b4c7dabe4c2d0c634fc6d46e0e2f13107e7af23"},
		{"SHA3_224 abc", SHA3_224(abc), "e642824c3f8cf24ad09234ee7d3c766fc9a3a5168d0c94ad73b46fdf"},
		{"SHA3_256 abc", SHA3_256(abc), "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
		{"SHA3_384 abc", SHA3_384(abc), "ec01498288516fc926459f58e2c6ad8df9b473cb0fc08c2596da7cf0e49be4b298d88cea927ac7f539f1edf228376d25"},
		{"SHA3_512 abc", SHA3_512(abc), "b751850b1a57168a5693cd924b6b096e08f621827444f70d884f5d0240d2712e10e116e9192af3c91a7ec57647e3934057340b4cf408d5a56592f8274eec53f0"},
		{"Keccak256 empty", Keccak256(nil), "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"Keccak256 abc", Keccak256(abc), "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45"},
		{"Keccak512 abc", Keccak512(abc), "18587dc2ea106b9a1563e32b3312421ca164c7f1f07bc922a9c83d77cea3a1e5d0c69910739025372dc14ac9642629379540c17e2a65b19d77aa511a9d00bb96"},
		{"Shake128 empty 16", Shake128(nil, 16), "7f9c2ba4e88f827d616045507605853e"},
		{"Shake128 abc 32", Shake128(abc, 32), "5881092dd818bf5cf8a3ddb793fbcba74097d5c526a6d35f97b83351940f2cc8"},
		{"Shake256 abc 64", Shake256(abc, 64), "483366601360a8771c6863080cc4114d8db44530f8f1e1ee4f94ea37e78b5739d5a15bef186a5386c75744c0527e1faa9f8726e462a12a4feb06bd8801e751e4"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}
}

func TestShakeLengths(t *testing.T) {
	data := []byte("variable output")
	for _, n := range []int{1, 16, 32, 100, 200} {
		if got := len(Shake128(data, n)); got != 2*n {
			t.Errorf("len(Shake128(.., %d)) = %d, want %d", n, got, 2*n)
		}
	}
	if got := Shake128(data, 0); got != "" {
		t.Errorf("Shake128(.., 0) = %q, want empty", got)
	}
	if got := Shake256(data, -3); got != "" {
		t.Errorf("Shake256(.., -3) = %q, want empty", got)
	}
	// Longer outputs extend shorter ones.
	if short, long := Shake256(data, 16), Shake256(data, 48); !strings.HasPrefix(long, short) {
		t.Errorf("Shake256 outputs do not nest: %s does not start with %s", long, short)
	}
}

func TestSHA512T(t *testing.T) {
	vectors := []struct {
		t    int
		in   string
		want string
	}{
		{4, "", "7"},
		{8, "", "79"},
		{8, "abc", "c5"},
		{200, "abc", "2c199c1b8e934d616332dcfea4d50a1ddbbb8eb25be46bdc9d"},
		{224, "abc", "4634270f707b6a54daae7530460842e20e37ed265ceee9a43e8924aa"},
		{256, "abc", "53048e2681941ef99b2e29b76b4c7dabe4c2d0c634fc6d46e0e2f13107e7af23"},
		{2048, "", "a59eb3b340a8aa133c48a91dd2184d08aa7e248cad1896a3fb644d18cbad26566d39ce3852a757166f70acfbde2535d64a7245c34f51dafe87f4b852bd7416b5"},
	}
	for _, v := range vectors {
		got, err := SHA512T(v.t, []byte(v.in))
		if err != nil {
			t.Fatalf("SHA512T(%d, %q): %v", v.t, v.in, err)
		}
		if got != v.want {
			t.Errorf("SHA512T(%d, %q) = %s, want %s", v.t, v.in, got, v.want)
		}
	}

	// t=224/256 must agree with the dedicated helpers.
	if got, _ := SHA512T(224, []byte("abc")); got != SHA512_224([]byte("abc")) {
		t.Error("SHA512T(224, ..) != SHA512_224(..)")
	}
	if got, _ := SHA512T(256, []byte("abc")); got != SHA512_256([]byte("abc")) {
		t.Error("SHA512T(256, ..) != SHA512_256(..)")
	}
}

func TestSHA512TErrors(t *testing.T) {
	for _, bad := range []int{-1, 0, 3, 384, 2049} {
		got, err := SHA512T(bad, []byte("abc"))
		if !errors.Is(err, sha512.ErrInvalidT) {
			t.Errorf("SHA512T(%d, ..) error = %v, want ErrInvalidT", bad, err)
		}
		if got != "" {
			t.Errorf("SHA512T(%d, ..) returned %q alongside an error", bad, got)
		}
	}
}
