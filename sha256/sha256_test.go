package sha256

import (
	"bytes"
	stdsha256 "crypto/sha256"
	"encoding/hex"
	"testing"
)

const msg448 = "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"

func TestKnownVectors(t *testing.T) {
	vectors := []struct {
		in         string
		s256, s224 string
	}{
		{
			in:   "",
			s256: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
			s224: "d14a028c2a3a2bc9476102bb288234c415a2b01f828ea62ac5b3e42f",
		},
		{
			in:   "abc",
			s256: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
			s224: "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7",
		},
		{
			in:   msg448,
			s256: "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1",
			s224: "75388b16512776cc5dba5da1fd890150b0c6455cb4f58b1952522525",
		},
		{
			in:   "The quick brown fox jumps over the lazy dog",
			s256: "d7a8fbb307d7809469ca9abcb0082e4f8d5651e46d3cdb762d02d0bf37c9e592",
			s224: "730e109bd7a8a32b1cb9d9a09aa2325d2430587ddbc0c38bad911525",
		},
	}
	for _, v := range vectors {
		in := []byte(v.in)
		if got := Sum256(in); hex.EncodeToString(got[:]) != v.s256 {
			t.Errorf("Sum256(%q) = %x, want %s", v.in, got, v.s256)
		}
		if got := Sum224(in); hex.EncodeToString(got[:]) != v.s224 {
			t.Errorf("Sum224(%q) = %x, want %s", v.in, got, v.s224)
		}
	}
}

func TestMillionA(t *testing.T) {
	data := bytes.Repeat([]byte("a"), 1000000)
	got := Sum256(data)
	want := "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0"
	if hex.EncodeToString(got[:]) != want {
		t.Fatalf("Sum256(10^6 x 'a') = %x, want %s", got, want)
	}
}

func TestStreamingChunks(t *testing.T) {
	data := make([]byte, chunk*3+19)
	for i := range data {
		data[i] = byte(i * 13)
	}
	want := Sum256(data)
	for _, size := range []int{1, 3, 37, 64, 128} {
		h := New()
		for i := 0; i < len(data); i += size {
			end := i + size
			if end > len(data) {
				end = len(data)
			}
			h.Write(data[i:end])
		}
		if got := h.Sum(nil); !bytes.Equal(got, want[:]) {
			t.Fatalf("chunk size %d: %x vs %x", size, got, want)
		}
	}
}

func TestSumDoesNotConsume(t *testing.T) {
	h := New224()
	h.Write([]byte("ab"))
	first := h.Sum(nil)
	if second := h.Sum(nil); !bytes.Equal(first, second) {
		t.Fatalf("repeated Sum diverged: %x vs %x", first, second)
	}
	h.Write([]byte("c"))
	want := Sum224([]byte("abc"))
	if got := h.Sum(nil); !bytes.Equal(got, want[:]) {
		t.Fatalf("Write after Sum: %x, want %x", got, want)
	}
}

func FuzzSum256(f *testing.F) {
	f.Add([]byte(nil))
	f.Add([]byte("abc"))
	f.Add(make([]byte, chunk-1))
	f.Add(make([]byte, chunk))
	f.Add(make([]byte, chunk*3+5))

	f.Fuzz(func(t *testing.T, data []byte) {
		if got, want := Sum256(data), stdsha256.Sum256(data); got != want {
			t.Fatalf("Sum256 mismatch for len=%d\ngot:  %x\nwant: %x", len(data), got, want)
		}
		if got, want := Sum224(data), stdsha256.Sum224(data); got != want {
			t.Fatalf("Sum224 mismatch for len=%d\ngot:  %x\nwant: %x", len(data), got, want)
		}

		// Byte-by-byte streaming.
		h := New()
		for _, b := range data {
			h.Write([]byte{b})
		}
		want := stdsha256.Sum256(data)
		if got := h.Sum(nil); !bytes.Equal(got, want[:]) {
			t.Fatalf("streaming mismatch for len=%d\ngot:  %x\nwant: %x", len(data), got, want)
		}
	})
}

func BenchmarkSum256(b *testing.B) {
	data := make([]byte, 500*1024)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Sum256(data)
	}
}
