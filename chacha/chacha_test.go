package chacha_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"golang.org/x/crypto/chacha20"

	"github.com/cipherkit/cipherkit"
	"github.com/cipherkit/cipherkit/chacha"
)

func testKey() []byte {
	key := make([]byte, chacha.KeySize)
	for i := range key {
		key[i] = byte(i)
	}
	return key
}

func testNonce() []byte {
	nonce := make([]byte, chacha.NonceSize)
	for i := range nonce {
		nonce[i] = byte(i + 100)
	}
	return nonce
}

func TestKeystream(t *testing.T) {
	c, err := chacha.New(testKey(), testNonce())
	if err != nil {
		t.Fatal(err)
	}

	got := make([]byte, 16*chacha.BlockSize)
	cipherkit.WriteKeystreamBlocks(c, got)

	ref, err := chacha20.NewUnauthenticatedCipher(testKey(), testNonce())
	if err != nil {
		t.Fatal(err)
	}
	want := make([]byte, len(got))
	ref.XORKeyStream(want, make([]byte, len(got)))

	if !bytes.Equal(got, want) {
		t.Errorf("keystream = %x, want = %x", got, want)
	}
}

func TestKeystream_BatchingTransparency(t *testing.T) {
	batched, err := chacha.New(testKey(), testNonce())
	if err != nil {
		t.Fatal(err)
	}
	got := make([]byte, 10*chacha.BlockSize)
	cipherkit.WriteKeystreamBlocks(batched, got)

	scalar, err := chacha.New(testKey(), testNonce())
	if err != nil {
		t.Fatal(err)
	}
	want := make([]byte, len(got))
	for off := 0; off < len(want); off += chacha.BlockSize {
		scalar.Keystream(want[off : off+chacha.BlockSize])
	}

	if !bytes.Equal(got, want) {
		t.Errorf("got = %x, want = %x", got, want)
	}
}

func TestSeek(t *testing.T) {
	t.Run("block 5 of a 10-block run", func(t *testing.T) {
		c, err := chacha.New(testKey(), testNonce())
		if err != nil {
			t.Fatal(err)
		}

		run := make([]byte, 10*chacha.BlockSize)
		cipherkit.WriteKeystreamBlocks(c, run)

		c.SetBlockPos(5)
		block := make([]byte, chacha.BlockSize)
		cipherkit.WriteKeystreamBlocks(c, block)

		if got, want := block, run[5*chacha.BlockSize:6*chacha.BlockSize]; !bytes.Equal(got, want) {
			t.Errorf("block = %x, want = %x", got, want)
		}
	})

	t.Run("matches x/crypto at an offset", func(t *testing.T) {
		c, err := chacha.New(testKey(), testNonce())
		if err != nil {
			t.Fatal(err)
		}
		c.SetBlockPos(1000)

		got := make([]byte, 4*chacha.BlockSize)
		cipherkit.WriteKeystreamBlocks(c, got)

		ref, err := chacha20.NewUnauthenticatedCipher(testKey(), testNonce())
		if err != nil {
			t.Fatal(err)
		}
		ref.SetCounter(1000)
		want := make([]byte, len(got))
		ref.XORKeyStream(want, make([]byte, len(got)))

		if !bytes.Equal(got, want) {
			t.Errorf("got = %x, want = %x", got, want)
		}
	})

	t.Run("position outside counter range panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("panic expected but none occurred")
			}
		}()

		c, err := chacha.New(testKey(), testNonce())
		if err != nil {
			t.Fatal(err)
		}
		c.SetBlockPos(1 << 32)
	})
}

func TestRemaining(t *testing.T) {
	c, err := chacha.New(testKey(), testNonce())
	if err != nil {
		t.Fatal(err)
	}

	rem, ok := c.Remaining()
	if !ok {
		t.Fatal("Remaining() not bounded, want bounded")
	}
	if got, want := rem, uint64(1)<<32; got != want {
		t.Errorf("Remaining() = %d, want = %d", got, want)
	}

	c.SetBlockPos(1<<32 - 2)
	rem, _ = c.Remaining()
	if got, want := rem, uint64(2); got != want {
		t.Errorf("Remaining() = %d, want = %d", got, want)
	}
}

func TestApplyKeystream_Budget(t *testing.T) {
	t.Run("partial tail exactly at budget", func(t *testing.T) {
		c, err := chacha.New(testKey(), testNonce())
		if err != nil {
			t.Fatal(err)
		}
		c.SetBlockPos(1<<32 - 2)

		buf := make([]byte, chacha.BlockSize+1)
		if err := cipherkit.ApplyKeystream(c, buf, buf); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("over budget", func(t *testing.T) {
		c, err := chacha.New(testKey(), testNonce())
		if err != nil {
			t.Fatal(err)
		}
		c.SetBlockPos(1<<32 - 2)

		buf := make([]byte, 2*chacha.BlockSize+1)
		err = cipherkit.ApplyKeystream(c, buf, buf)
		if !errors.Is(err, cipherkit.ErrKeystreamExhausted) {
			t.Errorf("ApplyKeystream() error = %v, want = %v", err, cipherkit.ErrKeystreamExhausted)
		}
	})
}

func TestApplyKeystream_RoundTrip(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog, twice over")

	enc, err := chacha.New(testKey(), testNonce())
	if err != nil {
		t.Fatal(err)
	}
	ct := make([]byte, len(msg))
	cipherkit.MustApplyKeystream(enc, ct, msg)

	if bytes.Equal(ct, msg) {
		t.Fatal("ciphertext equals plaintext")
	}

	dec, err := chacha.New(testKey(), testNonce())
	if err != nil {
		t.Fatal(err)
	}
	pt := make([]byte, len(ct))
	cipherkit.MustApplyKeystream(dec, pt, ct)

	if got, want := pt, msg; !bytes.Equal(got, want) {
		t.Errorf("pt = %q, want = %q", got, want)
	}
}

func TestNew(t *testing.T) {
	t.Run("bad key length", func(t *testing.T) {
		if _, err := chacha.New(make([]byte, 16), testNonce()); err == nil {
			t.Errorf("error expected but none returned")
		}
	})

	t.Run("bad nonce length", func(t *testing.T) {
		if _, err := chacha.New(testKey(), make([]byte, 8)); err == nil {
			t.Errorf("error expected but none returned")
		}
	})
}

func Example() {
	key := bytes.Repeat([]byte{0x42}, chacha.KeySize)
	nonce := make([]byte, chacha.NonceSize)

	enc, _ := chacha.New(key, nonce)
	ciphertext := make([]byte, 14)
	cipherkit.MustApplyKeystream(enc, ciphertext, []byte("attack at dawn"))

	dec, _ := chacha.New(key, nonce)
	plaintext := make([]byte, len(ciphertext))
	cipherkit.MustApplyKeystream(dec, plaintext, ciphertext)

	fmt.Println(string(plaintext))
	// Output: attack at dawn
}

func BenchmarkApplyKeystreamBlocks(b *testing.B) {
	for _, length := range lengths {
		b.Run(length.name, func(b *testing.B) {
			c, err := chacha.New(testKey(), testNonce())
			if err != nil {
				b.Fatal(err)
			}
			buf := make([]byte, length.n)
			b.SetBytes(int64(length.n))
			b.ReportAllocs()
			for b.Loop() {
				cipherkit.ApplyKeystreamBlocks(c, cipherkit.InPlace(buf), nil)
			}
		})
	}
}

func BenchmarkWriteKeystreamBlocks(b *testing.B) {
	for _, length := range lengths {
		b.Run(length.name, func(b *testing.B) {
			c, err := chacha.New(testKey(), testNonce())
			if err != nil {
				b.Fatal(err)
			}
			buf := make([]byte, length.n)
			b.SetBytes(int64(length.n))
			b.ReportAllocs()
			for b.Loop() {
				cipherkit.WriteKeystreamBlocks(c, buf)
			}
		})
	}
}

//nolint:gochecknoglobals // this is fine
var lengths = []struct {
	name string
	n    int
}{
	{"64B", 64},
	{"256B", 256},
	{"1KiB", 1024},
	{"16KiB", 16 * 1024},
	{"1MiB", 1024 * 1024},
}
