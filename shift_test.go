package dynbitset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dynbitset/testutil"
)

func TestShiftLeft(t *testing.T) {
	t.Run("scenario 1110", func(t *testing.T) {
		b := MustParse("1110")
		b.ShiftLeft(3)
		requireWellFormed(t, b)
		assert.Equal(t, uint(7), b.Len())
		assert.Equal(t, "0001110", b.String())
	})

	t.Run("zero", func(t *testing.T) {
		b := MustParse("101")
		b.ShiftLeft(0)
		assert.Equal(t, "101", b.String())
	})

	t.Run("empty vector grows with zeros", func(t *testing.T) {
		b := New(0)
		b.ShiftLeft(70)
		requireWellFormed(t, b)
		assert.Equal(t, uint(70), b.Len())
		assert.True(t, b.None())
	})

	t.Run("word aligned", func(t *testing.T) {
		s := "1" + strings.Repeat("0", 62) + "11"
		b := MustParse(s)
		b.ShiftLeft(128)
		requireWellFormed(t, b)
		assert.Equal(t, strings.Repeat("0", 128)+s, b.String())
	})

	t.Run("carry across words", func(t *testing.T) {
		s := strings.Repeat("1", 64)
		b := MustParse(s)
		b.ShiftLeft(1)
		requireWellFormed(t, b)
		assert.Equal(t, "0"+s, b.String())
	})

	t.Run("random", func(t *testing.T) {
		rng := testutil.NewRNG(4711)
		for range 500 {
			s := rng.BitString(rng.Length(300))
			n := uint(rng.Length(200))

			b := MustParse(s)
			b.ShiftLeft(n)

			requireWellFormed(t, b)
			require.Equal(t, strings.Repeat("0", int(n))+s, b.String(), "s=%s n=%d", s, n)
		}
	})
}

func TestShiftRight(t *testing.T) {
	t.Run("scenario 10100", func(t *testing.T) {
		b := MustParse("10100")
		b.ShiftRight(2)
		requireWellFormed(t, b)
		assert.Equal(t, uint(3), b.Len())
		assert.Equal(t, "100", b.String())
	})

	t.Run("truncates to empty", func(t *testing.T) {
		b := MustParse("10100")
		b.ShiftRight(9)
		requireWellFormed(t, b)
		assert.Equal(t, uint(0), b.Len())
		assert.Equal(t, "", b.String())

		b = MustParse("10100")
		b.ShiftRight(5)
		assert.Equal(t, uint(0), b.Len())
	})

	t.Run("zero", func(t *testing.T) {
		b := MustParse("101")
		b.ShiftRight(0)
		assert.Equal(t, "101", b.String())
	})

	t.Run("demo driver input", func(t *testing.T) {
		s := "101"
		for range 5 {
			s += s
		}
		b := MustParse(s)
		require.Equal(t, uint(96), b.Len())

		b.ShiftRight(32)
		requireWellFormed(t, b)
		assert.Equal(t, uint(64), b.Len())
		assert.Equal(t, s[32:], b.String())
	})

	t.Run("random", func(t *testing.T) {
		rng := testutil.NewRNG(4711)
		for range 500 {
			s := rng.BitString(rng.Length(300))
			n := rng.Length(320)

			b := MustParse(s)
			b.ShiftRight(uint(n))

			requireWellFormed(t, b)
			want := ""
			if n < len(s) {
				want = s[n:]
			}
			require.Equal(t, want, b.String(), "s=%s n=%d", s, n)
		}
	})
}

func TestShiftRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(4711)
	for range 500 {
		s := rng.BitString(rng.Length(300))
		n := uint(rng.Length(300))

		b := MustParse(s)
		b.ShiftLeft(n).ShiftRight(n)

		requireWellFormed(t, b)
		require.True(t, MustParse(s).Equal(b), "s=%s n=%d", s, n)
	}
}
