// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package bitimg

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomBitmap(t *testing.T, w, h int, seed int64) *Bitmap {
	t.Helper()
	b, err := New(w, h)
	require.NoError(t, err)
	rnd := rand.New(rand.NewSource(seed))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rnd.Intn(2) == 1 {
				b.SetUnchecked(x, y, true)
			}
		}
	}
	return b
}

// paddingClear checks the invariant that the unused trailing bits of
// the last word of every row are zero.
func paddingClear(b *Bitmap) bool {
	mask := b.padMask()
	if mask == 0 {
		return true
	}
	for y := 0; y < b.Height(); y++ {
		if b.Row(y)[b.WordsPerRow()-1]&^mask != 0 {
			return false
		}
	}
	return true
}

func TestNew(t *testing.T) {
	b, err := New(33, 5)
	require.NoError(t, err)
	assert.Equal(t, 33, b.Width())
	assert.Equal(t, 5, b.Height())
	assert.Equal(t, 2, b.WordsPerRow())
	assert.Equal(t, 0, b.CountForeground())

	for _, d := range []struct{ w, h int }{{0, 5}, {5, 0}, {-1, 5}, {5, -3}} {
		_, err := New(d.w, d.h)
		assert.ErrorIs(t, err, ErrInvalidSize)
	}
}

func TestGetSet(t *testing.T) {
	b, err := New(40, 10)
	require.NoError(t, err)

	require.NoError(t, b.Set(39, 9, true))
	v, err := b.Get(39, 9)
	require.NoError(t, err)
	assert.True(t, v)

	v, err = b.Get(0, 0)
	require.NoError(t, err)
	assert.False(t, v)

	for _, p := range []struct{ x, y int }{{40, 0}, {0, 10}, {-1, 0}, {0, -1}} {
		_, err := b.Get(p.x, p.y)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.ErrorIs(t, b.Set(p.x, p.y, true), ErrOutOfBounds)
	}
}

func TestFillKeepsPadding(t *testing.T) {
	b, err := New(45, 3)
	require.NoError(t, err)
	b.Fill(true)
	assert.True(t, paddingClear(b))
	assert.Equal(t, 45*3, b.CountForeground())
	b.Fill(false)
	assert.Equal(t, 0, b.CountForeground())
}

func TestCloneEqual(t *testing.T) {
	b := randomBitmap(t, 70, 20, 1)
	c := b.Clone()
	assert.True(t, b.Equal(c))
	c.SetUnchecked(3, 3, !c.GetUnchecked(3, 3))
	assert.False(t, b.Equal(c))
}

func TestOrShifted(t *testing.T) {
	src := randomBitmap(t, 100, 30, 2)
	for _, d := range []struct{ dx, dy int }{
		{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{5, 3}, {-7, -2}, {33, 0}, {-40, 5}, {99, 29}, {-99, -29},
	} {
		dst, err := New(100, 30)
		require.NoError(t, err)
		dst.OrShifted(src, d.dx, d.dy)
		for y := 0; y < 30; y++ {
			for x := 0; x < 100; x++ {
				sx, sy := x-d.dx, y-d.dy
				want := sx >= 0 && sx < 100 && sy >= 0 && sy < 30 && src.GetUnchecked(sx, sy)
				if dst.GetUnchecked(x, y) != want {
					t.Fatalf("OrShifted (%d,%d): pixel (%d,%d) = %v, want %v", d.dx, d.dy, x, y, !want, want)
				}
			}
		}
		assert.True(t, paddingClear(dst))
	}
}

func TestAndShifted(t *testing.T) {
	src := randomBitmap(t, 67, 21, 3)
	for _, d := range []struct{ dx, dy int }{
		{0, 0}, {2, 0}, {-3, 0}, {0, 4}, {0, -5}, {31, 1}, {-32, -1},
	} {
		dst, err := New(67, 21)
		require.NoError(t, err)
		dst.Fill(true)
		dst.AndShifted(src, d.dx, d.dy)
		for y := 0; y < 21; y++ {
			for x := 0; x < 67; x++ {
				sx, sy := x-d.dx, y-d.dy
				want := sx >= 0 && sx < 67 && sy >= 0 && sy < 21 && src.GetUnchecked(sx, sy)
				if dst.GetUnchecked(x, y) != want {
					t.Fatalf("AndShifted (%d,%d): pixel (%d,%d) = %v, want %v", d.dx, d.dy, x, y, !want, want)
				}
			}
		}
		assert.True(t, paddingClear(dst))
	}
}

func TestBorder(t *testing.T) {
	b := randomBitmap(t, 30, 10, 4)
	big := b.AddBorder(7, false)
	assert.Equal(t, 44, big.Width())
	assert.Equal(t, 24, big.Height())
	assert.Equal(t, b.CountForeground(), big.CountForeground())

	back, err := big.RemoveBorder(7)
	require.NoError(t, err)
	assert.True(t, b.Equal(back))

	_, err = b.RemoveBorder(15)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestFromGrayToGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 5, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			img.SetGray(x, y, color.Gray{255})
		}
	}
	img.SetGray(2, 2, color.Gray{0})
	img.SetGray(4, 0, color.Gray{100})

	b, err := FromGray(img, 128)
	require.NoError(t, err)
	assert.Equal(t, 2, b.CountForeground())
	assert.True(t, b.GetUnchecked(2, 2))
	assert.True(t, b.GetUnchecked(4, 0))

	round, err := FromGray(b.ToGray(), 128)
	require.NoError(t, err)
	assert.True(t, b.Equal(round))
}

func TestFromImageWrongDepth(t *testing.T) {
	_, err := FromImage(image.NewAlpha(image.Rect(0, 0, 3, 3)), 128)
	assert.ErrorIs(t, err, ErrWrongDepth)

	rgba := image.NewRGBA(image.Rect(0, 0, 3, 3))
	_, err = FromImage(rgba, 128)
	assert.NoError(t, err)
}
