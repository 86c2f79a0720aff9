// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package graymorph

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomGray(w, h int, seed int64) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	rnd := rand.New(rand.NewSource(seed))
	for i := range img.Pix {
		img.Pix[i] = uint8(rnd.Intn(256))
	}
	return img
}

func flatGray(w, h int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

func spikeGray(w, h, x, y int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	img.SetGray(x, y, color.Gray{Y: v})
	return img
}

// refGray is a naive min/max-over-neighbourhood reference, with the
// same boundary condition as the running-array implementation:
// outside pixels read 0 for dilation and 255 for erosion.
func refGray(img *image.Gray, hsize, vsize int, max bool) *image.Gray {
	if hsize%2 == 0 {
		hsize++
	}
	if vsize%2 == 0 {
		vsize++
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	hr, vr := hsize/2, vsize/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var best uint8
			if !max {
				best = 255
			}
			for dy := -vr; dy <= vr; dy++ {
				for dx := -hr; dx <= hr; dx++ {
					sx, sy := x+dx, y+dy
					var v uint8
					if !max {
						v = 255
					}
					if sx >= 0 && sx < w && sy >= 0 && sy < h {
						v = img.Pix[sy*img.Stride+sx]
					}
					if max && v > best || !max && v < best {
						best = v
					}
				}
			}
			out.Pix[y*out.Stride+x] = best
		}
	}
	return out
}

func grayEqual(a, b *image.Gray) bool {
	if !a.Bounds().Eq(b.Bounds()) {
		return false
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			return false
		}
	}
	return true
}

func TestVHGWEquivalence(t *testing.T) {
	imgs := map[string]*image.Gray{
		"random":  randomGray(50, 35, 1),
		"random2": randomGray(33, 62, 2),
		"all0":    flatGray(20, 20, 0),
		"all255":  flatGray(20, 20, 255),
		"spike":   spikeGray(25, 25, 12, 12, 200),
	}
	sizes := []struct{ h, v int }{{3, 3}, {7, 5}, {11, 1}, {1, 9}, {15, 15}, {4, 6}}
	for iname, img := range imgs {
		for _, s := range sizes {
			t.Run(fmt.Sprintf("%s_%dx%d", iname, s.h, s.v), func(t *testing.T) {
				got, err := Dilate(img, s.h, s.v)
				require.NoError(t, err)
				assert.True(t, grayEqual(got, refGray(img, s.h, s.v, true)), "dilate")

				got, err = Erode(img, s.h, s.v)
				require.NoError(t, err)
				assert.True(t, grayEqual(got, refGray(img, s.h, s.v, false)), "erode")
			})
		}
	}
}

func TestFastPathMatchesGeneral(t *testing.T) {
	img := randomGray(40, 30, 3)
	for _, s := range []struct{ h, v int }{{3, 3}, {3, 1}, {1, 3}} {
		fast := run3(img, s.h, s.v, 0, true)
		var general *image.Gray = img
		if s.h == 3 {
			general = runHoriz(general, 3, 0, true)
		}
		if s.v == 3 {
			general = runVert(general, 3, 0, true)
		}
		assert.True(t, grayEqual(fast, general), "%dx%d", s.h, s.v)
	}
}

func TestDilateSpikeRow(t *testing.T) {
	img := spikeGray(8, 8, 4, 4, 200)
	got, err := Dilate(img, 3, 1)
	require.NoError(t, err)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			var want uint8
			if y == 4 && x >= 3 && x <= 5 {
				want = 200
			}
			if got.Pix[y*got.Stride+x] != want {
				t.Fatalf("pixel (%d,%d) = %d, want %d", x, y, got.Pix[y*got.Stride+x], want)
			}
		}
	}
}

func TestOpenClose(t *testing.T) {
	img := randomGray(45, 45, 4)

	opened, err := Open(img, 5, 5)
	require.NoError(t, err)
	eroded, err := Erode(img, 5, 5)
	require.NoError(t, err)
	want, err := Dilate(eroded, 5, 5)
	require.NoError(t, err)
	assert.True(t, grayEqual(opened, want))

	closed, err := Close(img, 5, 5)
	require.NoError(t, err)
	dilated, err := Dilate(img, 5, 5)
	require.NoError(t, err)
	want, err = Erode(dilated, 5, 5)
	require.NoError(t, err)
	assert.True(t, grayEqual(closed, want))
}

func TestGraySizeValidation(t *testing.T) {
	img := randomGray(10, 10, 5)
	for _, f := range []func(*image.Gray, int, int) (*image.Gray, error){Dilate, Erode, Open, Close} {
		_, err := f(img, 0, 3)
		assert.ErrorIs(t, err, ErrInvalidSize)
		_, err = f(img, 3, -1)
		assert.ErrorIs(t, err, ErrInvalidSize)
	}

	// window of 1x1 in both dimensions is the identity, on a fresh image
	out, err := Dilate(img, 1, 1)
	require.NoError(t, err)
	assert.True(t, grayEqual(out, img))
	out.Pix[0] = 7
	assert.False(t, grayEqual(out, img))
}
