// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// Package bitimg provides a 1 bit per pixel image packed into 32 bit
// words, together with the word-level shift-and-combine operations
// that the morphology packages are built on.
//
// Each row is WordsPerRow consecutive words. The most significant bit
// of a row's first word is pixel column 0, and columns increase
// towards the least significant bit and on into the next word. Bits
// in the last word of a row beyond the image width are padding and
// are kept at zero by every exported operation.
package bitimg

import (
	"errors"
	"math/bits"
)

var (
	// ErrInvalidSize is returned for images with a non-positive dimension.
	ErrInvalidSize = errors.New("bitimg: invalid size")
	// ErrOutOfBounds is returned by the checked accessors for
	// coordinates outside the image.
	ErrOutOfBounds = errors.New("bitimg: coordinates out of bounds")
	// ErrWrongDepth is returned when an image of an unsupported pixel
	// depth reaches a conversion boundary.
	ErrWrongDepth = errors.New("bitimg: wrong image depth")
)

const wordBits = 32

// Bitmap is a bit-packed binary image. Operations in this module
// never modify their input Bitmap; the mutating methods exist for
// building up an image the caller owns.
type Bitmap struct {
	width  int
	height int
	wpr    int // words per row
	words  []uint32
}

// New creates an all-background Bitmap of the given dimensions.
func New(width, height int) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	wpr := (width + wordBits - 1) / wordBits
	return &Bitmap{
		width:  width,
		height: height,
		wpr:    wpr,
		words:  make([]uint32, wpr*height),
	}, nil
}

// Width returns the image width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the image height in pixels.
func (b *Bitmap) Height() int { return b.height }

// WordsPerRow returns the number of 32 bit words used per row.
func (b *Bitmap) WordsPerRow() int { return b.wpr }

// Row returns the words of row y. The slice shares backing storage
// with the image.
func (b *Bitmap) Row(y int) []uint32 {
	return b.words[y*b.wpr : (y+1)*b.wpr]
}

// Get returns the pixel at (x, y), or ErrOutOfBounds.
func (b *Bitmap) Get(x, y int) (bool, error) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false, ErrOutOfBounds
	}
	return b.GetUnchecked(x, y), nil
}

// Set sets the pixel at (x, y), or returns ErrOutOfBounds.
func (b *Bitmap) Set(x, y int, v bool) error {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return ErrOutOfBounds
	}
	b.SetUnchecked(x, y, v)
	return nil
}

// GetUnchecked returns the pixel at (x, y) without bounds checks. It
// must only be called with coordinates already known to be inside the
// image.
func (b *Bitmap) GetUnchecked(x, y int) bool {
	return b.words[y*b.wpr+x>>5]&(1<<uint(31-x&31)) != 0
}

// SetUnchecked sets the pixel at (x, y) without bounds checks.
func (b *Bitmap) SetUnchecked(x, y int, v bool) {
	i := y*b.wpr + x>>5
	mask := uint32(1) << uint(31-x&31)
	if v {
		b.words[i] |= mask
	} else {
		b.words[i] &^= mask
	}
}

// Clone returns a copy of the image.
func (b *Bitmap) Clone() *Bitmap {
	n := &Bitmap{width: b.width, height: b.height, wpr: b.wpr}
	n.words = make([]uint32, len(b.words))
	copy(n.words, b.words)
	return n
}

// Fill sets every pixel to v, keeping the padding bits zero.
func (b *Bitmap) Fill(v bool) {
	var w uint32
	if v {
		w = ^uint32(0)
	}
	for i := range b.words {
		b.words[i] = w
	}
	if v {
		b.clearPadding()
	}
}

// Equal reports whether two images have the same dimensions and
// pixels.
func (b *Bitmap) Equal(o *Bitmap) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i := range b.words {
		if b.words[i] != o.words[i] {
			return false
		}
	}
	return true
}

// CountForeground returns the number of foreground pixels.
func (b *Bitmap) CountForeground() int {
	var n int
	for _, w := range b.words {
		n += bits.OnesCount32(w)
	}
	return n
}

// padMask returns the mask of valid bits in the last word of a row,
// or 0 if every bit of the last word is valid.
func (b *Bitmap) padMask() uint32 {
	used := b.width & 31
	if used == 0 {
		return 0
	}
	return ^uint32(0) << uint(wordBits-used)
}

// clearPadding zeroes the unused trailing bits of every row. Shifts
// can pull live bits into the padding region, so this runs after
// every word-level combine.
func (b *Bitmap) clearPadding() {
	mask := b.padMask()
	if mask == 0 {
		return
	}
	for i := b.wpr - 1; i < len(b.words); i += b.wpr {
		b.words[i] &= mask
	}
}

// AddBorder returns a new image enlarged by npix pixels on every
// side, with the border set to val.
func (b *Bitmap) AddBorder(npix int, val bool) *Bitmap {
	if npix <= 0 {
		return b.Clone()
	}
	n, _ := New(b.width+2*npix, b.height+2*npix)
	if val {
		n.Fill(true)
	}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			n.SetUnchecked(x+npix, y+npix, b.GetUnchecked(x, y))
		}
	}
	return n
}

// RemoveBorder returns a new image cropped by npix pixels on every
// side.
func (b *Bitmap) RemoveBorder(npix int) (*Bitmap, error) {
	if npix < 0 || b.width <= 2*npix || b.height <= 2*npix {
		return nil, ErrInvalidSize
	}
	if npix == 0 {
		return b.Clone(), nil
	}
	n, _ := New(b.width-2*npix, b.height-2*npix)
	for y := 0; y < n.height; y++ {
		for x := 0; x < n.width; x++ {
			n.SetUnchecked(x, y, b.GetUnchecked(x+npix, y+npix))
		}
	}
	return n, nil
}
