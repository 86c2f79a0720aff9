// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// Package graymorph implements grayscale dilation, erosion, opening
// and closing over rectangular windows using the van Herk/Gil-Werman
// running max/min algorithm, which costs at most three comparisons
// per pixel however large the window is.
package graymorph

import (
	"errors"
	"image"
)

var (
	// ErrInvalidSize is returned for zero window sizes.
	ErrInvalidSize = errors.New("graymorph: invalid size")
	// ErrWrongDepth is returned when a sequence is run over an image
	// that is not 8 bit grayscale.
	ErrWrongDepth = errors.New("graymorph: wrong image depth")
)

// Pixels outside the image read as 0 for dilation and 255 for
// erosion, mirroring the binary engine's boundary condition: the
// border never contributes to the running max or min.

// vhgw computes a sliding max (or min) of the given window size over
// line, writing to out. fwd, bwd and buf are scratch slices of
// scratchLen(len(line), size) bytes. The line is copied into buf
// padded with the border value to a multiple of the window size;
// fwd[j] is the running extremum from the last window-aligned
// boundary at or before j, bwd[j] from the boundary after j, and the
// result for a window is the extremum of one of each.
func vhgw(out, line []uint8, size int, border uint8, max bool, fwd, bwd, buf []uint8) {
	n := len(line)
	r := size / 2
	for i := range buf {
		buf[i] = border
	}
	copy(buf[r:], line)
	for j := 0; j < len(buf); j++ {
		v := buf[j]
		if j%size != 0 && better(fwd[j-1], v, max) {
			v = fwd[j-1]
		}
		fwd[j] = v
	}
	for j := len(buf) - 1; j >= 0; j-- {
		v := buf[j]
		if j%size != size-1 && j != len(buf)-1 && better(bwd[j+1], v, max) {
			v = bwd[j+1]
		}
		bwd[j] = v
	}
	for i := 0; i < n; i++ {
		v := bwd[i]
		if better(fwd[i+size-1], v, max) {
			v = fwd[i+size-1]
		}
		out[i] = v
	}
}

func better(a, b uint8, max bool) bool {
	if max {
		return a > b
	}
	return a < b
}

func scratchLen(n, size int) int {
	l := n + 2*(size/2)
	if rem := l % size; rem != 0 {
		l += size - rem
	}
	return l
}

// runHoriz applies a 1-D horizontal pass of the given window size.
func runHoriz(img *image.Gray, size int, border uint8, max bool) *image.Gray {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	sl := scratchLen(w, size)
	fwd, bwd, buf := make([]uint8, sl), make([]uint8, sl), make([]uint8, sl)
	for y := 0; y < h; y++ {
		line := img.Pix[y*img.Stride : y*img.Stride+w]
		vhgw(out.Pix[y*out.Stride:y*out.Stride+w], line, size, border, max, fwd, bwd, buf)
	}
	return out
}

// runVert applies a 1-D vertical pass of the given window size.
func runVert(img *image.Gray, size int, border uint8, max bool) *image.Gray {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	sl := scratchLen(h, size)
	fwd, bwd, buf := make([]uint8, sl), make([]uint8, sl), make([]uint8, sl)
	col := make([]uint8, h)
	res := make([]uint8, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			col[y] = img.Pix[y*img.Stride+x]
		}
		vhgw(res, col, size, border, max, fwd, bwd, buf)
		for y := 0; y < h; y++ {
			out.Pix[y*out.Stride+x] = res[y]
		}
	}
	return out
}

func oddSizes(hsize, vsize int) (int, int, error) {
	if hsize <= 0 || vsize <= 0 {
		return 0, 0, ErrInvalidSize
	}
	if hsize%2 == 0 {
		hsize++
	}
	if vsize%2 == 0 {
		vsize++
	}
	return hsize, vsize, nil
}

func run(img *image.Gray, hsize, vsize int, border uint8, max bool) (*image.Gray, error) {
	hsize, vsize, err := oddSizes(hsize, vsize)
	if err != nil {
		return nil, err
	}
	if hsize <= 3 && vsize <= 3 {
		return run3(img, hsize, vsize, border, max), nil
	}
	out := img
	if hsize > 1 {
		out = runHoriz(out, hsize, border, max)
	}
	if vsize > 1 {
		out = runVert(out, vsize, border, max)
	}
	if out == img {
		out = cloneGray(img)
	}
	return out, nil
}

func cloneGray(img *image.Gray) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	copy(out.Pix, img.Pix)
	return out
}

// Dilate computes the grayscale dilation of img over an
// hsize x vsize window: each output pixel is the maximum source value
// in the window. Even sizes are incremented to the next odd size.
func Dilate(img *image.Gray, hsize, vsize int) (*image.Gray, error) {
	return run(img, hsize, vsize, 0, true)
}

// Erode computes the grayscale erosion of img over an hsize x vsize
// window: each output pixel is the minimum source value in the
// window.
func Erode(img *image.Gray, hsize, vsize int) (*image.Gray, error) {
	return run(img, hsize, vsize, 255, false)
}

// Open erodes and then dilates over the same window.
func Open(img *image.Gray, hsize, vsize int) (*image.Gray, error) {
	e, err := Erode(img, hsize, vsize)
	if err != nil {
		return nil, err
	}
	return Dilate(e, hsize, vsize)
}

// Close dilates and then erodes over the same window.
func Close(img *image.Gray, hsize, vsize int) (*image.Gray, error) {
	d, err := Dilate(img, hsize, vsize)
	if err != nil {
		return nil, err
	}
	return Erode(d, hsize, vsize)
}
