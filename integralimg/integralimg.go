// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// Package integralimg computes integral images, which allow the sum,
// mean and standard deviation of any rectangular window of an image
// to be found in constant time.
package integralimg

import (
	"image"
	"math"
)

// I is an integral image: cell (x, y) holds the sum of all pixels at
// or left-above (x, y).
type I struct {
	width  int
	height int
	cells  []uint64
}

// WithSq holds an integral image and the integral image of the
// squared pixel values, which together give windowed mean and
// standard deviation.
type WithSq struct {
	Img I
	Sq  I
}

// Window is the four corner sums of a rectangular part of an
// integral image.
type Window struct {
	topleft     uint64
	topright    uint64
	bottomleft  uint64
	bottomright uint64
	width       int
	height      int
}

func build(img *image.Gray, square bool) I {
	b := img.Bounds()
	i := I{width: b.Dx(), height: b.Dy()}
	i.cells = make([]uint64, i.width*i.height)
	for y := 0; y < i.height; y++ {
		for x := 0; x < i.width; x++ {
			var oldx, oldy, oldxy uint64
			if x > 0 {
				oldx = i.at(x-1, y)
			}
			if y > 0 {
				oldy = i.at(x, y-1)
			}
			if x > 0 && y > 0 {
				oldxy = i.at(x-1, y-1)
			}
			pixel := uint64(img.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			if square {
				pixel *= pixel
			}
			i.cells[y*i.width+x] = pixel + oldx + oldy - oldxy
		}
	}
	return i
}

func (i I) at(x, y int) uint64 { return i.cells[y*i.width+x] }

// New creates an integral image.
func New(img *image.Gray) I {
	return build(img, false)
}

// NewSq creates an integral image of the squares of all pixel
// values.
func NewSq(img *image.Gray) I {
	return build(img, true)
}

// NewWithSq creates both a regular and a squared integral image.
func NewWithSq(img *image.Gray) WithSq {
	return WithSq{Img: New(img), Sq: NewSq(img)}
}

// GetWindow gets the corner sums of the size x size window centred
// on (x, y), clipped to the image.
func (i I) GetWindow(x, y, size int) Window {
	step := size / 2

	minx, miny := 0, 0
	maxx, maxy := i.width-1, i.height-1

	if x > step+1 {
		minx = x - step - 1
	}
	if y > step+1 {
		miny = y - step - 1
	}
	if maxx > x+step {
		maxx = x + step
	}
	if maxy > y+step {
		maxy = y + step
	}

	return Window{i.at(minx, miny), i.at(maxx, miny), i.at(minx, maxy), i.at(maxx, maxy), maxx - minx, maxy - miny}
}

// GetVerticalWindow gets the corner sums of the full-height window
// of the given width starting at x.
func (i I) GetVerticalWindow(x, width int) Window {
	minx := x
	maxx := x + width
	if maxx > i.width-1 {
		maxx = i.width - 1
	}
	return Window{i.at(minx, 0), i.at(maxx, 0), i.at(minx, i.height-1), i.at(maxx, i.height-1), maxx - minx, i.height - 1}
}

// Sum returns the sum of all pixels in a Window.
func (w Window) Sum() uint64 {
	return w.bottomright + w.topleft - w.topright - w.bottomleft
}

// Size returns the total area of a Window.
func (w Window) Size() int {
	return w.width * w.height
}

// Mean returns the average pixel value in a Window.
func (w Window) Mean() float64 {
	return float64(w.Sum()) / float64(w.Size())
}

// Proportion returns the proportion of black pixels in a Window of a
// binarised image, where black is 0 and white is 255.
func (w Window) Proportion() float64 {
	area := float64(w.Size())
	sum := float64(w.Sum())
	return (area - sum/255) / area
}

// MeanWindow calculates the mean pixel value of the size x size
// window centred on (x, y).
func (i I) MeanWindow(x, y, size int) float64 {
	return i.GetWindow(x, y, size).Mean()
}

// MeanStdDevWindow calculates the mean and standard deviation of the
// size x size window centred on (x, y).
func (ws WithSq) MeanStdDevWindow(x, y, size int) (float64, float64) {
	imean := ws.Img.GetWindow(x, y, size).Mean()
	smean := ws.Sq.GetWindow(x, y, size).Mean()

	variance := smean - imean*imean

	return imean, math.Sqrt(variance)
}
