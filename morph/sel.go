// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// Package morph implements binary morphology on bit-packed images:
// structuring elements, word-level rasterop dilation and erosion,
// separable and composite brick decomposition, rank reduction,
// replicative expansion, and a small textual sequence language for
// chaining operations.
package morph

import (
	"errors"
	"image"
)

var (
	// ErrInvalidSize is returned for zero or otherwise out-of-range
	// structuring element and operation sizes.
	ErrInvalidSize = errors.New("morph: invalid size")
)

// Cell is one entry of a structuring element grid.
type Cell uint8

const (
	// DontCare cells take no part in any operation.
	DontCare Cell = iota
	// Hit cells participate in dilation and erosion.
	Hit
	// Miss cells participate only in hit-miss transforms.
	Miss
)

// Direction selects the orientation of a 1-D structuring element.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// Sel is a structuring element: a grid of cells with an origin. Sels
// are immutable once constructed; build them with the factory
// functions or NewSel.
type Sel struct {
	width  int
	height int
	cx, cy int // origin
	cells  []Cell
}

// NewSel constructs a Sel from a grid of cells, indexed [row][col],
// with origin (cx, cy). All rows must have the same length.
func NewSel(grid [][]Cell, cx, cy int) (*Sel, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrInvalidSize
	}
	h, w := len(grid), len(grid[0])
	if cx < 0 || cx >= w || cy < 0 || cy >= h {
		return nil, ErrInvalidSize
	}
	s := &Sel{width: w, height: h, cx: cx, cy: cy, cells: make([]Cell, w*h)}
	for y, row := range grid {
		if len(row) != w {
			return nil, ErrInvalidSize
		}
		copy(s.cells[y*w:], row)
	}
	return s, nil
}

// Width returns the grid width.
func (s *Sel) Width() int { return s.width }

// Height returns the grid height.
func (s *Sel) Height() int { return s.height }

// Origin returns the origin column and row.
func (s *Sel) Origin() (cx, cy int) { return s.cx, s.cy }

// At returns the cell at column x, row y.
func (s *Sel) At(x, y int) Cell { return s.cells[y*s.width+x] }

// HitOffsets returns the (dx, dy) offset of every Hit cell relative
// to the origin.
func (s *Sel) HitOffsets() []image.Point {
	var offs []image.Point
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			if s.cells[y*s.width+x] == Hit {
				offs = append(offs, image.Pt(x-s.cx, y-s.cy))
			}
		}
	}
	return offs
}

// Brick returns a solid rectangular Sel of the given width and
// height with the origin at the centre.
func Brick(width, height int) (*Sel, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	s := &Sel{width: width, height: height, cx: width / 2, cy: height / 2}
	s.cells = make([]Cell, width*height)
	for i := range s.cells {
		s.cells[i] = Hit
	}
	return s, nil
}

// Cross returns a plus-shaped Sel of the given (odd) size: the
// central row and central column are hits.
func Cross(size int) (*Sel, error) {
	if size <= 0 || size%2 == 0 {
		return nil, ErrInvalidSize
	}
	s := &Sel{width: size, height: size, cx: size / 2, cy: size / 2}
	s.cells = make([]Cell, size*size)
	for i := 0; i < size; i++ {
		s.cells[s.cy*size+i] = Hit
		s.cells[i*size+s.cx] = Hit
	}
	return s, nil
}

// Diamond returns a diamond-shaped Sel of the given radius: cells
// within manhattan distance radius of the centre are hits.
func Diamond(radius int) (*Sel, error) {
	if radius < 0 {
		return nil, ErrInvalidSize
	}
	size := 2*radius + 1
	s := &Sel{width: size, height: size, cx: radius, cy: radius}
	s.cells = make([]Cell, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if abs(x-radius)+abs(y-radius) <= radius {
				s.cells[y*size+x] = Hit
			}
		}
	}
	return s, nil
}

// Comb returns a sparse 1-D Sel of length f1*f2 with f2 hits spaced
// f1 apart, used as the second pass of a composite decomposition:
// dilating by Brick(f1, 1) and then by Comb(f1, f2, Horizontal) is
// identical to dilating by Brick(f1*f2, 1).
func Comb(f1, f2 int, dir Direction) (*Sel, error) {
	if f1 <= 0 || f2 <= 0 {
		return nil, ErrInvalidSize
	}
	size := f1 * f2
	var s *Sel
	if dir == Horizontal {
		s = &Sel{width: size, height: 1, cx: size / 2, cy: 0}
	} else {
		s = &Sel{width: 1, height: size, cx: 0, cy: size / 2}
	}
	s.cells = make([]Cell, size)
	for i := 0; i < f2; i++ {
		s.cells[i*f1+f1/2] = Hit
	}
	return s, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
