// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package bitimg

// Word-level rasterop: rows are combined whole words at a time, a
// horizontal shift of s bits within a row being
// (w[i]<<s)|(w[i+1]>>(32-s)) in one direction and the mirror image in
// the other. Words beyond the valid range of a row contribute zero,
// which is also the boundary condition for pixels outside the image.

// shiftedWord returns the word at index i of row src after the row
// has been translated dx pixels to the right (dx may be negative).
// Out-of-range source words read as zero.
func shiftedWord(src []uint32, i, dx int) uint32 {
	var wo, s int
	if dx >= 0 {
		wo, s = dx>>5, dx&31
		j := i - wo
		var w uint32
		if j >= 0 && j < len(src) {
			w = src[j] >> uint(s)
		}
		if s > 0 && j-1 >= 0 && j-1 < len(src) {
			w |= src[j-1] << uint(wordBits-s)
		}
		return w
	}
	wo, s = (-dx)>>5, (-dx)&31
	j := i + wo
	var w uint32
	if j >= 0 && j < len(src) {
		w = src[j] << uint(s)
	}
	if s > 0 && j+1 >= 0 && j+1 < len(src) {
		w |= src[j+1] >> uint(wordBits-s)
	}
	return w
}

// OrShifted ORs a copy of src translated by (dx, dy) into b. Source
// pixels outside the image contribute background. The two images must
// have the same dimensions.
func (b *Bitmap) OrShifted(src *Bitmap, dx, dy int) {
	for y := 0; y < b.height; y++ {
		sy := y - dy
		if sy < 0 || sy >= b.height {
			continue
		}
		srow := src.Row(sy)
		drow := b.Row(y)
		for i := range drow {
			drow[i] |= shiftedWord(srow, i, dx)
		}
	}
	b.clearPadding()
}

// AndShifted ANDs a copy of src translated by (dx, dy) into b.
// Source pixels outside the image read as zero, so out-of-range
// positions force the accumulator to background; this is the
// asymmetric boundary condition erosion depends on.
func (b *Bitmap) AndShifted(src *Bitmap, dx, dy int) {
	for y := 0; y < b.height; y++ {
		sy := y - dy
		drow := b.Row(y)
		if sy < 0 || sy >= b.height {
			for i := range drow {
				drow[i] = 0
			}
			continue
		}
		srow := src.Row(sy)
		for i := range drow {
			drow[i] &= shiftedWord(srow, i, dx)
		}
	}
	b.clearPadding()
}
