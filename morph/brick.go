// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package morph

import (
	"rescribe.xyz/pagemorph/bitimg"
)

// The brick operations never run a full 2-D rasterop. A solid
// hsize x vsize brick is separable, so the 2-D operation runs as a
// horizontal 1-D pass followed by a vertical one, costing
// O(hsize+vsize) shifted copies instead of O(hsize*vsize). Each 1-D
// pass of composite size n = f1*f2 is in turn factored into a
// brick(f1) pass and a comb(f1,f2) pass, costing O(f1+f2) copies
// instead of O(n). Both rewrites are bit-identical to the direct
// rasterop.

// factorPair returns the factor pair of n nearest sqrt(n), or (0, 0)
// when n is prime or too small to be worth splitting.
func factorPair(n int) (f1, f2 int) {
	if n < 4 {
		return 0, 0
	}
	for d := isqrt(n); d >= 2; d-- {
		if n%d == 0 {
			return d, n / d
		}
	}
	return 0, 0
}

func isqrt(n int) int {
	d := 1
	for (d+1)*(d+1) <= n {
		d++
	}
	return d
}

// lineSel builds the 1-D brick of length n in the given direction.
func lineSel(n int, dir Direction) *Sel {
	var s *Sel
	if dir == Horizontal {
		s, _ = Brick(n, 1)
	} else {
		s, _ = Brick(1, n)
	}
	return s
}

// apply1D runs one 1-D pass of length n, composite-decomposed where n
// factors. The composite passes run along the same axis, so
// foreground pushed over the image edge by the first pass would be
// cropped before the second could pull it back in; running them on a
// padded canvas keeps the result bit-identical to the plain brick.
func apply1D(b *bitimg.Bitmap, n int, dir Direction, op func(*bitimg.Bitmap, *Sel) *bitimg.Bitmap) *bitimg.Bitmap {
	if n == 1 {
		return b
	}
	f1, f2 := factorPair(n)
	if f1 == 0 {
		return op(b, lineSel(n, dir))
	}
	comb, _ := Comb(f1, f2, dir)
	pad := b.AddBorder(n, false)
	out := op(op(pad, lineSel(f1, dir)), comb)
	out, _ = out.RemoveBorder(n)
	return out
}

// oddSizes validates brick sizes and rounds even ones up to odd, so
// the operation stays centred on the origin.
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

func brickOp(b *bitimg.Bitmap, hsize, vsize int, op func(*bitimg.Bitmap, *Sel) *bitimg.Bitmap) (*bitimg.Bitmap, error) {
	hsize, vsize, err := oddSizes(hsize, vsize)
	if err != nil {
		return nil, err
	}
	if hsize == 1 && vsize == 1 {
		return b.Clone(), nil
	}
	out := apply1D(b, hsize, Horizontal, op)
	out = apply1D(out, vsize, Vertical, op)
	if out == b {
		out = b.Clone()
	}
	return out, nil
}

// DilateBrick dilates by a solid hsize x vsize brick. Even sizes are
// incremented to the next odd size.
func DilateBrick(b *bitimg.Bitmap, hsize, vsize int) (*bitimg.Bitmap, error) {
	return brickOp(b, hsize, vsize, Dilate)
}

// ErodeBrick erodes by a solid hsize x vsize brick.
func ErodeBrick(b *bitimg.Bitmap, hsize, vsize int) (*bitimg.Bitmap, error) {
	return brickOp(b, hsize, vsize, Erode)
}

// OpenBrick erodes and then dilates by a solid brick.
func OpenBrick(b *bitimg.Bitmap, hsize, vsize int) (*bitimg.Bitmap, error) {
	e, err := ErodeBrick(b, hsize, vsize)
	if err != nil {
		return nil, err
	}
	return DilateBrick(e, hsize, vsize)
}

// CloseBrick dilates and then erodes by a solid brick.
func CloseBrick(b *bitimg.Bitmap, hsize, vsize int) (*bitimg.Bitmap, error) {
	d, err := DilateBrick(b, hsize, vsize)
	if err != nil {
		return nil, err
	}
	return ErodeBrick(d, hsize, vsize)
}

// CloseSafeBrick closes by a solid brick on an enlarged canvas and
// crops back, protecting foreground at the image boundary.
func CloseSafeBrick(b *bitimg.Bitmap, hsize, vsize int) (*bitimg.Bitmap, error) {
	hsize, vsize, err := oddSizes(hsize, vsize)
	if err != nil {
		return nil, err
	}
	border := hsize
	if vsize > border {
		border = vsize
	}
	big := b.AddBorder(border, false)
	closed, err := CloseBrick(big, hsize, vsize)
	if err != nil {
		return nil, err
	}
	return closed.RemoveBorder(border)
}
