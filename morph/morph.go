// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package morph

import (
	"rescribe.xyz/pagemorph/bitimg"
)

// Dilate returns the dilation of b by sel: a pixel is set in the
// result wherever any hit of sel, placed with its origin on a
// foreground pixel of b, covers it. It is computed as an OR
// accumulation of word-shifted copies of b, one per hit.
func Dilate(b *bitimg.Bitmap, sel *Sel) *bitimg.Bitmap {
	out, _ := bitimg.New(b.Width(), b.Height())
	for _, o := range sel.HitOffsets() {
		out.OrShifted(b, o.X, o.Y)
	}
	return out
}

// Erode returns the erosion of b by sel: a pixel survives only if
// every hit of sel, placed with its origin on it, lies on foreground.
// Pixels outside the image read as background, so foreground touching
// the boundary erodes away; see CloseSafe for the bordered variant.
func Erode(b *bitimg.Bitmap, sel *Sel) *bitimg.Bitmap {
	out, _ := bitimg.New(b.Width(), b.Height())
	out.Fill(true)
	for _, o := range sel.HitOffsets() {
		out.AndShifted(b, -o.X, -o.Y)
	}
	return out
}

// Open erodes and then dilates with the same sel, removing foreground
// features smaller than the sel.
func Open(b *bitimg.Bitmap, sel *Sel) *bitimg.Bitmap {
	return Dilate(Erode(b, sel), sel)
}

// Close dilates and then erodes with the same sel, filling background
// features smaller than the sel.
func Close(b *bitimg.Bitmap, sel *Sel) *bitimg.Bitmap {
	return Erode(Dilate(b, sel), sel)
}

// CloseSafe closes after enlarging the canvas, then crops back, so
// that true foreground at the image boundary is not spuriously eroded
// by the second pass.
func CloseSafe(b *bitimg.Bitmap, sel *Sel) *bitimg.Bitmap {
	border := sel.Width()
	if sel.Height() > border {
		border = sel.Height()
	}
	big := b.AddBorder(border, false)
	closed := Close(big, sel)
	out, _ := closed.RemoveBorder(border)
	return out
}
