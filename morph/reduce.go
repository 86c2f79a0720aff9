// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package morph

import (
	"rescribe.xyz/pagemorph/bitimg"
)

// ReduceRank2 halves the image in both dimensions. Each output pixel
// covers a 2x2 block of the source and is set when at least rank
// (1 to 4) of the block's pixels are foreground. Rank 1 behaves like
// a dilating reduction, rank 4 like an eroding one.
func ReduceRank2(b *bitimg.Bitmap, rank int) (*bitimg.Bitmap, error) {
	if rank < 1 || rank > 4 {
		return nil, ErrInvalidSize
	}
	w, h := b.Width()/2, b.Height()/2
	if w < 1 || h < 1 {
		return nil, ErrInvalidSize
	}
	out, err := bitimg.New(w, h)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var n int
			if b.GetUnchecked(2*x, 2*y) {
				n++
			}
			if b.GetUnchecked(2*x+1, 2*y) {
				n++
			}
			if b.GetUnchecked(2*x, 2*y+1) {
				n++
			}
			if b.GetUnchecked(2*x+1, 2*y+1) {
				n++
			}
			if n >= rank {
				out.SetUnchecked(x, y, true)
			}
		}
	}
	return out, nil
}

// ReduceRankCascade applies a chain of 2x rank reductions, one per
// level.
func ReduceRankCascade(b *bitimg.Bitmap, levels ...int) (*bitimg.Bitmap, error) {
	if len(levels) == 0 {
		return nil, ErrInvalidSize
	}
	out := b
	for _, rank := range levels {
		var err error
		out, err = ReduceRank2(out, rank)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ExpandReplicate scales the image up by an integer factor,
// replicating each pixel into a factor x factor block.
func ExpandReplicate(b *bitimg.Bitmap, factor int) (*bitimg.Bitmap, error) {
	if factor < 1 {
		return nil, ErrInvalidSize
	}
	if factor == 1 {
		return b.Clone(), nil
	}
	out, err := bitimg.New(b.Width()*factor, b.Height()*factor)
	if err != nil {
		return nil, err
	}
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if !b.GetUnchecked(x, y) {
				continue
			}
			for dy := 0; dy < factor; dy++ {
				for dx := 0; dx < factor; dx++ {
					out.SetUnchecked(x*factor+dx, y*factor+dy, true)
				}
			}
		}
	}
	return out, nil
}
