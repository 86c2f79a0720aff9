// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package graymorph

import (
	"fmt"
	"image"

	"rescribe.xyz/pagemorph/morph"
)

// RunSequence applies a parsed morphological sequence to a grayscale
// image. Only the dilate, erode, open and close tokens are meaningful
// on grayscale; rank reduction, expansion and borders operate on
// packed binary images and report morph.ErrUnsupportedOp here.
// Anything but an *image.Gray gets ErrWrongDepth.
func RunSequence(img image.Image, seq *morph.Sequence) (*image.Gray, error) {
	gray, ok := img.(*image.Gray)
	if !ok {
		return nil, ErrWrongDepth
	}
	if seq.Border() > 0 {
		return nil, fmt.Errorf("%w: %q on grayscale", morph.ErrUnsupportedOp, "b")
	}
	out := gray
	var err error
	for _, op := range seq.Ops() {
		switch op.Kind {
		case morph.OpDilate:
			out, err = Dilate(out, op.H, op.V)
		case morph.OpErode:
			out, err = Erode(out, op.H, op.V)
		case morph.OpOpen:
			out, err = Open(out, op.H, op.V)
		case morph.OpClose:
			out, err = Close(out, op.H, op.V)
		default:
			return nil, fmt.Errorf("%w: %q on grayscale", morph.ErrUnsupportedOp, op.Token)
		}
		if err != nil {
			return nil, fmt.Errorf("sequence %q: %w", op.Token, err)
		}
	}
	if out == gray {
		out = cloneGray(gray)
	}
	return out, nil
}
