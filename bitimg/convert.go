// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package bitimg

import (
	"image"
	"image/color"
	"image/draw"
)

// FromGray converts a grayscale image to a Bitmap; pixels darker than
// thresh become foreground.
func FromGray(img *image.Gray, thresh uint8) (*Bitmap, error) {
	r := img.Bounds()
	b, err := New(r.Dx(), r.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if img.GrayAt(r.Min.X+x, r.Min.Y+y).Y < thresh {
				b.SetUnchecked(x, y, true)
			}
		}
	}
	return b, nil
}

// FromImage converts an image to a Bitmap, thresholding at thresh.
// Only grayscale and RGB-family sources are accepted; anything else
// gets ErrWrongDepth.
func FromImage(img image.Image, thresh uint8) (*Bitmap, error) {
	switch img.(type) {
	case *image.Gray:
		return FromGray(img.(*image.Gray), thresh)
	case *image.RGBA, *image.NRGBA, *image.YCbCr, *image.Gray16, *image.Paletted:
		r := img.Bounds()
		gray := image.NewGray(image.Rect(0, 0, r.Dx(), r.Dy()))
		draw.Draw(gray, gray.Bounds(), img, r.Min, draw.Src)
		return FromGray(gray, thresh)
	}
	return nil, ErrWrongDepth
}

// ToGray renders a Bitmap as a grayscale image with black foreground
// on a white background.
func (b *Bitmap) ToGray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.GetUnchecked(x, y) {
				img.SetGray(x, y, color.Gray{0})
			} else {
				img.SetGray(x, y, color.Gray{255})
			}
		}
	}
	return img
}
