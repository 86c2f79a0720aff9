// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// binarize converts a page image to black and white with a global
// Otsu threshold or Sauvola's locally adaptive threshold, optionally
// running a morphological cleanup sequence over the result.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/sirupsen/logrus"
	xdraw "golang.org/x/image/draw"

	"rescribe.xyz/pagemorph/binarize"
	"rescribe.xyz/pagemorph/bitimg"
	"rescribe.xyz/pagemorph/morph"
)

// autowsize picks a sensible Sauvola window size from the image
// resolution.
func autowsize(bounds image.Rectangle) int {
	return bounds.Dx() / 60
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: binarize [-bt type] [-bw winsize] [-k num] [-scale num] [-seq sequence] inimg outimg\n")
		fmt.Fprintf(os.Stderr, "Binarize an image, optionally cleaning it up with a morphological sequence\n")
		flag.PrintDefaults()
	}
	btype := flag.String("bt", "integralsauvola", "Type of binarization: otsu, sauvola or integralsauvola.")
	binwsize := flag.Int("bw", 0, "Window size for sauvola binarization. Set automatically based on resolution if not set.")
	ksize := flag.Float64("k", 0.5, "K for sauvola binarization. This controls the overall threshold level. Set it lower for very light text (try 0.1 or 0.2).")
	scale := flag.Float64("scale", 1.0, "Scale the image by this factor before binarizing.")
	seqtext := flag.String("seq", "", "Morphological cleanup sequence to run after binarizing, e.g. 'o2.2'.")
	verbose := flag.Bool("v", false, "Verbose output.")
	flag.Parse()
	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(1)
	}

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	var seq *morph.Sequence
	if *seqtext != "" {
		var err error
		seq, err = morph.ParseSequence(*seqtext)
		if err != nil {
			logger.Fatalf("Could not parse sequence: %v", err)
		}
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		logger.Fatalf("Could not open file %s: %v", flag.Arg(0), err)
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		logger.Fatalf("Could not decode image: %v", err)
	}
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)

	if *scale != 1.0 && *scale > 0 {
		scaled := image.NewGray(image.Rect(0, 0, int(float64(b.Dx())**scale), int(float64(b.Dy())**scale)))
		xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), gray, gray.Bounds(), xdraw.Src, nil)
		gray = scaled
		logger.WithFields(logrus.Fields{"width": scaled.Bounds().Dx(), "height": scaled.Bounds().Dy()}).Debug("scaled")
	}

	if *binwsize == 0 {
		*binwsize = autowsize(gray.Bounds())
	}
	if *binwsize%2 == 0 {
		*binwsize++
	}

	var bm *bitimg.Bitmap
	switch *btype {
	case "otsu":
		t := binarize.OtsuThreshold(gray)
		logger.WithFields(logrus.Fields{"threshold": t}).Debug("otsu")
		bm = binarize.Binarize(gray, t)
	case "sauvola":
		bm = binarize.Sauvola(gray, *ksize, *binwsize)
	case "integralsauvola":
		bm = binarize.IntegralSauvola(gray, *ksize, *binwsize)
	default:
		logger.Fatalf("Unknown binarization type %s", *btype)
	}

	if seq != nil {
		bm, err = seq.Run(bm)
		if err != nil {
			logger.Fatalf("Could not run cleanup sequence: %v", err)
		}
	}

	fout, err := os.Create(flag.Arg(1))
	if err != nil {
		logger.Fatalf("Could not create file %s: %v", flag.Arg(1), err)
	}
	defer fout.Close()
	if err := png.Encode(fout, bm.ToGray()); err != nil {
		logger.Fatalf("Could not encode image: %v", err)
	}
}
