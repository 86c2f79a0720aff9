// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// morphseq applies a chain of morphological operations to a page
// image, described with the sequence language of the morph package.
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

	"rescribe.xyz/pagemorph/binarize"
	"rescribe.xyz/pagemorph/bitimg"
	"rescribe.xyz/pagemorph/graymorph"
	"rescribe.xyz/pagemorph/internal/preset"
	"rescribe.xyz/pagemorph/morph"
)

func initLogger(verbose bool) *logrus.Logger {
	logger := logrus.New()
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: morphseq [-seq sequence] [-preset name] [-presets file.yaml] [-gray] [-thresh n] inimg outimg\n")
		fmt.Fprintf(os.Stderr, "Apply a morphological sequence to an image, e.g. -seq 'o5.5 + c3.3'\n")
		flag.PrintDefaults()
	}
	seqtext := flag.String("seq", "", "Sequence to apply, e.g. 'o5.5 + d3.3'. Overrides -preset.")
	presetname := flag.String("preset", "", "Name of a preset sequence to apply. Use -list to see them.")
	presetfile := flag.String("presets", "", "YAML file of extra named presets.")
	list := flag.Bool("list", false, "List available presets and exit.")
	gray := flag.Bool("gray", false, "Run the sequence on the grayscale image rather than binarizing first.")
	thresh := flag.Int("thresh", 0, "Binarization threshold (1-255). Otsu's threshold is used if not set.")
	verbose := flag.Bool("v", false, "Verbose output.")
	flag.Parse()

	logger := initLogger(*verbose)

	presets := preset.Default()
	if *presetfile != "" {
		var err error
		presets, err = preset.Load(*presetfile)
		if err != nil {
			logger.Fatal(err)
		}
	}
	if *list {
		for _, name := range presets.Names() {
			fmt.Printf("%s: %s\n", name, presets[name])
		}
		return
	}

	text := *seqtext
	if text == "" && *presetname != "" {
		var ok bool
		text, ok = presets[*presetname]
		if !ok {
			logger.Fatalf("No preset named %s", *presetname)
		}
	}
	if text == "" || flag.NArg() < 2 {
		flag.Usage()
		os.Exit(1)
	}

	seq, err := morph.ParseSequence(text)
	if err != nil {
		logger.Fatalf("Could not parse sequence: %v", err)
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
	grayimg := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(grayimg, grayimg.Bounds(), img, b.Min, draw.Src)

	var out image.Image
	if *gray {
		res, err := graymorph.RunSequence(grayimg, seq)
		if err != nil {
			logger.Fatalf("Could not run sequence: %v", err)
		}
		out = res
	} else {
		t := uint8(*thresh)
		if *thresh == 0 {
			t = binarize.OtsuThreshold(grayimg)
			logger.WithFields(logrus.Fields{"threshold": t}).Debug("binarizing with Otsu's threshold")
		}
		bm, err := bitimg.FromGray(grayimg, t)
		if err != nil {
			logger.Fatalf("Could not binarize image: %v", err)
		}
		logger.WithFields(logrus.Fields{
			"width":      bm.Width(),
			"height":     bm.Height(),
			"foreground": bm.CountForeground(),
		}).Debug("binarized")
		res, err := seq.Run(bm)
		if err != nil {
			logger.Fatalf("Could not run sequence: %v", err)
		}
		logger.WithFields(logrus.Fields{
			"width":      res.Width(),
			"height":     res.Height(),
			"foreground": res.CountForeground(),
		}).Debug("sequence done")
		out = res.ToGray()
	}

	fout, err := os.Create(flag.Arg(1))
	if err != nil {
		logger.Fatalf("Could not create file %s: %v", flag.Arg(1), err)
	}
	defer fout.Close()
	if err := png.Encode(fout, out); err != nil {
		logger.Fatalf("Could not encode image: %v", err)
	}
}
