// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// grayhist draws the gray level histogram of a page image, marking
// the threshold Otsu's method would binarize it at.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"rescribe.xyz/pagemorph"
	"rescribe.xyz/pagemorph/binarize"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: grayhist inimg graph.png")
		flag.PrintDefaults()
	}
	nothresh := flag.Bool("nothresh", false, "Don't mark the Otsu threshold on the graph.")
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		return
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("Could not open file %s: %v\n", flag.Arg(0), err)
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		log.Fatalf("Could not decode image: %v\n", err)
	}
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)

	thresh := -1
	if !*nothresh {
		thresh = int(binarize.OtsuThreshold(gray))
	}

	fout, err := os.Create(flag.Arg(1))
	if err != nil {
		log.Fatalf("Could not create file %s: %v\n", flag.Arg(1), err)
	}
	defer fout.Close()
	err = pagemorph.GraphHistogram(binarize.Histogram(gray), flag.Arg(0), thresh, fout)
	if err != nil {
		log.Fatalf("Could not create graph: %v\n", err)
	}
}
