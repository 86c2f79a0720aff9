// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// pagepdf bundles processed page images into a PDF, one page per
// image, in the order given.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"rescribe.xyz/pagemorph"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: pagepdf out.pdf img1 [img2 ...]")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(1)
	}

	pdf := new(pagemorph.Fpdf)
	if err := pdf.Setup(); err != nil {
		log.Fatalf("Could not set up PDF: %v\n", err)
	}
	for _, imgpath := range flag.Args()[1:] {
		if err := pdf.AddPage(imgpath); err != nil {
			log.Fatalf("Could not add page %s: %v\n", imgpath, err)
		}
	}
	if err := pdf.Save(flag.Arg(0)); err != nil {
		log.Fatalf("Could not save PDF: %v\n", err)
	}
}
