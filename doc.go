// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

/*
The pagemorph package contains tools and functions for cleaning up
scanned page images before OCR, built around bit-packed binary
morphology and grayscale sliding-window morphology.

Introduction

Page cleanup is mostly a matter of chaining a few morphological
operations: open to drop speckle noise, close to heal broken strokes,
a rank reduction or two to work at lower resolution, and so on. The
packages here provide those primitives and a small textual sequence
language to chain them:

	seq, err := morph.ParseSequence("o5.5 + c3.3")
	cleaned, err := seq.Run(img)

The bitimg package holds the bit-packed binary image type that the
binary operations run on, with its word-level shift-and-combine
primitive. The morph package provides structuring elements, dilation,
erosion, opening and closing, together with the separable and
composite brick decompositions that make large bricks cheap. The
graymorph package does the grayscale equivalent with the van
Herk/Gil-Werman running max/min algorithm. The binarize and
integralimg packages convert grayscale pages to binary with global or
locally adaptive thresholds.

The root package holds the outer surface shared by the command line
tools: histogram graphing and PDF bundling of processed pages.

All of the tools in cmd/ will give information on what they do and
how they work with the '-h' flag, so for example to get usage
information on the morphseq tool simply run the following:

	morphseq -h
*/
package pagemorph
