// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package graymorph

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rescribe.xyz/pagemorph/morph"
)

func TestRunSequence(t *testing.T) {
	img := randomGray(30, 30, 10)
	seq, err := morph.ParseSequence("d3.3 + e5.1 + o3.3")
	require.NoError(t, err)

	got, err := RunSequence(img, seq)
	require.NoError(t, err)

	want, err := Dilate(img, 3, 3)
	require.NoError(t, err)
	want, err = Erode(want, 5, 1)
	require.NoError(t, err)
	want, err = Open(want, 3, 3)
	require.NoError(t, err)
	assert.True(t, grayEqual(got, want))
}

func TestRunSequenceWrongDepth(t *testing.T) {
	seq, err := morph.ParseSequence("d3.3")
	require.NoError(t, err)
	_, err = RunSequence(image.NewRGBA(image.Rect(0, 0, 10, 10)), seq)
	assert.ErrorIs(t, err, ErrWrongDepth)
}

func TestRunSequenceBinaryOnlyOps(t *testing.T) {
	img := randomGray(20, 20, 11)
	for _, s := range []string{"r2", "x2", "d3.3 + r23", "b16 + c3.3"} {
		seq, err := morph.ParseSequence(s)
		require.NoError(t, err, s)
		_, err = RunSequence(img, seq)
		assert.ErrorIs(t, err, morph.ErrUnsupportedOp, s)
	}
}

func TestRunSequenceCopies(t *testing.T) {
	img := randomGray(15, 15, 12)
	orig := cloneGray(img)
	seq, err := morph.ParseSequence("c5.5")
	require.NoError(t, err)

	out, err := RunSequence(img, seq)
	require.NoError(t, err)
	assert.True(t, grayEqual(img, orig), "input image modified")
	out.Pix[0] = out.Pix[0] + 1
	assert.True(t, grayEqual(img, orig))
}
