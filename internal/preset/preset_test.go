// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rescribe.xyz/pagemorph/morph"
)

func TestDefaultsParse(t *testing.T) {
	for name, seq := range Default() {
		_, err := morph.ParseSequence(seq)
		assert.NoError(t, err, "preset %s (%s)", name, seq)
	}
}

func TestLoadMerge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	err := os.WriteFile(path, []byte("blur: d5.5\ndespeckle: o3.3\n"), 0644)
	require.NoError(t, err)

	p, err := Load(path)
	require.NoError(t, err)

	// new entries are added, file entries override defaults, and the
	// untouched defaults stay
	assert.Equal(t, "d5.5", p["blur"])
	assert.Equal(t, "o3.3", p["despeckle"])
	assert.Equal(t, "c3.3", p["heal"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nosuch.yaml"))
	assert.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- not yaml"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestNames(t *testing.T) {
	names := Default().Names()
	assert.True(t, sortedStrings(names))
	assert.Contains(t, names, "despeckle")
	assert.Contains(t, names, "textblocks")
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}
