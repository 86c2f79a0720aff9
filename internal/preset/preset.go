// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// Package preset maps names to morphological sequence strings, so
// that the command line tools can say -preset despeckle instead of
// spelling out a sequence. Extra presets can be loaded from a YAML
// file of name: sequence pairs.
package preset

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Presets is a named collection of sequence strings.
type Presets map[string]string

// Default returns the built in presets.
func Default() Presets {
	return Presets{
		// drop isolated specks smaller than 2x2
		"despeckle": "o2.2",
		// heal small breaks in strokes
		"heal": "c3.3",
		// close at quarter resolution, useful for finding text blocks
		"textblocks": "r23 + c9.9 + x4",
		// aggressive close that keeps boundary foreground intact
		"solidify": "b32 + c11.11",
	}
}

// Load reads presets from a YAML file and merges them over the
// defaults; file entries win.
func Load(path string) (Presets, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read preset file %s: %w", path, err)
	}
	var loaded Presets
	if err := yaml.Unmarshal(buf, &loaded); err != nil {
		return nil, fmt.Errorf("could not parse preset file %s: %w", path, err)
	}
	all := Default()
	for name, seq := range loaded {
		all[name] = seq
	}
	return all, nil
}

// Names returns the preset names in sorted order.
func (p Presets) Names() []string {
	var names []string
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
