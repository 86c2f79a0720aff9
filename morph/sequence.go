// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package morph

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"rescribe.xyz/pagemorph/bitimg"
)

var (
	// ErrInvalidSequence is returned for sequence text that does not
	// fit the grammar.
	ErrInvalidSequence = errors.New("morph: invalid sequence")
	// ErrUnsupportedOp is returned for a well-formed token naming an
	// operation that does not exist, or that the executing image kind
	// cannot run.
	ErrUnsupportedOp = errors.New("morph: unsupported operation")
)

// OpKind identifies one operation of a morphological sequence.
type OpKind int

const (
	OpDilate OpKind = iota
	OpErode
	OpOpen
	OpClose
	OpRankReduce
	OpExpand
	OpBorder
)

// Op is one parsed token of a sequence.
type Op struct {
	Kind   OpKind
	H, V   int   // brick sizes for dilate/erode/open/close
	Levels []int // rank levels for rank reduction
	Factor int   // expansion factor, or border size
	Token  string
}

// Sequence is a parsed chain of morphological operations, e.g.
// "o5.5 + d3.3": open by a 5x5 brick, then dilate by a 3x3 brick.
// Tokens are separated by "+" and whitespace is ignored. The tokens
// are dW.H (dilate), eW.H (erode), oW.H (open), cW.H (close), rL..
// (cascade of 2x rank reductions, one digit 1-4 per level), xF
// (replicative expansion by F) and bN (add a border of N pixels,
// legal only as the first token; the border is removed again after
// the last operation).
type Sequence struct {
	ops    []Op
	border int
}

// Ops returns the parsed operations, border token excluded.
func (s *Sequence) Ops() []Op { return s.ops }

// Border returns the size of a leading border token, or 0.
func (s *Sequence) Border() int { return s.border }

// ParseSequence parses sequence text.
func ParseSequence(text string) (*Sequence, error) {
	clean := strings.Join(strings.Fields(text), "")
	if clean == "" {
		return nil, fmt.Errorf("%w: empty sequence", ErrInvalidSequence)
	}
	var seq Sequence
	for i, tok := range strings.Split(clean, "+") {
		if tok == "" {
			return nil, fmt.Errorf("%w: empty token", ErrInvalidSequence)
		}
		op, err := parseToken(tok)
		if err != nil {
			return nil, err
		}
		if op.Kind == OpBorder {
			if i != 0 {
				return nil, fmt.Errorf("%w: %q: border must be the first token", ErrInvalidSequence, tok)
			}
			seq.border = op.Factor
			continue
		}
		seq.ops = append(seq.ops, op)
	}
	if len(seq.ops) == 0 {
		return nil, fmt.Errorf("%w: no operations", ErrInvalidSequence)
	}
	return &seq, nil
}

func parseToken(tok string) (Op, error) {
	op := Op{Token: tok}
	params := tok[1:]
	switch tok[0] {
	case 'd', 'e', 'o', 'c':
		switch tok[0] {
		case 'd':
			op.Kind = OpDilate
		case 'e':
			op.Kind = OpErode
		case 'o':
			op.Kind = OpOpen
		case 'c':
			op.Kind = OpClose
		}
		parts := strings.Split(params, ".")
		if len(parts) != 2 {
			return op, fmt.Errorf("%w: %q: want two sizes like d3.3", ErrInvalidSequence, tok)
		}
		h, err1 := strconv.Atoi(parts[0])
		v, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil || h < 1 || v < 1 {
			return op, fmt.Errorf("%w: %q: bad brick size", ErrInvalidSequence, tok)
		}
		op.H, op.V = h, v
	case 'r':
		if params == "" {
			return op, fmt.Errorf("%w: %q: no rank levels", ErrInvalidSequence, tok)
		}
		op.Kind = OpRankReduce
		for _, c := range params {
			if c < '1' || c > '4' {
				return op, fmt.Errorf("%w: %q: rank levels are 1-4", ErrInvalidSequence, tok)
			}
			op.Levels = append(op.Levels, int(c-'0'))
		}
	case 'x':
		op.Kind = OpExpand
		f, err := strconv.Atoi(params)
		if err != nil || f < 1 {
			return op, fmt.Errorf("%w: %q: bad expansion factor", ErrInvalidSequence, tok)
		}
		op.Factor = f
	case 'b':
		op.Kind = OpBorder
		n, err := strconv.Atoi(params)
		if err != nil || n < 1 {
			return op, fmt.Errorf("%w: %q: bad border size", ErrInvalidSequence, tok)
		}
		op.Factor = n
	default:
		return op, fmt.Errorf("%w: %q", ErrUnsupportedOp, tok)
	}
	return op, nil
}

// Run applies the sequence to a bitmap, threading the image through
// each operation left to right. A leading border token enlarges the
// canvas first and the border is cropped away again at the end,
// scaled through any reductions or expansions in between.
func (s *Sequence) Run(b *bitimg.Bitmap) (*bitimg.Bitmap, error) {
	border := s.border
	if border > 0 {
		b = b.AddBorder(border, false)
	}
	var err error
	for _, op := range s.ops {
		switch op.Kind {
		case OpDilate:
			b, err = DilateBrick(b, op.H, op.V)
		case OpErode:
			b, err = ErodeBrick(b, op.H, op.V)
		case OpOpen:
			b, err = OpenBrick(b, op.H, op.V)
		case OpClose:
			b, err = CloseBrick(b, op.H, op.V)
		case OpRankReduce:
			b, err = ReduceRankCascade(b, op.Levels...)
			for range op.Levels {
				border /= 2
			}
		case OpExpand:
			b, err = ExpandReplicate(b, op.Factor)
			border *= op.Factor
		}
		if err != nil {
			return nil, fmt.Errorf("sequence %q: %w", op.Token, err)
		}
	}
	if border > 0 {
		return b.RemoveBorder(border)
	}
	return b, nil
}
