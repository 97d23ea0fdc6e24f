/*
Copyright 2011-2025 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package fmindex builds and queries an FM-index: a Burrows-Wheeler
// Transform plus the rank and cumulative-frequency tables needed to run
// backward search directly over the compressed text, without ever
// materializing the suffix array used to build it.
package fmindex

import (
	"fmt"
	"math/bits"

	"github.com/arnesonlabs/fmindex/bwt"
	"github.com/arnesonlabs/fmindex/internal/counter"
	"github.com/arnesonlabs/fmindex/packedvec"
	"github.com/arnesonlabs/fmindex/sais"
)

// alphabetSize is the size of the C table: one slot per byte value.
const alphabetSize = 256

// FMIndex is a queryable Burrows-Wheeler index over a fixed byte
// sequence. The zero value is not usable; build one with Build or Load.
type FMIndex struct {
	n   int
	bwt []byte

	// rankForward[i] is the rank of bwt[i] among occurrences of that same
	// symbol in bwt[0..=i] (1-based: the first occurrence has rank 1).
	rankForward *packedvec.Vec

	// c[sym] is the number of bytes in bwt strictly less than sym: the
	// start row of sym's block in the (virtual) sorted rotation matrix.
	c *packedvec.Vec

	// suffixLength[i] is one more than the original-text position of the
	// suffix at BWT row i (row 0, the sentinel suffix, holds n+1),
	// reconstructed by walking the LF permutation once from row 0.
	suffixLength *packedvec.Vec
}

// Build constructs an FM-index over data: a suffix array (package sais),
// its Burrows-Wheeler Transform (package bwt), and the rank/cumulative-
// frequency/suffix-length tables backward search needs.
func Build(data []byte, opts ...sais.Option) (*FMIndex, error) {
	return BuildWithListener(data, nil, opts...)
}

// BuildWithListener is Build, additionally notifying listener at each
// construction phase (suffix array, BWT, rank tables).
func BuildWithListener(data []byte, listener BuildListener, opts ...sais.Option) (*FMIndex, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	notify(listener, EvtSuffixArrayStart, len(data))

	sa, err := sais.Build(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("fmindex: building suffix array: %w", err)
	}

	notify(listener, EvtSuffixArrayDone, len(data))
	notify(listener, EvtBWTStart, len(data))

	bwtBytes, err := bwt.ForwardFromSA(data, sa)
	if err != nil {
		return nil, fmt.Errorf("fmindex: building BWT: %w", err)
	}

	notify(listener, EvtBWTDone, len(data))
	notify(listener, EvtRankTableStart, len(data))

	idx, err := fromBWT(bwtBytes)
	if err != nil {
		return nil, err
	}

	notify(listener, EvtRankTableDone, len(data))

	return idx, nil
}

// fromBWT derives the rank, C and suffix-length tables from a
// Burrows-Wheeler Transform, per spec.md §4.4 steps 2-5.
func fromBWT(bwtBytes []byte) (*FMIndex, error) {
	n := len(bwtBytes) - 1
	width := widthFor(uint64(n + 1))

	// Step 2: byte frequencies, via the same extend-on-demand counter
	// used for rank accumulation below.
	freqCounter, err := counter.New()
	if err != nil {
		return nil, err
	}

	for _, b := range bwtBytes {
		if _, err := freqCounter.Increment(int(b)); err != nil {
			return nil, fmt.Errorf("fmindex: collecting byte frequencies: %w", err)
		}
	}

	// Step 3: C[sym] = number of bytes strictly less than sym.
	c, err := packedvec.WithCapacity(width, alphabetSize)
	if err != nil {
		return nil, err
	}

	sum := uint64(0)
	for sym := 0; sym < alphabetSize; sym++ {
		if err := c.Push(sum); err != nil {
			return nil, err
		}
		sum += freqCounter.Get(sym)
	}

	// Step 2 (rank) + step 4 (LF) in one left-to-right pass.
	rankForward, err := packedvec.WithCapacity(width, n+1)
	if err != nil {
		return nil, err
	}

	lf := make([]uint64, n+1)

	rankCounter, err := counter.New()
	if err != nil {
		return nil, err
	}

	for i, b := range bwtBytes {
		rank, err := rankCounter.Increment(int(b))
		if err != nil {
			return nil, fmt.Errorf("fmindex: accumulating rank at row %d: %w", i, err)
		}

		if err := rankForward.Push(rank); err != nil {
			return nil, err
		}

		cb, err := c.Get(int(b))
		if err != nil {
			return nil, err
		}

		lf[i] = cb + rank - 1
	}

	// Step 5: walk the LF permutation once from row 0, stamping the rows
	// with n+1, n, ..., 1 in visiting order; the row of the suffix at
	// original-text position p ends up holding p+1, without ever
	// materializing the suffix array again.
	suffixLength, err := packedvec.WithCapacity(width, n+1)
	if err != nil {
		return nil, err
	}

	if err := suffixLength.ExtendWithElement(n+1, 0); err != nil {
		return nil, err
	}

	i := 0
	stamp := uint64(n + 1)

	for step := 0; step <= n; step++ {
		next := lf[i]

		if err := suffixLength.Set(i, stamp); err != nil {
			return nil, err
		}

		i = int(next)
		stamp--
	}

	return &FMIndex{
		n:            n,
		bwt:          bwtBytes,
		rankForward:  rankForward,
		c:            c,
		suffixLength: suffixLength,
	}, nil
}

// Len returns the length of the original text the index was built over.
func (idx *FMIndex) Len() int {
	return idx.n
}

// nearestPrecedingOccurrence returns rank_forward[j] for the largest j <
// k with bwt[j] == c, or 0 if c never occurs in bwt[:k]. This is the one
// routine spec.md's open questions leave unindexed: no checkpointing, so
// it costs O(k) in the worst case.
func (idx *FMIndex) nearestPrecedingOccurrence(k int, c byte) uint64 {
	for j := k - 1; j >= 0; j-- {
		if idx.bwt[j] == c {
			rank, _ := idx.rankForward.Get(j)
			return rank
		}
	}

	return 0
}

// Range runs backward search for pattern, returning the half-open row
// interval [top, bottom) of the (virtual) sorted rotation matrix whose
// rows start with pattern. ok is false if pattern does not occur.
func (idx *FMIndex) Range(pattern []byte) (top, bottom int, ok bool) {
	top, bottom = 0, idx.n+1

	for i := len(pattern) - 1; i >= 0; i-- {
		ch := pattern[i]

		cVal, err := idx.c.Get(int(ch))
		if err != nil {
			return 0, 0, false
		}

		newTop := int(cVal) + int(idx.nearestPrecedingOccurrence(top, ch))
		newBottom := int(cVal) + int(idx.nearestPrecedingOccurrence(bottom, ch))

		if newTop >= newBottom {
			return 0, 0, false
		}

		top, bottom = newTop, newBottom
	}

	return top, bottom, true
}

// Count returns the number of occurrences of pattern in the original
// text.
func (idx *FMIndex) Count(pattern []byte) (int, error) {
	if len(pattern) == 0 {
		return 0, nil
	}

	top, bottom, ok := idx.Range(pattern)
	if !ok {
		return 0, nil
	}

	return bottom - top, nil
}

// Locate returns every 0-based position in the original text where
// pattern occurs, in no particular order.
func (idx *FMIndex) Locate(pattern []byte) ([]uint64, error) {
	if len(pattern) == 0 {
		return nil, nil
	}

	top, bottom, ok := idx.Range(pattern)
	if !ok {
		return nil, nil
	}

	positions := make([]uint64, 0, bottom-top)

	for i := top; i < bottom; i++ {
		ch := idx.bwt[i]

		cVal, err := idx.c.Get(int(ch))
		if err != nil {
			return nil, err
		}

		// Row i holds the suffix at text position p; its LF row holds the
		// suffix at p-1, whose suffixLength entry is p (n+1 when p == 0).
		row := int(cVal) + int(idx.nearestPrecedingOccurrence(i, ch))

		length, err := idx.suffixLength.Get(row)
		if err != nil {
			return nil, err
		}

		positions = append(positions, length%uint64(idx.n+1))
	}

	return positions, nil
}

// widthFor returns the smallest PackedVec element width (1..63) able to
// hold values up to and including max.
func widthFor(max uint64) uint {
	w := uint(bits.Len64(max))
	if w < 1 {
		w = 1
	}
	if w > 63 {
		w = 63
	}

	return w
}
