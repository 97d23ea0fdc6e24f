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

// Package bwt implements the Burrows-Wheeler Transform and its inverse
// over the suffix array built by package sais. Unlike a chunked or
// checkpointed decoder, Inverse here is the simple single-pass
// LF-mapping walk: this library does not attempt parallel construction.
package bwt

import (
	"fmt"

	"github.com/arnesonlabs/fmindex/sais"
)

// Forward computes BWT[i] = 0 if SA[i] == 0, else data[SA[i]-1], for the
// suffix array of data. Output length is len(data)+1.
func Forward(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	sa, err := sais.Build(data)
	if err != nil {
		return nil, fmt.Errorf("bwt: building suffix array: %w", err)
	}

	return forwardFromSA(data, sa)
}

// ForwardFromSA is Forward with a precomputed suffix array, for callers
// (such as FMIndex.Build) that already paid for SA construction.
func ForwardFromSA(data []byte, sa []uint64) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	return forwardFromSA(data, sa)
}

func forwardFromSA(data []byte, sa []uint64) ([]byte, error) {
	n := len(data)

	if len(sa) != n+1 {
		return nil, fmt.Errorf("%w: suffix array length %d, expected %d", ErrCorrupt, len(sa), n+1)
	}

	out := make([]byte, n+1)

	for i, s := range sa {
		if s == 0 {
			out[i] = 0
			continue
		}

		out[i] = data[s-1]
	}

	return out, nil
}

// Inverse reconstructs the original text from its BWT via the
// LF-mapping walk: build the C-table from symbol frequencies, derive LF
// in one left-to-right pass, then follow LF backwards from position 0,
// emitting symbols right to left and stopping before the sentinel.
func Inverse(bwtBytes []byte) ([]byte, error) {
	if len(bwtBytes) == 0 {
		return nil, ErrEmptyInput
	}

	n := len(bwtBytes) - 1

	var freq [256]int
	for _, b := range bwtBytes {
		freq[b]++
	}

	var c [256]int

	sum := 0
	for i := 0; i < 256; i++ {
		c[i] = sum
		sum += freq[i]
	}

	lf := make([]int, len(bwtBytes))

	var occ [256]int

	for i, b := range bwtBytes {
		lf[i] = c[b] + occ[b]
		occ[b]++
	}

	out := make([]byte, n)
	idx := 0

	for i := n - 1; i >= 0; i-- {
		out[i] = bwtBytes[idx]
		idx = lf[idx]
	}

	return out, nil
}
