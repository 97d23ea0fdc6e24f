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

package fmindex

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/natefinch/atomic"

	"github.com/arnesonlabs/fmindex/packedvec"
)

// Dump writes idx as a header-less concatenation: the BWT as
// {length: u64, bytes}, followed by rank_forward, C and suffix_length
// each in PackedVec's own {w, unit_count, word_count, words} wire
// format.
func (idx *FMIndex) Dump(w io.Writer) error {
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(idx.bwt)))

	if _, err := w.Write(lenBuf[:]); err != nil {
		return fmt.Errorf("fmindex: writing BWT length: %w", err)
	}

	if _, err := w.Write(idx.bwt); err != nil {
		return fmt.Errorf("fmindex: writing BWT bytes: %w", err)
	}

	if _, err := idx.rankForward.WriteTo(w); err != nil {
		return fmt.Errorf("fmindex: writing rank_forward: %w", err)
	}

	if _, err := idx.c.WriteTo(w); err != nil {
		return fmt.Errorf("fmindex: writing C: %w", err)
	}

	if _, err := idx.suffixLength.WriteTo(w); err != nil {
		return fmt.Errorf("fmindex: writing suffix_length: %w", err)
	}

	return nil
}

// Load decodes an FMIndex previously written by Dump, validating the
// data model's invariants (BWT length matches suffix_length's, C has
// exactly 256 entries and is non-decreasing).
func Load(r io.Reader) (*FMIndex, error) {
	var lenBuf [8]byte

	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, fmt.Errorf("%w: reading BWT length: %v", ErrCorruptIndex, err)
	}

	n := int(binary.LittleEndian.Uint64(lenBuf[:]))
	if n <= 0 {
		return nil, fmt.Errorf("%w: BWT length %d", ErrCorruptIndex, n)
	}

	bwtBytes := make([]byte, n)
	if _, err := io.ReadFull(r, bwtBytes); err != nil {
		return nil, fmt.Errorf("%w: reading BWT bytes: %v", ErrCorruptIndex, err)
	}

	rankForward, err := packedvec.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading rank_forward: %v", ErrCorruptIndex, err)
	}

	c, err := packedvec.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading C: %v", ErrCorruptIndex, err)
	}

	suffixLength, err := packedvec.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading suffix_length: %v", ErrCorruptIndex, err)
	}

	if rankForward.Len() != n || suffixLength.Len() != n {
		return nil, fmt.Errorf("%w: table length mismatch against BWT length %d", ErrCorruptIndex, n)
	}

	if c.Len() != alphabetSize {
		return nil, fmt.Errorf("%w: C has %d entries, want %d", ErrCorruptIndex, c.Len(), alphabetSize)
	}

	prev := uint64(0)
	for sym := 0; sym < alphabetSize; sym++ {
		v, err := c.Get(sym)
		if err != nil {
			return nil, fmt.Errorf("%w: reading C[%d]: %v", ErrCorruptIndex, sym, err)
		}

		if v < prev {
			return nil, fmt.Errorf("%w: C is not non-decreasing at %d", ErrCorruptIndex, sym)
		}

		prev = v
	}

	return &FMIndex{
		n:            n - 1,
		bwt:          bwtBytes,
		rankForward:  rankForward,
		c:            c,
		suffixLength: suffixLength,
	}, nil
}

// DumpToPath writes idx to path using an atomic rename, so a reader
// never observes a partially written index file.
func (idx *FMIndex) DumpToPath(path string) error {
	buf := &bytes.Buffer{}

	if err := idx.Dump(buf); err != nil {
		return err
	}

	if err := atomic.WriteFile(path, buf); err != nil {
		return fmt.Errorf("fmindex: writing %s: %w", path, err)
	}

	return nil
}

// LoadFromPath reads an FMIndex previously written with DumpToPath.
func LoadFromPath(path string) (*FMIndex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fmindex: opening %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}
