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

// Package sais builds the suffix array of a byte sequence with the
// SA-IS (induced sorting) algorithm. Recursion is replaced by an
// explicit stack of frames (spec.md §4.2, §9): each frame owns its own
// working state as PackedVecs sized to that level's alphabet, and the
// stack may optionally spill parked frames to a scratch directory for
// inputs too large to keep every level resident.
package sais

import (
	"fmt"

	"github.com/arnesonlabs/fmindex/internal/scratch"
	"github.com/arnesonlabs/fmindex/packedvec"
)

// alphabetSize is the byte alphabet the top-level build always uses.
const alphabetSize = 256

type config struct {
	scratchDir string
}

// Option configures a Build call.
type Option func(*config)

// WithScratchDir enables the out-of-core stack for inputs of at least
// scratch.ReferenceThreshold bytes, spilling parked frames to dir.
// Without this option the stack is always in-memory.
func WithScratchDir(dir string) Option {
	return func(c *config) { c.scratchDir = dir }
}

// Build computes the suffix array of data using the SA-IS algorithm.
// The result has length len(data)+1 with sa[0] = len(data), the
// position of the implicit sentinel; sa[1:] is the lexicographic order
// of data's non-empty suffixes.
func Build(data []byte, opts ...Option) ([]uint64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	cfg := config{}

	for _, opt := range opts {
		opt(&cfg)
	}

	input, err := packedvec.WithCapacity(widthFor(alphabetSize-1), len(data))
	if err != nil {
		return nil, fmt.Errorf("sais: %w", err)
	}

	for _, b := range data {
		if err := input.Push(uint64(b)); err != nil {
			return nil, fmt.Errorf("sais: %w", err)
		}
	}

	st := scratch.NewStack(len(data), cfg.scratchDir)
	defer st.Close()

	sa, err := computeIterative(input, alphabetSize, st)
	if err != nil {
		return nil, fmt.Errorf("sais: %w", err)
	}

	out := make([]uint64, sa.Len())

	it := sa.Iter()

	for i := range out {
		v, _ := it.Next()
		out[i] = v
	}

	return out, nil
}

// computeIterative runs the SA-IS recursion as an explicit loop over a
// single "current" frame, parking ancestors on st instead of the call
// stack. st itself is the only place an ancestor's state lives once its
// child starts running, so no additional in-process stack is needed.
func computeIterative(topInput *packedvec.Vec, topK int, st scratch.Stack) (*packedvec.Vec, error) {
	current := &buildFrame{input: topInput, n: topInput.Len(), k: topK}

	var (
		childSA     *packedvec.Vec
		haveChildSA bool
	)

	for {
		if !current.phase1Done {
			if err := runPhase1(current); err != nil {
				return nil, err
			}
		}

		needsRecursion := !haveChildSA &&
			current.numNames != current.summaryIndex.Len() &&
			current.summaryIndex.Len() > 1

		if needsRecursion {
			data, err := serializeFrame(current)
			if err != nil {
				return nil, err
			}

			if err := st.Push(current.level, data); err != nil {
				return nil, err
			}

			childInput, err := current.reducedSequence()
			if err != nil {
				return nil, err
			}

			current = &buildFrame{
				level: current.level + 1,
				input: childInput,
				n:     childInput.Len(),
				k:     current.numNames,
			}
			haveChildSA = false

			continue
		}

		var (
			summarySA *packedvec.Vec
			err       error
		)

		switch {
		case haveChildSA:
			summarySA = childSA
		case current.numNames == current.summaryIndex.Len():
			summarySA, err = directSummarySA(current)
		default:
			summarySA, err = packedvec.WithElements(1, 1, 0)
		}

		if err != nil {
			return nil, err
		}

		sa, err := runPhase2(current, summarySA)
		if err != nil {
			return nil, err
		}

		data, ok, err := st.Pop()
		if err != nil {
			return nil, err
		}

		if !ok {
			return sa, nil
		}

		parent, err := deserializeFrame(data)
		if err != nil {
			return nil, err
		}

		current = parent
		childSA = sa
		haveChildSA = true
	}
}
