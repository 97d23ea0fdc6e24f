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

package sais

import "github.com/arnesonlabs/fmindex/packedvec"

// buildFrame is one level of the SA-IS recursion, reinterpreted per
// spec.md §9 as an explicit, self-contained stack frame: it owns every
// PackedVec it needs, and unwinding simply pops the computed sub-array
// into the parent frame's waiting slot. Every bulk array is a PackedVec
// sized to the minimum bit width its own maximum value needs at this
// level (spec.md §4.2), not a fixed 64-bit slice: an n-symbol level over
// a k-symbol alphabet costs close to n*width bits, not 8n bytes.
type buildFrame struct {
	level int
	input *packedvec.Vec // values in [0, k)
	n     int
	k     int

	typeMap      *packedvec.Vec // width 2: S/L/LMS
	bucketHeads  *packedvec.Vec // width saWidth(n), one slot per symbol
	bucketTails  *packedvec.Vec
	summaryIndex *packedvec.Vec // width widthFor(n): positions in input
	lmsNames     *packedvec.Vec // width widthFor(numNames-1): the reduced alphabet
	numNames     int

	phase1Done bool
}

// runPhase1 classifies input, runs the first LMS placement and the two
// induced-sort passes, then renames LMS substrings into the reduced
// alphabet used by a child frame (or resolved directly if every name
// turned out unique).
func runPhase1(f *buildFrame) error {
	tm, err := classify(f.input, f.n)
	if err != nil {
		return err
	}

	f.typeMap = tm

	if f.n == 0 {
		empty, err := packedvec.WithCapacity(1, 0)
		if err != nil {
			return err
		}

		f.summaryIndex = empty

		lmsEmpty, err := packedvec.WithCapacity(1, 0)
		if err != nil {
			return err
		}

		f.lmsNames = lmsEmpty
		f.numNames = 0
		f.phase1Done = true

		return nil
	}

	freq, err := countFrequency(f.input, f.n, f.k)
	if err != nil {
		return err
	}

	heads, tails, err := buildBucketBoundaries(freq, f.k, f.n)
	if err != nil {
		return err
	}

	f.bucketHeads = heads
	f.bucketTails = tails

	w := saWidth(f.n)
	marker := (uint64(1) << w) - 1

	sa, err := packedvec.WithElements(w, f.n+1, marker)
	if err != nil {
		return err
	}

	placeTails, err := cloneVec(tails)
	if err != nil {
		return err
	}

	for i := 0; i < f.n; i++ {
		t, err := tm.Get(i)
		if err != nil {
			return err
		}

		if symbolType(t) != typeLMS {
			continue
		}

		s, err := f.input.Get(i)
		if err != nil {
			return err
		}

		c := int(s)

		tail, err := placeTails.Get(c)
		if err != nil {
			return err
		}

		if err := sa.Set(int(tail), uint64(i)); err != nil {
			return err
		}

		if err := placeTails.Set(c, tail-1); err != nil {
			return err
		}
	}

	if err := sa.Set(0, uint64(f.n)); err != nil {
		return err
	}

	headsCopy, err := cloneVec(heads)
	if err != nil {
		return err
	}

	if err := induceSortLarge(f.input, tm, sa, headsCopy, marker); err != nil {
		return err
	}

	tailsCopy, err := cloneVec(tails)
	if err != nil {
		return err
	}

	if err := induceSortSmall(f.input, tm, sa, tailsCopy, marker); err != nil {
		return err
	}

	unset := uint64(f.n)

	lmsBytes, err := packedvec.WithElements(widthFor(unset), f.n+1, unset)
	if err != nil {
		return err
	}

	lastIdxVal, err := sa.Get(0)
	if err != nil {
		return err
	}

	lastIdx := int(lastIdxVal)

	if err := lmsBytes.Set(lastIdx, 0); err != nil {
		return err
	}

	var byteCounter uint64

	for i := 1; i <= f.n; i++ {
		v, err := sa.Get(i)
		if err != nil {
			return err
		}

		idx := int(v)

		t, err := tm.Get(idx)
		if err != nil {
			return err
		}

		if symbolType(t) != typeLMS {
			continue
		}

		if !isEqualLMS(f.input, tm, f.n, lastIdx, idx) {
			byteCounter++
		}

		lastIdx = idx

		if err := lmsBytes.Set(idx, byteCounter); err != nil {
			return err
		}
	}

	summaryIndex, err := packedvec.WithCapacity(widthFor(uint64(f.n)), int(byteCounter)+1)
	if err != nil {
		return err
	}

	lmsNames, err := packedvec.WithCapacity(widthFor(byteCounter), int(byteCounter)+1)
	if err != nil {
		return err
	}

	for i := 0; i <= f.n; i++ {
		name, err := lmsBytes.Get(i)
		if err != nil {
			return err
		}

		if name == unset {
			continue
		}

		if err := summaryIndex.Push(uint64(i)); err != nil {
			return err
		}

		if err := lmsNames.Push(name); err != nil {
			return err
		}
	}

	f.summaryIndex = summaryIndex
	f.lmsNames = lmsNames

	if summaryIndex.Len() > 0 {
		f.numNames = int(byteCounter) + 1
	}

	f.phase1Done = true

	return nil
}

// directSummarySA resolves the reduced problem without recursion, valid
// only when every LMS substring received a unique name: the summary
// array is just the inverse of the name-to-position assignment.
func directSummarySA(f *buildFrame) (*packedvec.Vec, error) {
	m := f.summaryIndex.Len()

	sum, err := packedvec.WithElements(saWidth(m), m+1, 0)
	if err != nil {
		return nil, err
	}

	if err := sum.Set(0, uint64(m)); err != nil {
		return nil, err
	}

	for i := 0; i < f.lmsNames.Len(); i++ {
		name, err := f.lmsNames.Get(i)
		if err != nil {
			return nil, err
		}

		if err := sum.Set(int(name)+1, uint64(i)); err != nil {
			return nil, err
		}
	}

	return sum, nil
}

// reducedSequence builds the input for a child frame: the LMS names in
// the order their positions occur in f.input. f.lmsNames is already at
// the right width for the child's alphabet (numNames-1 is its largest
// symbol), so this is a plain copy.
func (f *buildFrame) reducedSequence() (*packedvec.Vec, error) {
	return cloneVec(f.lmsNames)
}

// runPhase2 places the true LMS order (from the resolved summary array)
// into bucket tails, then re-runs the two induced-sort passes to produce
// the final suffix array for this level.
func runPhase2(f *buildFrame, summarySA *packedvec.Vec) (*packedvec.Vec, error) {
	w := saWidth(f.n)
	marker := (uint64(1) << w) - 1

	sa, err := packedvec.WithElements(w, f.n+1, marker)
	if err != nil {
		return nil, err
	}

	tails, err := cloneVec(f.bucketTails)
	if err != nil {
		return nil, err
	}

	for i := summarySA.Len() - 1; i >= 2; i-- {
		v, err := summarySA.Get(i)
		if err != nil {
			return nil, err
		}

		idxPos, err := f.summaryIndex.Get(int(v))
		if err != nil {
			return nil, err
		}

		idx := int(idxPos)

		s, err := f.input.Get(idx)
		if err != nil {
			return nil, err
		}

		c := int(s)

		tail, err := tails.Get(c)
		if err != nil {
			return nil, err
		}

		if err := sa.Set(int(tail), uint64(idx)); err != nil {
			return nil, err
		}

		if err := tails.Set(c, tail-1); err != nil {
			return nil, err
		}
	}

	if err := sa.Set(0, uint64(f.n)); err != nil {
		return nil, err
	}

	headsCopy, err := cloneVec(f.bucketHeads)
	if err != nil {
		return nil, err
	}

	if err := induceSortLarge(f.input, f.typeMap, sa, headsCopy, marker); err != nil {
		return nil, err
	}

	tailsCopy, err := cloneVec(f.bucketTails)
	if err != nil {
		return nil, err
	}

	if err := induceSortSmall(f.input, f.typeMap, sa, tailsCopy, marker); err != nil {
		return nil, err
	}

	return sa, nil
}
