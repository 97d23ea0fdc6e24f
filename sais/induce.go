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

// buildBucketBoundaries computes bucket_head/bucket_tail for each symbol
// from its frequency, with bucket slots laid out starting at index 1 (a
// widened-by-one-bit head, per spec.md §4.2, to leave slot 0 for the
// implicit sentinel and to tolerate heads[c] incrementing one past the
// end of its bucket).
func buildBucketBoundaries(freq *packedvec.Vec, k, n int) (heads, tails *packedvec.Vec, err error) {
	w := widthFor(uint64(n) + 1)

	heads, err = packedvec.WithCapacity(w, k)
	if err != nil {
		return nil, nil, err
	}

	tails, err = packedvec.WithCapacity(w, k)
	if err != nil {
		return nil, nil, err
	}

	idx := uint64(1)

	for c := 0; c < k; c++ {
		if err := heads.Push(idx); err != nil {
			return nil, nil, err
		}

		fc, err := freq.Get(c)
		if err != nil {
			return nil, nil, err
		}

		idx += fc

		if err := tails.Push(idx - 1); err != nil {
			return nil, nil, err
		}
	}

	return heads, tails, nil
}

// countFrequency tallies how often each symbol in [0,k) occurs among
// input's first n positions, at the minimum width able to hold a count
// up to n.
func countFrequency(input *packedvec.Vec, n, k int) (*packedvec.Vec, error) {
	freq, err := packedvec.WithElements(widthFor(uint64(n)), k, 0)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		s, err := input.Get(i)
		if err != nil {
			return nil, err
		}

		c := int(s)

		cur, err := freq.Get(c)
		if err != nil {
			return nil, err
		}

		if err := freq.Set(c, cur+1); err != nil {
			return nil, err
		}
	}

	return freq, nil
}

// induceSortLarge performs the left-to-right induced L-sort pass: for
// each defined sa[i], the predecessor position j = sa[i]-1, if L-typed,
// is dropped into the head of its own bucket. heads is mutated in place
// and should be a caller-owned copy of the frame's bucket heads.
func induceSortLarge(input *packedvec.Vec, typeMap *packedvec.Vec, sa *packedvec.Vec, heads *packedvec.Vec, marker uint64) error {
	for i := 0; i < sa.Len(); i++ {
		v, err := sa.Get(i)
		if err != nil {
			return err
		}

		if v == marker || v == 0 {
			continue
		}

		j := int(v) - 1

		t, err := typeMap.Get(j)
		if err != nil || symbolType(t) != typeL {
			continue
		}

		s, err := input.Get(j)
		if err != nil {
			return err
		}

		c := int(s)

		head, err := heads.Get(c)
		if err != nil {
			return err
		}

		if err := sa.Set(int(head), uint64(j)); err != nil {
			return err
		}

		if err := heads.Set(c, head+1); err != nil {
			return err
		}
	}

	return nil
}

// induceSortSmall is the symmetric right-to-left induced S-sort pass.
func induceSortSmall(input *packedvec.Vec, typeMap *packedvec.Vec, sa *packedvec.Vec, tails *packedvec.Vec, marker uint64) error {
	for i := sa.Len() - 1; i >= 0; i-- {
		v, err := sa.Get(i)
		if err != nil {
			return err
		}

		if v == marker || v == 0 {
			continue
		}

		j := int(v) - 1

		t, err := typeMap.Get(j)
		if err != nil || symbolType(t) == typeL {
			continue
		}

		s, err := input.Get(j)
		if err != nil {
			return err
		}

		c := int(s)

		tail, err := tails.Get(c)
		if err != nil {
			return err
		}

		if err := sa.Set(int(tail), uint64(j)); err != nil {
			return err
		}

		if err := tails.Set(c, tail-1); err != nil {
			return err
		}
	}

	return nil
}
