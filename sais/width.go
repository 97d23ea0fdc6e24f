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

import (
	"math/bits"

	"github.com/arnesonlabs/fmindex/packedvec"
)

// widthFor returns the smallest PackedVec element width (1..63) able to
// hold any value in [0, max], per spec.md §4.2's "minimum bit width
// sufficient for that level's maximum value, recomputed per level".
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

// saWidth is the width of a PackedVec holding a suffix array (or
// equivalent: a reduced-problem summary array) over a sequence of
// length m: values range over [0, m], and induced sorting additionally
// needs a marker value distinct from every one of them, so the width is
// computed from m+1 rather than m.
func saWidth(m int) uint {
	return widthFor(uint64(m) + 1)
}

// cloneVec copies v into a fresh, independently mutable PackedVec of the
// same width, for the bucket-boundary snapshots induceSortLarge/Small
// each need their own copy of to mutate in place.
func cloneVec(v *packedvec.Vec) (*packedvec.Vec, error) {
	out, err := packedvec.WithCapacity(v.Width(), v.Len())
	if err != nil {
		return nil, err
	}

	it := v.Iter()

	for {
		val, ok := it.Next()
		if !ok {
			break
		}

		if err := out.Push(val); err != nil {
			return nil, err
		}
	}

	return out, nil
}
