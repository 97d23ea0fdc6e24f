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

// symbolType is the three-valued S/L/LMS classification from the SA-IS
// literature, reinterpreted as spec.md §9 suggests: a small integer
// enumeration packed two bits per entry instead of a Rust-style enum.
type symbolType uint8

const (
	typeS   symbolType = 0
	typeL   symbolType = 1
	typeLMS symbolType = 2
)

// classify builds the type_map for input, one entry per position
// 0..n-1 plus a final entry for the implicit sentinel at position n.
// Scanning right to left: position i is S if S[i] < S[i+1], or
// S[i] == S[i+1] and i+1 is S; otherwise L. An S position is LMS when
// its predecessor is L.
func classify(input *packedvec.Vec, n int) (*packedvec.Vec, error) {
	tm, err := packedvec.WithElements(2, n+1, uint64(typeS))
	if err != nil {
		return nil, err
	}

	if n == 0 {
		return tm, tm.Set(0, uint64(typeLMS))
	}

	if err := tm.Set(n, uint64(typeLMS)); err != nil {
		return nil, err
	}

	if err := tm.Set(n-1, uint64(typeL)); err != nil {
		return nil, err
	}

	for i := n - 2; i >= 0; i-- {
		next, err := tm.Get(i + 1)
		if err != nil {
			return nil, err
		}

		si, err := input.Get(i)
		if err != nil {
			return nil, err
		}

		si1, err := input.Get(i + 1)
		if err != nil {
			return nil, err
		}

		larger := si > si1
		equalAndNextLarge := si == si1 && symbolType(next) == typeL

		if larger || equalAndNextLarge {
			if symbolType(next) == typeS {
				if err := tm.Set(i+1, uint64(typeLMS)); err != nil {
					return nil, err
				}
			}

			if err := tm.Set(i, uint64(typeL)); err != nil {
				return nil, err
			}
		}
	}

	return tm, nil
}

// isEqualLMS reports whether the LMS substrings starting at positions j
// and k of input (classified by typeMap, which spans positions 0..n) are
// identical in length, symbols and class. Position n is the implicit
// sentinel and never starts a substring equal to any other.
func isEqualLMS(input *packedvec.Vec, typeMap *packedvec.Vec, n, j, k int) bool {
	if j == n || k == n {
		return false
	}

	for i := 0; i <= n; i++ {
		if j+i > n || k+i > n {
			return false
		}

		tj, err := typeMap.Get(j + i)
		if err != nil {
			return false
		}

		tk, err := typeMap.Get(k + i)
		if err != nil {
			return false
		}

		firstLMS := symbolType(tj) == typeLMS
		secondLMS := symbolType(tk) == typeLMS

		if firstLMS && secondLMS && i > 0 {
			return true
		}

		if firstLMS != secondLMS {
			return false
		}

		sj, err := input.Get(j + i)
		if err != nil {
			return false
		}

		sk, err := input.Get(k + i)
		if err != nil {
			return false
		}

		if sj != sk {
			return false
		}
	}

	return false
}
