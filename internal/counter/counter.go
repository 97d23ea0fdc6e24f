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

// Package counter implements the extend-on-demand counter shared by BWT
// rank accumulation and byte-frequency collection: a sparse, PackedVec-
// backed table indexed by symbol that grows lazily instead of requiring
// the caller to know the alphabet size up front.
package counter

import "github.com/arnesonlabs/fmindex/packedvec"

// defaultWidth is the initial element width of a freshly created
// Counter. It is widened automatically the first time a count would
// overflow it.
const defaultWidth = 8

// Counter is a sparse counter indexed by symbol value.
type Counter struct {
	vec *packedvec.Vec
}

// New creates an empty Counter.
func New() (*Counter, error) {
	vec, err := packedvec.New(defaultWidth)
	if err != nil {
		return nil, err
	}

	return &Counter{vec: vec}, nil
}

// Get returns the current count for symbol v, or 0 if v has never been
// incremented.
func (c *Counter) Get(v int) uint64 {
	if v < 0 || v >= c.vec.Len() {
		return 0
	}

	count, err := c.vec.Get(v)
	if err != nil {
		return 0
	}

	return count
}

// Increment grows the counter with zeros up to index v if needed, then
// increments and returns the new count for v.
func (c *Counter) Increment(v int) (uint64, error) {
	if v < 0 {
		return 0, packedvec.ErrIndexOutOfBounds
	}

	if v >= c.vec.Len() {
		if err := c.vec.ExtendWithElement(v+1, 0); err != nil {
			return 0, err
		}
	}

	current, err := c.vec.Get(v)
	if err != nil {
		return 0, err
	}

	next := current + 1

	if err := c.widenIfNeeded(next); err != nil {
		return 0, err
	}

	if err := c.vec.Set(v, next); err != nil {
		return 0, err
	}

	return next, nil
}

// widenIfNeeded rebuilds the backing vector at a larger element width
// when value no longer fits in the current one.
func (c *Counter) widenIfNeeded(value uint64) error {
	width := c.vec.Width()

	if width >= 63 || value>>width == 0 {
		return nil
	}

	newWidth := width
	for newWidth < 63 && value>>newWidth != 0 {
		newWidth++
	}

	wider, err := packedvec.WithCapacity(newWidth, c.vec.Len())
	if err != nil {
		return err
	}

	for i := 0; i < c.vec.Len(); i++ {
		v, err := c.vec.Get(i)
		if err != nil {
			return err
		}

		if err := wider.Push(v); err != nil {
			return err
		}
	}

	c.vec = wider
	return nil
}

// Len returns one past the highest symbol index ever touched.
func (c *Counter) Len() int {
	return c.vec.Len()
}
