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

package packedvec

import "errors"

// Sentinel errors returned by this package. Callers that need to
// distinguish a failure kind should use errors.Is against these.
var (
	// ErrInvalidWidth is returned when a width w does not satisfy 1 <= w < 64.
	ErrInvalidWidth = errors.New("packedvec: width must satisfy 1 <= w < 64")

	// ErrOutOfRange is returned when a value does not fit in the vector's width.
	ErrOutOfRange = errors.New("packedvec: value does not fit in element width")

	// ErrIndexOutOfBounds is returned by Get/Set/Truncate/ExtendWithElement
	// when the supplied index or length is invalid for the current vector.
	ErrIndexOutOfBounds = errors.New("packedvec: index out of bounds")

	// ErrCorrupt is returned by ReadFrom when the encoded form fails to
	// round-trip through the invariants a valid PackedVec must hold.
	ErrCorrupt = errors.New("packedvec: corrupt encoded vector")
)
