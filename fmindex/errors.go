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

import "errors"

// ErrEmptyInput is returned by Build on a zero-length input: there is no
// meaningful index to construct.
var ErrEmptyInput = errors.New("fmindex: empty input")

// ErrCorruptIndex is returned by Load when a decoded component fails
// one of the invariants from the data model (lengths not matching,
// C decreasing from one symbol to the next, and so on). No partial FMIndex is returned.
var ErrCorruptIndex = errors.New("fmindex: corrupt index")
