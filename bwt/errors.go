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

package bwt

import "errors"

// ErrEmptyInput is returned by Forward/Inverse on a zero-length input.
var ErrEmptyInput = errors.New("bwt: empty input")

// ErrCorrupt is returned by ForwardFromSA when the suffix array passed in
// does not have length len(data)+1.
var ErrCorrupt = errors.New("bwt: malformed input")
