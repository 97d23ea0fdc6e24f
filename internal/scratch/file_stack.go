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

package scratch

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// fileStack spills parked frames to a scratch directory as they are
// pushed, so the process never needs to keep more than one recursion
// level's worth of PackedVecs resident at once. Every frame is written
// with atomic.WriteFile so a crash mid-write never leaves a half-written
// frame that a later Pop would silently misread.
type fileStack struct {
	dir   string
	paths []string
}

func newFileStack(dir string) *fileStack {
	return &fileStack{dir: dir}
}

func (s *fileStack) Push(level int, data []byte) error {
	name, err := randomFileName(level)
	if err != nil {
		return fmt.Errorf("%w: generating scratch file name: %v", ErrIO, err)
	}

	path := filepath.Join(s.dir, name)

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrIO, path, err)
	}

	s.paths = append(s.paths, path)
	return nil
}

func (s *fileStack) Pop() ([]byte, bool, error) {
	if len(s.paths) == 0 {
		return nil, false, nil
	}

	path := s.paths[len(s.paths)-1]

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("%w: reading %s: %v", ErrIO, path, err)
	}

	if err := os.Remove(path); err != nil {
		return nil, false, fmt.Errorf("%w: removing %s: %v", ErrIO, path, err)
	}

	s.paths = s.paths[:len(s.paths)-1]
	return data, true, nil
}

func (s *fileStack) Len() int {
	return len(s.paths)
}

// Close removes any frames still parked on disk. Best effort: a fatal
// error mid-build may leave some of these, but Close tries every path
// rather than stopping at the first failure.
func (s *fileStack) Close() error {
	var firstErr error

	for _, path := range s.paths {
		if err := os.Remove(path); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("%w: removing %s: %v", ErrIO, path, err)
		}
	}

	s.paths = nil

	if firstErr != nil {
		return firstErr
	}

	return nil
}

// randomFileName produces a "<random10>_<level>" scratch file name, the
// layout external callers can rely on for locating orphaned scratch
// files after a crash.
func randomFileName(level int) (string, error) {
	var raw [5]byte

	if _, err := rand.Read(raw[:]); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s_%d", hex.EncodeToString(raw[:]), level), nil
}
