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

type memoryFrame struct {
	level int
	data  []byte
}

// memoryStack is the below-threshold Stack: frames stay in the process
// heap, there is nothing to clean up on Close.
type memoryStack struct {
	frames []memoryFrame
}

func newMemoryStack() *memoryStack {
	return &memoryStack{}
}

func (s *memoryStack) Push(level int, data []byte) error {
	s.frames = append(s.frames, memoryFrame{level: level, data: data})
	return nil
}

func (s *memoryStack) Pop() ([]byte, bool, error) {
	if len(s.frames) == 0 {
		return nil, false, nil
	}

	top := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return top.data, true, nil
}

func (s *memoryStack) Len() int {
	return len(s.frames)
}

func (s *memoryStack) Close() error {
	s.frames = nil
	return nil
}
