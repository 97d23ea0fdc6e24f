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
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStackSelectsMemoryBelowThreshold(t *testing.T) {
	st := NewStack(1024, t.TempDir())
	_, ok := st.(*memoryStack)
	require.True(t, ok)
}

func TestNewStackSelectsMemoryWithoutScratchDir(t *testing.T) {
	st := NewStack(ReferenceThreshold+1, "")
	_, ok := st.(*memoryStack)
	require.True(t, ok)
}

func TestNewStackSelectsFileAboveThreshold(t *testing.T) {
	st := NewStack(ReferenceThreshold+1, t.TempDir())
	_, ok := st.(*fileStack)
	require.True(t, ok)
}

func TestStackIsLIFO(t *testing.T) {
	for _, st := range []Stack{newMemoryStack(), newFileStack(t.TempDir())} {
		require.NoError(t, st.Push(0, []byte("level-0")))
		require.NoError(t, st.Push(1, []byte("level-1")))
		require.NoError(t, st.Push(2, []byte("level-2")))
		require.Equal(t, 3, st.Len())

		data, ok, err := st.Pop()
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "level-2", string(data))

		data, ok, err = st.Pop()
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "level-1", string(data))

		require.Equal(t, 1, st.Len())

		require.NoError(t, st.Close())
	}
}

func TestStackPopOnEmptyReturnsNotOK(t *testing.T) {
	for _, st := range []Stack{newMemoryStack(), newFileStack(t.TempDir())} {
		_, ok, err := st.Pop()
		require.NoError(t, err)
		require.False(t, ok)
	}
}

func TestFileStackCloseRemovesRemainingFrames(t *testing.T) {
	dir := t.TempDir()
	st := newFileStack(dir)

	require.NoError(t, st.Push(0, []byte("a")))
	require.NoError(t, st.Push(1, []byte("b")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.NoError(t, st.Close())

	entries, err = os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 0)
}

func TestFileStackNamesEncodeLevel(t *testing.T) {
	dir := t.TempDir()
	st := newFileStack(dir)

	require.NoError(t, st.Push(3, []byte("data")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.True(t, strings.HasSuffix(entries[0].Name(), "_3"))

	require.NoError(t, st.Close())
}
