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

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushAndGetRoundTrip(t *testing.T) {
	for _, width := range []uint{1, 3, 5, 7, 9, 17, 31, 63} {
		width := width

		t.Run(fmt.Sprintf("width=%d", width), func(t *testing.T) {
			v, err := New(width)
			require.NoError(t, err)

			max := uint64(1)<<width - 1
			rnd := rand.New(rand.NewSource(int64(width)))

			want := make([]uint64, 500)
			for i := range want {
				want[i] = uint64(rnd.Int63()) & max
				require.NoError(t, v.Push(want[i]))
			}

			require.Equal(t, len(want), v.Len())

			for i, w := range want {
				got, err := v.Get(i)
				require.NoError(t, err)
				require.Equalf(t, w, got, "index %d", i)
			}
		})
	}
}

func TestPushRejectsOutOfRangeValue(t *testing.T) {
	v, err := New(4)
	require.NoError(t, err)

	require.ErrorIs(t, v.Push(16), ErrOutOfRange)
}

func TestGetRejectsOutOfBounds(t *testing.T) {
	v, err := New(5)
	require.NoError(t, err)
	require.NoError(t, v.Push(3))

	_, err = v.Get(1)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)

	_, err = v.Get(-1)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestSetPreservesNeighbours(t *testing.T) {
	v, err := New(6)
	require.NoError(t, err)

	for i := uint64(0); i < 20; i++ {
		require.NoError(t, v.Push(i))
	}

	require.NoError(t, v.Set(10, 63))

	for i := 0; i < 20; i++ {
		got, err := v.Get(i)
		require.NoError(t, err)

		if i == 10 {
			require.EqualValues(t, 63, got)
		} else {
			require.EqualValues(t, i, got)
		}
	}
}

func TestExtendWithElement(t *testing.T) {
	v, err := New(3)
	require.NoError(t, err)

	require.NoError(t, v.Push(5))
	require.NoError(t, v.ExtendWithElement(5, 2))

	require.Equal(t, 5, v.Len())

	want := []uint64{5, 2, 2, 2, 2}
	for i, w := range want {
		got, err := v.Get(i)
		require.NoError(t, err)
		require.EqualValues(t, w, got)
	}

	require.ErrorIs(t, v.ExtendWithElement(2, 0), ErrIndexOutOfBounds)
}

func TestTruncate(t *testing.T) {
	v, err := New(9)
	require.NoError(t, err)

	for i := uint64(0); i < 40; i++ {
		require.NoError(t, v.Push(i))
	}

	require.NoError(t, v.Truncate(7))
	require.Equal(t, 7, v.Len())

	for i := 0; i < 7; i++ {
		got, err := v.Get(i)
		require.NoError(t, err)
		require.EqualValues(t, i, got)
	}

	require.NoError(t, v.Push(99))
	got, err := v.Get(7)
	require.NoError(t, err)
	require.EqualValues(t, 99, got)
}

// TestScenarioS5 and TestScenarioS6 pin the two concrete PackedVec
// scenarios down to their documented exact operations and results.
func TestScenarioS5(t *testing.T) {
	v, err := WithElements(4, 16, 15)
	require.NoError(t, err)

	require.NoError(t, v.Set(0, 1))
	require.NoError(t, v.Set(1, 2))
	require.NoError(t, v.Set(2, 3))

	for i, want := range []uint64{1, 2, 3} {
		got, err := v.Get(i)
		require.NoError(t, err)
		require.EqualValues(t, want, got)
	}

	for i := 3; i < 16; i++ {
		got, err := v.Get(i)
		require.NoError(t, err)
		require.EqualValues(t, 15, got)
	}
}

func TestScenarioS6(t *testing.T) {
	v, err := WithElements(7, 50, 13)
	require.NoError(t, err)

	require.NoError(t, v.Truncate(10))
	require.Equal(t, 10, v.Len())

	got, err := v.Get(9)
	require.NoError(t, err)
	require.EqualValues(t, 13, got)

	require.NoError(t, v.Push(25))
	got, err = v.Get(10)
	require.NoError(t, err)
	require.EqualValues(t, 25, got)
}

func TestClearResetsLength(t *testing.T) {
	v, err := New(10)
	require.NoError(t, err)

	require.NoError(t, v.Push(5))
	require.NoError(t, v.Push(6))

	v.Clear()

	require.Equal(t, 0, v.Len())
	require.True(t, v.IsEmpty())

	require.NoError(t, v.Push(1))

	got, err := v.Get(0)
	require.NoError(t, err)
	require.EqualValues(t, 1, got)
}

func TestIteratorVisitsEveryElementOnce(t *testing.T) {
	v, err := New(11)
	require.NoError(t, err)

	want := []uint64{1, 2, 3, 4, 5, 2000, 17}
	for _, w := range want {
		require.NoError(t, v.Push(w))
	}

	it := v.Iter()

	var got []uint64
	for {
		val, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, val)
	}

	require.Equal(t, want, got)
}

func TestWriteToReadFromRoundTrip(t *testing.T) {
	v, err := New(13)
	require.NoError(t, err)

	rnd := rand.New(rand.NewSource(99))

	for i := 0; i < 300; i++ {
		require.NoError(t, v.Push(uint64(rnd.Int63())&((1<<13)-1)))
	}

	buf := &bytes.Buffer{}
	_, err = v.WriteTo(buf)
	require.NoError(t, err)

	decoded, err := ReadFrom(buf)
	require.NoError(t, err)

	require.Equal(t, v.Len(), decoded.Len())
	require.Equal(t, v.Width(), decoded.Width())

	for i := 0; i < v.Len(); i++ {
		want, err := v.Get(i)
		require.NoError(t, err)

		got, err := decoded.Get(i)
		require.NoError(t, err)

		require.Equal(t, want, got)
	}
}

func TestReadFromRejectsWordCountMismatch(t *testing.T) {
	v, err := New(4)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		require.NoError(t, v.Push(uint64(i)))
	}

	buf := &bytes.Buffer{}
	_, err = v.WriteTo(buf)
	require.NoError(t, err)

	corrupted := buf.Bytes()
	corrupted[16]++ // bump the word_count field

	_, err = ReadFrom(bytes.NewReader(corrupted))
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestNewRejectsInvalidWidth(t *testing.T) {
	_, err := New(0)
	require.ErrorIs(t, err, ErrInvalidWidth)

	_, err = New(64)
	require.ErrorIs(t, err, ErrInvalidWidth)
}
