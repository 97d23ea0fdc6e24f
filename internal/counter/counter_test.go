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

package counter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIncrementAccumulatesPerSymbol(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := c.Increment(10)
		require.NoError(t, err)
	}

	for i := 0; i < 3; i++ {
		_, err := c.Increment(200)
		require.NoError(t, err)
	}

	require.EqualValues(t, 5, c.Get(10))
	require.EqualValues(t, 3, c.Get(200))
	require.EqualValues(t, 0, c.Get(11))
	require.EqualValues(t, 0, c.Get(999))
}

func TestIncrementReturnsRunningCount(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	for want := uint64(1); want <= 10; want++ {
		got, err := c.Increment(3)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestWidensWhenCountOverflowsDefaultWidth(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	var last uint64
	for i := 0; i < 1000; i++ {
		last, err = c.Increment(0)
		require.NoError(t, err)
	}

	require.EqualValues(t, 1000, last)
	require.EqualValues(t, 1000, c.Get(0))
}

func TestIncrementRejectsNegativeSymbol(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	_, err = c.Increment(-1)
	require.Error(t, err)
}
