// SPDX-License-Identifier: MIT
package visited_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rankpath/visited"
)

func TestSet_AllStrategies(t *testing.T) {
	for _, s := range visited.Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			set := visited.New(s, 16)
			assert.False(t, set.Contains(3))

			set.Add(3)
			set.Add(0)
			set.Add(15)
			assert.True(t, set.Contains(3))
			assert.True(t, set.Contains(0))
			assert.True(t, set.Contains(15))
			assert.False(t, set.Contains(4))
			assert.False(t, set.Contains(-1))

			// indexes beyond the initial capacity still work
			set.Add(40)
			assert.True(t, set.Contains(40))

			set.Clear()
			for _, i := range []int{0, 3, 15, 40} {
				assert.False(t, set.Contains(i), "index %d must be cleared", i)
			}

			set.Add(7)
			assert.True(t, set.Contains(7), "set must be reusable after Clear")
		})
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want visited.Strategy
	}{
		{"", visited.BitSet},
		{"bitset", visited.BitSet},
		{"Array", visited.Array},
		{" list ", visited.List},
		{"HASHSET", visited.HashSet},
	}
	for _, tc := range tests {
		got, err := visited.ParseStrategy(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := visited.ParseStrategy("treap")
	require.ErrorIs(t, err, visited.ErrUnknownStrategy)
}

func TestStrategy_StringAndValid(t *testing.T) {
	for _, s := range visited.Strategies() {
		assert.True(t, s.Valid())
		back, err := visited.ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, back)
	}
	assert.False(t, visited.Strategy(42).Valid())
	assert.Equal(t, "Strategy(42)", visited.Strategy(42).String())
}
