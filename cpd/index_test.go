package cpd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsbngen/cpd"
)

// TestCompositeIndex_Known checks the worked examples for levels [2,3].
func TestCompositeIndex_Known(t *testing.T) {
	levels := []int{2, 3}

	idx, err := cpd.CompositeIndex([]int{1, 2}, levels)
	require.NoError(t, err)
	assert.Equal(t, 1, idx) // 0*3 + 1*1

	idx, err = cpd.CompositeIndex([]int{2, 3}, levels)
	require.NoError(t, err)
	assert.Equal(t, 5, idx) // 1*3 + 2*1

	idx, err = cpd.CompositeIndex(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

// TestCompositeIndex_RoundTrip decodes every row of a few layouts back to the
// value vector that produced it.
func TestCompositeIndex_RoundTrip(t *testing.T) {
	layouts := [][]int{{2}, {2, 3}, {3, 2, 4}, {1, 5}}
	for _, levels := range layouts {
		rows := cpd.Rows(levels)
		seen := make(map[int]bool, rows)
		for idx := 0; idx < rows; idx++ {
			values, err := cpd.DecodeIndex(idx, levels)
			require.NoError(t, err)
			back, err := cpd.CompositeIndex(values, levels)
			require.NoError(t, err)
			assert.Equal(t, idx, back, "levels=%v values=%v", levels, values)
			seen[back] = true
		}
		assert.Len(t, seen, rows)
	}
}

// TestCompositeIndex_Errors covers malformed assignments.
func TestCompositeIndex_Errors(t *testing.T) {
	_, err := cpd.CompositeIndex([]int{1}, []int{2, 2})
	assert.ErrorIs(t, err, cpd.ErrLengthMismatch)

	_, err = cpd.CompositeIndex([]int{3}, []int{2})
	assert.ErrorIs(t, err, cpd.ErrLevelOutOfRange)

	_, err = cpd.CompositeIndex([]int{0}, []int{2})
	assert.ErrorIs(t, err, cpd.ErrLevelOutOfRange)

	_, err = cpd.CompositeIndex([]int{1}, []int{0})
	assert.ErrorIs(t, err, cpd.ErrLevelOutOfRange)

	_, err = cpd.DecodeIndex(6, []int{2, 3})
	assert.ErrorIs(t, err, cpd.ErrLevelOutOfRange)

	assert.Equal(t, 1, cpd.Rows(nil))
	assert.Equal(t, 0, cpd.Rows([]int{2, 0}))
}
