package sampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsbngen/dbn"
	"github.com/katalvlaran/tsbngen/topology"
)

// chainResolver returns a resolver over the chain 0→1 with the given lags.
func chainResolver(t *testing.T, loopbacks dbn.LoopbackMap) loopbackResolver {
	t.Helper()
	g, err := topology.NewGraph([][]int{{0, 1}, {0, 0}})
	require.NoError(t, err)
	order, err := topology.TopologicalOrder(g)
	require.NoError(t, err)

	return loopbackResolver{order: order, loopbacks: loopbacks}
}

// TestResolve_ParentBefore reads lag m exactly m steps back: the parent has
// already been sampled in the current step.
func TestResolve_ParentBefore(t *testing.T) {
	r := chainResolver(t, dbn.LoopbackMap{{Parent: 0, Child: 1}: {2}})
	slots, err := r.resolve(1, []int{0})
	require.NoError(t, err)
	require.Equal(t, []slot{{parent: 0, lag: 2, offset: 2}}, slots)

	// node 0 at steps 0..3; step 3 is the current one.
	buffers := [][]float64{{10, 11, 12, 13}, {20, 21, 22}}
	v, err := slots[0].read(buffers)
	require.NoError(t, err)
	assert.Equal(t, 11.0, v)
}

// TestResolve_ParentAfter reads lag m as m−1 back: the parent's most recent
// sample already belongs to the previous step.
func TestResolve_ParentAfter(t *testing.T) {
	r := chainResolver(t, dbn.LoopbackMap{{Parent: 1, Child: 0}: {1}})
	slots, err := r.resolve(0, []int{1})
	require.NoError(t, err)
	require.Equal(t, []slot{{parent: 1, lag: 1, offset: 0}}, slots)

	buffers := [][]float64{{10, 11}, {20, 21}}
	v, err := slots[0].read(buffers)
	require.NoError(t, err)
	assert.Equal(t, 21.0, v)
}

// TestResolve_Self treats a self-parent like a parent scheduled after the
// child; without a loopback entry it contributes nothing.
func TestResolve_Self(t *testing.T) {
	r := chainResolver(t, dbn.LoopbackMap{{Parent: 1, Child: 1}: {1, 3}})
	slots, err := r.resolve(1, []int{1})
	require.NoError(t, err)
	assert.Equal(t, []slot{{parent: 1, lag: 1, offset: 0}, {parent: 1, lag: 3, offset: 2}}, slots)

	r = chainResolver(t, dbn.LoopbackMap{})
	slots, err = r.resolve(1, []int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, []slot{{parent: 0}}, slots)
}

// TestResolve_ConsumedOnce applies an entry to the first occurrence of a
// repeated parent only; later occurrences read the most recent value.
func TestResolve_ConsumedOnce(t *testing.T) {
	lbs := dbn.LoopbackMap{{Parent: 0, Child: 1}: {1}}
	r := chainResolver(t, lbs)
	slots, err := r.resolve(1, []int{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []slot{{parent: 0, lag: 1, offset: 1}, {parent: 0}}, slots)

	// The map itself is left intact for the next node and the next step.
	assert.Equal(t, []int{1}, lbs[dbn.Relation{Parent: 0, Child: 1}])
	again, err := r.resolve(1, []int{0, 0})
	require.NoError(t, err)
	assert.Equal(t, slots, again)
}

// TestResolve_NegativeOffset rejects lag 0 on a parent not yet sampled.
func TestResolve_NegativeOffset(t *testing.T) {
	r := chainResolver(t, dbn.LoopbackMap{{Parent: 1, Child: 0}: {0}})
	_, err := r.resolve(0, []int{1})
	assert.ErrorIs(t, err, ErrInvalidLoopback)
}

// TestSlot_ReadBeforeStart fails when the buffer is too short.
func TestSlot_ReadBeforeStart(t *testing.T) {
	s := slot{parent: 0, lag: 3, offset: 3}
	_, err := s.read([][]float64{{1, 2, 3}})
	assert.ErrorIs(t, err, ErrInvalidLoopback)

	_, err = slot{parent: 0}.read([][]float64{nil})
	assert.ErrorIs(t, err, ErrInvalidLoopback)
}
