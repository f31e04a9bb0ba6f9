package dbn_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsbngen/dbn"
)

func TestParseNodeType(t *testing.T) {
	for _, s := range []string{"discrete", "D", "d"} {
		got, err := dbn.ParseNodeType(s)
		require.NoError(t, err, s)
		assert.Equal(t, dbn.Discrete, got)
	}
	for _, s := range []string{"continuous", "C", "c"} {
		got, err := dbn.ParseNodeType(s)
		require.NoError(t, err, s)
		assert.Equal(t, dbn.Continuous, got)
	}

	_, err := dbn.ParseNodeType("ordinal")
	assert.Error(t, err)
}

func TestLoopbackMap_MaxLag(t *testing.T) {
	assert.Equal(t, 0, dbn.LoopbackMap{}.MaxLag())

	m := dbn.LoopbackMap{
		{Parent: 0, Child: 1}: {0, 2},
		{Parent: 1, Child: 1}: {1, 3},
	}
	assert.Equal(t, 3, m.MaxLag())
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "initial", dbn.Initial.String())
	assert.Equal(t, "recurring", dbn.Recurring.String())
	assert.Equal(t, "secondary", dbn.SecondaryRecurring.String())
	assert.Equal(t, "2->5", dbn.Relation{Parent: 2, Child: 5}.String())
}

func TestNode_JSON(t *testing.T) {
	in := []dbn.Node{{ID: 0, Type: dbn.Discrete, Levels: 3}, {ID: 1, Type: dbn.Continuous}}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":0,"type":"discrete","levels":3},{"id":1,"type":"continuous"}]`, string(b))

	var out []dbn.Node
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)

	_, err = json.Marshal(dbn.Node{Type: dbn.NodeType(7)})
	assert.Error(t, err)
}
