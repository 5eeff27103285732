package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/splitgrow/core"
)

func TestNewGraph_SingleWhiteRoot(t *testing.T) {
	g := core.NewGraph()
	require.Equal(t, 1, g.Len())
	assert.Equal(t, 0, g.NumEdges())
	assert.Equal(t, node(0, 0, 0, core.White), g.NodeAt(0))
	assert.NoError(t, g.Validate())
}

func TestNewGraphFrom_Errors(t *testing.T) {
	_, err := core.NewGraphFrom([]core.Node{node(1, 0, 0, core.White), node(1, 1, 0, core.White)}, nil)
	assert.ErrorIs(t, err, core.ErrDuplicateID)

	_, err = core.NewGraphFrom([]core.Node{node(0, 0, 0, core.White)}, []core.Edge{{U: 0, V: 7}})
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestNewGraphFrom_NextIDPastMax ensures new nodes never reuse an input ID.
func TestNewGraphFrom_NextIDPastMax(t *testing.T) {
	g := mustGraph(t, []core.Node{node(4, 0, 0, core.White), node(9, 1, 0, core.Black)}, []core.Edge{{U: 4, V: 9}})
	id, err := g.Grow(9, core.Point{X: 1})
	require.NoError(t, err)
	assert.Equal(t, 10, id)
}

func TestRenumber(t *testing.T) {
	in := []core.Node{node(0, 3, 3, core.Black), node(0, 4, 3, core.White)}
	out := core.Renumber(in)
	assert.Equal(t, 0, out[0].ID)
	assert.Equal(t, 1, out[1].ID)
	assert.Equal(t, 0, in[1].ID, "input must not be modified")
}

func TestClone_Independent(t *testing.T) {
	g := growSplitScenario(t)
	c := g.Clone()
	_, err := c.Grow(1, core.Point{X: 1})
	require.NoError(t, err)

	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 4, c.Len())
	n, _ := g.Node(1)
	assert.Equal(t, core.Black, n.Color)
}

func TestQueries(t *testing.T) {
	g := growSplitScenario(t)

	assert.Equal(t, 2, g.Degree(2))
	assert.Equal(t, 1, g.Degree(0))
	assert.ElementsMatch(t, []int{0, 1}, g.Neighbors(2))
	assert.True(t, g.HasEdge(2, 0))
	assert.False(t, g.HasEdge(0, 1))
	assert.Equal(t, 2, g.WhiteCount())

	id, ok := g.At(core.Point{X: 2})
	assert.True(t, ok)
	assert.Equal(t, 1, id)
	assert.False(t, g.Occupied(core.Point{X: 3}))

	_, ok = g.Node(42)
	assert.False(t, ok)
}

func TestEdge_Helpers(t *testing.T) {
	e := core.Edge{U: 5, V: 2}
	assert.Equal(t, [2]int{2, 5}, e.Key())
	assert.Equal(t, 2, e.Other(5))
	assert.Equal(t, core.NoNode, e.Other(3))
	assert.True(t, e.Has(2))
}

func TestNodeSet_IDsSorted(t *testing.T) {
	s := core.NodeSet{3: {}, 1: {}, 2: {}}
	assert.Equal(t, []int{1, 2, 3}, s.IDs())
	assert.Equal(t, 3, s.Len())
	assert.False(t, s.Has(4))
}
