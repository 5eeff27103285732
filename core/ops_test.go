package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/splitgrow/core"
)

func TestGrow_East(t *testing.T) {
	g := core.NewGraph()
	id, err := g.Grow(0, core.Point{X: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, id)
	assert.Equal(t, []core.Node{node(0, 0, 0, core.Black), node(1, 1, 0, core.White)}, g.Nodes())
	assert.Equal(t, []core.Edge{{U: 0, V: 1}}, g.Edges())
	assert.NoError(t, g.Validate())
}

func TestGrow_Errors(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Grow(0, core.Point{X: 1})
	require.NoError(t, err)
	before := g.StateKey()

	_, err = g.Grow(42, core.Point{X: 1})
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = g.Grow(0, core.Point{X: 1, Y: 1})
	assert.ErrorIs(t, err, core.ErrBadDirection)

	_, err = g.Grow(1, core.Point{X: -1})
	assert.ErrorIs(t, err, core.ErrOccupied)

	assert.Equal(t, before, g.StateKey(), "failed grows must not mutate the graph")
	assert.Equal(t, 2, g.Len())
}

// TestSplit_Scenario walks grow-east then split and checks the exact layout:
//
//	0(0,0,W) ── 2(1,0,W) ── 1(2,0,B)
func TestSplit_Scenario(t *testing.T) {
	g := growSplitScenario(t)

	assert.Equal(t, []core.Node{
		node(0, 0, 0, core.White),
		node(1, 2, 0, core.Black),
		node(2, 1, 0, core.White),
	}, g.Nodes())
	assert.Equal(t, []core.Edge{{U: 0, V: 2}, {U: 2, V: 1}}, g.Edges())
	assert.NoError(t, g.Validate())
}

// TestSplit_MovesWholeSide checks that every node on v's side is translated.
func TestSplit_MovesWholeSide(t *testing.T) {
	g := pathGraph(t)
	id, err := g.Split(0, 1)
	require.NoError(t, err)

	n, _ := g.Node(0)
	assert.Equal(t, core.Point{}, n.Pos(), "u stays in place")
	for _, want := range []struct{ id, x int }{{1, 2}, {2, 3}, {3, 4}, {id, 1}} {
		n, ok := g.Node(want.id)
		require.True(t, ok)
		assert.Equal(t, want.x, n.GX, "node %d", want.id)
	}
	assert.NoError(t, g.Validate())
}

func TestSplit_ReverseOrientationMovesOtherSide(t *testing.T) {
	g := pathGraph(t)
	_, err := g.Split(1, 0)
	require.NoError(t, err)

	n, _ := g.Node(0)
	assert.Equal(t, -1, n.GX)
	n, _ = g.Node(3)
	assert.Equal(t, 3, n.GX)
}

func TestSplit_Collision(t *testing.T) {
	g := uTurn(t)
	before := g.StateKey()

	_, err := g.Split(0, 1)
	assert.ErrorIs(t, err, core.ErrCollision)
	assert.Equal(t, before, g.StateKey(), "failed split must not mutate the graph")
}

func TestSplit_MissingEdge(t *testing.T) {
	g := pathGraph(t)
	_, err := g.Split(0, 2)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}
