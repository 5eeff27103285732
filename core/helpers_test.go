package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/splitgrow/core"
)

// node is a compact fixture constructor: id, x, y, color.
func node(id, x, y int, c core.Color) core.Node {
	return core.Node{ID: id, GX: x, GY: y, Color: c}
}

// mustGraph builds a Graph from fixtures and fails the test on error.
func mustGraph(t *testing.T, nodes []core.Node, edges []core.Edge) *core.Graph {
	t.Helper()
	g, err := core.NewGraphFrom(nodes, edges)
	require.NoError(t, err)

	return g
}

// growSplitScenario returns the three-node line built by growing east from
// the root and splitting the new edge:
//
//	0(0,0,W) ── 2(1,0,W) ── 1(2,0,B)
func growSplitScenario(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	leaf, err := g.Grow(0, core.Point{X: 1})
	require.NoError(t, err)
	_, err = g.Split(0, leaf)
	require.NoError(t, err)

	return g
}

// uTurn returns a six-node tree where splitting 0–1 pushes node 1 onto node 5:
//
//	4(0,2) ── 5(1,2)
//	  │
//	3(0,1)    1(1,1)
//	  │         │
//	2(0,0) ── 0(1,0)
func uTurn(t *testing.T) *core.Graph {
	t.Helper()
	return mustGraph(t,
		[]core.Node{
			node(0, 1, 0, core.White), node(1, 1, 1, core.White), node(2, 0, 0, core.Black),
			node(3, 0, 1, core.White), node(4, 0, 2, core.Black), node(5, 1, 2, core.White),
		},
		[]core.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 5}},
	)
}
