package core_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/splitgrow/core"
)

func TestValidate(t *testing.T) {
	square := []core.Node{
		node(0, 0, 0, core.White), node(1, 1, 0, core.Black),
		node(2, 0, 1, core.Black), node(3, 1, 1, core.White),
	}
	cases := []struct {
		name  string
		nodes []core.Node
		edges []core.Edge
		want  error
	}{
		{"valid scenario", growSplitScenario(t).Nodes(), growSplitScenario(t).Edges(), nil},
		{"empty", nil, nil, core.ErrNotTree},
		{"duplicate position",
			[]core.Node{node(0, 0, 0, core.White), node(1, 0, 0, core.White)},
			[]core.Edge{{U: 0, V: 1}}, core.ErrDuplicatePosition},
		{"diagonal edge",
			[]core.Node{node(0, 0, 0, core.White), node(1, 1, 1, core.White)},
			[]core.Edge{{U: 0, V: 1}}, core.ErrBadEdge},
		{"missing edge", square, []core.Edge{{U: 0, V: 1}, {U: 2, V: 3}}, core.ErrNotTree},
		{"cycle", square, []core.Edge{{U: 0, V: 1}, {U: 1, V: 3}, {U: 3, V: 2}, {U: 2, V: 0}}, core.ErrNotTree},
		{"disconnected with n-1 edges",
			square, []core.Edge{{U: 0, V: 1}, {U: 1, V: 0}, {U: 2, V: 3}}, core.ErrNotTree},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGraph(t, tc.nodes, tc.edges)
			err := g.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPuzzle_Validate(t *testing.T) {
	g := core.NewGraph()
	trace := []*core.Graph{g.Clone()}
	leaf, err := g.Grow(0, core.Point{X: 1})
	require.NoError(t, err)
	trace = append(trace, g.Clone())
	_, err = g.Split(0, leaf)
	require.NoError(t, err)
	trace = append(trace, g.Clone())

	p := &core.Puzzle{Graph: g, Trace: trace}
	require.NoError(t, p.Validate())
	assert.Equal(t, 2, p.Steps())

	bad := &core.Puzzle{Graph: g, Trace: []*core.Graph{trace[0], trace[2]}}
	assert.ErrorIs(t, bad.Validate(), core.ErrBadTrace)

	wrongEnd := &core.Puzzle{Graph: g, Trace: trace[:2]}
	assert.ErrorIs(t, wrongEnd.Validate(), core.ErrBadTrace)

	assert.ErrorIs(t, (&core.Puzzle{}).Validate(), core.ErrBadTrace)

	// Two whites cannot follow a lone white: Grow always leaves a black parent.
	twoWhites := mustGraph(t, []core.Node{node(0, 0, 0, core.White), node(1, 1, 0, core.White)}, []core.Edge{{U: 0, V: 1}})
	jump := &core.Puzzle{Graph: twoWhites, Trace: []*core.Graph{trace[0], twoWhites}}
	assert.ErrorIs(t, jump.Validate(), core.ErrBadTrace)

	// A lone black node is a valid tree but not the root of any construction.
	black := mustGraph(t, []core.Node{node(0, 0, 0, core.Black)}, nil)
	blackRoot := &core.Puzzle{Graph: black, Trace: []*core.Graph{black}}
	assert.ErrorIs(t, blackRoot.Validate(), core.ErrBadTrace)
}

// TestPuzzle_JSON checks the wire shape consumers read (trace[i].nodes / .edges).
func TestPuzzle_JSON(t *testing.T) {
	g := growSplitScenario(t)
	p := &core.Puzzle{Graph: g, Trace: []*core.Graph{g}}

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"nodes":[{"id":0,"gx":0,"gy":0,"color":0}`)

	var back core.Puzzle
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, g.StateKey(), back.Graph.StateKey())
	require.Len(t, back.Trace, 1)
	assert.Equal(t, g.Edges(), back.Trace[0].Edges())
}
