package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/splitgrow/core"
)

// translated returns a copy of nodes shifted by (dx,dy) with IDs reversed.
func translated(nodes []core.Node, dx, dy int) []core.Node {
	out := make([]core.Node, len(nodes))
	for i, n := range nodes {
		out[len(nodes)-1-i] = core.Node{ID: 100 + i, GX: n.GX + dx, GY: n.GY + dy, Color: n.Color}
	}

	return out
}

func TestSignature_Scenario(t *testing.T) {
	g := growSplitScenario(t)
	assert.Equal(t, core.Signature{"0,0,0", "1,0,0", "2,0,1"}, g.Signature())
	assert.Equal(t, "0,0,0|1,0,0|2,0,1", g.Signature().Key())
}

// TestSignature_TranslationAndIdentityInvariant covers translation by any
// integer vector and permutation of node identities.
func TestSignature_TranslationAndIdentityInvariant(t *testing.T) {
	g := growSplitScenario(t)
	for _, d := range []core.Point{{X: 0, Y: 0}, {X: 7, Y: -3}, {X: -100, Y: 42}} {
		moved := mustGraph(t, translated(g.Nodes(), d.X, d.Y), nil)
		assert.True(t, g.Signature().Equal(moved.Signature()), "shift %v", d)
		assert.True(t, core.Equivalent(g, moved))
	}
}

func TestSignature_Idempotent(t *testing.T) {
	g := uTurn(t)
	assert.Equal(t, g.Signature(), g.Signature())
	assert.Equal(t, g.StateKey(), g.Clone().StateKey())
}

// TestSignature_RotationIsDistinct: only translation is normalized.
func TestSignature_RotationIsDistinct(t *testing.T) {
	horizontal := mustGraph(t, []core.Node{node(0, 0, 0, core.White), node(1, 1, 0, core.Black)}, []core.Edge{{U: 0, V: 1}})
	vertical := mustGraph(t, []core.Node{node(0, 0, 0, core.White), node(1, 0, 1, core.Black)}, []core.Edge{{U: 0, V: 1}})
	assert.False(t, core.Equivalent(horizontal, vertical))
}

// TestStateKey_SeesEdges: a 2x2 block admits several spanning trees with the
// same colored cells; the signature ignores the difference, the state key does not.
func TestStateKey_SeesEdges(t *testing.T) {
	nodes := []core.Node{
		node(0, 0, 0, core.White), node(1, 1, 0, core.Black),
		node(2, 0, 1, core.Black), node(3, 1, 1, core.White),
	}
	a := mustGraph(t, nodes, []core.Edge{{U: 0, V: 1}, {U: 1, V: 3}, {U: 3, V: 2}})
	b := mustGraph(t, nodes, []core.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 2, V: 3}})

	assert.True(t, core.Equivalent(a, b))
	assert.NotEqual(t, a.StateKey(), b.StateKey())

	// reordering and reorienting edges does not matter
	c := mustGraph(t, nodes, []core.Edge{{U: 2, V: 3}, {U: 3, V: 1}, {U: 1, V: 0}})
	assert.Equal(t, a.StateKey(), c.StateKey())
	assert.NoError(t, c.Validate())
}

func TestEquivalent_Nil(t *testing.T) {
	assert.True(t, core.Equivalent(nil, nil))
	assert.False(t, core.Equivalent(core.NewGraph(), nil))
}
