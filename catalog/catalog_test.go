package catalog_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/splitgrow/catalog"
	"github.com/katalvlaran/splitgrow/core"
	"github.com/katalvlaran/splitgrow/generator"
	"github.com/katalvlaran/splitgrow/solver"
)

func openMem(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Open(catalog.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = cat.Close() })

	return cat
}

func puzzle(t *testing.T, seed int64) *core.Puzzle {
	t.Helper()
	p, err := generator.Generate(6, generator.WithSeed(seed))
	require.NoError(t, err)

	return p
}

func TestOpen_ReadOnlyNeedsPath(t *testing.T) {
	_, err := catalog.Open(catalog.Options{ReadOnly: true})
	assert.ErrorIs(t, err, catalog.ErrBadParam)
}

func TestAdd_DedupesBySignature(t *testing.T) {
	cat := openMem(t)
	p := puzzle(t, 11)

	first, added, err := cat.Add(p)
	require.NoError(t, err)
	assert.True(t, added)
	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.Equal(t, p.Graph.Signature(), first.Signature)
	assert.Equal(t, 6, first.Nodes)
	assert.Equal(t, p.Steps(), first.Steps)

	// The solver rebuilds the same configuration with its own IDs and
	// possibly another tree; it must still map to the stored entry.
	sol, err := solver.Solve(p.Graph.Nodes())
	require.NoError(t, err)
	again, added, err := cat.Add(sol.Puzzle)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, first.ID, again.ID)

	n, err := cat.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestGetAndLookup(t *testing.T) {
	cat := openMem(t)
	p := puzzle(t, 5)
	stored, _, err := cat.Add(p)
	require.NoError(t, err)

	got, err := cat.Get(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
	require.NotNil(t, got.Puzzle)
	assert.NoError(t, got.Puzzle.Validate())
	assert.True(t, core.Equivalent(p.Graph, got.Puzzle.Graph))
	assert.Len(t, got.Puzzle.Trace, len(p.Trace))

	found, err := cat.Lookup(p.Graph)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, found.ID)
}

func TestNotFound(t *testing.T) {
	cat := openMem(t)

	_, err := cat.Get(uuid.New())
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	_, err = cat.Lookup(core.NewGraph())
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestAdd_RejectsEmptyPuzzle(t *testing.T) {
	cat := openMem(t)
	_, _, err := cat.Add(nil)
	assert.ErrorIs(t, err, catalog.ErrBadPuzzle)
	_, _, err = cat.Add(&core.Puzzle{})
	assert.ErrorIs(t, err, catalog.ErrBadPuzzle)
}

func TestLookup_RejectsNilGraph(t *testing.T) {
	cat := openMem(t)
	_, err := cat.Lookup(nil)
	assert.ErrorIs(t, err, catalog.ErrBadPuzzle)
}

func TestClosed(t *testing.T) {
	cat, err := catalog.Open(catalog.Options{})
	require.NoError(t, err)
	require.NoError(t, cat.Close())

	_, _, err = cat.Add(puzzle(t, 4))
	assert.ErrorIs(t, err, catalog.ErrClosed)
	_, err = cat.Get(uuid.New())
	assert.ErrorIs(t, err, catalog.ErrClosed)
	_, err = cat.Lookup(core.NewGraph())
	assert.ErrorIs(t, err, catalog.ErrClosed)
	_, err = cat.Len()
	assert.ErrorIs(t, err, catalog.ErrClosed)
	err = cat.Each(func(catalog.Entry) error { return nil })
	assert.ErrorIs(t, err, catalog.ErrClosed)
	assert.NoError(t, cat.Close())
}

func TestEach(t *testing.T) {
	cat := openMem(t)
	ids := map[uuid.UUID]bool{}
	for seed := int64(1); seed <= 6; seed++ {
		e, added, err := cat.Add(puzzle(t, seed))
		require.NoError(t, err)
		if added {
			ids[e.ID] = true
		}
	}

	seen := map[uuid.UUID]bool{}
	require.NoError(t, cat.Each(func(e catalog.Entry) error {
		seen[e.ID] = true
		return nil
	}))
	assert.Equal(t, ids, seen)

	n, err := cat.Len()
	require.NoError(t, err)
	assert.Equal(t, len(ids), n)

	stop := errors.New("stop")
	calls := 0
	err = cat.Each(func(catalog.Entry) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestOpen_Persists(t *testing.T) {
	dir := t.TempDir()
	cat, err := catalog.Open(catalog.Options{Path: dir})
	require.NoError(t, err)
	stored, _, err := cat.Add(puzzle(t, 9))
	require.NoError(t, err)
	require.NoError(t, cat.Close())
	require.NoError(t, cat.Close(), "second close is a no-op")

	cat, err = catalog.Open(catalog.Options{Path: dir})
	require.NoError(t, err)
	defer cat.Close()
	got, err := cat.Get(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.Signature, got.Signature)
}
