package platemerge

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecomposeAll_SharedCoordinates(t *testing.T) {
	t.Parallel()

	parts := map[string]*CellSet{
		"A": cellSet(t, 3, 3, Cell{0, 0}),
		"B": cellSet(t, 3, 3),
	}
	got, err := DecomposeAll(parts)
	require.NoError(t, err)

	want := map[string][]Rect{
		"A": {{Left: 0, Right: 0, Top: 0, Bottom: 0}},
		"B": {},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DecomposeAll() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecomposeAll_IndependentBounds(t *testing.T) {
	t.Parallel()

	// Same predicate, different declared widths: each partition is bounded by its own size.
	all := func(int, int) bool { return true }
	parts := map[int]Grid{
		1: GridFunc{Width: 2, Height: 1, Fn: all},
		2: GridFunc{Width: 5, Height: 2, Fn: all},
	}
	got, err := DecomposeAll(parts)
	require.NoError(t, err)
	assert.Equal(t, []Rect{{Left: 0, Right: 1, Top: 0, Bottom: 0}}, got[1])
	assert.Equal(t, []Rect{{Left: 0, Right: 4, Top: 1, Bottom: 0}}, got[2])
}

func TestDecomposeAll_RejectsBeforeOutput(t *testing.T) {
	t.Parallel()

	parts := map[string]Grid{
		"ok":  cellSet(t, 2, 2, Cell{0, 0}),
		"bad": GridFunc{Width: 2, Height: -1, Fn: func(int, int) bool { return false }},
	}
	got, err := DecomposeAll(parts)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSize)
	assert.Contains(t, err.Error(), "partition bad")
	assert.Nil(t, got)
}

type leakyGrid struct {
	*CellSet
	extra Cell
}

func (g leakyGrid) Validate() error {
	if !g.InBounds(g.extra) {
		return &BoundsError{Cell: g.extra, Width: g.width, Height: g.height}
	}
	return nil
}

func TestDecomposeAll_BoundsErrorCarriesPartition(t *testing.T) {
	t.Parallel()

	parts := map[string]leakyGrid{
		"room": {CellSet: NewCellSet(2, 2), extra: Cell{5, 0}},
	}
	_, err := DecomposeAll(parts)
	require.ErrorIs(t, err, ErrOutOfBounds)

	var be *BoundsError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "room", be.Partition)
	assert.Equal(t, Cell{5, 0}, be.Cell)
	assert.Contains(t, err.Error(), "partition room")
}

func TestDecomposeAllParallel_MatchesSequential(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 11))
	parts := make(map[int]*CellSet)
	for i := range 16 {
		parts[i] = randomGrid(rng, 1+rng.IntN(24), 1+rng.IntN(24), 0.55)
	}

	seq, err := DecomposeAll(parts)
	require.NoError(t, err)

	par, err := DecomposeAllParallel(context.Background(), parts, 4)
	require.NoError(t, err)

	if diff := cmp.Diff(seq, par); diff != "" {
		t.Errorf("parallel mismatch (-seq +par):\n%s", diff)
	}
}

func TestDecomposeAllParallel_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	parts := map[string]*CellSet{"a": NewCellSet(1, 1)}
	_, err := DecomposeAllParallel(ctx, parts, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecomposeAll_Isolation(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 5))
	a := randomGrid(rng, 12, 9, 0.6)
	b := randomGrid(rng, 12, 9, 0.6)

	alone, err := Decompose(a)
	require.NoError(t, err)

	together, err := DecomposeAll(map[string]*CellSet{"a": a, "b": b})
	require.NoError(t, err)

	assert.Equal(t, alone, together["a"])
}
