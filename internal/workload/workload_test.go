package workload

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/segdeque/deque"
	"github.com/arloliu/segdeque/errs"
)

func TestGenerator_Deterministic(t *testing.T) {
	a := NewGenerator(99, DefaultWeights.WithMiddle(5))
	b := NewGenerator(99, DefaultWeights.WithMiddle(5))
	for size := range 500 {
		require.Equal(t, a.Next(size), b.Next(size))
	}
}

func TestGenerator_Positions(t *testing.T) {
	g := NewGenerator(1, Weights{OpInsert: 1, OpErase: 1})
	seen := map[OpKind]int{}
	for i := range 2000 {
		size := i % 7
		op := g.Next(size)
		seen[op.Kind]++
		switch op.Kind {
		case OpInsert:
			require.GreaterOrEqual(t, op.Pos, 0)
			require.LessOrEqual(t, op.Pos, size)
		case OpErase:
			require.NotZero(t, size, "erase on empty container")
			require.Less(t, op.Pos, size)
		default:
			require.Failf(t, "unexpected kind", "%s", op.Kind)
		}
	}
	require.Positive(t, seen[OpInsert])
	require.Positive(t, seen[OpErase])
}

func TestGenerator_EraseOnlyOnEmpty(t *testing.T) {
	g := NewGenerator(5, Weights{OpErase: 1})
	require.Equal(t, OpPushBack, g.Next(0).Kind)
	require.Equal(t, OpErase, g.Next(3).Kind)
}

func TestGenerator_ZeroWeights(t *testing.T) {
	g := NewGenerator(5, Weights{})
	require.Equal(t, DefaultWeights, g.weights)
}

func TestOpKind_String(t *testing.T) {
	require.Equal(t, "push_back", OpPushBack.String())
	require.Equal(t, "erase", OpErase.String())
	require.Equal(t, "op(42)", OpKind(42).String())
	require.Len(t, Kinds(), 6)
}

func TestRun(t *testing.T) {
	tests := []struct {
		name      string
		chunkSize int
		weights   Weights
	}{
		{"ends_chunk_1", 1, DefaultWeights},
		{"ends_chunk_8", 8, DefaultWeights},
		{"mixed_chunk_4", 4, DefaultWeights.WithMiddle(10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := deque.New(deque.WithChunkSize[int](tt.chunkSize), deque.WithChunkRecycling[int]())
			require.NoError(t, err)

			steps := 0
			rep, err := Run(d, Config{
				Ops:        10_000,
				Seed:       7,
				Weights:    tt.weights,
				CheckEvery: 100,
				OnStep:     func(int, Op, deque.Stats) { steps++ },
			})
			require.NoError(t, err)
			require.Equal(t, 10_000, rep.Ops)
			require.Equal(t, 10_000, steps)
			require.Greater(t, rep.Final.Growths, 1)
			require.Equal(t, d.Len(), rep.Final.Len)
			require.GreaterOrEqual(t, rep.MaxLen, d.Len())
			require.Equal(t, deque.Fingerprint(d, EncodeInt), rep.Fingerprint)

			total := 0
			for _, k := range Kinds() {
				total += rep.Count(k)
			}
			require.Equal(t, rep.Ops, total)
		})
	}
}

func TestRun_SeedsExistingContents(t *testing.T) {
	d, err := deque.FromSlice([]int{-3, -2, -1}, deque.WithChunkSize[int](2))
	require.NoError(t, err)

	_, err = Run(d, Config{Ops: 500, Seed: 3})
	require.NoError(t, err)
}

func TestRun_ReportsContainerErrors(t *testing.T) {
	d, err := deque.New(deque.WithChunkSize[int](2), deque.WithMaxRows[int](8))
	require.NoError(t, err)

	rep, err := Run(d, Config{Ops: 1000, Seed: 1, Weights: Weights{OpPushBack: 1}})
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
	require.NotErrorIs(t, err, ErrDivergence)
	require.Less(t, rep.Ops, 1000)
	require.Equal(t, rep.Ops, rep.Final.Len)
}

func TestComparePop(t *testing.T) {
	var rep Report

	err := comparePop(func() (int, error) { return 1, nil }, func() (int, bool) { return 2, true }, &rep)
	require.ErrorIs(t, err, ErrDivergence)

	err = comparePop(func() (int, error) { return 0, nil }, func() (int, bool) { return 0, false }, &rep)
	require.ErrorIs(t, err, ErrDivergence)

	err = comparePop(func() (int, error) { return 0, errs.ErrEmpty }, func() (int, bool) { return 0, false }, &rep)
	require.NoError(t, err)
	require.Equal(t, 2, rep.EmptyPops)
}
