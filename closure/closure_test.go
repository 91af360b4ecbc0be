package closure_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algebra/catalog"
	"github.com/katalvlaran/algebra/closure"
)

func eqF64(a, b float64) bool { return a == b }
func eqBool(a, b bool) bool   { return a == b }

// tropicalRelation is the 4-node weighted digraph used across the
// shortest-path tests:
//
//	0 --3--> 1 --1--> 2 --2--> 3
//	0 --7--> 2        1 --8--> 3
//
// Diagonal 0 (stay in place), +Inf where no edge exists.
func tropicalRelation(t *testing.T) *closure.Matrix[float64] {
	t.Helper()
	inf := math.Inf(1)
	m, err := closure.FromRows([][]float64{
		{0, 3, 7, inf},
		{inf, 0, 1, 8},
		{inf, inf, 0, 2},
		{inf, inf, inf, 0},
	})
	require.NoError(t, err)

	return m
}

// TestClose_TropicalShortestPaths checks the closure against the
// hand-computed all-pairs distance matrix.
func TestClose_TropicalShortestPaths(t *testing.T) {
	inf := math.Inf(1)
	got, err := closure.Close[float64](catalog.Tropical{}, tropicalRelation(t))
	require.NoError(t, err)

	want, err := closure.FromRows([][]float64{
		{0, 3, 4, 6},   // 0→2 via 1 (3+1), 0→3 via 1,2 (3+1+2)
		{inf, 0, 1, 3}, // 1→3 via 2 (1+2) beats the direct 8
		{inf, inf, 0, 2},
		{inf, inf, inf, 0},
	})
	require.NoError(t, err)
	assert.True(t, got.Equal(want, eqF64), "distance matrix must match hand computation")
}

// TestClose_BooleanReachability verifies unreachable pairs come back as
// the absorbing value (false), not as a crash — node 3 is isolated.
func TestClose_BooleanReachability(t *testing.T) {
	adj, err := closure.FromRows([][]bool{
		{false, true, false, false}, // 0→1
		{false, false, true, false}, // 1→2
		{false, false, false, false},
		{false, false, false, false}, // 3 isolated
	})
	require.NoError(t, err)

	got, err := closure.Close[bool](catalog.Reach{}, adj)
	require.NoError(t, err)

	mustAt := func(i, j int) bool {
		v, atErr := got.At(i, j)
		require.NoError(t, atErr)

		return v
	}

	assert.True(t, mustAt(0, 1))
	assert.True(t, mustAt(0, 2), "transitive hop 0→1→2")
	assert.True(t, mustAt(1, 2))

	for i := 0; i < 4; i++ {
		assert.False(t, mustAt(i, 3), "nothing reaches the isolated node")
		assert.False(t, mustAt(3, i), "the isolated node reaches nothing")
		assert.False(t, mustAt(i, i), "no cycles, so no vertex reaches itself in ≥1 step")
	}
}

// TestClose_CountingPaths verifies the counting semiring counts distinct
// paths on a diamond DAG: two ways from 0 to 3.
func TestClose_CountingPaths(t *testing.T) {
	diamond, err := closure.FromRows([][]int{
		{0, 1, 1, 0}, // 0→1, 0→2
		{0, 0, 0, 1}, // 1→3
		{0, 0, 0, 1}, // 2→3
		{0, 0, 0, 0},
	})
	require.NoError(t, err)

	got, err := closure.Close[int](catalog.Count[int]{}, diamond)
	require.NoError(t, err)

	v, err := got.At(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, v, "0→1→3 and 0→2→3")

	v, err = got.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = got.At(3, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, v, "no path against the edges")
}

// TestClose_Idempotence verifies close(close(R)) == close(R) for
// idempotent additive operations (tropical and boolean).
func TestClose_Idempotence(t *testing.T) {
	once, err := closure.Close[float64](catalog.Tropical{}, tropicalRelation(t))
	require.NoError(t, err)
	twice, err := closure.Close[float64](catalog.Tropical{}, once)
	require.NoError(t, err)
	assert.True(t, once.Equal(twice, eqF64), "tropical closure is a fixed point")

	adj, err := closure.FromRows([][]bool{
		{false, true},
		{true, false},
	})
	require.NoError(t, err)
	bOnce, err := closure.Close[bool](catalog.Reach{}, adj)
	require.NoError(t, err)
	bTwice, err := closure.Close[bool](catalog.Reach{}, bOnce)
	require.NoError(t, err)
	assert.True(t, bOnce.Equal(bTwice, eqBool), "boolean closure is a fixed point")
}

// TestClose_DimensionMismatch verifies the 3×4 contract violation.
func TestClose_DimensionMismatch(t *testing.T) {
	m, err := closure.New(3, 4, 0.0)
	require.NoError(t, err)

	_, err = closure.Close[float64](catalog.Tropical{}, m)
	assert.ErrorIs(t, err, closure.ErrDimensionMismatch)
}

// TestClose_NilMatrix verifies the nil guard.
func TestClose_NilMatrix(t *testing.T) {
	_, err := closure.Close[float64](catalog.Tropical{}, nil)
	assert.ErrorIs(t, err, closure.ErrNilMatrix)
}

// TestClose_InPlaceVersusFresh verifies the buffer-ownership option: by
// default the input is untouched, in-place mode returns the input.
func TestClose_InPlaceVersusFresh(t *testing.T) {
	m := tropicalRelation(t)
	snapshot := m.Clone()

	fresh, err := closure.Close[float64](catalog.Tropical{}, m)
	require.NoError(t, err)
	assert.NotSame(t, m, fresh)
	assert.True(t, m.Equal(snapshot, eqF64), "default mode must not mutate the input")

	inPlace, err := closure.Close[float64](catalog.Tropical{}, m, closure.WithInPlace[float64]())
	require.NoError(t, err)
	assert.Same(t, m, inPlace, "in-place mode returns the caller's matrix")
	assert.True(t, m.Equal(fresh, eqF64), "both modes compute the same closure")
}

// TestClose_ConvergenceMatchesFixed verifies convergence mode changes
// the schedule, never the result, for an idempotent structure. The
// relation has no edges into node 0, so its k=0 pass relaxes nothing —
// a convergence unit smaller than a full sweep would stop there and
// return the unclosed input.
func TestClose_ConvergenceMatchesFixed(t *testing.T) {
	fixed, err := closure.Close[float64](catalog.Tropical{}, tropicalRelation(t))
	require.NoError(t, err)

	converged, err := closure.Close[float64](catalog.Tropical{}, tropicalRelation(t), closure.WithConvergence(eqF64))
	require.NoError(t, err)

	assert.True(t, fixed.Equal(converged, eqF64))

	// Multi-hop cells must be relaxed, not returned as in the input.
	d02, err := converged.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.0, d02, "0→2 via 1 (3+1) beats the direct 7")

	d03, err := converged.At(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 6.0, d03, "0→3 via 1,2 (3+1+2), not +Inf")
}

// TestClose_ConvergenceRefusedWhenNotIdempotent verifies the engine
// rejects early stopping for a structure that declares ⊕ non-idempotent.
func TestClose_ConvergenceRefusedWhenNotIdempotent(t *testing.T) {
	m, err := closure.New(2, 2, 0)
	require.NoError(t, err)

	_, err = closure.Close[int](catalog.Count[int]{}, m, closure.WithConvergence(eqInt))
	assert.ErrorIs(t, err, closure.ErrNotIdempotent)
}

// TestWithConvergence_NilPredicatePanics verifies eager option
// validation.
func TestWithConvergence_NilPredicatePanics(t *testing.T) {
	assert.Panics(t, func() { closure.WithConvergence[int](nil) })
}

// TestMul_HandComputed verifies the semiring product cell formula on a
// counting example.
func TestMul_HandComputed(t *testing.T) {
	a, err := closure.FromRows([][]int{
		{1, 2},
		{0, 3},
	})
	require.NoError(t, err)
	b, err := closure.FromRows([][]int{
		{4, 0},
		{1, 5},
	})
	require.NoError(t, err)

	got, err := closure.Mul[int](catalog.Count[int]{}, a, b)
	require.NoError(t, err)

	want, err := closure.FromRows([][]int{
		{6, 10}, // 1·4+2·1, 1·0+2·5
		{3, 15}, // 0·4+3·1, 0·0+3·5
	})
	require.NoError(t, err)
	assert.True(t, got.Equal(want, eqInt))
}

// TestMul_DimensionMismatch verifies incompatible operand shapes.
func TestMul_DimensionMismatch(t *testing.T) {
	a, err := closure.New(2, 3, 0)
	require.NoError(t, err)
	b, err := closure.New(2, 2, 0)
	require.NoError(t, err)

	_, err = closure.Mul[int](catalog.Count[int]{}, a, b)
	assert.ErrorIs(t, err, closure.ErrDimensionMismatch)

	_, err = closure.Mul[int](catalog.Count[int]{}, nil, b)
	assert.ErrorIs(t, err, closure.ErrNilMatrix)
}

// TestMatPower verifies doubling against repeated multiplication and the
// k == 0 identity case.
func TestMatPower(t *testing.T) {
	adj, err := closure.FromRows([][]bool{
		{false, true, false},
		{false, false, true},
		{true, false, false},
	})
	require.NoError(t, err)

	squared, err := closure.Mul[bool](catalog.Reach{}, adj, adj)
	require.NoError(t, err)
	pow2, err := closure.MatPower[bool](catalog.Reach{}, adj, 2)
	require.NoError(t, err)
	assert.True(t, squared.Equal(pow2, eqBool), "m^2 == m·m")

	cubed, err := closure.Mul[bool](catalog.Reach{}, squared, adj)
	require.NoError(t, err)
	pow3, err := closure.MatPower[bool](catalog.Reach{}, adj, 3)
	require.NoError(t, err)
	assert.True(t, cubed.Equal(pow3, eqBool), "m^3 == m·m·m")

	pow0, err := closure.MatPower[bool](catalog.Reach{}, adj, 0)
	require.NoError(t, err)
	id, err := closure.Identity[bool](catalog.Reach{}, 3)
	require.NoError(t, err)
	assert.True(t, pow0.Equal(id, eqBool), "m^0 is the semiring identity matrix")

	rect, err := closure.New(2, 3, false)
	require.NoError(t, err)
	_, err = closure.MatPower[bool](catalog.Reach{}, rect, 2)
	assert.ErrorIs(t, err, closure.ErrDimensionMismatch)
}

// TestMatPower_TropicalBoundedHops verifies the k-step composition
// semantics: with diagonal 0̄⁺ (stay in place at cost 0), m^k is the
// cheapest path using at most k edges.
func TestMatPower_TropicalBoundedHops(t *testing.T) {
	inf := math.Inf(1)
	m := tropicalRelation(t)

	pow1, err := closure.MatPower[float64](catalog.Tropical{}, m, 1)
	require.NoError(t, err)
	v, err := pow1.At(0, 3)
	require.NoError(t, err)
	assert.Equal(t, inf, v, "no 0→3 path within one hop")

	pow3, err := closure.MatPower[float64](catalog.Tropical{}, m, 3)
	require.NoError(t, err)
	v, err = pow3.At(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v, "0→1→2→3 within three hops")
}
