package pcset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarkGotham/Serial-Analyser/pcset"
)

// TestPrime covers one case resolved through the interval vector alone,
// mod-12 reduction of out-of-range input, and the Z-related tetrachord
// pair, which needs the brute-force transposition/inversion comparison.
func TestPrime(t *testing.T) {
	prime, err := pcset.Prime([]int{0, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, prime)

	prime, err = pcset.Prime([]int{100, 102, 103})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, prime)

	// Via I [0,2,5,6], T2 [2,4,7,8], and a shuffle: resolves to 4-Z15,
	// not its Z-partner 4-Z29.
	prime, err = pcset.Prime([]int{8, 2, 4, 7})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4, 6}, prime)
}

// TestPrime_ZRelatedHexachords disambiguates every hexachord against
// its own prime form: each entry must canonicalize to itself.
func TestPrime_ZRelatedHexachords(t *testing.T) {
	hexachords, err := pcset.Classes(6)
	require.NoError(t, err)
	for _, entry := range hexachords {
		prime, err := pcset.Prime(entry.Prime)
		require.NoError(t, err, entry.Label)
		assert.Equal(t, entry.Prime, prime, entry.Label)
	}
}

// TestPrime_CallerOwnsResult verifies the returned slice is a copy:
// writing through it must not reach the catalog, on either resolution
// path (vector-only and Z-related brute force).
func TestPrime_CallerOwnsResult(t *testing.T) {
	for _, pitches := range [][]int{{0, 2, 3}, {8, 2, 4, 7}} {
		prime, err := pcset.Prime(pitches)
		require.NoError(t, err)
		want := append([]int(nil), prime...)

		prime[0] = 9

		again, err := pcset.Prime(pitches)
		require.NoError(t, err)
		assert.Equal(t, want, again)
	}
}

// TestPrime_InvalidInput rejects cardinalities outside 2-10.
func TestPrime_InvalidInput(t *testing.T) {
	_, err := pcset.Prime([]int{0})
	assert.ErrorIs(t, err, pcset.ErrInvalidCardinality)

	_, err = pcset.Prime([]int{0, 0, 12, 24}) // one distinct class
	assert.ErrorIs(t, err, pcset.ErrInvalidCardinality)

	_, err = pcset.Prime([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	assert.ErrorIs(t, err, pcset.ErrInvalidCardinality)
}

// TestForteClass maps sets to their labels, including a Z-related case.
func TestForteClass(t *testing.T) {
	label, err := pcset.ForteClass([]int{0, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "3-2", label)

	label, err = pcset.ForteClass([]int{8, 2, 4, 7})
	require.NoError(t, err)
	assert.Equal(t, "4-Z15", label)
}

// TestClasses_InvalidCardinality rejects the unsupported cardinalities.
func TestClasses_InvalidCardinality(t *testing.T) {
	for _, c := range []int{-1, 0, 1, 11, 12, 13} {
		_, err := pcset.Classes(c)
		assert.ErrorIs(t, err, pcset.ErrInvalidCardinality, "cardinality %d", c)
	}
}

// TestIntervalVector checks the tally and its C(n,2) sum invariant.
func TestIntervalVector(t *testing.T) {
	assert.Equal(t, [6]int{1, 1, 1, 0, 0, 0}, pcset.IntervalVector([]int{0, 2, 3}))

	// All-interval tetrachord: one pair per interval class.
	assert.Equal(t, [6]int{1, 1, 1, 1, 1, 1}, pcset.IntervalVector([]int{0, 1, 4, 6}))

	for _, pitches := range [][]int{
		{0, 1}, {0, 2, 7}, {0, 1, 4, 6}, {0, 2, 4, 6, 8, 10},
	} {
		vector := pcset.IntervalVector(pitches)
		sum := 0
		for _, v := range vector {
			sum += v
		}
		n := len(pitches)
		assert.Equal(t, n*(n-1)/2, sum, "sum must be C(n,2) for %v", pitches)
	}
}

// TestDistinctPCs collapses duplicates and reduces mod 12.
func TestDistinctPCs(t *testing.T) {
	assert.Equal(t, []int{0, 3, 4}, pcset.DistinctPCs([]int{15, 4, 12, 3, 16, -8}))
}

// TestCombinatorialityLookups exercises all three lookup paths on the
// chromatic hexachord (all-combinatorial) and a non-combinatorial one.
func TestCombinatorialityLookups(t *testing.T) {
	status, err := pcset.PrimeToCombinatoriality([]int{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, pcset.AllCombinatorial, status)

	status, err = pcset.VectorToCombinatoriality([6]int{5, 4, 3, 2, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, pcset.AllCombinatorial, status)

	status, err = pcset.PitchesToCombinatoriality([]int{2, 3, 4, 5, 6, 7})
	require.NoError(t, err)
	assert.Equal(t, pcset.AllCombinatorial, status)

	status, err = pcset.PitchesToCombinatoriality([]int{0, 1, 2, 3, 5, 6}) // 6-Z3
	require.NoError(t, err)
	assert.Equal(t, pcset.NonCombinatorial, status)
}

// TestCombinatorialityLookups_Errors verifies the failure sentinels.
func TestCombinatorialityLookups_Errors(t *testing.T) {
	_, err := pcset.PrimeToCombinatoriality([]int{0, 2, 1, 3, 4, 5}) // unsorted: not a prime form
	assert.ErrorIs(t, err, pcset.ErrUnknownPrimeForm)

	_, err = pcset.PrimeToCombinatoriality([]int{0})
	assert.ErrorIs(t, err, pcset.ErrInvalidCardinality)

	_, err = pcset.VectorToCombinatoriality([6]int{9, 9, 9, 9, 9, 9})
	assert.ErrorIs(t, err, pcset.ErrUnknownIntervalVector)

	// Sum 10 maps to no supported cardinality (cardinality 5 has no
	// combinatoriality semantics).
	_, err = pcset.VectorToCombinatoriality([6]int{4, 3, 2, 1, 0, 0})
	assert.ErrorIs(t, err, pcset.ErrUnknownIntervalVector)
}
