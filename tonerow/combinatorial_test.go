package tonerow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarkGotham/Serial-Analyser/pcset"
	"github.com/MarkGotham/Serial-Analyser/tonerow"
)

// TestCombinatorial_SemiCombinatorialCases: Elisabeth Lutyens'
// "Islands" row is combinatorial by transposition but not inversion;
// Olly Wilson's "Piece for Four" row the other way round.
func TestCombinatorial_SemiCombinatorialCases(t *testing.T) {
	lutyens := []int{0, 11, 7, 3, 8, 10, 9, 6, 4, 5, 1, 2}
	wilson := []int{0, 8, 9, 4, 2, 6, 7, 11, 10, 3, 5, 1}

	combType, err := tonerow.CombinatorialType(lutyens)
	require.NoError(t, err)
	assert.Equal(t, pcset.TCombinatorial, combType)

	matches, err := tonerow.CombinatorialByTransform(lutyens, tonerow.Transposition)
	require.NoError(t, err)
	assert.NotEmpty(t, matches)

	matches, err = tonerow.CombinatorialByTransform(lutyens, tonerow.Inversion)
	require.NoError(t, err)
	assert.Empty(t, matches)

	combType, err = tonerow.CombinatorialType(wilson)
	require.NoError(t, err)
	assert.Equal(t, pcset.ICombinatorial, combType)

	matches, err = tonerow.CombinatorialByTransform(wilson, tonerow.Inversion)
	require.NoError(t, err)
	assert.NotEmpty(t, matches)

	matches, err = tonerow.CombinatorialByTransform(wilson, tonerow.Transposition)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

// TestCombinatorial_AllCombinatorialCases: the chromatic scale, Klein's
// "Mutter" chord (known from Berg's Lyric Suite), and Hale Smith's
// "Contours for Orchestra" — the last combinatorial at two
// transpositions per kind.
func TestCombinatorial_AllCombinatorialCases(t *testing.T) {
	cases := []struct {
		row  []int
		want string
	}{
		{[]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, "T6; I11; RI5"},
		{[]int{0, 11, 7, 4, 2, 9, 3, 8, 10, 1, 5, 6}, "T6; I5; RI11"},
		{[]int{0, 5, 6, 4, 10, 11, 7, 2, 1, 3, 9, 8}, "T3,9; I1,7; RI4,10"},
	}

	for _, tc := range cases {
		combType, err := tonerow.CombinatorialType(tc.row)
		require.NoError(t, err)
		assert.Equal(t, pcset.AllCombinatorial, combType)

		assert.Equal(t, tc.want, tonerow.FullCombinatorialTypes(tc.row).String())
	}
}

// TestCombinatorialByTransform_AgreesWithCatalog cross-checks both
// combinatoriality paths: for every hexachord class, a row built from
// the hexachord and its complement must match the catalog's status kind
// for kind. The brute force recovers indices the lookup cannot.
func TestCombinatorialByTransform_AgreesWithCatalog(t *testing.T) {
	hexachords, err := pcset.Classes(6)
	require.NoError(t, err)

	for _, entry := range hexachords {
		inSet := make(map[int]bool, 6)
		row := append([]int(nil), entry.Prime...)
		for _, p := range entry.Prime {
			inSet[p] = true
		}
		for pc := 0; pc < 12; pc++ {
			if !inSet[pc] {
				row = append(row, pc)
			}
		}

		full := tonerow.FullCombinatorialTypes(row)
		switch entry.Combinatoriality {
		case pcset.AllCombinatorial:
			assert.NotEmpty(t, full.T, entry.Label)
			assert.NotEmpty(t, full.I, entry.Label)
			assert.NotEmpty(t, full.RI, entry.Label)
		case pcset.TCombinatorial:
			assert.NotEmpty(t, full.T, entry.Label)
			assert.Empty(t, full.I, entry.Label)
			assert.Empty(t, full.RI, entry.Label)
		case pcset.ICombinatorial:
			assert.Empty(t, full.T, entry.Label)
			assert.NotEmpty(t, full.I, entry.Label)
			assert.Empty(t, full.RI, entry.Label)
		case pcset.RICombinatorial:
			assert.Empty(t, full.T, entry.Label)
			assert.Empty(t, full.I, entry.Label)
			assert.NotEmpty(t, full.RI, entry.Label)
		case pcset.NonCombinatorial:
			assert.Empty(t, full.T, entry.Label)
			assert.Empty(t, full.I, entry.Label)
			assert.Empty(t, full.RI, entry.Label)
		}
	}
}

// TestCombinatorialPair: complementary first hexachords complete the
// aggregate; overlapping ones do not.
func TestCombinatorialPair(t *testing.T) {
	chromatic := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	tritoneAway := []int{6, 7, 8, 9, 10, 11, 0, 1, 2, 3, 4, 5}

	assert.True(t, tonerow.CombinatorialPair(chromatic, tritoneAway))
	assert.False(t, tonerow.CombinatorialPair(chromatic, chromatic))
}

// TestCombinatorialByTransform_InvalidKind enforces the whitelist.
func TestCombinatorialByTransform_InvalidKind(t *testing.T) {
	row := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	_, err := tonerow.CombinatorialByTransform(row, "R")
	assert.ErrorIs(t, err, tonerow.ErrTransformation)
}

// TestCombinatorialString covers the empty rendering.
func TestCombinatorialString(t *testing.T) {
	assert.Equal(t, "", tonerow.Combinatorial{}.String())
	assert.Equal(t, "I5", tonerow.Combinatorial{I: []int{5}}.String())
}
