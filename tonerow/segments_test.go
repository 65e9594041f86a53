package tonerow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarkGotham/Serial-Analyser/tonerow"
)

// TestSegments_DiscreteAndCells retrieves discrete sub-segments.
//
// The row of Webern's String Quartet, Op. 28 comprises 3x the same
// tetrachord, so ContainsCell confirms the 3 discrete tetrachords but
// not the 4 discrete trichords. Conversely the row of Webern's Concerto
// for Nine Instruments, Op. 24 comprises 4x the same trichord.
func TestSegments_DiscreteAndCells(t *testing.T) {
	quartet := []int{0, 11, 2, 1, 5, 6, 3, 4, 8, 7, 10, 9}

	tetrachords, err := tonerow.Segments(quartet, tonerow.SegmentOptions{Length: 4})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 11, 2, 1}, {5, 6, 3, 4}, {8, 7, 10, 9}}, tetrachords)

	cells, err := tonerow.ContainsCell(tetrachords, true)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2, 3}}, cells)

	trichords, err := tonerow.Segments(quartet, tonerow.SegmentOptions{Length: 3})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 11, 2}, {1, 5, 6}, {3, 4, 8}, {7, 10, 9}}, trichords)

	cells, err = tonerow.ContainsCell(trichords, true)
	require.NoError(t, err)
	assert.Empty(t, cells)

	konzert := []int{0, 11, 3, 4, 8, 7, 9, 5, 6, 1, 2, 10}

	tetrachords, err = tonerow.Segments(konzert, tonerow.SegmentOptions{Length: 4})
	require.NoError(t, err)
	cells, err = tonerow.ContainsCell(tetrachords, true)
	require.NoError(t, err)
	assert.Empty(t, cells)

	trichords, err = tonerow.Segments(konzert, tonerow.SegmentOptions{Length: 3})
	require.NoError(t, err)
	cells, err = tonerow.ContainsCell(trichords, true)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 4}}, cells)
}

// TestSegments_Overlapping checks window counts with and without wrap.
func TestSegments_Overlapping(t *testing.T) {
	row := make([]int, 12)
	for i := range row {
		row[i] = i
	}

	wrapped, err := tonerow.Segments(row, tonerow.DefaultSegmentOptions())
	require.NoError(t, err)
	assert.Len(t, wrapped, 12)
	assert.Equal(t, []int{10, 11, 0}, wrapped[10])
	assert.Equal(t, []int{11, 0, 1}, wrapped[11])

	plain, err := tonerow.Segments(row, tonerow.SegmentOptions{Length: 6, Overlapping: true})
	require.NoError(t, err)
	assert.Len(t, plain, 7)
}

// TestSegments_CallerOwnsResult: segments are copies in every mode, so
// writing through one reaches neither the row nor its neighbours.
func TestSegments_CallerOwnsResult(t *testing.T) {
	row := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

	for _, opts := range []tonerow.SegmentOptions{
		{Length: 3},
		{Length: 3, Overlapping: true},
		{Length: 3, Overlapping: true, Wrap: true},
	} {
		segments, err := tonerow.Segments(row, opts)
		require.NoError(t, err)

		segments[0][0] = 99
		segments[0][1] = 99
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, row)
		if opts.Overlapping {
			assert.Equal(t, []int{1, 2, 3}, segments[1], "windows must not share backing")
		}
	}
}

// TestSegments_Errors covers the length contract.
func TestSegments_Errors(t *testing.T) {
	row := make([]int, 12)
	for i := range row {
		row[i] = i
	}

	_, err := tonerow.Segments(row, tonerow.SegmentOptions{Length: 5})
	assert.ErrorIs(t, err, tonerow.ErrSegmentLength, "5 does not divide 12")

	_, err = tonerow.Segments(row, tonerow.SegmentOptions{Length: 12, Overlapping: true})
	assert.ErrorIs(t, err, tonerow.ErrSegmentLength, "length must be shorter than the row")

	_, err = tonerow.Segments(row, tonerow.SegmentOptions{Length: 0})
	assert.ErrorIs(t, err, tonerow.ErrSegmentLength)
}

// TestContainsCell_PartialRepeats: without exactlyOne, any repeated
// prime form is reported; with it, partial repetition yields nothing.
func TestContainsCell_PartialRepeats(t *testing.T) {
	segments := [][]int{{0, 1, 2}, {3, 4, 5}, {0, 2, 6}}

	repeated, err := tonerow.ContainsCell(segments, false)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}}, repeated)

	repeated, err = tonerow.ContainsCell(segments, true)
	require.NoError(t, err)
	assert.Empty(t, repeated)
}

// TestIsSelfRotational uses Lutosławski's Musique Funèbre row: true at
// dyad granularity, false for its trichords.
func TestIsSelfRotational(t *testing.T) {
	luto2 := [][]int{{0, 6}, {5, 11}, {10, 4}, {3, 9}, {8, 2}, {1, 7}}
	luto3 := [][]int{{0, 6, 5}, {11, 10, 4}, {3, 9, 8}, {2, 1, 7}}

	rotational, err := tonerow.IsSelfRotational(luto2)
	require.NoError(t, err)
	assert.True(t, rotational)

	rotational, err = tonerow.IsSelfRotational(luto3)
	require.NoError(t, err)
	assert.False(t, rotational)
}

// TestIsSelfRotational_NotDerived rejects segment lists that are not
// fully derived from one cell.
func TestIsSelfRotational_NotDerived(t *testing.T) {
	_, err := tonerow.IsSelfRotational([][]int{{0, 1, 2}, {3, 4, 5}, {0, 2, 6}})
	assert.ErrorIs(t, err, tonerow.ErrNotDerived)
}

// TestDerived wraps the segmentation pipeline: Lutosławski's row is
// derived and self-rotational at dyads; at trichord size it is still
// derived (every trichord is 3-5) but the rotation property breaks.
func TestDerived(t *testing.T) {
	luto := []int{0, 6, 5, 11, 10, 4, 3, 9, 8, 2, 1, 7}

	d, err := tonerow.Derived(luto, 2)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, []int{0, 6}, d.Cell)
	assert.True(t, d.SelfRotational)
	assert.Equal(t, 7, d.Step)

	d, err = tonerow.Derived(luto, 3)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, []int{0, 1, 6}, d.Cell)
	assert.False(t, d.SelfRotational)

	// Webern's Op. 28 row is not derived at trichord size at all.
	quartet := []int{0, 11, 2, 1, 5, 6, 3, 4, 8, 7, 10, 9}
	d, err = tonerow.Derived(quartet, 3)
	require.NoError(t, err)
	assert.Nil(t, d)
}
