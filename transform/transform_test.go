package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarkGotham/Serial-Analyser/transform"
)

// TestTranspose round-trips Boulez's "Structures" row through
// TransposeTo and TransposeBy.
func TestTranspose(t *testing.T) {
	boulez := []int{3, 2, 9, 8, 7, 6, 4, 1, 0, 10, 5, 11}

	zero := transform.TransposeTo(boulez, 0)
	assert.Equal(t, []int{0, 11, 6, 5, 4, 3, 1, 10, 9, 7, 2, 8}, zero)

	back := transform.TransposeTo(zero, 3)
	assert.Equal(t, boulez, back)

	up := transform.TransposeBy(back, 2)
	assert.Equal(t, []int{5, 4, 11, 10, 9, 8, 6, 3, 2, 0, 7, 1}, up)
}

// TestTransposeBy_Negative checks mod-12 wrapping for downward shifts.
func TestTransposeBy_Negative(t *testing.T) {
	assert.Equal(t, []int{11, 0, 1}, transform.TransposeBy([]int{0, 1, 2}, -1))
}

// TestRetrograde verifies reversal and input immutability.
func TestRetrograde(t *testing.T) {
	row := []int{0, 1, 4, 6}
	assert.Equal(t, []int{6, 4, 1, 0}, transform.Retrograde(row))
	assert.Equal(t, []int{0, 1, 4, 6}, row, "input must not be mutated")
}

// TestInvert verifies inversion around the first element.
func TestInvert(t *testing.T) {
	assert.Equal(t, []int{0, 11, 8, 6}, transform.Invert([]int{0, 1, 4, 6}))

	// Anchored to the sequence's own first element, not to 0.
	assert.Equal(t, []int{3, 4, 7, 9}, transform.Invert([]int{3, 2, 11, 9}))
}

// TestIntervals checks both directions of the chromatic scale, and the
// wrapped closing interval.
func TestIntervals(t *testing.T) {
	up := make([]int, 12)
	for i := range up {
		up[i] = i
	}

	ones := make([]int, 11)
	elevens := make([]int, 11)
	for i := range ones {
		ones[i] = 1
		elevens[i] = 11
	}

	assert.Equal(t, ones, transform.Intervals(up, false))
	assert.Equal(t, elevens, transform.Intervals(transform.Retrograde(up), false))

	wrapped := transform.Intervals(up, true)
	assert.Len(t, wrapped, 12)
	assert.Equal(t, 1, wrapped[10])
	assert.Equal(t, 1, wrapped[11], "closing interval from 11 back to 0")
}

// TestRotate starts the result on the step-th element for every step.
func TestRotate(t *testing.T) {
	luto := []int{0, 6, 5, 11, 10, 4, 3, 9, 8, 2, 1, 7}
	for i := 0; i < 12; i++ {
		rotated := transform.Rotate(luto, i)
		assert.Equal(t, luto[i], rotated[0], "rotation by %d", i)
		assert.Len(t, rotated, 12)
	}

	// Steps beyond 12 reduce mod 12.
	assert.Equal(t, transform.Rotate(luto, 3), transform.Rotate(luto, 15))
}

// TestRotate_ShortSequences reduces steps mod the sequence length, so
// hexachords and other sub-row segments rotate for any step count.
func TestRotate_ShortSequences(t *testing.T) {
	hexachord := []int{5, 7, 9, 10, 1, 3}

	assert.Equal(t, []int{7, 9, 10, 1, 3, 5}, transform.Rotate(hexachord, 7))
	assert.Equal(t, []int{3, 5, 7, 9, 10, 1}, transform.Rotate(hexachord, -1))
	assert.Equal(t, hexachord, transform.Rotate(hexachord, -12))
	assert.Nil(t, transform.Rotate(nil, 4))
}
