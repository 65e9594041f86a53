// Package tonerow classifies twelve-tone rows: segmental derivation,
// symmetry, all-interval status and hexachord combinatoriality.
//
// This file declares the segmentation options, the transformation
// kinds, the Combinatorial summary record, and the sentinel errors.
//
// Errors:
//
//	ErrSegmentLength  - segment length incompatible with the row length.
//	ErrNotDerived     - self-rotation check on a non-derived segment list.
//	ErrTransformation - combinatoriality search with a kind outside {T,I,RI}.
package tonerow

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// Sentinel errors for row classification.
var (
	// ErrSegmentLength indicates a discrete segmentation length that does
	// not evenly divide the row length, or a length not shorter than the
	// row for overlapping mode.
	ErrSegmentLength = errors.New("tonerow: segment length incompatible with row length")

	// ErrNotDerived indicates IsSelfRotational was invoked on a segment
	// list that is not fully derived from a single cell.
	ErrNotDerived = errors.New("tonerow: not a valid (derived) row")

	// ErrTransformation indicates a combinatoriality search with a
	// transformation kind outside T, I and RI. (Prime-to-retrograde
	// combinatoriality holds by definition and is not searched.)
	ErrTransformation = errors.New("tonerow: transformation must be T, I or RI")
)

// SegmentOptions configures Segments.
//
// Fields:
//   - Length      — the sub-segment size (cardinality of each cell).
//   - Overlapping — slide a window of size Length (true) or partition
//     the row into discrete, non-overlapping cells (false). Discrete
//     mode requires Length to divide the row length evenly.
//   - Wrap        — overlapping mode only: wrap around the end of the
//     row so every pitch starts one segment (yielding len(row)
//     segments); without wrap the window stops short, yielding
//     len(row)-Length+1 segments.
type SegmentOptions struct {
	Length      int
	Overlapping bool
	Wrap        bool
}

// DefaultSegmentOptions returns the common case: overlapping wrapped
// trichords.
func DefaultSegmentOptions() SegmentOptions {
	return SegmentOptions{Length: 3, Overlapping: true, Wrap: true}
}

// Transformation names a row transformation kind for combinatoriality
// searches.
type Transformation string

const (
	// Transposition compares the row against its 12 transpositions.
	Transposition Transformation = "T"

	// Inversion compares against the 12 transpositions of the inversion.
	Inversion Transformation = "I"

	// RetrogradeInversion compares against the 12 transpositions of the
	// retrograde inversion.
	RetrogradeInversion Transformation = "RI"
)

// Combinatorial records, per transformation kind, the transposition
// indices (1-12) at which a row is combinatorial with the transformed
// copy of itself. Empty slices mean no combinatoriality of that kind.
type Combinatorial struct {
	T  []int
	I  []int
	RI []int
}

// String renders the non-empty kinds in T, I, RI order, indices
// comma-joined, kinds separated by "; ": for instance "T3,9; I1,7; RI4,10"
// for Hale Smith's "Contours for Orchestra" row, or "" for a
// non-combinatorial row.
func (c Combinatorial) String() string {
	parts := make([]string, 0, 3)
	for _, kind := range []struct {
		label   Transformation
		indices []int
	}{{Transposition, c.T}, {Inversion, c.I}, {RetrogradeInversion, c.RI}} {
		if len(kind.indices) == 0 {
			continue
		}
		rendered := make([]string, len(kind.indices))
		for i, t := range kind.indices {
			rendered[i] = strconv.Itoa(t)
		}
		parts = append(parts, string(kind.label)+strings.Join(rendered, ","))
	}

	return strings.Join(parts, "; ")
}

// Derivation reports that a row is fully derived: built from
// repetitions of a single cell at some segment length.
type Derivation struct {
	// Cell is the prime form of the repeated cell.
	Cell []int

	// SelfRotational is true when consecutive segments are additionally
	// related by one fixed pitch-interval offset applied element-wise.
	SelfRotational bool

	// Step is that fixed offset (mod 12) when SelfRotational holds.
	Step int
}

// Is12Tone reports whether row is a twelve-tone row proper: exactly 12
// pitches covering every pitch class once.
func Is12Tone(row []int) bool {
	if len(row) != 12 {
		return false
	}
	sorted := append([]int(nil), row...)
	sort.Ints(sorted)
	for i, p := range sorted {
		if p != i {
			return false
		}
	}

	return true
}
