package tonerow

import (
	"github.com/MarkGotham/Serial-Analyser/pcset"
	"github.com/MarkGotham/Serial-Analyser/transform"
)

// CombinatorialType classifies a row's combinatoriality by catalog
// lookup on its first hexachord: one of pcset.AllCombinatorial,
// TCombinatorial, ICombinatorial, RICombinatorial, or NonCombinatorial.
// This is the authoritative, O(1) answer for the existence question;
// use CombinatorialByTransform to recover the specific transposition
// indices, which the catalog does not store.
//
// Errors: those of pcset.VectorToCombinatoriality for malformed input.
func CombinatorialType(row []int) (pcset.Combinatoriality, error) {
	return pcset.PitchesToCombinatoriality(row[:6])
}

// CombinatorialPair reports whether two twelve-tone rows are
// combinatorial with each other: their first hexachords are
// complementary, together completing the chromatic aggregate.
func CombinatorialPair(row1, row2 []int) bool {
	var seen [12]bool
	count := 0
	for _, hexachord := range [][]int{row1[:6], row2[:6]} {
		for _, p := range hexachord {
			pc := mod12(p)
			if seen[pc] {
				return false
			}
			seen[pc] = true
			count++
		}
	}

	return count == 12
}

// CombinatorialByTransform searches all 12 transpositions of the
// transformed row (kind Transposition: the row itself; Inversion:
// inverted first; RetrogradeInversion: inverted then retrograded) for
// combinatoriality with the untransformed row, taken as P0. It returns
// the matching transposition indices, 1 through 12 — possibly empty,
// possibly several, since a hexachord type can be combinatorial at more
// than one transposition level.
//
// Prime-to-retrograde combinatoriality holds by definition and is not a
// searchable kind.
//
// Errors: ErrTransformation for kinds outside T, I and RI.
func CombinatorialByTransform(row []int, kind Transformation) ([]int, error) {
	comparison := append([]int(nil), row...)
	switch kind {
	case Transposition:
	case Inversion:
		comparison = transform.Invert(comparison)
	case RetrogradeInversion:
		comparison = transform.Retrograde(transform.Invert(comparison))
	default:
		return nil, ErrTransformation
	}

	matches := []int{}
	for i := 0; i < 12; i++ {
		comparison = transform.TransposeBy(comparison, 1)
		if CombinatorialPair(comparison, row) {
			matches = append(matches, i+1)
		}
	}

	return matches, nil
}

// FullCombinatorialTypes runs CombinatorialByTransform for all three
// kinds and gathers the results in a Combinatorial record; its String
// method renders forms like "T3,9; I1,7; RI4,10".
func FullCombinatorialTypes(row []int) Combinatorial {
	var c Combinatorial
	c.T, _ = CombinatorialByTransform(row, Transposition)
	c.I, _ = CombinatorialByTransform(row, Inversion)
	c.RI, _ = CombinatorialByTransform(row, RetrogradeInversion)

	return c
}
