// Package pcset is the set-class engine of the Serial-Analyser:
// a read-only Forte catalog plus the canonicalization routines that
// map raw pitch collections onto it.
//
// 🚀 What it does:
//
//   - DistinctPCs / IntervalVector — reduce any integer pitches to a
//     pitch-class set and its interval vector
//   - Prime — canonical (prime) form, with brute-force resolution of
//     the Z-related ambiguities (1 tetrachord pair, 15 hexachord pairs)
//   - ForteClass — the "4-Z15"-style label of a set
//   - PrimeToCombinatoriality / VectorToCombinatoriality /
//     PitchesToCombinatoriality — hexachord combinatoriality lookup
//   - Classes — the raw catalog entries for one cardinality (2-10)
//
// The catalog is populated once at package init and never mutated:
// every lookup is safe for unrestricted concurrent use.
//
// Cardinalities 0, 1, 11 and 12 are trivial by definition and not
// supported; asking for them yields ErrInvalidCardinality.
//
// ⚙️ Usage:
//
//	prime, err := pcset.Prime([]int{8, 2, 4, 7})
//	// prime = [0 1 4 6] (the Z-related tetrachord 4-Z15)
//
//	label, err := pcset.ForteClass([]int{0, 2, 3})
//	// label = "3-2"
//
// Complexity: vector computation O(n²) over n ≤ 10 pitches; Z-related
// disambiguation adds a bounded 12-way transposition scan.
package pcset
