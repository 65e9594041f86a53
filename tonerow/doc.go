// Package tonerow investigates the structural properties of
// twelve-tone rows, centred on segmental derivation and
// combinatoriality.
//
// 🚀 What it covers:
//
//   - Is12Tone — permutation validity check
//   - Segments / ContainsCell / IsSelfRotational / Derived — is the row
//     built from repetitions of one small cell, and does the derivation
//     additionally rotate by a constant interval?
//   - IsAllInterval / IsAllTrichord — interval and trichord coverage
//   - IsSelfRetrograde / IsSelfRI — order symmetry under R and RI
//   - CombinatorialType / CombinatorialPair / CombinatorialByTransform /
//     FullCombinatorialTypes — hexachord combinatoriality, both by
//     catalog lookup (the existence question) and by brute-force search
//     (the specific transposition indices)
//
// Every classifier is stateless and idempotent: calls share nothing but
// the read-only pcset catalog, so batch callers may run one row per
// goroutine with no coordination.
//
// Callers are expected to validate rows with Is12Tone before invoking
// the twelve-tone-specific classifiers; the classifiers do not
// re-validate on every call, except where a check is explicitly part of
// the contract (segment-length divisibility, transformation-kind
// whitelist).
//
// ⚙️ Usage:
//
//	quartet := []int{0, 11, 2, 1, 5, 6, 3, 4, 8, 7, 10, 9} // Webern, Op. 28
//	d, err := tonerow.Derived(quartet, 4)
//	// d.Cell = [0 1 2 3]: three statements of the chromatic tetrachord
//
//	smith := []int{0, 5, 6, 4, 10, 11, 7, 2, 1, 3, 9, 8}
//	fmt.Println(tonerow.FullCombinatorialTypes(smith))
//	// T3,9; I1,7; RI4,10
//
// Complexity: worst case is the combinatoriality search — 3 kinds × 12
// transpositions × one 12-element aggregate check.
package tonerow
