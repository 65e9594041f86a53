// Package transform provides the pure transformation primitives over
// pitch-class sequences (mod-12 residues): transposition, inversion,
// retrograde, rotation and interval-succession extraction, plus two
// historical re-ordering procedures after Krenek (1960): paired
// hexachord rotation and the adjacent-pair swap cycle.
//
// Every function is pure: inputs are never mutated and results are
// freshly allocated, so callers may share rows freely across
// goroutines.
//
// Error policy: none. All functions assume well-formed integer
// sequences; the row-specific operations (RotateHexachords,
// PairSwapKrenek) additionally assume 12-element rows. Violating those
// contracts is a caller bug, not a runtime-checked condition.
//
// ⚙️ Usage:
//
//	p0 := transform.TransposeTo(row, 0)     // prime form at 0
//	i0 := transform.Invert(p0)              // inversion around p0[0]
//	ri := transform.Retrograde(i0)          // retrograde inversion
//	iv := transform.Intervals(row, false)   // 11 directed intervals
//
// Complexity: every operation is O(n) over sequences of length n ≤ 12;
// the Krenek cycles return O(1)-many rows (7 and 13 respectively).
package transform
