// Package pcset classifies unordered pitch-class sets: interval
// vectors, Forte prime forms and labels, and hexachord
// combinatoriality, backed by a read-only set-class catalog.
//
// This file declares the SetClass entry type, the Combinatoriality
// codes, sentinel errors, and the init-time lookup indexes.
//
// Errors:
//
//	ErrInvalidCardinality   - cardinality outside [2,10] requested.
//	ErrUnknownPrimeForm     - prime form absent from the catalog.
//	ErrUnknownIntervalVector- interval vector absent from the catalog.
//	ErrNoMatchingSetClass   - canonicalization found no candidate class.
//	ErrUnknownSetClass      - computed prime form has no Forte label.
package pcset

import "errors"

// Sentinel errors for catalog lookups and canonicalization.
var (
	// ErrInvalidCardinality indicates a cardinality outside the supported
	// range [2,10]. Cardinalities 0, 1, 11 and 12 are trivial by
	// definition and carry no catalog entries.
	ErrInvalidCardinality = errors.New("pcset: invalid cardinality: must be 2-10 (inclusive)")

	// ErrUnknownPrimeForm indicates an exact-match prime-form lookup
	// found no catalog entry (including cardinality mismatches).
	ErrUnknownPrimeForm = errors.New("pcset: not a valid prime form")

	// ErrUnknownIntervalVector indicates no catalog entry matches the
	// given interval vector, or its sum maps to no supported cardinality.
	ErrUnknownIntervalVector = errors.New("pcset: not a valid interval vector")

	// ErrNoMatchingSetClass indicates the canonicalizer found no
	// candidate prime form for the input's interval vector.
	ErrNoMatchingSetClass = errors.New("pcset: no set class matches the given pitches")

	// ErrUnknownSetClass indicates a computed prime form is absent from
	// the catalog; it should not occur for well-formed 2-10 element sets.
	ErrUnknownSetClass = errors.New("pcset: no Forte class for the given pitches")
)

// Combinatoriality is the combinatorial status of a hexachord class.
//
// A hexachord is combinatorial when some transformation of a row built
// on it completes the chromatic aggregate against the row's own first
// hexachord. The status is a property of the unordered set class and is
// recorded in the catalog for cardinality 6 only.
type Combinatoriality string

const (
	// AllCombinatorial marks the 6 hexachords combinatorial under
	// transposition, inversion and retrograde-inversion alike.
	AllCombinatorial Combinatoriality = "A"

	// TCombinatorial marks transposition-only combinatoriality (1 hexachord).
	TCombinatorial Combinatoriality = "T"

	// ICombinatorial marks inversion-only combinatoriality (13 hexachords).
	ICombinatorial Combinatoriality = "I"

	// RICombinatorial marks retrograde-inversion-only combinatoriality (13 hexachords).
	RICombinatorial Combinatoriality = "RI"

	// NonCombinatorial marks the remaining 16 hexachords.
	NonCombinatorial Combinatoriality = ""
)

// SetClass is one immutable catalog entry.
type SetClass struct {
	// Label is the Forte class label, "<cardinality>-<index>", with a
	// Z-prefixed index for classes sharing their interval vector with
	// another class of the same cardinality.
	Label string

	// Prime is the canonical (prime form) representative: a sorted
	// pitch-class slice starting at 0.
	Prime []int

	// Vector is the interval vector: Vector[i] counts the unordered
	// pitch pairs separated by interval class i+1.
	Vector [6]int

	// Transformations counts the distinct forms of the class under
	// transposition and inversion.
	Transformations int

	// Combinatoriality is set for hexachords only; NonCombinatorial
	// (the zero value) elsewhere.
	Combinatoriality Combinatoriality
}

// MinCardinality and MaxCardinality bound the supported set sizes.
const (
	MinCardinality = 2
	MaxCardinality = 10
)

// Lookup indexes over the catalog, populated once at package init and
// never mutated afterwards; safe for unrestricted concurrent reads.
var (
	// classByPrime maps a prime-form key (see primeKey) to its entry.
	classByPrime map[string]*SetClass

	// classesByVector maps an interval vector to all entries sharing it.
	// Z-related pairs contribute two entries; everything else one.
	// Vector sums are injective over cardinality, so entries of
	// different cardinalities never collide.
	classesByVector map[[6]int][]*SetClass
)

func init() {
	classByPrime = make(map[string]*SetClass)
	classesByVector = make(map[[6]int][]*SetClass)
	for c := MinCardinality; c <= MaxCardinality; c++ {
		for i := range catalog[c] {
			entry := &catalog[c][i]
			classByPrime[primeKey(entry.Prime)] = entry
			classesByVector[entry.Vector] = append(classesByVector[entry.Vector], entry)
		}
	}
}
