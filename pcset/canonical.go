package pcset

// Classes returns the catalog entries for one cardinality, in Forte
// index order. The returned slice is shared, read-only reference data:
// callers must not mutate it.
//
// Errors: ErrInvalidCardinality for cardinalities outside [2,10].
func Classes(cardinality int) ([]SetClass, error) {
	if cardinality < MinCardinality || cardinality > MaxCardinality {
		return nil, ErrInvalidCardinality
	}

	return catalog[cardinality], nil
}

// Prime computes the Forte prime form of an arbitrary multiset of
// pitches (any integers; reduced mod 12, duplicates collapsed).
//
// The interval vector determines the prime form directly for all but
// the Z-related pairs (one tetrachord pair, fifteen hexachord pairs),
// which share a vector. Those are resolved by brute force: each
// candidate prime, in both orientations (as-is and inverted), is tested
// for transposition equivalence against the input set, and the first
// candidate that matches wins.
//
// The result is a fresh slice owned by the caller; the catalog itself
// is never handed out for mutation.
//
// Errors:
//   - ErrInvalidCardinality for sets outside [2,10] distinct classes.
//   - ErrNoMatchingSetClass when no catalog vector matches (malformed input).
func Prime(pitches []int) ([]int, error) {
	pcs := DistinctPCs(pitches)
	if len(pcs) < MinCardinality || len(pcs) > MaxCardinality {
		return nil, ErrInvalidCardinality
	}

	candidates := classesByVector[IntervalVector(pcs)]
	switch len(candidates) {
	case 0:
		return nil, ErrNoMatchingSetClass
	case 1:
		return append([]int(nil), candidates[0].Prime...), nil
	}

	// Z-related pair: disambiguate by direct comparison.
	for _, candidate := range candidates {
		if transpositionEquivalent(candidate.Prime, pcs) ||
			transpositionEquivalent(invertSet(candidate.Prime), pcs) {
			return append([]int(nil), candidate.Prime...), nil
		}
	}

	return nil, ErrNoMatchingSetClass
}

// ForteClass returns the Forte label ("4-Z15", "6-32", ...) of the set
// class of pitches.
//
// Errors: those of Prime, plus ErrUnknownSetClass should the computed
// prime form be absent from the catalog (not expected for well-formed
// 2-10 element sets).
func ForteClass(pitches []int) (string, error) {
	prime, err := Prime(pitches)
	if err != nil {
		return "", err
	}
	entry, ok := classByPrime[primeKey(prime)]
	if !ok {
		return "", ErrUnknownSetClass
	}

	return entry.Label, nil
}

// PrimeToCombinatoriality looks up the combinatoriality status of a
// prime form by exact match.
//
// Errors: ErrInvalidCardinality outside [2,10]; ErrUnknownPrimeForm
// when the slice is not a catalog prime form.
func PrimeToCombinatoriality(prime []int) (Combinatoriality, error) {
	if len(prime) < MinCardinality || len(prime) > MaxCardinality {
		return NonCombinatorial, ErrInvalidCardinality
	}
	entry, ok := classByPrime[primeKey(prime)]
	if !ok {
		return NonCombinatorial, ErrUnknownPrimeForm
	}

	return entry.Combinatoriality, nil
}

// vectorSumToCardinality maps an interval-vector sum C(n,2) back to n
// for the cardinalities this lookup supports. Only cardinalities
// 2, 3, 4 and 6 are reachable here: combinatoriality semantics are only
// meaningfully defined at hexachord size, and the smaller sizes ride
// along for segment classification.
var vectorSumToCardinality = map[int]int{1: 2, 3: 3, 6: 4, 15: 6}

// VectorToCombinatoriality maps an interval vector to the
// combinatoriality status of its class. The vector's sum determines the
// cardinality; the matching entry of that cardinality supplies the
// status (NonCombinatorial for everything below hexachord size).
//
// Errors: ErrUnknownIntervalVector when the sum maps to no supported
// cardinality or no entry's vector matches.
func VectorToCombinatoriality(vector [6]int) (Combinatoriality, error) {
	sum := 0
	for _, v := range vector {
		sum += v
	}
	cardinality, ok := vectorSumToCardinality[sum]
	if !ok {
		return NonCombinatorial, ErrUnknownIntervalVector
	}
	for _, entry := range classesByVector[vector] {
		if len(entry.Prime) == cardinality {
			return entry.Combinatoriality, nil
		}
	}

	return NonCombinatorial, ErrUnknownIntervalVector
}

// PitchesToCombinatoriality composes IntervalVector with
// VectorToCombinatoriality for a raw pitch collection.
func PitchesToCombinatoriality(pitches []int) (Combinatoriality, error) {
	return VectorToCombinatoriality(IntervalVector(pitches))
}
