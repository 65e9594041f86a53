package pcset

import (
	"sort"
	"strconv"
	"strings"
)

// DistinctPCs reduces arbitrary integer pitches to the sorted set of
// distinct pitch classes in [0,11]. Duplicates (after mod-12 reduction)
// collapse to one.
func DistinctPCs(pitches []int) []int {
	seen := [12]bool{}
	out := make([]int, 0, len(pitches))
	for _, p := range pitches {
		pc := ((p % 12) + 12) % 12
		if !seen[pc] {
			seen[pc] = true
			out = append(out, pc)
		}
	}
	sort.Ints(out)

	return out
}

// IntervalVector tallies, for every unordered pair of distinct pitch
// classes in pitches, the interval class min(d, 12-d) of the pair into
// slot intervalClass-1. The entries of the result sum to C(n,2) for a
// set of cardinality n.
func IntervalVector(pitches []int) [6]int {
	pcs := DistinctPCs(pitches)

	var vector [6]int
	for i := 0; i < len(pcs); i++ {
		for j := i + 1; j < len(pcs); j++ {
			ic := pcs[j] - pcs[i]
			if ic < 0 {
				ic = -ic
			}
			if ic > 6 {
				ic = 12 - ic
			}
			vector[ic-1]++
		}
	}

	return vector
}

// transpositionEquivalent reports whether some transposition of set1,
// sorted, equals set2, sorted. Both inputs must hold distinct pitch
// classes of equal cardinality. Exhaustive 12-way check: O(12·n log n).
func transpositionEquivalent(set1, set2 []int) bool {
	target := append([]int(nil), set2...)
	sort.Ints(target)

	candidate := make([]int, len(set1))
	for t := 0; t < 12; t++ {
		for i, p := range set1 {
			candidate[i] = (p + t) % 12
		}
		sort.Ints(candidate)
		if equalInts(candidate, target) {
			return true
		}
	}

	return false
}

// invertSet inverts a pitch-class set around its first element.
func invertSet(pcs []int) []int {
	if len(pcs) == 0 {
		return nil
	}
	out := make([]int, len(pcs))
	for i, p := range pcs {
		out[i] = ((pcs[0]-p)%12 + 12) % 12
	}

	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// primeKey renders a prime form as a compact map key like "0.1.4.6".
func primeKey(prime []int) string {
	var sb strings.Builder
	for i, p := range prime {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.Itoa(p))
	}

	return sb.String()
}
