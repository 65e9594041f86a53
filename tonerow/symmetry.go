package tonerow

import (
	"github.com/MarkGotham/Serial-Analyser/pcset"
	"github.com/MarkGotham/Serial-Analyser/transform"
)

// IsAllInterval reports whether a twelve-tone row traverses all 11
// directed intervals (1-11, mod 12) between neighbouring pitches.
// With 11 adjacency slots and 11 required values, "at least once" and
// "exactly once" coincide. Non-twelve-tone input reports false.
func IsAllInterval(row []int) bool {
	if !Is12Tone(row) {
		return false
	}

	var seen [12]bool
	for _, interval := range transform.Intervals(row, false) {
		seen[interval] = true
	}
	for interval := 1; interval < 12; interval++ {
		if !seen[interval] {
			return false
		}
	}

	return true
}

// IsSelfRetrograde reports whether the retrograde of the row,
// transposed back to the row's own first pitch, reproduces the original
// order, i.e. the retrograde is transposition-equivalent to the prime.
func IsSelfRetrograde(row []int) bool {
	retro := transform.TransposeTo(transform.Retrograde(row), row[0])
	for i := range row {
		if mod12(row[i]) != retro[i] {
			return false
		}
	}

	return true
}

// IsSelfRI reports whether the row's adjacent-interval succession is
// palindromic, which makes the prime transposition-equivalent to its
// retrograde inversion.
func IsSelfRI(row []int) bool {
	intervals := transform.Intervals(row, false)
	for i, j := 0, len(intervals)-1; i < j; i, j = i+1, j-1 {
		if intervals[i] != intervals[j] {
			return false
		}
	}

	return true
}

// IsAllTrichord reports whether the 12 overlapping, wrapped trichords
// of a twelve-tone row are all distinct set classes — such a row covers
// all 12 trichord classes. Only four row classes have this property
// (Marsden 2012). Non-twelve-tone input reports false.
func IsAllTrichord(row []int) bool {
	if !Is12Tone(row) {
		return false
	}

	segments, err := Segments(row, DefaultSegmentOptions())
	if err != nil {
		return false
	}
	seen := make(map[string]bool, len(segments))
	for _, segment := range segments {
		prime, err := pcset.Prime(segment)
		if err != nil {
			return false
		}
		key := primeString(prime)
		if seen[key] {
			return false
		}
		seen[key] = true
	}

	return true
}
