package tonerow

import (
	"github.com/MarkGotham/Serial-Analyser/pcset"
)

// Segments slices a row (or any pitch-class sequence) into sub-segments
// of opts.Length pitches.
//
// Overlapping mode slides a one-pitch-at-a-time window: with Wrap the
// row is extended by its first Length-1 pitches so that every pitch
// starts a segment (len(row) segments in total); without Wrap the
// window stops at the end of the row proper (len(row)-Length+1
// segments). Discrete mode partitions the row into consecutive
// non-overlapping cells and requires Length to divide len(row) evenly.
//
// Every segment is a fresh slice: mutating one touches neither the
// input row nor any other segment.
//
// Errors: ErrSegmentLength when Length is not shorter than the row, or,
// in discrete mode, when it does not divide the row length.
func Segments(row []int, opts SegmentOptions) ([][]int, error) {
	n := len(row)
	if opts.Length <= 0 || opts.Length >= n {
		return nil, ErrSegmentLength
	}

	if opts.Overlapping {
		extended := row
		if opts.Wrap {
			extended = append(append([]int(nil), row...), row[:opts.Length-1]...)
		}
		segments := make([][]int, 0, len(extended)-opts.Length+1)
		for i := 0; i+opts.Length <= len(extended); i++ {
			segments = append(segments, append([]int(nil), extended[i:i+opts.Length]...))
		}

		return segments, nil
	}

	// Discrete (non-overlapping) mode.
	if n%opts.Length != 0 {
		return nil, ErrSegmentLength
	}
	segments := make([][]int, 0, n/opts.Length)
	for i := 0; i < n; i += opts.Length {
		segments = append(segments, append([]int(nil), row[i:i+opts.Length]...))
	}

	return segments, nil
}

// ContainsCell canonicalizes each segment to its prime form and returns
// the prime form(s) occurring more than once, in first-appearance
// order. An empty result means no repeated cell.
//
// With exactlyOne (the usual derivation test) the result is non-empty
// only when every segment reduces to one single prime form, i.e. the
// row is fully derived from that cell at this granularity; partial
// repetition then yields an empty result.
//
// The returned prime forms are caller-owned copies.
//
// Errors: those of pcset.Prime for segments outside cardinality 2-10.
func ContainsCell(segments [][]int, exactlyOne bool) ([][]int, error) {
	counts := make(map[string]int, len(segments))
	primes := make(map[string][]int, len(segments))
	order := make([]string, 0, len(segments))

	for _, segment := range segments {
		prime, err := pcset.Prime(segment)
		if err != nil {
			return nil, err
		}
		key := primeString(prime)
		if counts[key] == 0 {
			order = append(order, key)
			primes[key] = prime
		}
		counts[key]++
	}

	repeated := make([][]int, 0, 1)
	for _, key := range order {
		if counts[key] > 1 {
			repeated = append(repeated, primes[key])
		}
	}

	if exactlyOne && len(counts) != 1 {
		return nil, nil
	}

	return repeated, nil
}

// IsSelfRotational reports whether a fully-derived segment list has the
// self-rotational interval pattern: consecutive segments related by one
// fixed constant offset (segment[i] minus next-segment[i], mod 12) at
// every position. A rare property, and a sub-property of derived rows.
//
// Errors: ErrNotDerived when the segments are not fully derived from a
// single cell (as per ContainsCell with exactlyOne); canonicalization
// errors pass through.
func IsSelfRotational(segments [][]int) (bool, error) {
	cells, err := ContainsCell(segments, true)
	if err != nil {
		return false, err
	}
	if len(cells) == 0 {
		return false, ErrNotDerived
	}

	step := mod12(segments[0][0] - segments[1][0])
	for i := 0; i+1 < len(segments); i++ {
		for j := range segments[i] {
			if mod12(segments[i][j]-segments[i+1][j]) != step {
				return false, nil
			}
		}
	}

	return true, nil
}

// Derived combines Segments, ContainsCell and IsSelfRotational for the
// discrete segmentation of a row at one length: it reports whether the
// row is built from repetitions of a single cell, and if so returns the
// cell's prime form along with the self-rotational step when that
// sub-property also holds. A nil Derivation means not derived.
//
// Errors: ErrSegmentLength for incompatible lengths; canonicalization
// errors pass through.
func Derived(row []int, segmentLength int) (*Derivation, error) {
	segments, err := Segments(row, SegmentOptions{Length: segmentLength})
	if err != nil {
		return nil, err
	}
	cells, err := ContainsCell(segments, true)
	if err != nil {
		return nil, err
	}
	if len(cells) == 0 {
		return nil, nil
	}

	d := &Derivation{Cell: cells[0]}
	if rotational, err := IsSelfRotational(segments); err == nil && rotational {
		d.SelfRotational = true
		d.Step = mod12(segments[0][0] - segments[1][0])
	}

	return d, nil
}

func mod12(x int) int {
	return ((x % 12) + 12) % 12
}

func primeString(prime []int) string {
	out := make([]byte, 0, 2*len(prime)+2)
	out = append(out, '(')
	for i, p := range prime {
		if i > 0 {
			out = append(out, ',')
		}
		if p >= 10 {
			out = append(out, byte('0'+p/10))
		}
		out = append(out, byte('0'+p%10))
	}
	out = append(out, ')')

	return string(out)
}
