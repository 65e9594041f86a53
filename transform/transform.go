package transform

// mod12 reduces any integer to its residue in [0,11].
func mod12(x int) int {
	return ((x % 12) + 12) % 12
}

// TransposeBy returns row shifted up by semitones, each element mod 12.
func TransposeBy(row []int, semitones int) []int {
	out := make([]int, len(row))
	for i, p := range row {
		out[i] = mod12(p + semitones)
	}

	return out
}

// TransposeTo transposes row so that its first element becomes start
// (typically 0, the P0 form). Equivalent to
// TransposeBy(row, start-row[0]).
func TransposeTo(row []int, start int) []int {
	return TransposeBy(row, start-row[0])
}

// Retrograde returns row reversed.
func Retrograde(row []int) []int {
	out := make([]int, len(row))
	for i, p := range row {
		out[len(row)-1-i] = p
	}

	return out
}

// Invert returns the inversion of row around its own first element:
// element i becomes (row[0]-row[i]) mod 12. Callers wanting inversion
// around 0 must transpose to start at 0 first.
func Invert(row []int) []int {
	out := make([]int, len(row))
	for i, p := range row {
		out[i] = mod12(row[0] - p)
	}

	return out
}

// Intervals returns the succession of directed intervals mod 12 between
// adjacent elements: len(row)-1 values, or len(row) when wrap is true,
// in which case the closing interval from the last element back to the
// first is appended.
func Intervals(row []int, wrap bool) []int {
	if len(row) == 0 {
		return nil
	}
	n := len(row) - 1
	if wrap {
		n++
	}
	out := make([]int, 0, n)
	for i := 1; i < len(row); i++ {
		out = append(out, mod12(row[i]-row[i-1]))
	}
	if wrap {
		out = append(out, mod12(row[0]-row[len(row)-1]))
	}

	return out
}

// Rotate cyclically left-rotates row by steps mod len(row), so the
// result starts on the element at that offset. Negative and
// out-of-range step counts are reduced the same way.
func Rotate(row []int, steps int) []int {
	if len(row) == 0 {
		return nil
	}
	s := ((steps % len(row)) + len(row)) % len(row)
	out := make([]int, 0, len(row))
	out = append(out, row[s:]...)
	out = append(out, row[:s]...)

	return out
}
