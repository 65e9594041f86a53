package transform

// Procedures after Krenek, "Extents and Limits of Serial Techniques"
// (1960, pp. 212-213). Both assume a 12-element row.

// RotateHexachords splits a 12-element row into its two hexachords and
// rotates each independently, one step per iteration. The result holds
// 7 rows: the original, the five intermediate rotations, and the
// original again closing the cycle.
//
// When transposeIterations is true, each rotated hexachord is
// re-transposed to start on its original first pitch, as Krenek
// describes. Note this often turns a 12-tone row into one with repeated
// pitch classes; that is the intended behaviour, not an error.
func RotateHexachords(row []int, transposeIterations bool) [][]int {
	rows := make([][]int, 0, 7)
	rows = append(rows, clone(row))

	for i := 1; i < 6; i++ {
		first := Rotate(row[0:6], i)
		second := Rotate(row[6:12], i)

		if transposeIterations {
			first = TransposeTo(first, row[0])
			second = TransposeTo(second, row[6])
		}

		rows = append(rows, append(first, second...))
	}

	rows = append(rows, clone(row)) // completes the cycle

	return rows
}

// PairSwapKrenek iteratively swaps pairs of adjacent pitches in a
// two-phase process: first the pairs starting at position 1, then the
// pairs starting at position 0. Six double-steps produce 13 rows
// (the original first), of which the last is exactly the retrograde of
// the first; applying the whole cycle twice returns the original row.
func PairSwapKrenek(row []int) [][]int {
	rows := make([][]int, 0, 13)
	rows = append(rows, clone(row))

	cur := row
	for pair := 0; pair < 6; pair++ {
		cur = clone(cur)
		for i := 1; i < 11; i += 2 {
			cur[i], cur[i+1] = cur[i+1], cur[i]
		}
		rows = append(rows, cur)

		cur = clone(cur)
		for i := 0; i < 12; i += 2 {
			cur[i], cur[i+1] = cur[i+1], cur[i]
		}
		rows = append(rows, cur)
	}

	return rows
}

func clone(row []int) []int {
	return append([]int(nil), row...)
}
