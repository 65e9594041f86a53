// Package rowtext parses the textual row literals found in the serial
// repertoire literature into plain pitch-class slices, the standard
// input shape of the analysis packages.
//
// Supported forms:
//
//	<0-4-1-11-10-3-6-5-9-8-2-7>          bracketed, dash-divided integers
//	G#,F#,G,A,Bb,F,B,C,E,C#,Eb,D         pitch names with accidentals
//	014295B38A76                         undelimited digits, A/B (or T/E)
//	                                     standing in for 10/11
//	1 4 t 0 3 9 8 6 5 2 e 7              space-divided, mixed stand-ins
//
// Errors:
//
//	ErrPitchName - a pitch-name token could not be interpreted.
//	ErrRowFormat - the literal fits none of the supported shapes.
//	ErrRowLength - the literal does not hold exactly 12 pitches.
package rowtext

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors for row-literal parsing.
var (
	// ErrPitchName indicates an unsupported pitch-name token: the base
	// letter must be one of C D E F G A B (case-insensitive) and any
	// suffix must stack a single accidental type.
	ErrPitchName = errors.New("rowtext: invalid pitch name")

	// ErrRowFormat indicates token content fitting none of the supported
	// literal shapes.
	ErrRowFormat = errors.New("rowtext: unrecognised row format")

	// ErrRowLength indicates a literal with other than 12 pitches.
	ErrRowLength = errors.New("rowtext: row must hold exactly 12 pitches")
)

// basePitches maps the unmodified pitch letters to their pitch classes.
var basePitches = map[byte]int{
	'c': 0, 'd': 2, 'e': 4, 'f': 5, 'g': 7, 'a': 9, 'b': 11,
}

// PitchClass converts a pitch name like "Bb" to its pitch-class integer
// (10). The first character must be an unmodified pitch letter (not
// case-sensitive); any following characters must repeat one single
// accidental type: '♭', 'b' or '-' for flat; '♯', '#' or '+' for sharp.
// Stacked accidentals accumulate, so "Cbb" yields 10.
//
// Note 's' is not a supported accidental: "Fs" probably means F sharp,
// but "Es" is more likely E flat (German usage).
func PitchClass(name string) (int, error) {
	lower := strings.ToLower(name)
	if lower == "" {
		return 0, ErrPitchName
	}
	base, ok := basePitches[lower[0]]
	if !ok {
		return 0, ErrPitchName
	}

	modifier := 0
	if len(lower) > 1 {
		accidentals := []rune(lower[1:])
		var step int
		switch accidentals[0] {
		case '♭', 'b', '-':
			step = -1
		case '♯', '#', '+':
			step = +1
		default:
			return 0, ErrPitchName
		}
		for _, r := range accidentals[1:] {
			if r != accidentals[0] {
				return 0, ErrPitchName
			}
		}
		modifier = step * len(accidentals)
	}

	return mod12(base + modifier), nil
}

// dividers lists the token separators tried in order. The order
// matters: ", " must precede both "," and " ", and the dash variants
// come last since a dash could also indicate a flat.
var dividers = []string{", ", ",", " ", "~", "-", "–"}

// ParseRow converts a row literal in any supported shape to a
// twelve-element pitch-class slice. Brackets and newlines are stripped,
// the first applicable divider splits the literal into tokens, and an
// undelimited literal is split per character. Tokens are then read as
// integers, as the A/B (or T/E) stand-ins for 10/11 when exactly two
// tokens are non-integer, or as pitch names when all of them are.
//
// When toZero is true the result is transposed to start on 0 (the P0
// convention); otherwise pitches are only reduced mod 12.
func ParseRow(raw string, toZero bool) ([]int, error) {
	cleaned := raw
	for _, bracket := range []string{"\n", "[", "]", "<", ">", "(", ")"} {
		cleaned = strings.ReplaceAll(cleaned, bracket, "")
	}

	var tokens []string
	for _, divider := range dividers {
		if strings.Contains(cleaned, divider) {
			tokens = strings.Split(cleaned, divider)
			break
		}
	}
	if tokens == nil { // undelimited notation, e.g. 014295B38A76
		tokens = strings.Split(cleaned, "")
	}
	if len(tokens) != 12 {
		return nil, ErrRowLength
	}

	return tokensToRow(tokens, toZero)
}

// Standardize reduces an already-numeric row mod 12 and, when toZero is
// set, transposes it to start on 0.
func Standardize(row []int, toZero bool) []int {
	out := make([]int, len(row))
	offset := 0
	if toZero && len(row) > 0 {
		offset = row[0]
	}
	for i, p := range row {
		out[i] = mod12(p - offset)
	}

	return out
}

func tokensToRow(tokens []string, toZero bool) ([]int, error) {
	row := make([]int, len(tokens))
	var nonInts []int // indices of tokens that are not plain integers
	for i, token := range tokens {
		v, err := strconv.Atoi(token)
		if err != nil {
			nonInts = append(nonInts, i)
			continue
		}
		row[i] = v
	}

	switch len(nonInts) {
	case 0:
		// all plain integers

	case 2:
		// the two stand-ins for 10 and 11
		for _, i := range nonInts {
			switch strings.ToLower(tokens[i]) {
			case "a", "t":
				row[i] = 10
			case "b", "e":
				row[i] = 11
			default:
				return nil, ErrRowFormat
			}
		}

	case len(tokens):
		// all strings: pitch names
		for i, token := range tokens {
			pc, err := PitchClass(token)
			if err != nil {
				return nil, err
			}
			row[i] = pc
		}

	default:
		return nil, ErrRowFormat
	}

	return Standardize(row, toZero), nil
}

func mod12(x int) int {
	return ((x % 12) + 12) % 12
}
