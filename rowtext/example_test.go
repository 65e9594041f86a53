package rowtext_test

import (
	"fmt"

	"github.com/MarkGotham/Serial-Analyser/rowtext"
)

// Pitch-name rows parse directly; toZero anchors them on P0.
func ExampleParseRow() {
	row, err := rowtext.ParseRow("G#,F#,G,A,Bb,F,B,C,E,C#,Eb,D", true)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(row)
	// Output:
	// [0 10 11 1 2 9 3 4 8 5 7 6]
}

// Undelimited digit strings use A/B (or T/E) for 10 and 11.
func ExampleParseRow_undelimited() {
	row, err := rowtext.ParseRow("014295B38A76", false)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(row)
	// Output:
	// [0 1 4 2 9 5 11 3 8 10 7 6]
}

// Accidentals stack, so a double flat lowers twice.
func ExamplePitchClass() {
	for _, name := range []string{"C", "F♯", "Bb", "Cbb"} {
		pc, err := rowtext.PitchClass(name)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s = %d\n", name, pc)
	}
	// Output:
	// C = 0
	// F♯ = 6
	// Bb = 10
	// Cbb = 10
}
