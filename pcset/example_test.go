package pcset_test

import (
	"fmt"

	"github.com/MarkGotham/Serial-Analyser/pcset"
)

// ExamplePrime canonicalizes the Z-related tetrachord case that the
// interval vector alone cannot resolve.
func ExamplePrime() {
	prime, err := pcset.Prime([]int{8, 2, 4, 7})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(prime)
	// Output: [0 1 4 6]
}

// ExampleForteClass labels a simple trichord.
func ExampleForteClass() {
	label, _ := pcset.ForteClass([]int{0, 2, 3})
	fmt.Println(label)
	// Output: 3-2
}

// ExamplePitchesToCombinatoriality classifies the whole-tone hexachord,
// the most combinatorial of them all.
func ExamplePitchesToCombinatoriality() {
	status, _ := pcset.PitchesToCombinatoriality([]int{0, 2, 4, 6, 8, 10})
	fmt.Println(status)
	// Output: A
}
