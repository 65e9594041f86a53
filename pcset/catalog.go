package pcset

// catalog is the full Forte set-class table for cardinalities 2-10:
// label, prime form, interval vector, count of distinct transformations
// (non-invariant transpositions and/or inversions), and, for hexachords
// only, the combinatoriality status.
//
// Source: Forte's classification; see Robert Morris's set-class table,
// http://ecmc.rochester.edu/rdm/pdflib/set-class.table.pdf
var catalog = [...][]SetClass{
	0: nil, // unsupported
	1: nil, // unsupported
	2: {
		{Label: "2-1", Prime: []int{0, 1}, Vector: [6]int{1, 0, 0, 0, 0, 0}, Transformations: 12},
		{Label: "2-2", Prime: []int{0, 2}, Vector: [6]int{0, 1, 0, 0, 0, 0}, Transformations: 12},
		{Label: "2-3", Prime: []int{0, 3}, Vector: [6]int{0, 0, 1, 0, 0, 0}, Transformations: 12},
		{Label: "2-4", Prime: []int{0, 4}, Vector: [6]int{0, 0, 0, 1, 0, 0}, Transformations: 12},
		{Label: "2-5", Prime: []int{0, 5}, Vector: [6]int{0, 0, 0, 0, 1, 0}, Transformations: 12},
		{Label: "2-6", Prime: []int{0, 6}, Vector: [6]int{0, 0, 0, 0, 0, 1}, Transformations: 6},
	},
	3: {
		{Label: "3-1", Prime: []int{0, 1, 2}, Vector: [6]int{2, 1, 0, 0, 0, 0}, Transformations: 12},
		{Label: "3-2", Prime: []int{0, 1, 3}, Vector: [6]int{1, 1, 1, 0, 0, 0}, Transformations: 24},
		{Label: "3-3", Prime: []int{0, 1, 4}, Vector: [6]int{1, 0, 1, 1, 0, 0}, Transformations: 24},
		{Label: "3-4", Prime: []int{0, 1, 5}, Vector: [6]int{1, 0, 0, 1, 1, 0}, Transformations: 24},
		{Label: "3-5", Prime: []int{0, 1, 6}, Vector: [6]int{1, 0, 0, 0, 1, 1}, Transformations: 24},
		{Label: "3-6", Prime: []int{0, 2, 4}, Vector: [6]int{0, 2, 0, 1, 0, 0}, Transformations: 12},
		{Label: "3-7", Prime: []int{0, 2, 5}, Vector: [6]int{0, 1, 1, 0, 1, 0}, Transformations: 24},
		{Label: "3-8", Prime: []int{0, 2, 6}, Vector: [6]int{0, 1, 0, 1, 0, 1}, Transformations: 24},
		{Label: "3-9", Prime: []int{0, 2, 7}, Vector: [6]int{0, 1, 0, 0, 2, 0}, Transformations: 12},
		{Label: "3-10", Prime: []int{0, 3, 6}, Vector: [6]int{0, 0, 2, 0, 0, 1}, Transformations: 12},
		{Label: "3-11", Prime: []int{0, 3, 7}, Vector: [6]int{0, 0, 1, 1, 1, 0}, Transformations: 24},
		{Label: "3-12", Prime: []int{0, 4, 8}, Vector: [6]int{0, 0, 0, 3, 0, 0}, Transformations: 4},
	},
	4: {
		{Label: "4-1", Prime: []int{0, 1, 2, 3}, Vector: [6]int{3, 2, 1, 0, 0, 0}, Transformations: 12},
		{Label: "4-2", Prime: []int{0, 1, 2, 4}, Vector: [6]int{2, 2, 1, 1, 0, 0}, Transformations: 24},
		{Label: "4-3", Prime: []int{0, 1, 3, 4}, Vector: [6]int{2, 1, 2, 1, 0, 0}, Transformations: 12},
		{Label: "4-4", Prime: []int{0, 1, 2, 5}, Vector: [6]int{2, 1, 1, 1, 1, 0}, Transformations: 24},
		{Label: "4-5", Prime: []int{0, 1, 2, 6}, Vector: [6]int{2, 1, 0, 1, 1, 1}, Transformations: 24},
		{Label: "4-6", Prime: []int{0, 1, 2, 7}, Vector: [6]int{2, 1, 0, 0, 2, 1}, Transformations: 12},
		{Label: "4-7", Prime: []int{0, 1, 4, 5}, Vector: [6]int{2, 0, 1, 2, 1, 0}, Transformations: 12},
		{Label: "4-8", Prime: []int{0, 1, 5, 6}, Vector: [6]int{2, 0, 0, 1, 2, 1}, Transformations: 12},
		{Label: "4-9", Prime: []int{0, 1, 6, 7}, Vector: [6]int{2, 0, 0, 0, 2, 2}, Transformations: 6},
		{Label: "4-10", Prime: []int{0, 2, 3, 5}, Vector: [6]int{1, 2, 2, 0, 1, 0}, Transformations: 12},
		{Label: "4-11", Prime: []int{0, 1, 3, 5}, Vector: [6]int{1, 2, 1, 1, 1, 0}, Transformations: 24},
		{Label: "4-12", Prime: []int{0, 2, 3, 6}, Vector: [6]int{1, 1, 2, 1, 0, 1}, Transformations: 24},
		{Label: "4-13", Prime: []int{0, 1, 3, 6}, Vector: [6]int{1, 1, 2, 0, 1, 1}, Transformations: 24},
		{Label: "4-14", Prime: []int{0, 2, 3, 7}, Vector: [6]int{1, 1, 1, 1, 2, 0}, Transformations: 24},
		{Label: "4-Z15", Prime: []int{0, 1, 4, 6}, Vector: [6]int{1, 1, 1, 1, 1, 1}, Transformations: 24},
		{Label: "4-16", Prime: []int{0, 1, 5, 7}, Vector: [6]int{1, 1, 0, 1, 2, 1}, Transformations: 24},
		{Label: "4-17", Prime: []int{0, 3, 4, 7}, Vector: [6]int{1, 0, 2, 2, 1, 0}, Transformations: 12},
		{Label: "4-18", Prime: []int{0, 1, 4, 7}, Vector: [6]int{1, 0, 2, 1, 1, 1}, Transformations: 24},
		{Label: "4-19", Prime: []int{0, 1, 4, 8}, Vector: [6]int{1, 0, 1, 3, 1, 0}, Transformations: 24},
		{Label: "4-20", Prime: []int{0, 1, 5, 8}, Vector: [6]int{1, 0, 1, 2, 2, 0}, Transformations: 12},
		{Label: "4-21", Prime: []int{0, 2, 4, 6}, Vector: [6]int{0, 3, 0, 2, 0, 1}, Transformations: 12},
		{Label: "4-22", Prime: []int{0, 2, 4, 7}, Vector: [6]int{0, 2, 1, 1, 2, 0}, Transformations: 24},
		{Label: "4-23", Prime: []int{0, 2, 5, 7}, Vector: [6]int{0, 2, 1, 0, 3, 0}, Transformations: 12},
		{Label: "4-24", Prime: []int{0, 2, 4, 8}, Vector: [6]int{0, 2, 0, 3, 0, 1}, Transformations: 12},
		{Label: "4-25", Prime: []int{0, 2, 6, 8}, Vector: [6]int{0, 2, 0, 2, 0, 2}, Transformations: 6},
		{Label: "4-26", Prime: []int{0, 3, 5, 8}, Vector: [6]int{0, 1, 2, 1, 2, 0}, Transformations: 12},
		{Label: "4-27", Prime: []int{0, 2, 5, 8}, Vector: [6]int{0, 1, 2, 1, 1, 1}, Transformations: 24},
		{Label: "4-28", Prime: []int{0, 3, 6, 9}, Vector: [6]int{0, 0, 4, 0, 0, 2}, Transformations: 3},
		{Label: "4-Z29", Prime: []int{0, 1, 3, 7}, Vector: [6]int{1, 1, 1, 1, 1, 1}, Transformations: 24},
	},
	5: {
		{Label: "5-1", Prime: []int{0, 1, 2, 3, 4}, Vector: [6]int{4, 3, 2, 1, 0, 0}, Transformations: 12},
		{Label: "5-2", Prime: []int{0, 1, 2, 3, 5}, Vector: [6]int{3, 3, 2, 1, 1, 0}, Transformations: 24},
		{Label: "5-3", Prime: []int{0, 1, 2, 4, 5}, Vector: [6]int{3, 2, 2, 2, 1, 0}, Transformations: 24},
		{Label: "5-4", Prime: []int{0, 1, 2, 3, 6}, Vector: [6]int{3, 2, 2, 1, 1, 1}, Transformations: 24},
		{Label: "5-5", Prime: []int{0, 1, 2, 3, 7}, Vector: [6]int{3, 2, 1, 1, 2, 1}, Transformations: 24},
		{Label: "5-6", Prime: []int{0, 1, 2, 5, 6}, Vector: [6]int{3, 1, 1, 2, 2, 1}, Transformations: 24},
		{Label: "5-7", Prime: []int{0, 1, 2, 6, 7}, Vector: [6]int{3, 1, 0, 1, 3, 2}, Transformations: 24},
		{Label: "5-8", Prime: []int{0, 2, 3, 4, 6}, Vector: [6]int{2, 3, 2, 2, 0, 1}, Transformations: 12},
		{Label: "5-9", Prime: []int{0, 1, 2, 4, 6}, Vector: [6]int{2, 3, 1, 2, 1, 1}, Transformations: 24},
		{Label: "5-10", Prime: []int{0, 1, 3, 4, 6}, Vector: [6]int{2, 2, 3, 1, 1, 1}, Transformations: 24},
		{Label: "5-11", Prime: []int{0, 2, 3, 4, 7}, Vector: [6]int{2, 2, 2, 2, 2, 0}, Transformations: 24},
		{Label: "5-12", Prime: []int{0, 1, 3, 5, 6}, Vector: [6]int{2, 2, 2, 1, 2, 1}, Transformations: 12},
		{Label: "5-13", Prime: []int{0, 1, 2, 4, 8}, Vector: [6]int{2, 2, 1, 3, 1, 1}, Transformations: 24},
		{Label: "5-14", Prime: []int{0, 1, 2, 5, 7}, Vector: [6]int{2, 2, 1, 1, 3, 1}, Transformations: 24},
		{Label: "5-15", Prime: []int{0, 1, 2, 6, 8}, Vector: [6]int{2, 2, 0, 2, 2, 2}, Transformations: 12},
		{Label: "5-16", Prime: []int{0, 1, 3, 4, 7}, Vector: [6]int{2, 1, 3, 2, 1, 1}, Transformations: 24},
		{Label: "5-17", Prime: []int{0, 1, 3, 4, 8}, Vector: [6]int{2, 1, 2, 3, 2, 0}, Transformations: 12},
		{Label: "5-18", Prime: []int{0, 1, 4, 5, 7}, Vector: [6]int{2, 1, 2, 2, 2, 1}, Transformations: 24},
		{Label: "5-19", Prime: []int{0, 1, 3, 6, 7}, Vector: [6]int{2, 1, 2, 1, 2, 2}, Transformations: 24},
		{Label: "5-20", Prime: []int{0, 1, 3, 7, 8}, Vector: [6]int{2, 1, 1, 2, 3, 1}, Transformations: 24},
		{Label: "5-21", Prime: []int{0, 1, 4, 5, 8}, Vector: [6]int{2, 0, 2, 4, 2, 0}, Transformations: 24},
		{Label: "5-22", Prime: []int{0, 1, 4, 7, 8}, Vector: [6]int{2, 0, 2, 3, 2, 1}, Transformations: 12},
		{Label: "5-23", Prime: []int{0, 2, 3, 5, 7}, Vector: [6]int{1, 3, 2, 1, 3, 0}, Transformations: 24},
		{Label: "5-24", Prime: []int{0, 1, 3, 5, 7}, Vector: [6]int{1, 3, 1, 2, 2, 1}, Transformations: 24},
		{Label: "5-25", Prime: []int{0, 2, 3, 5, 8}, Vector: [6]int{1, 2, 3, 1, 2, 1}, Transformations: 24},
		{Label: "5-26", Prime: []int{0, 2, 4, 5, 8}, Vector: [6]int{1, 2, 2, 3, 1, 1}, Transformations: 24},
		{Label: "5-27", Prime: []int{0, 1, 3, 5, 8}, Vector: [6]int{1, 2, 2, 2, 3, 0}, Transformations: 24},
		{Label: "5-28", Prime: []int{0, 2, 3, 6, 8}, Vector: [6]int{1, 2, 2, 2, 1, 2}, Transformations: 24},
		{Label: "5-29", Prime: []int{0, 1, 3, 6, 8}, Vector: [6]int{1, 2, 2, 1, 3, 1}, Transformations: 24},
		{Label: "5-30", Prime: []int{0, 1, 4, 6, 8}, Vector: [6]int{1, 2, 1, 3, 2, 1}, Transformations: 24},
		{Label: "5-31", Prime: []int{0, 1, 3, 6, 9}, Vector: [6]int{1, 1, 4, 1, 1, 2}, Transformations: 24},
		{Label: "5-32", Prime: []int{0, 1, 4, 6, 9}, Vector: [6]int{1, 1, 3, 2, 2, 1}, Transformations: 24},
		{Label: "5-33", Prime: []int{0, 2, 4, 6, 8}, Vector: [6]int{0, 4, 0, 4, 0, 2}, Transformations: 12},
		{Label: "5-34", Prime: []int{0, 2, 4, 6, 9}, Vector: [6]int{0, 3, 2, 2, 2, 1}, Transformations: 12},
		{Label: "5-35", Prime: []int{0, 2, 4, 7, 9}, Vector: [6]int{0, 3, 2, 1, 4, 0}, Transformations: 12},
		{Label: "5-36", Prime: []int{0, 1, 2, 4, 7}, Vector: [6]int{2, 2, 2, 1, 2, 1}, Transformations: 24},
		{Label: "5-37", Prime: []int{0, 3, 4, 5, 8}, Vector: [6]int{2, 1, 2, 3, 2, 0}, Transformations: 12},
		{Label: "5-38", Prime: []int{0, 1, 2, 5, 8}, Vector: [6]int{2, 1, 2, 2, 2, 1}, Transformations: 24},
	},
	6: {
		{Label: "6-1", Prime: []int{0, 1, 2, 3, 4, 5}, Vector: [6]int{5, 4, 3, 2, 1, 0}, Transformations: 12, Combinatoriality: AllCombinatorial},
		{Label: "6-2", Prime: []int{0, 1, 2, 3, 4, 6}, Vector: [6]int{4, 4, 3, 2, 1, 1}, Transformations: 24, Combinatoriality: ICombinatorial},
		{Label: "6-Z3", Prime: []int{0, 1, 2, 3, 5, 6}, Vector: [6]int{4, 3, 3, 2, 2, 1}, Transformations: 24},
		{Label: "6-Z4", Prime: []int{0, 1, 2, 4, 5, 6}, Vector: [6]int{4, 3, 2, 3, 2, 1}, Transformations: 12, Combinatoriality: RICombinatorial},
		{Label: "6-5", Prime: []int{0, 1, 2, 3, 6, 7}, Vector: [6]int{4, 2, 2, 2, 3, 2}, Transformations: 24, Combinatoriality: ICombinatorial},
		{Label: "6-Z6", Prime: []int{0, 1, 2, 5, 6, 7}, Vector: [6]int{4, 2, 1, 2, 4, 2}, Transformations: 12, Combinatoriality: RICombinatorial},
		{Label: "6-7", Prime: []int{0, 1, 2, 6, 7, 8}, Vector: [6]int{4, 2, 0, 2, 4, 3}, Transformations: 6, Combinatoriality: AllCombinatorial},
		{Label: "6-8", Prime: []int{0, 2, 3, 4, 5, 7}, Vector: [6]int{3, 4, 3, 2, 3, 0}, Transformations: 12, Combinatoriality: AllCombinatorial},
		{Label: "6-9", Prime: []int{0, 1, 2, 3, 5, 7}, Vector: [6]int{3, 4, 2, 2, 3, 1}, Transformations: 24, Combinatoriality: ICombinatorial},
		{Label: "6-Z10", Prime: []int{0, 1, 3, 4, 5, 7}, Vector: [6]int{3, 3, 3, 3, 2, 1}, Transformations: 24},
		{Label: "6-Z11", Prime: []int{0, 1, 2, 4, 5, 7}, Vector: [6]int{3, 3, 3, 2, 3, 1}, Transformations: 24},
		{Label: "6-Z12", Prime: []int{0, 1, 2, 4, 6, 7}, Vector: [6]int{3, 3, 2, 2, 3, 2}, Transformations: 24},
		{Label: "6-Z13", Prime: []int{0, 1, 3, 4, 6, 7}, Vector: [6]int{3, 2, 4, 2, 2, 2}, Transformations: 12, Combinatoriality: RICombinatorial},
		{Label: "6-14", Prime: []int{0, 1, 3, 4, 5, 8}, Vector: [6]int{3, 2, 3, 4, 3, 0}, Transformations: 24, Combinatoriality: TCombinatorial},
		{Label: "6-15", Prime: []int{0, 1, 2, 4, 5, 8}, Vector: [6]int{3, 2, 3, 4, 2, 1}, Transformations: 24, Combinatoriality: ICombinatorial},
		{Label: "6-16", Prime: []int{0, 1, 4, 5, 6, 8}, Vector: [6]int{3, 2, 2, 4, 3, 1}, Transformations: 24, Combinatoriality: ICombinatorial},
		{Label: "6-Z17", Prime: []int{0, 1, 2, 4, 7, 8}, Vector: [6]int{3, 2, 2, 3, 3, 2}, Transformations: 24},
		{Label: "6-18", Prime: []int{0, 1, 2, 5, 7, 8}, Vector: [6]int{3, 2, 2, 2, 4, 2}, Transformations: 24, Combinatoriality: ICombinatorial},
		{Label: "6-Z19", Prime: []int{0, 1, 3, 4, 7, 8}, Vector: [6]int{3, 1, 3, 4, 3, 1}, Transformations: 24},
		{Label: "6-20", Prime: []int{0, 1, 4, 5, 8, 9}, Vector: [6]int{3, 0, 3, 6, 3, 0}, Transformations: 4, Combinatoriality: AllCombinatorial},
		{Label: "6-21", Prime: []int{0, 2, 3, 4, 6, 8}, Vector: [6]int{2, 4, 2, 4, 1, 2}, Transformations: 24, Combinatoriality: ICombinatorial},
		{Label: "6-22", Prime: []int{0, 1, 2, 4, 6, 8}, Vector: [6]int{2, 4, 1, 4, 2, 2}, Transformations: 24, Combinatoriality: ICombinatorial},
		{Label: "6-Z23", Prime: []int{0, 2, 3, 5, 6, 8}, Vector: [6]int{2, 3, 4, 2, 2, 2}, Transformations: 12, Combinatoriality: RICombinatorial},
		{Label: "6-Z24", Prime: []int{0, 1, 3, 4, 6, 8}, Vector: [6]int{2, 3, 3, 3, 3, 1}, Transformations: 24},
		{Label: "6-Z25", Prime: []int{0, 1, 3, 5, 6, 8}, Vector: [6]int{2, 3, 3, 2, 4, 1}, Transformations: 24},
		{Label: "6-Z26", Prime: []int{0, 1, 3, 5, 7, 8}, Vector: [6]int{2, 3, 2, 3, 4, 1}, Transformations: 12, Combinatoriality: RICombinatorial},
		{Label: "6-27", Prime: []int{0, 1, 3, 4, 6, 9}, Vector: [6]int{2, 2, 5, 2, 2, 2}, Transformations: 24, Combinatoriality: ICombinatorial},
		{Label: "6-Z28", Prime: []int{0, 1, 3, 5, 6, 9}, Vector: [6]int{2, 2, 4, 3, 2, 2}, Transformations: 12, Combinatoriality: RICombinatorial},
		{Label: "6-Z29", Prime: []int{0, 1, 3, 6, 8, 9}, Vector: [6]int{2, 2, 4, 2, 3, 2}, Transformations: 12, Combinatoriality: RICombinatorial},
		{Label: "6-30", Prime: []int{0, 1, 3, 6, 7, 9}, Vector: [6]int{2, 2, 4, 2, 2, 3}, Transformations: 12, Combinatoriality: ICombinatorial},
		{Label: "6-31", Prime: []int{0, 1, 3, 5, 8, 9}, Vector: [6]int{2, 2, 3, 4, 3, 1}, Transformations: 24, Combinatoriality: ICombinatorial},
		{Label: "6-32", Prime: []int{0, 2, 4, 5, 7, 9}, Vector: [6]int{1, 4, 3, 2, 5, 0}, Transformations: 12, Combinatoriality: AllCombinatorial},
		{Label: "6-33", Prime: []int{0, 2, 3, 5, 7, 9}, Vector: [6]int{1, 4, 3, 2, 4, 1}, Transformations: 24, Combinatoriality: ICombinatorial},
		{Label: "6-34", Prime: []int{0, 1, 3, 5, 7, 9}, Vector: [6]int{1, 4, 2, 4, 2, 2}, Transformations: 24, Combinatoriality: ICombinatorial},
		{Label: "6-35", Prime: []int{0, 2, 4, 6, 8, 10}, Vector: [6]int{0, 6, 0, 6, 0, 3}, Transformations: 2, Combinatoriality: AllCombinatorial},
		{Label: "6-Z36", Prime: []int{0, 1, 2, 3, 4, 7}, Vector: [6]int{4, 3, 3, 2, 2, 1}, Transformations: 24},
		{Label: "6-Z37", Prime: []int{0, 1, 2, 3, 4, 8}, Vector: [6]int{4, 3, 2, 3, 2, 1}, Transformations: 12, Combinatoriality: RICombinatorial},
		{Label: "6-Z38", Prime: []int{0, 1, 2, 3, 7, 8}, Vector: [6]int{4, 2, 1, 2, 4, 2}, Transformations: 12, Combinatoriality: RICombinatorial},
		{Label: "6-Z39", Prime: []int{0, 2, 3, 4, 5, 8}, Vector: [6]int{3, 3, 3, 3, 2, 1}, Transformations: 24},
		{Label: "6-Z40", Prime: []int{0, 1, 2, 3, 5, 8}, Vector: [6]int{3, 3, 3, 2, 3, 1}, Transformations: 24},
		{Label: "6-Z41", Prime: []int{0, 1, 2, 3, 6, 8}, Vector: [6]int{3, 3, 2, 2, 3, 2}, Transformations: 24},
		{Label: "6-Z42", Prime: []int{0, 1, 2, 3, 6, 9}, Vector: [6]int{3, 2, 4, 2, 2, 2}, Transformations: 12, Combinatoriality: RICombinatorial},
		{Label: "6-Z43", Prime: []int{0, 1, 2, 5, 6, 8}, Vector: [6]int{3, 2, 2, 3, 3, 2}, Transformations: 24},
		{Label: "6-Z44", Prime: []int{0, 1, 2, 5, 6, 9}, Vector: [6]int{3, 1, 3, 4, 3, 1}, Transformations: 24},
		{Label: "6-Z45", Prime: []int{0, 2, 3, 4, 6, 9}, Vector: [6]int{2, 3, 4, 2, 2, 2}, Transformations: 12, Combinatoriality: RICombinatorial},
		{Label: "6-Z46", Prime: []int{0, 1, 2, 4, 6, 9}, Vector: [6]int{2, 3, 3, 3, 3, 1}, Transformations: 24},
		{Label: "6-Z47", Prime: []int{0, 1, 2, 4, 7, 9}, Vector: [6]int{2, 3, 3, 2, 4, 1}, Transformations: 24},
		{Label: "6-Z48", Prime: []int{0, 1, 2, 5, 7, 9}, Vector: [6]int{2, 3, 2, 3, 4, 1}, Transformations: 12, Combinatoriality: RICombinatorial},
		{Label: "6-Z49", Prime: []int{0, 1, 3, 4, 7, 9}, Vector: [6]int{2, 2, 4, 3, 2, 2}, Transformations: 12, Combinatoriality: RICombinatorial},
		{Label: "6-Z50", Prime: []int{0, 1, 4, 6, 7, 9}, Vector: [6]int{2, 2, 4, 2, 3, 2}, Transformations: 12, Combinatoriality: RICombinatorial},
	},
	7: {
		{Label: "7-1", Prime: []int{0, 1, 2, 3, 4, 5, 6}, Vector: [6]int{6, 5, 4, 3, 2, 1}, Transformations: 12},
		{Label: "7-2", Prime: []int{0, 1, 2, 3, 4, 5, 7}, Vector: [6]int{5, 5, 4, 3, 3, 1}, Transformations: 24},
		{Label: "7-3", Prime: []int{0, 1, 2, 3, 4, 5, 8}, Vector: [6]int{5, 4, 4, 4, 3, 1}, Transformations: 24},
		{Label: "7-4", Prime: []int{0, 1, 2, 3, 4, 6, 7}, Vector: [6]int{5, 4, 4, 3, 3, 2}, Transformations: 24},
		{Label: "7-5", Prime: []int{0, 1, 2, 3, 5, 6, 7}, Vector: [6]int{5, 4, 3, 3, 4, 2}, Transformations: 24},
		{Label: "7-6", Prime: []int{0, 1, 2, 3, 4, 7, 8}, Vector: [6]int{5, 3, 3, 4, 4, 2}, Transformations: 24},
		{Label: "7-7", Prime: []int{0, 1, 2, 3, 6, 7, 8}, Vector: [6]int{5, 3, 2, 3, 5, 3}, Transformations: 24},
		{Label: "7-8", Prime: []int{0, 2, 3, 4, 5, 6, 8}, Vector: [6]int{4, 5, 4, 4, 2, 2}, Transformations: 12},
		{Label: "7-9", Prime: []int{0, 1, 2, 3, 4, 6, 8}, Vector: [6]int{4, 5, 3, 4, 3, 2}, Transformations: 24},
		{Label: "7-10", Prime: []int{0, 1, 2, 3, 4, 6, 9}, Vector: [6]int{4, 4, 5, 3, 3, 2}, Transformations: 24},
		{Label: "7-11", Prime: []int{0, 1, 3, 4, 5, 6, 8}, Vector: [6]int{4, 4, 4, 4, 4, 1}, Transformations: 24},
		{Label: "7-Z12", Prime: []int{0, 1, 2, 3, 4, 7, 9}, Vector: [6]int{4, 4, 4, 3, 4, 2}, Transformations: 12},
		{Label: "7-13", Prime: []int{0, 1, 2, 4, 5, 6, 8}, Vector: [6]int{4, 4, 3, 5, 3, 2}, Transformations: 24},
		{Label: "7-14", Prime: []int{0, 1, 2, 3, 5, 7, 8}, Vector: [6]int{4, 4, 3, 3, 5, 2}, Transformations: 24},
		{Label: "7-15", Prime: []int{0, 1, 2, 4, 6, 7, 8}, Vector: [6]int{4, 4, 2, 4, 4, 3}, Transformations: 12},
		{Label: "7-16", Prime: []int{0, 1, 2, 3, 5, 6, 9}, Vector: [6]int{4, 3, 5, 4, 3, 2}, Transformations: 24},
		{Label: "7-Z17", Prime: []int{0, 1, 2, 4, 5, 6, 9}, Vector: [6]int{4, 3, 4, 5, 4, 1}, Transformations: 12},
		{Label: "7-Z18", Prime: []int{0, 1, 2, 3, 5, 8, 9}, Vector: [6]int{4, 3, 4, 4, 4, 2}, Transformations: 24},
		{Label: "7-19", Prime: []int{0, 1, 2, 3, 6, 7, 9}, Vector: [6]int{4, 3, 4, 3, 4, 3}, Transformations: 24},
		{Label: "7-20", Prime: []int{0, 1, 2, 4, 7, 8, 9}, Vector: [6]int{4, 3, 3, 4, 5, 2}, Transformations: 24},
		{Label: "7-21", Prime: []int{0, 1, 2, 4, 5, 8, 9}, Vector: [6]int{4, 2, 4, 6, 4, 1}, Transformations: 24},
		{Label: "7-22", Prime: []int{0, 1, 2, 5, 6, 8, 9}, Vector: [6]int{4, 2, 4, 5, 4, 2}, Transformations: 12},
		{Label: "7-23", Prime: []int{0, 2, 3, 4, 5, 7, 9}, Vector: [6]int{3, 5, 4, 3, 5, 1}, Transformations: 24},
		{Label: "7-24", Prime: []int{0, 1, 2, 3, 5, 7, 9}, Vector: [6]int{3, 5, 3, 4, 4, 2}, Transformations: 24},
		{Label: "7-25", Prime: []int{0, 2, 3, 4, 6, 7, 9}, Vector: [6]int{3, 4, 5, 3, 4, 2}, Transformations: 24},
		{Label: "7-26", Prime: []int{0, 1, 3, 4, 5, 7, 9}, Vector: [6]int{3, 4, 4, 5, 3, 2}, Transformations: 24},
		{Label: "7-27", Prime: []int{0, 1, 2, 4, 5, 7, 9}, Vector: [6]int{3, 4, 4, 4, 5, 1}, Transformations: 24},
		{Label: "7-28", Prime: []int{0, 1, 3, 5, 6, 7, 9}, Vector: [6]int{3, 4, 4, 4, 3, 3}, Transformations: 24},
		{Label: "7-29", Prime: []int{0, 1, 2, 4, 6, 7, 9}, Vector: [6]int{3, 4, 4, 3, 5, 2}, Transformations: 24},
		{Label: "7-30", Prime: []int{0, 1, 2, 4, 6, 8, 9}, Vector: [6]int{3, 4, 3, 5, 4, 2}, Transformations: 24},
		{Label: "7-31", Prime: []int{0, 1, 3, 4, 6, 7, 9}, Vector: [6]int{3, 3, 6, 3, 3, 3}, Transformations: 24},
		{Label: "7-32", Prime: []int{0, 1, 3, 4, 6, 8, 9}, Vector: [6]int{3, 3, 5, 4, 4, 2}, Transformations: 24},
		{Label: "7-33", Prime: []int{0, 1, 2, 4, 6, 8, 10}, Vector: [6]int{2, 6, 2, 6, 2, 3}, Transformations: 12},
		{Label: "7-34", Prime: []int{0, 1, 3, 4, 6, 8, 10}, Vector: [6]int{2, 5, 4, 4, 4, 2}, Transformations: 12},
		{Label: "7-35", Prime: []int{0, 1, 3, 5, 6, 8, 10}, Vector: [6]int{2, 5, 4, 3, 6, 1}, Transformations: 12},
		{Label: "7-Z36", Prime: []int{0, 1, 2, 3, 5, 6, 8}, Vector: [6]int{4, 4, 4, 3, 4, 2}, Transformations: 24},
		{Label: "7-Z37", Prime: []int{0, 1, 3, 4, 5, 7, 8}, Vector: [6]int{4, 3, 4, 5, 4, 1}, Transformations: 12},
		{Label: "7-Z38", Prime: []int{0, 1, 2, 4, 5, 7, 8}, Vector: [6]int{4, 3, 4, 4, 4, 2}, Transformations: 24},
	},
	8: {
		{Label: "8-1", Prime: []int{0, 1, 2, 3, 4, 5, 6, 7}, Vector: [6]int{7, 6, 5, 4, 4, 2}, Transformations: 12},
		{Label: "8-2", Prime: []int{0, 1, 2, 3, 4, 5, 6, 8}, Vector: [6]int{6, 6, 5, 5, 4, 2}, Transformations: 24},
		{Label: "8-3", Prime: []int{0, 1, 2, 3, 4, 5, 6, 9}, Vector: [6]int{6, 5, 6, 5, 4, 2}, Transformations: 12},
		{Label: "8-4", Prime: []int{0, 1, 2, 3, 4, 5, 7, 8}, Vector: [6]int{6, 5, 5, 5, 5, 2}, Transformations: 24},
		{Label: "8-5", Prime: []int{0, 1, 2, 3, 4, 6, 7, 8}, Vector: [6]int{6, 5, 4, 5, 5, 3}, Transformations: 24},
		{Label: "8-6", Prime: []int{0, 1, 2, 3, 5, 6, 7, 8}, Vector: [6]int{6, 5, 4, 4, 6, 3}, Transformations: 12},
		{Label: "8-7", Prime: []int{0, 1, 2, 3, 4, 5, 8, 9}, Vector: [6]int{6, 4, 5, 6, 5, 2}, Transformations: 12},
		{Label: "8-8", Prime: []int{0, 1, 2, 3, 4, 7, 8, 9}, Vector: [6]int{6, 4, 4, 5, 6, 3}, Transformations: 12},
		{Label: "8-9", Prime: []int{0, 1, 2, 3, 6, 7, 8, 9}, Vector: [6]int{6, 4, 4, 4, 6, 4}, Transformations: 6},
		{Label: "8-10", Prime: []int{0, 2, 3, 4, 5, 6, 7, 9}, Vector: [6]int{5, 6, 6, 4, 5, 2}, Transformations: 12},
		{Label: "8-11", Prime: []int{0, 1, 2, 3, 4, 5, 7, 9}, Vector: [6]int{5, 6, 5, 5, 5, 2}, Transformations: 24},
		{Label: "8-12", Prime: []int{0, 1, 3, 4, 5, 6, 7, 9}, Vector: [6]int{5, 5, 6, 5, 4, 3}, Transformations: 24},
		{Label: "8-13", Prime: []int{0, 1, 2, 3, 4, 6, 7, 9}, Vector: [6]int{5, 5, 6, 4, 5, 3}, Transformations: 24},
		{Label: "8-14", Prime: []int{0, 1, 2, 4, 5, 6, 7, 9}, Vector: [6]int{5, 5, 5, 5, 6, 2}, Transformations: 24},
		{Label: "8-Z15", Prime: []int{0, 1, 2, 3, 4, 6, 8, 9}, Vector: [6]int{5, 5, 5, 5, 5, 3}, Transformations: 24},
		{Label: "8-16", Prime: []int{0, 1, 2, 3, 5, 7, 8, 9}, Vector: [6]int{5, 5, 4, 5, 6, 3}, Transformations: 24},
		{Label: "8-17", Prime: []int{0, 1, 3, 4, 5, 6, 8, 9}, Vector: [6]int{5, 4, 6, 6, 5, 2}, Transformations: 12},
		{Label: "8-18", Prime: []int{0, 1, 2, 3, 5, 6, 8, 9}, Vector: [6]int{5, 4, 6, 5, 5, 3}, Transformations: 24},
		{Label: "8-19", Prime: []int{0, 1, 2, 4, 5, 6, 8, 9}, Vector: [6]int{5, 4, 5, 7, 5, 2}, Transformations: 24},
		{Label: "8-20", Prime: []int{0, 1, 2, 4, 5, 7, 8, 9}, Vector: [6]int{5, 4, 5, 6, 6, 2}, Transformations: 12},
		{Label: "8-21", Prime: []int{0, 1, 2, 3, 4, 6, 8, 10}, Vector: [6]int{4, 7, 4, 6, 4, 3}, Transformations: 12},
		{Label: "8-22", Prime: []int{0, 1, 2, 3, 5, 6, 8, 10}, Vector: [6]int{4, 6, 5, 5, 6, 2}, Transformations: 24},
		{Label: "8-23", Prime: []int{0, 1, 2, 3, 5, 7, 8, 10}, Vector: [6]int{4, 6, 5, 4, 7, 2}, Transformations: 12},
		{Label: "8-24", Prime: []int{0, 1, 2, 4, 5, 6, 8, 10}, Vector: [6]int{4, 6, 4, 7, 4, 3}, Transformations: 12},
		{Label: "8-25", Prime: []int{0, 1, 2, 4, 6, 7, 8, 10}, Vector: [6]int{4, 6, 4, 6, 4, 4}, Transformations: 6},
		{Label: "8-26", Prime: []int{0, 1, 2, 4, 5, 7, 9, 10}, Vector: [6]int{4, 5, 6, 5, 6, 2}, Transformations: 12},
		{Label: "8-27", Prime: []int{0, 1, 2, 4, 5, 7, 8, 10}, Vector: [6]int{4, 5, 6, 5, 5, 3}, Transformations: 24},
		{Label: "8-28", Prime: []int{0, 1, 3, 4, 6, 7, 9, 10}, Vector: [6]int{4, 4, 8, 4, 4, 4}, Transformations: 3},
		{Label: "8-Z29", Prime: []int{0, 1, 2, 3, 5, 6, 7, 9}, Vector: [6]int{5, 5, 5, 5, 5, 3}, Transformations: 24},
	},
	9: {
		{Label: "9-1", Prime: []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, Vector: [6]int{8, 7, 6, 6, 6, 3}, Transformations: 12},
		{Label: "9-2", Prime: []int{0, 1, 2, 3, 4, 5, 6, 7, 9}, Vector: [6]int{7, 7, 7, 6, 6, 3}, Transformations: 24},
		{Label: "9-3", Prime: []int{0, 1, 2, 3, 4, 5, 6, 8, 9}, Vector: [6]int{7, 6, 7, 7, 6, 3}, Transformations: 24},
		{Label: "9-4", Prime: []int{0, 1, 2, 3, 4, 5, 7, 8, 9}, Vector: [6]int{7, 6, 6, 7, 7, 3}, Transformations: 24},
		{Label: "9-5", Prime: []int{0, 1, 2, 3, 4, 6, 7, 8, 9}, Vector: [6]int{7, 6, 6, 6, 7, 4}, Transformations: 24},
		{Label: "9-6", Prime: []int{0, 1, 2, 3, 4, 5, 6, 8, 10}, Vector: [6]int{6, 8, 6, 7, 6, 3}, Transformations: 12},
		{Label: "9-7", Prime: []int{0, 1, 2, 3, 4, 5, 7, 8, 10}, Vector: [6]int{6, 7, 7, 6, 7, 3}, Transformations: 24},
		{Label: "9-8", Prime: []int{0, 1, 2, 3, 4, 6, 7, 8, 10}, Vector: [6]int{6, 7, 6, 7, 6, 4}, Transformations: 24},
		{Label: "9-9", Prime: []int{0, 1, 2, 3, 5, 6, 7, 8, 10}, Vector: [6]int{6, 7, 6, 6, 8, 3}, Transformations: 12},
		{Label: "9-10", Prime: []int{0, 1, 2, 3, 4, 6, 7, 9, 10}, Vector: [6]int{6, 6, 8, 6, 6, 4}, Transformations: 12},
		{Label: "9-11", Prime: []int{0, 1, 2, 3, 5, 6, 7, 9, 10}, Vector: [6]int{6, 6, 7, 7, 7, 3}, Transformations: 24},
		{Label: "9-12", Prime: []int{0, 1, 2, 4, 5, 6, 8, 9, 10}, Vector: [6]int{6, 6, 6, 9, 6, 3}, Transformations: 4},
	},
	10: {
		{Label: "10-1", Prime: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, Vector: [6]int{9, 8, 8, 8, 8, 4}, Transformations: 12},
		{Label: "10-2", Prime: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 10}, Vector: [6]int{8, 9, 8, 8, 8, 4}, Transformations: 12},
		{Label: "10-3", Prime: []int{0, 1, 2, 3, 4, 5, 6, 7, 9, 10}, Vector: [6]int{8, 8, 9, 8, 8, 4}, Transformations: 12},
		{Label: "10-4", Prime: []int{0, 1, 2, 3, 4, 5, 6, 8, 9, 10}, Vector: [6]int{8, 8, 8, 9, 8, 4}, Transformations: 12},
		{Label: "10-5", Prime: []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 10}, Vector: [6]int{8, 8, 8, 8, 9, 4}, Transformations: 12},
		{Label: "10-6", Prime: []int{0, 1, 2, 3, 4, 6, 7, 8, 9, 10}, Vector: [6]int{8, 8, 8, 8, 8, 5}, Transformations: 6},
	},
	11: nil, // unsupported
	12: nil, // unsupported
}
