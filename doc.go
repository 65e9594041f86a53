// Package serialyser is your in-memory toolkit for exploring serial
// (twelve-tone) music — from pitch-class set primitives to full
// anthology reports on real repertoire rows.
//
// 🚀 What is Serial-Analyser?
//
//	A pure-Go library that brings together:
//		• Row transformations: transposition, inversion, retrograde, rotation
//		• Krenek-style hexachord rotation and pair-swap cycles
//		• Pitch-class sets: interval vectors, Forte prime forms & labels
//		• The full 2–10 cardinality set-class catalog, Z-pairs included
//		• Row classification: derivation, symmetry, combinatoriality
//		• A corpus layer: load, filter, analyze and report on row anthologies
//
// ✨ Why choose Serial-Analyser?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Exact – prime forms and combinatoriality resolved against the
//     catalog, Z-related vector collisions handled correctly
//   - Concurrent where it counts – batch analysis with a worker limit,
//     everything else pure functions over slices
//
// Everything is organized under focused subpackages:
//
//	transform/ — order transformations on rows (T, I, R, rotation, Krenek)
//	pcset/     — set classes: prime forms, vectors, Forte labels, catalog
//	tonerow/   — row properties: segments, derivation, symmetry, combinatoriality
//	rowtext/   — pitch-name and row-string parsing ("F♯4" → 6)
//	anthology/ — row corpus loading, batch analysis, CSV export
//	report/    — property sections rendered as the anthology chapter
//
// Quick example:
//
//	row := []int{0, 11, 2, 1, 5, 6, 3, 4, 8, 7, 10, 9} // Webern, Op. 28
//	d, _ := tonerow.Derived(row, 4)
//	// d.Cell = [0 1 2 3]: three chromatic tetrachords
//
// Dive into the package docs for the full API, or cmd/serialyse for the
// command-line pipeline.
package serialyser
