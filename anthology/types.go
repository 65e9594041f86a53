// Package anthology loads and analyzes a repertoire corpus of
// twelve-tone rows with work metadata, and renders tabular exports.
//
// The corpus is a JSON object keyed by arbitrary entry IDs; each value
// carries Composer, Work, Year, Source and the row in P0 form. The
// package is a read-only consumer: it never writes the corpus back.
//
// Errors:
//
//	ErrBadEntry - a corpus entry is missing its row or the row is malformed.
//
// Load aggregates per-entry failures (hashicorp/go-multierror) so a
// single bad entry does not abort a corpus-wide run; the well-formed
// entries are returned alongside the combined error.
package anthology

import (
	"errors"

	"github.com/MarkGotham/Serial-Analyser/tonerow"
)

// ErrBadEntry indicates a corpus entry whose P0 row is absent, not
// twelve-tone, or otherwise malformed. Wrapped with the entry key.
var ErrBadEntry = errors.New("anthology: malformed corpus entry")

// Entry is one corpus record: a row in P0 form plus work metadata.
type Entry struct {
	// Composer, in "Surname, Forename" form.
	Composer string

	// Work is the title of the composition.
	Work string

	// Year of composition, kept textual (the corpus mixes numbers,
	// ranges and blanks).
	Year string

	// Source holds the "; "-separated cite keys documenting the row,
	// each optionally followed by page numbers.
	Source string

	// P0 is the row transposed to start on 0.
	P0 []int
}

// Properties gathers every classification result for one row. It is
// produced by Analyze and consumed by the report generators.
type Properties struct {
	// Derived lists the segment lengths at which the row is fully
	// derived from one cell, in ascending length order.
	Derived []DerivedSegments

	// Combinatorial lists the transposition indices at which the row is
	// combinatorial with a transformed copy of itself, per kind.
	Combinatorial tonerow.Combinatorial

	// CombinatorialType is the catalog classification of the row's
	// first hexachord: A, T, I, RI or "".
	CombinatorialType string

	SelfRetrograde bool
	SelfRI         bool
	AllInterval    bool
	AllTrichord    bool
}

// DerivedSegments records one confirmed derivation granularity.
type DerivedSegments struct {
	// Length is the cell size (2, 3, 4 or 6 for a twelve-tone row).
	Length int

	// Cell is the prime form of the repeated cell.
	Cell []int

	// SelfRotational marks the rotational sub-property; Step is the
	// fixed interval between consecutive segments when it holds.
	SelfRotational bool
	Step           int
}

// Analysis pairs a corpus entry with its classification results.
type Analysis struct {
	Entry      Entry
	Properties Properties
}
