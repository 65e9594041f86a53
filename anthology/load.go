package anthology

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/tidwall/gjson"

	"github.com/MarkGotham/Serial-Analyser/tonerow"
)

// Load reads a corpus file and decodes its entries, sorted by composer
// then work. Malformed entries are skipped and their failures combined
// into the returned error; the well-formed entries are returned either
// way, so callers may treat the error as a warning.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("anthology: read corpus: %w", err)
	}

	return Parse(data)
}

// Parse decodes a corpus from its raw JSON bytes. See Load.
func Parse(data []byte) ([]Entry, error) {
	var entries []Entry
	var errs *multierror.Error

	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		entry, err := decodeEntry(value)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("entry %q: %w", key.String(), err))

			return true // keep going: one bad entry must not abort the load
		}
		entries = append(entries, entry)

		return true
	})

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Composer != entries[j].Composer {
			return entries[i].Composer < entries[j].Composer
		}

		return entries[i].Work < entries[j].Work
	})

	return entries, errs.ErrorOrNil()
}

func decodeEntry(value gjson.Result) (Entry, error) {
	entry := Entry{
		Composer: value.Get("Composer").String(),
		Work:     value.Get("Work").String(),
		Year:     value.Get("Year").String(),
		Source:   value.Get("Source").String(),
	}

	p0 := value.Get("P0")
	if !p0.IsArray() {
		return Entry{}, fmt.Errorf("%w: missing P0 row", ErrBadEntry)
	}
	for _, pitch := range p0.Array() {
		entry.P0 = append(entry.P0, int(pitch.Int()))
	}
	if !tonerow.Is12Tone(entry.P0) {
		return Entry{}, fmt.Errorf("%w: P0 %v is not a twelve-tone row", ErrBadEntry, entry.P0)
	}

	return entry, nil
}

// Filter returns the entries for which keep reports true.
func Filter(entries []Entry, keep func(Entry) bool) []Entry {
	var out []Entry
	for _, entry := range entries {
		if keep(entry) {
			out = append(out, entry)
		}
	}

	return out
}

// ByComposer builds a Filter predicate matching a composer name,
// exactly or (exact=false) by case-insensitive substring.
func ByComposer(name string, exact bool) func(Entry) bool {
	lower := strings.ToLower(name)

	return func(e Entry) bool {
		if exact {
			return e.Composer == name
		}

		return strings.Contains(strings.ToLower(e.Composer), lower)
	}
}

// Sources returns the distinct cite keys referenced by the entries'
// Source fields, alphabetically sorted. Page numbers and other
// qualifiers after a comma are dropped.
func Sources(entries []Entry) []string {
	seen := make(map[string]bool)
	for _, entry := range entries {
		for _, source := range strings.Split(entry.Source, "; ") {
			key := strings.SplitN(source, ",", 2)[0]
			if key != "" {
				seen[key] = true
			}
		}
	}

	out := make([]string, 0, len(seen))
	for key := range seen {
		out = append(out, key)
	}
	sort.Strings(out)

	return out
}
