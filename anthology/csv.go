package anthology

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV renders entries as CSV: the metadata columns Composer, Work
// and Year, followed by one column per row position (headers 1-12).
// Entries are written in the given order; Load already sorts by
// composer and work.
func WriteCSV(w io.Writer, entries []Entry) error {
	out := csv.NewWriter(w)

	header := []string{"Composer", "Work", "Year"}
	for i := 1; i <= 12; i++ {
		header = append(header, strconv.Itoa(i))
	}
	if err := out.Write(header); err != nil {
		return fmt.Errorf("anthology: write csv header: %w", err)
	}

	for _, entry := range entries {
		record := []string{entry.Composer, entry.Work, entry.Year}
		for _, p := range entry.P0 {
			record = append(record, strconv.Itoa(p))
		}
		if err := out.Write(record); err != nil {
			return fmt.Errorf("anthology: write csv record: %w", err)
		}
	}
	out.Flush()

	return out.Error()
}
