// Command serialyse analyzes twelve-tone rows: a single row literal, or
// a whole corpus rendered to CSV and/or the HTML anthology chapter.
//
// Usage:
//
//	serialyse -row "<0-4-1-11-10-3-6-5-9-8-2-7>"
//	serialyse -corpus rows_in_the_repertoire.json -csv rows.csv -html anthology.html
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/MarkGotham/Serial-Analyser/anthology"
	"github.com/MarkGotham/Serial-Analyser/pcset"
	"github.com/MarkGotham/Serial-Analyser/report"
	"github.com/MarkGotham/Serial-Analyser/rowtext"
	"github.com/MarkGotham/Serial-Analyser/tonerow"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("serialyse: ")

	rowLiteral := flag.String("row", "", "row literal to analyze (digits, pitch names, or delimited integers)")
	corpusPath := flag.String("corpus", "", "path to a rows-in-the-repertoire JSON corpus")
	csvPath := flag.String("csv", "", "write the corpus as CSV to this path")
	htmlPath := flag.String("html", "", "write the HTML anthology chapter to this path")
	workers := flag.Int("workers", runtime.NumCPU(), "rows classified concurrently")
	flag.Parse()

	switch {
	case *rowLiteral != "":
		if err := analyzeLiteral(*rowLiteral); err != nil {
			log.Fatal(err)
		}
	case *corpusPath != "":
		if err := runCorpus(*corpusPath, *csvPath, *htmlPath, *workers); err != nil {
			log.Fatal(err)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func analyzeLiteral(literal string) error {
	row, err := rowtext.ParseRow(literal, true)
	if err != nil {
		return err
	}
	if !tonerow.Is12Tone(row) {
		return fmt.Errorf("%v is not a twelve-tone row", row)
	}

	props, err := anthology.Analyze(row)
	if err != nil {
		return err
	}

	fmt.Printf("P0:         %v\n", row)
	if label, err := pcset.ForteClass(row[:6]); err == nil {
		fmt.Printf("Hexachord:  %s\n", label)
	}
	fmt.Printf("Properties: %s\n", props)

	return nil
}

func runCorpus(corpusPath, csvPath, htmlPath string, workers int) error {
	entries, err := anthology.Load(corpusPath)
	if err != nil {
		if entries == nil {
			return err
		}
		log.Printf("skipped malformed entries: %v", err)
	}
	log.Printf("loaded %d rows", len(entries))

	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := anthology.WriteCSV(f, entries); err != nil {
			return err
		}
	}

	if htmlPath != "" {
		analyses, err := anthology.AnalyzeAll(context.Background(), entries, workers)
		if err != nil {
			return err
		}
		f, err := os.Create(htmlPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := report.WriteHTML(f, report.BuildSections(analyses)); err != nil {
			return err
		}
	}

	return nil
}
