// Package report turns a batch of analyzed corpus entries into the
// anthology chapter: entries grouped by property (re-use, symmetry,
// derivation, combinatoriality), rendered as HTML.
package report

import (
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"github.com/MarkGotham/Serial-Analyser/anthology"
	"github.com/MarkGotham/Serial-Analyser/pcset"
)

// Section is one property grouping: a heading, a prose explanation and
// the matching entries, one line each.
type Section struct {
	Header      string
	Explanation string
	Items       []string
}

// BuildSections groups analyses into the anthology's twelve property
// sections, in chapter order: re-used rows, the two interval
// properties, order symmetries, the four derivation granularities, and
// the four combinatoriality classes. Semi-combinatorial rows land in
// the section of their strongest kind (T before I before RI), matching
// the catalog's exclusive classification; all-combinatorial rows get
// their own section with the full transposition detail.
func BuildSections(analyses []anthology.Analysis) []Section {
	reused := Section{
		Header: "Re-used Rows",
		Explanation: "Rows used by more than one work in this collection, " +
			"comparing P0 forms (transposition-equivalence only).",
	}
	allInterval := Section{
		Header: "All-Interval",
		Explanation: "Rows traversing all 11 intervals between " +
			"neighbouring pitches.",
	}
	selfR := Section{
		Header: "Self Retrograde",
		Explanation: "Rows whose prime is transposition-equivalent to " +
			"its retrograde.",
	}
	selfRI := Section{
		Header: "Self Retrograde Inversion",
		Explanation: "Rows with a palindromic interval succession: the " +
			"prime is transposition-equivalent to its retrograde-inversion.",
	}
	derived := map[int]*Section{
		2: {Header: "6x Same Dyad (interval)", Explanation: "Rows whose six discrete dyads form the same pitch-class set."},
		3: {Header: "4x Same Trichord", Explanation: "Rows whose four discrete trichords form the same pitch-class set."},
		4: {Header: "3x Same Tetrachord", Explanation: "Rows whose three discrete tetrachords form the same pitch-class set."},
		6: {Header: "2x Same Hexachord", Explanation: "Rows whose two hexachords form the same pitch-class set."},
	}
	tComb := Section{
		Header: "Transposition Combinatorial",
		Explanation: "Rows combinatorial between P0 and at least one " +
			"transposition of P; the transpositions are given after the row.",
	}
	iComb := Section{
		Header:      "Inversion Combinatorial",
		Explanation: "Rows combinatorial by inversion, in the form P0-IX (or P0-IX,Y for multiple matches).",
	}
	riComb := Section{
		Header:      "Retrograde Inversion Combinatorial",
		Explanation: "Rows combinatorial by retrograde inversion.",
	}
	allComb := Section{
		Header: "All-Combinatorial",
		Explanation: "Rows whose hexachord is combinatorial under every " +
			"transformation in at least one transposition each.",
	}

	byP0 := make(map[string][]string)
	p0Order := []string{}

	for _, analysis := range analyses {
		entry, props := analysis.Entry, analysis.Properties
		basic := fmt.Sprintf("%s: %s", entry.Composer, entry.Work)

		p0 := rowString(entry.P0)
		if _, ok := byP0[p0]; !ok {
			p0Order = append(p0Order, p0)
		}
		byP0[p0] = append(byP0[p0], basic)

		line := basic + ", " + p0

		for _, d := range props.Derived {
			extended := fmt.Sprintf("%s, pc set %s", line, rowString(d.Cell))
			if d.SelfRotational {
				extended += fmt.Sprintf(", self-rotational interval pattern %d", d.Step)
			}
			derived[d.Length].Items = append(derived[d.Length].Items, extended)
			if d.SelfRotational {
				break
			}
		}

		if props.AllInterval {
			allInterval.Items = append(allInterval.Items, line)
		}
		if props.SelfRetrograde {
			selfR.Items = append(selfR.Items, line)
		}
		if props.SelfRI {
			selfRI.Items = append(selfRI.Items, line)
		}

		switch {
		case props.CombinatorialType == "A":
			item := fmt.Sprintf("%s, %s", line, props.Combinatorial)
			if prime, err := pcset.Prime(entry.P0[:6]); err == nil {
				item += ", " + rowString(prime)
			}
			allComb.Items = append(allComb.Items, item)
		case len(props.Combinatorial.T) > 0:
			tComb.Items = append(tComb.Items, line+", P0-P"+joinInts(props.Combinatorial.T))
		case len(props.Combinatorial.I) > 0:
			iComb.Items = append(iComb.Items, line+", P0-I"+joinInts(props.Combinatorial.I))
		case len(props.Combinatorial.RI) > 0:
			riComb.Items = append(riComb.Items, line+", P0-RI"+joinInts(props.Combinatorial.RI))
		}
	}

	for _, p0 := range p0Order {
		if works := byP0[p0]; len(works) > 1 {
			reused.Items = append(reused.Items, p0+": "+strings.Join(works, "; "))
		}
	}

	return []Section{
		reused, allInterval,
		selfR, selfRI,
		*derived[2], *derived[3], *derived[4], *derived[6],
		tComb, iComb, riComb, allComb,
	}
}

var htmlTemplate = template.Must(template.New("anthology").Parse(`<header class="site-header">
<div class="wrap">
The following sections interpret the row list, looking for the presence
of certain properties.
{{range .}}<div>
<h2>{{.Header}}</h2>
{{.Explanation}}
<ol>
{{range .Items}}<li>{{.}}</li>
{{end}}</ol>
</div>
{{end}}`))

// WriteHTML renders the sections as the anthology chapter body.
func WriteHTML(w io.Writer, sections []Section) error {
	if err := htmlTemplate.Execute(w, sections); err != nil {
		return fmt.Errorf("report: render html: %w", err)
	}

	return nil
}

func rowString(row []int) string {
	return "(" + joinInts(row) + ")"
}

func joinInts(values []int) string {
	rendered := make([]string, len(values))
	for i, v := range values {
		rendered[i] = strconv.Itoa(v)
	}

	return strings.Join(rendered, ",")
}
