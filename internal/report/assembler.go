// Package report renders a finished footprint bundle into a
// downloadable plain-text document with bar charts.
//
// It sits on the far side of the collaborator boundary: assembly can
// fail (bad writer, absent data) without invalidating the computed
// bundle, which stays on the session and can be re-rendered at will.
package report

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/keanyaoha/greenprint/internal/catalog"
	"github.com/keanyaoha/greenprint/internal/footprint"
	"github.com/keanyaoha/greenprint/internal/greenops"
)

// Layout constants.
const (
	titleLine       = "GreenPrint Carbon Footprint Report"
	barWidth        = 40
	barFilledChar   = "█"
	labelWidth      = 24
	tabPadding      = 2
	maxLabelDisplay = 22
)

// Bundle is everything the assembler needs to produce a document.
type Bundle struct {
	Result      *footprint.Result
	Comparison  *footprint.Comparison
	Equivalency greenops.Equivalency
	GeneratedAt time.Time
}

// Render assembles the document and returns its bytes.
func Render(b Bundle) ([]byte, error) {
	var buf bytes.Buffer
	if err := Assemble(&buf, b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Assemble writes the report document to w. It validates the bundle
// first so a partial document is never emitted for an unusable bundle.
func Assemble(w io.Writer, b Bundle) error {
	if b.Result == nil || b.Comparison == nil {
		return ErrIncompleteBundle
	}

	var doc strings.Builder

	doc.WriteString(titleLine + "\n")
	doc.WriteString(strings.Repeat("=", len(titleLine)) + "\n\n")
	doc.WriteString(fmt.Sprintf("Country:   %s\n", b.Result.Country))
	if !b.GeneratedAt.IsZero() {
		doc.WriteString(fmt.Sprintf("Generated: %s\n", b.GeneratedAt.Format(time.RFC1123)))
	}
	doc.WriteString(fmt.Sprintf("\nEstimated monthly footprint: %.1f kg CO₂e\n", b.Result.GrandTotal))

	if b.Result.Empty() {
		doc.WriteString("\nNo positive emissions were recorded for this period.\n")
		return write(w, doc.String())
	}

	if !b.Equivalency.IsEmpty {
		doc.WriteString(b.Equivalency.DisplayText + "\n")
		doc.WriteString(fmt.Sprintf("Sustainable monthly target: %.0f kg CO₂e (%.0f%% used)\n",
			greenops.SustainableTargetKgPerMonth, b.Equivalency.TargetRatio*100))
	}

	writeCategorySection(&doc, b.Result)
	writeTopActivitiesSection(&doc, b.Result)
	writeComparisonSection(&doc, b.Result, b.Comparison)

	return write(w, doc.String())
}

func write(w io.Writer, doc string) error {
	if _, err := io.WriteString(w, doc); err != nil {
		return fmt.Errorf("%w: %v", ErrAssemblyFailed, err)
	}
	return nil
}

func writeCategorySection(doc *strings.Builder, result *footprint.Result) {
	doc.WriteString("\nEmission by Category\n--------------------\n")

	// Stable section order: questionnaire tab order, positive
	// categories only (the engine already omits non-positive ones).
	maxTotal := 0.0
	for _, total := range result.CategoryTotals {
		if total > maxTotal {
			maxTotal = total
		}
	}

	tw := tabwriter.NewWriter(doc, 0, 0, tabPadding, ' ', 0)
	for _, cat := range catalog.Categories {
		total, ok := result.CategoryTotals[cat]
		if !ok {
			continue
		}
		fmt.Fprintf(tw, "%s\t%8.1f kg\t%s\n", cat, total, bar(total, maxTotal))
	}
	tw.Flush()
}

func writeTopActivitiesSection(doc *strings.Builder, result *footprint.Result) {
	if len(result.TopActivities) == 0 {
		return
	}

	doc.WriteString(fmt.Sprintf("\nTop %d Emitting Activities\n-------------------------\n", len(result.TopActivities)))

	maxEmission := result.TopActivities[0].Emission
	tw := tabwriter.NewWriter(doc, 0, 0, tabPadding, ' ', 0)
	for _, a := range result.TopActivities {
		fmt.Fprintf(tw, "%s\t%8.1f kg\t%s\n", truncate(catalog.DisplayName(a.ActivityID)), a.Emission, bar(a.Emission, maxEmission))
	}
	tw.Flush()
}

func writeComparisonSection(doc *strings.Builder, result *footprint.Result, cmp *footprint.Comparison) {
	doc.WriteString("\nComparison with Averages\n------------------------\n")

	type row struct {
		label string
		value float64
	}
	rows := []row{{label: "You", value: result.GrandTotal}}
	for _, entry := range cmp.Entries {
		if entry.Average != nil {
			rows = append(rows, row{label: entry.Label, value: *entry.Average})
		}
	}

	// The display sorts ascending by magnitude; the engine's fixed
	// candidate order is a wire contract, not a layout.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].value < rows[j].value })

	maxValue := rows[len(rows)-1].value
	tw := tabwriter.NewWriter(doc, 0, 0, tabPadding, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%8.1f kg\t%s\n", truncate(r.label), r.value, bar(r.value, maxValue))
	}
	tw.Flush()

	doc.WriteString(fmt.Sprintf("\nYour footprint is %s.\n", cmp.Classification))

	for _, note := range cmp.Notes {
		doc.WriteString("Note: " + note + "\n")
	}
}

// bar renders a proportional bar, always at least one cell wide for a
// positive value so small contributors stay visible.
func bar(value, max float64) string {
	if value <= 0 || max <= 0 {
		return ""
	}
	n := int(value / max * barWidth)
	if n < 1 {
		n = 1
	}
	if n > barWidth {
		n = barWidth
	}
	return strings.Repeat(barFilledChar, n)
}

func truncate(label string) string {
	if len(label) <= labelWidth {
		return label
	}
	return label[:maxLabelDisplay] + ".."
}
