package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/keanyaoha/greenprint/internal/catalog"
	"github.com/keanyaoha/greenprint/internal/footprint"
	"github.com/keanyaoha/greenprint/internal/greenops"
)

// tabwriterPadding is the minimum padding between output columns.
const tabwriterPadding = 2

// calcOutput is the JSON envelope for scripted consumers.
type calcOutput struct {
	Result      *footprint.Result     `json:"result"`
	Comparison  *footprint.Comparison `json:"comparison"`
	Equivalency greenops.Equivalency  `json:"equivalency"`
}

func renderCalcOutput(w io.Writer, format string, result *footprint.Result, cmp *footprint.Comparison, equiv greenops.Equivalency) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(calcOutput{Result: result, Comparison: cmp, Equivalency: equiv})
	case "text", "":
		return renderCalcText(w, result, cmp, equiv)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func renderCalcText(w io.Writer, result *footprint.Result, cmp *footprint.Comparison, equiv greenops.Equivalency) error {
	fmt.Fprintf(w, "Country: %s\n", result.Country)
	fmt.Fprintf(w, "Estimated monthly footprint: %.1f kg CO₂e\n", result.GrandTotal)

	if result.Empty() {
		fmt.Fprintln(w, "No positive emissions were recorded.")
		return nil
	}

	if !equiv.IsEmpty {
		fmt.Fprintln(w, equiv.DisplayText)
	}

	fmt.Fprintln(w, "\nEmission by category:")
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	for _, cat := range catalog.Categories {
		if total, ok := result.CategoryTotals[cat]; ok {
			fmt.Fprintf(tw, "  %s\t%.1f kg\n", cat, total)
		}
	}
	tw.Flush()

	fmt.Fprintln(w, "\nTop emitting activities:")
	tw = tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	for _, a := range result.TopActivities {
		fmt.Fprintf(tw, "  %s\t%.1f kg\n", catalog.DisplayName(a.ActivityID), a.Emission)
	}
	tw.Flush()

	fmt.Fprintln(w, "\nComparison with averages:")
	tw = tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	for _, entry := range cmp.Entries {
		if entry.Average != nil {
			fmt.Fprintf(tw, "  %s\t%.1f kg\n", entry.Label, *entry.Average)
		}
	}
	tw.Flush()

	fmt.Fprintf(w, "\nYour footprint is %s.\n", cmp.Classification)
	for _, note := range cmp.Notes {
		fmt.Fprintf(w, "Note: %s\n", note)
	}
	return nil
}
