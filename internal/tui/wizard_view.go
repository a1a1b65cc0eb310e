package tui

import (
	"fmt"
	"strings"

	"github.com/keanyaoha/greenprint/internal/catalog"
	"github.com/keanyaoha/greenprint/internal/greenops"
)

// Layout constants.
const (
	countryListHeight  = 12
	activityColWidth   = 26
	comparisonBarWidth = 32
)

// View implements tea.Model.
func (m *Model) View() string {
	switch m.state {
	case StateQuitting:
		return ""
	case StateError:
		if m.err != nil {
			return WarnStyle.Render("Error: "+m.err.Error()) + "\n"
		}
		return WarnStyle.Render("Error") + "\n"
	case StateCountrySelect:
		return m.viewCountrySelect()
	case StateEditing:
		return m.viewEditing()
	case StateResults:
		return m.viewResults()
	default:
		return ""
	}
}

func (m *Model) viewCountrySelect() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("🌍 GreenPrint — Carbon Footprint Calculator"))
	b.WriteString("\n\n")
	b.WriteString(LabelStyle.Render("Select your country"))
	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(SubtleStyle.Render("no matching countries"))
		b.WriteString("\n")
	}

	// Window the list around the cursor.
	start := 0
	if m.countryCursor >= countryListHeight {
		start = m.countryCursor - countryListHeight + 1
	}
	end := start + countryListHeight
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	for i := start; i < end; i++ {
		name := m.filtered[i]
		if i == m.countryCursor {
			b.WriteString(SelectedRowStyle.Render("▸ " + name))
		} else {
			b.WriteString("  " + name)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("↑/↓ move · enter select · esc quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) viewEditing() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("🌿 GreenPrint"))
	b.WriteString(LabelStyle.Render("  ·  " + m.sess.Country()))
	b.WriteString("\n\n")

	// Tab bar.
	current := m.sess.CurrentTab()
	var tabs []string
	for _, cat := range catalog.Categories {
		if cat == current {
			tabs = append(tabs, ActiveTabStyle.Render(cat.String()))
		} else {
			tabs = append(tabs, TabStyle.Render(cat.String()))
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	b.WriteString(LabelStyle.Render("Enter your monthly consumption"))
	b.WriteString("\n\n")

	for i, id := range m.currentActivities() {
		label := padRight(catalog.DisplayName(id), activityColWidth)
		value := trimFloat(m.sess.Quantity(id))
		if value == "" {
			value = "0"
		}

		switch {
		case i == m.focusedRow && m.editMode:
			b.WriteString(SelectedRowStyle.Render("▸ " + label))
			b.WriteString(m.editInput.View())
		case i == m.focusedRow:
			b.WriteString(SelectedRowStyle.Render("▸ " + label + value))
		default:
			b.WriteString("  " + label + ValueStyle.Render(value))
		}
		b.WriteString("\n")
	}

	if m.editErr != "" {
		b.WriteString("\n")
		b.WriteString(WarnStyle.Render(m.editErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	checkbox := "[ ]"
	if m.sess.Confirmed() {
		checkbox = "[x]"
	}
	b.WriteString(fmt.Sprintf("%s I have reviewed my data for all categories\n", checkbox))

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("↑/↓ row · ←/→ category · enter edit · space confirm · c calculate · b country · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) viewResults() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("📊 Your Estimated Monthly Carbon Footprint"))
	b.WriteString("\n\n")

	if m.result.Empty() {
		b.WriteString(SubtleStyle.Render("Your calculated emissions are zero. Nothing to display."))
		b.WriteString("\n\n")
		b.WriteString(HelpStyle.Render("e edit · b country · q quit"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(LabelStyle.Render("Total: "))
	b.WriteString(ValueStyle.Render(fmt.Sprintf("%.1f kg CO₂e", m.result.GrandTotal)))
	b.WriteString("\n")
	if !m.equiv.IsEmpty {
		b.WriteString(SubtleStyle.Render(m.equiv.DisplayText))
		b.WriteString("\n")
		b.WriteString(SubtleStyle.Render(fmt.Sprintf("Sustainable target: %.0f kg/month (%.0f%% used)",
			greenops.SustainableTargetKgPerMonth, m.equiv.TargetRatio*100)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(HeaderStyle.Render("Emission by Category"))
	b.WriteString("\n")
	maxCat := 0.0
	for _, total := range m.result.CategoryTotals {
		if total > maxCat {
			maxCat = total
		}
	}
	for _, cat := range catalog.Categories {
		total, ok := m.result.CategoryTotals[cat]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("%s%8.1f  %s\n",
			padRight(cat.String(), activityColWidth), total,
			renderBar(total, maxCat, comparisonBarWidth, false)))
	}

	if len(m.result.TopActivities) > 0 {
		b.WriteString("\n")
		b.WriteString(HeaderStyle.Render(fmt.Sprintf("Top %d Emitting Activities", len(m.result.TopActivities))))
		b.WriteString("\n")
		maxTop := m.result.TopActivities[0].Emission
		for _, a := range m.result.TopActivities {
			b.WriteString(fmt.Sprintf("%s%8.1f  %s\n",
				padRight(catalog.DisplayName(a.ActivityID), activityColWidth), a.Emission,
				renderBar(a.Emission, maxTop, comparisonBarWidth, false)))
		}
	}

	b.WriteString("\n")
	b.WriteString(HeaderStyle.Render("Comparison with Averages"))
	b.WriteString("\n")
	b.WriteString(m.viewComparison())

	if m.savedPath != "" {
		b.WriteString("\n")
		b.WriteString(SubtleStyle.Render("Report saved to " + m.savedPath))
		b.WriteString("\n")
	}
	if m.saveErr != nil {
		b.WriteString("\n")
		b.WriteString(WarnStyle.Render("Report export failed: " + m.saveErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("s save report · e edit · b country · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) viewComparison() string {
	var b strings.Builder

	above := m.comparison.Classification.String() == "above world average"

	type bar struct {
		label string
		value float64
		you   bool
	}
	bars := []bar{{label: "You", value: m.result.GrandTotal, you: true}}
	maxValue := m.result.GrandTotal
	for _, entry := range m.comparison.Entries {
		if entry.Average == nil {
			continue
		}
		bars = append(bars, bar{label: entry.Label, value: *entry.Average})
		if *entry.Average > maxValue {
			maxValue = *entry.Average
		}
	}

	for _, row := range bars {
		rendered := renderBar(row.value, maxValue, comparisonBarWidth, row.you && above)
		b.WriteString(fmt.Sprintf("%s%8.1f  %s\n", padRight(row.label, activityColWidth), row.value, rendered))
	}

	b.WriteString(SubtleStyle.Render("Your footprint is " + m.comparison.Classification.String() + "."))
	b.WriteString("\n")
	for _, note := range m.comparison.Notes {
		b.WriteString(SubtleStyle.Render("Note: " + note))
		b.WriteString("\n")
	}
	return b.String()
}

// renderBar draws a proportional bar; warn switches to the
// above-average color for the user's own bar.
func renderBar(value, max float64, width int, warn bool) string {
	if value <= 0 || max <= 0 {
		return ""
	}
	n := int(value / max * float64(width))
	if n < 1 {
		n = 1
	}
	if n > width {
		n = width
	}
	bar := strings.Repeat("█", n)
	if warn {
		return WarnStyle.Render(bar)
	}
	return SelectedRowStyle.Render(bar)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s[:width-2] + "  "
	}
	return s + strings.Repeat(" ", width-len(s))
}
