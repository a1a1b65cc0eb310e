// Package tui implements the interactive questionnaire wizard: country
// selection, four category tabs of quantity inputs, an explicit
// calculation gate, and the results view.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/keanyaoha/greenprint/internal/catalog"
	"github.com/keanyaoha/greenprint/internal/footprint"
	"github.com/keanyaoha/greenprint/internal/greenops"
	"github.com/keanyaoha/greenprint/internal/logging"
	"github.com/keanyaoha/greenprint/internal/refdata"
	"github.com/keanyaoha/greenprint/internal/report"
	"github.com/keanyaoha/greenprint/internal/session"
)

// WizardState represents the current screen of the wizard.
type WizardState int

const (
	// StateCountrySelect is the country picker with fuzzy filtering.
	StateCountrySelect WizardState = iota
	// StateEditing is the category-tab questionnaire.
	StateEditing
	// StateResults shows the computed footprint and comparison.
	StateResults
	// StateQuitting indicates the wizard is exiting.
	StateQuitting
	// StateError indicates an unrecoverable error.
	StateError
)

// Default dimensions before the first WindowSizeMsg arrives.
const (
	wizardDefaultWidth  = 80
	wizardDefaultHeight = 24
)

// reportFileName is where the results view saves the report document.
const reportFileName = "greenprint_report.txt"

// reportSavedMsg is sent when a report export attempt completes.
type reportSavedMsg struct {
	path string
	err  error
}

// Model is the Bubble Tea model for the questionnaire wizard.
type Model struct {
	ctx  context.Context
	sess *session.Session
	cat  *catalog.Catalog

	state WizardState

	// Country selection.
	countries     []string
	filtered      []string
	filter        textinput.Model
	countryCursor int

	// Questionnaire editing.
	focusedRow int
	editMode   bool
	editInput  textinput.Model
	editErr    string

	// Results.
	result     *footprint.Result
	comparison *footprint.Comparison
	equiv      greenops.Equivalency
	savedPath  string
	saveErr    error

	err    error
	width  int
	height int
}

// NewModel creates the wizard model over a fresh session.
func NewModel(ctx context.Context, store *refdata.Store, cat *catalog.Catalog, sess *session.Session) *Model {
	filter := textinput.New()
	filter.Placeholder = "type to filter countries"
	filter.Prompt = "> "
	filter.Focus()

	edit := textinput.New()
	edit.Prompt = ""
	edit.CharLimit = 12

	countries := store.Countries()

	return &Model{
		ctx:       ctx,
		sess:      sess,
		cat:       cat,
		state:     StateCountrySelect,
		countries: countries,
		filtered:  countries,
		filter:    filter,
		editInput: edit,
		width:     wizardDefaultWidth,
		height:    wizardDefaultHeight,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case reportSavedMsg:
		m.savedPath = msg.path
		m.saveErr = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

//nolint:exhaustive // Only relevant key types are handled per state.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.state = StateQuitting
		return m, tea.Quit
	}

	switch m.state {
	case StateCountrySelect:
		return m.updateCountrySelect(msg)
	case StateEditing:
		return m.updateEditing(msg)
	case StateResults:
		return m.updateResults(msg)
	case StateQuitting, StateError:
		return m, tea.Quit
	}
	return m, nil
}

//nolint:exhaustive // Only relevant key types are handled.
func (m *Model) updateCountrySelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = StateQuitting
		return m, tea.Quit

	case tea.KeyUp:
		if m.countryCursor > 0 {
			m.countryCursor--
		}
		return m, nil

	case tea.KeyDown:
		if m.countryCursor < len(m.filtered)-1 {
			m.countryCursor++
		}
		return m, nil

	case tea.KeyEnter:
		if len(m.filtered) == 0 {
			return m, nil
		}
		country := m.filtered[m.countryCursor]
		if err := m.sess.SelectCountry(m.ctx, country); err != nil {
			m.err = err
			m.state = StateError
			return m, tea.Quit
		}
		m.state = StateEditing
		m.focusedRow = 0
		m.result = nil
		m.comparison = nil
		m.savedPath = ""
		m.saveErr = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyCountryFilter()
	return m, cmd
}

// applyCountryFilter narrows the country list with a ranked fuzzy
// match, keeping full-list order for an empty query.
func (m *Model) applyCountryFilter() {
	query := strings.TrimSpace(m.filter.Value())
	if query == "" {
		m.filtered = m.countries
	} else {
		ranks := fuzzy.RankFindNormalizedFold(query, m.countries)
		sort.Sort(ranks)
		filtered := make([]string, 0, len(ranks))
		for _, r := range ranks {
			filtered = append(filtered, r.Target)
		}
		m.filtered = filtered
	}
	if m.countryCursor >= len(m.filtered) {
		m.countryCursor = 0
	}
}

//nolint:exhaustive // Only relevant key types are handled.
func (m *Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editMode {
		return m.updateEditMode(msg)
	}

	activities := m.currentActivities()

	switch msg.Type {
	case tea.KeyLeft, tea.KeyShiftTab:
		m.sess.PrevTab()
		m.clampRow()
		return m, nil

	case tea.KeyRight, tea.KeyTab:
		m.sess.NextTab()
		m.clampRow()
		return m, nil

	case tea.KeyUp:
		if m.focusedRow > 0 {
			m.focusedRow--
		}
		return m, nil

	case tea.KeyDown:
		if m.focusedRow < len(activities)-1 {
			m.focusedRow++
		}
		return m, nil

	case tea.KeyEnter:
		if len(activities) == 0 {
			return m, nil
		}
		m.editMode = true
		m.editErr = ""
		m.editInput.SetValue(trimFloat(m.sess.Quantity(activities[m.focusedRow])))
		m.editInput.CursorEnd()
		m.editInput.Focus()
		return m, textinput.Blink

	case tea.KeySpace:
		m.sess.SetConfirmed(!m.sess.Confirmed())
		return m, nil

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			m.state = StateQuitting
			return m, tea.Quit
		case "b":
			// Back to country selection. Selecting a different country
			// there resets the session.
			m.state = StateCountrySelect
			m.filter.SetValue("")
			m.applyCountryFilter()
			return m, textinput.Blink
		case "c":
			return m.calculate()
		}
	}

	return m, nil
}

//nolint:exhaustive // Only relevant key types are handled.
func (m *Model) updateEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		raw := strings.TrimSpace(m.editInput.Value())
		quantity := 0.0
		if raw != "" {
			parsed, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				m.editErr = fmt.Sprintf("%q is not a number", raw)
				return m, nil
			}
			quantity = parsed
		}

		activities := m.currentActivities()
		if err := m.sess.SetQuantity(activities[m.focusedRow], quantity); err != nil {
			m.editErr = err.Error()
			return m, nil
		}
		m.editMode = false
		m.editInput.Blur()
		return m, nil

	case tea.KeyEsc:
		m.editMode = false
		m.editErr = ""
		m.editInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func (m *Model) calculate() (tea.Model, tea.Cmd) {
	result, comparison, err := m.sess.Calculate(m.ctx)
	if err != nil {
		// Missing confirmation is a gate, not a failure: surface it as
		// an inline hint and stay in the questionnaire.
		if errors.Is(err, session.ErrNotConfirmed) {
			m.editErr = "confirm your entries first (press space)"
			return m, nil
		}
		m.err = err
		m.state = StateError
		return m, tea.Quit
	}

	m.result = result
	m.comparison = comparison
	m.equiv, _ = greenops.ForMonthlyTotal(result.GrandTotal)
	m.savedPath = ""
	m.saveErr = nil
	m.state = StateResults
	return m, nil
}

//nolint:exhaustive // Only relevant key types are handled.
func (m *Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = StateEditing
		return m, nil

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			m.state = StateQuitting
			return m, tea.Quit
		case "e":
			m.state = StateEditing
			return m, nil
		case "b":
			m.state = StateCountrySelect
			m.filter.SetValue("")
			m.applyCountryFilter()
			return m, textinput.Blink
		case "s":
			return m, m.saveReport()
		}
	}
	return m, nil
}

// saveReport exports the report document in a command so a slow disk
// never blocks the UI loop.
func (m *Model) saveReport() tea.Cmd {
	bundle := report.Bundle{
		Result:      m.result,
		Comparison:  m.comparison,
		Equivalency: m.equiv,
		GeneratedAt: time.Now(),
	}
	ctx := m.ctx

	return func() tea.Msg {
		doc, err := report.Render(bundle)
		if err == nil {
			err = os.WriteFile(reportFileName, doc, 0o644)
		}
		if err != nil {
			// Assembly/export failures never invalidate the computed
			// bundle; the results stay on screen.
			logging.FromContext(ctx).Warn().
				Str("component", "tui").
				Err(err).
				Msg("report export failed")
			return reportSavedMsg{err: err}
		}
		return reportSavedMsg{path: reportFileName}
	}
}

func (m *Model) currentActivities() []string {
	return m.cat.ActivitiesIn(m.sess.CurrentTab())
}

func (m *Model) clampRow() {
	if n := len(m.currentActivities()); m.focusedRow >= n && n > 0 {
		m.focusedRow = n - 1
	}
}

// Err returns the terminal error, if the wizard exited with one.
func (m *Model) Err() error { return m.err }

// trimFloat renders a quantity without trailing zero noise.
func trimFloat(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
