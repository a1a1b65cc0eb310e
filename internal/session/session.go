// Package session holds the per-questionnaire mutable state: selected
// country, entered quantities, tab position, and computed results.
//
// All state lives on an explicit Session object passed to each
// operation — never ambient globals — with one deliberate invariant: a
// computed result can never outlive the country it was computed for.
// Changing the country wipes every input and result.
package session

import (
	"context"
	"fmt"

	"github.com/keanyaoha/greenprint/internal/catalog"
	"github.com/keanyaoha/greenprint/internal/footprint"
	"github.com/keanyaoha/greenprint/internal/logging"
	"github.com/keanyaoha/greenprint/internal/refdata"
)

// State is the session lifecycle position.
type State int

const (
	// StateSelectingCountry means no country is active yet; inputs and
	// results do not exist.
	StateSelectingCountry State = iota
	// StateEditing means a country is active and category tabs accept
	// quantities.
	StateEditing
	// StateResultsReady means a calculation has completed for the
	// current inputs.
	StateResultsReady
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateSelectingCountry:
		return "selecting-country"
	case StateEditing:
		return "editing"
	case StateResultsReady:
		return "results-ready"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session is one user's questionnaire run. Not safe for concurrent use;
// each session belongs to a single interaction loop.
type Session struct {
	id      string
	store   *refdata.Store
	engine  *footprint.Engine
	catalog *catalog.Catalog

	state     State
	country   string
	tab       int
	inputs    map[string]float64
	confirmed bool

	result     *footprint.Result
	comparison *footprint.Comparison
}

// New creates a session in the country-selection state.
func New(store *refdata.Store, engine *footprint.Engine, cat *catalog.Catalog) *Session {
	return &Session{
		id:      logging.NewTraceID(),
		store:   store,
		engine:  engine,
		catalog: cat,
		state:   StateSelectingCountry,
		inputs:  make(map[string]float64),
	}
}

// ID returns the session correlation ID.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Country returns the active country, or "" before selection.
func (s *Session) Country() string { return s.country }

// SelectCountry activates a country and moves to editing. Selecting a
// country different from the active one discards all inputs, the
// confirmation flag, and any computed results. Re-selecting the same
// country is a no-op.
func (s *Session) SelectCountry(ctx context.Context, country string) error {
	if !s.store.HasCountry(country) {
		return fmt.Errorf("%w: %q", footprint.ErrUnknownCountry, country)
	}
	if s.state != StateSelectingCountry && country == s.country {
		return nil
	}

	logging.FromContext(ctx).Info().
		Str("component", "session").
		Str("session_id", s.id).
		Str("country", country).
		Bool("reset", s.country != "").
		Msg("country selected")

	s.country = country
	s.state = StateEditing
	s.tab = 0
	s.inputs = make(map[string]float64)
	s.confirmed = false
	s.result = nil
	s.comparison = nil
	return nil
}

// CurrentTab returns the active category tab.
func (s *Session) CurrentTab() catalog.Category {
	return catalog.Categories[s.tab]
}

// NextTab advances one tab, clamped at the last category.
func (s *Session) NextTab() {
	if s.tab < len(catalog.Categories)-1 {
		s.tab++
	}
}

// PrevTab retreats one tab, clamped at the first category.
func (s *Session) PrevTab() {
	if s.tab > 0 {
		s.tab--
	}
}

// SetQuantity records a monthly quantity for an activity. Quantities
// must be nonnegative. Any edit invalidates previously computed
// results: they are recomputed fresh on the next Calculate.
func (s *Session) SetQuantity(activity string, quantity float64) error {
	if s.state == StateSelectingCountry {
		return ErrNoCountry
	}
	if quantity < 0 {
		return fmt.Errorf("%w: %s = %g", ErrNegativeQuantity, activity, quantity)
	}

	s.inputs[activity] = quantity
	if s.state == StateResultsReady {
		s.state = StateEditing
		s.result = nil
		s.comparison = nil
	}
	return nil
}

// Quantity returns the entered quantity for an activity (zero default).
func (s *Session) Quantity(activity string) float64 {
	return s.inputs[activity]
}

// Inputs returns a copy of all entered quantities.
func (s *Session) Inputs() map[string]float64 {
	out := make(map[string]float64, len(s.inputs))
	for k, v := range s.inputs {
		out[k] = v
	}
	return out
}

// SetConfirmed records the explicit user confirmation that gates
// calculation.
func (s *Session) SetConfirmed(confirmed bool) {
	s.confirmed = confirmed
}

// Confirmed reports whether the calculation gate is open.
func (s *Session) Confirmed() bool { return s.confirmed }

// Calculate runs the aggregation and comparison engines over the
// current inputs. It requires an active country and the confirmation
// gate. Results are stored on the session until the next edit or
// country change.
func (s *Session) Calculate(ctx context.Context) (*footprint.Result, *footprint.Comparison, error) {
	if s.state == StateSelectingCountry {
		return nil, nil, ErrNoCountry
	}
	if !s.confirmed {
		return nil, nil, ErrNotConfirmed
	}

	result, err := s.engine.Aggregate(ctx, s.inputs, s.country)
	if err != nil {
		return nil, nil, err
	}
	comparison, err := s.engine.Compare(ctx, result.GrandTotal, s.country)
	if err != nil {
		return nil, nil, err
	}

	s.result = result
	s.comparison = comparison
	s.state = StateResultsReady

	logging.FromContext(ctx).Info().
		Str("component", "session").
		Str("session_id", s.id).
		Str("country", s.country).
		Float64("grand_total", result.GrandTotal).
		Bool("empty", result.Empty()).
		Msg("footprint calculated")

	return result, comparison, nil
}

// Result returns the stored result and comparison, or nils when no
// valid calculation exists for the current inputs.
func (s *Session) Result() (*footprint.Result, *footprint.Comparison) {
	return s.result, s.comparison
}
