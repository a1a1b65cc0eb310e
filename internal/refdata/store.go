// Package refdata loads and serves the reference datasets backing every
// footprint calculation: the activity/country emission factor table and
// the per-capita baseline table.
//
// Both datasets are read once, validated, and frozen. A failed load is
// fatal for the session: every later computation would be meaningless,
// so the error is surfaced immediately and repeated on each access
// rather than silently retried.
package refdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Required column names. The loader matches these exactly (after
// trimming surrounding whitespace, which the upstream export is known
// to carry on some headers).
const (
	activityColumn  = "Activity"
	countryColumn   = "Country"
	perCapitaColumn = "PerCapitaCO2"
)

// Store is the immutable reference data store. Safe for concurrent
// reads after construction; it is never mutated post-load.
type Store struct {
	// factors maps activity ID -> country -> emission factor
	// (kg CO2e per unit of activity). Absent entries mean the factor
	// is unknown for that pair.
	factors map[string]map[string]float64

	// countries is the sorted set of factor-table country columns.
	countries []string

	// baselines maps a country or region name to its monthly
	// per-capita baseline in kg CO2e.
	baselines map[string]float64
}

// Load parses the two reference datasets. factorSrc must be the
// activity×country factor table; baselineSrc the per-capita baseline
// table. Any missing or malformed required column aborts the load.
func Load(factorSrc, baselineSrc io.Reader) (*Store, error) {
	s := &Store{
		factors:   make(map[string]map[string]float64),
		baselines: make(map[string]float64),
	}

	if err := s.loadFactors(factorSrc); err != nil {
		return nil, fmt.Errorf("factor table: %w", err)
	}
	if err := s.loadBaselines(baselineSrc); err != nil {
		return nil, fmt.Errorf("baseline table: %w", err)
	}
	return s, nil
}

func (s *Store) loadFactors(src io.Reader) error {
	r := csv.NewReader(src)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("%w: reading header: %v", ErrMalformedData, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	if len(header) < 2 || header[0] != activityColumn {
		return fmt.Errorf("%w: first column must be %q", ErrMissingColumn, activityColumn)
	}

	countrySet := make(map[string]struct{}, len(header)-1)
	for _, name := range header[1:] {
		if name == "" {
			return fmt.Errorf("%w: empty country column name", ErrMalformedData)
		}
		if _, dup := countrySet[name]; dup {
			return fmt.Errorf("%w: duplicate country column %q", ErrMalformedData, name)
		}
		countrySet[name] = struct{}{}
	}

	for {
		record, readErr := r.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("%w: %v", ErrMalformedData, readErr)
		}

		activity := strings.TrimSpace(record[0])
		if activity == "" {
			return fmt.Errorf("%w: row with empty activity id", ErrMalformedData)
		}

		row := make(map[string]float64, len(header)-1)
		for i, country := range header[1:] {
			cell := strings.TrimSpace(record[i+1])
			if cell == "" {
				// Expected data sparsity: no factor for this pair.
				continue
			}
			factor, parseErr := strconv.ParseFloat(cell, 64)
			if parseErr != nil || math.IsNaN(factor) || math.IsInf(factor, 0) {
				return fmt.Errorf("%w: factor %q for %s/%s", ErrMalformedData, cell, activity, country)
			}
			if factor < 0 {
				return fmt.Errorf("%w: negative factor for %s/%s", ErrMalformedData, activity, country)
			}
			row[country] = factor
		}
		s.factors[activity] = row
	}

	if len(s.factors) == 0 {
		return fmt.Errorf("%w: no factor rows", ErrMalformedData)
	}

	s.countries = make([]string, 0, len(countrySet))
	for name := range countrySet {
		s.countries = append(s.countries, name)
	}
	sort.Strings(s.countries)
	return nil
}

func (s *Store) loadBaselines(src io.Reader) error {
	r := csv.NewReader(src)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("%w: reading header: %v", ErrMalformedData, err)
	}

	countryIdx, perCapitaIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case countryColumn:
			countryIdx = i
		case perCapitaColumn:
			perCapitaIdx = i
		}
	}
	if countryIdx < 0 {
		return fmt.Errorf("%w: %q", ErrMissingColumn, countryColumn)
	}
	if perCapitaIdx < 0 {
		return fmt.Errorf("%w: %q", ErrMissingColumn, perCapitaColumn)
	}

	for {
		record, readErr := r.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("%w: %v", ErrMalformedData, readErr)
		}
		if len(record) <= countryIdx || len(record) <= perCapitaIdx {
			return fmt.Errorf("%w: short row", ErrMalformedData)
		}

		name := strings.TrimSpace(record[countryIdx])
		cell := strings.TrimSpace(record[perCapitaIdx])
		if name == "" || cell == "" {
			// Rows without a usable baseline are simply absent from
			// the comparison lookup, mirroring factor sparsity.
			continue
		}
		baseline, parseErr := strconv.ParseFloat(cell, 64)
		if parseErr != nil || math.IsNaN(baseline) || baseline < 0 {
			return fmt.Errorf("%w: baseline %q for %q", ErrMalformedData, cell, name)
		}
		s.baselines[name] = baseline
	}
	return nil
}

// Factor returns the emission factor for (activity, country). The
// second return is false when the pair has no factor — expected data
// sparsity, not an error.
func (s *Store) Factor(activity, country string) (float64, bool) {
	row, ok := s.factors[activity]
	if !ok {
		return 0, false
	}
	f, ok := row[country]
	return f, ok
}

// HasCountry reports whether country is a column of the factor table.
// Callers must check this before aggregating: an unknown country is a
// caller bug, not missing data.
func (s *Store) HasCountry(country string) bool {
	i := sort.SearchStrings(s.countries, country)
	return i < len(s.countries) && s.countries[i] == country
}

// Countries returns the sorted factor-table countries. The returned
// slice is a copy.
func (s *Store) Countries() []string {
	out := make([]string, len(s.countries))
	copy(out, s.countries)
	return out
}

// Baseline returns the monthly per-capita baseline for a country or
// region name, matched exactly. The second return is false when the
// name has no baseline.
func (s *Store) Baseline(name string) (float64, bool) {
	b, ok := s.baselines[name]
	return b, ok
}
