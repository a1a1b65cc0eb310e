// Package catalog defines the closed-world set of trackable activities
// and their grouping into the four questionnaire categories.
//
// The catalog is the single source of truth for which activity IDs
// exist and which category each belongs to. The aggregation engine and
// the report assembler both resolve categories through it, so an
// activity can never be counted under two categories.
package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is one of the four fixed questionnaire groupings.
type Category int

const (
	// Transport covers flights, trains, and road vehicles.
	Transport Category = iota
	// Food covers meat, staples, and beverage consumption.
	Food
	// EnergyWater covers household electricity and water use.
	EnergyWater
	// Lodging covers hotel stays.
	Lodging
)

// Categories lists all categories in questionnaire tab order.
var Categories = []Category{Transport, Food, EnergyWater, Lodging} //nolint:gochecknoglobals // Fixed enumeration, never mutated.

// String returns the human-facing category label.
func (c Category) String() string {
	switch c {
	case Transport:
		return "Transport"
	case Food:
		return "Food"
	case EnergyWater:
		return "Energy & Water"
	case Lodging:
		return "Lodging"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// activitiesByCategory declares the catalog. Declaration order inside
// each category is meaningful: it is the tie-break order for equal
// emissions in top-activity rankings.
var activitiesByCategory = map[Category][]string{ //nolint:gochecknoglobals // Immutable catalog data.
	Transport: {
		"Domestic_flight", "International_flight", "Diesel_train_local",
		"Diesel_train_long", "Electric_train", "Bus", "Petrol_car",
		"Ev_car", "Ev_scooter", "Motorcycle", "Diesel_car",
	},
	Food: {
		"Beef", "Poultry", "Pork", "Dairy", "Fish_products", "Rice",
		"Sugar", "Oils_fats", "Other_food", "Beverages", "Other_meat",
	},
	EnergyWater: {
		"Electricity", "Water",
	},
	Lodging: {
		"Hotel_stay",
	},
}

// displayNames maps activity IDs to their curated labels. IDs absent
// here fall back to a generic transformation in DisplayName.
var displayNames = map[string]string{ //nolint:gochecknoglobals // Immutable catalog data.
	"Domestic_flight":      "Domestic Flights",
	"International_flight": "International Flights",
	"Diesel_train_local":   "Diesel Local Train",
	"Diesel_train_long":    "Diesel Long-Dist Train",
	"Electric_train":       "Electric Train",
	"Bus":                  "Bus",
	"Petrol_car":           "Petrol Car",
	"Motorcycle":           "Motorcycle",
	"Ev_scooter":           "E-Scooter",
	"Ev_car":               "Electric Car",
	"Diesel_car":           "Diesel Car",
	"Beef":                 "Beef Products",
	"Poultry":              "Poultry Products",
	"Beverages":            "Beverages",
	"Pork":                 "Pork Products",
	"Fish_products":        "Fish Products",
	"Other_meat":           "Other Meat Products",
	"Rice":                 "Rice",
	"Sugar":                "Sugar",
	"Oils_fats":            "Veg Oils/Fats",
	"Dairy":                "Dairy Products",
	"Other_food":           "Other Food",
	"Water":                "Water",
	"Electricity":          "Electricity",
	"Hotel_stay":           "Hotel Stay",
}

// Catalog is the immutable activity catalog. Construct it once with New
// and share it freely; it is safe for concurrent reads.
type Catalog struct {
	categoryOf map[string]Category
	order      map[string]int
	all        []string
}

// New builds the catalog and verifies the partition invariant: every
// declared activity belongs to exactly one category. A violation is a
// programming/configuration error and aborts construction.
func New() (*Catalog, error) {
	c := &Catalog{
		categoryOf: make(map[string]Category),
		order:      make(map[string]int),
	}

	idx := 0
	for _, cat := range Categories {
		for _, id := range activitiesByCategory[cat] {
			if prev, dup := c.categoryOf[id]; dup {
				return nil, fmt.Errorf("%w: %q in both %s and %s", ErrPartitionViolated, id, prev, cat)
			}
			c.categoryOf[id] = cat
			c.order[id] = idx
			c.all = append(c.all, id)
			idx++
		}
	}

	if len(c.all) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", ErrPartitionViolated)
	}
	return c, nil
}

// Activities returns all activity IDs in declaration order.
// The returned slice is a copy.
func (c *Catalog) Activities() []string {
	out := make([]string, len(c.all))
	copy(out, c.all)
	return out
}

// ActivitiesIn returns the activity IDs of one category, in declaration order.
func (c *Catalog) ActivitiesIn(cat Category) []string {
	src := activitiesByCategory[cat]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// CategoryOf resolves the category of an activity ID. The second return
// is false for IDs outside the catalog.
func (c *Catalog) CategoryOf(id string) (Category, bool) {
	cat, ok := c.categoryOf[id]
	return cat, ok
}

// Known reports whether id is part of the catalog.
func (c *Catalog) Known(id string) bool {
	_, ok := c.categoryOf[id]
	return ok
}

// DeclarationIndex returns the catalog-wide declaration position of id,
// used as a deterministic tie-break when ranking activities.
func (c *Catalog) DeclarationIndex(id string) int {
	if i, ok := c.order[id]; ok {
		return i
	}
	return len(c.all)
}

// DisplayName returns the human label for an activity ID. IDs without a
// curated label get a generic transformation (separators replaced,
// words title-cased) so every activity always has a renderable name.
func DisplayName(id string) string {
	if name, ok := displayNames[id]; ok {
		return name
	}
	// cases.Caser carries internal state, so build one per call.
	return cases.Title(language.English).String(strings.ReplaceAll(id, "_", " "))
}
