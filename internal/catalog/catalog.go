package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"bluebus/internal/domain/models"
)

// Catalog is the static bus inventory and the served locations. It is
// configuration input for the wizard, not data the core computes.
type Catalog struct {
	Buses     []models.Bus `json:"buses"`
	Locations []string     `json:"locations"`
}

// Default returns the built-in single-operator catalog.
func Default() Catalog {
	return Catalog{
		Buses: []models.Bus{
			{Name: "Royal Express", Type: "AC Sleeper", Rows: 5, Cols: 6, Fare: 1200},
			{Name: "Urban Connect", Type: "Non-AC Seater", Rows: 3, Cols: 7, Fare: 700},
			{Name: "Elite Ride", Type: "AC Volvo", Rows: 2, Cols: 8, Fare: 1600},
		},
		Locations: []string{"Delhi", "Mumbai", "Bangalore", "Chennai", "Hyderabad"},
	}
}

// Load reads a catalog override from a JSON file. An empty path
// returns the default catalog.
func Load(path string) (Catalog, error) {
	if strings.TrimSpace(path) == "" {
		cat := Default()
		return cat, cat.Validate()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog file: %w", err)
	}
	var cat Catalog
	if err := json.Unmarshal(raw, &cat); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog file: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}

// Validate rejects catalogs the seat generator cannot serve. Rows are
// capped at 26 because seat rows are labeled A..Z.
func (c Catalog) Validate() error {
	if len(c.Buses) == 0 {
		return fmt.Errorf("catalog has no buses")
	}
	seen := make(map[string]struct{}, len(c.Buses))
	for _, b := range c.Buses {
		name := strings.TrimSpace(b.Name)
		if name == "" {
			return fmt.Errorf("catalog bus with empty name")
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("duplicate catalog bus %q", name)
		}
		seen[name] = struct{}{}
		if b.Rows < 1 || b.Rows > 26 {
			return fmt.Errorf("bus %q: rows must be 1..26", name)
		}
		if b.Cols < 1 {
			return fmt.Errorf("bus %q: cols must be at least 1", name)
		}
		if b.Fare < 0 {
			return fmt.Errorf("bus %q: fare must not be negative", name)
		}
	}
	if len(c.Locations) < 2 {
		return fmt.Errorf("catalog needs at least two locations")
	}
	return nil
}

// FindBus looks up an offering by name (case-insensitive).
func (c Catalog) FindBus(name string) (models.Bus, bool) {
	name = strings.TrimSpace(name)
	for _, b := range c.Buses {
		if strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return models.Bus{}, false
}
