// Package fixture loads starting inventories from YAML.
package fixture

import (
	_ "embed"
	"fmt"
	"os"

	"shelf_life/inventory/internal/logic"

	"github.com/juju/errors"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultFixture []byte

// entry mirrors one YAML list element. Category is optional and overrides
// classification by name when present.
type entry struct {
	Name     string          `yaml:"name"`
	SellIn   int             `yaml:"sell_in"`
	Quality  int             `yaml:"quality"`
	Category *logic.Category `yaml:"category"`
}

// Default returns the shop's opening stock.
func Default() []logic.Item {
	items, err := Parse(defaultFixture)
	if err != nil {
		panic(fmt.Sprintf("embedded fixture is invalid: %v", err))
	}
	return items
}

// Load reads a fixture file from disk.
func Load(path string) ([]logic.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read fixture file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML list of items.
func Parse(data []byte) ([]logic.Item, error) {
	var entries []entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, errors.NewNotValid(err, "could not parse fixture")
	}

	items := make([]logic.Item, 0, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return nil, errors.NotValidf("fixture entry %d without name", i)
		}
		if e.Category != nil {
			items = append(items, logic.NewItemWithCategory(e.Name, *e.Category, e.SellIn, e.Quality))
			continue
		}
		items = append(items, logic.NewItem(e.Name, e.SellIn, e.Quality))
	}
	return items, nil
}
