package logic

import (
	"strings"

	"github.com/juju/errors"
)

// Category decides which aging rule applies to an item.
type Category int

const (
	Normal Category = iota
	AgedCheese
	BackstagePass
	Conjured
	Legendary
)

var categoryNames = map[Category]string{
	Normal:        "normal",
	AgedCheese:    "aged_cheese",
	BackstagePass: "backstage_pass",
	Conjured:      "conjured",
	Legendary:     "legendary",
}

// classifiers are checked in order, first match wins.
var classifiers = []struct {
	marker   string
	category Category
}{
	{"sulfuras", Legendary},
	{"aged brie", AgedCheese},
	{"backstage", BackstagePass},
	{"conjured", Conjured},
}

// Classify derives the category of an item from its display name.
func Classify(name string) Category {
	lower := strings.ToLower(name)
	for _, c := range classifiers {
		if strings.Contains(lower, c.marker) {
			return c.category
		}
	}
	return Normal
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseCategory is the inverse of String.
func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for c, name := range categoryNames {
		if name == key {
			return c, nil
		}
	}
	return Normal, errors.NotValidf("category %q", s)
}

func (c Category) MarshalText() ([]byte, error) {
	if _, ok := categoryNames[c]; !ok {
		return nil, errors.NotValidf("category %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
