package logic

const (
	MinQuality = 0
	MaxQuality = 50

	// LegendaryQuality is what legendary items are stocked at. Aging never
	// touches it.
	LegendaryQuality = 80
)

const (
	invertRate  = -1
	doubleSpeed = 2

	backstageIncreaseNormal  = 1
	backstageIncreaseUnder10 = 2
	backstageIncreaseUnder5  = 3
)

// Item is a single shelf entry. Category is fixed when the item is built.
type Item struct {
	Name     string   `json:"name" yaml:"name"`
	Category Category `json:"category" yaml:"category"`
	SellIn   int      `json:"sell_in" yaml:"sell_in"`
	Quality  int      `json:"quality" yaml:"quality"`
}

// NewItem builds an item and classifies it from its name.
func NewItem(name string, sellIn, quality int) Item {
	return NewItemWithCategory(name, Classify(name), sellIn, quality)
}

// NewItemWithCategory builds an item with an explicit category, skipping name
// classification.
func NewItemWithCategory(name string, category Category, sellIn, quality int) Item {
	return Item{
		Name:     name,
		Category: category,
		SellIn:   sellIn,
		Quality:  quality,
	}
}

// Expired reports whether the sell-by date has passed.
func (it *Item) Expired() bool {
	return it.SellIn < 0
}

// Age moves the item forward by exactly one day.
func (it *Item) Age() {
	if it.Category == Legendary {
		return
	}

	rate := 1
	if it.Category == AgedCheese {
		rate *= invertRate
	}
	if it.Category == Conjured {
		rate *= doubleSpeed
	}

	it.SellIn--

	switch {
	case it.Expired() && it.Category == BackstagePass:
		it.Quality = 0
	case it.Expired():
		it.Quality -= rate * doubleSpeed
	case it.Category == BackstagePass:
		it.Quality += backstageIncrease(it.SellIn)
	default:
		it.Quality -= rate
	}

	it.Quality = clampQuality(it.Quality)
}

func backstageIncrease(sellIn int) int {
	switch {
	case sellIn < 5:
		return backstageIncreaseUnder5
	case sellIn < 10:
		return backstageIncreaseUnder10
	default:
		return backstageIncreaseNormal
	}
}

func clampQuality(q int) int {
	return max(MinQuality, min(q, MaxQuality))
}

// AdvanceOneDay ages every item in place.
func AdvanceOneDay(items []Item) {
	for i := range items {
		items[i].Age()
	}
}
