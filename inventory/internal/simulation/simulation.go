// Package simulation drives the aging rule over a run of consecutive days
// and prints the shop's stock after each one.
package simulation

import (
	"bufio"
	"fmt"
	"io"

	"shelf_life/inventory/internal/logic"

	"github.com/juju/errors"
	"github.com/juju/loggo"
)

// DefaultDays is how long a simulation runs unless told otherwise.
const DefaultDays = 30

var logger = loggo.GetLogger("inventory.simulation")

// DayFunc is called after each simulated day with a copy of the stock.
// Day 0 is the opening stock.
type DayFunc func(day int, items []logic.Item) error

// Run prints the opening stock, then ages items once per day for the given
// number of days, printing the stock after each day. Items are mutated in
// place.
func Run(w io.Writer, items []logic.Item, days int, observe DayFunc) error {
	if days < 0 {
		return errors.NotValidf("day count %d", days)
	}

	out := bufio.NewWriter(w)
	for day := 0; day <= days; day++ {
		if day > 0 {
			logic.AdvanceOneDay(items)
		}
		writeDay(out, day, items)

		if observe != nil {
			snapshot := make([]logic.Item, len(items))
			copy(snapshot, items)
			if err := observe(day, snapshot); err != nil {
				_ = out.Flush()
				return fmt.Errorf("observer failed on day %d: %w", day, err)
			}
		}
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write simulation output: %w", err)
	}

	logger.Debugf("simulation complete days=%d items=%d", days, len(items))
	return nil
}

func writeDay(w io.Writer, day int, items []logic.Item) {
	fmt.Fprintf(w, "-------- day %d --------\n", day)
	fmt.Fprintln(w, "name, sellIn, quality")
	for _, item := range items {
		fmt.Fprintf(w, "%s, %d, %d\n", item.Name, item.SellIn, item.Quality)
	}
	fmt.Fprintln(w)
}
