package vocab

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"lyricvocab/model"
)

// Order selects how a Set is rendered as a sequence.
type Order int

const (
	// OrderWritten collates written forms against each other.
	OrderWritten Order = iota
	// OrderLegacy collates one entry's written form against the other
	// entry's reading. It is not a consistent ordering and only exists for
	// consumers that depend on the old output.
	OrderLegacy
)

var ErrUnknownOrder = errors.New("unknown vocabulary order")

// ParseOrder maps a config value onto an Order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "written":
		return OrderWritten, nil
	case "legacy":
		return OrderLegacy, nil
	default:
		return 0, fmt.Errorf("%w: %q (expected written|legacy)", ErrUnknownOrder, s)
	}
}

func (o Order) String() string {
	switch o {
	case OrderWritten:
		return "written"
	case OrderLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// sortEntries sorts entries in place. A collate.Collator keeps internal
// buffers, so a fresh one is built per call.
func sortEntries(entries []model.Entry, order Order, tag language.Tag) {
	c := collate.New(tag)

	// Byte order first so the result never depends on map iteration.
	slices.SortFunc(entries, compareBytes)

	switch order {
	case OrderLegacy:
		slices.SortStableFunc(entries, func(a, b model.Entry) int {
			return c.CompareString(a.WrittenForm, b.Reading)
		})
	default:
		slices.SortStableFunc(entries, func(a, b model.Entry) int {
			if n := c.CompareString(a.WrittenForm, b.WrittenForm); n != 0 {
				return n
			}
			return c.CompareString(a.Reading, b.Reading)
		})
	}
}

func compareBytes(a, b model.Entry) int {
	if n := strings.Compare(a.WrittenForm, b.WrittenForm); n != 0 {
		return n
	}
	return strings.Compare(a.Reading, b.Reading)
}
