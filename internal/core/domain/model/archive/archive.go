// Package archive models the day-partitioned log of orders removed from the
// live store. Entries are appended when orders are cleared and only disappear
// through an explicit reset.
package archive

import (
	"errors"
	"slices"
	"time"

	"pos/internal/core/domain/model/order"
)

// DayLayout formats the calendar-day key of an archive partition.
const DayLayout = "2006-01-02"

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// DayKey returns the UTC calendar day t falls on.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// Entry is a snapshot of one order, taken when it was cleared.
type Entry struct {
	day        string
	archivedAt time.Time
	order      *order.Order
}

// NewEntry snapshots o into the partition of archivedAt.
func NewEntry(o *order.Order, archivedAt time.Time) (Entry, error) {
	if err := o.Validate(); err != nil {
		return Entry{}, err
	}
	return Entry{
		day:        DayKey(archivedAt),
		archivedAt: order.NormalizeTime(archivedAt),
		order:      o,
	}, nil
}

func (e Entry) Validate() error {
	if e.order == nil {
		return ErrEntryIsNotConstructed
	}
	return nil
}

func (e Entry) Day() string {
	return e.day
}

func (e Entry) ArchivedAt() time.Time {
	return e.archivedAt
}

func (e Entry) Order() *order.Order {
	return e.order
}

// Log is a read view over archive entries grouped by day.
type Log struct {
	days    []string
	entries map[string][]Entry
}

// NewLog groups entries by day. Entries keep their relative order within a day.
func NewLog(entries []Entry) Log {
	l := Log{entries: make(map[string][]Entry)}
	for _, e := range entries {
		if _, ok := l.entries[e.day]; !ok {
			l.days = append(l.days, e.day)
		}
		l.entries[e.day] = append(l.entries[e.day], e)
	}
	slices.Sort(l.days)
	return l
}

// Days returns the partition keys in ascending order.
func (l Log) Days() []string {
	return slices.Clone(l.days)
}

func (l Log) Entries(day string) []Entry {
	return slices.Clone(l.entries[day])
}

func (l Log) IsEmpty() bool {
	return len(l.days) == 0
}
