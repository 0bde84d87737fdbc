package kernel

import (
	"strconv"
	"strings"

	"pos/internal/pkg/errs"
)

// DefaultTableCount is used when the menu document does not configure a table count.
const DefaultTableCount = 40

// ErrTableIsNotConstructed is returned when validating a zero-value Table.
var ErrTableIsNotConstructed = errs.NewValueIsRequiredError("table must be created via NewTable or NewTableNumber")

// Table is the label of a physical seating unit and the key orders are grouped by.
//
// Labels are trimmed. Numeric labels are canonicalised ("07" and "7" are the same
// table) so that a table typed by a waiter and a table number sent by a client
// compare equal. Non-numeric labels such as "bar" are accepted as-is.
type Table struct {
	label string
}

// NewTable creates a Table from a raw label.
//
// Example:
//
//	table, err := kernel.NewTable(" 05 ")
//	// table.String() == "5"
func NewTable(label string) (Table, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Table{}, errs.NewValueIsRequiredError("table")
	}
	if n, err := strconv.Atoi(label); err == nil {
		label = strconv.Itoa(n)
	}
	return Table{label: label}, nil
}

// NewTableNumber creates a Table for a numbered seat.
func NewTableNumber(n int) Table {
	return Table{label: strconv.Itoa(n)}
}

// MustNewTable is NewTable for labels known to be valid, e.g. in tests and seed data.
func MustNewTable(label string) Table {
	t, err := NewTable(label)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Table) String() string {
	return t.label
}

// Number returns the table number and true when the label is numeric.
func (t Table) Number() (int, bool) {
	n, err := strconv.Atoi(t.label)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (t Table) IsEqual(other Table) bool {
	return t.label == other.label
}

func (t Table) Validate() error {
	if t.label == "" {
		return ErrTableIsNotConstructed
	}
	return nil
}

// CheckRange rejects numeric labels outside 1..tableCount. Non-numeric labels pass.
func (t Table) CheckRange(tableCount int) error {
	if err := t.Validate(); err != nil {
		return err
	}
	n, ok := t.Number()
	if !ok {
		return nil
	}
	if n < 1 || n > tableCount {
		return errs.NewValueIsOutOfRangeError("table", n, 1, tableCount)
	}
	return nil
}
