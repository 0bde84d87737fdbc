package archive_test

import (
	"testing"
	"time"

	"pos/internal/core/domain/model/archive"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, table string) *order.Order {
	t.Helper()
	item, err := order.NewItem("Burger", 1, nil)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.MustNewTable(table), time.Now(), []order.Item{item})
	require.NoError(t, err)
	return o
}

func TestDayKey(t *testing.T) {
	// 00:30 in UTC+2 is still the previous day in UTC
	local := time.Date(2025, 3, 2, 0, 30, 0, 0, time.FixedZone("EET", 2*3600))

	assert.Equal(t, "2025-03-01", archive.DayKey(local))
}

func TestNewEntry(t *testing.T) {
	o := newOrder(t, "5")
	at := time.Date(2025, 3, 1, 22, 0, 0, 0, time.UTC)

	entry, err := archive.NewEntry(o, at)

	require.NoError(t, err)
	require.NoError(t, entry.Validate())
	assert.Equal(t, "2025-03-01", entry.Day())
	assert.Same(t, o, entry.Order())

	_, err = archive.NewEntry(nil, at)
	assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	assert.Equal(t, archive.ErrEntryIsNotConstructed, archive.Entry{}.Validate())
}

func TestNewLog(t *testing.T) {
	day1 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	e1, _ := archive.NewEntry(newOrder(t, "1"), day2)
	e2, _ := archive.NewEntry(newOrder(t, "2"), day1)
	e3, _ := archive.NewEntry(newOrder(t, "3"), day2)

	log := archive.NewLog([]archive.Entry{e1, e2, e3})

	assert.Equal(t, []string{"2025-03-01", "2025-03-02"}, log.Days())
	require.Len(t, log.Entries("2025-03-02"), 2)
	assert.Equal(t, "1", log.Entries("2025-03-02")[0].Order().Table().String())
	assert.Equal(t, "3", log.Entries("2025-03-02")[1].Order().Table().String())
	assert.Empty(t, log.Entries("2025-01-01"))
	assert.True(t, archive.NewLog(nil).IsEmpty())
}
