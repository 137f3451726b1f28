package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 30, 0, 0, time.UTC)
}

func TestFormatISO(t *testing.T) {
	assert.Equal(t, "2024-03-09", FormatISO(date(2024, time.March, 9)))
}

func TestStartAndEndOfDay(t *testing.T) {
	d := date(2024, time.March, 9)

	start := StartOfDay(d)
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, d.Day(), start.Day())

	end := EndOfDay(d)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, d.Day(), end.Day())
	assert.True(t, end.After(start))
}

func TestAddBusinessDays(t *testing.T) {
	// 2024-03-08 is a Friday.
	friday := date(2024, time.March, 8)

	next := AddBusinessDays(friday, 1)
	assert.Equal(t, time.Monday, next.Weekday())
	assert.Equal(t, 11, next.Day())

	week := AddBusinessDays(friday, 5)
	assert.Equal(t, time.Friday, week.Weekday())
	assert.Equal(t, 15, week.Day())

	back := AddBusinessDays(friday, -1)
	assert.Equal(t, time.Thursday, back.Weekday())

	same := AddBusinessDays(friday, 0)
	assert.Equal(t, friday, same)
}

func TestAddBusinessDays_FromWeekend(t *testing.T) {
	// 2024-03-09 is a Saturday; one business day ahead is Monday.
	saturday := date(2024, time.March, 9)
	assert.Equal(t, time.Monday, AddBusinessDays(saturday, 1).Weekday())
}

func TestRandomBetween(t *testing.T) {
	from := date(2020, time.January, 1)
	to := date(2024, time.December, 31)

	for i := 0; i < 100; i++ {
		got := RandomBetween(from, to)
		assert.False(t, got.Before(from))
		assert.False(t, got.After(to))
	}

	// Swapped bounds still work.
	got := RandomBetween(to, from)
	assert.False(t, got.Before(from))
	assert.False(t, got.After(to))

	assert.Equal(t, from, RandomBetween(from, from))
}

func TestExpiry(t *testing.T) {
	issue := date(2024, time.March, 9)

	assert.Equal(t, "2703", ExpiryYYMM(issue, 3))
	assert.Equal(t, "03/27", ExpiryCardFace(issue, 3))
	assert.Equal(t, "2903", ExpiryYYMM(issue, 5))
}
