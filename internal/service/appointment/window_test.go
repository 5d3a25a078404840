package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekOf(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		wantStart string
		wantEnd   string
	}{
		{"friday", "2024-03-15", "2024-03-10", "2024-03-16"},
		{"sunday maps to itself", "2024-03-10", "2024-03-10", "2024-03-16"},
		{"saturday", "2024-03-16", "2024-03-10", "2024-03-16"},
		{"across month boundary", "2024-04-02", "2024-03-31", "2024-04-06"},
		{"across year boundary", "2025-01-01", "2024-12-29", "2025-01-04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := time.ParseInLocation(dateLayout, tt.date, time.Local)
			assert.NoError(t, err)

			w := WeekOf(d)

			assert.Equal(t, tt.wantStart, w.Start.Format(dateLayout))
			assert.Equal(t, tt.wantEnd, w.End.Format(dateLayout))
			assert.Equal(t, time.Sunday, w.Start.Weekday())
			assert.Equal(t, time.Saturday, w.End.Weekday())
			assert.True(t, w.Contains(d))
		})
	}
}

func TestWeekOfBounds(t *testing.T) {
	d := time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local)
	w := WeekOf(d)

	assert.Equal(t, 0, w.Start.Hour())
	assert.Equal(t, 0, w.Start.Minute())
	assert.Equal(t, 0, w.Start.Second())

	assert.Equal(t, 23, w.End.Hour())
	assert.Equal(t, 59, w.End.Minute())
	assert.Equal(t, 59, w.End.Second())
	assert.Equal(t, 999000000, w.End.Nanosecond())

	// Inclusive at both ends, exclusive just outside.
	assert.True(t, w.Contains(w.Start))
	assert.True(t, w.Contains(w.End))
	assert.False(t, w.Contains(w.Start.Add(-time.Millisecond)))
	assert.False(t, w.Contains(w.End.Add(time.Millisecond)))
}

func TestWindowString(t *testing.T) {
	d := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "2024-03-10 to 2024-03-16", WeekOf(d).String())
}
