//go:build unit

package booking_test

import (
	"testing"
	"time"

	"fleetbook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	startGranularity = 30 * time.Minute
	endGranularity   = time.Hour
	minDuration      = time.Hour
	maxSpan          = 72 * time.Hour
)

func TestAvailableStarts(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("empty calendar returns the full grid", func(t *testing.T) {
		slots := booking.AvailableStarts(nil, day, startGranularity, minDuration)
		require.Len(t, slots, 48)
		assert.Equal(t, day, slots[0])
		assert.Equal(t, day.Add(23*time.Hour+30*time.Minute), slots[47])
	})

	t.Run("reservation removes its start and interior slots", func(t *testing.T) {
		reserved := []booking.Window{
			mustWindow(t, day.Add(10*time.Hour), day.Add(12*time.Hour)),
		}
		slots := booking.AvailableStarts(reserved, day, startGranularity, minDuration)

		assert.NotContains(t, slots, day.Add(10*time.Hour))
		assert.NotContains(t, slots, day.Add(10*time.Hour+30*time.Minute))
		assert.NotContains(t, slots, day.Add(11*time.Hour))
		assert.NotContains(t, slots, day.Add(11*time.Hour+30*time.Minute))
		// The end slot stays bookable when nothing follows closely.
		assert.Contains(t, slots, day.Add(12*time.Hour))
		assert.Len(t, slots, 44)
	})

	t.Run("short gap to the next reservation closes the end slot", func(t *testing.T) {
		reserved := []booking.Window{
			mustWindow(t, day.Add(10*time.Hour), day.Add(12*time.Hour)),
			mustWindow(t, day.Add(12*time.Hour+30*time.Minute), day.Add(14*time.Hour)),
		}
		slots := booking.AvailableStarts(reserved, day, startGranularity, minDuration)

		// No minimum-length booking fits between 12:00 and 12:30.
		assert.NotContains(t, slots, day.Add(12*time.Hour))
	})

	t.Run("full hour gap keeps the end slot", func(t *testing.T) {
		reserved := []booking.Window{
			mustWindow(t, day.Add(10*time.Hour), day.Add(12*time.Hour)),
			mustWindow(t, day.Add(13*time.Hour), day.Add(14*time.Hour)),
		}
		slots := booking.AvailableStarts(reserved, day, startGranularity, minDuration)

		assert.Contains(t, slots, day.Add(12*time.Hour))
		assert.Contains(t, slots, day.Add(12*time.Hour+30*time.Minute))
	})

	t.Run("gap shorter than the minimum duration is fully closed", func(t *testing.T) {
		reserved := []booking.Window{
			mustWindow(t, day.Add(10*time.Hour), day.Add(12*time.Hour)),
			mustWindow(t, day.Add(13*time.Hour+30*time.Minute), day.Add(15*time.Hour)),
		}
		slots := booking.AvailableStarts(reserved, day, startGranularity, 2*time.Hour)

		// The 90-minute gap cannot host a two-hour booking.
		assert.NotContains(t, slots, day.Add(12*time.Hour))
		assert.NotContains(t, slots, day.Add(12*time.Hour+30*time.Minute))
		assert.NotContains(t, slots, day.Add(13*time.Hour))
	})

	t.Run("misaligned reservation blocks the grid slots it covers", func(t *testing.T) {
		reserved := []booking.Window{
			mustWindow(t, day.Add(10*time.Hour+15*time.Minute), day.Add(11*time.Hour+15*time.Minute)),
		}
		slots := booking.AvailableStarts(reserved, day, startGranularity, minDuration)

		assert.NotContains(t, slots, day.Add(10*time.Hour+30*time.Minute))
		assert.NotContains(t, slots, day.Add(11*time.Hour))
		assert.Contains(t, slots, day.Add(10*time.Hour))
		assert.Contains(t, slots, day.Add(11*time.Hour+30*time.Minute))
	})

	t.Run("unsorted input is handled", func(t *testing.T) {
		reserved := []booking.Window{
			mustWindow(t, day.Add(16*time.Hour), day.Add(17*time.Hour)),
			mustWindow(t, day.Add(8*time.Hour), day.Add(9*time.Hour)),
		}
		slots := booking.AvailableStarts(reserved, day, startGranularity, minDuration)

		assert.NotContains(t, slots, day.Add(8*time.Hour))
		assert.NotContains(t, slots, day.Add(16*time.Hour))
	})

	t.Run("never offers an instant strictly inside a reservation", func(t *testing.T) {
		reserved := []booking.Window{
			mustWindow(t, day.Add(2*time.Hour), day.Add(5*time.Hour)),
			mustWindow(t, day.Add(9*time.Hour+40*time.Minute), day.Add(10*time.Hour+35*time.Minute)),
			mustWindow(t, day.Add(20*time.Hour), day.Add(23*time.Hour)),
		}
		slots := booking.AvailableStarts(reserved, day, startGranularity, minDuration)
		for _, s := range slots {
			for _, w := range reserved {
				inside := s.After(w.Start()) && s.Before(w.End())
				assert.False(t, inside, "slot %s falls inside %s", s, w)
			}
		}
	})
}

func TestAvailableEnds(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("open calendar runs to the maximum span", func(t *testing.T) {
		ends := booking.AvailableEnds(nil, start, endGranularity, minDuration, maxSpan)
		require.Len(t, ends, 72)
		assert.Equal(t, start.Add(minDuration), ends[0])
		assert.Equal(t, start.Add(maxSpan), ends[71])
	})

	t.Run("bounded by the next reservation", func(t *testing.T) {
		reserved := []booking.Window{
			mustWindow(t, start.Add(5*time.Hour), start.Add(7*time.Hour)),
		}
		ends := booking.AvailableEnds(reserved, start, endGranularity, minDuration, maxSpan)
		require.Len(t, ends, 5)
		// Ending exactly where the next reservation begins is allowed.
		assert.Equal(t, start.Add(5*time.Hour), ends[4])
	})

	t.Run("reservations before the start are ignored", func(t *testing.T) {
		reserved := []booking.Window{
			mustWindow(t, start.Add(-3*time.Hour), start.Add(-1*time.Hour)),
		}
		ends := booking.AvailableEnds(reserved, start, endGranularity, minDuration, maxSpan)
		assert.Len(t, ends, 72)
	})

	t.Run("invalid parameters yield nothing", func(t *testing.T) {
		assert.Nil(t, booking.AvailableEnds(nil, start, 0, minDuration, maxSpan))
		assert.Nil(t, booking.AvailableEnds(nil, start, endGranularity, minDuration, 30*time.Minute))
	})
}
