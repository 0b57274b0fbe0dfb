//go:build unit

package booking_test

import (
	"testing"
	"time"

	"fleetbook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-01-05 is a Monday.
var monday = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

func mustWindow(t *testing.T, start, end time.Time) booking.Window {
	t.Helper()
	w, err := booking.NewWindow(start, end)
	require.NoError(t, err)
	return w
}

func TestTieredPricer(t *testing.T) {
	pricer := booking.NewTieredPricer(booking.DefaultTariff())

	t.Run("rejects zero window", func(t *testing.T) {
		_, err := pricer.Price(10, booking.Window{}, monday)
		assert.ErrorIs(t, err, booking.ErrInvalidRange)
	})

	t.Run("free period", func(t *testing.T) {
		// Entirely inside [now, now+24h): free regardless of rate or weekday.
		w := mustWindow(t, monday.Add(10*time.Hour), monday.Add(14*time.Hour))
		cost, err := pricer.Price(1000, w, monday)
		require.NoError(t, err)
		assert.Equal(t, 0, cost)
	})

	t.Run("single paid weekday", func(t *testing.T) {
		// now = Monday 00:00, booking Wednesday 10:00-14:00: fully paid,
		// 4 hours under the 10-hour weekday ceiling at 10 credits/hour.
		wednesday := monday.AddDate(0, 0, 2)
		w := mustWindow(t, wednesday.Add(10*time.Hour), wednesday.Add(14*time.Hour))
		cost, err := pricer.Price(10, w, monday)
		require.NoError(t, err)
		assert.Equal(t, 40, cost)
	})

	t.Run("weekday ceiling caps long day", func(t *testing.T) {
		wednesday := monday.AddDate(0, 0, 2)
		w := mustWindow(t, wednesday.Add(6*time.Hour), wednesday.Add(22*time.Hour))
		cost, err := pricer.Price(10, w, monday)
		require.NoError(t, err)
		assert.Equal(t, 100, cost)
	})

	t.Run("weekend ceiling", func(t *testing.T) {
		// Saturday 00:00 to Sunday 00:00 spans 24 hours on a weekend
		// day: capped at 15 chargeable hours, and the last day
		// contributes nothing at midnight.
		saturday := monday.AddDate(0, 0, 5)
		w := mustWindow(t, saturday, saturday.AddDate(0, 0, 1))
		cost, err := pricer.Price(10, w, monday)
		require.NoError(t, err)
		assert.Equal(t, 150, cost)
	})

	t.Run("window straddling free period boundary", func(t *testing.T) {
		// Paid start snaps to now+24h; only Tuesday 00:00-20:00 is
		// chargeable, capped at the weekday ceiling.
		w := mustWindow(t, monday.Add(12*time.Hour), monday.Add(44*time.Hour))
		cost, err := pricer.Price(10, w, monday)
		require.NoError(t, err)
		assert.Equal(t, 100, cost)
	})

	t.Run("multi-day span", func(t *testing.T) {
		// Wednesday 08:00 - Saturday 13:00 at 1 credit/hour:
		// Wed 16h capped to 10, Thu 10, Fri 10, Sat 13h under the
		// 15-hour weekend ceiling.
		wednesday := monday.AddDate(0, 0, 2)
		w := mustWindow(t, wednesday.Add(8*time.Hour), wednesday.AddDate(0, 0, 3).Add(13*time.Hour))
		cost, err := pricer.Price(1, w, monday)
		require.NoError(t, err)
		assert.Equal(t, 10+10+10+13, cost)
	})

	t.Run("monotonic in window length", func(t *testing.T) {
		// Widening the end without crossing the free-period boundary
		// never decreases cost.
		wednesday := monday.AddDate(0, 0, 2)
		start := wednesday.Add(9 * time.Hour)
		prev := 0
		for h := 1; h <= 48; h++ {
			w := mustWindow(t, start, start.Add(time.Duration(h)*time.Hour))
			cost, err := pricer.Price(7, w, monday)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, cost, prev, "cost must not decrease at %dh", h)
			prev = cost
		}
	})

	t.Run("zero rate", func(t *testing.T) {
		wednesday := monday.AddDate(0, 0, 2)
		w := mustWindow(t, wednesday, wednesday.Add(30*time.Hour))
		cost, err := pricer.Price(0, w, monday)
		require.NoError(t, err)
		assert.Equal(t, 0, cost)
	})
}
