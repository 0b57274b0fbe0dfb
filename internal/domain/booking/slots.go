package booking

import (
	"sort"
	"time"
)

// AvailableStarts returns the free start instants across the 24 hours
// beginning at day, on a grid of the given granularity. reserved holds
// the boat's existing windows in any order; they need not align to the
// grid. A grid slot is removed when a reservation covers it, or when it
// falls in a gap between two reservations shorter than minDuration,
// because no minimum-length booking fits there.
func AvailableStarts(reserved []Window, day time.Time, granularity, minDuration time.Duration) []time.Time {
	if granularity <= 0 || minDuration <= 0 {
		return nil
	}

	windows := sortedByStart(reserved)

	dayEnd := day.Add(24 * time.Hour)
	var free []time.Time
	for t := day; t.Before(dayEnd); t = t.Add(granularity) {
		if !startBlocked(windows, t, minDuration) {
			free = append(free, t)
		}
	}
	return free
}

// startBlocked reports whether t cannot begin a booking: it lies inside
// a reservation under half-open semantics, or inside a gap between two
// reservations too small for a minimum-length booking.
func startBlocked(windows []Window, t time.Time, minDuration time.Duration) bool {
	for i, w := range windows {
		if !t.Before(w.start) && t.Before(w.end) {
			return true
		}
		if i+1 < len(windows) &&
			!t.Before(w.end) && t.Before(windows[i+1].start) &&
			windows[i+1].start.Sub(w.end) < minDuration {
			return true
		}
	}
	return false
}

// AvailableEnds returns the candidate end instants for a booking that
// starts at start. The range runs from start+minDuration up to the
// earlier of the next reservation's start strictly after start and
// start+maxSpan, inclusive; ending exactly where the next reservation
// begins is allowed under half-open semantics.
func AvailableEnds(reserved []Window, start time.Time, granularity, minDuration, maxSpan time.Duration) []time.Time {
	if granularity <= 0 || minDuration <= 0 || maxSpan < minDuration {
		return nil
	}

	upper := start.Add(maxSpan)
	for _, w := range sortedByStart(reserved) {
		if w.start.After(start) {
			if w.start.Before(upper) {
				upper = w.start
			}
			break
		}
	}

	var ends []time.Time
	for t := start.Add(minDuration); !t.After(upper); t = t.Add(granularity) {
		ends = append(ends, t)
	}
	return ends
}

func sortedByStart(reserved []Window) []Window {
	windows := make([]Window, len(reserved))
	copy(windows, reserved)
	sort.Slice(windows, func(i, j int) bool {
		return windows[i].start.Before(windows[j].start)
	})
	return windows
}
