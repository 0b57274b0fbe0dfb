package booking

import (
	"errors"
	"time"
)

var ErrInvalidRange = errors.New("invalid pricing range")

// Tariff is the club's credit-pricing policy: a free window measured
// from the request instant, and a per-day chargeable ceiling that is
// higher on weekends.
type Tariff struct {
	FreePeriod          time.Duration
	WeekdayCeilingHours int
	WeekendCeilingHours int
}

func DefaultTariff() Tariff {
	return Tariff{
		FreePeriod:          24 * time.Hour,
		WeekdayCeilingHours: 10,
		WeekendCeilingHours: 15,
	}
}

func (t Tariff) ceilingHours(day time.Time) int {
	switch day.Weekday() {
	case time.Saturday, time.Sunday:
		return t.WeekendCeilingHours
	default:
		return t.WeekdayCeilingHours
	}
}

// CreditPricer computes the credit cost of a window at a boat's hourly
// rate, anchored at the request instant now.
type CreditPricer interface {
	Price(hourlyRate int, w Window, now time.Time) (int, error)
}

// TieredPricer charges per calendar day spanned by the paid portion of
// the window. The first 24 hours after now are free; the paid start is
// the later of the window start and the end of that free period. Each
// day's chargeable hours are truncated to whole hours and capped at the
// day's ceiling; intervening days always charge the full ceiling.
type TieredPricer struct {
	tariff Tariff
}

func NewTieredPricer(tariff Tariff) *TieredPricer {
	return &TieredPricer{tariff: tariff}
}

func (p *TieredPricer) Price(hourlyRate int, w Window, now time.Time) (int, error) {
	if !w.start.Before(w.end) {
		return 0, ErrInvalidRange
	}

	paidStart := now.Add(p.tariff.FreePeriod)
	if w.start.After(paidStart) {
		paidStart = w.start
	}
	if !paidStart.Before(w.end) {
		return 0, nil
	}

	end := w.end
	total := 0

	firstIsLast := paidStart.Year() == end.Year() && paidStart.YearDay() == end.YearDay()

	var firstHours int
	if firstIsLast {
		firstHours = end.Hour() - paidStart.Hour()
	} else {
		firstHours = 24 - paidStart.Hour()
	}
	total += min(firstHours, p.tariff.ceilingHours(paidStart)) * hourlyRate

	if firstIsLast {
		return total, nil
	}

	for day := startOfDay(paidStart).AddDate(0, 0, 1); day.Before(startOfDay(end)); day = day.AddDate(0, 0, 1) {
		total += p.tariff.ceilingHours(day) * hourlyRate
	}

	// Hours elapsed since local midnight on the final day.
	total += min(end.Hour(), p.tariff.ceilingHours(end)) * hourlyRate

	return total, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
