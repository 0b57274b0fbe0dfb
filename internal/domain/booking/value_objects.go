package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrStartAfterEnd      = errors.New("start date cannot be after end date")
	ErrSpanTooLong        = errors.New("bookings cannot be more than 3 days")
	ErrNegativeAllocation = errors.New("allocated credits cannot be negative")
	ErrDuplicateMember    = errors.New("member allocated more than once")
)

// Window is a half-open reservation interval [start, end). Two windows
// touch without conflict when one ends exactly where the other starts.
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if !start.Before(end) {
		return Window{}, ErrStartAfterEnd
	}
	return Window{start: start, end: end}, nil
}

func (w Window) Start() time.Time        { return w.start }
func (w Window) End() time.Time          { return w.end }
func (w Window) Duration() time.Duration { return w.end.Sub(w.start) }

func (w Window) Overlaps(other Window) bool {
	return w.start.Before(other.end) && other.start.Before(w.end)
}

// FullDays is the whole number of 24-hour periods the window spans.
// A window of one full day or more requires a cruise-rated skipper.
func (w Window) FullDays() int {
	return int(w.Duration().Hours()) / 24
}

func (w Window) Exceeds(maxSpan time.Duration) bool {
	return w.Duration() > maxSpan
}

func (w Window) IsZero() bool {
	return w.start.IsZero() && w.end.IsZero()
}

func (w Window) String() string {
	return fmt.Sprintf("[%s,%s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}

// Allocation assigns a share of a booking's credits to one member.
type Allocation struct {
	MemberID uuid.UUID
	Credits  int
}

func NewAllocation(memberID uuid.UUID, credits int) (Allocation, error) {
	if credits < 0 {
		return Allocation{}, ErrNegativeAllocation
	}
	return Allocation{MemberID: memberID, Credits: credits}, nil
}

// ValidateAllocations rejects negative shares and members listed twice.
// The sum of shares is deliberately not reconciled against the booking's
// total cost; shares are an independent split agreed by the crew.
func ValidateAllocations(allocs []Allocation) error {
	seen := make(map[uuid.UUID]struct{}, len(allocs))
	for _, a := range allocs {
		if a.Credits < 0 {
			return ErrNegativeAllocation
		}
		if _, dup := seen[a.MemberID]; dup {
			return ErrDuplicateMember
		}
		seen[a.MemberID] = struct{}{}
	}
	return nil
}
