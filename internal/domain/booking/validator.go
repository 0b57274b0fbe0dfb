package booking

import (
	"errors"
	"time"

	"fleetbook/internal/domain/member"

	"github.com/google/uuid"
)

// Rejection reasons, one per check in the chain. The messages are part
// of the API contract and surface verbatim to callers.
var (
	ErrNotGoodStanding       = errors.New("not in good standing")
	ErrBoatNotFound          = errors.New("boat does not exist")
	ErrBoatNotOperational    = errors.New("boat not operational")
	ErrAlreadyReserved       = errors.New("date has been previously reserved")
	ErrCruiseSkipperRequired = errors.New("member must have cruise skipper status")
	ErrDaySkipperRequired    = errors.New("member must have day skipper status")
)

// Policy bundles the club's booking rules so the validator, pricer and
// slot queries all read the same constants.
type Policy struct {
	MaxSpan          time.Duration
	MinDuration      time.Duration
	Tariff           Tariff
	StartGranularity time.Duration
	EndGranularity   time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		MaxSpan:          72 * time.Hour,
		MinDuration:      time.Hour,
		Tariff:           DefaultTariff(),
		StartGranularity: 30 * time.Minute,
		EndGranularity:   time.Hour,
	}
}

// BoatSpec is the slice of boat state the validator needs.
type BoatSpec struct {
	ID          uuid.UUID
	HourlyRate  int
	Operational bool
}

// CrewMember is one member of a booking's crew with the attributes the
// eligibility checks read.
type CrewMember struct {
	ID            uuid.UUID
	Standing      member.Standing
	SkipperRating member.SkipperRating
}

// ValidationInput is everything the accept/reject decision observes.
// Boat is nil when the referenced boat does not exist. OldAllocations
// is nil for a create and holds the superseded member set for an edit.
// Existing carries the boat's other reservation windows for the
// overlap check.
type ValidationInput struct {
	Owner          CrewMember
	Boat           *BoatSpec
	Window         Window
	Crew           []CrewMember
	Allocations    []Allocation
	Balances       map[uuid.UUID]int
	OldAllocations []Allocation
	Existing       []Window
}

// Validate runs the acceptance chain in a fixed order so each failure
// surfaces its own reason: standing, credits, skipper rating, boat
// state, then overlap. The first failing check short-circuits.
func Validate(policy Policy, in ValidationInput) error {
	if !in.Owner.Standing.CanBook() {
		return ErrNotGoodStanding
	}

	if in.Window.Exceeds(policy.MaxSpan) {
		return ErrSpanTooLong
	}

	if err := ValidateAllocations(in.Allocations); err != nil {
		return err
	}
	if err := CheckAffordability(in.Balances, in.OldAllocations, in.Allocations); err != nil {
		return err
	}

	if err := checkSkipperRating(in.Window, in.Crew); err != nil {
		return err
	}

	if in.Boat == nil {
		return ErrBoatNotFound
	}
	if !in.Boat.Operational {
		return ErrBoatNotOperational
	}

	for _, w := range in.Existing {
		if in.Window.Overlaps(w) {
			return ErrAlreadyReserved
		}
	}

	return nil
}

// A booking spanning one full day or more must carry a cruise-rated
// member; shorter trips need a day-rated one. A cruise rating does not
// stand in for a day rating.
func checkSkipperRating(w Window, crew []CrewMember) error {
	if w.FullDays() >= 1 {
		for _, c := range crew {
			if c.SkipperRating == member.SkipperCruise {
				return nil
			}
		}
		return ErrCruiseSkipperRequired
	}

	for _, c := range crew {
		if c.SkipperRating == member.SkipperDay {
			return nil
		}
	}
	return ErrDaySkipperRequired
}
