package booking

import (
	"time"

	"fleetbook/internal/pkg/clock"

	"github.com/google/uuid"
)

// Services are the collaborators a Booking needs at construction time.
type Services struct {
	Clock  clock.Clock
	Pricer CreditPricer
}

// Booking is an accepted reservation of one boat for one window, with
// the credit cost split across the crew. Version backs optimistic
// concurrency on edits.
type Booking struct {
	id          uuid.UUID
	boatID      uuid.UUID
	ownerID     uuid.UUID
	window      Window
	creditsUsed int
	members     []Allocation
	version     int
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBooking validates the request against the policy and prices the
// window at the boat's hourly rate, anchored at the current instant.
// The overlap check inside in.Existing must reflect a consistent
// snapshot of the boat's calendar; the caller owns that transaction.
func NewBooking(services *Services, policy Policy, in ValidationInput) (*Booking, error) {
	if err := Validate(policy, in); err != nil {
		return nil, err
	}

	cost, err := services.Pricer.Price(in.Boat.HourlyRate, in.Window, services.Clock.Now())
	if err != nil {
		return nil, err
	}

	members := make([]Allocation, len(in.Allocations))
	copy(members, in.Allocations)

	now := services.Clock.Now()
	return &Booking{
		id:          uuid.New(),
		boatID:      in.Boat.ID,
		ownerID:     in.Owner.ID,
		window:      in.Window,
		creditsUsed: cost,
		members:     members,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBooking(
	id, boatID, ownerID uuid.UUID,
	window Window,
	creditsUsed int,
	members []Allocation,
	version int,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		boatID:      boatID,
		ownerID:     ownerID,
		window:      window,
		creditsUsed: creditsUsed,
		members:     members,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Supersede builds the replacement version of an existing booking,
// keeping its identity and bumping the version for the conditional
// write. The ledger reconciliation against the old member set is the
// caller's responsibility via PlanEdit.
func (b *Booking) Supersede(services *Services, policy Policy, in ValidationInput) (*Booking, error) {
	if err := Validate(policy, in); err != nil {
		return nil, err
	}

	cost, err := services.Pricer.Price(in.Boat.HourlyRate, in.Window, services.Clock.Now())
	if err != nil {
		return nil, err
	}

	members := make([]Allocation, len(in.Allocations))
	copy(members, in.Allocations)

	return &Booking{
		id:          b.id,
		boatID:      in.Boat.ID,
		ownerID:     b.ownerID,
		window:      in.Window,
		creditsUsed: cost,
		members:     members,
		version:     b.version + 1,
		createdAt:   b.createdAt,
		updatedAt:   services.Clock.Now(),
	}, nil
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) BoatID() uuid.UUID    { return b.boatID }
func (b *Booking) OwnerID() uuid.UUID   { return b.ownerID }
func (b *Booking) Window() Window       { return b.window }
func (b *Booking) CreditsUsed() int     { return b.creditsUsed }
func (b *Booking) Version() int         { return b.version }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// Members returns a copy; the allocation set only changes by full
// replacement through Supersede.
func (b *Booking) Members() []Allocation {
	members := make([]Allocation, len(b.members))
	copy(members, b.members)
	return members
}
