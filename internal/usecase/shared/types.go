package shared

import (
	"context"
	"time"

	"fleetbook/internal/domain/booking"
	"fleetbook/internal/domain/member"

	"github.com/google/uuid"
)

// CommandReads are the snapshot reads the validation chain observes.
// Inside Within they run on the transaction and therefore see a
// consistent calendar and balance view.
type CommandReads interface {
	BoatByID(ctx context.Context, id uuid.UUID) (*BoatSnapshot, error)
	MemberByID(ctx context.Context, id uuid.UUID) (*MemberSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	// BookingWindows lists the reservation windows for a boat that
	// overlap [from, to), excluding excludeID when it is not uuid.Nil.
	BookingWindows(ctx context.Context, boatID uuid.UUID, from, to time.Time, excludeID uuid.UUID) ([]booking.Window, error)
}

type BoatSnapshot struct {
	ID          uuid.UUID
	Name        string
	HourlyRate  int
	Operational bool
}

type MemberSnapshot struct {
	ID            uuid.UUID
	Email         string
	Role          member.Role
	Standing      member.Standing
	SkipperRating member.SkipperRating
	Credits       int
}

type BookingSnapshot struct {
	ID          uuid.UUID
	BoatID      uuid.UUID
	OwnerID     uuid.UUID
	Start       time.Time
	End         time.Time
	CreditsUsed int
	Allocations []booking.Allocation
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
