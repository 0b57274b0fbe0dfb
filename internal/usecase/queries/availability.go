package queries

import (
	"context"
	"time"

	"fleetbook/internal/domain/booking"
	"fleetbook/internal/infra"

	"github.com/google/uuid"
)

// AvailabilityQueries answers the two calendar questions the booking
// form asks: where can a trip start on a given day, and given a start,
// where can it end. Start slots use the fine-grained grid; end slots the
// coarse one, bounded by the next reservation or the maximum span.
type AvailabilityQueries interface {
	AvailableStarts(ctx context.Context, boatID uuid.UUID, day time.Time) ([]time.Time, error)
	AvailableEnds(ctx context.Context, boatID uuid.UUID, start time.Time) ([]time.Time, error)
}

type availabilityQueriesImpl struct {
	boats    BoatReadStore
	bookings BookingReadStore
	policy   booking.Policy
}

func NewAvailabilityQueries(boats BoatReadStore, bookings BookingReadStore, policy booking.Policy) AvailabilityQueries {
	return &availabilityQueriesImpl{
		boats:    boats,
		bookings: bookings,
		policy:   policy,
	}
}

func (q *availabilityQueriesImpl) AvailableStarts(ctx context.Context, boatID uuid.UUID, day time.Time) ([]time.Time, error) {
	if err := q.ensureBoat(ctx, boatID); err != nil {
		return nil, err
	}

	reserved, err := q.bookings.WindowsInRange(ctx, boatID, day, day.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}

	return booking.AvailableStarts(reserved, day, q.policy.StartGranularity, q.policy.MinDuration), nil
}

func (q *availabilityQueriesImpl) AvailableEnds(ctx context.Context, boatID uuid.UUID, start time.Time) ([]time.Time, error) {
	if err := q.ensureBoat(ctx, boatID); err != nil {
		return nil, err
	}

	reserved, err := q.bookings.WindowsInRange(ctx, boatID, start, start.Add(q.policy.MaxSpan))
	if err != nil {
		return nil, err
	}

	return booking.AvailableEnds(reserved, start, q.policy.EndGranularity, q.policy.MinDuration, q.policy.MaxSpan), nil
}

func (q *availabilityQueriesImpl) ensureBoat(ctx context.Context, boatID uuid.UUID) error {
	if _, err := q.boats.FindByID(ctx, boatID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBoatNotFound
		}
		return err
	}
	return nil
}
