package commands

import (
	"context"
	"errors"
	"time"

	"fleetbook/internal/domain/booking"
	"fleetbook/internal/infra"
	"fleetbook/internal/pkg/clock"
	"fleetbook/internal/pkg/errs"
	"fleetbook/internal/usecase/queries"
	"fleetbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrMemberNotFound  = errs.New("member not found")
	ErrBookingConflict = errs.New("booking conflict")
)

type AllocationInput struct {
	MemberID uuid.UUID
	Credits  int
}

type CreateBookingCommand struct {
	BoatID      uuid.UUID
	StartTime   time.Time
	EndTime     time.Time
	Allocations []AllocationInput
}

// UpdateBookingCommand fully replaces the booking in place; the ledger
// is reconciled against the superseded member set.
type UpdateBookingCommand struct {
	BoatID      uuid.UUID
	StartTime   time.Time
	EndTime     time.Time
	Allocations []AllocationInput
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, cmd CreateBookingCommand, ownerID uuid.UUID) (*queries.BookingView, error)
	UpdateBooking(ctx context.Context, id uuid.UUID, cmd UpdateBookingCommand) (*queries.BookingView, error)
	DeleteBooking(ctx context.Context, id uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	services       *booking.Services
	policy         booking.Policy
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	bookingQueries queries.BookingQueries,
	clk clock.Clock,
	pricer booking.CreditPricer,
	policy booking.Policy,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		services:       &booking.Services{Clock: clk, Pricer: pricer},
		policy:         policy,
	}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, cmd CreateBookingCommand, ownerID uuid.UUID) (*queries.BookingView, error) {
	window, err := booking.NewWindow(cmd.StartTime, cmd.EndTime)
	if err != nil {
		return nil, err
	}
	allocs := toAllocations(cmd.Allocations)

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		in, err := uc.buildValidationInput(ctx, tx.Reads(), cmd.BoatID, ownerID, window, allocs, nil, uuid.Nil)
		if err != nil {
			return err
		}

		b, err := booking.NewBooking(uc.services, uc.policy, in)
		if err != nil {
			return err
		}

		if err := tx.Members().ApplyBalanceDeltas(ctx, tx.DB(), booking.PlanCharge(b.Members())); err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrBookingConflict
			}
			return err
		}
		createdID = b.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.bookingQueries.GetByID(ctx, createdID)
}

func (uc *bookingUseCaseImpl) UpdateBooking(ctx context.Context, id uuid.UUID, cmd UpdateBookingCommand) (*queries.BookingView, error) {
	window, err := booking.NewWindow(cmd.StartTime, cmd.EndTime)
	if err != nil {
		return nil, err
	}
	allocs := toAllocations(cmd.Allocations)

	err = uc.applyUpdate(ctx, id, cmd.BoatID, window, allocs)
	if errors.Is(err, ErrBookingConflict) {
		// One retry against the freshly re-fetched record. If the
		// booking vanished meanwhile the retry reports NotFound.
		err = uc.applyUpdate(ctx, id, cmd.BoatID, window, allocs)
	}
	if err != nil {
		return nil, err
	}

	return uc.bookingQueries.GetByID(ctx, id)
}

func (uc *bookingUseCaseImpl) applyUpdate(ctx context.Context, id, boatID uuid.UUID, window booking.Window, allocs []booking.Allocation) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		oldWindow, err := booking.NewWindow(snap.Start, snap.End)
		if err != nil {
			return err
		}
		old := booking.ReconstructBooking(
			snap.ID, snap.BoatID, snap.OwnerID,
			oldWindow, snap.CreditsUsed, snap.Allocations,
			snap.Version, snap.CreatedAt, snap.UpdatedAt,
		)

		in, err := uc.buildValidationInput(ctx, tx.Reads(), boatID, snap.OwnerID, window, allocs, snap.Allocations, id)
		if err != nil {
			return err
		}

		replacement, err := old.Supersede(uc.services, uc.policy, in)
		if err != nil {
			return err
		}

		deltas := booking.PlanEdit(snap.Allocations, replacement.Members())
		if err := tx.Members().ApplyBalanceDeltas(ctx, tx.DB(), deltas); err != nil {
			return err
		}

		if err := tx.Bookings().Update(ctx, tx.DB(), replacement, snap.Version); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrBookingConflict
			}
			return err
		}
		return nil
	})
}

func (uc *bookingUseCaseImpl) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		// Cancellation refunds every allocation unconditionally.
		if err := tx.Members().ApplyBalanceDeltas(ctx, tx.DB(), booking.PlanRefund(snap.Allocations)); err != nil {
			return err
		}
		return tx.Bookings().Delete(ctx, tx.DB(), id)
	})
}

// buildValidationInput gathers the snapshots the acceptance chain
// observes. A missing boat becomes a nil BoatSpec so the chain reports
// it in order; a missing crew member is an immediate NotFound.
func (uc *bookingUseCaseImpl) buildValidationInput(
	ctx context.Context,
	reads shared.CommandReads,
	boatID, ownerID uuid.UUID,
	window booking.Window,
	allocs, oldAllocs []booking.Allocation,
	excludeID uuid.UUID,
) (booking.ValidationInput, error) {
	var zero booking.ValidationInput

	ownerSnap, err := reads.MemberByID(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return zero, ErrMemberNotFound
		}
		return zero, err
	}

	var boatSpec *booking.BoatSpec
	boatSnap, err := reads.BoatByID(ctx, boatID)
	switch {
	case err == nil:
		boatSpec = &booking.BoatSpec{
			ID:          boatSnap.ID,
			HourlyRate:  boatSnap.HourlyRate,
			Operational: boatSnap.Operational,
		}
	case infra.IsKind(err, infra.KindNotFound):
		boatSpec = nil
	default:
		return zero, err
	}

	crew := make([]booking.CrewMember, 0, len(allocs))
	balances := make(map[uuid.UUID]int, len(allocs))
	for _, a := range allocs {
		memberSnap, err := reads.MemberByID(ctx, a.MemberID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return zero, ErrMemberNotFound
			}
			return zero, err
		}
		crew = append(crew, booking.CrewMember{
			ID:            memberSnap.ID,
			Standing:      memberSnap.Standing,
			SkipperRating: memberSnap.SkipperRating,
		})
		balances[memberSnap.ID] = memberSnap.Credits
	}

	existing, err := reads.BookingWindows(ctx, boatID, window.Start(), window.End(), excludeID)
	if err != nil {
		return zero, err
	}

	return booking.ValidationInput{
		Owner: booking.CrewMember{
			ID:            ownerSnap.ID,
			Standing:      ownerSnap.Standing,
			SkipperRating: ownerSnap.SkipperRating,
		},
		Boat:           boatSpec,
		Window:         window,
		Crew:           crew,
		Allocations:    allocs,
		Balances:       balances,
		OldAllocations: oldAllocs,
		Existing:       existing,
	}, nil
}

func toAllocations(inputs []AllocationInput) []booking.Allocation {
	allocs := make([]booking.Allocation, len(inputs))
	for i, in := range inputs {
		allocs[i] = booking.Allocation{MemberID: in.MemberID, Credits: in.Credits}
	}
	return allocs
}
