package repository

import (
	"context"
	"errors"

	"fleetbook/internal/domain/booking"
	"fleetbook/internal/infra"
	"fleetbook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error {
	const query = `
		INSERT INTO bookings (id, boat_id, owner_id, start_time, end_time, credits_used, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	w := b.Window()
	_, err := dbtx.Exec(ctx, query,
		b.ID(), b.BoatID(), b.OwnerID(),
		w.Start(), w.End(), b.CreditsUsed(),
		b.Version(), b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		return wrapWriteErr("failed to create booking", err)
	}

	return r.insertMembers(ctx, dbtx, b.ID(), b.Members())
}

// Update replaces the booking row and its member allocations. The row
// update is conditional on the stored version; zero affected rows means
// another writer superseded or deleted the booking first.
func (r *BookingRepository) Update(ctx context.Context, dbtx db.DBTX, b *booking.Booking, expectedVersion int) error {
	const query = `
		UPDATE bookings
		SET boat_id = $1, start_time = $2, end_time = $3, credits_used = $4, version = $5, updated_at = $6
		WHERE id = $7 AND version = $8
	`
	w := b.Window()
	tag, err := dbtx.Exec(ctx, query,
		b.BoatID(), w.Start(), w.End(), b.CreditsUsed(),
		b.Version(), b.UpdatedAt(),
		b.ID(), expectedVersion,
	)
	if err != nil {
		return wrapWriteErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindConflict, "booking version mismatch", nil)
	}

	if _, err := dbtx.Exec(ctx, `DELETE FROM booking_members WHERE booking_id = $1`, b.ID()); err != nil {
		return wrapWriteErr("failed to clear booking members", err)
	}
	return r.insertMembers(ctx, dbtx, b.ID(), b.Members())
}

func (r *BookingRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	if _, err := dbtx.Exec(ctx, `DELETE FROM booking_members WHERE booking_id = $1`, id); err != nil {
		return wrapWriteErr("failed to delete booking members", err)
	}

	tag, err := dbtx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return wrapWriteErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

func (r *BookingRepository) insertMembers(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID, allocs []booking.Allocation) error {
	const query = `
		INSERT INTO booking_members (booking_id, member_id, credits)
		VALUES ($1, $2, $3)
	`
	for _, a := range allocs {
		if _, err := dbtx.Exec(ctx, query, bookingID, a.MemberID, a.Credits); err != nil {
			return wrapWriteErr("failed to insert booking member", err)
		}
	}
	return nil
}

func wrapWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return infra.WrapRepoErr(infra.KindDuplicateKey, msg, err)
	}
	return infra.WrapRepoErr(infra.KindDBFailure, msg, err)
}
