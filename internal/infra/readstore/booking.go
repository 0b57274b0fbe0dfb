package readstore

import (
	"context"
	"errors"
	"time"

	"fleetbook/internal/domain/booking"
	"fleetbook/internal/infra"
	"fleetbook/internal/infra/db"
	"fleetbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT b.id, b.boat_id, bo.name, b.owner_id, b.start_time, b.end_time,
		       b.credits_used, b.version, b.created_at, b.updated_at
		FROM bookings b
		JOIN boats bo ON bo.id = b.boat_id
		WHERE b.id = $1
	`
	var view queries.BookingView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.BoatID, &view.BoatName, &view.OwnerID,
		&view.StartTime, &view.EndTime, &view.CreditsUsed,
		&view.Version, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find booking by ID", err)
	}

	members, err := r.membersOf(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Members = members

	return &view, nil
}

func (r *BookingReadStore) FindByMember(ctx context.Context, memberID uuid.UUID) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT b.id, b.boat_id, bo.name, b.start_time, b.end_time, b.credits_used, b.created_at
		FROM bookings b
		JOIN boats bo ON bo.id = b.boat_id
		JOIN booking_members bm ON bm.booking_id = b.id
		WHERE bm.member_id = $1
		ORDER BY b.start_time DESC
	`
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find bookings by member", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.BoatID, &item.BoatName,
			&item.StartTime, &item.EndTime, &item.CreditsUsed, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate booking rows", err)
	}

	return items, nil
}

func (r *BookingReadStore) WindowsInRange(ctx context.Context, boatID uuid.UUID, from, to time.Time) ([]booking.Window, error) {
	return ScanWindows(ctx, r.db, boatID, from, to, uuid.Nil)
}

func (r *BookingReadStore) membersOf(ctx context.Context, bookingID uuid.UUID) ([]queries.MemberAllocationView, error) {
	const query = `
		SELECT member_id, credits
		FROM booking_members
		WHERE booking_id = $1
		ORDER BY member_id
	`
	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find booking members", err)
	}
	defer rows.Close()

	var members []queries.MemberAllocationView
	for rows.Next() {
		var m queries.MemberAllocationView
		if err := rows.Scan(&m.MemberID, &m.Credits); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking member", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate booking members", err)
	}

	return members, nil
}

// ScanWindows is shared with the command-side reads; excludeID skips
// the booking being edited so it never collides with itself.
func ScanWindows(ctx context.Context, dbtx db.DBTX, boatID uuid.UUID, from, to time.Time, excludeID uuid.UUID) ([]booking.Window, error) {
	const query = `
		SELECT start_time, end_time
		FROM bookings
		WHERE boat_id = $1 AND start_time < $3 AND end_time > $2 AND id <> $4
		ORDER BY start_time
	`
	rows, err := dbtx.Query(ctx, query, boatID, from, to, excludeID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find booking windows", err)
	}
	defer rows.Close()

	var windows []booking.Window
	for rows.Next() {
		var start, end time.Time
		if err := rows.Scan(&start, &end); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking window", err)
		}
		w, err := booking.NewWindow(start, end)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored booking window invalid", err)
		}
		windows = append(windows, w)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate booking windows", err)
	}

	return windows, nil
}
