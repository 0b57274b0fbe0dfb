package shared

import (
	"context"

	"fleetbook/internal/domain/boat"
	"fleetbook/internal/domain/booking"
	"fleetbook/internal/domain/member"
	"fleetbook/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork is the transaction boundary every booking mutation runs
// inside. Within opens a serializable transaction and retries on
// serialization failures, so concurrent creates against overlapping
// windows cannot both commit; the loser surfaces as a conflict.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB runs single queries on the pool with implicit transactions.
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// Reads gives command-side validation reads outside a transaction.
	Reads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Boats() BoatRepository
	Members() MemberRepository
	Reads() CommandReads
	DB() db.DBTX
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error
	// Update replaces the row conditionally on the stored version and
	// reports a conflict when another writer got there first.
	Update(ctx context.Context, dbtx db.DBTX, b *booking.Booking, expectedVersion int) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type BoatRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *boat.Boat) error
}

type MemberRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, m *member.Member) error
	// ApplyBalanceDeltas writes each member's balance exactly once.
	// Callers pass plans produced by the booking ledger; ordering
	// within the plan is not significant.
	ApplyBalanceDeltas(ctx context.Context, dbtx db.DBTX, deltas []booking.BalanceDelta) error
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, memberID uuid.UUID) error
}
