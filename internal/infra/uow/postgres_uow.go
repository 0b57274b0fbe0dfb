package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"fleetbook/internal/domain/booking"
	"fleetbook/internal/domain/member"
	"fleetbook/internal/infra/db"
	"fleetbook/internal/infra/readstore"
	"fleetbook/internal/infra/repository"
	"fleetbook/internal/pkg/errs"
	"fleetbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// Serializable isolation makes concurrent overlapping bookings a
// serialization failure rather than a double booking; the retry loop
// below absorbs the losers.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) Reads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	bookingRepo  shared.BookingRepository
	boatRepo     shared.BoatRepository
	memberRepo   shared.MemberRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository()
	}
	return t.bookingRepo
}

func (t *pgTx) Boats() shared.BoatRepository {
	if t.boatRepo == nil {
		t.boatRepo = repository.NewBoatRepository()
	}
	return t.boatRepo
}

func (t *pgTx) Members() shared.MemberRepository {
	if t.memberRepo == nil {
		t.memberRepo = repository.NewMemberRepository()
	}
	return t.memberRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

// commandReads maps read-store views into the snapshots the validation
// chain consumes. Inside a transaction it shares the transaction's
// connection, so the calendar it observes is the one the commit sees.
type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	boatStore    *readstore.BoatReadStore
	memberStore  *readstore.MemberReadStore
	bookingStore *readstore.BookingReadStore
}

func (r *commandReads) BoatByID(ctx context.Context, id uuid.UUID) (*shared.BoatSnapshot, error) {
	if r.boatStore == nil {
		r.boatStore = readstore.NewBoatReadStore(r.dbtx)
	}

	boat, err := r.boatStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.BoatSnapshot{
		ID:          boat.ID,
		Name:        boat.Name,
		HourlyRate:  boat.HourlyRate,
		Operational: boat.Operational,
	}, nil
}

func (r *commandReads) MemberByID(ctx context.Context, id uuid.UUID) (*shared.MemberSnapshot, error) {
	if r.memberStore == nil {
		r.memberStore = readstore.NewMemberReadStore(r.dbtx)
	}

	view, err := r.memberStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	role, err := member.NewRole(view.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored role invalid")
	}
	standing, err := member.NewStanding(view.Standing)
	if err != nil {
		return nil, errs.Wrap(err, "stored standing invalid")
	}
	rating, err := member.NewSkipperRating(view.SkipperRating)
	if err != nil {
		return nil, errs.Wrap(err, "stored skipper rating invalid")
	}

	return &shared.MemberSnapshot{
		ID:            view.ID,
		Email:         view.Email,
		Role:          role,
		Standing:      standing,
		SkipperRating: rating,
		Credits:       view.Credits,
	}, nil
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.dbtx)
	}

	view, err := r.bookingStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allocs := make([]booking.Allocation, len(view.Members))
	for i, m := range view.Members {
		allocs[i] = booking.Allocation{MemberID: m.MemberID, Credits: m.Credits}
	}

	return &shared.BookingSnapshot{
		ID:          view.ID,
		BoatID:      view.BoatID,
		OwnerID:     view.OwnerID,
		Start:       view.StartTime,
		End:         view.EndTime,
		CreditsUsed: view.CreditsUsed,
		Allocations: allocs,
		Version:     view.Version,
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
	}, nil
}

func (r *commandReads) BookingWindows(ctx context.Context, boatID uuid.UUID, from, to time.Time, excludeID uuid.UUID) ([]booking.Window, error) {
	return readstore.ScanWindows(ctx, r.dbtx, boatID, from, to, excludeID)
}
