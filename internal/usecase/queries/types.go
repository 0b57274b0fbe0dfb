package queries

import (
	"context"
	"time"

	"fleetbook/internal/domain/booking"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID          uuid.UUID              `json:"id"`
	BoatID      uuid.UUID              `json:"boat_id"`
	BoatName    string                 `json:"boat_name"`
	OwnerID     uuid.UUID              `json:"owner_id"`
	StartTime   time.Time              `json:"start_time"`
	EndTime     time.Time              `json:"end_time"`
	CreditsUsed int                    `json:"credits_used"`
	Members     []MemberAllocationView `json:"members"`
	Version     int                    `json:"version"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

type MemberAllocationView struct {
	MemberID uuid.UUID `json:"member_id"`
	Credits  int       `json:"credits"`
}

type BookingListItem struct {
	ID          uuid.UUID `json:"id"`
	BoatID      uuid.UUID `json:"boat_id"`
	BoatName    string    `json:"boat_name"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	CreditsUsed int       `json:"credits_used"`
	CreatedAt   time.Time `json:"created_at"`
}

type BoatView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	HourlyRate  int       `json:"hourly_rate"`
	Operational bool      `json:"operational"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AuthorizedMemberView struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	Standing      string    `json:"standing"`
	SkipperRating string    `json:"skipper_rating"`
	Credits       int       `json:"credits"`
}

// Read store ports implemented by internal/infra/readstore.
type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByMember(ctx context.Context, memberID uuid.UUID) ([]*BookingListItem, error)
	// WindowsInRange returns the boat's reservation windows that
	// overlap [from, to), ordered by start.
	WindowsInRange(ctx context.Context, boatID uuid.UUID, from, to time.Time) ([]booking.Window, error)
}

type BoatReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BoatView, error)
	FindAll(ctx context.Context) ([]*BoatView, error)
}

type MemberReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedMemberView, error)
	// FindByEmail also returns the stored password hash for login.
	FindByEmail(ctx context.Context, email string) (*AuthorizedMemberView, string, error)
}
