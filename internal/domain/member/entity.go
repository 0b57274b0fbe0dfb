package member

import (
	"time"

	"github.com/google/uuid"
)

// Member is a club member. The credit balance is mutated only through
// ledger deltas computed by the booking package; nothing else writes it.
type Member struct {
	id            uuid.UUID
	email         Email
	passwordHash  string
	role          Role
	standing      Standing
	skipperRating SkipperRating
	credits       int
	createdAt     time.Time
	updatedAt     time.Time
}

func NewMember(email Email, passwordHash string, role Role, standing Standing, rating SkipperRating, credits int) *Member {
	return &Member{
		id:            uuid.New(),
		email:         email,
		passwordHash:  passwordHash,
		role:          role,
		standing:      standing,
		skipperRating: rating,
		credits:       credits,
	}
}

func ReconstructMember(
	id uuid.UUID,
	email Email,
	passwordHash string,
	role Role,
	standing Standing,
	rating SkipperRating,
	credits int,
	createdAt, updatedAt time.Time,
) *Member {
	return &Member{
		id:            id,
		email:         email,
		passwordHash:  passwordHash,
		role:          role,
		standing:      standing,
		skipperRating: rating,
		credits:       credits,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (m *Member) ID() uuid.UUID                { return m.id }
func (m *Member) Email() Email                 { return m.email }
func (m *Member) PasswordHash() string         { return m.passwordHash }
func (m *Member) Role() Role                   { return m.role }
func (m *Member) Standing() Standing           { return m.standing }
func (m *Member) SkipperRating() SkipperRating { return m.skipperRating }
func (m *Member) Credits() int                 { return m.credits }
func (m *Member) CreatedAt() time.Time         { return m.createdAt }
func (m *Member) UpdatedAt() time.Time         { return m.updatedAt }
