package boat

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyBoatName   = errors.New("boat name cannot be empty")
	ErrBoatNameTooLong = errors.New("boat name is too long (max 255 characters)")
	ErrNegativeRate    = errors.New("hourly credit rate cannot be negative")
)

const MaxBoatNameLength = 255

// Boat is a bookable vessel. The hourly rate is in credits per hour;
// bookings against a non-operational boat are rejected.
type Boat struct {
	id          uuid.UUID
	name        string
	hourlyRate  int
	operational bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBoat(id uuid.UUID, name string, hourlyRate int, operational bool) (*Boat, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyBoatName
	}
	if len(name) > MaxBoatNameLength {
		return nil, ErrBoatNameTooLong
	}
	if hourlyRate < 0 {
		return nil, ErrNegativeRate
	}

	return &Boat{
		id:          id,
		name:        name,
		hourlyRate:  hourlyRate,
		operational: operational,
	}, nil
}

func (b *Boat) ID() uuid.UUID        { return b.id }
func (b *Boat) Name() string         { return b.name }
func (b *Boat) HourlyRate() int      { return b.hourlyRate }
func (b *Boat) IsOperational() bool  { return b.operational }
func (b *Boat) CreatedAt() time.Time { return b.createdAt }
func (b *Boat) UpdatedAt() time.Time { return b.updatedAt }
