package member

import "errors"

var (
	ErrInvalidStanding      = errors.New("invalid membership standing")
	ErrInvalidSkipperRating = errors.New("invalid skipper rating")
	ErrInvalidRole          = errors.New("invalid role")
)

// Standing is a member's good-standing status. Only members in good
// standing may create bookings.
type Standing string

const (
	StandingGood      Standing = "good"
	StandingProbation Standing = "probation"
	StandingLapsed    Standing = "lapsed"
)

func NewStanding(s string) (Standing, error) {
	st := Standing(s)
	if !st.IsValid() {
		return "", ErrInvalidStanding
	}
	return st, nil
}

func (s Standing) IsValid() bool {
	switch s {
	case StandingGood, StandingProbation, StandingLapsed:
		return true
	default:
		return false
	}
}

func (s Standing) String() string {
	return string(s)
}

func (s Standing) CanBook() bool {
	return s == StandingGood
}

// SkipperRating gates who may crew which booking length: day-length
// bookings need a day-rated member aboard, multi-day cruises need a
// cruise-rated one.
type SkipperRating string

const (
	SkipperNone   SkipperRating = "none"
	SkipperDay    SkipperRating = "day"
	SkipperCruise SkipperRating = "cruise"
)

func NewSkipperRating(s string) (SkipperRating, error) {
	r := SkipperRating(s)
	if !r.IsValid() {
		return "", ErrInvalidSkipperRating
	}
	return r, nil
}

func (r SkipperRating) IsValid() bool {
	switch r {
	case SkipperNone, SkipperDay, SkipperCruise:
		return true
	default:
		return false
	}
}

func (r SkipperRating) String() string {
	return string(r)
}

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}
