package commands

import (
	"context"

	"fleetbook/internal/domain/boat"
	"fleetbook/internal/domain/member"
	"fleetbook/internal/infra"
	"fleetbook/internal/pkg/errs"
	"fleetbook/internal/pkg/password"
	"fleetbook/internal/usecase/queries"
	"fleetbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrEmailTaken = errs.New("email already registered")

type CreateBoatCommand struct {
	Name        string
	HourlyRate  int
	Operational bool
}

type RegisterMemberCommand struct {
	Email         string
	Password      string
	Role          string
	Standing      string
	SkipperRating string
	Credits       int
}

// FleetCommands covers the administrative surface: putting boats on the
// calendar and enrolling members.
type FleetCommands interface {
	CreateBoat(ctx context.Context, cmd CreateBoatCommand) (*queries.BoatView, error)
	RegisterMember(ctx context.Context, cmd RegisterMemberCommand) (*queries.AuthorizedMemberView, error)
}

type fleetUseCaseImpl struct {
	uow           shared.UnitOfWork
	boatQueries   queries.BoatQueries
	memberQueries queries.MemberQueries
}

func NewFleetCommands(uow shared.UnitOfWork, boatQueries queries.BoatQueries, memberQueries queries.MemberQueries) FleetCommands {
	return &fleetUseCaseImpl{
		uow:           uow,
		boatQueries:   boatQueries,
		memberQueries: memberQueries,
	}
}

func (uc *fleetUseCaseImpl) CreateBoat(ctx context.Context, cmd CreateBoatCommand) (*queries.BoatView, error) {
	b, err := boat.NewBoat(uuid.New(), cmd.Name, cmd.HourlyRate, cmd.Operational)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Boats().Create(ctx, tx.DB(), b)
	})
	if err != nil {
		return nil, err
	}

	return uc.boatQueries.GetByID(ctx, b.ID())
}

func (uc *fleetUseCaseImpl) RegisterMember(ctx context.Context, cmd RegisterMemberCommand) (*queries.AuthorizedMemberView, error) {
	credentials, err := member.NewCredentials(cmd.Email, cmd.Password)
	if err != nil {
		return nil, err
	}
	role, err := member.NewRole(cmd.Role)
	if err != nil {
		return nil, err
	}
	standing, err := member.NewStanding(cmd.Standing)
	if err != nil {
		return nil, err
	}
	rating, err := member.NewSkipperRating(cmd.SkipperRating)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, err
	}

	m := member.NewMember(credentials.Email(), hash, role, standing, rating, cmd.Credits)

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Members().Create(ctx, tx.DB(), m)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return uc.memberQueries.GetByID(ctx, m.ID())
}
