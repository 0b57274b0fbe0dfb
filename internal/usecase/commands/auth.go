package commands

import (
	"context"

	"fleetbook/internal/domain/member"
	"fleetbook/internal/infra"
	"fleetbook/internal/pkg/errs"
	"fleetbook/internal/pkg/jwt"
	"fleetbook/internal/pkg/password"
	"fleetbook/internal/usecase/queries"
	"fleetbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	Token  string
	Member *queries.AuthorizedMemberView
}

type AuthCommands interface {
	Login(ctx context.Context, credentials member.Credentials) (*LoginResult, error)
}

type authUseCaseImpl struct {
	uow        shared.UnitOfWork
	members    queries.MemberReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, members queries.MemberReadStore, jwtService *jwt.Service) AuthCommands {
	return &authUseCaseImpl{
		uow:        uow,
		members:    members,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials member.Credentials) (*LoginResult, error) {
	view, passwordHash, err := a.members.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(passwordHash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := member.NewRole(view.Role)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, ErrTokenGeneration
	}

	if err := a.touchLastLogin(ctx, view.ID); err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, Member: view}, nil
}

func (a *authUseCaseImpl) touchLastLogin(ctx context.Context, memberID uuid.UUID) error {
	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Members().UpdateLastLogin(ctx, tx.DB(), memberID)
	})
}
