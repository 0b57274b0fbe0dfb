package readstore

import (
	"context"
	"errors"

	"fleetbook/internal/infra"
	"fleetbook/internal/infra/db"
	"fleetbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type MemberReadStore struct {
	db db.DBTX
}

func NewMemberReadStore(dbtx db.DBTX) *MemberReadStore {
	return &MemberReadStore{db: dbtx}
}

func (r *MemberReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedMemberView, error) {
	const query = `
		SELECT id, email, role, standing, skipper_rating, credits
		FROM users
		WHERE id = $1
	`
	var view queries.AuthorizedMemberView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Email, &view.Role, &view.Standing,
		&view.SkipperRating, &view.Credits,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "member not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find member by ID", err)
	}

	return &view, nil
}

func (r *MemberReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedMemberView, string, error) {
	const query = `
		SELECT id, email, role, standing, skipper_rating, credits, password_hash
		FROM users
		WHERE email = $1
	`
	var (
		view         queries.AuthorizedMemberView
		passwordHash string
	)
	err := r.db.QueryRow(ctx, query, email).Scan(
		&view.ID, &view.Email, &view.Role, &view.Standing,
		&view.SkipperRating, &view.Credits, &passwordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr(infra.KindNotFound, "member not found", err)
		}
		return nil, "", infra.WrapRepoErr(infra.KindDBFailure, "failed to find member by email", err)
	}

	return &view, passwordHash, nil
}
