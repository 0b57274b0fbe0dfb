package repository

import (
	"context"

	"fleetbook/internal/domain/booking"
	"fleetbook/internal/domain/member"
	"fleetbook/internal/infra"
	"fleetbook/internal/infra/db"

	"github.com/google/uuid"
)

type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

func (r *MemberRepository) Create(ctx context.Context, dbtx db.DBTX, m *member.Member) error {
	const query = `
		INSERT INTO users (id, email, password_hash, role, standing, skipper_rating, credits, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
	`
	_, err := dbtx.Exec(ctx, query,
		m.ID(), m.Email().Value(), m.PasswordHash(),
		m.Role().String(), m.Standing().String(), m.SkipperRating().String(),
		m.Credits(),
	)
	if err != nil {
		return wrapWriteErr("failed to create member", err)
	}
	return nil
}

// ApplyBalanceDeltas adjusts each member's balance with a single UPDATE
// per member. Deltas come pre-merged from the ledger planner, so no
// member appears twice.
func (r *MemberRepository) ApplyBalanceDeltas(ctx context.Context, dbtx db.DBTX, deltas []booking.BalanceDelta) error {
	const query = `
		UPDATE users
		SET credits = credits + $1, updated_at = now()
		WHERE id = $2
	`
	for _, d := range deltas {
		tag, err := dbtx.Exec(ctx, query, d.Delta, d.MemberID)
		if err != nil {
			return wrapWriteErr("failed to apply balance delta", err)
		}
		if tag.RowsAffected() == 0 {
			return infra.WrapRepoErr(infra.KindNotFound, "member not found", nil)
		}
	}
	return nil
}

func (r *MemberRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, memberID uuid.UUID) error {
	const query = `
		UPDATE users
		SET last_login_at = now()
		WHERE id = $1
	`
	if _, err := dbtx.Exec(ctx, query, memberID); err != nil {
		return wrapWriteErr("failed to update last login", err)
	}
	return nil
}
