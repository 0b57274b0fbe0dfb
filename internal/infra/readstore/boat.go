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

type BoatReadStore struct {
	db db.DBTX
}

func NewBoatReadStore(dbtx db.DBTX) *BoatReadStore {
	return &BoatReadStore{db: dbtx}
}

func (r *BoatReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BoatView, error) {
	const query = `
		SELECT id, name, hourly_rate, operational, created_at, updated_at
		FROM boats
		WHERE id = $1
	`
	var view queries.BoatView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Name, &view.HourlyRate, &view.Operational,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "boat not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find boat by ID", err)
	}

	return &view, nil
}

func (r *BoatReadStore) FindAll(ctx context.Context) ([]*queries.BoatView, error) {
	const query = `
		SELECT id, name, hourly_rate, operational, created_at, updated_at
		FROM boats
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list boats", err)
	}
	defer rows.Close()

	var boats []*queries.BoatView
	for rows.Next() {
		var view queries.BoatView
		if err := rows.Scan(
			&view.ID, &view.Name, &view.HourlyRate, &view.Operational,
			&view.CreatedAt, &view.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan boat row", err)
		}
		boats = append(boats, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate boat rows", err)
	}

	return boats, nil
}
