package repository

import (
	"context"

	"fleetbook/internal/domain/boat"
	"fleetbook/internal/infra/db"
)

type BoatRepository struct{}

func NewBoatRepository() *BoatRepository {
	return &BoatRepository{}
}

func (r *BoatRepository) Create(ctx context.Context, dbtx db.DBTX, b *boat.Boat) error {
	const query = `
		INSERT INTO boats (id, name, hourly_rate, operational, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
	`
	if _, err := dbtx.Exec(ctx, query, b.ID(), b.Name(), b.HourlyRate(), b.IsOperational()); err != nil {
		return wrapWriteErr("failed to create boat", err)
	}
	return nil
}
