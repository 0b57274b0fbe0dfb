package components

import (
	"fleetbook/internal/infra/db"
	"fleetbook/internal/infra/readstore"
	"fleetbook/internal/infra/uow"
	"fleetbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork opens serializable transactions; the write
		// repositories are created inside it per transaction.
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewBoatReadStore,
			fx.As(new(queries.BoatReadStore)),
		),
		fx.Annotate(
			readstore.NewMemberReadStore,
			fx.As(new(queries.MemberReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
