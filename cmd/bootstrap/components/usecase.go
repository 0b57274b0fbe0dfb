package components

import (
	"fleetbook/internal/domain/booking"
	"fleetbook/internal/pkg/clock"
	"fleetbook/internal/pkg/config"
	"fleetbook/internal/usecase"
	"fleetbook/internal/usecase/commands"
	"fleetbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewBookingPolicy,
	func(policy booking.Policy) booking.CreditPricer {
		return booking.NewTieredPricer(policy.Tariff)
	},
)

// NewBookingPolicy maps the env-sourced booking knobs onto the domain
// policy the validator, pricer and availability queries share.
func NewBookingPolicy(cfg config.Config) booking.Policy {
	return booking.Policy{
		MaxSpan:     cfg.Booking.MaxSpan,
		MinDuration: cfg.Booking.MinDuration,
		Tariff: booking.Tariff{
			FreePeriod:          cfg.Booking.FreePeriod,
			WeekdayCeilingHours: cfg.Booking.WeekdayCeilingHours,
			WeekendCeilingHours: cfg.Booking.WeekendCeilingHours,
		},
		StartGranularity: cfg.Booking.StartGranularity,
		EndGranularity:   cfg.Booking.EndGranularity,
	}
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewFleetCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewMemberQueries,
		queries.NewBoatQueries,
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
