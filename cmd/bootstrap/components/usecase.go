package components

import (
	"context"
	"math/rand"
	"time"

	"azulhomes/internal/domain/submission"
	"azulhomes/internal/infra/identity"
	"azulhomes/internal/pkg/clock"
	"azulhomes/internal/pkg/config"
	"azulhomes/internal/usecase"
	"azulhomes/internal/usecase/admin"
	"azulhomes/internal/usecase/commands"
	"azulhomes/internal/usecase/hero"
	"azulhomes/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	usecaseDashboardModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	submission.NewRegistry,
	commands.RealAfter,
	fx.Annotate(
		func(cfg config.Config) *usecase.AdminEmailResolver {
			return usecase.NewAdminEmailResolver(cfg.Admin.Email)
		},
		fx.As(new(usecase.RoleResolver)),
	),
	fx.Annotate(
		identity.NewService,
		fx.As(new(usecase.IdentityService)),
	),
	usecase.NewAuthUseCase,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewListingQueries,
		queries.NewBookingQueries,
		commands.NewSubmissionQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(
			listings queries.ListingQueries,
			mailer commands.Mailer,
			registry *submission.Registry,
			cfg config.Config,
			after commands.After,
		) commands.BookingCommands {
			return commands.NewBookingCommands(listings, mailer, registry, cfg.Mail, after, nil)
		},
		func(
			mailer commands.Mailer,
			registry *submission.Registry,
			cfg config.Config,
			after commands.After,
		) commands.ContactCommands {
			return commands.NewContactCommands(mailer, registry, cfg.Mail, after)
		},
		commands.NewPropertyCommands,
		commands.NewBookingRecordCommands,
	),
)

var usecaseDashboardModule = fx.Module("usecase/dashboard",
	fx.Provide(
		func(store queries.ListingReadStore, cfg config.Config) *admin.Dashboard {
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			return admin.NewDashboard(store, rng, cfg.Admin)
		},
		func(cfg config.Config) *hero.Rotator {
			return hero.NewRotator(hero.DefaultImages, cfg.Hero.RotateInterval)
		},
	),
	fx.Invoke(startHeroRotation),
)

func startHeroRotation(lc fx.Lifecycle, rotator *hero.Rotator) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			rotator.Start(context.Background())
			return nil
		},
		OnStop: func(_ context.Context) error {
			rotator.Stop()
			return nil
		},
	})
}
