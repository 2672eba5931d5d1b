package components

import (
	"context"

	"azulhomes/internal/domain/listing"
	"azulhomes/internal/domain/user"
	"azulhomes/internal/infra"
	"azulhomes/internal/infra/catalog"
	"azulhomes/internal/infra/identity"
	repo_impl "azulhomes/internal/infra/repository"
	"azulhomes/internal/infra/mailer"
	"azulhomes/internal/pkg/clock"
	"azulhomes/internal/pkg/config"
	"azulhomes/internal/pkg/password"
	"azulhomes/internal/usecase"
	"azulhomes/internal/usecase/commands"
	"azulhomes/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repo_impl.NewUserRepository,
		fx.Annotate(
			repo_impl.NewPropertyRepository,
			fx.As(new(queries.ListingReadStore)),
			fx.As(new(commands.PropertyWriteStore)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(commands.BookingWriteStore)),
		),
		fx.Annotate(
			func(users *repo_impl.UserRepository) *repo_impl.UserRepository { return users },
			fx.As(new(usecase.UserReadStore)),
			fx.As(new(identity.AccountStore)),
		),
		func(cfg config.Config) *mailer.EmailJS {
			return mailer.NewEmailJS(cfg.Mail)
		},
		fx.Annotate(
			func(m *mailer.EmailJS) *mailer.EmailJS { return m },
			fx.As(new(commands.Mailer)),
		),
		func(clk clock.Clock) *catalog.Static {
			return catalog.NewStatic(clk.Now())
		},
	),
	fx.Invoke(SeedCatalog),
	fx.Invoke(SeedAdminUser),
)

// SeedCatalog copies the static listings into an empty properties collection
// so a fresh database serves the same catalog the site launched with.
func SeedCatalog(seed *catalog.Static, store commands.PropertyWriteStore, reads queries.ListingReadStore) error {
	ctx := context.Background()

	existing, err := reads.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	views, err := seed.FindAll(ctx)
	if err != nil {
		return err
	}
	for _, v := range views {
		l, err := listing.NewListing(
			v.ID, v.Name, v.Location, v.Price, v.Rating,
			v.Reviews, v.Image, v.Amenities, v.Available, v.OwnerEmail,
		)
		if err != nil {
			return err
		}
		if err := store.Create(ctx, l); err != nil {
			return err
		}
	}
	return nil
}

// SeedAdminUser creates the administrator account on first boot. No-op when
// ADMIN_PASSWORD is unset or the account already exists.
func SeedAdminUser(cfg config.Config, users *repo_impl.UserRepository) error {
	if cfg.Admin.Password == "" {
		return nil
	}

	ctx := context.Background()

	if _, err := users.FindByEmail(ctx, cfg.Admin.Email); err == nil {
		return nil
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return err
	}

	email, err := user.NewEmail(cfg.Admin.Email)
	if err != nil {
		return err
	}
	hash, err := password.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}
	return users.Create(ctx, user.NewUser(email, cfg.Admin.DisplayName, hash, user.RoleAdmin))
}
