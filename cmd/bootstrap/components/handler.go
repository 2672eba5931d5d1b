package components

import (
	"azulhomes/internal/handler"
	"azulhomes/internal/handler/api"
	"azulhomes/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewListingHandler,
		api.NewBookingHandler,
		api.NewContactHandler,
		api.NewSubmissionHandler,
		api.NewAdminHandler,
		api.NewHeroHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	listing *api.ListingHandler,
	booking *api.BookingHandler,
	contact *api.ContactHandler,
	submission *api.SubmissionHandler,
	admin *api.AdminHandler,
	hero *api.HeroHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:       auth,
		Listing:    listing,
		Booking:    booking,
		Contact:    contact,
		Submission: submission,
		Admin:      admin,
		Hero:       hero,
	}
}
