package commands

import (
	"context"
	"fmt"

	"azulhomes/internal/domain/booking"
	"azulhomes/internal/domain/listing"
	"azulhomes/internal/domain/submission"
	reqdto "azulhomes/internal/handler/dto/request"
	"azulhomes/internal/pkg/config"
	"azulhomes/internal/pkg/errs"
	"azulhomes/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrListingNotFound  = errs.New("listing not found")
	ErrDomainValidation = errs.New("domain validation error")
)

type BookingCommands interface {
	Submit(ctx context.Context, req reqdto.CreateBookingRequest) (*SubmitResult, error)
	Outcome(id uuid.UUID) (submission.Snapshot, error)
}

type bookingCommandsImpl struct {
	pipeline
	listings queries.ListingQueries
	mail     config.MailConfig
	// invoked once per successful delivery; the booking flow uses it to
	// drive its delayed close.
	onDelivered func()
}

func NewBookingCommands(
	listings queries.ListingQueries,
	mailer Mailer,
	registry *submission.Registry,
	mail config.MailConfig,
	after After,
	onDelivered func(),
) BookingCommands {
	return &bookingCommandsImpl{
		pipeline: pipeline{
			mailer:   mailer,
			registry: registry,
			timeout:  mail.SendTimeout,
			after:    after,
		},
		listings:    listings,
		mail:        mail,
		onDelivered: onDelivered,
	}
}

func (b *bookingCommandsImpl) Submit(ctx context.Context, req reqdto.CreateBookingRequest) (*SubmitResult, error) {
	view, err := b.listings.GetByID(ctx, req.ListingID)
	if err != nil {
		return nil, ErrListingNotFound
	}

	target, err := listing.NewListing(
		view.ID, view.Name, view.Location, view.Price, view.Rating,
		view.Reviews, view.Image, view.Amenities, view.Available, view.OwnerEmail,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	request, err := booking.NewRequest(
		req.Name, req.Email, req.Phone,
		req.CheckIn, req.CheckOut, req.Guests,
		target,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	result := b.run(
		ctx,
		b.mail.TemplateID,
		b.buildParams(request),
		"Failed to send booking request. ",
		"Booking request sent successfully!",
		b.onDelivered,
	)
	return result, nil
}

// buildParams lays out the flat key-value payload the email template expects.
func (b *bookingCommandsImpl) buildParams(req *booking.Request) map[string]any {
	target := req.Target()

	phone := req.GuestPhone()
	if phone == "" {
		phone = "Not provided"
	}

	return map[string]any{
		"to_email":          b.mail.Destination,
		"property_name":     target.Name(),
		"property_location": target.Location(),
		"property_price":    fmt.Sprintf("%d/night", target.Price()),
		"guest_name":        req.GuestName(),
		"guest_email":       req.GuestEmail().Value(),
		"guest_phone":       phone,
		"check_in":          req.Stay().CheckIn(),
		"check_out":         req.Stay().CheckOut(),
		"guests":            req.Guests().Value(),
		"subject":           "Booking Request - " + target.Name(),
		"reply_to":          req.GuestEmail().Value(),
	}
}
