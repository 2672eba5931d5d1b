package commands

import (
	"context"

	"azulhomes/internal/domain/booking"
	"azulhomes/internal/domain/listing"
	reqdto "azulhomes/internal/handler/dto/request"
	"azulhomes/internal/infra"
	"azulhomes/internal/pkg/errs"
	"azulhomes/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingWriteStore interface {
	Create(ctx context.Context, rec *booking.Record) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BookingRecordCommands manages the stored bookings collection on the admin
// surface. Distinct from BookingCommands, which only emails a request and
// stores nothing.
type BookingRecordCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*queries.BookingView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingRecordCommandsImpl struct {
	store    BookingWriteStore
	bookings queries.BookingReadStore
	listings queries.ListingReadStore
}

func NewBookingRecordCommands(
	store BookingWriteStore,
	bookings queries.BookingReadStore,
	listings queries.ListingReadStore,
) BookingRecordCommands {
	return &bookingRecordCommandsImpl{
		store:    store,
		bookings: bookings,
		listings: listings,
	}
}

func (b *bookingRecordCommandsImpl) Create(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error) {
	view, err := b.listings.FindByID(ctx, req.ListingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, errs.Wrap(err, "failed to load property")
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

	rec := &booking.Record{
		ID:           uuid.New(),
		PropertyID:   target.ID(),
		PropertyName: target.Name(),
		GuestName:    request.GuestName(),
		GuestEmail:   request.GuestEmail().Value(),
		GuestPhone:   request.GuestPhone(),
		CheckIn:      request.Stay().CheckIn(),
		CheckOut:     request.Stay().CheckOut(),
		Guests:       request.Guests().Value(),
		TotalPrice:   request.TotalPrice(),
		Status:       booking.StatusPending,
	}

	if err := b.store.Create(ctx, rec); err != nil {
		return nil, errs.Wrap(err, "failed to create booking")
	}
	return b.fetch(ctx, rec.ID)
}

func (b *bookingRecordCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*queries.BookingView, error) {
	parsed, err := booking.NewStatus(status)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := b.store.UpdateStatus(ctx, id, parsed); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to update booking status")
	}
	return b.fetch(ctx, id)
}

func (b *bookingRecordCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := b.store.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Wrap(err, "failed to delete booking")
	}
	return nil
}

func (b *bookingRecordCommandsImpl) fetch(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	view, err := b.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to load booking")
	}
	return view, nil
}
