package commands

import (
	"context"

	"azulhomes/internal/domain/listing"
	reqdto "azulhomes/internal/handler/dto/request"
	"azulhomes/internal/infra"
	"azulhomes/internal/pkg/errs"
	"azulhomes/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrPropertyNotFound = errs.New("property not found")

// PropertyPatch carries partial field updates. Nil fields keep the stored
// value.
type PropertyPatch struct {
	Name      *string
	Location  *string
	Price     *int
	Rating    *float64
	Reviews   *int
	Image     *string
	Amenities *[]string
	Available *bool
}

type PropertyWriteStore interface {
	Create(ctx context.Context, l *listing.Listing) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields PropertyPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
}

type PropertyCommands interface {
	Create(ctx context.Context, req reqdto.CreatePropertyRequest) (*queries.ListingView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdatePropertyRequest) (*queries.ListingView, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleAvailability(ctx context.Context, id uuid.UUID) (*queries.ListingView, error)
}

type propertyCommandsImpl struct {
	store    PropertyWriteStore
	listings queries.ListingReadStore
}

func NewPropertyCommands(store PropertyWriteStore, listings queries.ListingReadStore) PropertyCommands {
	return &propertyCommandsImpl{
		store:    store,
		listings: listings,
	}
}

func (p *propertyCommandsImpl) Create(ctx context.Context, req reqdto.CreatePropertyRequest) (*queries.ListingView, error) {
	l, err := listing.NewListing(
		uuid.New(), req.Name, req.Location, req.Price, req.Rating,
		req.Reviews, req.Image, req.Amenities, req.Available, req.OwnerEmail,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := p.store.Create(ctx, l); err != nil {
		return nil, errs.Wrap(err, "failed to create property")
	}
	return p.fetch(ctx, l.ID())
}

func (p *propertyCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdatePropertyRequest) (*queries.ListingView, error) {
	fields := PropertyPatch{
		Name:      req.Name,
		Location:  req.Location,
		Price:     req.Price,
		Rating:    req.Rating,
		Reviews:   req.Reviews,
		Image:     req.Image,
		Amenities: req.Amenities,
		Available: req.Available,
	}
	if err := p.store.UpdateFields(ctx, id, fields); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, errs.Wrap(err, "failed to update property")
	}
	return p.fetch(ctx, id)
}

func (p *propertyCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := p.store.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPropertyNotFound
		}
		return errs.Wrap(err, "failed to delete property")
	}
	return nil
}

func (p *propertyCommandsImpl) ToggleAvailability(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	current, err := p.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.store.SetAvailability(ctx, id, !current.Available); err != nil {
		return nil, errs.Wrap(err, "failed to toggle property availability")
	}
	return p.fetch(ctx, id)
}

func (p *propertyCommandsImpl) fetch(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	view, err := p.listings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, errs.Wrap(err, "failed to load property")
	}
	return view, nil
}
