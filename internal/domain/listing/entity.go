package listing

import (
	"time"

	"github.com/google/uuid"
)

// Listing is a rentable property record shown in the catalog.
// Immutable in the catalog scope; availability is flipped only on the
// detached admin copy or through the property store.
type Listing struct {
	id         uuid.UUID
	name       string
	location   string
	price      int
	rating     float64
	reviews    int
	image      string
	amenities  []string
	available  bool
	ownerEmail string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewListing(
	id uuid.UUID,
	name string,
	location string,
	price int,
	rating float64,
	reviews int,
	image string,
	amenities []string,
	available bool,
	ownerEmail string,
) (*Listing, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if location == "" {
		return nil, ErrEmptyLocation
	}
	if price <= 0 {
		return nil, ErrInvalidPrice
	}
	if rating < 0 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if reviews < 0 {
		return nil, ErrInvalidReviewCount
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Listing{
		id:         id,
		name:       name,
		location:   location,
		price:      price,
		rating:     rating,
		reviews:    reviews,
		image:      image,
		amenities:  amenities,
		available:  available,
		ownerEmail: ownerEmail,
	}, nil
}

func (l *Listing) ID() uuid.UUID        { return l.id }
func (l *Listing) Name() string         { return l.name }
func (l *Listing) Location() string     { return l.location }
func (l *Listing) Price() int           { return l.price }
func (l *Listing) Rating() float64      { return l.rating }
func (l *Listing) Reviews() int         { return l.reviews }
func (l *Listing) Image() string        { return l.image }
func (l *Listing) Amenities() []string  { return l.amenities }
func (l *Listing) Available() bool      { return l.available }
func (l *Listing) OwnerEmail() string   { return l.ownerEmail }
func (l *Listing) CreatedAt() time.Time { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time { return l.updatedAt }
