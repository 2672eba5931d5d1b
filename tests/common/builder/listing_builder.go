//go:build unit

package builder

import (
	"time"

	domlisting "azulhomes/internal/domain/listing"
	reqdto "azulhomes/internal/handler/dto/request"
	"azulhomes/internal/usecase/queries"

	"github.com/google/uuid"
)

type ListingBuilder struct {
	ID         uuid.UUID
	Name       string
	Location   string
	Price      int
	Rating     float64
	Reviews    int
	Image      string
	Amenities  []string
	Available  bool
	OwnerEmail string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewListingBuilder() *ListingBuilder {
	now := time.Now()
	return &ListingBuilder{
		ID:         uuid.New(),
		Name:       "Ocean View Villa",
		Location:   "Miami Beach, FL",
		Price:      299,
		Rating:     4.9,
		Reviews:    128,
		Image:      "/image1.jpg",
		Amenities:  []string{"WiFi", "Kitchen", "Parking"},
		Available:  true,
		OwnerEmail: "owner@example.com",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (l *ListingBuilder) WithName(name string) *ListingBuilder {
	l.Name = name
	return l
}

func (l *ListingBuilder) WithLocation(location string) *ListingBuilder {
	l.Location = location
	return l
}

func (l *ListingBuilder) WithPrice(price int) *ListingBuilder {
	l.Price = price
	return l
}

func (l *ListingBuilder) WithRating(rating float64) *ListingBuilder {
	l.Rating = rating
	return l
}

func (l *ListingBuilder) WithReviews(reviews int) *ListingBuilder {
	l.Reviews = reviews
	return l
}

func (l *ListingBuilder) WithAvailable(available bool) *ListingBuilder {
	l.Available = available
	return l
}

// Build methods
func (l *ListingBuilder) BuildDomain() (*domlisting.Listing, error) {
	return domlisting.NewListing(
		l.ID, l.Name, l.Location, l.Price, l.Rating,
		l.Reviews, l.Image, l.Amenities, l.Available, l.OwnerEmail,
	)
}

func (l *ListingBuilder) BuildView() *queries.ListingView {
	return &queries.ListingView{
		ID:         l.ID,
		Name:       l.Name,
		Location:   l.Location,
		Price:      l.Price,
		Rating:     l.Rating,
		Reviews:    l.Reviews,
		Image:      l.Image,
		Amenities:  append([]string(nil), l.Amenities...),
		Available:  l.Available,
		OwnerEmail: l.OwnerEmail,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

func (l *ListingBuilder) BuildCreateRequestDTO() reqdto.CreatePropertyRequest {
	return reqdto.CreatePropertyRequest{
		Name:       l.Name,
		Location:   l.Location,
		Price:      l.Price,
		Rating:     l.Rating,
		Reviews:    l.Reviews,
		Image:      l.Image,
		Amenities:  l.Amenities,
		Available:  l.Available,
		OwnerEmail: l.OwnerEmail,
	}
}
