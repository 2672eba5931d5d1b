package catalog

import (
	"context"
	"time"

	"azulhomes/internal/infra"
	"azulhomes/internal/usecase/queries"

	"github.com/google/uuid"
)

var defaultAmenities = []string{
	"WiFi", "Kitchen", "Parking", "24/7 Security",
	"Living-Room", "Air Conditioning", "Master Bedroom",
}

const defaultOwnerEmail = "gidzdaquan@gmail.com"

// Static is the in-memory catalog seed. IDs are fixed so links stay stable
// across restarts.
type Static struct {
	listings []*queries.ListingView
}

func NewStatic(seededAt time.Time) *Static {
	seed := func(id, name, location string, price int, rating float64, reviews int, image string) *queries.ListingView {
		return &queries.ListingView{
			ID:         uuid.MustParse(id),
			Name:       name,
			Location:   location,
			Price:      price,
			Rating:     rating,
			Reviews:    reviews,
			Image:      image,
			Amenities:  append([]string(nil), defaultAmenities...),
			Available:  true,
			OwnerEmail: defaultOwnerEmail,
			CreatedAt:  seededAt,
			UpdatedAt:  seededAt,
		}
	}
	return &Static{
		listings: []*queries.ListingView{
			seed("6f1a2b3c-0000-4000-8000-000000000001", "Ocean View Villa", "Miami Beach, FL", 299, 4.9, 128, "/image1.jpg"),
			seed("6f1a2b3c-0000-4000-8000-000000000002", "Downtown Loft", "New York, NY", 189, 4.7, 89, "/image2.jpg"),
			seed("6f1a2b3c-0000-4000-8000-000000000003", "Mountain Retreat", "Aspen, CO", 399, 5.0, 156, "/image3.jpg"),
			seed("6f1a2b3c-0000-4000-8000-000000000004", "Garden Suite", "San Francisco, CA", 249, 4.8, 203, "/image4.jpg"),
			seed("6f1a2b3c-0000-4000-8000-000000000005", "Penthouse Dreams", "Los Angeles, CA", 599, 4.9, 74, "/image5.jpg"),
			seed("6f1a2b3c-0000-4000-8000-000000000006", "Beach Cottage", "Malibu, CA", 349, 4.6, 91, "/image6.jpg"),
		},
	}
}

func (s *Static) FindAll(ctx context.Context) ([]*queries.ListingView, error) {
	out := make([]*queries.ListingView, 0, len(s.listings))
	for _, l := range s.listings {
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (s *Static) FindAvailable(ctx context.Context) ([]*queries.ListingView, error) {
	out := make([]*queries.ListingView, 0, len(s.listings))
	for _, l := range s.listings {
		if !l.Available {
			continue
		}
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (s *Static) FindByID(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	for _, l := range s.listings {
		if l.ID == id {
			cp := *l
			return &cp, nil
		}
	}
	return nil, infra.NewRepositoryError(infra.KindNotFound, "listing not found")
}
