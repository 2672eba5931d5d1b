package response

import (
	"time"

	"azulhomes/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ListingResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Price     int       `json:"price"`
	Rating    float64   `json:"rating"`
	Reviews   int       `json:"reviews"`
	Image     string    `json:"image"`
	Amenities []string  `json:"amenities"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromListingView(rm *queries.ListingView) *ListingResponse {
	var resp ListingResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromListingViews(rms []*queries.ListingView) []*ListingResponse {
	resp := make([]*ListingResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromListingView(rm)
	}
	return resp
}
