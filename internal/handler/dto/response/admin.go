package response

import (
	"azulhomes/internal/usecase/admin"
)

type OverviewResponse struct {
	TotalProperties       int     `json:"totalProperties"`
	AvailableProperties   int     `json:"availableProperties"`
	UnavailableProperties int     `json:"unavailableProperties"`
	TotalRevenue          int     `json:"totalRevenue"`
	AverageRating         float64 `json:"averageRating"`
}

func FromOverview(stats admin.Overview) *OverviewResponse {
	return &OverviewResponse{
		TotalProperties:       stats.TotalProperties,
		AvailableProperties:   stats.AvailableProperties,
		UnavailableProperties: stats.UnavailableProperties,
		TotalRevenue:          stats.TotalRevenue,
		AverageRating:         stats.AverageRating,
	}
}

type AdminPropertyResponse struct {
	*ListingResponse
}

type MockLoginResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
