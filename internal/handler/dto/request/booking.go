package request

import "github.com/google/uuid"

type CreateBookingRequest struct {
	ListingID uuid.UUID `json:"listingId" binding:"required"`
	Name      string    `json:"name" binding:"required"`
	Email     string    `json:"email" binding:"required,email"`
	Phone     string    `json:"phone"`
	CheckIn   string    `json:"checkIn" binding:"required"`
	CheckOut  string    `json:"checkOut" binding:"required"`
	Guests    int       `json:"guests" binding:"required,min=1,max=8"`
}
