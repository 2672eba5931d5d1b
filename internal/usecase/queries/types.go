package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read-side views returned to handlers.

type ListingView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Location   string    `json:"location"`
	Price      int       `json:"price"`
	Rating     float64   `json:"rating"`
	Reviews    int       `json:"reviews"`
	Image      string    `json:"image"`
	Amenities  []string  `json:"amenities"`
	Available  bool      `json:"available"`
	OwnerEmail string    `json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type BookingView struct {
	ID           uuid.UUID `json:"id"`
	PropertyID   uuid.UUID `json:"propertyId"`
	PropertyName string    `json:"propertyName"`
	GuestName    string    `json:"guestName"`
	GuestEmail   string    `json:"guestEmail"`
	GuestPhone   string    `json:"guestPhone"`
	CheckIn      string    `json:"checkIn"`
	CheckOut     string    `json:"checkOut"`
	Guests       int       `json:"guests"`
	TotalPrice   int       `json:"totalPrice"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
