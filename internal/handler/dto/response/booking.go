package response

import (
	"time"

	"azulhomes/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
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

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromBookingViews(rms []*queries.BookingView) []*BookingResponse {
	resp := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromBookingView(rm)
	}
	return resp
}
