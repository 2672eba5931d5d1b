//go:build unit

package builder

import (
	dombooking "azulhomes/internal/domain/booking"
	reqdto "azulhomes/internal/handler/dto/request"
)

type BookingBuilder struct {
	GuestName  string
	GuestEmail string
	GuestPhone string
	CheckIn    string
	CheckOut   string
	Guests     int
	Listing    *ListingBuilder
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		GuestName:  "Jane",
		GuestEmail: "jane@x.com",
		GuestPhone: "+1 555 0100",
		CheckIn:    "2025-06-01",
		CheckOut:   "2025-06-05",
		Guests:     2,
		Listing:    NewListingBuilder(),
	}
}

func (b *BookingBuilder) WithGuestName(name string) *BookingBuilder {
	b.GuestName = name
	return b
}

func (b *BookingBuilder) WithGuestEmail(email string) *BookingBuilder {
	b.GuestEmail = email
	return b
}

func (b *BookingBuilder) WithGuestPhone(phone string) *BookingBuilder {
	b.GuestPhone = phone
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut string) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithGuests(guests int) *BookingBuilder {
	b.Guests = guests
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Request, error) {
	target, err := b.Listing.BuildDomain()
	if err != nil {
		return nil, err
	}
	return dombooking.NewRequest(
		b.GuestName, b.GuestEmail, b.GuestPhone,
		b.CheckIn, b.CheckOut, b.Guests, target,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ListingID: b.Listing.ID,
		Name:      b.GuestName,
		Email:     b.GuestEmail,
		Phone:     b.GuestPhone,
		CheckIn:   b.CheckIn,
		CheckOut:  b.CheckOut,
		Guests:    b.Guests,
	}
}
