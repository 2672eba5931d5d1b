package booking

import (
	"errors"
	"strings"

	"azulhomes/internal/domain/listing"

	"github.com/google/uuid"
)

var ErrMissingListing = errors.New("booking request requires a listing")

// Request is a transient booking request. It exists only for the duration of
// one submission and always references exactly one listing, fixed at
// construction; it is never stored by the submission pipeline.
type Request struct {
	guestName  string
	guestEmail GuestEmail
	guestPhone string
	stay       StayPeriod
	guests     GuestCount
	target     *listing.Listing
}

func NewRequest(
	guestName string,
	guestEmail string,
	guestPhone string,
	checkIn string,
	checkOut string,
	guests int,
	target *listing.Listing,
) (*Request, error) {
	if target == nil {
		return nil, ErrMissingListing
	}

	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		return nil, ErrEmptyGuestName
	}

	email, err := NewGuestEmail(guestEmail)
	if err != nil {
		return nil, err
	}

	stay, err := NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	count, err := NewGuestCount(guests)
	if err != nil {
		return nil, err
	}

	return &Request{
		guestName:  guestName,
		guestEmail: email,
		guestPhone: strings.TrimSpace(guestPhone),
		stay:       stay,
		guests:     count,
		target:     target,
	}, nil
}

func (r *Request) GuestName() string        { return r.guestName }
func (r *Request) GuestEmail() GuestEmail   { return r.guestEmail }
func (r *Request) GuestPhone() string       { return r.guestPhone }
func (r *Request) Stay() StayPeriod         { return r.stay }
func (r *Request) Guests() GuestCount       { return r.guests }
func (r *Request) Target() *listing.Listing { return r.target }

// TotalPrice is nightly price times nights, used only for the stored booking
// record. The delivery payload carries the nightly price.
func (r *Request) TotalPrice() int {
	return r.target.Price() * r.stay.Nights()
}

// Record is a booking document persisted in the bookings collection.
// Created on the admin surface, not by the submission pipeline.
type Record struct {
	ID           uuid.UUID
	PropertyID   uuid.UUID
	PropertyName string
	GuestName    string
	GuestEmail   string
	GuestPhone   string
	CheckIn      string
	CheckOut     string
	Guests       int
	TotalPrice   int
	Status       Status
}
