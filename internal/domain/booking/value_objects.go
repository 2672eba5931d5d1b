package booking

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrEmptyGuestName    = errors.New("guest name is required")
	ErrInvalidGuestEmail = errors.New("invalid guest email format")
	ErrInvalidStayDate   = errors.New("stay dates must be in YYYY-MM-DD format")
	ErrInvertedStay      = errors.New("check-out must be after check-in")
	ErrInvalidGuestCount = errors.New("guest count must be between 1 and 8")
)

const (
	stayDateLayout = "2006-01-02"

	MinGuests = 1
	MaxGuests = 8
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type GuestEmail struct {
	value string
}

func NewGuestEmail(s string) (GuestEmail, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return GuestEmail{}, ErrInvalidGuestEmail
	}
	return GuestEmail{value: s}, nil
}

func (e GuestEmail) Value() string {
	return e.value
}

// StayPeriod holds the check-in/check-out pair as date strings, the way the
// delivery channel wants them on the wire.
type StayPeriod struct {
	checkIn  string
	checkOut string
}

func NewStayPeriod(checkIn, checkOut string) (StayPeriod, error) {
	in, err := time.Parse(stayDateLayout, checkIn)
	if err != nil {
		return StayPeriod{}, ErrInvalidStayDate
	}
	out, err := time.Parse(stayDateLayout, checkOut)
	if err != nil {
		return StayPeriod{}, ErrInvalidStayDate
	}
	if !out.After(in) {
		return StayPeriod{}, ErrInvertedStay
	}
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}, nil
}

func (s StayPeriod) CheckIn() string  { return s.checkIn }
func (s StayPeriod) CheckOut() string { return s.checkOut }

func (s StayPeriod) Nights() int {
	in, _ := time.Parse(stayDateLayout, s.checkIn)
	out, _ := time.Parse(stayDateLayout, s.checkOut)
	return int(out.Sub(in).Hours() / 24)
}

type GuestCount struct {
	value int
}

func NewGuestCount(n int) (GuestCount, error) {
	if n < MinGuests || n > MaxGuests {
		return GuestCount{}, ErrInvalidGuestCount
	}
	return GuestCount{value: n}, nil
}

func (g GuestCount) Value() int {
	return g.value
}
