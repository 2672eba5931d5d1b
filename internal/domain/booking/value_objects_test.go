//go:build unit

package booking_test

import (
	"testing"

	"azulhomes/internal/domain/booking"
	"azulhomes/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "Jane", actual.GuestName())
		assert.Equal(t, "jane@x.com", actual.GuestEmail().Value())
		assert.Equal(t, "2025-06-01", actual.Stay().CheckIn())
		assert.Equal(t, "2025-06-05", actual.Stay().CheckOut())
		assert.Equal(t, 2, actual.Guests().Value())
		assert.Equal(t, "Ocean View Villa", actual.Target().Name())
		assert.Equal(t, 4, actual.Stay().Nights())
		assert.Equal(t, 299*4, actual.TotalPrice())
	})

	t.Run("guest count validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below minimum",
				mutate: func(b *builder.BookingBuilder) { b.WithGuests(0) },
				errIs:  booking.ErrInvalidGuestCount,
			},
			{
				name:   "minimum",
				mutate: func(b *builder.BookingBuilder) { b.WithGuests(1) },
			},
			{
				name:   "maximum",
				mutate: func(b *builder.BookingBuilder) { b.WithGuests(8) },
			},
			{
				name:   "above maximum",
				mutate: func(b *builder.BookingBuilder) { b.WithGuests(9) },
				errIs:  booking.ErrInvalidGuestCount,
			},
		})
	})

	t.Run("stay validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "malformed check-in",
				mutate: func(b *builder.BookingBuilder) { b.WithStay("June 1st", "2025-06-05") },
				errIs:  booking.ErrInvalidStayDate,
			},
			{
				name:   "malformed check-out",
				mutate: func(b *builder.BookingBuilder) { b.WithStay("2025-06-01", "") },
				errIs:  booking.ErrInvalidStayDate,
			},
			{
				name:   "check-out equals check-in",
				mutate: func(b *builder.BookingBuilder) { b.WithStay("2025-06-01", "2025-06-01") },
				errIs:  booking.ErrInvertedStay,
			},
			{
				name:   "check-out before check-in",
				mutate: func(b *builder.BookingBuilder) { b.WithStay("2025-06-05", "2025-06-01") },
				errIs:  booking.ErrInvertedStay,
			},
		})
	})

	t.Run("guest identity validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.BookingBuilder) { b.WithGuestName("   ") },
				errIs:  booking.ErrEmptyGuestName,
			},
			{
				name:   "invalid email",
				mutate: func(b *builder.BookingBuilder) { b.WithGuestEmail("not-an-email") },
				errIs:  booking.ErrInvalidGuestEmail,
			},
			{
				name:   "phone is optional",
				mutate: func(b *builder.BookingBuilder) { b.WithGuestPhone("") },
			},
		})
	})

	t.Run("missing listing", func(t *testing.T) {
		_, err := booking.NewRequest("Jane", "jane@x.com", "", "2025-06-01", "2025-06-05", 2, nil)
		require.ErrorIs(t, err, booking.ErrMissingListing)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder()
			tc.mutate(b)

			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
