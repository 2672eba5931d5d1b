//go:build unit

package listing_test

import (
	"testing"

	"azulhomes/internal/domain/listing"
	"azulhomes/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ListingBuilder)
	errIs  error
}

func TestListing(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewListingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Ocean View Villa", actual.Name())
		assert.Equal(t, "Miami Beach, FL", actual.Location())
		assert.Equal(t, 299, actual.Price())
		assert.True(t, actual.Available())
	})

	t.Run("price validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero price",
				mutate: func(b *builder.ListingBuilder) { b.WithPrice(0) },
				errIs:  listing.ErrInvalidPrice,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.ListingBuilder) { b.WithPrice(-10) },
				errIs:  listing.ErrInvalidPrice,
			},
			{
				name:   "minimum valid price",
				mutate: func(b *builder.ListingBuilder) { b.WithPrice(1) },
			},
		})
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below range",
				mutate: func(b *builder.ListingBuilder) { b.WithRating(-0.1) },
				errIs:  listing.ErrInvalidRating,
			},
			{
				name:   "lower bound",
				mutate: func(b *builder.ListingBuilder) { b.WithRating(0) },
			},
			{
				name:   "upper bound",
				mutate: func(b *builder.ListingBuilder) { b.WithRating(5) },
			},
			{
				name:   "above range",
				mutate: func(b *builder.ListingBuilder) { b.WithRating(5.1) },
				errIs:  listing.ErrInvalidRating,
			},
		})
	})

	t.Run("required fields", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.ListingBuilder) { b.WithName("") },
				errIs:  listing.ErrEmptyName,
			},
			{
				name:   "empty location",
				mutate: func(b *builder.ListingBuilder) { b.WithLocation("") },
				errIs:  listing.ErrEmptyLocation,
			},
			{
				name:   "negative review count",
				mutate: func(b *builder.ListingBuilder) { b.WithReviews(-1) },
				errIs:  listing.ErrInvalidReviewCount,
			},
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewListingBuilder()
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
