//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"azulhomes/internal/domain/submission"
	"azulhomes/internal/pkg/config"
	"azulhomes/internal/usecase/commands"
	"azulhomes/tests/common/builder"
	commandsmock "azulhomes/tests/mock/commands"
	queriesmock "azulhomes/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeAfter captures scheduled transitions so tests can fire them by hand.
type fakeAfter struct {
	scheduled []struct {
		delay time.Duration
		fn    func()
	}
}

func (f *fakeAfter) After(d time.Duration, fn func()) {
	f.scheduled = append(f.scheduled, struct {
		delay time.Duration
		fn    func()
	}{d, fn})
}

func newBookingFixture(t *testing.T) (
	commands.BookingCommands,
	*queriesmock.MockListingQueries,
	*commandsmock.MockMailer,
	*submission.Registry,
	*fakeAfter,
) {
	t.Helper()
	ctrl := gomock.NewController(t)
	listings := queriesmock.NewMockListingQueries(ctrl)
	mailer := commandsmock.NewMockMailer(ctrl)
	registry := submission.NewRegistry()
	after := &fakeAfter{}

	cmds := commands.NewBookingCommands(
		listings, mailer, registry,
		config.NewTestConfig().Mail, after.After, nil,
	)
	return cmds, listings, mailer, registry, after
}

func TestBookingSubmit(t *testing.T) {
	t.Run("successful delivery carries the full payload", func(t *testing.T) {
		cmds, listings, mailer, _, after := newBookingFixture(t)

		b := builder.NewBookingBuilder()
		req := b.BuildCreateRequestDTO()
		listings.EXPECT().GetByID(gomock.Any(), b.Listing.ID).
			Return(b.Listing.BuildView(), nil)

		var sent map[string]any
		mailer.EXPECT().Send(gomock.Any(), "template_test", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, params map[string]any) error {
				sent = params
				return nil
			})

		result, err := cmds.Submit(context.Background(), req)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, submission.StatusSuccess, result.Outcome.Status)
		assert.True(t, result.Outcome.InFlight)
		assert.Equal(t, "Booking request sent successfully!", result.Outcome.Message)

		assert.Equal(t, "owner@example.com", sent["to_email"])
		assert.Equal(t, "Ocean View Villa", sent["property_name"])
		assert.Equal(t, "Miami Beach, FL", sent["property_location"])
		assert.Equal(t, "299/night", sent["property_price"])
		assert.Equal(t, "Jane", sent["guest_name"])
		assert.Equal(t, "jane@x.com", sent["guest_email"])
		assert.Equal(t, "+1 555 0100", sent["guest_phone"])
		assert.Equal(t, "2025-06-01", sent["check_in"])
		assert.Equal(t, "2025-06-05", sent["check_out"])
		assert.Equal(t, 2, sent["guests"])
		assert.Equal(t, "Booking Request - Ocean View Villa", sent["subject"])
		assert.Equal(t, "jane@x.com", sent["reply_to"])

		// The delayed transitions drop in-flight first, then settle to idle.
		require.Len(t, after.scheduled, 2)
		assert.Equal(t, time.Second, after.scheduled[0].delay)
		assert.Equal(t, 3*time.Second, after.scheduled[1].delay)

		after.scheduled[0].fn()
		snap, err := cmds.Outcome(result.SubmissionID)
		require.NoError(t, err)
		assert.Equal(t, submission.StatusSuccess, snap.Status)
		assert.False(t, snap.InFlight)

		after.scheduled[1].fn()
		snap, err = cmds.Outcome(result.SubmissionID)
		require.NoError(t, err)
		assert.Equal(t, submission.StatusIdle, snap.Status)
		assert.Empty(t, snap.Message)
	})

	t.Run("missing phone is reported as not provided", func(t *testing.T) {
		cmds, listings, mailer, _, _ := newBookingFixture(t)

		b := builder.NewBookingBuilder().WithGuestPhone("")
		listings.EXPECT().GetByID(gomock.Any(), b.Listing.ID).
			Return(b.Listing.BuildView(), nil)

		var sent map[string]any
		mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, params map[string]any) error {
				sent = params
				return nil
			})

		_, err := cmds.Submit(context.Background(), b.BuildCreateRequestDTO())
		require.NoError(t, err)
		assert.Equal(t, "Not provided", sent["guest_phone"])
	})

	t.Run("unknown listing", func(t *testing.T) {
		cmds, listings, _, _, _ := newBookingFixture(t)

		b := builder.NewBookingBuilder()
		listings.EXPECT().GetByID(gomock.Any(), b.Listing.ID).
			Return(nil, errors.New("not found"))

		_, err := cmds.Submit(context.Background(), b.BuildCreateRequestDTO())
		require.ErrorIs(t, err, commands.ErrListingNotFound)
	})

	t.Run("validation failure never reaches the mailer", func(t *testing.T) {
		cmds, listings, _, _, _ := newBookingFixture(t)

		b := builder.NewBookingBuilder().WithStay("2025-06-05", "2025-06-01")
		listings.EXPECT().GetByID(gomock.Any(), b.Listing.ID).
			Return(b.Listing.BuildView(), nil)

		_, err := cmds.Submit(context.Background(), b.BuildCreateRequestDTO())
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("delivery error becomes a failure outcome", func(t *testing.T) {
		cmds, listings, mailer, _, after := newBookingFixture(t)

		b := builder.NewBookingBuilder()
		listings.EXPECT().GetByID(gomock.Any(), b.Listing.ID).
			Return(b.Listing.BuildView(), nil)
		mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("service unavailable"))

		result, err := cmds.Submit(context.Background(), b.BuildCreateRequestDTO())
		require.NoError(t, err)

		assert.Equal(t, submission.StatusFailure, result.Outcome.Status)
		assert.False(t, result.Outcome.InFlight)
		assert.Equal(t, "Failed to send booking request. Error: service unavailable", result.Outcome.Message)
		assert.Empty(t, after.scheduled)
	})

	t.Run("credentials error gets the configuration message", func(t *testing.T) {
		cmds, listings, mailer, _, _ := newBookingFixture(t)

		b := builder.NewBookingBuilder()
		listings.EXPECT().GetByID(gomock.Any(), b.Listing.ID).
			Return(b.Listing.BuildView(), nil)
		mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("email service credentials are not configured"))

		result, err := cmds.Submit(context.Background(), b.BuildCreateRequestDTO())
		require.NoError(t, err)

		assert.Equal(t, submission.StatusFailure, result.Outcome.Status)
		assert.Equal(t,
			"Failed to send booking request. Email service configuration error. Please contact support.",
			result.Outcome.Message,
		)
	})

	t.Run("slow delivery loses the deadline race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		listings := queriesmock.NewMockListingQueries(ctrl)
		mailer := commandsmock.NewMockMailer(ctrl)
		registry := submission.NewRegistry()
		after := &fakeAfter{}

		mail := config.NewTestConfig().Mail
		mail.SendTimeout = 10 * time.Millisecond
		cmds := commands.NewBookingCommands(listings, mailer, registry, mail, after.After, nil)

		b := builder.NewBookingBuilder()
		listings.EXPECT().GetByID(gomock.Any(), b.Listing.ID).
			Return(b.Listing.BuildView(), nil)
		mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ string, _ map[string]any) error {
				<-ctx.Done()
				return ctx.Err()
			})

		result, err := cmds.Submit(context.Background(), b.BuildCreateRequestDTO())
		require.NoError(t, err)

		assert.Equal(t, submission.StatusFailure, result.Outcome.Status)
		assert.Equal(t,
			"Failed to send booking request. The request timed out. Please try again.",
			result.Outcome.Message,
		)
	})

	t.Run("attempts do not share outcome state", func(t *testing.T) {
		cmds, listings, mailer, _, _ := newBookingFixture(t)

		b := builder.NewBookingBuilder()
		listings.EXPECT().GetByID(gomock.Any(), b.Listing.ID).
			Return(b.Listing.BuildView(), nil).Times(2)

		gomock.InOrder(
			mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(errors.New("service unavailable")),
			mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil),
		)

		first, err := cmds.Submit(context.Background(), b.BuildCreateRequestDTO())
		require.NoError(t, err)
		second, err := cmds.Submit(context.Background(), b.BuildCreateRequestDTO())
		require.NoError(t, err)

		assert.NotEqual(t, first.SubmissionID, second.SubmissionID)
		assert.Equal(t, submission.StatusSuccess, second.Outcome.Status)

		// The first attempt keeps its failure even after the second succeeds.
		snap, err := cmds.Outcome(first.SubmissionID)
		require.NoError(t, err)
		assert.Equal(t, submission.StatusFailure, snap.Status)
	})

	t.Run("delivered callback fires on success only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		listings := queriesmock.NewMockListingQueries(ctrl)
		mailer := commandsmock.NewMockMailer(ctrl)
		registry := submission.NewRegistry()
		after := &fakeAfter{}

		delivered := 0
		cmds := commands.NewBookingCommands(
			listings, mailer, registry,
			config.NewTestConfig().Mail, after.After,
			func() { delivered++ },
		)

		b := builder.NewBookingBuilder()
		listings.EXPECT().GetByID(gomock.Any(), b.Listing.ID).
			Return(b.Listing.BuildView(), nil).Times(2)
		gomock.InOrder(
			mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
			mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(errors.New("service unavailable")),
		)

		_, err := cmds.Submit(context.Background(), b.BuildCreateRequestDTO())
		require.NoError(t, err)
		_, err = cmds.Submit(context.Background(), b.BuildCreateRequestDTO())
		require.NoError(t, err)

		assert.Equal(t, 1, delivered)
	})

	t.Run("unknown submission id", func(t *testing.T) {
		cmds, _, _, _, _ := newBookingFixture(t)

		_, err := cmds.Outcome(builder.NewListingBuilder().ID)
		require.ErrorIs(t, err, commands.ErrSubmissionNotFound)
	})
}
