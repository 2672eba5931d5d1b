//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"azulhomes/internal/domain/submission"
	"azulhomes/internal/handler/api"
	resdto "azulhomes/internal/handler/dto/response"
	"azulhomes/internal/pkg/errs"
	"azulhomes/internal/usecase/commands"
	"azulhomes/tests/common/builder"
	"azulhomes/tests/common/httptest"
	"azulhomes/tests/common/testutil"
	commandsmock "azulhomes/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockOutcomes *commandsmock.MockSubmissionQueries
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockOutcomes = commandsmock.NewMockSubmissionQueries(s.mockCtrl)

	bookingHandler := api.NewBookingHandler(s.mockCommands)
	submissionHandler := api.NewSubmissionHandler(s.mockOutcomes)

	s.router.POST("/bookings", bookingHandler.Submit)
	s.router.GET("/submissions/:id", submissionHandler.Get)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestSubmit() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	submitted := &commands.SubmitResult{
		SubmissionID: uuid.New(),
		Outcome: submission.Snapshot{
			Status:   submission.StatusSuccess,
			InFlight: true,
			Message:  "Booking request sent successfully!",
		},
	}

	s.Run("success: returns 202 Accepted with the outcome", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), reqBody).
			Return(submitted, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.SubmissionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &body)
		s.Equal(submitted.SubmissionID, body.SubmissionID)
		s.Equal("success", body.Status)
		s.True(body.InFlight)
		s.Equal("Booking request sent successfully!", body.Message)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing listingId", mutate: testutil.Field("listingId", nil)},
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
			{name: "missing checkIn", mutate: testutil.Field("checkIn", nil)},
			{name: "zero guests", mutate: testutil.Field("guests", 0)},
			{name: "too many guests", mutate: testutil.Field("guests", 9)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 404 Not Found for unknown property", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), reqBody).
			Return(nil, commands.ErrListingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Property not found")
	})

	s.Run("error: 400 Bad Request for domain validation failures", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), reqBody).
			Return(nil, errs.Mark(errs.New("check-out before check-in"), commands.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking request")
	})
}

func (s *BookingHandlerTestSuite) TestOutcome() {
	id := uuid.New()

	s.Run("success: returns the current snapshot", func() {
		s.mockOutcomes.EXPECT().Outcome(id).
			Return(submission.Snapshot{Status: submission.StatusFailure, Message: "Failed to send booking request. The request timed out. Please try again."}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/submissions/"+id.String(), nil, "")

		var body resdto.SubmissionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("failure", body.Status)
		s.Contains(body.Message, "timed out")
	})

	s.Run("error: 400 Bad Request for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/submissions/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for unknown attempts", func() {
		s.mockOutcomes.EXPECT().Outcome(id).
			Return(submission.Snapshot{}, commands.ErrSubmissionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/submissions/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}
