//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"azulhomes/internal/handler/api"
	resdto "azulhomes/internal/handler/dto/response"
	"azulhomes/internal/usecase/queries"
	"azulhomes/tests/common/builder"
	"azulhomes/tests/common/httptest"
	queriesmock "azulhomes/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ListingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockListingQueries
}

func (s *ListingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockListingQueries(s.mockCtrl)
	handler := api.NewListingHandler(s.mockQueries)

	s.router.GET("/properties", handler.List)
	s.router.GET("/properties/:id", handler.Get)
}

func (s *ListingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestListingHandlerSuite(t *testing.T) {
	suite.Run(t, new(ListingHandlerTestSuite))
}

func (s *ListingHandlerTestSuite) TestList() {
	views := []*queries.ListingView{
		builder.NewListingBuilder().BuildView(),
		builder.NewListingBuilder().WithName("Downtown Loft").WithAvailable(false).BuildView(),
	}

	s.Run("success: lists the whole catalog", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), false).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties", nil, "")

		var body []resdto.ListingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal("Ocean View Villa", body[0].Name)
	})

	s.Run("success: available filter is passed through", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), true).Return(views[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties?available=true", nil, "")

		var body []resdto.ListingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("success: owner email never leaks into the response", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), false).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties", nil, "")
		s.NotContains(rec.Body.String(), "ownerEmail")
		s.NotContains(rec.Body.String(), "owner@example.com")
	})
}

func (s *ListingHandlerTestSuite) TestGet() {
	view := builder.NewListingBuilder().BuildView()

	s.Run("success: returns the property", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/"+view.ID.String(), nil, "")

		var body resdto.ListingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(view.Price, body.Price)
	})

	s.Run("error: 400 Bad Request for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for unknown id", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, queries.ErrListingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}
