package api

import (
	"errors"
	"net/http"

	reqdto "azulhomes/internal/handler/dto/request"
	resdto "azulhomes/internal/handler/dto/response"
	"azulhomes/internal/handler/httperr"
	"azulhomes/internal/usecase/admin"
	"azulhomes/internal/usecase/commands"
	"azulhomes/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	dashboard *admin.Dashboard
	props     commands.PropertyCommands
	records   commands.BookingRecordCommands
	bookings  queries.BookingQueries
}

func NewAdminHandler(
	dashboard *admin.Dashboard,
	props commands.PropertyCommands,
	records commands.BookingRecordCommands,
	bookings queries.BookingQueries,
) *AdminHandler {
	return &AdminHandler{
		dashboard: dashboard,
		props:     props,
		records:   records,
		bookings:  bookings,
	}
}

// @Summary Mock login
// @Description Demo dashboard sign-in; accepts any credentials
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.MockLoginRequest true "Mock login request"
// @Success 200 {object} resdto.MockLoginResponse
// @Failure 400 {object} map[string]string
// @Router /admin/login [post]
func (h *AdminHandler) MockLogin(c *gin.Context) {
	var req reqdto.MockLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	session := h.dashboard.MockLogin(req.Email)
	c.JSON(http.StatusOK, resdto.MockLoginResponse{
		Name:  session.Name,
		Email: session.Email,
	})
}

// @Summary Dashboard overview
// @Description Aggregate stats over the dashboard's property copy
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.OverviewResponse
// @Failure 500 {object} map[string]string
// @Router /admin/overview [get]
func (h *AdminHandler) Overview(c *gin.Context) {
	stats, err := h.dashboard.Overview(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load overview", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOverview(stats))
}

// @Summary Dashboard properties
// @Description Session copy of the catalog with randomized availability
// @Tags admin
// @Produce json
// @Success 200 {array} resdto.ListingResponse
// @Failure 500 {object} map[string]string
// @Router /admin/properties [get]
func (h *AdminHandler) DashboardProperties(c *gin.Context) {
	views, err := h.dashboard.Properties(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load properties", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingViews(views))
}

// @Summary Toggle dashboard availability
// @Description Flip the availability flag of one dashboard property
// @Tags admin
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/properties/{id}/toggle [post]
func (h *AdminHandler) ToggleAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.dashboard.Toggle(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingView(view))
}

// @Summary Reset dashboard
// @Description Discard the session copy and re-seed availability
// @Tags admin
// @Success 204 "No Content"
// @Failure 500 {object} map[string]string
// @Router /admin/reset [post]
func (h *AdminHandler) Reset(c *gin.Context) {
	if err := h.dashboard.Reset(c.Request.Context()); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to reset dashboard", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create property
// @Description Create a property in the stored collection
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePropertyRequest true "Create property request"
// @Success 201 {object} resdto.ListingResponse
// @Failure 400 {object} map[string]string
// @Router /admin/properties [post]
func (h *AdminHandler) CreateProperty(c *gin.Context) {
	var req reqdto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.props.Create(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Create property failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromListingView(view))
}

// @Summary Update property
// @Description Partially update a stored property
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param request body reqdto.UpdatePropertyRequest true "Update property request"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/properties/{id} [patch]
func (h *AdminHandler) UpdateProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdatePropertyRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	view, err := h.props.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, commands.ErrPropertyNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Update property failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingView(view))
}

// @Summary Delete property
// @Description Delete a stored property
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/properties/{id} [delete]
func (h *AdminHandler) DeleteProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.props.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrPropertyNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete property failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List bookings
// @Description List stored bookings, optionally filtered by property
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param propertyId query string false "Property ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	var (
		views []*queries.BookingView
		err   error
	)
	if raw := c.Query("propertyId"); raw != "" {
		propertyID, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, parseErr, "Invalid property id", nil)
			return
		}
		views, err = h.bookings.ListByProperty(c.Request.Context(), propertyID)
	} else {
		views, err = h.bookings.List(c.Request.Context())
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Create booking
// @Description Create a stored booking record
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/bookings [post]
func (h *AdminHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.records.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, commands.ErrListingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Create booking failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Update booking status
// @Description Move a stored booking between pending, confirmed and cancelled
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Status update"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/bookings/{id}/status [patch]
func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateBookingStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	view, err := h.records.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, commands.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Update booking failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Delete booking
// @Description Delete a stored booking record
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/bookings/{id} [delete]
func (h *AdminHandler) DeleteBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.records.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete booking failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
