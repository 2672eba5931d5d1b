package api

import (
	"errors"
	"net/http"

	reqdto "azulhomes/internal/handler/dto/request"
	resdto "azulhomes/internal/handler/dto/response"
	"azulhomes/internal/handler/httperr"
	"azulhomes/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
}

func NewBookingHandler(cmds commands.BookingCommands) *BookingHandler {
	return &BookingHandler{cmds: cmds}
}

// @Summary Submit booking request
// @Description Validate a booking request and email it to the property owner
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 202 {object} resdto.SubmissionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Submit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, commands.ErrListingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking request", nil)
		return
	}
	c.JSON(http.StatusAccepted, resdto.FromSubmitResult(result))
}
