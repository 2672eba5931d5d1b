package api

import (
	"net/http"

	resdto "azulhomes/internal/handler/dto/response"
	"azulhomes/internal/handler/httperr"
	"azulhomes/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListingHandler struct {
	q queries.ListingQueries
}

func NewListingHandler(q queries.ListingQueries) *ListingHandler {
	return &ListingHandler{q: q}
}

// @Summary List properties
// @Description List catalog properties, optionally only available ones
// @Tags properties
// @Produce json
// @Param available query bool false "Only available properties"
// @Success 200 {array} resdto.ListingResponse
// @Failure 500 {object} map[string]string
// @Router /properties [get]
func (h *ListingHandler) List(c *gin.Context) {
	availableOnly := c.Query("available") == "true"
	views, err := h.q.List(c.Request.Context(), availableOnly)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list properties", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingViews(views))
}

// @Summary Get property
// @Description Get a catalog property by ID
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /properties/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingView(view))
}
