package api

import (
	"net/http"

	resdto "azulhomes/internal/handler/dto/response"
	"azulhomes/internal/handler/httperr"
	"azulhomes/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SubmissionHandler struct {
	q commands.SubmissionQueries
}

func NewSubmissionHandler(q commands.SubmissionQueries) *SubmissionHandler {
	return &SubmissionHandler{q: q}
}

// @Summary Get submission outcome
// @Description Poll the outcome of a past form submission attempt
// @Tags submissions
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} resdto.SubmissionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /submissions/{id} [get]
func (h *SubmissionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	snap, err := h.q.Outcome(id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshot(id, snap))
}
