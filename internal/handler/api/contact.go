package api

import (
	"net/http"

	reqdto "azulhomes/internal/handler/dto/request"
	resdto "azulhomes/internal/handler/dto/response"
	"azulhomes/internal/handler/httperr"
	"azulhomes/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	cmds commands.ContactCommands
}

func NewContactHandler(cmds commands.ContactCommands) *ContactHandler {
	return &ContactHandler{cmds: cmds}
}

// @Summary Submit contact message
// @Description Validate a contact message and email it to the site owner
// @Tags contact
// @Accept json
// @Produce json
// @Param request body reqdto.CreateContactRequest true "Contact message"
// @Success 202 {object} resdto.SubmissionResponse
// @Failure 400 {object} map[string]string
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req reqdto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Submit(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid contact message", nil)
		return
	}
	c.JSON(http.StatusAccepted, resdto.FromSubmitResult(result))
}
