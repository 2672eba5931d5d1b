package api

import (
	"net/http"

	reqdto "azulhomes/internal/handler/dto/request"
	resdto "azulhomes/internal/handler/dto/response"
	"azulhomes/internal/handler/httperr"
	"azulhomes/internal/usecase/hero"

	"github.com/gin-gonic/gin"
)

type HeroHandler struct {
	rotator *hero.Rotator
}

func NewHeroHandler(rotator *hero.Rotator) *HeroHandler {
	return &HeroHandler{rotator: rotator}
}

// @Summary Current hero image
// @Description Get the current hero slideshow state
// @Tags hero
// @Produce json
// @Success 200 {object} resdto.HeroResponse
// @Router /hero [get]
func (h *HeroHandler) Current(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromHeroState(h.rotator.Current()))
}

// @Summary Select hero image
// @Description Jump to a hero image without changing the rotation cadence
// @Tags hero
// @Accept json
// @Produce json
// @Param request body reqdto.HeroSelectRequest true "Image index"
// @Success 200 {object} resdto.HeroResponse
// @Failure 400 {object} map[string]string
// @Router /hero/select [post]
func (h *HeroHandler) Select(c *gin.Context) {
	var req reqdto.HeroSelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	state, err := h.rotator.Select(req.Index)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid image index", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHeroState(state))
}
