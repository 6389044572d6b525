package controllers

import (
	"github.com/gin-gonic/gin"

	"tripvisito/internal/services"
	"tripvisito/pkg/utils"
)

type StatsController struct {
	statsService services.StatsServiceInterface
}

func NewStatsController(statsService services.StatsServiceInterface) *StatsController {
	return &StatsController{
		statsService: statsService,
	}
}

// Dashboard godoc
// @Summary Aggregate user and trip statistics for the admin dashboard
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /stats/dashboard [get]
func (s *StatsController) Dashboard(c *gin.Context) {
	stats, err := s.statsService.Dashboard(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "")
}

// UserGrowth godoc
// @Summary Daily user signup counts
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /stats/user-growth [get]
func (s *StatsController) UserGrowth(c *gin.Context) {
	growth, err := s.statsService.UserGrowth(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, growth, "")
}
