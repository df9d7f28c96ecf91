package controller

import (
	"kpi_tracker_backend/internal/service"
	"kpi_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HomeController struct {
	HomeService *service.HomeService
}

func NewHomeController(homeService *service.HomeService) *HomeController {
	return &HomeController{HomeService: homeService}
}

// Dashboard godoc
// @Summary Dashboard goal cards
// @Description Public. Each card carries the goal, its assignees and the
// @Description progress percentage capped at 100. Optional startDate and
// @Description endDate restrict which work counts toward the totals.
// @Tags home
// @Produce json
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Success 200 {object} util.Response
// @Router /api/home [get]
func (c *HomeController) Dashboard(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	start, end := util.ParseDateRange(ctx.Query("startDate"), ctx.Query("endDate"))

	cards, err := c.HomeService.Cards(ctx.Request.Context(), claims != nil, start, end)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, cards)
}
