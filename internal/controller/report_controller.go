package controller

import (
	"strconv"
	"time"

	"kpi_tracker_backend/internal/progress"
	"kpi_tracker_backend/internal/service"
	"kpi_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportService *service.ReportService
}

func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

// MyReport godoc
// @Summary Cross-goal report for the current user
// @Description One row per goal the user is assigned to or created, with
// @Description the period total and an uncapped percentage, so
// @Description over-achievement reads above 100. Omitting year means all
// @Description time; month=0 or "all" means the whole calendar year.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param year query int false "calendar year"
// @Param month query string false "1-12, or all"
// @Success 200 {object} util.Response
// @Router /api/reports/me [get]
func (c *ReportController) MyReport(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var filter progress.ReportFilter
	if yearStr := ctx.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			util.BadRequest(ctx, "Invalid year")
			return
		}
		filter.Year = year

		if monthStr := ctx.Query("month"); monthStr != "" && monthStr != "all" {
			month, err := strconv.Atoi(monthStr)
			if err != nil || month < 1 || month > 12 {
				util.BadRequest(ctx, "Invalid month, expected 1-12 or all")
				return
			}
			filter.Month = time.Month(month)
		}
	}

	rows, err := c.ReportService.ForUser(claims.UserID, filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}
