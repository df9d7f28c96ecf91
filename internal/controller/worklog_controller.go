package controller

import (
	"errors"
	"strconv"

	"kpi_tracker_backend/internal/model"
	"kpi_tracker_backend/internal/service"
	"kpi_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type WorkLogController struct {
	WorkLogService *service.WorkLogService
}

func NewWorkLogController(workLogService *service.WorkLogService) *WorkLogController {
	return &WorkLogController{WorkLogService: workLogService}
}

// WorkLogRequest is the work-log create/update payload. Either
// completedWork or a non-empty subMetricValues mapping must be present.
// swagger:model WorkLogRequest
type WorkLogRequest struct {
	GoalID          uint                    `json:"goalId" binding:"required"`
	Date            string                  `json:"date" binding:"required"`
	Title           string                  `json:"title"`
	Description     string                  `json:"description"`
	CompletedWork   *float64                `json:"completedWork"`
	SubMetricID     *uint                   `json:"subMetricId"`
	SubMetricValues model.SubMetricValueMap `json:"subMetricValues"`
	ImageURLs       []string                `json:"imageUrls"`
}

func (r *WorkLogRequest) toInput() (service.WorkLogInput, error) {
	date, err := util.ParseDate(r.Date)
	if err != nil {
		return service.WorkLogInput{}, err
	}
	return service.WorkLogInput{
		GoalID:          r.GoalID,
		Date:            date,
		Title:           r.Title,
		Description:     r.Description,
		CompletedWork:   r.CompletedWork,
		SubMetricID:     r.SubMetricID,
		SubMetricValues: r.SubMetricValues,
		ImageURLs:       r.ImageURLs,
	}, nil
}

// Create godoc
// @Summary Record work toward a goal
// @Tags worklogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body WorkLogRequest true "work log"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/worklogs [post]
func (c *WorkLogController) Create(ctx *gin.Context) {
	var req WorkLogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	in, err := req.toInput()
	if err != nil {
		util.BadRequest(ctx, "Invalid date, expected YYYY-MM-DD")
		return
	}

	claims := util.GetUserFromContext(ctx)
	log, err := c.WorkLogService.Create(claims, in)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrMissingWorkValue):
			util.BadRequest(ctx, "Either completedWork or subMetricValues is required")
		case errors.Is(err, util.ErrGoalNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, log)
}

// Get godoc
// @Summary Fetch one work log
// @Tags worklogs
// @Produce json
// @Security BearerAuth
// @Param id path int true "work log id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/worklogs/{id} [get]
func (c *WorkLogController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	log, err := c.WorkLogService.Get(id)
	if err != nil {
		if errors.Is(err, util.ErrWorkLogNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, log)
}

// Update godoc
// @Summary Edit a work log
// @Description Only the author or an admin may edit. The image URL list
// @Description replaces the stored set.
// @Tags worklogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "work log id"
// @Param body body WorkLogRequest true "work log"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/worklogs/{id} [put]
func (c *WorkLogController) Update(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req WorkLogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	in, err := req.toInput()
	if err != nil {
		util.BadRequest(ctx, "Invalid date, expected YYYY-MM-DD")
		return
	}

	claims := util.GetUserFromContext(ctx)
	log, err := c.WorkLogService.Update(ctx.Request.Context(), claims, id, in)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrWorkLogNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		case errors.Is(err, util.ErrMissingWorkValue):
			util.BadRequest(ctx, "Either completedWork or subMetricValues is required")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, log)
}

// Delete godoc
// @Summary Delete a work log
// @Description Only the author or an admin may delete. Stored images are
// @Description removed from the storage backend as well.
// @Tags worklogs
// @Produce json
// @Security BearerAuth
// @Param id path int true "work log id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/worklogs/{id} [delete]
func (c *WorkLogController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	claims := util.GetUserFromContext(ctx)
	if err := c.WorkLogService.Delete(ctx.Request.Context(), claims, id); err != nil {
		switch {
		case errors.Is(err, util.ErrWorkLogNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"id": id})
}

// Latest godoc
// @Summary Recent activity feed
// @Description Public. The work-log display settings decide which fields
// @Description non-admin viewers see.
// @Tags worklogs
// @Produce json
// @Param limit query int false "max entries, default 10"
// @Success 200 {object} util.Response
// @Router /api/worklogs/latest [get]
func (c *WorkLogController) Latest(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	claims := util.GetUserFromContext(ctx)

	logs, err := c.WorkLogService.Latest(ctx.Request.Context(), limit, claims.IsAdmin())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, logs)
}
