package controller

import (
	"errors"
	"time"

	"kpi_tracker_backend/internal/repository"
	"kpi_tracker_backend/internal/service"
	"kpi_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	GoalService     *service.GoalService
	SettingsService *service.SettingsService
}

func NewGoalController(goalService *service.GoalService, settingsService *service.SettingsService) *GoalController {
	return &GoalController{GoalService: goalService, SettingsService: settingsService}
}

// GoalRequest is the goal create/update payload. Dates are calendar dates
// in "YYYY-MM-DD". A zero target on create means "sum the assignment
// targets". Omitting subMetrics on update leaves them untouched; sending
// an empty array clears them.
// swagger:model GoalRequest
type GoalRequest struct {
	Title       string                    `json:"title" binding:"required"`
	Description string                    `json:"description"`
	Target      float64                   `json:"target"`
	Unit        string                    `json:"unit"`
	StartDate   string                    `json:"startDate" binding:"required"`
	EndDate     string                    `json:"endDate" binding:"required"`
	Assignments []service.AssignmentInput `json:"assignments"`
	SubMetrics  *[]service.SubMetricInput `json:"subMetrics"`
}

func (r *GoalRequest) toInput() (service.GoalInput, error) {
	start, err := util.ParseDate(r.StartDate)
	if err != nil {
		return service.GoalInput{}, err
	}
	end, err := util.ParseDate(r.EndDate)
	if err != nil {
		return service.GoalInput{}, err
	}
	return service.GoalInput{
		Title:       r.Title,
		Description: r.Description,
		Target:      r.Target,
		Unit:        r.Unit,
		StartDate:   start,
		EndDate:     end,
		Assignments: r.Assignments,
		SubMetrics:  r.SubMetrics,
	}, nil
}

// Create godoc
// @Summary Create a goal
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body GoalRequest true "goal"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/admin/goals [post]
func (c *GoalController) Create(ctx *gin.Context) {
	var req GoalRequest
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
	goal, err := c.GoalService.Create(claims.UserID, in)
	if err != nil {
		if errors.Is(err, util.ErrNoAssignees) {
			util.BadRequest(ctx, "At least one assignee is required")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, goal)
}

// List godoc
// @Summary List all goals with assignees
// @Description Admin listing: includes hidden goals.
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/admin/goals [get]
func (c *GoalController) List(ctx *gin.Context) {
	goals, err := c.GoalService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, goals)
}

// ListWithProgress godoc
// @Summary List all goals with raw progress records
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/admin/goals/progress [get]
func (c *GoalController) ListWithProgress(ctx *gin.Context) {
	goals, err := c.GoalService.ListWithProgress()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, goals)
}

// Nav godoc
// @Summary Sidebar goal list
// @Description Public. Hidden goals appear only for authenticated viewers
// @Description when the showHiddenCards setting is on.
// @Tags goals
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/goals/nav [get]
func (c *GoalController) Nav(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	settings, err := c.SettingsService.Load(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	items, err := c.GoalService.Nav(claims != nil, settings.ShowHiddenCards)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// Detail godoc
// @Summary Goal detail with aggregated progress
// @Description Optional startDate/endDate restrict which work logs count.
// @Description The percentage here is capped at 100.
// @Tags goals
// @Produce json
// @Param id path int true "goal id"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/goals/{id} [get]
func (c *GoalController) Detail(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	start, end := util.ParseDateRange(ctx.Query("startDate"), ctx.Query("endDate"))

	detail, err := c.GoalService.Detail(id, start, end)
	if err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, detail)
}

// Monthly godoc
// @Summary Monthly progress series for a goal
// @Description Twelve zero-filled rows covering the goal's fiscal year
// @Description (October through September), one column per sub-metric.
// @Tags goals
// @Produce json
// @Param id path int true "goal id"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/goals/{id}/monthly [get]
func (c *GoalController) Monthly(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	start, end := util.ParseDateRange(ctx.Query("startDate"), ctx.Query("endDate"))

	data, err := c.GoalService.Monthly(id, start, end)
	if err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, data)
}

// SubMetrics godoc
// @Summary List a goal's sub-metrics
// @Tags goals
// @Produce json
// @Param id path int true "goal id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/goals/{id}/submetrics [get]
func (c *GoalController) SubMetrics(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	subMetrics, err := c.GoalService.SubMetrics(id)
	if err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, subMetrics)
}

// Update godoc
// @Summary Update a goal
// @Description Supplied assignments and subMetrics fully replace the
// @Description existing sets.
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "goal id"
// @Param body body GoalRequest true "goal"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/goals/{id} [put]
func (c *GoalController) Update(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req GoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	in, err := req.toInput()
	if err != nil {
		util.BadRequest(ctx, "Invalid date, expected YYYY-MM-DD")
		return
	}

	if err := c.GoalService.Update(id, in); err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"id": id})
}

// Delete godoc
// @Summary Delete a goal and everything under it
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Param id path int true "goal id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/goals/{id} [delete]
func (c *GoalController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if err := c.GoalService.Delete(id); err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"id": id})
}

// VisibilityRequest toggles a goal's dashboard visibility.
type VisibilityRequest struct {
	IsVisible *bool `json:"isVisible" binding:"required"`
}

// SetVisibility godoc
// @Summary Show or hide a goal on the dashboard
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "goal id"
// @Param body body VisibilityRequest true "visibility"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/goals/{id}/visibility [patch]
func (c *GoalController) SetVisibility(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req VisibilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.GoalService.SetVisibility(id, *req.IsVisible); err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"id": id, "isVisible": *req.IsVisible})
}

// ReorderRequest is the bulk display-order payload.
type ReorderRequest struct {
	Orders []repository.GoalOrder `json:"orders" binding:"required,min=1,dive"`
}

// Reorder godoc
// @Summary Bulk update goal display order
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ReorderRequest true "orders"
// @Success 200 {object} util.Response
// @Router /api/admin/goals/reorder [put]
func (c *GoalController) Reorder(ctx *gin.Context) {
	var req ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.GoalService.Reorder(req.Orders); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"updated": len(req.Orders), "at": time.Now()})
}
