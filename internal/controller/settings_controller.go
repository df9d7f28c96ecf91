package controller

import (
	"kpi_tracker_backend/internal/service"
	"kpi_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	SettingsService *service.SettingsService
}

func NewSettingsController(settingsService *service.SettingsService) *SettingsController {
	return &SettingsController{SettingsService: settingsService}
}

// Get godoc
// @Summary Read application settings
// @Description Public. Anonymous callers receive only the public keys;
// @Description admins receive the full set.
// @Tags settings
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/settings [get]
func (c *SettingsController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	rows, err := c.SettingsService.VisibleRows(claims.IsAdmin())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	util.Success(ctx, out)
}

// UpdateSettingsRequest is a key-value batch of setting writes.
type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings" binding:"required,min=1"`
}

// Update godoc
// @Summary Update application settings
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateSettingsRequest true "settings"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/admin/settings [put]
func (c *SettingsController) Update(ctx *gin.Context) {
	var req UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	for key, value := range req.Settings {
		if err := c.SettingsService.Update(ctx.Request.Context(), key, value); err != nil {
			util.LogInternalError(ctx, err)
			return
		}
	}
	util.Success(ctx, gin.H{"updated": len(req.Settings)})
}
