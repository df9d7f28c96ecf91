package controller

import (
	"errors"

	"kpi_tracker_backend/internal/model"
	"kpi_tracker_backend/internal/service"
	"kpi_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// List godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/admin/users [get]
func (c *UserController) List(ctx *gin.Context) {
	users, err := c.UserService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	identities := make([]model.UserIdentity, 0, len(users))
	for i := range users {
		identities = append(identities, users[i].Identity())
	}
	util.Success(ctx, identities)
}

// ListPending godoc
// @Summary List accounts awaiting approval
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/admin/users/pending [get]
func (c *UserController) ListPending(ctx *gin.Context) {
	users, err := c.UserService.ListPending()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	identities := make([]model.UserIdentity, 0, len(users))
	for i := range users {
		identities = append(identities, users[i].Identity())
	}
	util.Success(ctx, identities)
}

// Approve godoc
// @Summary Approve a pending account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Success 200 {object} util.Response
// @Router /api/admin/users/{id}/approve [post]
func (c *UserController) Approve(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if err := c.UserService.Approve(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"id": id, "status": model.StatusApproved})
}

// Reject godoc
// @Summary Reject a pending account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Success 200 {object} util.Response
// @Router /api/admin/users/{id}/reject [post]
func (c *UserController) Reject(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if err := c.UserService.Reject(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"id": id, "status": model.StatusRejected})
}

// Delete godoc
// @Summary Delete a user account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Success 200 {object} util.Response
// @Router /api/admin/users/{id} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if err := c.UserService.Delete(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"id": id})
}

// UpdateProfileRequest carries the self-service profile fields.
type UpdateProfileRequest struct {
	Name           string `json:"name"`
	ProfilePicture string `json:"profilePicture"`
}

// UpdateProfile godoc
// @Summary Update own display name and picture
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateProfileRequest true "profile"
// @Success 200 {object} util.Response
// @Router /api/users/me [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if err := c.UserService.UpdateProfile(claims.UserID, req.Name, req.ProfilePicture); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	user, err := c.UserService.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, user.Identity())
}
