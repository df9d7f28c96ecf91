package controller

import (
	"fmt"
	"path/filepath"

	"kpi_tracker_backend/internal/model"
	"kpi_tracker_backend/internal/service"
	"kpi_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const maxUploadSize = 10 << 20 // 10 MiB

type UploadController struct {
	StorageService *service.StorageService
}

func NewUploadController(storageService *service.StorageService) *UploadController {
	return &UploadController{StorageService: storageService}
}

// Upload godoc
// @Summary Upload an image
// @Description Accepts one multipart image up to 10 MiB and returns its
// @Description URL for use in a work log.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "image file"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/uploads [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "Missing file")
		return
	}
	if header.Size > maxUploadSize {
		util.BadRequest(ctx, "File exceeds 10 MiB")
		return
	}

	file, err := header.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	mimeType, err := util.ValidateMimeType(file, []string{util.MimeImage})
	if err != nil || !util.IsImage(mimeType) {
		util.BadRequest(ctx, "Only image files are accepted")
		return
	}
	// Rewind past the sniffed bytes before streaming to storage.
	if _, err := file.Seek(0, 0); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	filename := fmt.Sprintf("%s%s", model.GenerateUUID(), filepath.Ext(header.Filename))
	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, file, header.Size, mimeType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"url":      url,
		"publicId": service.ExtractPublicID(url),
	})
}
