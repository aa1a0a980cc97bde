package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"comfyinn-backend/services"
	"comfyinn-backend/utils"
)

type UploadController struct {
	ImageSvc *services.ImageService
}

func NewUploadController(svc *services.ImageService) *UploadController {
	return &UploadController{ImageSvc: svc}
}

type base64UploadPayload struct {
	Data   string `json:"data" binding:"required"`
	Folder string `json:"folder"`
}

// UploadImage (POST /api/upload) takes multipart fields "file" and "folder", or a
// JSON body {"data": "<base64 or data URL>", "folder": "..."}, and returns {"url": ...}.
func (ctrl *UploadController) UploadImage(c *gin.Context) {
	var (
		url string
		err error
	)
	if strings.HasPrefix(c.ContentType(), "application/json") {
		var payload base64UploadPayload
		if !bindBody(c, &payload) {
			return
		}
		url, err = ctrl.ImageSvc.UploadBase64(c.Request.Context(), payload.Data, payload.Folder)
	} else {
		// Keep oversized bodies from being buffered in full; the multipart
		// overhead gets 1 MiB on top of the file limit.
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, ctrl.ImageSvc.MaxBytes+1<<20)
		fh, ferr := c.FormFile("file")
		if ferr != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(ferr, &tooLarge) {
				ctrl.tooLarge(c)
				return
			}
			utils.JSONError(c, http.StatusBadRequest, "No file provided")
			return
		}
		url, err = ctrl.ImageSvc.Upload(c.Request.Context(), fh, c.PostForm("folder"))
	}

	switch {
	case errors.Is(err, services.ErrImageTooLarge):
		ctrl.tooLarge(c)
	case errors.Is(err, services.ErrInvalidImage):
		utils.JSONError(c, http.StatusBadRequest, "Please select an image file")
	case err != nil:
		utils.JSONServerError(c, http.StatusInternalServerError, "Failed to upload image", err)
	default:
		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}

func (ctrl *UploadController) tooLarge(c *gin.Context) {
	limit := humanize.IBytes(uint64(ctrl.ImageSvc.MaxBytes))
	utils.JSONError(c, http.StatusRequestEntityTooLarge, "Image must be at most "+limit)
}
