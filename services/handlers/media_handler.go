package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/periscope-tudelft/periscope_api/shared"
)

type MediaHandler struct {
	mediaSvc MediaServiceInterface
}

func NewMediaHandler(mediaSvc MediaServiceInterface) *MediaHandler {
	return &MediaHandler{mediaSvc: mediaSvc}
}

type mediaUploadResponse struct {
	ObjectName string `json:"object_name"`
	URL        string `json:"url"`
}

// @Summary Upload scenario or mood artwork
// @Description Multipart upload of one image file under a folder prefix
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param folder query string false "Storage folder, defaults to 'images'"
// @Param file formData file true "Image file"
// @Success 201 {object} shared.Response{data=mediaUploadResponse}
// @Router /api/v1/media/upload [post]
func (h *MediaHandler) UploadImage(c *fiber.Ctx) error {
	folder := c.Query("folder")
	if folder == "" {
		folder = "images"
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return shared.NewMissingFieldError("file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	contentType := fileHeader.Header.Get("Content-Type")
	objectName, err := h.mediaSvc.UploadImage(c.Context(), folder, contentType, data)
	if err != nil {
		return err
	}

	url, err := h.mediaSvc.GetImageURL(c.Context(), objectName, 7*24*time.Hour)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Image uploaded", mediaUploadResponse{
		ObjectName: objectName,
		URL:        url,
	})
}

// @Summary Delete stored artwork
// @Tags media
// @Produce json
// @Param object query string true "Object name returned by upload"
// @Success 200 {object} shared.Response{data=nil}
// @Router /api/v1/media [delete]
func (h *MediaHandler) DeleteImage(c *fiber.Ctx) error {
	objectName := c.Query("object")
	if objectName == "" {
		return shared.NewMissingFieldError("object")
	}
	if err := h.mediaSvc.DeleteImage(c.Context(), objectName); err != nil {
		return err
	}
	return shared.ResponseOK(c, nil)
}
