package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/periscope-tudelft/periscope_api/dto"
	"github.com/periscope-tudelft/periscope_api/shared"
)

type PhotoHandler struct {
	photoSvc PhotoServiceInterface
}

func NewPhotoHandler(photoSvc PhotoServiceInterface) *PhotoHandler {
	return &PhotoHandler{photoSvc: photoSvc}
}

// @Summary Search stock photos
// @Description Proxies Unsplash search so the API key stays server side
// @Tags photos
// @Produce json
// @Param query query string true "Search terms"
// @Param page query int false "Result page, starting at 1"
// @Success 200 {object} object
// @Router /api/v1/photos [get]
func (h *PhotoHandler) SearchPhotos(c *fiber.Ctx) error {
	page, err := queryInt(c, "page")
	if err != nil {
		return err
	}
	p := 1
	if page != nil {
		p = *page
	}

	body, err := h.photoSvc.SearchPhotos(c.Context(), c.Query("query"), p)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(body)
}

// @Summary Get one random stock photo for a query
// @Tags photos
// @Produce json
// @Param query query string true "Search terms"
// @Success 200 {object} object
// @Router /api/v1/photos/random [get]
func (h *PhotoHandler) RandomPhoto(c *fiber.Ctx) error {
	body, err := h.photoSvc.RandomPhoto(c.Context(), c.Query("query"))
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(body)
}

type trackDownloadRequest struct {
	dto.TokenBody
	DownloadLocation string `json:"download_location"`
}

// @Summary Report a photo download to Unsplash
// @Tags photos
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=nil}
// @Router /api/v1/photos/download [post]
func (h *PhotoHandler) TrackDownload(c *fiber.Ctx) error {
	var req trackDownloadRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Malformed request body.")
	}

	if err := h.photoSvc.TrackDownload(c.Context(), req.DownloadLocation); err != nil {
		return err
	}
	return shared.ResponseOK(c, nil)
}
