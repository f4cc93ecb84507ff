package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/periscope-tudelft/periscope_api/dto"
	"github.com/periscope-tudelft/periscope_api/shared"
)

type VisionHandler struct {
	visionSvc VisionServiceInterface
	metrics   StudyMetrics
}

func NewVisionHandler(visionSvc VisionServiceInterface, metrics StudyMetrics) *VisionHandler {
	return &VisionHandler{visionSvc: visionSvc, metrics: metrics}
}

// @Summary Create a vision for a scenario
// @Tags visions
// @Accept json
// @Produce json
// @Param createRequest body dto.CreateVisionRequest true "Vision with its media"
// @Success 201 {object} shared.Response{data=model.Vision}
// @Router /api/v1/visions [post]
func (h *VisionHandler) CreateVision(c *fiber.Ctx) error {
	var req dto.CreateVisionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Malformed request body.")
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.CreateValidationErrorResponse(err))
	}

	vision, err := h.visionSvc.CreateVision(userID(c), req)
	if err != nil {
		return err
	}
	h.metrics.RecordVisionCreated()
	return shared.ResponseJSON(c, http.StatusCreated, "Vision created", vision)
}

// @Summary Get a vision with its media
// @Tags visions
// @Produce json
// @Param id path int true "Vision ID"
// @Success 200 {object} shared.Response{data=model.Vision}
// @Router /api/v1/visions/{id} [get]
func (h *VisionHandler) GetVision(c *fiber.Ctx) error {
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}
	vision, err := h.visionSvc.GetVision(id)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, vision)
}

// @Summary List visions of a scenario
// @Tags visions
// @Produce json
// @Param scenario_id query int true "Scenario ID"
// @Param user_id query int false "Restrict to one user"
// @Success 200 {object} shared.Response{data=[]model.Vision}
// @Router /api/v1/visions [get]
func (h *VisionHandler) ListVisions(c *fiber.Ctx) error {
	scenarioID, err := queryInt(c, "scenario_id")
	if err != nil {
		return err
	}
	if scenarioID == nil {
		return shared.NewMissingFieldError("scenario_id")
	}
	filterUser, err := queryInt(c, "user_id")
	if err != nil {
		return err
	}

	visions, err := h.visionSvc.ListVisionsByScenario(*scenarioID, filterUser)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, visions)
}

// @Summary Update own vision
// @Tags visions
// @Accept json
// @Produce json
// @Param id path int true "Vision ID"
// @Param updateRequest body dto.UpdateVisionRequest true "New mood and media"
// @Success 200 {object} shared.Response{data=model.Vision}
// @Router /api/v1/visions/{id} [put]
func (h *VisionHandler) UpdateVision(c *fiber.Ctx) error {
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateVisionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Malformed request body.")
	}

	vision, err := h.visionSvc.UpdateVision(id, userID(c), req)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, vision)
}

// @Summary Delete a vision and its media
// @Tags visions
// @Produce json
// @Param id path int true "Vision ID"
// @Success 200 {object} shared.Response{data=nil}
// @Router /api/v1/visions/{id} [delete]
func (h *VisionHandler) DeleteVision(c *fiber.Ctx) error {
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}
	if err := h.visionSvc.DeleteVision(id); err != nil {
		return err
	}
	return shared.ResponseOK(c, nil)
}
